// handlers/web.go - HTTP handlers
package handlers

import (
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/lucasmtn/obratrack/internal/config"
	"github.com/lucasmtn/obratrack/internal/models"
	"github.com/lucasmtn/obratrack/internal/store"
)

// Handler holds dependencies
type Handler struct {
	DB        store.Store
	Cfg       *config.Config
	PhotosDir string

	templates *templateSet
}

// New creates a Handler with parsed templates
func New(db store.Store, cfg *config.Config, photosDir string) (*Handler, error) {
	tmpl, err := parseTemplates()
	if err != nil {
		return nil, err
	}
	return &Handler{DB: db, Cfg: cfg, PhotosDir: photosDir, templates: tmpl}, nil
}

// page is the envelope every template receives
type page struct {
	Title        string
	SiteName     string
	PollInterval int
	Data         any
}

func (h *Handler) render(w http.ResponseWriter, name, title string, data any) {
	p := page{
		Title:        title,
		SiteName:     h.Cfg.SiteName,
		PollInterval: h.Cfg.PollIntervalSeconds,
		Data:         data,
	}
	if err := h.templates.render(w, name, p); err != nil {
		log.Printf("[RENDER] %s: %v", name, err)
		http.Error(w, "template error", http.StatusInternalServerError)
	}
}

// urlID extracts the {id} chi URL parameter
func urlID(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}

// dashboardData for the overview page
type dashboardData struct {
	Stats   *models.DashboardStats
	Recent  []models.Demand
	Service map[int64]string
}

// Dashboard renders the overview with stats cards and recent demands
func (h *Handler) Dashboard(w http.ResponseWriter, r *http.Request) {
	stats, err := h.DB.GetDashboardStats()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	recent, err := h.DB.ListDemands(models.DemandFilter{Status: models.DemandPending})
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if len(recent) > 8 {
		recent = recent[:8]
	}

	names, err := h.serviceNames()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	h.render(w, "dashboard.html", "Painel", dashboardData{Stats: stats, Recent: recent, Service: names})
}

// serviceNames maps service type IDs to names for card rendering
func (h *Handler) serviceNames() (map[int64]string, error) {
	types, err := h.DB.ListServiceTypes()
	if err != nil {
		return nil, err
	}
	names := make(map[int64]string, len(types))
	for _, st := range types {
		names[st.ID] = st.Name
	}
	return names, nil
}

// Health is the liveness endpoint
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	w.Write([]byte("OK"))
}
