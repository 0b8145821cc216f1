// handlers/demands.go - Punch-list pages and actions
package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/lucasmtn/obratrack/internal/models"
)

// demandsData for the punch-list page
type demandsData struct {
	Demands      []models.Demand
	ServiceTypes []models.ServiceType
	Service      map[int64]string
	Filter       models.DemandFilter
}

// Demands renders the punch-list with optional filters from the query string
func (h *Handler) Demands(w http.ResponseWriter, r *http.Request) {
	filter := models.DemandFilter{
		Block:     strings.TrimSpace(r.URL.Query().Get("block")),
		Apartment: strings.TrimSpace(r.URL.Query().Get("apartment")),
		Status:    models.DemandStatus(r.URL.Query().Get("status")),
	}
	if v := r.URL.Query().Get("service_type_id"); v != "" {
		filter.ServiceTypeID, _ = strconv.ParseInt(v, 10, 64)
	}

	demands, err := h.DB.ListDemands(filter)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	types, err := h.DB.ListServiceTypes()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	names, err := h.serviceNames()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	h.render(w, "demands.html", "Demandas", demandsData{
		Demands:      demands,
		ServiceTypes: types,
		Service:      names,
		Filter:       filter,
	})
}

// CreateDemand handles a new punch-list item
func (h *Handler) CreateDemand(w http.ResponseWriter, r *http.Request) {
	d, err := h.parseDemandForm(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.DB.CreateDemand(d); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/demands", http.StatusSeeOther)
}

// ResolveDemand closes a pending demand
func (h *Handler) ResolveDemand(w http.ResponseWriter, r *http.Request) {
	h.toggleDemand(w, r, h.DB.ResolveDemand)
}

// ReopenDemand reopens a resolved demand
func (h *Handler) ReopenDemand(w http.ResponseWriter, r *http.Request) {
	h.toggleDemand(w, r, h.DB.ReopenDemand)
}

func (h *Handler) toggleDemand(w http.ResponseWriter, r *http.Request, action func(int64) error) {
	id, err := urlID(r)
	if err != nil {
		http.Error(w, "Invalid ID", http.StatusBadRequest)
		return
	}
	if err := action(id); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	http.Redirect(w, r, "/demands", http.StatusSeeOther)
}

// DeleteDemand removes a demand
func (h *Handler) DeleteDemand(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r)
	if err != nil {
		http.Error(w, "Invalid ID", http.StatusBadRequest)
		return
	}
	if err := h.DB.DeleteDemand(id); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	http.Redirect(w, r, "/demands", http.StatusSeeOther)
}
