// handlers/works.go - Opening and painting pages
package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/lucasmtn/obratrack/internal/models"
	"github.com/lucasmtn/obratrack/internal/site"
)

type openingsData struct {
	Openings []models.Opening
	Kind     models.OpeningKind
	Block    string
}

// Openings renders doors/windows, filterable by kind and block
func (h *Handler) Openings(w http.ResponseWriter, r *http.Request) {
	kind := models.OpeningKind(r.URL.Query().Get("kind"))
	block := strings.TrimSpace(r.URL.Query().Get("block"))

	openings, err := h.DB.ListOpenings(kind, block)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	h.render(w, "openings.html", "Portas e Esquadrias", openingsData{
		Openings: openings,
		Kind:     kind,
		Block:    block,
	})
}

// CreateOpening registers a door or window frame
func (h *Handler) CreateOpening(w http.ResponseWriter, r *http.Request) {
	o, err := parseOpeningForm(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := h.DB.CreateOpening(o); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	http.Redirect(w, r, "/openings", http.StatusSeeOther)
}

// InstallOpening marks an opening installed
func (h *Handler) InstallOpening(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r)
	if err != nil {
		http.Error(w, "Invalid ID", http.StatusBadRequest)
		return
	}
	if err := h.DB.InstallOpening(id); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	http.Redirect(w, r, "/openings", http.StatusSeeOther)
}

// DeleteOpening removes an opening
func (h *Handler) DeleteOpening(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r)
	if err != nil {
		http.Error(w, "Invalid ID", http.StatusBadRequest)
		return
	}
	if err := h.DB.DeleteOpening(id); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	http.Redirect(w, r, "/openings", http.StatusSeeOther)
}

// paintingGrid maps block -> floor -> stage for the grid view
type paintingsData struct {
	Blocks []string
	Floors []int
	Stage  map[string]map[int]models.PaintStage
}

// Paintings renders the block/floor paint stage grid
func (h *Handler) Paintings(w http.ResponseWriter, r *http.Request) {
	rows, err := h.DB.ListPaintings("")
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	stage := make(map[string]map[int]models.PaintStage)
	for _, p := range rows {
		if stage[p.Block] == nil {
			stage[p.Block] = make(map[int]models.PaintStage)
		}
		stage[p.Block][p.Floor] = p.Stage
	}

	h.render(w, "paintings.html", "Pintura", paintingsData{
		Blocks: site.Blocks(),
		Floors: []int{1, 2, 3, 4, 5},
		Stage:  stage,
	})
}

// SetPaintingStage records the stage for one block floor
func (h *Handler) SetPaintingStage(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	block := strings.TrimSpace(r.FormValue("block"))
	if !site.ValidBlock(block) {
		http.Error(w, fmt.Sprintf("bloco inválido: %q", block), http.StatusBadRequest)
		return
	}

	floor, err := strconv.Atoi(r.FormValue("floor"))
	if err != nil || floor < 1 || floor > 5 {
		http.Error(w, "pavimento inválido", http.StatusBadRequest)
		return
	}

	stage := models.PaintStage(r.FormValue("stage"))
	switch stage {
	case models.PaintNotStarted, models.PaintFirstCoat, models.PaintFinished:
	default:
		http.Error(w, fmt.Sprintf("etapa inválida: %q", stage), http.StatusBadRequest)
		return
	}

	if err := h.DB.SetPaintingStage(block, floor, stage); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	http.Redirect(w, r, "/paintings", http.StatusSeeOther)
}
