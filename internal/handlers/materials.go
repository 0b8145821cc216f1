// handlers/materials.go - Material lot pages
package handlers

import (
	"net/http"

	"github.com/lucasmtn/obratrack/internal/models"
)

// Materials renders the tile lot list
func (h *Handler) Materials(w http.ResponseWriter, r *http.Request) {
	lots, err := h.DB.ListLots()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	h.render(w, "materials.html", "Materiais", struct {
		Lots []models.MaterialLot
	}{Lots: lots})
}

// CreateLot registers a new material lot
func (h *Handler) CreateLot(w http.ResponseWriter, r *http.Request) {
	l, err := parseLotForm(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := h.DB.CreateLot(l); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	http.Redirect(w, r, "/materials", http.StatusSeeOther)
}

// ReceiveLot marks an ordered lot received
func (h *Handler) ReceiveLot(w http.ResponseWriter, r *http.Request) {
	h.lotAction(w, r, h.DB.ReceiveLot)
}

// ApplyLot marks a received lot applied
func (h *Handler) ApplyLot(w http.ResponseWriter, r *http.Request) {
	h.lotAction(w, r, h.DB.ApplyLot)
}

// DeleteLot removes a lot
func (h *Handler) DeleteLot(w http.ResponseWriter, r *http.Request) {
	h.lotAction(w, r, h.DB.DeleteLot)
}

func (h *Handler) lotAction(w http.ResponseWriter, r *http.Request, action func(int64) error) {
	id, err := urlID(r)
	if err != nil {
		http.Error(w, "Invalid ID", http.StatusBadRequest)
		return
	}
	if err := action(id); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	http.Redirect(w, r, "/materials", http.StatusSeeOther)
}
