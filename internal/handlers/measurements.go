// handlers/measurements.go - QA measurement pages
package handlers

import (
	"net/http"

	"github.com/lucasmtn/obratrack/internal/models"
)

type measurementsData struct {
	Measurements []models.Measurement
	ServiceTypes []models.ServiceType
	Service      map[int64]string
}

// Measurements renders the QA check list
func (h *Handler) Measurements(w http.ResponseWriter, r *http.Request) {
	measurements, err := h.DB.ListMeasurements()
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

	h.render(w, "measurements.html", "Medições", measurementsData{
		Measurements: measurements,
		ServiceTypes: types,
		Service:      names,
	})
}

// CreateMeasurement records a QA check
func (h *Handler) CreateMeasurement(w http.ResponseWriter, r *http.Request) {
	m, err := h.parseMeasurementForm(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := h.DB.CreateMeasurement(m); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	http.Redirect(w, r, "/measurements", http.StatusSeeOther)
}

// DeleteMeasurement removes a QA check
func (h *Handler) DeleteMeasurement(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r)
	if err != nil {
		http.Error(w, "Invalid ID", http.StatusBadRequest)
		return
	}
	if err := h.DB.DeleteMeasurement(id); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	http.Redirect(w, r, "/measurements", http.StatusSeeOther)
}
