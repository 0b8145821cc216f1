// handlers/forms.go - Form parsing helpers
package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/lucasmtn/obratrack/internal/models"
	"github.com/lucasmtn/obratrack/internal/site"
)

// parseDemandForm validates a demand submission against the site's
// unit scheme and the configured service types.
func (h *Handler) parseDemandForm(r *http.Request) (*models.Demand, error) {
	if err := r.ParseForm(); err != nil {
		return nil, err
	}

	block := strings.TrimSpace(r.FormValue("block"))
	if !site.ValidBlock(block) {
		return nil, fmt.Errorf("bloco inválido: %q", block)
	}

	apartment := strings.TrimSpace(r.FormValue("apartment"))
	if !site.ValidApartment(apartment) {
		return nil, fmt.Errorf("apartamento inválido: %q", apartment)
	}

	serviceID, err := strconv.ParseInt(r.FormValue("service_type_id"), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("serviço inválido")
	}
	st, err := h.DB.GetServiceType(serviceID)
	if err != nil {
		return nil, err
	}
	if st == nil {
		return nil, fmt.Errorf("serviço desconhecido: %d", serviceID)
	}

	return &models.Demand{
		Block:         block,
		Apartment:     apartment,
		ServiceTypeID: serviceID,
		Description:   strings.TrimSpace(r.FormValue("description")),
	}, nil
}

// parseScheduleForm reads a schedule and its scope item rows. Item
// fields arrive as parallel indexed arrays (item_block, item_floor,
// item_apartment, item_service); blank optional fields become nil.
func parseScheduleForm(r *http.Request) (*models.Schedule, []models.ScheduleItem, error) {
	if err := r.ParseForm(); err != nil {
		return nil, nil, err
	}

	name := strings.TrimSpace(r.FormValue("name"))
	if name == "" {
		return nil, nil, fmt.Errorf("nome é obrigatório")
	}

	deadline, err := time.Parse("2006-01-02", r.FormValue("deadline"))
	if err != nil {
		return nil, nil, fmt.Errorf("prazo inválido: %w", err)
	}

	sched := &models.Schedule{
		Name:      name,
		Deadline:  deadline,
		CreatedBy: strings.TrimSpace(r.FormValue("created_by")),
	}

	blocks := r.Form["item_block"]
	floors := r.Form["item_floor"]
	apartments := r.Form["item_apartment"]
	services := r.Form["item_service"]

	var items []models.ScheduleItem
	for i, block := range blocks {
		block = strings.TrimSpace(block)
		if block == "" {
			continue
		}
		if !site.ValidBlock(block) {
			return nil, nil, fmt.Errorf("bloco inválido: %q", block)
		}
		item := models.ScheduleItem{Block: block}

		if v := indexed(floors, i); v != "" {
			floor, err := strconv.Atoi(v)
			if err != nil || floor < 1 || floor > 5 {
				return nil, nil, fmt.Errorf("pavimento inválido: %q", v)
			}
			item.Floor = &floor
		}
		if v := indexed(apartments, i); v != "" {
			if !site.ValidApartment(v) {
				return nil, nil, fmt.Errorf("apartamento inválido: %q", v)
			}
			item.Apartment = &v
		}
		if v := indexed(services, i); v != "" {
			service, err := strconv.ParseInt(v, 10, 64)
			if err != nil {
				return nil, nil, fmt.Errorf("serviço inválido: %q", v)
			}
			item.ServiceTypeID = &service
		}
		items = append(items, item)
	}

	return sched, items, nil
}

// indexed returns values[i] or "" when the row is ragged
func indexed(values []string, i int) string {
	if i < 0 || i >= len(values) {
		return ""
	}
	return strings.TrimSpace(values[i])
}

// parseOpeningForm reads a door/window row
func parseOpeningForm(r *http.Request) (*models.Opening, error) {
	if err := r.ParseForm(); err != nil {
		return nil, err
	}

	kind := models.OpeningKind(r.FormValue("kind"))
	if kind != models.OpeningDoor && kind != models.OpeningWindow {
		return nil, fmt.Errorf("tipo inválido: %q", kind)
	}

	block := strings.TrimSpace(r.FormValue("block"))
	if !site.ValidBlock(block) {
		return nil, fmt.Errorf("bloco inválido: %q", block)
	}
	apartment := strings.TrimSpace(r.FormValue("apartment"))
	if !site.ValidApartment(apartment) {
		return nil, fmt.Errorf("apartamento inválido: %q", apartment)
	}

	return &models.Opening{
		Kind:      kind,
		Block:     block,
		Apartment: apartment,
		Label:     strings.TrimSpace(r.FormValue("label")),
	}, nil
}

// parseMeasurementForm reads a QA check with decimal values
func (h *Handler) parseMeasurementForm(r *http.Request) (*models.Measurement, error) {
	if err := r.ParseForm(); err != nil {
		return nil, err
	}

	block := strings.TrimSpace(r.FormValue("block"))
	if !site.ValidBlock(block) {
		return nil, fmt.Errorf("bloco inválido: %q", block)
	}
	apartment := strings.TrimSpace(r.FormValue("apartment"))
	if !site.ValidApartment(apartment) {
		return nil, fmt.Errorf("apartamento inválido: %q", apartment)
	}

	serviceID, err := strconv.ParseInt(r.FormValue("service_type_id"), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("serviço inválido")
	}

	label := strings.TrimSpace(r.FormValue("label"))
	if label == "" {
		return nil, fmt.Errorf("descrição da medição é obrigatória")
	}

	expected, err := decimal.NewFromString(r.FormValue("expected"))
	if err != nil {
		return nil, fmt.Errorf("valor esperado inválido: %w", err)
	}
	actual, err := decimal.NewFromString(r.FormValue("actual"))
	if err != nil {
		return nil, fmt.Errorf("valor medido inválido: %w", err)
	}
	tolerance, err := decimal.NewFromString(r.FormValue("tolerance"))
	if err != nil {
		return nil, fmt.Errorf("tolerância inválida: %w", err)
	}
	if tolerance.IsNegative() {
		return nil, fmt.Errorf("tolerância não pode ser negativa")
	}

	return &models.Measurement{
		Block:         block,
		Apartment:     apartment,
		ServiceTypeID: serviceID,
		Label:         label,
		Expected:      expected,
		Actual:        actual,
		Tolerance:     tolerance,
	}, nil
}

// parseLotForm reads a material lot
func parseLotForm(r *http.Request) (*models.MaterialLot, error) {
	if err := r.ParseForm(); err != nil {
		return nil, err
	}

	code := strings.TrimSpace(r.FormValue("code"))
	if code == "" {
		return nil, fmt.Errorf("código do lote é obrigatório")
	}
	block := strings.TrimSpace(r.FormValue("block"))
	if !site.ValidBlock(block) {
		return nil, fmt.Errorf("bloco inválido: %q", block)
	}

	quantity, _ := strconv.Atoi(r.FormValue("quantity"))
	if quantity < 0 {
		return nil, fmt.Errorf("quantidade inválida")
	}

	return &models.MaterialLot{
		Code:        code,
		Description: strings.TrimSpace(r.FormValue("description")),
		Quantity:    quantity,
		Block:       block,
	}, nil
}

// parseRatingForm reads a 1-5 score
func parseRatingForm(r *http.Request, employeeID int64) (*models.Rating, error) {
	if err := r.ParseForm(); err != nil {
		return nil, err
	}

	score, err := strconv.Atoi(r.FormValue("score"))
	if err != nil || score < 1 || score > 5 {
		return nil, fmt.Errorf("nota deve ser de 1 a 5")
	}

	return &models.Rating{
		EmployeeID: employeeID,
		Score:      score,
		Note:       strings.TrimSpace(r.FormValue("note")),
	}, nil
}
