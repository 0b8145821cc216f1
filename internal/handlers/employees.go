// handlers/employees.go - Team pages and actions
package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/lucasmtn/obratrack/internal/models"
	"github.com/lucasmtn/obratrack/internal/site"
)

type employeesData struct {
	Employees    []models.EmployeeSummary
	ServiceTypes []models.ServiceType
	Service      map[int64]string
}

// Employees renders the roster with rating and assignment cards
func (h *Handler) Employees(w http.ResponseWriter, r *http.Request) {
	employees, err := h.DB.ListEmployees()
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

	h.render(w, "employees.html", "Equipe", employeesData{
		Employees:    employees,
		ServiceTypes: types,
		Service:      names,
	})
}

// CreateEmployee adds a worker to the roster
func (h *Handler) CreateEmployee(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	name := strings.TrimSpace(r.FormValue("name"))
	if name == "" {
		http.Error(w, "nome é obrigatório", http.StatusBadRequest)
		return
	}

	e := &models.Employee{Name: name, Role: strings.TrimSpace(r.FormValue("role"))}
	if err := h.DB.CreateEmployee(e); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	http.Redirect(w, r, "/employees", http.StatusSeeOther)
}

// ToggleEmployee flips an employee's active flag
func (h *Handler) ToggleEmployee(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r)
	if err != nil {
		http.Error(w, "Invalid ID", http.StatusBadRequest)
		return
	}

	e, err := h.DB.GetEmployee(id)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if e == nil {
		http.Error(w, "Not found", http.StatusNotFound)
		return
	}

	if err := h.DB.SetEmployeeActive(id, !e.Active); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	http.Redirect(w, r, "/employees", http.StatusSeeOther)
}

// AssignEmployee places an employee on a block for a service
func (h *Handler) AssignEmployee(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r)
	if err != nil {
		http.Error(w, "Invalid ID", http.StatusBadRequest)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	block := strings.TrimSpace(r.FormValue("block"))
	if !site.ValidBlock(block) {
		http.Error(w, fmt.Sprintf("bloco inválido: %q", block), http.StatusBadRequest)
		return
	}
	service, err := strconv.ParseInt(r.FormValue("service_type_id"), 10, 64)
	if err != nil {
		http.Error(w, "serviço inválido", http.StatusBadRequest)
		return
	}

	a := &models.Assignment{EmployeeID: id, Block: block, ServiceTypeID: service}
	if err := h.DB.CreateAssignment(a); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	http.Redirect(w, r, "/employees", http.StatusSeeOther)
}

// RateEmployee records a 1-5 score
func (h *Handler) RateEmployee(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r)
	if err != nil {
		http.Error(w, "Invalid ID", http.StatusBadRequest)
		return
	}

	rating, err := parseRatingForm(r, id)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.DB.CreateRating(rating); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	http.Redirect(w, r, "/employees", http.StatusSeeOther)
}
