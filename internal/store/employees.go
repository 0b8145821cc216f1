// store/employees.go - Employee, assignment and rating operations
package store

import (
	"database/sql"

	"github.com/lucasmtn/obratrack/internal/models"
)

type employeeScanner struct {
	dest *models.Employee
}

func (s employeeScanner) Scan(rows *sql.Rows) error {
	return rows.Scan(&s.dest.ID, &s.dest.Name, &s.dest.Role, &s.dest.Active, &s.dest.CreatedAt)
}

// CreateEmployee inserts a new employee
func (db *DB) CreateEmployee(e *models.Employee) error {
	return db.QueryRow(qEmployeeInsert, e.Name, e.Role).Scan(&e.ID, &e.Active, &e.CreatedAt)
}

// GetEmployee fetches an employee by ID
func (db *DB) GetEmployee(id int64) (*models.Employee, error) {
	e := &models.Employee{}
	err := db.QueryRow(qEmployeeByID, id).Scan(&e.ID, &e.Name, &e.Role, &e.Active, &e.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return e, err
}

// ListEmployees returns all employees with their rating aggregates and
// current assignments.
func (db *DB) ListEmployees() ([]models.EmployeeSummary, error) {
	rows, err := db.Query(qEmployeesAll)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	employees, err := scanAll(rows, func() *models.Employee { return &models.Employee{} },
		func(e *models.Employee) scanner { return employeeScanner{e} })
	if err != nil {
		return nil, err
	}

	summaries := make([]models.EmployeeSummary, 0, len(employees))
	for _, e := range employees {
		s := models.EmployeeSummary{Employee: e}
		if err := db.QueryRow(qRatingStats, e.ID).Scan(&s.AvgScore, &s.RatingCount); err != nil {
			return nil, err
		}
		if s.Assignments, err = db.ListAssignments(e.ID); err != nil {
			return nil, err
		}
		summaries = append(summaries, s)
	}
	return summaries, nil
}

// SetEmployeeActive toggles whether an employee is on the roster
func (db *DB) SetEmployeeActive(id int64, active bool) error {
	_, err := db.Exec(qEmployeeSetActive, active, id)
	return err
}

// CreateAssignment places an employee on a block for a service
func (db *DB) CreateAssignment(a *models.Assignment) error {
	return db.QueryRow(qAssignmentInsert, a.EmployeeID, a.Block, a.ServiceTypeID).
		Scan(&a.ID, &a.AssignedAt)
}

// ListAssignments returns an employee's assignments, newest first
func (db *DB) ListAssignments(employeeID int64) ([]models.Assignment, error) {
	rows, err := db.Query(qAssignmentsByEmployee, employeeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var assignments []models.Assignment
	for rows.Next() {
		var a models.Assignment
		if err := rows.Scan(&a.ID, &a.EmployeeID, &a.Block, &a.ServiceTypeID, &a.AssignedAt); err != nil {
			return nil, err
		}
		assignments = append(assignments, a)
	}
	return assignments, rows.Err()
}

// CreateRating records a 1-5 score for an employee
func (db *DB) CreateRating(r *models.Rating) error {
	return db.QueryRow(qRatingInsert, r.EmployeeID, r.Score, r.Note).Scan(&r.ID, &r.RatedAt)
}
