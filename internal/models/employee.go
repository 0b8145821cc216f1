// models/employee.go - Team models
package models

import "time"

// Employee is a site worker
type Employee struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
}

// Assignment places an employee on a block for a service
type Assignment struct {
	ID            int64     `json:"id"`
	EmployeeID    int64     `json:"employee_id"`
	Block         string    `json:"block"`
	ServiceTypeID int64     `json:"service_type_id"`
	AssignedAt    time.Time `json:"assigned_at"`
}

// Rating is a 1-5 performance score for an employee
type Rating struct {
	ID         int64     `json:"id"`
	EmployeeID int64     `json:"employee_id"`
	Score      int       `json:"score"`
	Note       string    `json:"note"`
	RatedAt    time.Time `json:"rated_at"`
}

// EmployeeSummary is an employee with aggregated rating data for cards
type EmployeeSummary struct {
	Employee    Employee     `json:"employee"`
	AvgScore    float64      `json:"avg_score"`
	RatingCount int          `json:"rating_count"`
	Assignments []Assignment `json:"assignments"`
}
