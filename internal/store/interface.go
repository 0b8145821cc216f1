// store/interface.go - Store interface for testability
package store

import "github.com/lucasmtn/obratrack/internal/models"

type Store interface {
	// Service types
	SeedServiceTypes(names []string) error
	ListServiceTypes() ([]models.ServiceType, error)
	GetServiceType(id int64) (*models.ServiceType, error)

	// Demands
	CreateDemand(d *models.Demand) error
	GetDemand(id int64) (*models.Demand, error)
	ListDemands(f models.DemandFilter) ([]models.Demand, error)
	ResolveDemand(id int64) error
	ReopenDemand(id int64) error
	SetDemandPhoto(id int64, path string) error
	DeleteDemand(id int64) error

	// Schedules
	CreateSchedule(sched *models.Schedule, items []models.ScheduleItem) error
	GetSchedule(id int64) (*models.Schedule, error)
	ListSchedules() ([]models.Schedule, error)
	ListScheduleItems(scheduleID int64) ([]models.ScheduleItem, error)
	DeleteSchedule(id int64) error

	// Openings and paintings
	CreateOpening(o *models.Opening) error
	GetOpening(id int64) (*models.Opening, error)
	ListOpenings(kind models.OpeningKind, block string) ([]models.Opening, error)
	InstallOpening(id int64) error
	DeleteOpening(id int64) error
	SetPaintingStage(block string, floor int, stage models.PaintStage) error
	ListPaintings(block string) ([]models.Painting, error)

	// Measurements
	CreateMeasurement(m *models.Measurement) error
	ListMeasurements() ([]models.Measurement, error)
	DeleteMeasurement(id int64) error

	// Material lots
	CreateLot(l *models.MaterialLot) error
	GetLot(id int64) (*models.MaterialLot, error)
	ListLots() ([]models.MaterialLot, error)
	ReceiveLot(id int64) error
	ApplyLot(id int64) error
	DeleteLot(id int64) error

	// Employees
	CreateEmployee(e *models.Employee) error
	GetEmployee(id int64) (*models.Employee, error)
	ListEmployees() ([]models.EmployeeSummary, error)
	SetEmployeeActive(id int64, active bool) error
	CreateAssignment(a *models.Assignment) error
	ListAssignments(employeeID int64) ([]models.Assignment, error)
	CreateRating(r *models.Rating) error

	// Drafts
	SaveDraft(d *models.DraftDemand) error
	GetDraft(id string) (*models.DraftDemand, error)
	ListPendingDrafts() ([]models.DraftDemand, error)
	MarkDraftApplied(id string) error
	ApplyDraft(d *models.DraftDemand) error

	// Metrics
	GetDashboardStats() (*models.DashboardStats, error)
}
