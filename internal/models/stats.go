// models/stats.go - Dashboard aggregates
package models

// DashboardStats for the overview cards
type DashboardStats struct {
	TotalDemands       int `json:"total_demands"`
	PendingDemands     int `json:"pending_demands"`
	ResolvedDemands    int `json:"resolved_demands"`
	OpeningsInstalled  int `json:"openings_installed"`
	OpeningsTotal      int `json:"openings_total"`
	PaintingsFinished  int `json:"paintings_finished"`
	PaintingsTotal     int `json:"paintings_total"`
	MeasurementsFailed int `json:"measurements_failed"`
	LotsReceived       int `json:"lots_received"`
	LotsTotal          int `json:"lots_total"`
	ActiveEmployees    int `json:"active_employees"`
	Schedules          int `json:"schedules"`
	PendingDrafts      int `json:"pending_drafts"`
}
