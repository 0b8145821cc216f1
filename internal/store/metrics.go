// store/metrics.go - Dashboard aggregates
package store

import (
	"github.com/lucasmtn/obratrack/internal/models"
)

// GetDashboardStats computes the overview counters in a handful of
// aggregate queries.
func (db *DB) GetDashboardStats() (*models.DashboardStats, error) {
	stats := &models.DashboardStats{}

	err := db.QueryRow(qMetricsDemands).
		Scan(&stats.TotalDemands, &stats.PendingDemands, &stats.ResolvedDemands)
	if err != nil {
		return nil, err
	}

	err = db.QueryRow(qMetricsOpenings).Scan(&stats.OpeningsTotal, &stats.OpeningsInstalled)
	if err != nil {
		return nil, err
	}

	err = db.QueryRow(qMetricsPaintings).Scan(&stats.PaintingsTotal, &stats.PaintingsFinished)
	if err != nil {
		return nil, err
	}

	err = db.QueryRow(qMetricsLots).Scan(&stats.LotsTotal, &stats.LotsReceived)
	if err != nil {
		return nil, err
	}

	if err = db.QueryRow(qMetricsEmployees).Scan(&stats.ActiveEmployees); err != nil {
		return nil, err
	}
	if err = db.QueryRow(qMetricsSchedules).Scan(&stats.Schedules); err != nil {
		return nil, err
	}
	if err = db.QueryRow(qMetricsDrafts).Scan(&stats.PendingDrafts); err != nil {
		return nil, err
	}

	// Failed measurements are counted in Go: pass/fail is a decimal
	// comparison the model owns, not something worth duplicating in SQL.
	measurements, err := db.ListMeasurements()
	if err != nil {
		return nil, err
	}
	for i := range measurements {
		if !measurements[i].Pass() {
			stats.MeasurementsFailed++
		}
	}

	return stats, nil
}
