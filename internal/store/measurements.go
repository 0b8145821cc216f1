// store/measurements.go - QA measurement operations
package store

import (
	"database/sql"

	"github.com/lucasmtn/obratrack/internal/models"
)

type measurementScanner struct {
	dest *models.Measurement
}

func (s measurementScanner) Scan(rows *sql.Rows) error {
	return rows.Scan(&s.dest.ID, &s.dest.Block, &s.dest.Apartment, &s.dest.ServiceTypeID,
		&s.dest.Label, &s.dest.Expected, &s.dest.Actual, &s.dest.Tolerance, &s.dest.MeasuredAt)
}

// CreateMeasurement inserts a QA check. Decimal values round-trip
// through TEXT columns via decimal's Valuer/Scanner.
func (db *DB) CreateMeasurement(m *models.Measurement) error {
	return db.QueryRow(qMeasurementInsert, m.Block, m.Apartment, m.ServiceTypeID,
		m.Label, m.Expected, m.Actual, m.Tolerance).Scan(&m.ID, &m.MeasuredAt)
}

// ListMeasurements returns all measurements, newest first
func (db *DB) ListMeasurements() ([]models.Measurement, error) {
	rows, err := db.Query(qMeasurementsAll)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanAll(rows, func() *models.Measurement { return &models.Measurement{} },
		func(m *models.Measurement) scanner { return measurementScanner{m} })
}

// DeleteMeasurement removes a measurement
func (db *DB) DeleteMeasurement(id int64) error {
	_, err := db.Exec(qMeasurementDelete, id)
	return err
}
