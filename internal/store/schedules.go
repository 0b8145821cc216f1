// store/schedules.go - Schedule and scope item operations
package store

import (
	"database/sql"
	"fmt"

	"github.com/lucasmtn/obratrack/internal/models"
)

// scheduleScanner for DRY row scanning
type scheduleScanner struct {
	dest *models.Schedule
}

func (s scheduleScanner) Scan(rows *sql.Rows) error {
	return rows.Scan(&s.dest.ID, &s.dest.Name, &s.dest.Deadline, &s.dest.CreatedBy, &s.dest.CreatedAt)
}

func (s scheduleScanner) ScanRow(row *sql.Row) error {
	return row.Scan(&s.dest.ID, &s.dest.Name, &s.dest.Deadline, &s.dest.CreatedBy, &s.dest.CreatedAt)
}

// CreateSchedule inserts a schedule and its scope items in one transaction.
// A schedule with no items is legal; it simply matches nothing.
func (db *DB) CreateSchedule(sched *models.Schedule, items []models.ScheduleItem) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	err = tx.QueryRow(qScheduleInsert, sched.Name, sched.Deadline, sched.CreatedBy).
		Scan(&sched.ID, &sched.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert schedule: %w", err)
	}

	for i := range items {
		it := &items[i]
		it.ScheduleID = sched.ID
		err := tx.QueryRow(qScheduleItemInsert, sched.ID, it.Block,
			nullableInt(it.Floor), nullableString(it.Apartment), nullableInt64(it.ServiceTypeID)).
			Scan(&it.ID)
		if err != nil {
			return fmt.Errorf("insert schedule item: %w", err)
		}
	}

	return tx.Commit()
}

// GetSchedule fetches a schedule by ID
func (db *DB) GetSchedule(id int64) (*models.Schedule, error) {
	sched := &models.Schedule{}
	err := scheduleScanner{sched}.ScanRow(db.QueryRow(qScheduleByID, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return sched, err
}

// ListSchedules returns all schedules ordered by deadline
func (db *DB) ListSchedules() ([]models.Schedule, error) {
	rows, err := db.Query(qSchedulesAll)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanAll(rows, func() *models.Schedule { return &models.Schedule{} },
		func(s *models.Schedule) scanner { return scheduleScanner{s} })
}

// ListScheduleItems returns the scope items of one schedule
func (db *DB) ListScheduleItems(scheduleID int64) ([]models.ScheduleItem, error) {
	rows, err := db.Query(qScheduleItemsBySchedule, scheduleID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []models.ScheduleItem
	for rows.Next() {
		var it models.ScheduleItem
		var floor sql.NullInt64
		var apartment sql.NullString
		var service sql.NullInt64
		if err := rows.Scan(&it.ID, &it.ScheduleID, &it.Block, &floor, &apartment, &service); err != nil {
			return nil, err
		}
		if floor.Valid {
			f := int(floor.Int64)
			it.Floor = &f
		}
		if apartment.Valid {
			a := apartment.String
			it.Apartment = &a
		}
		if service.Valid {
			s := service.Int64
			it.ServiceTypeID = &s
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

// DeleteSchedule removes a schedule (cascades to its items)
func (db *DB) DeleteSchedule(id int64) error {
	_, err := db.Exec(qScheduleDelete, id)
	return err
}

// nullable* helpers turn optional model fields into SQL NULLs

func nullableInt(v *int) any {
	if v == nil {
		return nil
	}
	return *v
}

func nullableInt64(v *int64) any {
	if v == nil {
		return nil
	}
	return *v
}

func nullableString(v *string) any {
	if v == nil {
		return nil
	}
	return *v
}
