// store/materials.go - Material lot operations
package store

import (
	"database/sql"

	"github.com/lucasmtn/obratrack/internal/models"
)

type lotScanner struct {
	dest *models.MaterialLot
}

func (s lotScanner) fields(received *sql.NullTime) []any {
	return []any{
		&s.dest.ID, &s.dest.Code, &s.dest.Description, &s.dest.Quantity,
		&s.dest.Block, &s.dest.Status, received, &s.dest.CreatedAt,
	}
}

func (s lotScanner) Scan(rows *sql.Rows) error {
	var received sql.NullTime
	if err := rows.Scan(s.fields(&received)...); err != nil {
		return err
	}
	if received.Valid {
		t := received.Time
		s.dest.ReceivedAt = &t
	}
	return nil
}

func (s lotScanner) ScanRow(row *sql.Row) error {
	var received sql.NullTime
	if err := row.Scan(s.fields(&received)...); err != nil {
		return err
	}
	if received.Valid {
		t := received.Time
		s.dest.ReceivedAt = &t
	}
	return nil
}

// CreateLot inserts a new material lot
func (db *DB) CreateLot(l *models.MaterialLot) error {
	return db.QueryRow(qLotInsert, l.Code, l.Description, l.Quantity, l.Block).
		Scan(&l.ID, &l.Status, &l.CreatedAt)
}

// GetLot fetches a lot by ID
func (db *DB) GetLot(id int64) (*models.MaterialLot, error) {
	l := &models.MaterialLot{}
	err := lotScanner{l}.ScanRow(db.QueryRow(qLotByID, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return l, err
}

// ListLots returns all material lots, newest first
func (db *DB) ListLots() ([]models.MaterialLot, error) {
	rows, err := db.Query(qLotsAll)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanAll(rows, func() *models.MaterialLot { return &models.MaterialLot{} },
		func(l *models.MaterialLot) scanner { return lotScanner{l} })
}

// ReceiveLot advances an ordered lot to received, stamping received_at
func (db *DB) ReceiveLot(id int64) error {
	_, err := db.Exec(qLotReceive, id)
	return err
}

// ApplyLot advances a received lot to applied
func (db *DB) ApplyLot(id int64) error {
	_, err := db.Exec(qLotApply, id)
	return err
}

// DeleteLot removes a lot
func (db *DB) DeleteLot(id int64) error {
	_, err := db.Exec(qLotDelete, id)
	return err
}
