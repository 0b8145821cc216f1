// store/works.go - Opening and painting operations
package store

import (
	"database/sql"
	"strings"

	"github.com/lucasmtn/obratrack/internal/models"
)

type openingScanner struct {
	dest *models.Opening
}

func (s openingScanner) Scan(rows *sql.Rows) error {
	var installed sql.NullTime
	err := rows.Scan(&s.dest.ID, &s.dest.Kind, &s.dest.Block, &s.dest.Apartment,
		&s.dest.Label, &s.dest.Status, &installed)
	if err != nil {
		return err
	}
	if installed.Valid {
		t := installed.Time
		s.dest.InstalledAt = &t
	}
	return nil
}

// CreateOpening inserts a door or window frame to track
func (db *DB) CreateOpening(o *models.Opening) error {
	return db.QueryRow(qOpeningInsert, o.Kind, o.Block, o.Apartment, o.Label).
		Scan(&o.ID, &o.Status)
}

// GetOpening fetches one opening by ID
func (db *DB) GetOpening(id int64) (*models.Opening, error) {
	o := &models.Opening{}
	var installed sql.NullTime
	err := db.QueryRow(qOpeningByID, id).Scan(&o.ID, &o.Kind, &o.Block, &o.Apartment,
		&o.Label, &o.Status, &installed)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if installed.Valid {
		t := installed.Time
		o.InstalledAt = &t
	}
	return o, nil
}

// ListOpenings returns openings, optionally filtered by kind and block
func (db *DB) ListOpenings(kind models.OpeningKind, block string) ([]models.Opening, error) {
	query := `SELECT ` + openingColumns + ` FROM ` + openingTable
	var conds []string
	var args []any

	if kind != "" {
		conds = append(conds, "kind = ?")
		args = append(args, kind)
	}
	if block != "" {
		conds = append(conds, "block = ?")
		args = append(args, block)
	}
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY block, apartment, id"

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanAll(rows, func() *models.Opening { return &models.Opening{} },
		func(o *models.Opening) scanner { return openingScanner{o} })
}

// InstallOpening marks a pending opening installed, stamping installed_at
func (db *DB) InstallOpening(id int64) error {
	_, err := db.Exec(qOpeningInstall, id)
	return err
}

// DeleteOpening removes an opening
func (db *DB) DeleteOpening(id int64) error {
	_, err := db.Exec(qOpeningDelete, id)
	return err
}

type paintingScanner struct {
	dest *models.Painting
}

func (s paintingScanner) Scan(rows *sql.Rows) error {
	return rows.Scan(&s.dest.ID, &s.dest.Block, &s.dest.Floor, &s.dest.Stage, &s.dest.UpdatedAt)
}

// SetPaintingStage records the paint stage of one block floor (upsert)
func (db *DB) SetPaintingStage(block string, floor int, stage models.PaintStage) error {
	_, err := db.Exec(qPaintingUpsert, block, floor, stage)
	return err
}

// ListPaintings returns painting rows, for all blocks or one block
func (db *DB) ListPaintings(block string) ([]models.Painting, error) {
	var rows *sql.Rows
	var err error
	if block != "" {
		rows, err = db.Query(qPaintingsByBlock, block)
	} else {
		rows, err = db.Query(qPaintingsAll)
	}
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanAll(rows, func() *models.Painting { return &models.Painting{} },
		func(p *models.Painting) scanner { return paintingScanner{p} })
}
