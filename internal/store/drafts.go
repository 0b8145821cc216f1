// store/drafts.go - Offline demand draft operations
package store

import (
	"database/sql"

	"github.com/lucasmtn/obratrack/internal/models"
)

type draftScanner struct {
	dest *models.DraftDemand
}

func (s draftScanner) Scan(rows *sql.Rows) error {
	return rows.Scan(&s.dest.ID, &s.dest.Block, &s.dest.Apartment, &s.dest.ServiceTypeID,
		&s.dest.Description, &s.dest.CreatedAt, &s.dest.Applied)
}

// SaveDraft stores a draft submission. Re-saving an existing client ID
// is a no-op so retried syncs stay idempotent.
func (db *DB) SaveDraft(d *models.DraftDemand) error {
	_, err := db.Exec(qDraftUpsert, d.ID, d.Block, d.Apartment, d.ServiceTypeID, d.Description)
	return err
}

// GetDraft fetches a draft by its client-generated ID
func (db *DB) GetDraft(id string) (*models.DraftDemand, error) {
	d := &models.DraftDemand{}
	err := db.QueryRow(qDraftByID, id).Scan(&d.ID, &d.Block, &d.Apartment, &d.ServiceTypeID,
		&d.Description, &d.CreatedAt, &d.Applied)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return d, err
}

// ListPendingDrafts returns unapplied drafts, oldest first
func (db *DB) ListPendingDrafts() ([]models.DraftDemand, error) {
	rows, err := db.Query(qDraftsPending)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanAll(rows, func() *models.DraftDemand { return &models.DraftDemand{} },
		func(d *models.DraftDemand) scanner { return draftScanner{d} })
}

// MarkDraftApplied flags a draft as turned into a demand
func (db *DB) MarkDraftApplied(id string) error {
	_, err := db.Exec(qDraftMarkApplied, id)
	return err
}

// ApplyDraft turns a saved draft into a demand and flags the draft
// applied in one transaction, so a failure cannot leave a demand
// behind for a retried sync to duplicate.
func (db *DB) ApplyDraft(d *models.DraftDemand) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	demand := models.Demand{
		Block:         d.Block,
		Apartment:     d.Apartment,
		ServiceTypeID: d.ServiceTypeID,
		Description:   d.Description,
	}
	err = tx.QueryRow(qDemandInsert, demand.Block, demand.Apartment, demand.ServiceTypeID,
		demand.Description, demand.PhotoPath).Scan(&demand.ID, &demand.Status, &demand.CreatedAt)
	if err != nil {
		return err
	}
	if _, err := tx.Exec(qDraftMarkApplied, d.ID); err != nil {
		return err
	}
	return tx.Commit()
}
