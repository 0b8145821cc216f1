// Package drafts syncs queued demand submissions. Clients that lose
// connectivity park their form submissions locally and post them later
// as one JSON array; each draft carries a client-generated UUID so a
// retried sync never duplicates a demand.
package drafts

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/tidwall/gjson"

	"github.com/lucasmtn/obratrack/internal/models"
	"github.com/lucasmtn/obratrack/internal/site"
)

// Applier is the slice of the store the syncer needs. ApplyDraft must
// create the demand and flag the draft atomically; otherwise a retried
// sync could duplicate the demand.
type Applier interface {
	GetDraft(id string) (*models.DraftDemand, error)
	SaveDraft(d *models.DraftDemand) error
	ApplyDraft(d *models.DraftDemand) error
}

// Result reports the outcome for one draft in a sync batch.
type Result struct {
	ID      string `json:"id"`
	Applied bool   `json:"applied"`
	Skipped bool   `json:"skipped,omitempty"`
	Error   string `json:"error,omitempty"`
}

// Sync applies a JSON array of draft demand submissions sequentially,
// best effort: an invalid draft is reported and skipped, never aborts
// the batch. Drafts whose UUID was already applied are skipped.
func Sync(store Applier, payload []byte) ([]Result, error) {
	parsed := gjson.ParseBytes(payload)
	if !parsed.IsArray() {
		return nil, fmt.Errorf("sync payload must be a JSON array")
	}

	var results []Result
	for _, row := range parsed.Array() {
		results = append(results, syncOne(store, row))
	}
	return results, nil
}

func syncOne(store Applier, row gjson.Result) Result {
	draft, err := parseDraft(row)
	if err != nil {
		return Result{ID: row.Get("id").String(), Error: err.Error()}
	}

	existing, err := store.GetDraft(draft.ID)
	if err != nil {
		return Result{ID: draft.ID, Error: err.Error()}
	}
	if existing != nil && existing.Applied {
		return Result{ID: draft.ID, Applied: true, Skipped: true}
	}

	if err := store.SaveDraft(draft); err != nil {
		return Result{ID: draft.ID, Error: err.Error()}
	}
	if err := store.ApplyDraft(draft); err != nil {
		return Result{ID: draft.ID, Error: err.Error()}
	}

	return Result{ID: draft.ID, Applied: true}
}

// parseDraft extracts and validates one draft row. The payload shape
// is tolerated loosely; only the fields we need are read.
func parseDraft(row gjson.Result) (*models.DraftDemand, error) {
	id := row.Get("id").String()
	if _, err := uuid.Parse(id); err != nil {
		return nil, fmt.Errorf("invalid draft id %q", id)
	}

	block := row.Get("block").String()
	if !site.ValidBlock(block) {
		return nil, fmt.Errorf("invalid block %q", block)
	}

	apartment := row.Get("apartment").String()
	if !site.ValidApartment(apartment) {
		return nil, fmt.Errorf("invalid apartment %q", apartment)
	}

	service := row.Get("service_type_id").Int()
	if service <= 0 {
		return nil, fmt.Errorf("missing service_type_id")
	}

	return &models.DraftDemand{
		ID:            id,
		Block:         block,
		Apartment:     apartment,
		ServiceTypeID: service,
		Description:   row.Get("description").String(),
	}, nil
}
