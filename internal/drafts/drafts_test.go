package drafts

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lucasmtn/obratrack/internal/models"
)

// fakeStore records applied drafts in memory
type fakeStore struct {
	drafts   map[string]*models.DraftDemand
	demands  []*models.Demand
	failNext bool
}

func newFakeStore() *fakeStore {
	return &fakeStore{drafts: map[string]*models.DraftDemand{}}
}

func (f *fakeStore) GetDraft(id string) (*models.DraftDemand, error) {
	return f.drafts[id], nil
}

func (f *fakeStore) SaveDraft(d *models.DraftDemand) error {
	if _, ok := f.drafts[d.ID]; !ok {
		copied := *d
		f.drafts[d.ID] = &copied
	}
	return nil
}

func (f *fakeStore) ApplyDraft(d *models.DraftDemand) error {
	if f.failNext {
		f.failNext = false
		return fmt.Errorf("disk full")
	}
	demand := &models.Demand{
		ID:            int64(len(f.demands) + 1),
		Block:         d.Block,
		Apartment:     d.Apartment,
		ServiceTypeID: d.ServiceTypeID,
		Description:   d.Description,
	}
	f.demands = append(f.demands, demand)
	f.drafts[d.ID].Applied = true
	return nil
}

const (
	draftA = "0b8f7a3e-52f8-4a46-9b6e-2f54a83a4f01"
	draftB = "0b8f7a3e-52f8-4a46-9b6e-2f54a83a4f02"
)

func TestSyncAppliesSequentially(t *testing.T) {
	store := newFakeStore()
	payload := fmt.Sprintf(`[
		{"id": %q, "block": "A", "apartment": "101", "service_type_id": 1, "description": "rejunte"},
		{"id": %q, "block": "B", "apartment": "204", "service_type_id": 2}
	]`, draftA, draftB)

	results, err := Sync(store, []byte(payload))
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.True(t, results[0].Applied)
	assert.True(t, results[1].Applied)
	require.Len(t, store.demands, 2)
	assert.Equal(t, "A", store.demands[0].Block)
	assert.Equal(t, "rejunte", store.demands[0].Description)
}

func TestSyncIdempotentResync(t *testing.T) {
	store := newFakeStore()
	payload := fmt.Sprintf(`[{"id": %q, "block": "A", "apartment": "101", "service_type_id": 1}]`, draftA)

	_, err := Sync(store, []byte(payload))
	require.NoError(t, err)

	results, err := Sync(store, []byte(payload))
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.True(t, results[0].Applied)
	assert.True(t, results[0].Skipped)
	assert.Len(t, store.demands, 1, "re-sync must not duplicate the demand")
}

func TestSyncInvalidRowsSkippedNotFatal(t *testing.T) {
	store := newFakeStore()
	payload := fmt.Sprintf(`[
		{"id": "not-a-uuid", "block": "A", "apartment": "101", "service_type_id": 1},
		{"id": %q, "block": "Z", "apartment": "101", "service_type_id": 1},
		{"id": %q, "block": "A", "apartment": "101", "service_type_id": 1}
	]`, draftA, draftB)

	results, err := Sync(store, []byte(payload))
	require.NoError(t, err)
	require.Len(t, results, 3)
	assert.NotEmpty(t, results[0].Error)
	assert.Contains(t, results[1].Error, "invalid block")
	assert.True(t, results[2].Applied)
	assert.Len(t, store.demands, 1)
}

func TestSyncStoreFailureReported(t *testing.T) {
	store := newFakeStore()
	store.failNext = true
	payload := fmt.Sprintf(`[{"id": %q, "block": "A", "apartment": "101", "service_type_id": 1}]`, draftA)

	results, err := Sync(store, []byte(payload))
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.False(t, results[0].Applied)
	assert.Contains(t, results[0].Error, "disk full")

	// The draft survives for the next sync attempt, and the failed
	// attempt left no demand behind to duplicate.
	results, err = Sync(store, []byte(payload))
	require.NoError(t, err)
	assert.True(t, results[0].Applied)
	assert.Len(t, store.demands, 1)
}

func TestSyncRejectsNonArrayPayload(t *testing.T) {
	_, err := Sync(newFakeStore(), []byte(`{"id": "x"}`))
	require.Error(t, err)
}
