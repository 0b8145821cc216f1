package store

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lucasmtn/obratrack/internal/models"
)

func newTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := New(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func seedService(t *testing.T, db *DB) int64 {
	t.Helper()
	require.NoError(t, db.SeedServiceTypes([]string{"Elétrica"}))
	types, err := db.ListServiceTypes()
	require.NoError(t, err)
	require.NotEmpty(t, types)
	return types[0].ID
}

func TestSeedServiceTypesIdempotent(t *testing.T) {
	db := newTestDB(t)
	require.NoError(t, db.SeedServiceTypes([]string{"Elétrica", "Pintura"}))
	require.NoError(t, db.SeedServiceTypes([]string{"Elétrica", "Pintura"}))

	types, err := db.ListServiceTypes()
	require.NoError(t, err)
	assert.Len(t, types, 2)
}

func TestDemandLifecycle(t *testing.T) {
	db := newTestDB(t)
	service := seedService(t, db)

	d := &models.Demand{Block: "A", Apartment: "101", ServiceTypeID: service, Description: "tomada solta"}
	require.NoError(t, db.CreateDemand(d))
	assert.NotZero(t, d.ID)
	assert.Equal(t, models.DemandPending, d.Status)
	assert.False(t, d.CreatedAt.IsZero())

	require.NoError(t, db.ResolveDemand(d.ID))
	got, err := db.GetDemand(d.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, models.DemandResolved, got.Status)
	require.NotNil(t, got.ResolvedAt)

	require.NoError(t, db.ReopenDemand(d.ID))
	got, err = db.GetDemand(d.ID)
	require.NoError(t, err)
	assert.Equal(t, models.DemandPending, got.Status)
	assert.Nil(t, got.ResolvedAt)

	require.NoError(t, db.DeleteDemand(d.ID))
	got, err = db.GetDemand(d.ID)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestListDemandsFilter(t *testing.T) {
	db := newTestDB(t)
	service := seedService(t, db)

	mk := func(block, apt string) {
		d := &models.Demand{Block: block, Apartment: apt, ServiceTypeID: service}
		require.NoError(t, db.CreateDemand(d))
	}
	mk("A", "101")
	mk("A", "102")
	mk("B", "101")

	all, err := db.ListDemands(models.DemandFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 3)

	blockA, err := db.ListDemands(models.DemandFilter{Block: "A"})
	require.NoError(t, err)
	assert.Len(t, blockA, 2)

	apt101A, err := db.ListDemands(models.DemandFilter{Block: "A", Apartment: "101"})
	require.NoError(t, err)
	assert.Len(t, apt101A, 1)

	pending, err := db.ListDemands(models.DemandFilter{Status: models.DemandPending})
	require.NoError(t, err)
	assert.Len(t, pending, 3)
}

func TestScheduleWithItems(t *testing.T) {
	db := newTestDB(t)
	floor := 2
	apt := "201"

	sched := &models.Schedule{Name: "Elétrica bloco A", Deadline: time.Now().AddDate(0, 1, 0)}
	items := []models.ScheduleItem{
		{Block: "A"},
		{Block: "B", Floor: &floor, Apartment: &apt},
	}
	require.NoError(t, db.CreateSchedule(sched, items))
	assert.NotZero(t, sched.ID)
	assert.NotZero(t, items[0].ID)
	assert.NotZero(t, items[1].ID)

	got, err := db.ListScheduleItems(sched.ID)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "A", got[0].Block)
	assert.Nil(t, got[0].Floor)
	require.NotNil(t, got[1].Floor)
	assert.Equal(t, 2, *got[1].Floor)
	require.NotNil(t, got[1].Apartment)
	assert.Equal(t, "201", *got[1].Apartment)
	assert.Nil(t, got[1].ServiceTypeID)

	require.NoError(t, db.DeleteSchedule(sched.ID))
	got, err = db.ListScheduleItems(sched.ID)
	require.NoError(t, err)
	assert.Empty(t, got, "items cascade with the schedule")
}

func TestOpeningInstall(t *testing.T) {
	db := newTestDB(t)

	o := &models.Opening{Kind: models.OpeningDoor, Block: "C", Apartment: "303", Label: "porta de entrada"}
	require.NoError(t, db.CreateOpening(o))
	assert.Equal(t, models.InstallPending, o.Status)

	require.NoError(t, db.InstallOpening(o.ID))
	got, err := db.GetOpening(o.ID)
	require.NoError(t, err)
	assert.Equal(t, models.InstallInstalled, got.Status)
	assert.NotNil(t, got.InstalledAt)

	doors, err := db.ListOpenings(models.OpeningDoor, "C")
	require.NoError(t, err)
	assert.Len(t, doors, 1)

	windows, err := db.ListOpenings(models.OpeningWindow, "")
	require.NoError(t, err)
	assert.Empty(t, windows)
}

func TestPaintingUpsert(t *testing.T) {
	db := newTestDB(t)

	require.NoError(t, db.SetPaintingStage("A", 1, models.PaintFirstCoat))
	require.NoError(t, db.SetPaintingStage("A", 1, models.PaintFinished))
	require.NoError(t, db.SetPaintingStage("A", 2, models.PaintFirstCoat))

	rows, err := db.ListPaintings("A")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, models.PaintFinished, rows[0].Stage)
	assert.Equal(t, models.PaintFirstCoat, rows[1].Stage)
}

func TestMeasurementRoundTrip(t *testing.T) {
	db := newTestDB(t)
	service := seedService(t, db)

	m := &models.Measurement{
		Block:         "A",
		Apartment:     "101",
		ServiceTypeID: service,
		Label:         "nível do contrapiso",
		Expected:      decimal.RequireFromString("2.005"),
		Actual:        decimal.RequireFromString("2.010"),
		Tolerance:     decimal.RequireFromString("0.01"),
	}
	require.NoError(t, db.CreateMeasurement(m))

	list, err := db.ListMeasurements()
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.True(t, list[0].Expected.Equal(m.Expected))
	assert.True(t, list[0].Pass())
}

func TestLotStatusProgression(t *testing.T) {
	db := newTestDB(t)

	l := &models.MaterialLot{Code: "CER-2026-001", Description: "Porcelanato 60x60", Quantity: 840, Block: "A"}
	require.NoError(t, db.CreateLot(l))
	assert.Equal(t, models.LotOrdered, l.Status)

	// Applying before receiving is a no-op.
	require.NoError(t, db.ApplyLot(l.ID))
	got, err := db.GetLot(l.ID)
	require.NoError(t, err)
	assert.Equal(t, models.LotOrdered, got.Status)

	require.NoError(t, db.ReceiveLot(l.ID))
	got, _ = db.GetLot(l.ID)
	assert.Equal(t, models.LotReceived, got.Status)
	assert.NotNil(t, got.ReceivedAt)

	require.NoError(t, db.ApplyLot(l.ID))
	got, _ = db.GetLot(l.ID)
	assert.Equal(t, models.LotApplied, got.Status)
}

func TestEmployeeRatingsAndAssignments(t *testing.T) {
	db := newTestDB(t)
	service := seedService(t, db)

	e := &models.Employee{Name: "José Ribamar", Role: "Eletricista"}
	require.NoError(t, db.CreateEmployee(e))
	assert.True(t, e.Active)

	require.NoError(t, db.CreateRating(&models.Rating{EmployeeID: e.ID, Score: 4}))
	require.NoError(t, db.CreateRating(&models.Rating{EmployeeID: e.ID, Score: 5, Note: "caprichoso"}))
	require.NoError(t, db.CreateAssignment(&models.Assignment{EmployeeID: e.ID, Block: "A", ServiceTypeID: service}))

	summaries, err := db.ListEmployees()
	require.NoError(t, err)
	require.Len(t, summaries, 1)
	assert.InDelta(t, 4.5, summaries[0].AvgScore, 0.001)
	assert.Equal(t, 2, summaries[0].RatingCount)
	assert.Len(t, summaries[0].Assignments, 1)

	require.NoError(t, db.SetEmployeeActive(e.ID, false))
	got, err := db.GetEmployee(e.ID)
	require.NoError(t, err)
	assert.False(t, got.Active)
}

func TestDraftIdempotence(t *testing.T) {
	db := newTestDB(t)

	d := &models.DraftDemand{ID: "4f1c6f0e-0000-0000-0000-000000000001", Block: "A", Apartment: "101", ServiceTypeID: 1}
	require.NoError(t, db.SaveDraft(d))
	require.NoError(t, db.SaveDraft(d))

	pending, err := db.ListPendingDrafts()
	require.NoError(t, err)
	require.Len(t, pending, 1)

	require.NoError(t, db.MarkDraftApplied(d.ID))
	pending, err = db.ListPendingDrafts()
	require.NoError(t, err)
	assert.Empty(t, pending)

	got, err := db.GetDraft(d.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.True(t, got.Applied)
}

func TestApplyDraft(t *testing.T) {
	db := newTestDB(t)
	service := seedService(t, db)

	d := &models.DraftDemand{
		ID: "4f1c6f0e-0000-0000-0000-000000000002", Block: "B", Apartment: "202",
		ServiceTypeID: service, Description: "trinca no reboco",
	}
	require.NoError(t, db.SaveDraft(d))
	require.NoError(t, db.ApplyDraft(d))

	got, err := db.GetDraft(d.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.True(t, got.Applied)

	demands, err := db.ListDemands(models.DemandFilter{Block: "B"})
	require.NoError(t, err)
	require.Len(t, demands, 1)
	assert.Equal(t, "trinca no reboco", demands[0].Description)
}

func TestGetDashboardStats(t *testing.T) {
	db := newTestDB(t)
	service := seedService(t, db)

	d1 := &models.Demand{Block: "A", Apartment: "101", ServiceTypeID: service}
	d2 := &models.Demand{Block: "A", Apartment: "102", ServiceTypeID: service}
	require.NoError(t, db.CreateDemand(d1))
	require.NoError(t, db.CreateDemand(d2))
	require.NoError(t, db.ResolveDemand(d1.ID))

	o := &models.Opening{Kind: models.OpeningDoor, Block: "A", Apartment: "101"}
	require.NoError(t, db.CreateOpening(o))
	require.NoError(t, db.InstallOpening(o.ID))

	require.NoError(t, db.SetPaintingStage("A", 1, models.PaintFinished))
	require.NoError(t, db.CreateLot(&models.MaterialLot{Code: "L1", Block: "A"}))
	require.NoError(t, db.CreateEmployee(&models.Employee{Name: "Maria"}))
	require.NoError(t, db.CreateSchedule(&models.Schedule{Name: "s", Deadline: time.Now()}, nil))

	failing := &models.Measurement{
		Block: "A", Apartment: "101", ServiceTypeID: service, Label: "prumo",
		Expected:  decimal.RequireFromString("1"),
		Actual:    decimal.RequireFromString("2"),
		Tolerance: decimal.RequireFromString("0.5"),
	}
	require.NoError(t, db.CreateMeasurement(failing))

	stats, err := db.GetDashboardStats()
	require.NoError(t, err)
	assert.Equal(t, 2, stats.TotalDemands)
	assert.Equal(t, 1, stats.PendingDemands)
	assert.Equal(t, 1, stats.ResolvedDemands)
	assert.Equal(t, 1, stats.OpeningsInstalled)
	assert.Equal(t, 1, stats.OpeningsTotal)
	assert.Equal(t, 1, stats.PaintingsFinished)
	assert.Equal(t, 1, stats.LotsTotal)
	assert.Equal(t, 0, stats.LotsReceived)
	assert.Equal(t, 1, stats.ActiveEmployees)
	assert.Equal(t, 1, stats.Schedules)
	assert.Equal(t, 1, stats.MeasurementsFailed)
}
