package progress

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lucasmtn/obratrack/internal/models"
)

func intPtr(v int) *int              { return &v }
func int64Ptr(v int64) *int64        { return &v }
func strPtr(v string) *string        { return &v }
func timePtr(v time.Time) *time.Time { return &v }

func blockItem(block string) models.ScheduleItem {
	return models.ScheduleItem{Block: block}
}

func demand(block, apt string, service int64, status models.DemandStatus) models.Demand {
	return models.Demand{Block: block, Apartment: apt, ServiceTypeID: service, Status: status}
}

func TestMatchesFilters(t *testing.T) {
	tests := []struct {
		name   string
		item   models.ScheduleItem
		demand models.Demand
		want   bool
	}{
		{
			name:   "block only matches same block",
			item:   blockItem("A"),
			demand: demand("A", "101", 1, models.DemandPending),
			want:   true,
		},
		{
			name:   "block mismatch",
			item:   blockItem("A"),
			demand: demand("B", "101", 1, models.DemandPending),
			want:   false,
		},
		{
			name:   "floor filter matches same floor",
			item:   models.ScheduleItem{Block: "A", Floor: intPtr(2)},
			demand: demand("A", "204", 1, models.DemandPending),
			want:   true,
		},
		{
			name:   "floor filter rejects other floor",
			item:   models.ScheduleItem{Block: "A", Floor: intPtr(2)},
			demand: demand("A", "301", 1, models.DemandPending),
			want:   false,
		},
		{
			name:   "floor filter rejects other block",
			item:   models.ScheduleItem{Block: "A", Floor: intPtr(2)},
			demand: demand("B", "201", 1, models.DemandPending),
			want:   false,
		},
		{
			name:   "apartment filter exact",
			item:   models.ScheduleItem{Block: "A", Apartment: strPtr("101")},
			demand: demand("A", "101", 1, models.DemandPending),
			want:   true,
		},
		{
			name:   "apartment filter rejects others",
			item:   models.ScheduleItem{Block: "A", Apartment: strPtr("101")},
			demand: demand("A", "102", 1, models.DemandPending),
			want:   false,
		},
		{
			name:   "service filter exact",
			item:   models.ScheduleItem{Block: "A", ServiceTypeID: int64Ptr(2)},
			demand: demand("A", "101", 2, models.DemandPending),
			want:   true,
		},
		{
			name:   "service filter rejects others",
			item:   models.ScheduleItem{Block: "A", ServiceTypeID: int64Ptr(2)},
			demand: demand("A", "101", 3, models.DemandPending),
			want:   false,
		},
		{
			name: "all filters combined",
			item: models.ScheduleItem{
				Block: "A", Floor: intPtr(1), Apartment: strPtr("104"), ServiceTypeID: int64Ptr(7),
			},
			demand: demand("A", "104", 7, models.DemandResolved),
			want:   true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, matches(tt.demand, tt.item))
		})
	}
}

func TestComputeMissingDeadline(t *testing.T) {
	_, err := Compute(models.Schedule{}, nil, nil, time.Now())
	require.ErrorIs(t, err, ErrMissingDeadline)
}

func TestComputeEmptyItemsMatchNothing(t *testing.T) {
	now := time.Now()
	sched := models.Schedule{Deadline: now.AddDate(0, 1, 0)}
	demands := []models.Demand{demand("A", "101", 1, models.DemandResolved)}

	s, err := Compute(sched, nil, demands, now)
	require.NoError(t, err)
	assert.Equal(t, 0, s.TotalDemands)
	assert.Equal(t, 0, s.ResolvedDemands)
	assert.Equal(t, 0, s.PendingDemands)
	assert.Equal(t, 0, s.ProgressPercentage)
	assert.Equal(t, "N/A", s.AvgResolutionTime)
	assert.Equal(t, StatusOnTrack, s.StatusText)
	assert.Equal(t, ColorOK, s.StatusColor)
}

func TestComputeCriticalDeadline(t *testing.T) {
	// 10 demands in block A, 7 resolved, deadline in 2 days.
	now := time.Now()
	sched := models.Schedule{Deadline: now.Add(48 * time.Hour)}
	items := []models.ScheduleItem{blockItem("A")}

	var demands []models.Demand
	for i := 0; i < 10; i++ {
		status := models.DemandPending
		if i < 7 {
			status = models.DemandResolved
		}
		demands = append(demands, demand("A", "101", 1, status))
	}

	s, err := Compute(sched, items, demands, now)
	require.NoError(t, err)
	assert.Equal(t, 10, s.TotalDemands)
	assert.Equal(t, 7, s.ResolvedDemands)
	assert.Equal(t, 3, s.PendingDemands)
	assert.Equal(t, 70, s.ProgressPercentage)
	assert.Equal(t, 2, s.DaysRemaining)
	assert.False(t, s.IsExpired)
	assert.Equal(t, StatusCritical, s.StatusText)
	assert.Equal(t, ColorWarning, s.StatusColor)
}

func TestComputeOverdue(t *testing.T) {
	now := time.Now()
	sched := models.Schedule{Deadline: now.Add(-25 * time.Hour)}
	items := []models.ScheduleItem{blockItem("A")}
	demands := []models.Demand{demand("A", "101", 1, models.DemandPending)}

	s, err := Compute(sched, items, demands, now)
	require.NoError(t, err)
	assert.True(t, s.IsExpired)
	assert.Equal(t, -1, s.DaysRemaining)
	assert.Equal(t, StatusOverdue, s.StatusText)
	assert.Equal(t, ColorCritical, s.StatusColor)
}

func TestComputeExpiredButCompleteIsConcluido(t *testing.T) {
	now := time.Now()
	sched := models.Schedule{Deadline: now.Add(-48 * time.Hour)}
	items := []models.ScheduleItem{blockItem("A")}
	demands := []models.Demand{demand("A", "101", 1, models.DemandResolved)}

	s, err := Compute(sched, items, demands, now)
	require.NoError(t, err)
	assert.True(t, s.IsExpired)
	assert.Equal(t, 100, s.ProgressPercentage)
	assert.Equal(t, StatusComplete, s.StatusText)
	assert.Equal(t, ColorInfo, s.StatusColor)
}

func TestComputeOnTrack(t *testing.T) {
	now := time.Now()
	sched := models.Schedule{Deadline: now.AddDate(0, 0, 30)}
	items := []models.ScheduleItem{blockItem("A")}
	demands := []models.Demand{
		demand("A", "101", 1, models.DemandResolved),
		demand("A", "102", 1, models.DemandPending),
	}

	s, err := Compute(sched, items, demands, now)
	require.NoError(t, err)
	assert.Equal(t, 50, s.ProgressPercentage)
	assert.Equal(t, StatusOnTrack, s.StatusText)
	assert.Equal(t, ColorOK, s.StatusColor)
}

func TestComputeOrAcrossItems(t *testing.T) {
	now := time.Now()
	sched := models.Schedule{Deadline: now.AddDate(0, 0, 30)}
	items := []models.ScheduleItem{
		{Block: "A", Floor: intPtr(1)},
		{Block: "B"},
	}
	demands := []models.Demand{
		demand("A", "101", 1, models.DemandPending), // matches first item
		demand("A", "201", 1, models.DemandPending), // matches neither
		demand("B", "504", 1, models.DemandPending), // matches second item
		demand("C", "101", 1, models.DemandPending), // matches neither
	}

	s, err := Compute(sched, items, demands, now)
	require.NoError(t, err)
	assert.Equal(t, 2, s.TotalDemands)
}

func TestComputeCountsAlwaysConsistent(t *testing.T) {
	now := time.Now()
	sched := models.Schedule{Deadline: now.AddDate(0, 0, 30)}
	items := []models.ScheduleItem{blockItem("A")}

	var demands []models.Demand
	for i := 0; i < 9; i++ {
		status := models.DemandPending
		if i%3 == 0 {
			status = models.DemandResolved
		}
		demands = append(demands, demand("A", "101", int64(i), status))
	}

	s, err := Compute(sched, items, demands, now)
	require.NoError(t, err)
	assert.Equal(t, s.TotalDemands, s.ResolvedDemands+s.PendingDemands)
	assert.Equal(t, 33, s.ProgressPercentage) // 3/9 rounded
}

func TestComputeIdempotent(t *testing.T) {
	now := time.Now()
	sched := models.Schedule{Deadline: now.AddDate(0, 0, 10)}
	items := []models.ScheduleItem{blockItem("A")}
	created := now.Add(-72 * time.Hour)
	resolvedAt := now.Add(-24 * time.Hour)
	demands := []models.Demand{
		{Block: "A", Apartment: "101", Status: models.DemandResolved, CreatedAt: created, ResolvedAt: timePtr(resolvedAt)},
	}

	first, err := Compute(sched, items, demands, now)
	require.NoError(t, err)
	second, err := Compute(sched, items, demands, now)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestAvgResolution(t *testing.T) {
	now := time.Now()
	mk := func(hoursOpen int) models.Demand {
		created := now.Add(-time.Duration(hoursOpen) * time.Hour)
		return models.Demand{
			Block: "A", Apartment: "101", Status: models.DemandResolved,
			CreatedAt: created, ResolvedAt: timePtr(now),
		}
	}

	t.Run("mean of resolved demands", func(t *testing.T) {
		got := avgResolution([]models.Demand{mk(10), mk(20)})
		assert.Equal(t, "15h", got)
	})

	t.Run("pending demands excluded", func(t *testing.T) {
		got := avgResolution([]models.Demand{mk(10), demand("A", "101", 1, models.DemandPending)})
		assert.Equal(t, "10h", got)
	})

	t.Run("zero timestamps excluded", func(t *testing.T) {
		broken := models.Demand{Block: "A", Apartment: "101", Status: models.DemandResolved}
		got := avgResolution([]models.Demand{broken})
		assert.Equal(t, "N/A", got)
	})

	t.Run("no resolved demands", func(t *testing.T) {
		got := avgResolution(nil)
		assert.Equal(t, "N/A", got)
	})
}

func TestDaysRemaining(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	tests := []struct {
		name     string
		deadline time.Time
		want     int
	}{
		{name: "two days ahead", deadline: now.Add(48 * time.Hour), want: 2},
		{name: "partial day rounds up", deadline: now.Add(36 * time.Hour), want: 2},
		{name: "one day overdue", deadline: now.Add(-24 * time.Hour), want: -1},
		{name: "same instant", deadline: now, want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, daysRemaining(tt.deadline, now))
		})
	}
}
