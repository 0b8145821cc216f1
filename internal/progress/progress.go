// progress/progress.go - Schedule progress engine.
// Computes completion statistics for a schedule by cross-referencing
// its scope items against the full demand set. Pure: no I/O, no state,
// fully recomputable from its inputs at any time.
package progress

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/lucasmtn/obratrack/internal/models"
	"github.com/lucasmtn/obratrack/internal/site"
)

// ErrMissingDeadline signals a schedule without a usable deadline.
// Days-remaining and expiry cannot be computed, so callers must not
// render a progress card for such a schedule.
var ErrMissingDeadline = errors.New("schedule has no deadline")

// Color classifies the severity of a schedule status
type Color string

const (
	ColorOK       Color = "ok"
	ColorWarning  Color = "warning"
	ColorCritical Color = "critical"
	ColorInfo     Color = "info"
)

// Status labels shown on schedule cards
const (
	StatusOverdue  = "Atrasado"
	StatusCritical = "Prazo Crítico"
	StatusComplete = "Concluído"
	StatusOnTrack  = "No Prazo"
)

// criticalWindowDays is how close to the deadline a schedule may get
// before an incomplete one is flagged as critical.
const criticalWindowDays = 3

// Summary is the derived progress view for one schedule
type Summary struct {
	TotalDemands       int    `json:"total_demands"`
	ResolvedDemands    int    `json:"resolved_demands"`
	PendingDemands     int    `json:"pending_demands"`
	ProgressPercentage int    `json:"progress_percentage"`
	AvgResolutionTime  string `json:"avg_resolution_time"`
	DaysRemaining      int    `json:"days_remaining"`
	IsExpired          bool   `json:"is_expired"`
	StatusText         string `json:"status_text"`
	StatusColor        Color  `json:"status_color"`
}

// Compute derives the progress summary for sched from its scope items
// and the full demand collection, evaluated at now. A schedule with no
// items matches nothing and yields all-zero counts.
func Compute(sched models.Schedule, items []models.ScheduleItem, demands []models.Demand, now time.Time) (Summary, error) {
	if sched.Deadline.IsZero() {
		return Summary{}, ErrMissingDeadline
	}

	matched := match(items, demands)

	total := len(matched)
	resolved := 0
	for _, d := range matched {
		if d.Resolved() {
			resolved++
		}
	}

	pct := 0
	if total > 0 {
		pct = int(math.Round(float64(resolved) / float64(total) * 100))
	}

	days := daysRemaining(sched.Deadline, now)
	expired := days < 0

	text, color := classify(expired, days, pct)

	return Summary{
		TotalDemands:       total,
		ResolvedDemands:    resolved,
		PendingDemands:     total - resolved,
		ProgressPercentage: pct,
		AvgResolutionTime:  avgResolution(matched),
		DaysRemaining:      days,
		IsExpired:          expired,
		StatusText:         text,
		StatusColor:        color,
	}, nil
}

// match returns the demands covered by at least one scope item.
func match(items []models.ScheduleItem, demands []models.Demand) []models.Demand {
	var out []models.Demand
	for _, d := range demands {
		for _, it := range items {
			if matches(d, it) {
				out = append(out, d)
				break
			}
		}
	}
	return out
}

// matches tests one demand against one scope item: the block must
// always match, and every set filter must match; unset filters act as
// "any". The floor filter derives the demand's floor from its
// apartment number rather than comparing string prefixes, so the two
// stay consistent with the numbering scheme.
func matches(d models.Demand, it models.ScheduleItem) bool {
	if d.Block != it.Block {
		return false
	}
	if it.Floor != nil {
		floor, err := site.FloorFromApartment(d.Apartment)
		if err != nil || floor != *it.Floor {
			return false
		}
	}
	if it.Apartment != nil && d.Apartment != *it.Apartment {
		return false
	}
	if it.ServiceTypeID != nil && d.ServiceTypeID != *it.ServiceTypeID {
		return false
	}
	return true
}

// avgResolution formats the mean open-to-resolved duration of the
// matched demands as whole hours, e.g. "36h". Demands that are not
// resolved or carry zero timestamps are excluded; with nothing left
// the result is "N/A".
func avgResolution(matched []models.Demand) string {
	var sum time.Duration
	n := 0
	for _, d := range matched {
		if !d.Resolved() || d.ResolvedAt == nil || d.ResolvedAt.IsZero() || d.CreatedAt.IsZero() {
			continue
		}
		sum += d.ResolvedAt.Sub(d.CreatedAt)
		n++
	}
	if n == 0 {
		return "N/A"
	}
	mean := sum / time.Duration(n)
	hours := int(math.Round(mean.Hours()))
	return fmt.Sprintf("%dh", hours)
}

// daysRemaining is ceil(deadline-now) in days, negative when overdue.
func daysRemaining(deadline, now time.Time) int {
	return int(math.Ceil(deadline.Sub(now).Hours() / 24))
}

// classify picks the status label and color. First match wins: an
// expired schedule at 100% is Concluído, not Atrasado.
func classify(expired bool, days, pct int) (string, Color) {
	switch {
	case expired && pct < 100:
		return StatusOverdue, ColorCritical
	case days <= criticalWindowDays && pct < 100:
		return StatusCritical, ColorWarning
	case pct == 100:
		return StatusComplete, ColorInfo
	default:
		return StatusOnTrack, ColorOK
	}
}
