// handlers/schedules.go - Schedule pages and actions
package handlers

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/lucasmtn/obratrack/internal/models"
	"github.com/lucasmtn/obratrack/internal/progress"
)

// scheduleCard pairs a schedule with its computed progress. Invalid is
// set when the stored row cannot produce a summary (missing deadline);
// such cards render as a data-integrity warning, never as progress.
type scheduleCard struct {
	Schedule models.Schedule
	Items    []models.ScheduleItem
	Summary  progress.Summary
	Invalid  bool
}

type schedulesData struct {
	Cards        []scheduleCard
	ServiceTypes []models.ServiceType
	Service      map[int64]string
}

// Schedules renders all schedules with progress cards
func (h *Handler) Schedules(w http.ResponseWriter, r *http.Request) {
	schedules, err := h.DB.ListSchedules()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	demands, err := h.DB.ListDemands(models.DemandFilter{})
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	now := time.Now()
	cards := make([]scheduleCard, 0, len(schedules))
	for _, sched := range schedules {
		card, err := h.buildCard(sched, demands, now)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		cards = append(cards, card)
	}

	types, err := h.DB.ListServiceTypes()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	names, err := h.serviceNames()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	h.render(w, "schedules.html", "Cronogramas", schedulesData{
		Cards:        cards,
		ServiceTypes: types,
		Service:      names,
	})
}

func (h *Handler) buildCard(sched models.Schedule, demands []models.Demand, now time.Time) (scheduleCard, error) {
	items, err := h.DB.ListScheduleItems(sched.ID)
	if err != nil {
		return scheduleCard{}, err
	}

	summary, err := progress.Compute(sched, items, demands, now)
	if errors.Is(err, progress.ErrMissingDeadline) {
		log.Printf("[SCHEDULE] %d has no deadline, hiding progress card", sched.ID)
		return scheduleCard{Schedule: sched, Items: items, Invalid: true}, nil
	}
	if err != nil {
		return scheduleCard{}, err
	}

	return scheduleCard{Schedule: sched, Items: items, Summary: summary}, nil
}

// ScheduleDetail renders one schedule with its full progress breakdown
func (h *Handler) ScheduleDetail(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r)
	if err != nil {
		http.Error(w, "Invalid ID", http.StatusBadRequest)
		return
	}

	sched, err := h.DB.GetSchedule(id)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if sched == nil {
		http.Error(w, "Not found", http.StatusNotFound)
		return
	}

	demands, err := h.DB.ListDemands(models.DemandFilter{})
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	card, err := h.buildCard(*sched, demands, time.Now())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	names, err := h.serviceNames()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	h.render(w, "schedule_detail.html", sched.Name, struct {
		Card    scheduleCard
		Service map[int64]string
	}{Card: card, Service: names})
}

// CreateSchedule handles new schedule creation with its scope items
func (h *Handler) CreateSchedule(w http.ResponseWriter, r *http.Request) {
	sched, items, err := parseScheduleForm(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.DB.CreateSchedule(sched, items); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/schedules", http.StatusSeeOther)
}

// DeleteSchedule removes a schedule and its items
func (h *Handler) DeleteSchedule(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r)
	if err != nil {
		http.Error(w, "Invalid ID", http.StatusBadRequest)
		return
	}
	if err := h.DB.DeleteSchedule(id); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	http.Redirect(w, r, "/schedules", http.StatusSeeOther)
}
