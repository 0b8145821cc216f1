// models/schedule.go - Schedule and scope models
package models

import "time"

// Schedule is a named goal with a deadline, scoped by its items
type Schedule struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Deadline  time.Time `json:"deadline"`
	CreatedBy string    `json:"created_by"`
	CreatedAt time.Time `json:"created_at"`
}

// ScheduleItem is one scope filter row; nil fields act as "any".
// Block is always required. Multiple items form a logical OR.
type ScheduleItem struct {
	ID            int64   `json:"id"`
	ScheduleID    int64   `json:"schedule_id"`
	Block         string  `json:"block"`
	Floor         *int    `json:"floor,omitempty"`
	Apartment     *string `json:"apartment,omitempty"`
	ServiceTypeID *int64  `json:"service_type_id,omitempty"`
}
