// models/demand.go - Punch-list data models
package models

import "time"

// DemandStatus represents the current state of a punch-list item
type DemandStatus string

const (
	DemandPending  DemandStatus = "Pending"
	DemandResolved DemandStatus = "Resolved"
)

// ServiceType is a category of construction service (electrical, plumbing, ...)
type ServiceType struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Demand is a punch-list item raised against a single apartment
type Demand struct {
	ID            int64        `json:"id"`
	Block         string       `json:"block"`
	Apartment     string       `json:"apartment"`
	ServiceTypeID int64        `json:"service_type_id"`
	Description   string       `json:"description"`
	Status        DemandStatus `json:"status"`
	PhotoPath     string       `json:"photo_path,omitempty"`
	CreatedAt     time.Time    `json:"created_at"`
	ResolvedAt    *time.Time   `json:"resolved_at,omitempty"`
}

// Resolved reports whether the demand has been closed out
func (d Demand) Resolved() bool {
	return d.Status == DemandResolved
}

// DemandFilter narrows a demand listing; zero values mean "any"
type DemandFilter struct {
	Block         string
	Apartment     string
	ServiceTypeID int64
	Status        DemandStatus
}

// DraftDemand is a queued demand submission waiting for sync.
// The ID is generated client-side so re-syncing the same draft is idempotent.
type DraftDemand struct {
	ID            string    `json:"id"`
	Block         string    `json:"block"`
	Apartment     string    `json:"apartment"`
	ServiceTypeID int64     `json:"service_type_id"`
	Description   string    `json:"description"`
	CreatedAt     time.Time `json:"created_at"`
	Applied       bool      `json:"applied"`
}
