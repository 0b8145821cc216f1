// models/works.go - Installation and finishing progress models
package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// OpeningKind distinguishes doors from window frames
type OpeningKind string

const (
	OpeningDoor   OpeningKind = "door"
	OpeningWindow OpeningKind = "window"
)

// InstallStatus represents the state of a door/window installation
type InstallStatus string

const (
	InstallPending   InstallStatus = "Pending"
	InstallInstalled InstallStatus = "Installed"
)

// Opening is one door or window frame to be installed in an apartment
type Opening struct {
	ID          int64         `json:"id"`
	Kind        OpeningKind   `json:"kind"`
	Block       string        `json:"block"`
	Apartment   string        `json:"apartment"`
	Label       string        `json:"label"`
	Status      InstallStatus `json:"status"`
	InstalledAt *time.Time    `json:"installed_at,omitempty"`
}

// PaintStage represents painting progress for one block floor
type PaintStage string

const (
	PaintNotStarted PaintStage = "NotStarted"
	PaintFirstCoat  PaintStage = "FirstCoat"
	PaintFinished   PaintStage = "Finished"
)

// Painting tracks the paint stage of a single floor in a block
type Painting struct {
	ID        int64      `json:"id"`
	Block     string     `json:"block"`
	Floor     int        `json:"floor"`
	Stage     PaintStage `json:"stage"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// Measurement is a QA check comparing an actual reading against an
// expected value within a tolerance. Values are decimals so readings
// like 2.005 survive storage without float drift.
type Measurement struct {
	ID            int64           `json:"id"`
	Block         string          `json:"block"`
	Apartment     string          `json:"apartment"`
	ServiceTypeID int64           `json:"service_type_id"`
	Label         string          `json:"label"`
	Expected      decimal.Decimal `json:"expected"`
	Actual        decimal.Decimal `json:"actual"`
	Tolerance     decimal.Decimal `json:"tolerance"`
	MeasuredAt    time.Time       `json:"measured_at"`
}

// Pass reports whether the actual reading is within tolerance of expected
func (m Measurement) Pass() bool {
	return m.Actual.Sub(m.Expected).Abs().LessThanOrEqual(m.Tolerance)
}

// LotStatus represents the state of a material lot
type LotStatus string

const (
	LotOrdered  LotStatus = "Ordered"
	LotReceived LotStatus = "Received"
	LotApplied  LotStatus = "Applied"
)

// MaterialLot is a batch of material (ceramic tiles) allocated to a block
type MaterialLot struct {
	ID          int64      `json:"id"`
	Code        string     `json:"code"`
	Description string     `json:"description"`
	Quantity    int        `json:"quantity"`
	Block       string     `json:"block"`
	Status      LotStatus  `json:"status"`
	ReceivedAt  *time.Time `json:"received_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}
