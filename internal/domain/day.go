package domain

import (
	"time"

	"github.com/google/uuid"
)

// Day represents a single calendar day within a trip.
// DayNumber is the informal sequence position within the trip; it is not
// uniqueness-enforced and is not reconciled with Date.
type Day struct {
	ID        uuid.UUID
	TripID    uuid.UUID
	Date      time.Time
	DayNumber int
	CreatedAt time.Time
}

// DayPatch carries the fields of a partial day update.
// Nil pointer fields are left unchanged.
type DayPatch struct {
	TripID    *uuid.UUID
	Date      *time.Time
	DayNumber *int
}

// Apply returns a copy of d with the patch applied.
func (p DayPatch) Apply(d Day) Day {
	if p.TripID != nil {
		d.TripID = *p.TripID
	}
	if p.Date != nil {
		d.Date = *p.Date
	}
	if p.DayNumber != nil {
		d.DayNumber = *p.DayNumber
	}
	return d
}
