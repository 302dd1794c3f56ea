// Package domain contains the core data types for the Travel Planner
// application. This package has zero dependencies beyond the uuid library and
// is imported by every other internal package (repo, service, handler).
package domain

import (
	"time"

	"github.com/google/uuid"
)

// Trip represents a travel itinerary. A trip is the top-level aggregate;
// days belong to a trip and activities belong to a day.
// StartDate and EndDate are nil while the trip is still being sketched out.
type Trip struct {
	ID          uuid.UUID
	Name        string
	Description string
	StartDate   *time.Time
	EndDate     *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TripPatch carries the fields of a partial trip update.
// Nil pointer fields are left unchanged. The Clear flags reset the
// corresponding nullable date — a nil pointer alone cannot distinguish
// "absent" from "set to null" after JSON decoding.
type TripPatch struct {
	Name           *string
	Description    *string
	StartDate      *time.Time
	ClearStartDate bool
	EndDate        *time.Time
	ClearEndDate   bool
}

// Apply returns a copy of t with the patch applied.
// The receiver is never mutated; callers keep their original value.
func (p TripPatch) Apply(t Trip) Trip {
	if p.Name != nil {
		t.Name = *p.Name
	}
	if p.Description != nil {
		t.Description = *p.Description
	}
	switch {
	case p.ClearStartDate:
		t.StartDate = nil
	case p.StartDate != nil:
		sd := *p.StartDate
		t.StartDate = &sd
	}
	switch {
	case p.ClearEndDate:
		t.EndDate = nil
	case p.EndDate != nil:
		ed := *p.EndDate
		t.EndDate = &ed
	}
	return t
}
