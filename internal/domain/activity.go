package domain

import (
	"time"

	"github.com/google/uuid"
)

// Activity represents a scheduled or unscheduled item within a day.
// StartTime and EndTime are nil for activities without an explicit time.
// OrderIndex is the manual tie-break key: the display order of a day's
// activities is start_time ascending with untimed activities last, then
// order_index ascending.
type Activity struct {
	ID          uuid.UUID
	DayID       uuid.UUID
	Name        string
	Description string
	StartTime   *TimeOfDay
	EndTime     *TimeOfDay
	OrderIndex  int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ActivityPatch carries the fields of a partial activity update.
// Nil pointer fields are left unchanged. The Clear flags reset the
// corresponding nullable time.
type ActivityPatch struct {
	DayID          *uuid.UUID
	Name           *string
	Description    *string
	StartTime      *TimeOfDay
	ClearStartTime bool
	EndTime        *TimeOfDay
	ClearEndTime   bool
	OrderIndex     *int
}

// Apply returns a copy of a with the patch applied.
func (p ActivityPatch) Apply(a Activity) Activity {
	if p.DayID != nil {
		a.DayID = *p.DayID
	}
	if p.Name != nil {
		a.Name = *p.Name
	}
	if p.Description != nil {
		a.Description = *p.Description
	}
	switch {
	case p.ClearStartTime:
		a.StartTime = nil
	case p.StartTime != nil:
		st := *p.StartTime
		a.StartTime = &st
	}
	switch {
	case p.ClearEndTime:
		a.EndTime = nil
	case p.EndTime != nil:
		et := *p.EndTime
		a.EndTime = &et
	}
	if p.OrderIndex != nil {
		a.OrderIndex = *p.OrderIndex
	}
	return a
}
