package domain

import (
	"sort"

	"github.com/google/uuid"
)

// DisplayLess is the total order in which a day's activities are shown:
// start_time ascending with untimed activities after all timed ones, ties
// broken by order_index ascending. The list SQL mirrors this with
// ORDER BY start_time ASC NULLS LAST, order_index ASC; keeping the comparator
// here makes the rule testable without a database.
func DisplayLess(a, b Activity) bool {
	switch {
	case a.StartTime == nil && b.StartTime == nil:
		return a.OrderIndex < b.OrderIndex
	case a.StartTime == nil:
		return false
	case b.StartTime == nil:
		return true
	case a.StartTime.Before(*b.StartTime):
		return true
	case b.StartTime.Before(*a.StartTime):
		return false
	default:
		return a.OrderIndex < b.OrderIndex
	}
}

// SortActivities sorts activities in place into display order.
func SortActivities(activities []Activity) {
	sort.SliceStable(activities, func(i, j int) bool {
		return DisplayLess(activities[i], activities[j])
	})
}

// OrderAssignment is a single order_index write produced by PlanReorder.
type OrderAssignment struct {
	ID         uuid.UUID
	OrderIndex int
}

// PlanReorder computes the order_index writes needed to move one activity to
// a requested zero-based position among its day's siblings.
//
// The moved activity is lifted out of the display-ordered sequence and
// reinserted at the clamped position; every sibling is then renumbered
// sequentially so the manual order survives the next listing. Only rows whose
// order_index actually changes are returned, keeping the transaction's write
// set minimal.
//
// Because start_time remains the primary sort key, the move is only
// observable among activities that share a start_time or have none — manual
// ordering is a tie-breaker, not an override of explicit times.
//
// Returns ErrNotFound when moved is not among activities.
func PlanReorder(activities []Activity, moved uuid.UUID, position int) ([]OrderAssignment, error) {
	ordered := make([]Activity, len(activities))
	copy(ordered, activities)
	SortActivities(ordered)

	idx := -1
	for i, a := range ordered {
		if a.ID == moved {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil, ErrNotFound
	}

	target := ordered[idx]
	rest := append(ordered[:idx:idx], ordered[idx+1:]...)

	// Clamp: positions past the end move the activity to the end.
	if position < 0 {
		position = 0
	}
	if position > len(rest) {
		position = len(rest)
	}

	sequence := make([]Activity, 0, len(ordered))
	sequence = append(sequence, rest[:position]...)
	sequence = append(sequence, target)
	sequence = append(sequence, rest[position:]...)

	var writes []OrderAssignment
	for i, a := range sequence {
		if a.OrderIndex != i {
			writes = append(writes, OrderAssignment{ID: a.ID, OrderIndex: i})
		}
	}
	return writes, nil
}
