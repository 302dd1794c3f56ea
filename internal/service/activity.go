package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"travelplanner/internal/domain"
	"travelplanner/internal/repo"
)

// ActivityService implements business logic for Activity operations,
// including the manual reorder. It holds both the day and activity repos
// because creating or re-parenting an activity requires verifying the
// referenced day exists.
type ActivityService struct {
	days       repo.DayRepo
	activities repo.ActivityRepo
}

// NewActivityService constructs an ActivityService backed by the provided repos.
func NewActivityService(days repo.DayRepo, activities repo.ActivityRepo) *ActivityService {
	return &ActivityService{days: days, activities: activities}
}

// Create verifies the parent day exists, validates the activity, then persists.
// Returns domain.ErrNotFound if the parent day does not exist.
// Returns domain.ErrValidation if input violates business rules.
func (s *ActivityService) Create(ctx context.Context, activity domain.Activity) (domain.Activity, error) {
	if _, err := s.days.GetByID(ctx, activity.DayID); err != nil {
		return domain.Activity{}, fmt.Errorf("service.ActivityService.Create: %w", err)
	}
	if err := validateActivity(activity); err != nil {
		return domain.Activity{}, err
	}
	result, err := s.activities.Create(ctx, activity)
	if err != nil {
		return domain.Activity{}, fmt.Errorf("service.ActivityService.Create: %w", err)
	}
	return result, nil
}

// GetByID returns a single activity by ID.
func (s *ActivityService) GetByID(ctx context.Context, id uuid.UUID) (domain.Activity, error) {
	result, err := s.activities.GetByID(ctx, id)
	if err != nil {
		return domain.Activity{}, fmt.Errorf("service.ActivityService.GetByID: %w", err)
	}
	return result, nil
}

// ListByDayID returns the day's activities in display order: start_time
// ascending with untimed activities last, ties broken by order_index.
// Returns domain.ErrNotFound if the day does not exist.
// Always returns a non-nil slice so callers can safely range over it.
func (s *ActivityService) ListByDayID(ctx context.Context, dayID uuid.UUID) ([]domain.Activity, error) {
	if _, err := s.days.GetByID(ctx, dayID); err != nil {
		return nil, fmt.Errorf("service.ActivityService.ListByDayID: %w", err)
	}
	activities, err := s.activities.ListByDayID(ctx, dayID)
	if err != nil {
		return nil, fmt.Errorf("service.ActivityService.ListByDayID: %w", err)
	}
	if activities == nil {
		return []domain.Activity{}, nil
	}
	return activities, nil
}

// Update applies a partial update to an existing activity and persists the
// result. Re-parenting to another day re-checks that the new day exists.
// Returns domain.ErrNotFound if the activity (or a new parent day) does not
// exist, domain.ErrValidation for invalid input.
func (s *ActivityService) Update(ctx context.Context, id uuid.UUID, patch domain.ActivityPatch) (domain.Activity, error) {
	existing, err := s.activities.GetByID(ctx, id)
	if err != nil {
		return domain.Activity{}, fmt.Errorf("service.ActivityService.Update: %w", err)
	}

	updated := patch.Apply(existing)
	if updated.DayID != existing.DayID {
		if _, err := s.days.GetByID(ctx, updated.DayID); err != nil {
			return domain.Activity{}, fmt.Errorf("service.ActivityService.Update: parent day: %w", err)
		}
	}
	if err := validateActivity(updated); err != nil {
		return domain.Activity{}, err
	}

	result, err := s.activities.Update(ctx, updated)
	if err != nil {
		return domain.Activity{}, fmt.Errorf("service.ActivityService.Update: %w", err)
	}
	return result, nil
}

// Delete removes an activity by ID.
// Returns domain.ErrNotFound if the activity does not exist.
func (s *ActivityService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.activities.Delete(ctx, id); err != nil {
		return fmt.Errorf("service.ActivityService.Delete: %w", err)
	}
	return nil
}

// Reorder moves an activity to the given zero-based position among its day's
// siblings. Positions past the end clamp to the end; negative positions are
// rejected as validation errors since they never arrive from the UI.
// Returns domain.ErrNotFound if the activity does not exist.
func (s *ActivityService) Reorder(ctx context.Context, id uuid.UUID, position int) (domain.Activity, error) {
	if position < 0 {
		return domain.Activity{}, fmt.Errorf("%w: position must not be negative", domain.ErrValidation)
	}
	result, err := s.activities.Reorder(ctx, id, position)
	if err != nil {
		return domain.Activity{}, fmt.Errorf("service.ActivityService.Reorder: %w", err)
	}
	return result, nil
}

// validateActivity enforces business rules common to both Create and Update.
//   - Name must be non-empty (whitespace-only names are rejected) and at most
//     255 characters.
//   - StartTime, when both times are set, must be strictly before EndTime.
func validateActivity(activity domain.Activity) error {
	name := strings.TrimSpace(activity.Name)
	if name == "" {
		return fmt.Errorf("%w: activity name is required", domain.ErrValidation)
	}
	if len(name) > maxNameLen {
		return fmt.Errorf("%w: activity name must be 255 characters or less", domain.ErrValidation)
	}
	if activity.StartTime != nil && activity.EndTime != nil && !activity.StartTime.Before(*activity.EndTime) {
		return fmt.Errorf("%w: start time must be before end time", domain.ErrValidation)
	}
	return nil
}
