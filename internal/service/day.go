package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"travelplanner/internal/domain"
	"travelplanner/internal/repo"
)

// DayService implements business logic for Day operations.
// It holds both the trip and day repos because creating or re-parenting a day
// requires verifying the referenced trip exists — the foreign key only guards
// against deleting a referenced trip, not inserting against a missing one.
type DayService struct {
	trips repo.TripRepo
	days  repo.DayRepo
}

// NewDayService constructs a DayService backed by the provided repos.
func NewDayService(trips repo.TripRepo, days repo.DayRepo) *DayService {
	return &DayService{trips: trips, days: days}
}

// Create verifies the parent trip exists, validates the day, then persists.
// Returns domain.ErrNotFound if the parent trip does not exist.
// Returns domain.ErrValidation if input violates business rules.
func (s *DayService) Create(ctx context.Context, day domain.Day) (domain.Day, error) {
	if _, err := s.trips.GetByID(ctx, day.TripID); err != nil {
		return domain.Day{}, fmt.Errorf("service.DayService.Create: %w", err)
	}
	if err := validateDay(day); err != nil {
		return domain.Day{}, err
	}
	result, err := s.days.Create(ctx, day)
	if err != nil {
		return domain.Day{}, fmt.Errorf("service.DayService.Create: %w", err)
	}
	return result, nil
}

// GetByID returns a single day by ID.
func (s *DayService) GetByID(ctx context.Context, id uuid.UUID) (domain.Day, error) {
	result, err := s.days.GetByID(ctx, id)
	if err != nil {
		return domain.Day{}, fmt.Errorf("service.DayService.GetByID: %w", err)
	}
	return result, nil
}

// ListByTripID returns all days for a trip ordered by day_number ascending.
// Returns domain.ErrNotFound if the trip does not exist, so a listing under a
// missing trip is distinguishable from a trip with no days.
// Always returns a non-nil slice so callers can safely range over it.
func (s *DayService) ListByTripID(ctx context.Context, tripID uuid.UUID) ([]domain.Day, error) {
	if _, err := s.trips.GetByID(ctx, tripID); err != nil {
		return nil, fmt.Errorf("service.DayService.ListByTripID: %w", err)
	}
	days, err := s.days.ListByTripID(ctx, tripID)
	if err != nil {
		return nil, fmt.Errorf("service.DayService.ListByTripID: %w", err)
	}
	if days == nil {
		return []domain.Day{}, nil
	}
	return days, nil
}

// Update applies a partial update to an existing day and persists the result.
// Re-parenting to another trip re-checks that the new trip exists.
// Returns domain.ErrNotFound if the day (or a new parent trip) does not
// exist, domain.ErrValidation for invalid input.
func (s *DayService) Update(ctx context.Context, id uuid.UUID, patch domain.DayPatch) (domain.Day, error) {
	existing, err := s.days.GetByID(ctx, id)
	if err != nil {
		return domain.Day{}, fmt.Errorf("service.DayService.Update: %w", err)
	}

	updated := patch.Apply(existing)
	if updated.TripID != existing.TripID {
		if _, err := s.trips.GetByID(ctx, updated.TripID); err != nil {
			return domain.Day{}, fmt.Errorf("service.DayService.Update: parent trip: %w", err)
		}
	}
	if err := validateDay(updated); err != nil {
		return domain.Day{}, err
	}

	result, err := s.days.Update(ctx, updated)
	if err != nil {
		return domain.Day{}, fmt.Errorf("service.DayService.Update: %w", err)
	}
	return result, nil
}

// Delete removes a day by ID; its activities cascade.
// Returns domain.ErrNotFound if the day does not exist.
func (s *DayService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.days.Delete(ctx, id); err != nil {
		return fmt.Errorf("service.DayService.Delete: %w", err)
	}
	return nil
}

// validateDay enforces business rules common to both Create and Update.
//   - Date is required.
//   - DayNumber must be a positive integer. Uniqueness within the trip is an
//     informal convention, deliberately not enforced.
func validateDay(day domain.Day) error {
	if day.Date.IsZero() {
		return fmt.Errorf("%w: date is required", domain.ErrValidation)
	}
	if day.DayNumber < 1 {
		return fmt.Errorf("%w: day number must be positive", domain.ErrValidation)
	}
	return nil
}
