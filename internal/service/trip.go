// Package service contains the business logic for the Travel Planner API.
// Services validate inputs, enforce business rules, and orchestrate repo
// calls. No SQL lives here — services depend on repo interfaces, not
// implementations.
package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"travelplanner/internal/domain"
	"travelplanner/internal/repo"
)

// maxNameLen is the column width of the name fields on trips and activities.
// Enforced here so oversized input fails validation instead of surfacing as a
// database error.
const maxNameLen = 255

// TripService implements business logic for Trip operations.
type TripService struct {
	trips repo.TripRepo
}

// NewTripService constructs a TripService backed by the provided TripRepo.
func NewTripService(trips repo.TripRepo) *TripService {
	return &TripService{trips: trips}
}

// Create validates and persists a new trip.
// Returns domain.ErrValidation if input violates business rules.
func (s *TripService) Create(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	if err := validateTrip(trip); err != nil {
		return domain.Trip{}, err
	}
	result, err := s.trips.Create(ctx, trip)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Create: %w", err)
	}
	return result, nil
}

// GetByID returns a single trip by ID.
// Returns domain.ErrNotFound if no trip with that ID exists.
func (s *TripService) GetByID(ctx context.Context, id uuid.UUID) (domain.Trip, error) {
	result, err := s.trips.GetByID(ctx, id)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.GetByID: %w", err)
	}
	return result, nil
}

// List returns all trips, most recently created first.
// Always returns a non-nil slice so callers can safely range over it.
func (s *TripService) List(ctx context.Context) ([]domain.Trip, error) {
	trips, err := s.trips.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.TripService.List: %w", err)
	}
	if trips == nil {
		return []domain.Trip{}, nil
	}
	return trips, nil
}

// Update applies a partial update to an existing trip and persists the result.
// The stored row is fetched first so absent patch fields keep their values.
// Returns domain.ErrNotFound if the trip does not exist, domain.ErrValidation
// if the patched trip violates business rules (the stored row is unchanged).
func (s *TripService) Update(ctx context.Context, id uuid.UUID, patch domain.TripPatch) (domain.Trip, error) {
	existing, err := s.trips.GetByID(ctx, id)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Update: %w", err)
	}

	updated := patch.Apply(existing)
	if err := validateTrip(updated); err != nil {
		return domain.Trip{}, err
	}

	result, err := s.trips.Update(ctx, updated)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Update: %w", err)
	}
	return result, nil
}

// Delete removes a trip by ID; its days and activities cascade.
// Returns domain.ErrNotFound if the trip does not exist, making repeated
// deletes of the same ID idempotent at the API level.
func (s *TripService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.trips.Delete(ctx, id); err != nil {
		return fmt.Errorf("service.TripService.Delete: %w", err)
	}
	return nil
}

// validateTrip enforces business rules common to both Create and Update.
//   - Name must be non-empty (whitespace-only names are rejected) and at most
//     255 characters.
//   - StartDate, when both dates are set, must not be after EndDate.
func validateTrip(trip domain.Trip) error {
	name := strings.TrimSpace(trip.Name)
	if name == "" {
		return fmt.Errorf("%w: trip name is required", domain.ErrValidation)
	}
	if len(name) > maxNameLen {
		return fmt.Errorf("%w: trip name must be 255 characters or less", domain.ErrValidation)
	}
	if trip.StartDate != nil && trip.EndDate != nil && trip.StartDate.After(*trip.EndDate) {
		return fmt.Errorf("%w: start date must be before or equal to end date", domain.ErrValidation)
	}
	return nil
}
