package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"travelplanner/internal/domain"
	"travelplanner/internal/handler"
)

// mockDayServicer is a test double for handler.DayServicer.
type mockDayServicer struct {
	create       func(ctx context.Context, day domain.Day) (domain.Day, error)
	getByID      func(ctx context.Context, id uuid.UUID) (domain.Day, error)
	listByTripID func(ctx context.Context, tripID uuid.UUID) ([]domain.Day, error)
	update       func(ctx context.Context, id uuid.UUID, patch domain.DayPatch) (domain.Day, error)
	delete       func(ctx context.Context, id uuid.UUID) error
}

func (m *mockDayServicer) Create(ctx context.Context, d domain.Day) (domain.Day, error) {
	return m.create(ctx, d)
}
func (m *mockDayServicer) GetByID(ctx context.Context, id uuid.UUID) (domain.Day, error) {
	return m.getByID(ctx, id)
}
func (m *mockDayServicer) ListByTripID(ctx context.Context, tripID uuid.UUID) ([]domain.Day, error) {
	return m.listByTripID(ctx, tripID)
}
func (m *mockDayServicer) Update(ctx context.Context, id uuid.UUID, patch domain.DayPatch) (domain.Day, error) {
	return m.update(ctx, id, patch)
}
func (m *mockDayServicer) Delete(ctx context.Context, id uuid.UUID) error {
	return m.delete(ctx, id)
}

var _ handler.DayServicer = (*mockDayServicer)(nil)

// ---- helpers ---------------------------------------------------------------

func newDayHandler(svc handler.DayServicer) http.Handler {
	return newAPIHandler(nil, svc, nil)
}

func dayFixture(tripID uuid.UUID) domain.Day {
	return domain.Day{
		ID:        uuid.New(),
		TripID:    tripID,
		Date:      time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
		DayNumber: 1,
		CreatedAt: time.Now().UTC(),
	}
}

// ---- GET /api/trips/{tripID}/days ------------------------------------------

func TestListDays_200(t *testing.T) {
	tripID := uuid.New()
	fixture := dayFixture(tripID)
	svc := &mockDayServicer{
		listByTripID: func(_ context.Context, got uuid.UUID) ([]domain.Day, error) {
			require.Equal(t, tripID, got)
			return []domain.Day{fixture}, nil
		},
	}
	h := newDayHandler(svc)

	status, env := doRequest(t, h, http.MethodGet, "/api/trips/"+tripID.String()+"/days", nil)

	require.Equal(t, http.StatusOK, status)
	require.True(t, env.Success)

	var days []map[string]any
	require.NoError(t, json.Unmarshal(env.Data, &days))
	require.Len(t, days, 1)
	assert.Equal(t, fixture.ID.String(), days[0]["id"])
	assert.Equal(t, "2024-05-01", days[0]["date"])
	assert.EqualValues(t, 1, days[0]["day_number"])
}

func TestListDays_404_TripMissing(t *testing.T) {
	svc := &mockDayServicer{
		listByTripID: func(_ context.Context, _ uuid.UUID) ([]domain.Day, error) {
			return nil, domain.ErrNotFound
		},
	}
	h := newDayHandler(svc)

	status, env := doRequest(t, h, http.MethodGet, "/api/trips/"+uuid.NewString()+"/days", nil)

	require.Equal(t, http.StatusNotFound, status)
	requireErrorCode(t, env, "NOT_FOUND")
	assert.Equal(t, "trip not found", env.Error.Message)
}

// ---- POST /api/trips/{tripID}/days -----------------------------------------

func TestCreateDay_201(t *testing.T) {
	tripID := uuid.New()
	fixture := dayFixture(tripID)
	svc := &mockDayServicer{
		create: func(_ context.Context, day domain.Day) (domain.Day, error) {
			// The parent comes from the URL, not the body.
			require.Equal(t, tripID, day.TripID)
			require.Equal(t, 1, day.DayNumber)
			return fixture, nil
		},
	}
	h := newDayHandler(svc)

	body := jsonBody(t, map[string]any{"date": "2024-05-01", "day_number": 1})
	status, env := doRequest(t, h, http.MethodPost, "/api/trips/"+tripID.String()+"/days", body)

	require.Equal(t, http.StatusCreated, status)
	require.True(t, env.Success)
}

func TestCreateDay_400_BadDate(t *testing.T) {
	svc := &mockDayServicer{}
	h := newDayHandler(svc)

	body := jsonBody(t, map[string]any{"date": "May 1st", "day_number": 1})
	status, env := doRequest(t, h, http.MethodPost, "/api/trips/"+uuid.NewString()+"/days", body)

	require.Equal(t, http.StatusBadRequest, status)
	requireErrorCode(t, env, "VALIDATION_ERROR")
	assert.Contains(t, env.Error.Message, "date")
}

func TestCreateDay_404_TripMissing(t *testing.T) {
	svc := &mockDayServicer{
		create: func(_ context.Context, _ domain.Day) (domain.Day, error) {
			return domain.Day{}, domain.ErrNotFound
		},
	}
	h := newDayHandler(svc)

	body := jsonBody(t, map[string]any{"date": "2024-05-01", "day_number": 1})
	status, env := doRequest(t, h, http.MethodPost, "/api/trips/"+uuid.NewString()+"/days", body)

	require.Equal(t, http.StatusNotFound, status)
	requireErrorCode(t, env, "NOT_FOUND")
	assert.Equal(t, "trip not found", env.Error.Message)
}

// ---- GET /api/days/{dayID} -------------------------------------------------

func TestGetDay_404(t *testing.T) {
	svc := &mockDayServicer{
		getByID: func(_ context.Context, _ uuid.UUID) (domain.Day, error) {
			return domain.Day{}, domain.ErrNotFound
		},
	}
	h := newDayHandler(svc)

	status, env := doRequest(t, h, http.MethodGet, "/api/days/"+uuid.NewString(), nil)

	require.Equal(t, http.StatusNotFound, status)
	requireErrorCode(t, env, "NOT_FOUND")
	assert.Equal(t, "day not found", env.Error.Message)
}

// ---- PUT /api/days/{dayID} -------------------------------------------------

func TestUpdateDay_200_Reparent(t *testing.T) {
	newTrip := uuid.New()
	fixture := dayFixture(newTrip)
	svc := &mockDayServicer{
		update: func(_ context.Context, _ uuid.UUID, patch domain.DayPatch) (domain.Day, error) {
			require.NotNil(t, patch.TripID)
			assert.Equal(t, newTrip, *patch.TripID)
			assert.Nil(t, patch.Date, "absent fields must not be patched")
			return fixture, nil
		},
	}
	h := newDayHandler(svc)

	body := jsonBody(t, map[string]any{"trip_id": newTrip.String()})
	status, _ := doRequest(t, h, http.MethodPut, "/api/days/"+fixture.ID.String(), body)

	require.Equal(t, http.StatusOK, status)
}

// ---- DELETE /api/days/{dayID} ----------------------------------------------

func TestDeleteDay_200(t *testing.T) {
	svc := &mockDayServicer{
		delete: func(_ context.Context, _ uuid.UUID) error { return nil },
	}
	h := newDayHandler(svc)

	status, env := doRequest(t, h, http.MethodDelete, "/api/days/"+uuid.NewString(), nil)

	require.Equal(t, http.StatusOK, status)

	var data map[string]string
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Equal(t, "day deleted", data["message"])
}
