package repo_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"travelplanner/internal/domain"
	"travelplanner/internal/repo"
	"travelplanner/testutil"
)

// newTestDayRepos opens a single transaction and returns both a TripRepo and a
// DayRepo backed by it. Tests can create a parent trip and child days within
// the same transaction, which is rolled back when the test finishes.
func newTestDayRepos(t *testing.T) (repo.TripRepo, repo.DayRepo) {
	t.Helper()
	pool := testutil.NewPool(t)

	tx, err := pool.Begin(context.Background())
	require.NoError(t, err, "begin transaction")

	t.Cleanup(func() {
		_ = tx.Rollback(context.Background())
	})

	return repo.NewTripRepo(tx), repo.NewDayRepo(tx)
}

// mustCreateTrip inserts a parent trip and fails the test on error.
func mustCreateTrip(t *testing.T, r repo.TripRepo) domain.Trip {
	t.Helper()
	trip, err := r.Create(context.Background(), tripFixture())
	require.NoError(t, err, "create parent trip")
	return trip
}

// dayFixture returns a Day ready for insertion against the given tripID.
func dayFixture(tripID uuid.UUID, dayNumber int) domain.Day {
	return domain.Day{
		TripID:    tripID,
		Date:      time.Date(2024, 5, dayNumber, 0, 0, 0, 0, time.UTC),
		DayNumber: dayNumber,
	}
}

func TestDayRepo_Create(t *testing.T) {
	trips, days := newTestDayRepos(t)
	ctx := context.Background()

	parent := mustCreateTrip(t, trips)
	input := dayFixture(parent.ID, 1)

	got, err := days.Create(ctx, input)

	require.NoError(t, err)
	assert.NotEqual(t, uuid.UUID{}, got.ID, "ID should be DB-generated UUID")
	assert.Equal(t, parent.ID, got.TripID)
	assert.True(t, got.Date.Equal(input.Date), "Date mismatch")
	assert.Equal(t, 1, got.DayNumber)
	assert.False(t, got.CreatedAt.IsZero(), "CreatedAt should be set by DB")
}

func TestDayRepo_Create_DuplicateDayNumber(t *testing.T) {
	// day_number carries no unique constraint: two days of the same trip may
	// share a number and the insert must succeed.
	trips, days := newTestDayRepos(t)
	ctx := context.Background()

	parent := mustCreateTrip(t, trips)

	_, err := days.Create(ctx, dayFixture(parent.ID, 1))
	require.NoError(t, err)

	dup := dayFixture(parent.ID, 1)
	dup.Date = time.Date(2024, 5, 9, 0, 0, 0, 0, time.UTC)
	_, err = days.Create(ctx, dup)

	assert.NoError(t, err)
}

func TestDayRepo_GetByID_NotFound(t *testing.T) {
	_, days := newTestDayRepos(t)

	_, err := days.GetByID(context.Background(), uuid.New())

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDayRepo_ListByTripID_OrderedByDayNumber(t *testing.T) {
	trips, days := newTestDayRepos(t)
	ctx := context.Background()

	parent := mustCreateTrip(t, trips)
	other := mustCreateTrip(t, trips)

	// Insert out of order to prove the query sorts.
	for _, n := range []int{3, 1, 2} {
		_, err := days.Create(ctx, dayFixture(parent.ID, n))
		require.NoError(t, err)
	}
	_, err := days.Create(ctx, dayFixture(other.ID, 1))
	require.NoError(t, err)

	got, err := days.ListByTripID(ctx, parent.ID)

	require.NoError(t, err)
	require.Len(t, got, 3, "should return only days for the given trip")
	for i, day := range got {
		assert.Equal(t, i+1, day.DayNumber, "days should be ordered by day_number")
		assert.Equal(t, parent.ID, day.TripID)
	}
}

func TestDayRepo_ListByTripID_Empty(t *testing.T) {
	trips, days := newTestDayRepos(t)
	ctx := context.Background()

	parent := mustCreateTrip(t, trips)

	got, err := days.ListByTripID(ctx, parent.ID)

	require.NoError(t, err)
	assert.NotNil(t, got, "should return empty slice, not nil")
	assert.Len(t, got, 0)
}

func TestDayRepo_Update(t *testing.T) {
	trips, days := newTestDayRepos(t)
	ctx := context.Background()

	parent := mustCreateTrip(t, trips)
	created, err := days.Create(ctx, dayFixture(parent.ID, 1))
	require.NoError(t, err)

	created.DayNumber = 5
	created.Date = time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC)

	updated, err := days.Update(ctx, created)

	require.NoError(t, err)
	assert.Equal(t, 5, updated.DayNumber)
	assert.True(t, updated.Date.Equal(created.Date))
}

func TestDayRepo_Update_Reparent(t *testing.T) {
	trips, days := newTestDayRepos(t)
	ctx := context.Background()

	parent := mustCreateTrip(t, trips)
	other := mustCreateTrip(t, trips)
	created, err := days.Create(ctx, dayFixture(parent.ID, 1))
	require.NoError(t, err)

	created.TripID = other.ID
	updated, err := days.Update(ctx, created)

	require.NoError(t, err)
	assert.Equal(t, other.ID, updated.TripID)
}

func TestDayRepo_Update_NotFound(t *testing.T) {
	trips, days := newTestDayRepos(t)

	parent := mustCreateTrip(t, trips)
	missing := dayFixture(parent.ID, 1)
	missing.ID = uuid.New()

	_, err := days.Update(context.Background(), missing)

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDayRepo_Delete(t *testing.T) {
	trips, days := newTestDayRepos(t)
	ctx := context.Background()

	parent := mustCreateTrip(t, trips)
	created, err := days.Create(ctx, dayFixture(parent.ID, 1))
	require.NoError(t, err)

	err = days.Delete(ctx, created.ID)
	require.NoError(t, err)

	_, err = days.GetByID(ctx, created.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDayRepo_CascadeOnTripDelete(t *testing.T) {
	trips, days := newTestDayRepos(t)
	ctx := context.Background()

	parent := mustCreateTrip(t, trips)
	created, err := days.Create(ctx, dayFixture(parent.ID, 1))
	require.NoError(t, err)

	err = trips.Delete(ctx, parent.ID)
	require.NoError(t, err)

	_, err = days.GetByID(ctx, created.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound, "deleting a trip should cascade to its days")
}
