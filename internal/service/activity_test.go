package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"travelplanner/internal/domain"
	"travelplanner/internal/repo"
	"travelplanner/internal/service"
)

// mockActivityRepo is a hand-written test double for repo.ActivityRepo.
type mockActivityRepo struct {
	create      func(ctx context.Context, activity domain.Activity) (domain.Activity, error)
	getByID     func(ctx context.Context, id uuid.UUID) (domain.Activity, error)
	listByDayID func(ctx context.Context, dayID uuid.UUID) ([]domain.Activity, error)
	update      func(ctx context.Context, activity domain.Activity) (domain.Activity, error)
	delete      func(ctx context.Context, id uuid.UUID) error
	reorder     func(ctx context.Context, activityID uuid.UUID, position int) (domain.Activity, error)
}

func (m *mockActivityRepo) Create(ctx context.Context, activity domain.Activity) (domain.Activity, error) {
	return m.create(ctx, activity)
}
func (m *mockActivityRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Activity, error) {
	return m.getByID(ctx, id)
}
func (m *mockActivityRepo) ListByDayID(ctx context.Context, dayID uuid.UUID) ([]domain.Activity, error) {
	return m.listByDayID(ctx, dayID)
}
func (m *mockActivityRepo) Update(ctx context.Context, activity domain.Activity) (domain.Activity, error) {
	return m.update(ctx, activity)
}
func (m *mockActivityRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return m.delete(ctx, id)
}
func (m *mockActivityRepo) Reorder(ctx context.Context, activityID uuid.UUID, position int) (domain.Activity, error) {
	return m.reorder(ctx, activityID, position)
}

var _ repo.ActivityRepo = (*mockActivityRepo)(nil)

// ---- helpers ---------------------------------------------------------------

// dayRepoWith returns a mockDayRepo that knows about exactly one day ID.
func dayRepoWith(id uuid.UUID) *mockDayRepo {
	return &mockDayRepo{
		getByID: func(_ context.Context, got uuid.UUID) (domain.Day, error) {
			if got != id {
				return domain.Day{}, domain.ErrNotFound
			}
			return domain.Day{ID: id, Date: date(2024, 5, 1), DayNumber: 1}, nil
		},
	}
}

func validActivity(dayID uuid.UUID) domain.Activity {
	start := domain.TimeOfDay{Hour: 9, Minute: 0}
	end := domain.TimeOfDay{Hour: 11, Minute: 30}
	return domain.Activity{
		DayID:     dayID,
		Name:      "Museum Visit",
		StartTime: &start,
		EndTime:   &end,
	}
}

func echoActivityRepo() *mockActivityRepo {
	return &mockActivityRepo{
		create: func(_ context.Context, a domain.Activity) (domain.Activity, error) { return a, nil },
		update: func(_ context.Context, a domain.Activity) (domain.Activity, error) { return a, nil },
	}
}

// ---- Create tests ----------------------------------------------------------

func TestActivityService_Create_Valid(t *testing.T) {
	dayID := uuid.New()
	svc := service.NewActivityService(dayRepoWith(dayID), echoActivityRepo())

	got, err := svc.Create(context.Background(), validActivity(dayID))

	require.NoError(t, err)
	assert.Equal(t, "Museum Visit", got.Name)
}

func TestActivityService_Create_DayNotFound(t *testing.T) {
	svc := service.NewActivityService(dayRepoWith(uuid.New()), echoActivityRepo())

	_, err := svc.Create(context.Background(), validActivity(uuid.New()))

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestActivityService_Create_MissingName(t *testing.T) {
	dayID := uuid.New()
	svc := service.NewActivityService(dayRepoWith(dayID), echoActivityRepo())

	activity := validActivity(dayID)
	activity.Name = ""

	_, err := svc.Create(context.Background(), activity)

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestActivityService_Create_StartTimeNotBeforeEndTime(t *testing.T) {
	dayID := uuid.New()
	svc := service.NewActivityService(dayRepoWith(dayID), echoActivityRepo())

	// Equal start and end is rejected too: the comparison is strict.
	activity := validActivity(dayID)
	same := domain.TimeOfDay{Hour: 10, Minute: 0}
	activity.StartTime = &same
	activity.EndTime = &same

	_, err := svc.Create(context.Background(), activity)

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestActivityService_Create_UntimedIsValid(t *testing.T) {
	dayID := uuid.New()
	svc := service.NewActivityService(dayRepoWith(dayID), echoActivityRepo())

	activity := validActivity(dayID)
	activity.StartTime = nil
	activity.EndTime = nil

	_, err := svc.Create(context.Background(), activity)

	assert.NoError(t, err)
}

func TestActivityService_Create_OnlyEndTimeIsValid(t *testing.T) {
	// A lone end time has nothing to compare against, so it passes.
	dayID := uuid.New()
	svc := service.NewActivityService(dayRepoWith(dayID), echoActivityRepo())

	activity := validActivity(dayID)
	activity.StartTime = nil

	_, err := svc.Create(context.Background(), activity)

	assert.NoError(t, err)
}

// ---- List tests ------------------------------------------------------------

func TestActivityService_ListByDayID_DayNotFound(t *testing.T) {
	activities := &mockActivityRepo{
		listByDayID: func(_ context.Context, _ uuid.UUID) ([]domain.Activity, error) { return nil, nil },
	}
	svc := service.NewActivityService(dayRepoWith(uuid.New()), activities)

	_, err := svc.ListByDayID(context.Background(), uuid.New())

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestActivityService_ListByDayID_EmptyDay(t *testing.T) {
	dayID := uuid.New()
	activities := &mockActivityRepo{
		listByDayID: func(_ context.Context, _ uuid.UUID) ([]domain.Activity, error) { return nil, nil },
	}
	svc := service.NewActivityService(dayRepoWith(dayID), activities)

	got, err := svc.ListByDayID(context.Background(), dayID)

	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

// ---- Update tests ----------------------------------------------------------

func TestActivityService_Update_ClearsTimes(t *testing.T) {
	dayID := uuid.New()
	existing := validActivity(dayID)
	existing.ID = uuid.New()

	activities := echoActivityRepo()
	activities.getByID = func(_ context.Context, _ uuid.UUID) (domain.Activity, error) { return existing, nil }
	svc := service.NewActivityService(dayRepoWith(dayID), activities)

	got, err := svc.Update(context.Background(), existing.ID,
		domain.ActivityPatch{ClearStartTime: true, ClearEndTime: true})

	require.NoError(t, err)
	assert.Nil(t, got.StartTime)
	assert.Nil(t, got.EndTime)
}

func TestActivityService_Update_PatchedTimesCrossValidated(t *testing.T) {
	// Patching only the start time must still be checked against the stored
	// end time, or an update could silently invert the interval.
	dayID := uuid.New()
	existing := validActivity(dayID) // ends at 11:30
	existing.ID = uuid.New()

	activities := echoActivityRepo()
	activities.getByID = func(_ context.Context, _ uuid.UUID) (domain.Activity, error) { return existing, nil }
	svc := service.NewActivityService(dayRepoWith(dayID), activities)

	late := domain.TimeOfDay{Hour: 12, Minute: 0}
	_, err := svc.Update(context.Background(), existing.ID,
		domain.ActivityPatch{StartTime: &late})

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestActivityService_Update_ReparentToMissingDay(t *testing.T) {
	dayID := uuid.New()
	existing := validActivity(dayID)
	existing.ID = uuid.New()

	activities := echoActivityRepo()
	activities.getByID = func(_ context.Context, _ uuid.UUID) (domain.Activity, error) { return existing, nil }
	svc := service.NewActivityService(dayRepoWith(dayID), activities)

	otherDay := uuid.New()
	_, err := svc.Update(context.Background(), existing.ID,
		domain.ActivityPatch{DayID: &otherDay})

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestActivityService_Update_ActivityNotFound(t *testing.T) {
	activities := &mockActivityRepo{
		getByID: func(_ context.Context, _ uuid.UUID) (domain.Activity, error) {
			return domain.Activity{}, domain.ErrNotFound
		},
	}
	svc := service.NewActivityService(dayRepoWith(uuid.New()), activities)

	_, err := svc.Update(context.Background(), uuid.New(), domain.ActivityPatch{})

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ---- Reorder tests ---------------------------------------------------------

func TestActivityService_Reorder_DelegatesToRepo(t *testing.T) {
	activityID := uuid.New()
	want := validActivity(uuid.New())
	want.ID = activityID
	want.OrderIndex = 2

	activities := &mockActivityRepo{
		reorder: func(_ context.Context, id uuid.UUID, position int) (domain.Activity, error) {
			require.Equal(t, activityID, id)
			require.Equal(t, 2, position)
			return want, nil
		},
	}
	svc := service.NewActivityService(dayRepoWith(uuid.New()), activities)

	got, err := svc.Reorder(context.Background(), activityID, 2)

	require.NoError(t, err)
	assert.Equal(t, 2, got.OrderIndex)
}

func TestActivityService_Reorder_NegativePosition(t *testing.T) {
	reorderCalled := false
	activities := &mockActivityRepo{
		reorder: func(_ context.Context, _ uuid.UUID, _ int) (domain.Activity, error) {
			reorderCalled = true
			return domain.Activity{}, nil
		},
	}
	svc := service.NewActivityService(dayRepoWith(uuid.New()), activities)

	_, err := svc.Reorder(context.Background(), uuid.New(), -1)

	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.False(t, reorderCalled, "negative positions must be rejected before the repo")
}

func TestActivityService_Reorder_NotFound(t *testing.T) {
	activities := &mockActivityRepo{
		reorder: func(_ context.Context, _ uuid.UUID, _ int) (domain.Activity, error) {
			return domain.Activity{}, domain.ErrNotFound
		},
	}
	svc := service.NewActivityService(dayRepoWith(uuid.New()), activities)

	_, err := svc.Reorder(context.Background(), uuid.New(), 0)

	assert.ErrorIs(t, err, domain.ErrNotFound)
}
