package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"travelplanner/internal/domain"
)

// ActivityRepo defines the persistence operations for Activities.
type ActivityRepo interface {
	// Create inserts a new activity and returns the persisted record.
	Create(ctx context.Context, activity domain.Activity) (domain.Activity, error)

	// GetByID retrieves a single activity by its UUID primary key.
	// Returns domain.ErrNotFound if no activity with that ID exists.
	GetByID(ctx context.Context, id uuid.UUID) (domain.Activity, error)

	// ListByDayID returns all activities for a day in display order:
	// start_time ascending with untimed activities last, then order_index
	// ascending. The order is computed by the query on every read.
	ListByDayID(ctx context.Context, dayID uuid.UUID) ([]domain.Activity, error)

	// Update overwrites the mutable fields of an existing activity and
	// returns the updated record, with updated_at refreshed in the same
	// statement. Returns domain.ErrNotFound if it does not exist.
	Update(ctx context.Context, activity domain.Activity) (domain.Activity, error)

	// Delete removes an activity by ID.
	// Returns domain.ErrNotFound if it does not exist.
	Delete(ctx context.Context, id uuid.UUID) error

	// Reorder moves an activity to the given zero-based position among its
	// day's siblings and renumbers order_index so the manual order survives
	// the next listing. All writes happen in one transaction; a failure
	// partway through leaves every row untouched. Positions past the end
	// clamp to the end. Returns the moved activity as persisted.
	Reorder(ctx context.Context, activityID uuid.UUID, position int) (domain.Activity, error)
}

// pgActivityRepo is the Postgres implementation of ActivityRepo.
type pgActivityRepo struct {
	db db
}

// NewActivityRepo constructs an ActivityRepo backed by the provided db
// connection. In production pass *pgxpool.Pool; in tests pass a pgx.Tx for
// rollback isolation.
func NewActivityRepo(db db) ActivityRepo {
	return &pgActivityRepo{db: db}
}

func (r *pgActivityRepo) Create(ctx context.Context, activity domain.Activity) (domain.Activity, error) {
	const q = `
		INSERT INTO activities (day_id, name, description, start_time, end_time, order_index)
		VALUES (@day_id, @name, @description, @start_time, @end_time, @order_index)
		RETURNING id, day_id, name, description, start_time, end_time, order_index, created_at, updated_at`

	args := pgx.NamedArgs{
		"day_id":      activity.DayID,
		"name":        activity.Name,
		"description": activity.Description,
		"start_time":  timeArg(activity.StartTime),
		"end_time":    timeArg(activity.EndTime),
		"order_index": activity.OrderIndex,
	}

	row := r.db.QueryRow(ctx, q, args)
	result, err := scanActivity(row)
	if err != nil {
		return domain.Activity{}, fmt.Errorf("repo.ActivityRepo.Create: %w", err)
	}
	return result, nil
}

func (r *pgActivityRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Activity, error) {
	const q = `
		SELECT id, day_id, name, description, start_time, end_time, order_index, created_at, updated_at
		FROM activities
		WHERE id = @id`

	row := r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id})
	result, err := scanActivity(row)
	if err != nil {
		return domain.Activity{}, fmt.Errorf("repo.ActivityRepo.GetByID: %w", err)
	}
	return result, nil
}

func (r *pgActivityRepo) ListByDayID(ctx context.Context, dayID uuid.UUID) ([]domain.Activity, error) {
	const q = `
		SELECT id, day_id, name, description, start_time, end_time, order_index, created_at, updated_at
		FROM activities
		WHERE day_id = @day_id
		ORDER BY start_time ASC NULLS LAST, order_index ASC`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"day_id": dayID})
	if err != nil {
		return nil, fmt.Errorf("repo.ActivityRepo.ListByDayID: %w", err)
	}
	defer rows.Close()

	var activities []domain.Activity
	for rows.Next() {
		a, err := scanActivity(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.ActivityRepo.ListByDayID: scan: %w", err)
		}
		activities = append(activities, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.ActivityRepo.ListByDayID: rows: %w", err)
	}

	return activities, nil
}

func (r *pgActivityRepo) Update(ctx context.Context, activity domain.Activity) (domain.Activity, error) {
	const q = `
		UPDATE activities
		SET day_id      = @day_id,
		    name        = @name,
		    description = @description,
		    start_time  = @start_time,
		    end_time    = @end_time,
		    order_index = @order_index,
		    updated_at  = now()
		WHERE id = @id
		RETURNING id, day_id, name, description, start_time, end_time, order_index, created_at, updated_at`

	args := pgx.NamedArgs{
		"id":          activity.ID,
		"day_id":      activity.DayID,
		"name":        activity.Name,
		"description": activity.Description,
		"start_time":  timeArg(activity.StartTime),
		"end_time":    timeArg(activity.EndTime),
		"order_index": activity.OrderIndex,
	}

	row := r.db.QueryRow(ctx, q, args)
	result, err := scanActivity(row)
	if err != nil {
		return domain.Activity{}, fmt.Errorf("repo.ActivityRepo.Update: %w", err)
	}
	return result, nil
}

func (r *pgActivityRepo) Delete(ctx context.Context, id uuid.UUID) error {
	const q = `DELETE FROM activities WHERE id = @id`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"id": id})
	if err != nil {
		return fmt.Errorf("repo.ActivityRepo.Delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.ActivityRepo.Delete: %w", domain.ErrNotFound)
	}
	return nil
}

// Reorder renumbers a day's activities inside a single transaction.
// The new sequence is computed by domain.PlanReorder from the current display
// order; only rows whose order_index changes are written. Concurrent reorders
// of the same day are not coordinated beyond this transaction — last write wins.
func (r *pgActivityRepo) Reorder(ctx context.Context, activityID uuid.UUID, position int) (domain.Activity, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return domain.Activity{}, fmt.Errorf("repo.ActivityRepo.Reorder: begin: %w", err)
	}
	// Rollback is a no-op after a successful commit.
	defer tx.Rollback(ctx) //nolint:errcheck

	txRepo := &pgActivityRepo{db: tx}

	moved, err := txRepo.GetByID(ctx, activityID)
	if err != nil {
		return domain.Activity{}, fmt.Errorf("repo.ActivityRepo.Reorder: %w", err)
	}

	siblings, err := txRepo.ListByDayID(ctx, moved.DayID)
	if err != nil {
		return domain.Activity{}, fmt.Errorf("repo.ActivityRepo.Reorder: %w", err)
	}

	writes, err := domain.PlanReorder(siblings, activityID, position)
	if err != nil {
		return domain.Activity{}, fmt.Errorf("repo.ActivityRepo.Reorder: %w", err)
	}

	const q = `
		UPDATE activities
		SET order_index = @order_index,
		    updated_at  = now()
		WHERE id = @id`

	for _, w := range writes {
		args := pgx.NamedArgs{"id": w.ID, "order_index": w.OrderIndex}
		if _, err := tx.Exec(ctx, q, args); err != nil {
			return domain.Activity{}, fmt.Errorf("repo.ActivityRepo.Reorder: renumber: %w", err)
		}
	}

	result, err := txRepo.GetByID(ctx, activityID)
	if err != nil {
		return domain.Activity{}, fmt.Errorf("repo.ActivityRepo.Reorder: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return domain.Activity{}, fmt.Errorf("repo.ActivityRepo.Reorder: commit: %w", err)
	}
	return result, nil
}

// timeArg converts an optional TimeOfDay to the pgtype value for a TIME
// column. A nil input becomes SQL NULL.
func timeArg(t *domain.TimeOfDay) pgtype.Time {
	if t == nil {
		return pgtype.Time{}
	}
	return pgtype.Time{Microseconds: t.Microseconds(), Valid: true}
}

// scanActivity maps a single database row into a domain.Activity.
func scanActivity(s scanner) (domain.Activity, error) {
	var (
		a         domain.Activity
		id        pgtype.UUID
		dayID     pgtype.UUID
		startTime pgtype.Time
		endTime   pgtype.Time
	)

	err := s.Scan(&id, &dayID, &a.Name, &a.Description, &startTime, &endTime,
		&a.OrderIndex, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Activity{}, domain.ErrNotFound
		}
		return domain.Activity{}, err
	}

	a.ID = uuid.UUID(id.Bytes)
	a.DayID = uuid.UUID(dayID.Bytes)
	if startTime.Valid {
		st := domain.TimeOfDayFromMicroseconds(startTime.Microseconds)
		a.StartTime = &st
	}
	if endTime.Valid {
		et := domain.TimeOfDayFromMicroseconds(endTime.Microseconds)
		a.EndTime = &et
	}

	return a, nil
}
