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

// DayRepo defines the persistence operations for Days.
type DayRepo interface {
	// Create inserts a new day and returns the persisted record.
	Create(ctx context.Context, day domain.Day) (domain.Day, error)

	// GetByID retrieves a single day by its UUID primary key.
	// Returns domain.ErrNotFound if no day with that ID exists.
	GetByID(ctx context.Context, id uuid.UUID) (domain.Day, error)

	// ListByTripID returns all days for a trip ordered by day_number ascending.
	ListByTripID(ctx context.Context, tripID uuid.UUID) ([]domain.Day, error)

	// Update overwrites the mutable fields of an existing day and returns
	// the updated record. Returns domain.ErrNotFound if it does not exist.
	Update(ctx context.Context, day domain.Day) (domain.Day, error)

	// Delete removes a day by ID; its activities cascade at the storage
	// layer. Returns domain.ErrNotFound if it does not exist.
	Delete(ctx context.Context, id uuid.UUID) error
}

// pgDayRepo is the Postgres implementation of DayRepo.
type pgDayRepo struct {
	db db
}

// NewDayRepo constructs a DayRepo backed by the provided db connection.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx for rollback isolation.
func NewDayRepo(db db) DayRepo {
	return &pgDayRepo{db: db}
}

func (r *pgDayRepo) Create(ctx context.Context, day domain.Day) (domain.Day, error) {
	const q = `
		INSERT INTO days (trip_id, date, day_number)
		VALUES (@trip_id, @date, @day_number)
		RETURNING id, trip_id, date, day_number, created_at`

	args := pgx.NamedArgs{
		"trip_id":    day.TripID,
		"date":       day.Date,
		"day_number": day.DayNumber,
	}

	row := r.db.QueryRow(ctx, q, args)
	result, err := scanDay(row)
	if err != nil {
		return domain.Day{}, fmt.Errorf("repo.DayRepo.Create: %w", err)
	}
	return result, nil
}

func (r *pgDayRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Day, error) {
	const q = `
		SELECT id, trip_id, date, day_number, created_at
		FROM days
		WHERE id = @id`

	row := r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id})
	result, err := scanDay(row)
	if err != nil {
		return domain.Day{}, fmt.Errorf("repo.DayRepo.GetByID: %w", err)
	}
	return result, nil
}

func (r *pgDayRepo) ListByTripID(ctx context.Context, tripID uuid.UUID) ([]domain.Day, error) {
	const q = `
		SELECT id, trip_id, date, day_number, created_at
		FROM days
		WHERE trip_id = @trip_id
		ORDER BY day_number ASC`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"trip_id": tripID})
	if err != nil {
		return nil, fmt.Errorf("repo.DayRepo.ListByTripID: %w", err)
	}
	defer rows.Close()

	var days []domain.Day
	for rows.Next() {
		d, err := scanDay(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.DayRepo.ListByTripID: scan: %w", err)
		}
		days = append(days, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.DayRepo.ListByTripID: rows: %w", err)
	}

	return days, nil
}

func (r *pgDayRepo) Update(ctx context.Context, day domain.Day) (domain.Day, error) {
	const q = `
		UPDATE days
		SET trip_id    = @trip_id,
		    date       = @date,
		    day_number = @day_number
		WHERE id = @id
		RETURNING id, trip_id, date, day_number, created_at`

	args := pgx.NamedArgs{
		"id":         day.ID,
		"trip_id":    day.TripID,
		"date":       day.Date,
		"day_number": day.DayNumber,
	}

	row := r.db.QueryRow(ctx, q, args)
	result, err := scanDay(row)
	if err != nil {
		return domain.Day{}, fmt.Errorf("repo.DayRepo.Update: %w", err)
	}
	return result, nil
}

func (r *pgDayRepo) Delete(ctx context.Context, id uuid.UUID) error {
	const q = `DELETE FROM days WHERE id = @id`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"id": id})
	if err != nil {
		return fmt.Errorf("repo.DayRepo.Delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.DayRepo.Delete: %w", domain.ErrNotFound)
	}
	return nil
}

// scanDay maps a single database row into a domain.Day.
func scanDay(s scanner) (domain.Day, error) {
	var (
		d      domain.Day
		id     pgtype.UUID
		tripID pgtype.UUID
		date   pgtype.Date
	)

	err := s.Scan(&id, &tripID, &date, &d.DayNumber, &d.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Day{}, domain.ErrNotFound
		}
		return domain.Day{}, err
	}

	d.ID = uuid.UUID(id.Bytes)
	d.TripID = uuid.UUID(tripID.Bytes)
	d.Date = date.Time

	return d, nil
}
