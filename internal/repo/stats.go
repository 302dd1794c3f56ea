package repo

import (
	"context"
	"fmt"
)

// StatsRepo reports row counts for the health endpoint.
type StatsRepo interface {
	// TableCounts returns the number of rows in each core table.
	TableCounts(ctx context.Context) (map[string]int64, error)
}

// pgStatsRepo is the Postgres implementation of StatsRepo.
type pgStatsRepo struct {
	db db
}

// NewStatsRepo constructs a StatsRepo backed by the provided db connection.
func NewStatsRepo(db db) StatsRepo {
	return &pgStatsRepo{db: db}
}

func (r *pgStatsRepo) TableCounts(ctx context.Context) (map[string]int64, error) {
	const q = `
		SELECT
			(SELECT count(*) FROM trips),
			(SELECT count(*) FROM days),
			(SELECT count(*) FROM activities)`

	var trips, days, activities int64
	if err := r.db.QueryRow(ctx, q).Scan(&trips, &days, &activities); err != nil {
		return nil, fmt.Errorf("repo.StatsRepo.TableCounts: %w", err)
	}

	return map[string]int64{
		"trips":      trips,
		"days":       days,
		"activities": activities,
	}, nil
}
