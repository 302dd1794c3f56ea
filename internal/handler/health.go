package handler

import (
	"context"
	"net/http"
)

// StatsReader is the subset of the stats repo the health handler needs.
type StatsReader interface {
	TableCounts(ctx context.Context) (map[string]int64, error)
}

// healthResponse is the JSON shape of the health check payload.
type healthResponse struct {
	Status   string         `json:"status"`
	Database healthDatabase `json:"database"`
}

type healthDatabase struct {
	Connected bool             `json:"connected"`
	Stats     map[string]int64 `json:"stats"`
}

// GetHealth handles GET /health.
// Reports database reachability and per-table row counts. A failed ping
// still returns HTTP 200 with status "unhealthy" so load balancers can read
// the body instead of guessing from a 5xx.
func (s *Server) GetHealth(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	connected := s.db != nil && s.db.Ping(ctx) == nil

	var stats map[string]int64
	if connected && s.stats != nil {
		counts, err := s.stats.TableCounts(ctx)
		if err == nil {
			stats = counts
		}
	}

	status := "healthy"
	if !connected {
		status = "unhealthy"
	}

	writeSuccess(w, http.StatusOK, healthResponse{
		Status:   status,
		Database: healthDatabase{Connected: connected, Stats: stats},
	})
}

// GetAPIInfo handles GET /api.
// A small self-describing document listing the endpoint families.
func (s *Server) GetAPIInfo(w http.ResponseWriter, r *http.Request) {
	writeSuccess(w, http.StatusOK, map[string]any{
		"name":    "Travel Planner API",
		"version": "1.0.0",
		"endpoints": map[string]string{
			"health":     "/health",
			"trips":      "/api/trips",
			"days":       "/api/trips/{tripID}/days, /api/days/{dayID}",
			"activities": "/api/days/{dayID}/activities, /api/activities/{activityID}",
		},
	})
}
