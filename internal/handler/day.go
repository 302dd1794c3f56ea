package handler

import (
	"net/http"
	"time"

	"github.com/google/uuid"

	"travelplanner/internal/domain"
)

// dayResponse is the JSON shape of a day in the success envelope.
type dayResponse struct {
	ID        uuid.UUID `json:"id"`
	TripID    uuid.UUID `json:"trip_id"`
	Date      string    `json:"date"`
	DayNumber int       `json:"day_number"`
	CreatedAt time.Time `json:"created_at"`
}

// createDayRequest is the JSON body for POST /api/trips/{tripID}/days.
type createDayRequest struct {
	Date      string `json:"date"`
	DayNumber int    `json:"day_number"`
}

// updateDayRequest is the JSON body for PUT /api/days/{dayID}.
// Absent fields are left unchanged.
type updateDayRequest struct {
	TripID    *uuid.UUID `json:"trip_id"`
	Date      *string    `json:"date"`
	DayNumber *int       `json:"day_number"`
}

// ListDays handles GET /api/trips/{tripID}/days.
func (s *Server) ListDays(w http.ResponseWriter, r *http.Request) {
	tripID, err := pathID(r, "tripID")
	if err != nil {
		badRequest(w, "trip id must be a valid UUID")
		return
	}

	days, err := s.days.ListByTripID(r.Context(), tripID)
	if err != nil {
		s.writeServiceError(w, r, err, "trip", "failed to retrieve days")
		return
	}

	data := make([]dayResponse, len(days))
	for i, d := range days {
		data[i] = dayToResponse(d)
	}
	writeSuccess(w, http.StatusOK, data)
}

// CreateDay handles POST /api/trips/{tripID}/days.
func (s *Server) CreateDay(w http.ResponseWriter, r *http.Request) {
	tripID, err := pathID(r, "tripID")
	if err != nil {
		badRequest(w, "trip id must be a valid UUID")
		return
	}

	var body createDayRequest
	if err := decodeJSON(r, &body); err != nil {
		badRequest(w, err.Error())
		return
	}

	day := domain.Day{TripID: tripID, DayNumber: body.DayNumber}
	if body.Date != "" {
		if day.Date, err = parseDate("date", body.Date); err != nil {
			badRequest(w, err.Error())
			return
		}
	}

	created, err := s.days.Create(r.Context(), day)
	if err != nil {
		s.writeServiceError(w, r, err, "trip", "failed to create day")
		return
	}

	writeSuccess(w, http.StatusCreated, dayToResponse(created))
}

// GetDay handles GET /api/days/{dayID}.
func (s *Server) GetDay(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "dayID")
	if err != nil {
		badRequest(w, "day id must be a valid UUID")
		return
	}

	day, err := s.days.GetByID(r.Context(), id)
	if err != nil {
		s.writeServiceError(w, r, err, "day", "failed to retrieve day")
		return
	}

	writeSuccess(w, http.StatusOK, dayToResponse(day))
}

// UpdateDay handles PUT /api/days/{dayID}.
func (s *Server) UpdateDay(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "dayID")
	if err != nil {
		badRequest(w, "day id must be a valid UUID")
		return
	}

	var body updateDayRequest
	if err := decodeJSON(r, &body); err != nil {
		badRequest(w, err.Error())
		return
	}

	patch := domain.DayPatch{TripID: body.TripID, DayNumber: body.DayNumber}
	if body.Date != nil {
		d, err := parseDate("date", *body.Date)
		if err != nil {
			badRequest(w, err.Error())
			return
		}
		patch.Date = &d
	}

	updated, err := s.days.Update(r.Context(), id, patch)
	if err != nil {
		s.writeServiceError(w, r, err, "day", "failed to update day")
		return
	}

	writeSuccess(w, http.StatusOK, dayToResponse(updated))
}

// DeleteDay handles DELETE /api/days/{dayID}.
// Deleting a day cascades to its activities.
func (s *Server) DeleteDay(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "dayID")
	if err != nil {
		badRequest(w, "day id must be a valid UUID")
		return
	}

	if err := s.days.Delete(r.Context(), id); err != nil {
		s.writeServiceError(w, r, err, "day", "failed to delete day")
		return
	}

	writeSuccess(w, http.StatusOK, map[string]string{"message": "day deleted"})
}

// dayToResponse converts a domain.Day into its JSON shape.
func dayToResponse(d domain.Day) dayResponse {
	return dayResponse{
		ID:        d.ID,
		TripID:    d.TripID,
		Date:      d.Date.Format(dateLayout),
		DayNumber: d.DayNumber,
		CreatedAt: d.CreatedAt,
	}
}
