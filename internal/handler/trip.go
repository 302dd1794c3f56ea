package handler

import (
	"net/http"
	"time"

	"github.com/google/uuid"

	"travelplanner/internal/domain"
)

// tripResponse is the JSON shape of a trip in the success envelope.
type tripResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	StartDate   *string   `json:"start_date"`
	EndDate     *string   `json:"end_date"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// createTripRequest is the JSON body for POST /api/trips.
type createTripRequest struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	StartDate   *string `json:"start_date"`
	EndDate     *string `json:"end_date"`
}

// updateTripRequest is the JSON body for PUT /api/trips/{tripID}.
// Absent fields are left unchanged; an empty-string date clears it.
type updateTripRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	StartDate   *string `json:"start_date"`
	EndDate     *string `json:"end_date"`
}

// ListTrips handles GET /api/trips.
func (s *Server) ListTrips(w http.ResponseWriter, r *http.Request) {
	trips, err := s.trips.List(r.Context())
	if err != nil {
		s.writeServiceError(w, r, err, "trip", "failed to retrieve trips")
		return
	}

	data := make([]tripResponse, len(trips))
	for i, t := range trips {
		data[i] = tripToResponse(t)
	}
	writeSuccess(w, http.StatusOK, data)
}

// CreateTrip handles POST /api/trips.
func (s *Server) CreateTrip(w http.ResponseWriter, r *http.Request) {
	var body createTripRequest
	if err := decodeJSON(r, &body); err != nil {
		badRequest(w, err.Error())
		return
	}

	trip := domain.Trip{Name: body.Name, Description: body.Description}

	var err error
	if trip.StartDate, err = optionalDate("start_date", body.StartDate); err != nil {
		badRequest(w, err.Error())
		return
	}
	if trip.EndDate, err = optionalDate("end_date", body.EndDate); err != nil {
		badRequest(w, err.Error())
		return
	}

	created, err := s.trips.Create(r.Context(), trip)
	if err != nil {
		s.writeServiceError(w, r, err, "trip", "failed to create trip")
		return
	}

	writeSuccess(w, http.StatusCreated, tripToResponse(created))
}

// GetTrip handles GET /api/trips/{tripID}.
func (s *Server) GetTrip(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "tripID")
	if err != nil {
		badRequest(w, "trip id must be a valid UUID")
		return
	}

	trip, err := s.trips.GetByID(r.Context(), id)
	if err != nil {
		s.writeServiceError(w, r, err, "trip", "failed to retrieve trip")
		return
	}

	writeSuccess(w, http.StatusOK, tripToResponse(trip))
}

// UpdateTrip handles PUT /api/trips/{tripID}.
func (s *Server) UpdateTrip(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "tripID")
	if err != nil {
		badRequest(w, "trip id must be a valid UUID")
		return
	}

	var body updateTripRequest
	if err := decodeJSON(r, &body); err != nil {
		badRequest(w, err.Error())
		return
	}

	patch := domain.TripPatch{Name: body.Name, Description: body.Description}

	if body.StartDate != nil {
		if *body.StartDate == "" {
			patch.ClearStartDate = true
		} else {
			sd, err := parseDate("start_date", *body.StartDate)
			if err != nil {
				badRequest(w, err.Error())
				return
			}
			patch.StartDate = &sd
		}
	}
	if body.EndDate != nil {
		if *body.EndDate == "" {
			patch.ClearEndDate = true
		} else {
			ed, err := parseDate("end_date", *body.EndDate)
			if err != nil {
				badRequest(w, err.Error())
				return
			}
			patch.EndDate = &ed
		}
	}

	updated, err := s.trips.Update(r.Context(), id, patch)
	if err != nil {
		s.writeServiceError(w, r, err, "trip", "failed to update trip")
		return
	}

	writeSuccess(w, http.StatusOK, tripToResponse(updated))
}

// DeleteTrip handles DELETE /api/trips/{tripID}.
// Deleting a trip cascades to its days and their activities.
func (s *Server) DeleteTrip(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "tripID")
	if err != nil {
		badRequest(w, "trip id must be a valid UUID")
		return
	}

	if err := s.trips.Delete(r.Context(), id); err != nil {
		s.writeServiceError(w, r, err, "trip", "failed to delete trip")
		return
	}

	writeSuccess(w, http.StatusOK, map[string]string{"message": "trip deleted"})
}

// tripToResponse converts a domain.Trip into its JSON shape.
func tripToResponse(t domain.Trip) tripResponse {
	return tripResponse{
		ID:          t.ID,
		Name:        t.Name,
		Description: t.Description,
		StartDate:   fmtDate(t.StartDate),
		EndDate:     fmtDate(t.EndDate),
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}
