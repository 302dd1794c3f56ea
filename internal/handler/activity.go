package handler

import (
	"net/http"
	"time"

	"github.com/google/uuid"

	"travelplanner/internal/domain"
)

// activityResponse is the JSON shape of an activity in the success envelope.
type activityResponse struct {
	ID          uuid.UUID         `json:"id"`
	DayID       uuid.UUID         `json:"day_id"`
	Name        string            `json:"name"`
	Description string            `json:"description"`
	StartTime   *domain.TimeOfDay `json:"start_time"`
	EndTime     *domain.TimeOfDay `json:"end_time"`
	OrderIndex  int               `json:"order_index"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
}

// createActivityRequest is the JSON body for POST /api/days/{dayID}/activities.
type createActivityRequest struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	StartTime   *string `json:"start_time"`
	EndTime     *string `json:"end_time"`
	OrderIndex  int     `json:"order_index"`
}

// updateActivityRequest is the JSON body for PUT /api/activities/{activityID}.
// Absent fields are left unchanged; an empty-string time clears it.
type updateActivityRequest struct {
	DayID       *uuid.UUID `json:"day_id"`
	Name        *string    `json:"name"`
	Description *string    `json:"description"`
	StartTime   *string    `json:"start_time"`
	EndTime     *string    `json:"end_time"`
	OrderIndex  *int       `json:"order_index"`
}

// reorderActivityRequest is the JSON body for
// POST /api/activities/{activityID}/reorder.
type reorderActivityRequest struct {
	Position int `json:"position"`
}

// ListActivities handles GET /api/days/{dayID}/activities.
// Activities come back in display order: start_time ascending with untimed
// activities last, ties broken by order_index.
func (s *Server) ListActivities(w http.ResponseWriter, r *http.Request) {
	dayID, err := pathID(r, "dayID")
	if err != nil {
		badRequest(w, "day id must be a valid UUID")
		return
	}

	activities, err := s.activities.ListByDayID(r.Context(), dayID)
	if err != nil {
		s.writeServiceError(w, r, err, "day", "failed to retrieve activities")
		return
	}

	data := make([]activityResponse, len(activities))
	for i, a := range activities {
		data[i] = activityToResponse(a)
	}
	writeSuccess(w, http.StatusOK, data)
}

// CreateActivity handles POST /api/days/{dayID}/activities.
func (s *Server) CreateActivity(w http.ResponseWriter, r *http.Request) {
	dayID, err := pathID(r, "dayID")
	if err != nil {
		badRequest(w, "day id must be a valid UUID")
		return
	}

	var body createActivityRequest
	if err := decodeJSON(r, &body); err != nil {
		badRequest(w, err.Error())
		return
	}

	activity := domain.Activity{
		DayID:       dayID,
		Name:        body.Name,
		Description: body.Description,
		OrderIndex:  body.OrderIndex,
	}

	if activity.StartTime, err = optionalTime("start_time", body.StartTime); err != nil {
		badRequest(w, err.Error())
		return
	}
	if activity.EndTime, err = optionalTime("end_time", body.EndTime); err != nil {
		badRequest(w, err.Error())
		return
	}

	created, err := s.activities.Create(r.Context(), activity)
	if err != nil {
		s.writeServiceError(w, r, err, "day", "failed to create activity")
		return
	}

	writeSuccess(w, http.StatusCreated, activityToResponse(created))
}

// GetActivity handles GET /api/activities/{activityID}.
func (s *Server) GetActivity(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "activityID")
	if err != nil {
		badRequest(w, "activity id must be a valid UUID")
		return
	}

	activity, err := s.activities.GetByID(r.Context(), id)
	if err != nil {
		s.writeServiceError(w, r, err, "activity", "failed to retrieve activity")
		return
	}

	writeSuccess(w, http.StatusOK, activityToResponse(activity))
}

// UpdateActivity handles PUT /api/activities/{activityID}.
func (s *Server) UpdateActivity(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "activityID")
	if err != nil {
		badRequest(w, "activity id must be a valid UUID")
		return
	}

	var body updateActivityRequest
	if err := decodeJSON(r, &body); err != nil {
		badRequest(w, err.Error())
		return
	}

	patch := domain.ActivityPatch{
		DayID:       body.DayID,
		Name:        body.Name,
		Description: body.Description,
		OrderIndex:  body.OrderIndex,
	}

	if body.StartTime != nil {
		if *body.StartTime == "" {
			patch.ClearStartTime = true
		} else {
			st, err := parseTime("start_time", *body.StartTime)
			if err != nil {
				badRequest(w, err.Error())
				return
			}
			patch.StartTime = &st
		}
	}
	if body.EndTime != nil {
		if *body.EndTime == "" {
			patch.ClearEndTime = true
		} else {
			et, err := parseTime("end_time", *body.EndTime)
			if err != nil {
				badRequest(w, err.Error())
				return
			}
			patch.EndTime = &et
		}
	}

	updated, err := s.activities.Update(r.Context(), id, patch)
	if err != nil {
		s.writeServiceError(w, r, err, "activity", "failed to update activity")
		return
	}

	writeSuccess(w, http.StatusOK, activityToResponse(updated))
}

// DeleteActivity handles DELETE /api/activities/{activityID}.
func (s *Server) DeleteActivity(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "activityID")
	if err != nil {
		badRequest(w, "activity id must be a valid UUID")
		return
	}

	if err := s.activities.Delete(r.Context(), id); err != nil {
		s.writeServiceError(w, r, err, "activity", "failed to delete activity")
		return
	}

	writeSuccess(w, http.StatusOK, map[string]string{"message": "activity deleted"})
}

// ReorderActivity handles POST /api/activities/{activityID}/reorder.
// Moves the activity to the requested zero-based position among its day's
// siblings; positions past the end clamp to the end. Manual order is only
// observable among activities sharing a start_time or lacking one.
func (s *Server) ReorderActivity(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "activityID")
	if err != nil {
		badRequest(w, "activity id must be a valid UUID")
		return
	}

	var body reorderActivityRequest
	if err := decodeJSON(r, &body); err != nil {
		badRequest(w, err.Error())
		return
	}

	moved, err := s.activities.Reorder(r.Context(), id, body.Position)
	if err != nil {
		s.writeServiceError(w, r, err, "activity", "failed to reorder activity")
		return
	}

	writeSuccess(w, http.StatusOK, activityToResponse(moved))
}

// activityToResponse converts a domain.Activity into its JSON shape.
func activityToResponse(a domain.Activity) activityResponse {
	return activityResponse{
		ID:          a.ID,
		DayID:       a.DayID,
		Name:        a.Name,
		Description: a.Description,
		StartTime:   a.StartTime,
		EndTime:     a.EndTime,
		OrderIndex:  a.OrderIndex,
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
	}
}
