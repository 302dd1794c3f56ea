package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"travelplanner/internal/domain"
)

const dateLayout = "2006-01-02"

// decodeJSON decodes the request body into dst.
// A missing or malformed body is a client error, reported with a message the
// caller renders as VALIDATION_ERROR.
func decodeJSON(r *http.Request, dst any) error {
	if r.Body == nil {
		return errors.New("request body must be JSON")
	}
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return errors.New("request body must be JSON")
	}
	return nil
}

// parseDate parses a "YYYY-MM-DD" string, naming the field and the expected
// format in the error.
func parseDate(field, value string) (time.Time, error) {
	t, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%s must be in YYYY-MM-DD format", field)
	}
	return t, nil
}

// parseTime parses a "HH:MM" string, naming the field and the expected
// format in the error.
func parseTime(field, value string) (domain.TimeOfDay, error) {
	t, err := domain.ParseTimeOfDay(value)
	if err != nil {
		return domain.TimeOfDay{}, fmt.Errorf("%s must be in HH:MM format", field)
	}
	return t, nil
}

// optionalDate parses an optional date field for create requests.
// nil or empty input yields nil.
func optionalDate(field string, value *string) (*time.Time, error) {
	if value == nil || *value == "" {
		return nil, nil
	}
	t, err := parseDate(field, *value)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// optionalTime parses an optional time field for create requests.
// nil or empty input yields nil.
func optionalTime(field string, value *string) (*domain.TimeOfDay, error) {
	if value == nil || *value == "" {
		return nil, nil
	}
	t, err := parseTime(field, *value)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// fmtDate renders a date for a response body, nil in for null out.
func fmtDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(dateLayout)
	return &s
}
