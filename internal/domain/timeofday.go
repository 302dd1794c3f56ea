package domain

import (
	"fmt"
	"strings"
	"time"
)

// TimeOfDay is a wall-clock time with minute precision, independent of any
// date or location. It maps to a Postgres TIME column and renders as "HH:MM"
// in the API, matching the input format users type into a time picker.
//
// time.Time is deliberately not used here: a TIME column has no date
// component, and smuggling one in via a zero-date time.Time invites subtle
// comparison and serialization bugs.
type TimeOfDay struct {
	Hour   int // 0–23
	Minute int // 0–59
}

// ParseTimeOfDay parses a "HH:MM" 24-hour string.
// Returns an error naming the expected format on malformed input.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	t, err := time.Parse("15:04", strings.TrimSpace(s))
	if err != nil {
		return TimeOfDay{}, fmt.Errorf("must be in HH:MM format")
	}
	return TimeOfDay{Hour: t.Hour(), Minute: t.Minute()}, nil
}

// String renders the time as zero-padded "HH:MM".
func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}

// Before reports whether t is strictly earlier in the day than other.
func (t TimeOfDay) Before(other TimeOfDay) bool {
	if t.Hour != other.Hour {
		return t.Hour < other.Hour
	}
	return t.Minute < other.Minute
}

// Microseconds returns the offset since midnight, the representation
// pgtype.Time uses for TIME columns.
func (t TimeOfDay) Microseconds() int64 {
	return (int64(t.Hour)*3600 + int64(t.Minute)*60) * 1_000_000
}

// TimeOfDayFromMicroseconds converts a pgtype.Time microsecond offset back
// into a TimeOfDay, discarding sub-minute precision.
func TimeOfDayFromMicroseconds(us int64) TimeOfDay {
	minutes := us / 1_000_000 / 60
	return TimeOfDay{Hour: int(minutes / 60), Minute: int(minutes % 60)}
}

// MarshalJSON encodes the time as a quoted "HH:MM" string.
func (t TimeOfDay) MarshalJSON() ([]byte, error) {
	return []byte(`"` + t.String() + `"`), nil
}

// UnmarshalJSON decodes a quoted "HH:MM" string.
func (t *TimeOfDay) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	parsed, err := ParseTimeOfDay(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
