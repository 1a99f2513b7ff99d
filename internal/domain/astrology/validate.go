package astrology

import (
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

var clockLayouts = []string{"15:04", "15:04:05"}

// ValidationError describes why birth details were rejected.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

type birthDetails struct {
	name  string
	place string
	date  time.Time
	clock time.Time
}

// Validate checks that in carries a name, a place, a well-formed date that is
// not after today and a well-formed time of day.
func Validate(in InputData, today time.Time) error {
	_, err := validate(in, today)
	return err
}

func validate(in InputData, today time.Time) (birthDetails, error) {
	if isBlank(in.Name) {
		return birthDetails{}, &ValidationError{Field: "name", Reason: "name is required"}
	}
	date, err := time.Parse(dateLayout, strings.TrimSpace(in.BirthDate))
	if err != nil {
		return birthDetails{}, &ValidationError{Field: "birthDate", Reason: "birth date is invalid"}
	}
	if date.After(calendarDay(today)) {
		return birthDetails{}, &ValidationError{Field: "birthDate", Reason: "birth date cannot be in the future"}
	}
	clock, ok := parseClock(in.BirthTime)
	if !ok {
		return birthDetails{}, &ValidationError{Field: "birthTime", Reason: "birth time is invalid"}
	}
	if isBlank(in.BirthPlace) {
		return birthDetails{}, &ValidationError{Field: "birthPlace", Reason: "birth place is required"}
	}
	return birthDetails{
		name:  strings.TrimSpace(in.Name),
		place: strings.TrimSpace(in.BirthPlace),
		date:  date,
		clock: clock,
	}, nil
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

func parseClock(raw string) (time.Time, bool) {
	trimmed := strings.TrimSpace(raw)
	for _, layout := range clockLayouts {
		if clock, err := time.Parse(layout, trimmed); err == nil {
			return clock, true
		}
	}
	return time.Time{}, false
}

// calendarDay strips the clock and location from t, keeping its local date.
func calendarDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
