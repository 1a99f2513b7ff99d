package util

import (
	"strings"
	"time"
)

// Clock returns a now function evaluated in loc.
func Clock(loc *time.Location) func() time.Time {
	if loc == nil {
		loc = time.UTC
	}
	return func() time.Time {
		return time.Now().In(loc)
	}
}

// LoadLocation resolves an IANA zone name; blank means UTC.
func LoadLocation(name string) (*time.Location, error) {
	if strings.TrimSpace(name) == "" {
		return time.UTC, nil
	}
	return time.LoadLocation(strings.TrimSpace(name))
}
