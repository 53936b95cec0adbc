package domain

import (
	"errors"
	"strings"
	"time"
)

// ErrInvalidTime is returned when an appointment time cannot be parsed.
var ErrInvalidTime = errors.New("domain: invalid appointment time")

const (
	wireLayout      = "2006-01-02T15:04:05-07:00"
	wireLayoutMicro = "2006-01-02T15:04:05.000000-07:00"
)

var offsetLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04Z07:00",
}

// Values without an offset are taken as UTC.
var naiveLayouts = []string{
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02 15:04",
	"2006-01-02",
}

// ParseTime parses an ISO-8601 appointment time. A trailing "Z" is read as
// +00:00. The result is in UTC, truncated to microseconds.
func ParseTime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, ErrInvalidTime
	}
	if strings.HasSuffix(s, "Z") || strings.HasSuffix(s, "z") {
		s = s[:len(s)-1] + "+00:00"
	}

	for _, layout := range offsetLayouts {
		if t, err := time.Parse(layout, strings.Replace(s, " ", "T", 1)); err == nil {
			return normalize(t), nil
		}
	}
	for _, layout := range naiveLayouts {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return normalize(t), nil
		}
	}
	return time.Time{}, ErrInvalidTime
}

// FormatTime renders t in UTC with an explicit +00:00 offset. Fractional
// seconds appear only when non-zero, always as six digits.
func FormatTime(t time.Time) string {
	t = normalize(t)
	if t.Nanosecond() != 0 {
		return t.Format(wireLayoutMicro)
	}
	return t.Format(wireLayout)
}

func normalize(t time.Time) time.Time {
	return t.UTC().Truncate(time.Microsecond)
}
