// Package datetime is the single place wire formats for timestamps live.
package datetime

import (
	"errors"
	"strings"
	"time"
)

// Layout is the canonical rendering used in listings and detail pages.
const Layout = time.RFC3339

// InputLayout matches what an HTML datetime-local input submits.
const InputLayout = "2006-01-02T15:04"

var ErrFormat = errors.New("unrecognised datetime")

var accepted = []string{
	time.RFC3339Nano,
	time.RFC3339,
	InputLayout,
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// Parse accepts RFC 3339, datetime-local and plain dates. Values without an
// offset are read as UTC.
func Parse(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, ErrFormat
	}
	for _, layout := range accepted {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, ErrFormat
}

// Format renders t in Layout, or "" for the zero time.
func Format(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(Layout)
}

// FormatInput renders t for a datetime-local input.
func FormatInput(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(InputLayout)
}

// Now is the clock used for audit timestamps, truncated to whole seconds so
// values survive a round trip through the store unchanged.
var Now = func() time.Time { return time.Now().UTC().Truncate(time.Second) }
