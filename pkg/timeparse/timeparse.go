// Package timeparse reduces free-form client timestamps to the canonical
// storage format. Browsers send whatever toLocaleString produced, so parsing
// is best effort: anything unrecognizable degrades to an absent value and is
// persisted as NULL rather than failing the write.
package timeparse

import (
	"strings"
	"time"
)

// Canonical is the single datetime format used for persisted calculation times.
const Canonical = "2006-01-02 15:04:05"

// ISO extended forms: date + time with optional fractional seconds and an
// optional "Z" or numeric UTC offset. Go accepts a fractional second during
// parsing even when the layout omits it.
var isoLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// Locale-style fallbacks tried in fixed order; the first match wins.
// Each 12-hour pattern appears twice because Go's meridiem token is
// case-sensitive while clients send both "PM" and "pm".
var localeLayouts = []string{
	"1/2/2006, 3:04:05 PM",
	"1/2/2006, 3:04:05 pm",
	"1/2/2006 3:04:05 PM",
	"1/2/2006 3:04:05 pm",
	"2/1/2006, 3:04:05 PM",
	"2/1/2006, 3:04:05 pm",
	"2-1-2006 15:04:05",
	"2006-01-02 15:04:05",
}

// Normalize parses a raw timestamp string and returns it in the Canonical
// format. The second return value is false when the input is empty or no
// known layout matches; callers store NULL in that case. Offsets are kept as
// wall-clock time, so "...T12:29:58Z" and "...T12:29:58+05:30" both keep
// their literal time of day.
func Normalize(raw string) (string, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", false
	}

	for _, layout := range isoLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.Format(Canonical), true
		}
	}

	for _, layout := range localeLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.Format(Canonical), true
		}
	}

	return "", false
}
