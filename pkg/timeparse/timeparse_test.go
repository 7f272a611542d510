package timeparse

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeISO(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"2025-12-08T12:29:58Z", "2025-12-08 12:29:58"},
		{"2025-12-08T12:29:58+00:00", "2025-12-08 12:29:58"},
		{"2025-12-08T12:29:58+05:30", "2025-12-08 12:29:58"},
		{"2025-12-08T12:29:58.123456Z", "2025-12-08 12:29:58"},
		{"2025-12-08T12:29:58", "2025-12-08 12:29:58"},
		{"2025-12-08", "2025-12-08 00:00:00"},
	}

	for _, tc := range cases {
		got, ok := Normalize(tc.in)
		assert.True(t, ok, "should parse %q", tc.in)
		assert.Equal(t, tc.want, got, "input %q", tc.in)
	}
}

func TestNormalizeLocaleForms(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"12/8/2025, 12:29:58 pm", "2025-12-08 12:29:58"},
		{"12/8/2025, 12:29:58 PM", "2025-12-08 12:29:58"},
		{"12/8/2025 12:29:58 pm", "2025-12-08 12:29:58"},
		{"1/2/2025, 9:05:03 am", "2025-01-02 09:05:03"},
		{"08-12-2025 12:29:58", "2025-12-08 12:29:58"},
		{"2025-12-08 12:29:58", "2025-12-08 12:29:58"},
	}

	for _, tc := range cases {
		got, ok := Normalize(tc.in)
		assert.True(t, ok, "should parse %q", tc.in)
		assert.Equal(t, tc.want, got, "input %q", tc.in)
	}
}

// Ambiguous slash dates resolve month-first because that pattern is tried
// before the day-first one.
func TestNormalizeMonthFirstWins(t *testing.T) {
	got, ok := Normalize("3/4/2025, 1:02:03 pm")
	assert.True(t, ok)
	assert.Equal(t, "2025-03-04 13:02:03", got)
}

func TestNormalizeAbsent(t *testing.T) {
	for _, in := range []string{"", "   ", "not-a-date", "13/45/2025, 12:00:00 pm", "12345"} {
		got, ok := Normalize(in)
		assert.False(t, ok, "should not parse %q", in)
		assert.Empty(t, got)
	}
}
