// Package duration parses the ISO-8601 duration subset used by recipe markup
// and the video platform API.
package duration

import (
	"fmt"
	"regexp"
	"strconv"
)

var iso8601Re = regexp.MustCompile(`^PT(?:(\d+)H)?(?:(\d+)M)?(?:(\d+)S)?$`)

// ParseISO8601 converts a PT#H#M#S duration to seconds. Any string outside
// that subset, including the empty string, yields 0. It never fails.
func ParseISO8601(s string) int {
	m := iso8601Re.FindStringSubmatch(s)
	if m == nil || s == "PT" {
		return 0
	}
	hours := atoiOrZero(m[1])
	minutes := atoiOrZero(m[2])
	seconds := atoiOrZero(m[3])
	return hours*3600 + minutes*60 + seconds
}

// ToMinutes converts an ISO-8601 duration to whole minutes, rounding any
// leftover seconds up.
func ToMinutes(s string) int {
	secs := ParseISO8601(s)
	return (secs + 59) / 60
}

// Format renders seconds as H:MM:SS, or M:SS under an hour. Negative input
// clamps to "0:00".
func Format(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	h := seconds / 3600
	m := (seconds % 3600) / 60
	s := seconds % 60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%d:%02d", m, s)
}

func atoiOrZero(s string) int {
	if s == "" {
		return 0
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}
