// Package clock implements the time arithmetic behind timein: hour rounding,
// timezone offset differences, and evenly spaced hour windows.
package clock

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// Rounding selects how an instant is normalized to an hour boundary.
type Rounding int

const (
	// RoundDown truncates to the start of the current hour.
	RoundDown Rounding = iota
	// RoundUp advances to the start of the next hour, unless the instant
	// is already exactly on the hour.
	RoundUp
	// RoundNearest rounds to the closer hour boundary; ties resolve up.
	RoundNearest
)

// String returns the flag spelling of the rounding mode.
func (r Rounding) String() string {
	switch r {
	case RoundDown:
		return "down"
	case RoundUp:
		return "up"
	case RoundNearest:
		return "nearest"
	default:
		return fmt.Sprintf("Rounding(%d)", int(r))
	}
}

// ParseRounding converts a flag value into a Rounding mode.
func ParseRounding(s string) (Rounding, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "down":
		return RoundDown, nil
	case "up":
		return RoundUp, nil
	case "nearest":
		return RoundNearest, nil
	default:
		return RoundDown, fmt.Errorf("invalid rounding mode %q (want up, down, or nearest)", s)
	}
}

// Round normalizes t to an hour boundary in t's own location, per the mode.
// The wall-clock minute, second, and nanosecond of the result are zero.
// Stepping up is done in absolute time, so a boundary that lands inside a
// DST gap resolves to the real instant the clock shows next.
func Round(t time.Time, mode Rounding) time.Time {
	y, m, d := t.Date()
	floor := time.Date(y, m, d, t.Hour(), 0, 0, 0, t.Location())

	switch mode {
	case RoundUp:
		if t.Equal(floor) {
			return floor
		}
		return floor.Add(time.Hour)
	case RoundNearest:
		if t.Minute() >= 30 {
			return floor.Add(time.Hour)
		}
		return floor
	default:
		return floor
	}
}

// OffsetHours reports the difference between target's UTC offset and ref's
// UTC offset at the instant t, in hours. Fractional results are real: India
// against UTC is 5.5. The offset is derived fresh from t, so callers looping
// over a window see DST transitions reflected per instant.
func OffsetHours(t time.Time, ref, target *time.Location) float64 {
	_, refOffset := t.In(ref).Zone()
	_, targetOffset := t.In(target).Zone()
	return float64(targetOffset-refOffset) / 3600.0
}

// FormatOffset renders an hour offset the way rows annotate it: integers
// bare ("+5", "-8", "+0"), one decimal place when that is exact ("+5.5"),
// two otherwise ("+5.75").
func FormatOffset(hours float64) string {
	sign := "+"
	if hours < 0 {
		sign = "-"
	}

	abs := math.Abs(hours)
	switch {
	case abs == math.Trunc(abs):
		return fmt.Sprintf("%s%d", sign, int(abs))
	case abs*10 == math.Trunc(abs*10):
		return fmt.Sprintf("%s%.1f", sign, abs)
	default:
		return fmt.Sprintf("%s%.2f", sign, abs)
	}
}

// Window returns the start instant followed by steps more instants, each
// exactly one absolute hour after the previous. Columns stay evenly spaced
// in real time across DST jumps; converting an instant into a location is
// the caller's concern.
func Window(start time.Time, steps int) []time.Time {
	if steps < 0 {
		steps = 0
	}
	instants := make([]time.Time, steps+1)
	for i := range instants {
		instants[i] = start.Add(time.Duration(i) * time.Hour)
	}
	return instants
}
