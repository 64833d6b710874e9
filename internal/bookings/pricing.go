package bookings

import "math"

// RateWindow is a priced window inside a single day, expressed in
// minutes since midnight with a half-open [start, end) range.
type RateWindow struct {
	StartMinute  int
	EndMinute    int
	PricePerHour float64
}

// Quote prices the [startMinute, endMinute) window.
//
// Without rate windows the whole duration is billed at the base rate.
// With rate windows, each window bills its overlap with the requested
// range and uncovered minutes are free. When no window overlaps at all
// the base rate applies to the full duration. Every intermediate hour
// figure and the final amount are rounded to two decimals, half up.
func Quote(basePerHour float64, startMinute, endMinute int, windows []RateWindow) float64 {
	if endMinute <= startMinute {
		return 0
	}

	baseAmount := func() float64 {
		hours := round2(float64(endMinute-startMinute) / 60.0)
		return round2(basePerHour * hours)
	}

	if len(windows) == 0 {
		return baseAmount()
	}

	total := 0.0
	for _, w := range windows {
		overlapStart := max(startMinute, w.StartMinute)
		overlapEnd := min(endMinute, w.EndMinute)
		if overlapEnd <= overlapStart {
			continue
		}
		hours := round2(float64(overlapEnd-overlapStart) / 60.0)
		total += w.PricePerHour * hours
	}

	// A zero total means the windows produced no charge, whether none
	// overlapped or every overlapping window was priced at zero. Both
	// cases bill the base rate.
	if total == 0 {
		return baseAmount()
	}
	return round2(total)
}

// round2 rounds to two decimal places, ties away from zero.
func round2(v float64) float64 {
	return math.Floor(v*100+0.5) / 100
}
