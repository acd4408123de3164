package editor

import "math"

// ReconcileTimings aligns a timing array with the detected line count.
// New trailing lines inherit the last known timing instead of zero so that an
// author who already timed earlier lines keeps a sensible starting value;
// removed lines drop their trailing timings. The result always has exactly
// targetLength entries (empty when targetLength <= 0).
func ReconcileTimings(existing []float64, targetLength int) []float64 {
	if targetLength <= 0 {
		return []float64{}
	}
	if len(existing) == targetLength {
		return existing
	}
	if len(existing) > targetLength {
		return existing[:targetLength]
	}

	result := make([]float64, targetLength)
	copy(result, existing)
	last := 0.0
	if len(existing) > 0 {
		last = existing[len(existing)-1]
	}
	for i := len(existing); i < targetLength; i++ {
		result[i] = last
	}
	return result
}

// ClampTiming normalises a user-entered timing value: negative or non-finite
// input becomes 0.
func ClampTiming(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}
