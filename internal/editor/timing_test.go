package editor

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReconcileTimings(t *testing.T) {
	tests := []struct {
		name     string
		existing []float64
		target   int
		want     []float64
	}{
		{"zero target drops all", []float64{1, 2}, 0, []float64{}},
		{"negative target drops all", []float64{1}, -3, []float64{}},
		{"empty existing zero fills", nil, 2, []float64{0, 0}},
		{"pads with last value", []float64{2.5}, 3, []float64{2.5, 2.5, 2.5}},
		{"truncates when lines removed", []float64{1, 2, 3}, 1, []float64{1}},
		{"equal length unchanged", []float64{1, 2}, 2, []float64{1, 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ReconcileTimings(tt.existing, tt.target))
		})
	}
}

func TestReconcileTimingsLengthInvariant(t *testing.T) {
	existing := [][]float64{nil, {}, {1}, {0.5, 3, 9.25}, {1, 1, 1, 1, 1, 1}}
	for _, e := range existing {
		for target := 0; target <= 8; target++ {
			assert.Len(t, ReconcileTimings(e, target), target)
		}
	}
}

func TestClampTiming(t *testing.T) {
	assert.Equal(t, 0.0, ClampTiming(-1))
	assert.Equal(t, 0.0, ClampTiming(math.NaN()))
	assert.Equal(t, 0.0, ClampTiming(math.Inf(1)))
	assert.Equal(t, 0.0, ClampTiming(math.Inf(-1)))
	assert.Equal(t, 4.5, ClampTiming(4.5))
	assert.Equal(t, 0.0, ClampTiming(0))
}
