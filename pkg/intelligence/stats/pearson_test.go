package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMean(t *testing.T) {
	assert.Equal(t, 0.0, Mean(nil))
	assert.Equal(t, 0.0, Mean([]float64{}))
	assert.Equal(t, 2.0, Mean([]float64{1, 2, 3}))
	assert.Equal(t, -1.5, Mean([]float64{-1, -2}))
}

func TestPearson_PerfectCorrelation(t *testing.T) {
	x := []float64{10, 10, 10, 90, 90, 90}
	y := []float64{1, 1, 1, 9, 9, 9}

	r := Pearson(x, y)
	assert.InDelta(t, 1.0, r, 1e-9)
}

func TestPearson_PerfectAntiCorrelation(t *testing.T) {
	x := []float64{1, 2, 3, 4, 5}
	y := []float64{10, 8, 6, 4, 2}

	r := Pearson(x, y)
	assert.InDelta(t, -1.0, r, 1e-9)
}

func TestPearson_NoRelationship(t *testing.T) {
	// Symmetric pattern: covariance cancels exactly
	x := []float64{1, 2, 3, 4}
	y := []float64{1, 2, 2, 1}

	r := Pearson(x, y)
	assert.InDelta(t, 0.0, r, 1e-9)
}

func TestPearson_Degenerate(t *testing.T) {
	tests := []struct {
		name string
		x    []float64
		y    []float64
	}{
		{name: "empty", x: nil, y: nil},
		{name: "single point", x: []float64{1}, y: []float64{2}},
		{name: "mismatched lengths", x: []float64{1, 2, 3}, y: []float64{1, 2}},
		{name: "zero variance x", x: []float64{5, 5, 5}, y: []float64{1, 2, 3}},
		{name: "zero variance y", x: []float64{1, 2, 3}, y: []float64{4, 4, 4}},
		{name: "zero variance both", x: []float64{7, 7}, y: []float64{3, 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, 0.0, Pearson(tt.x, tt.y))
		})
	}
}

func TestPearson_BoundedOutput(t *testing.T) {
	// A nearly collinear pairing must never leave [-1, 1]
	x := []float64{1e15, 2e15, 3e15, 4e15}
	y := []float64{1e15, 2e15, 3e15, 4.0000001e15}

	r := Pearson(x, y)
	assert.LessOrEqual(t, r, 1.0)
	assert.GreaterOrEqual(t, r, -1.0)
}
