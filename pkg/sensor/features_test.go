package sensor

import (
	"math"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestExtractVectorSize(t *testing.T) {
	w := Window{
		Accelerometer: Axes{
			X: []float64{1, 2, 3},
			Y: []float64{4, 5, 6},
			Z: []float64{7, 8, 9},
		},
		DurationSeconds: 60,
	}

	f := Extract(w)
	if len(f.Vector) != VectorSize {
		t.Fatalf("Vector length = %d, want %d", len(f.Vector), VectorSize)
	}
}

func TestExtractAccelerometerStats(t *testing.T) {
	w := Window{
		Accelerometer: Axes{
			X: []float64{1, 2, 3, 4},
			Y: []float64{0, 0, 0, 0},
			Z: []float64{0, 0, 0, 0},
		},
	}

	f := Extract(w)

	// X axis: mean 2.5, std sqrt(1.25), max 4, min 1
	if !almostEqual(f.Vector[0], 2.5) {
		t.Errorf("X mean = %v, want 2.5", f.Vector[0])
	}
	if !almostEqual(f.Vector[1], math.Sqrt(1.25)) {
		t.Errorf("X std = %v, want %v", f.Vector[1], math.Sqrt(1.25))
	}
	if !almostEqual(f.Vector[2], 4) || !almostEqual(f.Vector[3], 1) {
		t.Errorf("X max/min = %v/%v, want 4/1", f.Vector[2], f.Vector[3])
	}
}

func TestExtractGyroscopeAbsentIsZero(t *testing.T) {
	w := Window{
		Accelerometer: Axes{
			X: []float64{1, 1},
			Y: []float64{1, 1},
			Z: []float64{1, 1},
		},
	}

	f := Extract(w)
	for i := 12; i < 24; i++ {
		if f.Vector[i] != 0 {
			t.Fatalf("gyroscope slot %d = %v, want 0", i, f.Vector[i])
		}
	}
}

func TestExtractMagnitude(t *testing.T) {
	// Constant (3,4,0) samples: magnitude 5 everywhere, std 0.
	w := Window{
		Accelerometer: Axes{
			X: []float64{3, 3, 3},
			Y: []float64{4, 4, 4},
			Z: []float64{0, 0, 0},
		},
	}

	f := Extract(w)
	if !almostEqual(f.MagnitudeMean, 5) {
		t.Errorf("MagnitudeMean = %v, want 5", f.MagnitudeMean)
	}
	if !almostEqual(f.MagnitudeStd, 0) {
		t.Errorf("MagnitudeStd = %v, want 0", f.MagnitudeStd)
	}
}

func TestExtractMagnitudeMismatchedAxes(t *testing.T) {
	w := Window{
		Accelerometer: Axes{
			X: []float64{1, 2, 3},
			Y: []float64{1, 2},
			Z: []float64{1, 2, 3},
		},
	}

	f := Extract(w)
	if f.MagnitudeMean != 0 || f.MagnitudeStd != 0 {
		t.Errorf("mismatched axes should yield zero magnitude stats, got %v/%v", f.MagnitudeMean, f.MagnitudeStd)
	}
}
