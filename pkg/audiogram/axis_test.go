package audiogram

import (
	"errors"
	"math"
	"testing"
)

const epsilon = 1e-9

func TestDBToY(t *testing.T) {
	axis := NewDefaultAxis()

	tests := []struct {
		db       float64
		expected float64
	}{
		{db: -10, expected: 60},
		{db: 0, expected: 100},
		{db: 20, expected: 180},
		{db: 120, expected: 580},
	}

	for _, tt := range tests {
		if got := axis.DBToY(tt.db); math.Abs(got-tt.expected) > epsilon {
			t.Errorf("DBToY(%v) = %v, expected %v", tt.db, got, tt.expected)
		}
	}
}

func TestDBToYIsAffine(t *testing.T) {
	axis := NewDefaultAxis()

	prev := axis.DBToY(MinDB)
	for db := MinDB + 1; db <= MaxDB; db++ {
		y := axis.DBToY(float64(db))
		if y <= prev {
			t.Fatalf("DBToY not strictly increasing at %d dB: %v <= %v", db, y, prev)
		}
		prev = y
	}

	for _, pair := range [][2]float64{{0, 10}, {-10, 120}, {35, 40}, {5, 5}} {
		d1, d2 := pair[0], pair[1]
		delta := axis.DBToY(d2) - axis.DBToY(d1)
		if math.Abs(delta-(d2-d1)*axis.DBScale) > epsilon {
			t.Errorf("DBToY(%v)-DBToY(%v) = %v, expected %v", d2, d1, delta, (d2-d1)*axis.DBScale)
		}
	}
}

func TestPositions(t *testing.T) {
	axis := NewDefaultAxis()
	positions := axis.Positions()

	if len(positions) != len(AllFrequencies) {
		t.Fatalf("expected %d positions, got %d", len(AllFrequencies), len(positions))
	}
	if positions[0] != 0 {
		t.Errorf("first position should be 0, got %v", positions[0])
	}
	if positions[len(positions)-1] != axis.Width {
		t.Errorf("last position should be %v, got %v", axis.Width, positions[len(positions)-1])
	}

	step := axis.Width / float64(len(AllFrequencies)-1)
	for i := 1; i < len(positions); i++ {
		if math.Abs(positions[i]-positions[i-1]-step) > 1e-6 {
			t.Errorf("positions %d and %d are not evenly spaced", i-1, i)
		}
	}
}

func TestFreqToX(t *testing.T) {
	axis := NewDefaultAxis()

	tests := []struct {
		name     string
		freq     float64
		ear      Ear
		expected float64
	}{
		{name: "first frequency", freq: 125, ear: EarRight, expected: 100},
		{name: "last frequency", freq: 8000, ear: EarRight, expected: 620},
		{name: "1000 Hz is the seventh slot", freq: 1000, ear: EarRight, expected: 100 + 6*520.0/12},
		{name: "half octave", freq: 187.5, ear: EarRight, expected: 100 + 520.0/12},
		{name: "left ear shifted", freq: 125, ear: EarLeft, expected: 100 + axis.EarSpacing},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := axis.FreqToX(tt.freq, tt.ear)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if math.Abs(got-tt.expected) > 1e-6 {
				t.Errorf("expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestFreqToXMonotonic(t *testing.T) {
	axis := NewDefaultAxis()

	for _, ear := range []Ear{EarRight, EarLeft} {
		prev := math.Inf(-1)
		for _, freq := range AllFrequencies {
			x, err := axis.FreqToX(freq, ear)
			if err != nil {
				t.Fatalf("unexpected error for %v Hz: %v", freq, err)
			}
			if x < prev {
				t.Errorf("%s ear: x(%v Hz) = %v is lower than previous %v", ear, freq, x, prev)
			}
			prev = x
		}
	}
}

func TestFreqToXUnknownFrequency(t *testing.T) {
	axis := NewDefaultAxis()

	for _, freq := range []float64{0, 100, 1250, 10000} {
		_, err := axis.FreqToX(freq, EarRight)
		if !errors.Is(err, ErrUnknownFrequency) {
			t.Errorf("FreqToX(%v) error = %v, expected ErrUnknownFrequency", freq, err)
		}
	}
}

func TestDefaultThresholdsAreOnAxis(t *testing.T) {
	thresholds := DefaultThresholds()
	if len(thresholds) != 11 {
		t.Fatalf("expected 11 thresholds, got %d", len(thresholds))
	}
	for _, th := range thresholds {
		if indexOfFrequency(th.Frequency) < 0 {
			t.Errorf("threshold frequency %v is not in AllFrequencies", th.Frequency)
		}
	}
	for _, freq := range append(append([]float64{}, GridFrequencies...), DashedGridFrequencies...) {
		if indexOfFrequency(freq) < 0 {
			t.Errorf("grid frequency %v is not in AllFrequencies", freq)
		}
	}
}
