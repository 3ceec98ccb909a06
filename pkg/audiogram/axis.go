package audiogram

import (
	"errors"
	"fmt"
)

var ErrUnknownFrequency = errors.New("frequency is not on the audiogram axis")

const (
	MinDB  = -10
	MaxDB  = 120
	StepDB = 10
)

// Axis maps frequencies and hearing levels to SVG pixel coordinates.
type Axis struct {
	// Width in px covered by the frequency table
	Width float64
	// X of the first frequency for the right ear
	OriginX float64
	// y = dB * DBScale + DBOffset
	DBScale  float64
	DBOffset float64
	// Horizontal shift applied to the left ear panel
	EarSpacing float64
}

func NewDefaultAxis() Axis {
	return Axis{
		Width:      520,
		OriginX:    100,
		DBScale:    4,
		DBOffset:   100,
		EarSpacing: 650,
	}
}

// Positions returns the evenly spaced x positions (relative to OriginX) of AllFrequencies.
func (a Axis) Positions() []float64 {
	n := len(AllFrequencies)
	positions := make([]float64, n)
	if n == 1 {
		return positions
	}

	step := a.Width / float64(n-1)
	for i := range positions {
		positions[i] = float64(i) * step
	}
	// avoid accumulated rounding on the last slot
	positions[n-1] = a.Width
	return positions
}

func (a Axis) earOffset(ear Ear) float64 {
	if ear == EarLeft {
		return a.EarSpacing
	}
	return 0
}

func (a Axis) FreqToX(freq float64, ear Ear) (float64, error) {
	i := indexOfFrequency(freq)
	if i < 0 {
		return 0, fmt.Errorf("%w: %v Hz", ErrUnknownFrequency, freq)
	}
	return a.Positions()[i] + a.OriginX + a.earOffset(ear), nil
}

// Higher hearing levels are drawn lower on the chart.
func (a Axis) DBToY(db float64) float64 {
	return db*a.DBScale + a.DBOffset
}

// Bounds returns the pixel box covered by the grid of an ear: from the first
// to the last frequency and from MinDB to MaxDB.
func (a Axis) Bounds(ear Ear) (startX, endX, startY, endY float64) {
	startX = a.OriginX + a.earOffset(ear)
	endX = startX + a.Width
	startY = a.DBToY(MinDB)
	endY = a.DBToY(MaxDB)
	return
}
