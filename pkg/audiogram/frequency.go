package audiogram

// Frequencies (Hz) that can be placed on the chart, in axis order.
// Positions along the x axis are index based, not linear in Hz.
var AllFrequencies = []float64{
	125,
	187.5,
	250,
	375,
	500,
	750,
	1000,
	1500,
	2000,
	3000,
	4000,
	6000,
	8000,
}

// Frequencies that get a solid vertical grid line and a label
var GridFrequencies = []float64{125, 250, 500, 1000, 2000, 4000, 8000}

// Inter-octave frequencies drawn as dashed vertical lines
var DashedGridFrequencies = []float64{750, 1500, 3000, 6000}

type Ear int

const (
	EarRight Ear = iota
	EarLeft
)

func (e Ear) String() string {
	switch e {
	case EarRight:
		return "right"
	case EarLeft:
		return "left"
	default:
		return "unknown"
	}
}

// Stroke color used for the threshold markers of an ear.
func (e Ear) Color() string {
	if e == EarLeft {
		return "blue"
	}
	return "red"
}

func indexOfFrequency(freq float64) int {
	for i, f := range AllFrequencies {
		if f == freq {
			return i
		}
	}
	return -1
}
