package audiogram

// Threshold is one measured point of an audiogram: the hearing level in dB HL
// at a frequency taken from AllFrequencies.
type Threshold struct {
	Frequency float64
	DB        int
}

// DefaultThresholds returns the hardcoded audiogram of a single ear.
func DefaultThresholds() []Threshold {
	return []Threshold{
		{Frequency: 125, DB: 20},
		{Frequency: 250, DB: 15},
		{Frequency: 500, DB: 10},
		{Frequency: 750, DB: 20},
		{Frequency: 1000, DB: 30},
		{Frequency: 1500, DB: 40},
		{Frequency: 2000, DB: 35},
		{Frequency: 3000, DB: 30},
		{Frequency: 4000, DB: 25},
		{Frequency: 6000, DB: 25},
		{Frequency: 8000, DB: 30},
	}
}
