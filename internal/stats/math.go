package stats

// Summary condenses an integer sample set into the figures the reports show.
type Summary struct {
	Samples int     `json:"samples"`
	Mean    float64 `json:"mean"`
	Min     int     `json:"min"`
	Max     int     `json:"max"`
}

// Mean returns the arithmetic mean of a slice of integers.
func Mean(values []int) float64 {
	if len(values) == 0 {
		return 0
	}

	total := 0
	for _, v := range values {
		total += v
	}
	return float64(total) / float64(len(values))
}

// MinMax returns the smallest and largest values in a slice of integers.
func MinMax(values []int) (int, int) {
	if len(values) == 0 {
		return 0, 0
	}

	lo, hi := values[0], values[0]
	for _, v := range values[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	return lo, hi
}

// Summarize computes the sample count, mean and range in one pass.
func Summarize(values []int) Summary {
	lo, hi := MinMax(values)
	return Summary{
		Samples: len(values),
		Mean:    Mean(values),
		Min:     lo,
		Max:     hi,
	}
}
