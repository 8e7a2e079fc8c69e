package simulation

// Percentile returns the nearest-rank value at percentile p from an
// ascending-sorted sample set. The fractional index is truncated, never
// interpolated, and clamped to the last element so p=100 stays in range.
func Percentile(sorted []int, p float64) int {
	index := int(p / 100.0 * float64(len(sorted)))
	if index >= len(sorted) {
		index = len(sorted) - 1
	}
	if index < 0 {
		index = 0
	}
	return sorted[index]
}

type percentileQuery struct {
	label string
	rank  float64
}

// The "how many" table is inverted: the P85 label answers "at least this
// much with 85% confidence", which is the 15th percentile of the completed
// totals. Higher confidence of "at least" means a lower threshold.
var howManyQueries = []percentileQuery{
	{"P5", 95},
	{"P25", 75},
	{"P50", 50},
	{"P70", 30},
	{"P85", 15},
	{"P95", 5},
	{"P99", 1},
}

// The "when" table is direct: the P85 label answers "done within this many
// days with 85% confidence", the 85th percentile of elapsed days.
var whenQueries = []percentileQuery{
	{"P25", 25},
	{"P50", 50},
	{"P70", 70},
	{"P85", 85},
	{"P95", 95},
	{"P99", 99},
}

// HowManyPercentiles builds the inverted label table over completed-work
// outcomes.
func HowManyPercentiles(sorted []int) map[string]int {
	return buildTable(sorted, howManyQueries)
}

// WhenPercentiles builds the direct label table over days-elapsed outcomes.
func WhenPercentiles(sorted []int) map[string]int {
	return buildTable(sorted, whenQueries)
}

func buildTable(sorted []int, queries []percentileQuery) map[string]int {
	table := make(map[string]int, len(queries))
	for _, q := range queries {
		table[q.label] = Percentile(sorted, q.rank)
	}
	return table
}
