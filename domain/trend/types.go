package trend

import "fmt"

// Observation is a single measured value tagged with its raw group label.
// Labels travel as floats so validation can reject non-whole values coming
// from parsed files instead of silently truncating them.
type Observation struct {
	Value float64 `json:"value"`
	Group float64 `json:"group"`
}

// Tail identifies which tail of the null distribution a p-value reports.
type Tail string

// TailRight is the only tail the trend statistic reports: the z score is
// folded to its magnitude before the upper-tail probability is taken.
const TailRight Tail = "right"

// PairResult holds the directional U statistic for one ordered group pair.
// Label is "I-J" using 1-based positions in the applied ordering, not the
// original group labels.
type PairResult struct {
	Label string  `json:"label"`
	Nx    int     `json:"nx"`
	Ny    int     `json:"ny"`
	Uxy   float64 `json:"uxy"`
}

// PairLabel formats the positional comparison label for positions i < j.
func PairLabel(i, j int) string {
	return fmt.Sprintf("%d-%d", i, j)
}

// TestResult is the complete outcome of a Jonckheere-Terpstra run. It is
// the sole artifact the computation produces: either every field is
// populated or the run failed with an error.
type TestResult struct {
	Pairs  []PairResult `json:"pairs"`
	UxySum float64      `json:"uxy_sum"`
	JT     float64      `json:"jt"`
	PValue float64      `json:"pvalue"`
	Tail   Tail         `json:"tail"`
}

// KruskalResult is the omnibus companion: the tie-corrected Kruskal-Wallis
// H statistic over the same partition, with a chi-squared upper-tail
// p-value on k-1 degrees of freedom.
type KruskalResult struct {
	H             float64 `json:"h"`
	DF            int     `json:"df"`
	PValue        float64 `json:"pvalue"`
	TieCorrection float64 `json:"tie_correction"`
}

// GroupSummary describes one positional group's sample.
type GroupSummary struct {
	Position int     `json:"position"`
	Label    int     `json:"label"`
	N        int     `json:"n"`
	Mean     float64 `json:"mean"`
	Median   float64 `json:"median"`
	StdDev   float64 `json:"std_dev"`
	Min      float64 `json:"min"`
	Max      float64 `json:"max"`
}
