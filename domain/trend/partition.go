package trend

// Partition holds a validated dataset split into positional groups.
// Groups[p] contains the observations of the group occupying position p+1
// under the applied ordering, in their original input order. Group data is
// read-only once partitioned.
type Partition struct {
	Groups   [][]float64
	Labels   []int
	Ordering Ordering
}

// NewPartition validates the observations and the ordering, then buckets
// values by group label and arranges the buckets in ordering position.
// A nil ordering means identity.
func NewPartition(obs []Observation, ord Ordering) (*Partition, error) {
	k, err := ValidateObservations(obs)
	if err != nil {
		return nil, err
	}

	if ord == nil {
		ord = DefaultOrdering(k)
	}
	if err := ord.Validate(k); err != nil {
		return nil, err
	}

	sizes := make([]int, k)
	for _, ob := range obs {
		sizes[int(ob.Group)-1]++
	}
	buckets := make([][]float64, k)
	for label := range buckets {
		buckets[label] = make([]float64, 0, sizes[label])
	}
	for _, ob := range obs {
		label := int(ob.Group) - 1
		buckets[label] = append(buckets[label], ob.Value)
	}

	groups := make([][]float64, k)
	labels := make([]int, k)
	for p, label := range ord {
		groups[p] = buckets[label-1]
		labels[p] = label
	}

	return &Partition{Groups: groups, Labels: labels, Ordering: ord}, nil
}

// K returns the number of groups.
func (p *Partition) K() int {
	return len(p.Groups)
}

// N returns the total observation count.
func (p *Partition) N() int {
	n := 0
	for _, g := range p.Groups {
		n += len(g)
	}
	return n
}

// Sizes returns the per-position group sizes.
func (p *Partition) Sizes() []int {
	sizes := make([]int, len(p.Groups))
	for i, g := range p.Groups {
		sizes[i] = len(g)
	}
	return sizes
}

// PairCount returns the number of position pairs I < J.
func (p *Partition) PairCount() int {
	k := len(p.Groups)
	return k * (k - 1) / 2
}
