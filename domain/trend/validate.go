package trend

import "math"

// ValidateObservations checks the raw boundary input and returns the group
// count k. Labels must be finite whole numbers whose distinct values form
// exactly the consecutive set 1..k; observation values must be finite.
func ValidateObservations(obs []Observation) (int, error) {
	if len(obs) == 0 {
		return 0, NewGroupGapError(1, 1)
	}

	maxLabel := 0
	for i, ob := range obs {
		if math.IsNaN(ob.Value) || math.IsInf(ob.Value, 0) {
			return 0, NewValueError(i, ob.Value)
		}
		if math.IsNaN(ob.Group) || math.IsInf(ob.Group, 0) || ob.Group != math.Trunc(ob.Group) {
			return 0, NewLabelError(i, ob.Group)
		}
		label := int(ob.Group)
		if label < 1 {
			return 0, NewLabelError(i, ob.Group)
		}
		if label > maxLabel {
			maxLabel = label
		}
	}

	// k is derived from the distinct labels, so every label in 1..max must
	// occur at least once.
	present := make([]bool, maxLabel)
	for _, ob := range obs {
		present[int(ob.Group)-1] = true
	}
	for label, ok := range present {
		if !ok {
			return 0, NewGroupGapError(label+1, maxLabel)
		}
	}

	return maxLabel, nil
}
