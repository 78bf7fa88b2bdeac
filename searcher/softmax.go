package searcher

import "math"

// softmax converts raw scores into a probability distribution at
// temperature 1. The max score is subtracted before exponentiating so that
// large evaluations cannot overflow float64.
func softmax(scores []float64) []float64 {
	if len(scores) == 0 {
		panic("cannot normalize an empty score list")
	}

	max := scores[0]
	for _, s := range scores[1:] {
		if s > max {
			max = s
		}
	}

	probs := make([]float64, len(scores))
	sum := 0.0
	for i, s := range scores {
		p := math.Exp(s - max)
		probs[i] = p
		sum += p
	}
	for i := range probs {
		probs[i] /= sum
	}
	return probs
}

// sample picks an index by walking the cumulative distribution until it
// reaches u. Rounding can leave the cumulative sum a hair below 1, so the
// last index is the fallback.
func sample(probs []float64, u float64) int {
	if len(probs) == 0 {
		panic("cannot sample from an empty distribution")
	}

	cumulative := 0.0
	for i, p := range probs {
		cumulative += p
		if cumulative >= u {
			return i
		}
	}
	return len(probs) - 1
}
