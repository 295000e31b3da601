package fundlens

import "math"

// sizePenalties is the holding-count penalty policy: each threshold crossed
// by the working-set size costs its penalty, independently.
var sizePenalties = []struct {
	threshold int
	penalty   float64
}{
	{20, 10},
	{40, 10},
}

// Health label boundaries, closed on the upper side: a score of exactly 80
// is Excellent, exactly 60 is Good.
const (
	labelCritical  = "Critical"
	labelPoor      = "Poor"
	labelGood      = "Good"
	labelExcellent = "Excellent"
)

// healthScore computes the composite portfolio health score from working-set
// counts. The score starts at 100, loses up to 20 points for clutter (2 per
// item), up to 15 for loss-makers (1.5 per item, fractional before rounding),
// and a flat 10 for each size threshold crossed. The result is clamped to
// [0, 100] and rounded to the nearest integer.
func healthScore(clutterCount, lossMakerCount, workingSetSize int) (int, string) {
	score := 100.0
	score -= math.Min(20, float64(clutterCount)*2)
	score -= math.Min(15, float64(lossMakerCount)*1.5)
	for _, p := range sizePenalties {
		if workingSetSize > p.threshold {
			score -= p.penalty
		}
	}

	score = math.Max(0, math.Min(100, score))
	rounded := int(math.Round(score))
	return rounded, healthLabel(rounded)
}

func healthLabel(score int) string {
	switch {
	case score < 40:
		return labelCritical
	case score < 60:
		return labelPoor
	case score < 80:
		return labelGood
	default:
		return labelExcellent
	}
}
