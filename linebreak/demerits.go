package linebreak

import "math"

// Demerits combines badness, the penalty cost of the break itself, and
// the three TeX-style quality adjustments (double-hyphen, fitness
// mismatch, final-hyphen) into a single scalar cost for a candidate
// line ending at a break with the given penalty cost.
//
// This follows the TeX-faithful treatment: fitness-class mismatch adds a
// flat AdjacentLooseTightDemerits rather than a multiplied penalty (see
// the Open Questions in SPEC_FULL.md and DESIGN.md).
func (o Options) Demerits(r float64, penaltyCost float64, prevFit, currFit Fitness,
	prevFlagged, currFlagged, isLastLine bool) float64 {
	//
	lp := o.LinePenalty + Badness(r)
	base := lp * lp
	var d float64
	switch {
	case math.IsInf(penaltyCost, -1):
		d = base // forced break contributes no penalty term of its own
	case penaltyCost >= 0:
		d = base + penaltyCost*penaltyCost
	default:
		d = base - penaltyCost*penaltyCost // negative penalties reduce demerits
	}
	if prevFlagged && currFlagged {
		d += o.DoubleHyphenDemerits
	}
	if fitnessDiff(prevFit, currFit) > 1 {
		d += o.AdjacentLooseTightDemerits
	}
	if isLastLine && prevFlagged {
		d += o.FinalHyphenDemerits
	}
	return d
}

func fitnessDiff(a, b Fitness) int {
	d := int(a) - int(b)
	if d < 0 {
		return -d
	}
	return d
}
