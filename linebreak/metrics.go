package linebreak

import (
	"math"

	"github.com/npillmayer/knuthplass/core/dimen"
	"github.com/npillmayer/knuthplass/khipu"
)

// Metrics holds the adjusted (width, stretch, shrink) triple for a
// candidate line [i, j), after excluding trailing discardable glue and
// folding in a trailing penalty's width if the break is taken there.
type Metrics struct {
	W, Stretch, Shrink dimen.Dimen
}

// LineMetrics computes the adjusted width/stretch/shrink triple for the
// knot range [i, j), given its precomputed cumulative sums.
func LineMetrics(sums *khipu.Sums, knots []khipu.Knot, i, j int) Metrics {
	w, st, sh := sums.Range(i, j)
	var trailing khipu.Knot
	if j > 0 && j <= len(knots) {
		trailing = knots[j-1]
	}
	return AdjustForBreak(w, st, sh, trailing)
}

// AdjustForBreak applies the same trailing-knot special case LineMetrics
// does to a raw (width, stretch, shrink) triple gathered by some other
// means — e.g. the active list's incremental accumulator — given the
// knot the candidate break would actually be taken at: trailing glue is
// excluded (it is discarded at a break), while a trailing penalty
// contributes its Width (e.g. a hyphen glyph), because the break is
// being taken there.
func AdjustForBreak(w, st, sh dimen.Dimen, breakKnot khipu.Knot) Metrics {
	switch k := breakKnot.(type) {
	case khipu.Glue:
		w -= k.W()
		st -= k.Stretch()
		sh -= k.Shrink()
	case khipu.Penalty:
		w += k.Width
	}
	return Metrics{W: w, Stretch: st, Shrink: sh}
}

// AdjustmentRatio computes the search-time adjustment ratio for a line of
// the given metrics against a target line width. rightSkipStretch is the
// stretch of the options' RightSkip glue (conventionally appended at the
// end of every line, e.g. by DefaultMonospace to give single-word lines a
// finite ratio) and is added to the line's own stretch before dividing;
// it plays no part on the shrink side. The second return value reports
// whether the line is feasible at all (false means "overfull with no
// shrink available" — the line cannot be described by a finite ratio).
//
// A small epsilon, scaled to lineWidth, is used near the r==0 and r==-1
// boundaries to absorb floating-point accumulation error from the
// cumulative-sum machinery.
func AdjustmentRatio(m Metrics, lineWidth, rightSkipStretch dimen.Dimen) (r float64, feasible bool) {
	eps := dimen.Dimen(1e-5) * lineWidth
	if eps < dimen.Epsilon {
		eps = dimen.Epsilon
	}
	diff := lineWidth - m.W
	if dimen.Abs(diff) < eps {
		return 0, true
	}
	if diff > 0 {
		stretch := m.Stretch + rightSkipStretch
		if stretch > 0 {
			return float64(diff) / float64(stretch), true
		}
		return math.Inf(1), true // no elasticity: maximal badness, but not "infeasible"
	}
	if m.Shrink > 0 {
		r = float64(diff) / float64(m.Shrink)
		if -diff-m.Shrink > eps {
			return r, false // overfull beyond what shrink can cover
		}
		return r, true
	}
	return math.Inf(-1), false // no shrink at all: unconditionally overfull
}

// Badness computes TeX's badness function: min(10000, 100*|r|^3). An
// infinite ratio maps directly to MaxBadness.
func Badness(r float64) float64 {
	if math.IsInf(r, 0) {
		return MaxBadness
	}
	ar := math.Abs(r)
	b := 100 * ar * ar * ar
	if b > MaxBadness {
		return MaxBadness
	}
	return b
}
