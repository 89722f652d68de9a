package khipu

import "github.com/npillmayer/knuthplass/core/dimen"

// Sums is a cumulative-sum index over a knot sequence, giving O(1) range
// queries for natural width, stretch and shrink. It mirrors the teacher's
// habit of precomputing running totals ahead of a sweep rather than
// re-walking a sub-range on every query.
type Sums struct {
	W  []dimen.Dimen // cumulative natural width
	St []dimen.Dimen // cumulative stretch
	Sh []dimen.Dimen // cumulative shrink
}

// ComputeSums builds a Sums index over knots. len(result.W) == len(knots)+1.
func ComputeSums(knots []Knot) *Sums {
	n := len(knots)
	s := &Sums{
		W:  make([]dimen.Dimen, n+1),
		St: make([]dimen.Dimen, n+1),
		Sh: make([]dimen.Dimen, n+1),
	}
	for i, k := range knots {
		w, st, sh := contribution(k)
		s.W[i+1] = s.W[i] + w
		s.St[i+1] = s.St[i] + st
		s.Sh[i+1] = s.Sh[i] + sh
	}
	return s
}

func contribution(k Knot) (w, st, sh dimen.Dimen) {
	switch v := k.(type) {
	case Box:
		return v.Width, 0, 0
	case Glue:
		return v[0], v[1], v[2]
	case Penalty:
		return 0, 0, 0
	default:
		return k.W(), 0, 0
	}
}

// Range returns the raw (width, stretch, shrink) triple for knots[i:j],
// with no line-boundary adjustments (trailing-glue exclusion or
// trailing-penalty width) applied. Callers needing the adjusted line
// metrics should use package linebreak's LineMetrics function instead.
func (s *Sums) Range(i, j int) (w, st, sh dimen.Dimen) {
	return s.W[j] - s.W[i], s.St[j] - s.St[i], s.Sh[j] - s.Sh[i]
}
