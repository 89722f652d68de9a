package knuthplass

import (
	"github.com/npillmayer/knuthplass/core/dimen"
	"github.com/npillmayer/knuthplass/khipu"
	"github.com/npillmayer/knuthplass/linebreak"
)

// backtrack walks the prev-chain from the optimal terminal node back to
// the paragraph start, then reverses it into an ordered line sequence,
// recomputing each line's displayed (as opposed to search-time) ratio.
func (s *searcher) backtrack(endIdx int) []linebreak.Line {
	if endIdx == -1 {
		return nil
	}
	var rev []linebreak.Line
	for idx := endIdx; s.nodes[idx].prev != -1; idx = s.nodes[idx].prev {
		node := s.nodes[idx]
		prev := s.nodes[node.prev]
		rev = append(rev, linebreak.Line{
			Start:           prev.position,
			End:             node.position,
			AdjustmentRatio: displayedRatio(s.sums, s.knots, prev.position, node.position,
				s.opts.LineWidth, s.opts.RightSkip.Stretch()),
		})
	}
	lines := make([]linebreak.Line, len(rev))
	for i, l := range rev {
		lines[len(rev)-1-i] = l
	}
	return lines
}

// displayedRatio recomputes the adjustment ratio for the final line range
// excluding leading discardable items (glue/penalties at the very start
// of the line), and clamps overfull results to -1 as specified.
func displayedRatio(sums *khipu.Sums, knots []khipu.Knot, i, j int, lineWidth, rightSkipStretch dimen.Dimen) float64 {
	start := i
	for start < j {
		if _, ok := knots[start].(khipu.Box); ok {
			break
		}
		start++
	}
	m := linebreak.LineMetrics(sums, knots, start, j)
	r, feasible := linebreak.AdjustmentRatio(m, lineWidth, rightSkipStretch)
	if !feasible || r < -1 {
		return -1
	}
	return r
}
