package knuthplass

import (
	"math"

	"github.com/emirpasic/gods/sets/hashset"

	"github.com/npillmayer/knuthplass/core/dimen"
	"github.com/npillmayer/knuthplass/khipu"
	"github.com/npillmayer/knuthplass/linebreak"
)

const numFitness = 4 // Tight, Normal, Loose, VeryLoose

// searcher holds all state for one dynamic-programming sweep over a
// paragraph's knots. It is constructed fresh for every call to
// BreakParagraph and discarded afterwards; there is no shared mutable
// state across calls.
type searcher struct {
	opts   linebreak.Options
	knots  []khipu.Knot
	sums   *khipu.Sums
	nodes  []breakNode
	best   []int // (position*numFitness + fitness) -> node index, -1 if unset
	active *activeList

	// deferred holds node indices that can no longer fit via any
	// remaining shrink and have been dropped from the active list, but
	// are still candidates for the final-pass rescue. membership is
	// tracked with a hashset (mirroring the teacher's own use of a
	// hashset.Set to track active-breakpoint membership) so re-deferring
	// the same node is a cheap no-op; a deferred node's metrics are
	// recomputed on replay from its position, so no separate snapshot
	// needs to be kept alongside.
	deferred *hashset.Set
}

func newSearcher(opts linebreak.Options, knots []khipu.Knot) *searcher {
	n := len(knots)
	s := &searcher{
		opts:     opts,
		knots:    knots,
		sums:     khipu.ComputeSums(knots),
		nodes:    make([]breakNode, 0, n/4+2),
		best:     make([]int, (n+1)*numFitness),
		active:   newActiveList(),
		deferred: hashset.New(),
	}
	for i := range s.best {
		s.best[i] = -1
	}
	return s
}

func (s *searcher) bestSlot(position int, f linebreak.Fitness) *int {
	return &s.best[position*numFitness+int(f)]
}

func (s *searcher) addNode(n breakNode) int {
	idx := len(s.nodes)
	s.nodes = append(s.nodes, n)
	return idx
}

// run performs the full sweep, returning the index of the optimal
// terminal node (at position len(knots)), or -1 if the paragraph is empty.
func (s *searcher) run() int {
	n := len(s.knots)
	if n == 0 {
		return -1
	}
	root := breakNode{position: 0, demerits: 0, ratio: 0, prev: -1, fitness: linebreak.Normal}
	rootIdx := s.addNode(root)
	*s.bestSlot(0, linebreak.Normal) = rootIdx
	s.active.appendNode(rootIdx)

	for i := 1; i <= n; i++ {
		s.active.advance(contributionOf(s.knots[i-1]))
		if !linebreak.IsValidBreak(s.knots, i) {
			continue
		}
		penaltyCost, currFlagged, isExplicitForced := 0.0, false, false
		if p, ok := s.knots[i-1].(khipu.Penalty); ok {
			penaltyCost = p.Cost
			currFlagged = p.Flagged
			isExplicitForced = p.IsForced()
		}
		isImplicitEnd := i == n
		isForced := isExplicitForced || isImplicitEnd
		if isImplicitEnd && !isExplicitForced {
			penaltyCost = math.Inf(-1)
		}

		s.sweepPosition(i, penaltyCost, currFlagged, isForced, isExplicitForced, isImplicitEnd)
	}

	endIdx := -1
	best := math.Inf(1)
	for f := linebreak.Fitness(0); f < numFitness; f++ {
		idx := *s.bestSlot(n, f)
		if idx == -1 {
			continue
		}
		if s.nodes[idx].demerits < best {
			best = s.nodes[idx].demerits
			endIdx = idx
		}
	}
	return endIdx
}

type candidate struct {
	prevIdx  int
	demerits float64
	ratio    float64
}

func (s *searcher) sweepPosition(i int, penaltyCost float64, currFlagged, isForced, isExplicitForced, isImplicitEnd bool) {
	var winners [numFitness]*candidate
	var toRemove []int

	var overfullBest *candidate
	var overfullAmount dimen.Dimen = -1

	rightSkipStretch := s.opts.RightSkip.Stretch()

	consider := func(prevIdx int, m linebreak.Metrics, isRescueEligible bool) {
		prevNode := s.nodes[prevIdx]
		r, feasible := linebreak.AdjustmentRatio(m, s.opts.LineWidth, rightSkipStretch)
		if feasible && (isForced || linebreak.Badness(r) <= s.opts.Tolerance) {
			fit := linebreak.ClassifyFitness(r)
			d := prevNode.demerits + s.opts.Demerits(r, penaltyCost, prevNode.fitness, fit,
				prevNode.flagged, currFlagged, isImplicitEnd)
			if winners[fit] == nil || d < winners[fit].demerits {
				winners[fit] = &candidate{prevIdx: prevIdx, demerits: d, ratio: r}
			}
			return
		}
		if !isRescueEligible {
			return
		}
		// overfull or otherwise infeasible: only usable at a forced break.
		over := m.W - s.opts.LineWidth
		if over < 0 {
			over = -over
		}
		if overfullBest == nil || over < overfullAmount ||
			(over == overfullAmount && prevNode.demerits < s.nodes[overfullBest.prevIdx].demerits) {
			fit := linebreak.Tight
			d := prevNode.demerits + s.opts.Demerits(r, penaltyCost, prevNode.fitness, fit,
				prevNode.flagged, currFlagged, isImplicitEnd)
			overfullAmount = over
			overfullRatio := r
			if math.IsInf(r, 0) {
				overfullRatio = math.Inf(-1)
			}
			overfullBest = &candidate{prevIdx: prevIdx, demerits: d, ratio: overfullRatio}
		}
	}

	// breakKnot is the knot the candidate break is actually taken at: a
	// trailing glue is discarded, a trailing penalty's width (e.g. a
	// hyphen glyph) is taken up. Every candidate considered at this sweep
	// position breaks at the same knots[i-1], so this is computed once.
	var breakKnot khipu.Knot
	if i > 0 && i <= len(s.knots) {
		breakKnot = s.knots[i-1]
	}

	s.active.forEach(func(entryIdx, nodeIdx int) {
		pos := s.nodes[nodeIdx].position
		w := s.active.widthSince(entryIdx)
		m := linebreak.AdjustForBreak(w.W, w.St, w.Sh, breakKnot)
		_, feasible := linebreak.AdjustmentRatio(m, s.opts.LineWidth, rightSkipStretch)
		consider(nodeIdx, m, isForced)
		if !feasible && !isForced {
			// suffix shrink cannot ever rescue this candidate and no
			// forced break is being processed right now: defer it.
			remaining := s.sums.Sh[len(s.knots)] - s.sums.Sh[pos]
			if m.W-s.opts.LineWidth > remaining {
				toRemove = append(toRemove, entryIdx)
				s.deferred.Add(nodeIdx)
			}
		}
	})

	if isForced {
		for _, nodeIdx := range s.deferred.Values() {
			idx := nodeIdx.(int)
			pos := s.nodes[idx].position
			m := linebreak.LineMetrics(s.sums, s.knots, pos, i)
			consider(idx, m, true)
		}
		s.deferred.Clear()
	}

	for _, e := range toRemove {
		s.active.removeEntry(e)
	}

	created := false
	for f := linebreak.Fitness(0); f < numFitness; f++ {
		w := winners[f]
		if w == nil {
			continue
		}
		slot := s.bestSlot(i, f)
		if *slot != -1 && s.nodes[*slot].demerits <= w.demerits {
			continue
		}
		node := breakNode{position: i, demerits: w.demerits, ratio: w.ratio, prev: w.prevIdx,
			fitness: f, flagged: currFlagged}
		idx := s.addNode(node)
		*slot = idx
		created = true
		if !isForced {
			s.active.appendNode(idx)
		}
	}

	if !created && overfullBest != nil {
		node := breakNode{position: i, demerits: overfullBest.demerits, ratio: overfullBest.ratio,
			prev: overfullBest.prevIdx, fitness: linebreak.Tight, flagged: currFlagged}
		idx := s.addNode(node)
		slot := s.bestSlot(i, linebreak.Tight)
		if *slot == -1 || s.nodes[*slot].demerits > node.demerits {
			*slot = idx
		}
		if !isForced {
			s.active.appendNode(idx)
		}
	}

	if isForced {
		s.active.clear()
		for f := linebreak.Fitness(0); f < numFitness; f++ {
			idx := *s.bestSlot(i, f)
			if idx != -1 {
				s.active.appendNode(idx)
			}
		}
	}
}

func contributionOf(k khipu.Knot) triple {
	switch v := k.(type) {
	case khipu.Box:
		return triple{W: v.Width}
	case khipu.Glue:
		return triple{W: v[0], St: v[1], Sh: v[2]}
	default:
		return triple{}
	}
}
