package knuthplass

import "github.com/npillmayer/knuthplass/core/dimen"

// triple is a (width, stretch, shrink) accumulator, the unit the active
// list tracks incrementally as the sweep advances.
type triple struct {
	W, St, Sh dimen.Dimen
}

func (t triple) add(o triple) triple {
	return triple{t.W + o.W, t.St + o.St, t.Sh + o.Sh}
}

func (t triple) sub(o triple) triple {
	return triple{t.W - o.W, t.St - o.St, t.Sh - o.Sh}
}

// activeEntry is one slot in the active-list arena: a candidate
// predecessor break node plus a snapshot of the cumulative width at the
// moment it was inserted. The "delta" of the design notes is the
// difference between the list's current cumulative total and this
// snapshot — computed lazily on demand rather than materialized as a
// standalone entry between neighbours, which avoids the merge-on-removal
// bookkeeping a literal interleaved-delta list would need while keeping
// the same O(1) incremental-update and O(1) per-candidate-width
// properties.
type activeEntry struct {
	nodeIdx   int
	insertion triple
	alive     bool
}

// activeList is a doubly-linked list of activeEntry values, backed by a
// slice arena addressed by index rather than by pointer — substituting
// indices for the pointer graph a naive port of the algorithm would use.
// Removed slots are recycled via a free list so the arena does not grow
// unboundedly across a long sweep.
type activeList struct {
	entries    []activeEntry
	next, prev []int
	head, tail int
	free       []int
	cumulative triple
}

func newActiveList() *activeList {
	return &activeList{head: -1, tail: -1}
}

// advance folds a knot's width contribution into the running cumulative
// total. Called once per sweep position, before any candidates at that
// position are evaluated.
func (a *activeList) advance(contribution triple) {
	a.cumulative = a.cumulative.add(contribution)
}

// appendNode inserts a new active candidate referencing nodeIdx, snapshot
// taken at the list's current cumulative width, and returns its entry index.
func (a *activeList) appendNode(nodeIdx int) int {
	e := activeEntry{nodeIdx: nodeIdx, insertion: a.cumulative, alive: true}
	var idx int
	if n := len(a.free); n > 0 {
		idx = a.free[n-1]
		a.free = a.free[:n-1]
		a.entries[idx] = e
	} else {
		idx = len(a.entries)
		a.entries = append(a.entries, e)
		a.next = append(a.next, -1)
		a.prev = append(a.prev, -1)
	}
	a.next[idx] = -1
	a.prev[idx] = a.tail
	if a.tail != -1 {
		a.next[a.tail] = idx
	} else {
		a.head = idx
	}
	a.tail = idx
	return idx
}

// removeEntry detaches an entry from the list and recycles its slot.
func (a *activeList) removeEntry(idx int) {
	if !a.entries[idx].alive {
		return
	}
	p, n := a.prev[idx], a.next[idx]
	if p != -1 {
		a.next[p] = n
	} else {
		a.head = n
	}
	if n != -1 {
		a.prev[n] = p
	} else {
		a.tail = p
	}
	a.entries[idx].alive = false
	a.free = append(a.free, idx)
}

// clear detaches every active entry and resets the cumulative width to
// zero. Used when a forced break makes every older candidate obsolete.
func (a *activeList) clear() {
	a.entries = a.entries[:0]
	a.next = a.next[:0]
	a.prev = a.prev[:0]
	a.free = a.free[:0]
	a.head, a.tail = -1, -1
	a.cumulative = triple{}
}

// widthSince returns the width/stretch/shrink triple contributed between
// an entry's insertion point and the list's current sweep position.
func (a *activeList) widthSince(idx int) triple {
	return a.cumulative.sub(a.entries[idx].insertion)
}

// isEmpty reports whether the list currently holds any active entries.
func (a *activeList) isEmpty() bool {
	return a.head == -1
}

// forEach walks live entries in insertion order.
func (a *activeList) forEach(fn func(entryIdx, nodeIdx int)) {
	for i := a.head; i != -1; i = a.next[i] {
		fn(i, a.entries[i].nodeIdx)
	}
}
