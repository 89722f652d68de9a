package knuthplass

import "github.com/npillmayer/knuthplass/linebreak"

// breakNode is one accepted candidate break position in the search. Nodes
// are append-only: once created they are never mutated, only referenced
// by the best-per-(position,fitness) table and by active-list entries.
type breakNode struct {
	position int             // knot index this break sits at
	demerits float64         // total accumulated demerits from paragraph start
	ratio    float64         // search-time adjustment ratio of the line ending here
	prev     int             // index of predecessor node in the nodes arena, -1 for the root
	fitness  linebreak.Fitness
	flagged  bool // was the knot at position-1 a flagged penalty?
}

const rootNode = 0 // nodes[0] is always the paragraph-start sentinel
