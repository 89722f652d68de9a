package linebreak

import "github.com/npillmayer/knuthplass/khipu"

// IsValidBreak reports whether position i is a legal break point within
// knots. Position 0 (the very start of the paragraph) is never a break;
// position len(knots) (the end) always is. Interior positions are valid
// only at a non-forbidden penalty, or at a glue immediately preceded by a
// box (matching TeX's rule that one may not break between two adjacent
// glues, nor immediately after a discarded penalty).
func IsValidBreak(knots []khipu.Knot, i int) bool {
	n := len(knots)
	if i <= 0 || i > n {
		return false
	}
	if i == n {
		return true
	}
	switch k := knots[i-1].(type) {
	case khipu.Penalty:
		return !k.IsForbidden()
	case khipu.Glue:
		return i >= 2 && isBox(knots[i-2])
	default:
		return false
	}
}

func isBox(k khipu.Knot) bool {
	_, ok := k.(khipu.Box)
	return ok
}
