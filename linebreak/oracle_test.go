package linebreak

import (
	"math"
	"testing"

	"github.com/npillmayer/knuthplass/core/dimen"
	"github.com/npillmayer/knuthplass/khipu"
)

func TestIsValidBreakBoundaries(t *testing.T) {
	teardown := config(t)
	defer teardown()
	knots := []khipu.Knot{
		khipu.NewBox(10 * dimen.BP),
		khipu.DefaultGlue(4 * dimen.BP),
		khipu.NewBox(10 * dimen.BP),
	}
	if IsValidBreak(knots, 0) {
		t.Error("position 0 must never be a valid break")
	}
	if !IsValidBreak(knots, len(knots)) {
		t.Error("end of paragraph must always be a valid break")
	}
	if IsValidBreak(knots, -1) || IsValidBreak(knots, len(knots)+1) {
		t.Error("out-of-range positions must not be valid breaks")
	}
}

func TestIsValidBreakAtGlueRequiresPrecedingBox(t *testing.T) {
	teardown := config(t)
	defer teardown()
	knots := []khipu.Knot{
		khipu.NewBox(10 * dimen.BP),
		khipu.DefaultGlue(4 * dimen.BP),
		khipu.DefaultGlue(4 * dimen.BP),
		khipu.NewBox(10 * dimen.BP),
	}
	if !IsValidBreak(knots, 2) {
		t.Error("expected a break to be valid right after glue preceded by a box")
	}
	if IsValidBreak(knots, 3) {
		t.Error("did not expect a break to be valid between two consecutive glues")
	}
}

func TestIsValidBreakAtForbiddenPenalty(t *testing.T) {
	teardown := config(t)
	defer teardown()
	knots := []khipu.Knot{
		khipu.NewBox(10 * dimen.BP),
		khipu.NewPenalty(0, math.Inf(1), false),
		khipu.NewBox(10 * dimen.BP),
	}
	if IsValidBreak(knots, 2) {
		t.Error("did not expect a break at a forbidden penalty")
	}
}

func TestIsValidBreakAtBox(t *testing.T) {
	teardown := config(t)
	defer teardown()
	knots := []khipu.Knot{
		khipu.NewBox(10 * dimen.BP),
		khipu.NewBox(10 * dimen.BP),
	}
	if IsValidBreak(knots, 1) {
		t.Error("did not expect a break right after a box")
	}
}
