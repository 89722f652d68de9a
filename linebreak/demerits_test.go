package linebreak

import (
	"math"
	"testing"

	"github.com/npillmayer/knuthplass/core/dimen"
)

func TestDemeritsForcedBreakNoPenaltyTerm(t *testing.T) {
	teardown := config(t)
	defer teardown()
	o := Default(300 * dimen.BP)
	d := o.Demerits(0, math.Inf(-1), Normal, Normal, false, false, false)
	lp := o.LinePenalty + Badness(0)
	if d != lp*lp {
		t.Errorf("expected forced-break demerits == (linePenalty+badness)^2, got %v want %v", d, lp*lp)
	}
}

func TestDemeritsDoubleHyphen(t *testing.T) {
	teardown := config(t)
	defer teardown()
	o := Default(300 * dimen.BP)
	withDouble := o.Demerits(0, 10, Normal, Normal, true, true, false)
	withoutDouble := o.Demerits(0, 10, Normal, Normal, true, false, false)
	if withDouble-withoutDouble != o.DoubleHyphenDemerits {
		t.Errorf("expected double-hyphen demerits difference of %v, got %v", o.DoubleHyphenDemerits, withDouble-withoutDouble)
	}
}

func TestDemeritsAdjacentLooseTight(t *testing.T) {
	teardown := config(t)
	defer teardown()
	o := Default(300 * dimen.BP)
	mismatch := o.Demerits(0, 10, Tight, VeryLoose, false, false, false)
	matched := o.Demerits(0, 10, Normal, Loose, false, false, false)
	if mismatch-matched < o.AdjacentLooseTightDemerits {
		t.Errorf("expected fitness-mismatch to add at least %v demerits", o.AdjacentLooseTightDemerits)
	}
}

func TestDemeritsFinalHyphen(t *testing.T) {
	teardown := config(t)
	defer teardown()
	o := Default(300 * dimen.BP)
	last := o.Demerits(0, 10, Normal, Normal, true, false, true)
	notLast := o.Demerits(0, 10, Normal, Normal, true, false, false)
	if last-notLast != o.FinalHyphenDemerits {
		t.Errorf("expected final-hyphen demerits difference of %v, got %v", o.FinalHyphenDemerits, last-notLast)
	}
}

func TestDemeritsNegativePenaltyReducesCost(t *testing.T) {
	teardown := config(t)
	defer teardown()
	o := Default(300 * dimen.BP)
	withNegative := o.Demerits(0, -10, Normal, Normal, false, false, false)
	neutral := o.Demerits(0, 0, Normal, Normal, false, false, false)
	if withNegative >= neutral {
		t.Errorf("expected a negative penalty to reduce demerits below neutral, got %v vs %v", withNegative, neutral)
	}
}
