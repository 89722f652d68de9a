package dimen

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestParseDimen(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tyse.core")
	defer teardown()
	//
	d, _, err := ParseDimen("12px")
	if err != nil {
		t.Errorf("(1) %s", err.Error())
	} else if d != 12*BP {
		t.Errorf("(1) expected d to be 12bp (%v), is %v", 12*BP, d)
	}
	//
	d, _, err = ParseDimen("0")
	if err != nil {
		t.Errorf("(2) %s", err.Error())
	} else if d != 0 {
		t.Errorf("(2) expected d to be 0, is %v", d)
	}
	//
	d, ispcnt, err := ParseDimen("20%")
	if err != nil {
		t.Errorf("(3) %s", err.Error())
	} else if ispcnt != true {
		t.Errorf("(3) expected percentage-marker to be true, is %v", ispcnt)
	}
	//
	d, _, err = ParseDimen("8.5pt")
	if err != nil {
		t.Errorf("(4) %s", err.Error())
	} else if Abs(d-8.5*PT) > Epsilon {
		t.Errorf("(4) expected d to be 8.5pt (%v), is %v", 8.5*PT, d)
	}
}

func TestMinMaxAbs(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tyse.core")
	defer teardown()
	//
	if Min(3*BP, 5*BP) != 3*BP {
		t.Error("expected Min(3bp, 5bp) == 3bp")
	}
	if Max(3*BP, 5*BP) != 5*BP {
		t.Error("expected Max(3bp, 5bp) == 5bp")
	}
	if Abs(-4 * BP) != 4*BP {
		t.Error("expected Abs(-4bp) == 4bp")
	}
}

func TestInfinity(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tyse.core")
	defer teardown()
	//
	if !Fil.IsInfinite() || !Fill.IsInfinite() || !Filll.IsInfinite() {
		t.Error("expected Fil/Fill/Filll to report as infinite")
	}
	if (10 * BP).IsInfinite() {
		t.Error("did not expect a finite dimension to report as infinite")
	}
}
