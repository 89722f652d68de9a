package khipu

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"

	"github.com/npillmayer/knuthplass/core/dimen"
)

func config(t *testing.T) func() {
	return gotestingadapter.QuickConfig(t, "tyse.khipu")
}

func TestKhipuAppend(t *testing.T) {
	teardown := config(t)
	defer teardown()
	kh := NewKhipu()
	kh.AppendKnot(NewBox(10 * dimen.BP)).AppendKnot(NewGlue(4*dimen.BP, 2*dimen.BP, 1*dimen.BP))
	kh.AppendKnot(NewTextBox("Hello", 30*dimen.BP))
	t.Logf("khipu = %s\n", kh.String())
	if kh.Length() != 3 {
		t.Errorf("Length of khipu should be 3, is %d", kh.Length())
	}
}

func TestKhipuText(t *testing.T) {
	teardown := config(t)
	defer teardown()
	kh := NewKhipu()
	kh.AppendKnot(NewTextBox("Hello", 30*dimen.BP))
	kh.AppendKnot(DefaultGlue(4 * dimen.BP))
	kh.AppendKnot(NewTextBox("World", 30*dimen.BP))
	out := kh.Text(0, kh.Length())
	if out != "Hello World" {
		t.Errorf("expected reconstructed text 'Hello World', got %q", out)
	}
}

func TestPenaltyForced(t *testing.T) {
	teardown := config(t)
	defer teardown()
	p := ForcedBreak()
	if !p.IsForced() {
		t.Error("expected ForcedBreak() to report IsForced() true")
	}
	if p.IsForbidden() {
		t.Error("did not expect ForcedBreak() to be forbidden")
	}
}

func TestSums(t *testing.T) {
	teardown := config(t)
	defer teardown()
	knots := []Knot{
		NewBox(10 * dimen.BP),
		DefaultGlue(4 * dimen.BP),
		NewBox(20 * dimen.BP),
	}
	sums := ComputeSums(knots)
	w, st, sh := sums.Range(0, 3)
	if w != 34*dimen.BP {
		t.Errorf("expected total width 34bp, got %v", w)
	}
	if st != 2*dimen.BP {
		t.Errorf("expected total stretch 2bp, got %v", st)
	}
	if sh != (4.0/3)*dimen.BP {
		t.Errorf("expected total shrink 4/3bp, got %v", sh)
	}
}
