package hyphen

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func config(t *testing.T) func() {
	return gotestingadapter.QuickConfig(t, "tyse.hyphen")
}

func TestHyphenateExample(t *testing.T) {
	teardown := config(t)
	defer teardown()
	d := NewEnglish()
	p := d.Hyphenate("example")
	if len(p) != len("example")-1 {
		t.Fatalf("expected priority slice of length %d, got %d", len("example")-1, len(p))
	}
	found := false
	for _, b := range p {
		if IsBreakAt(b) {
			found = true
		}
	}
	if !found {
		t.Errorf("expected at least one hyphenation point in 'example', got %v", p)
	}
}

func TestHyphenateShortWordNoBreaks(t *testing.T) {
	teardown := config(t)
	defer teardown()
	d := NewEnglish()
	p := d.Hyphenate("at")
	for _, b := range p {
		if IsBreakAt(b) {
			t.Errorf("did not expect a break point in a too-short word, got %v", p)
		}
	}
}

func TestHyphenateRespectsMargins(t *testing.T) {
	teardown := config(t)
	defer teardown()
	d := NewEnglish()
	p := d.Hyphenate("tablet")
	for i, b := range p {
		if IsBreakAt(b) && (i+1 < d.minLeft || i >= len("tablet")-d.minRight) {
			t.Errorf("break at position %d violates minLeft/minRight margins", i)
		}
	}
}

func TestEnglishFuncMatchesDictionary(t *testing.T) {
	teardown := config(t)
	defer teardown()
	d := NewEnglish()
	if len(English("hyphenate")) != len(d.Hyphenate("hyphenate")) {
		t.Errorf("expected package-level English func to behave like a fresh Dictionary")
	}
}
