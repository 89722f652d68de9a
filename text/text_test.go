package text

import (
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"

	"github.com/npillmayer/knuthplass/core/dimen"
	"github.com/npillmayer/knuthplass/hyphen"
	"github.com/npillmayer/knuthplass/khipu"
	"github.com/npillmayer/knuthplass/linebreak"
)

func config(t *testing.T) func() {
	return gotestingadapter.QuickConfig(t, "tyse.text")
}

// fixedWidth is a trivial monospace metric: one unit per rune.
func fixedWidth(s string) dimen.Dimen {
	return dimen.Dimen(len([]rune(s))) * dimen.BP
}

func TestFormatSingleShortParagraph(t *testing.T) {
	teardown := config(t)
	defer teardown()
	opts := linebreak.DefaultMonospace(40 * dimen.BP)
	out, err := Format(opts, fixedWidth, khipu.MonospaceGlue, 100, nil, "the quick fox")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.TrimSpace(out) == "" {
		t.Errorf("expected non-empty output")
	}
}

func TestFormatMultipleParagraphsPreservesCount(t *testing.T) {
	teardown := config(t)
	defer teardown()
	opts := linebreak.DefaultMonospace(40 * dimen.BP)
	in := "first paragraph of words\nsecond paragraph here"
	out, err := Format(opts, fixedWidth, khipu.MonospaceGlue, 100, nil, in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Count(out, "\n") < 1 {
		t.Errorf("expected at least one paragraph separator in output, got %q", out)
	}
}

func TestFormatEmptyParagraphPassesThrough(t *testing.T) {
	teardown := config(t)
	defer teardown()
	opts := linebreak.DefaultMonospace(40 * dimen.BP)
	out, err := Format(opts, fixedWidth, khipu.MonospaceGlue, 100, nil, "one\n\ntwo")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	parts := strings.Split(out, "\n")
	if len(parts) < 3 {
		t.Fatalf("expected the blank paragraph to survive round-trip, got %q", out)
	}
}

func TestFormatWrapsLongParagraph(t *testing.T) {
	teardown := config(t)
	defer teardown()
	opts := linebreak.DefaultMonospace(20 * dimen.BP)
	in := "one two three four five six seven eight nine ten eleven twelve"
	out, err := Format(opts, fixedWidth, khipu.MonospaceGlue, 100, nil, in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "\n") {
		t.Errorf("expected a long paragraph to wrap across multiple lines")
	}
}

func TestFormatWithHyphenationCanInsertHyphen(t *testing.T) {
	teardown := config(t)
	defer teardown()
	opts := linebreak.DefaultMonospace(9 * dimen.BP)
	out, err := Format(opts, fixedWidth, khipu.MonospaceGlue, 50, hyphen.English, "hyphenation")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.TrimSpace(out) == "" {
		t.Errorf("expected non-empty output")
	}
	if !strings.Contains(out, "-") {
		t.Errorf("expected a hyphen where the word is broken, got %q", out)
	}
}

func TestBuildWordPenaltyCountMismatch(t *testing.T) {
	teardown := config(t)
	defer teardown()
	_, err := BuildWord([]string{"ex", "am", "ple"}, nil, fixedWidth)
	assert.ErrorIs(t, err, ErrPenaltyCountMismatch)
}

func TestBuildWordSingleFragment(t *testing.T) {
	teardown := config(t)
	defer teardown()
	knots, err := BuildWord([]string{"example"}, nil, fixedWidth)
	assert.NoError(t, err)
	assert.Len(t, knots, 1)
}

func TestBuildWordJoinsFragmentsWithPenalties(t *testing.T) {
	teardown := config(t)
	defer teardown()
	penalties := []khipu.Penalty{khipu.NewPenalty(1, 50, true), khipu.NewPenalty(1, 50, true)}
	knots, err := BuildWord([]string{"ex", "am", "ple"}, penalties, fixedWidth)
	assert.NoError(t, err)
	assert.Len(t, knots, 5)
}
