/*
Package text adapts free-running prose to the Knuth-Plass line breaker: it
turns a string into khipus of boxes, glue and penalties, calls
knuthplass.BreakParagraph, and reassembles the broken lines back into text.
This is the same role the teacher's engine/frame pipeline gives its own
paragraph-shaping stage, collapsed here onto a single text/terminal
backend instead of a full glyph-shaping one.

BSD License

Copyright (c) 2017–20, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions
are met:

1. Redistributions of source code must retain the above copyright
notice, this list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright
notice, this list of conditions and the following disclaimer in the
documentation and/or other materials provided with the distribution.

3. Neither the name of this software nor the names of its contributors
may be used to endorse or promote products derived from this software
without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS
"AS IS" AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT
LIMITED TO, THE IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR
A PARTICULAR PURPOSE ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT
HOLDER OR CONTRIBUTORS BE LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL,
SPECIAL, EXEMPLARY, OR CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT
LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR SERVICES; LOSS OF USE,
DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER CAUSED AND ON ANY
THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY, OR TORT
(INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE. */
package text

import (
	"bufio"
	"errors"
	"strings"

	"github.com/clipperhouse/uax29/v2/words"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/text/unicode/norm"

	"github.com/npillmayer/knuthplass/core/dimen"
	"github.com/npillmayer/knuthplass/hyphen"
	"github.com/npillmayer/knuthplass/khipu"
	"github.com/npillmayer/knuthplass/linebreak"
	"github.com/npillmayer/knuthplass/linebreak/knuthplass"
)

// T traces to a global core tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

// ErrPenaltyCountMismatch is returned by fragment helpers when an explicit
// penalty list does not have exactly one fewer entry than the fragments
// it separates.
var ErrPenaltyCountMismatch = errors.New("text: penalty count must be len(fragments)-1")

// hyphenGlyph is appended to a line that ends at a flagged, width-bearing
// penalty — the visible hyphen left behind by a word broken mid-pattern.
const hyphenGlyph = "-"

// WordWidth measures the rendered width of a word fragment. Callers
// supply one appropriate to their backend (a fixed per-rune width for a
// monospace terminal, a font metrics lookup for a typeset backend).
type WordWidth func(fragment string) dimen.Dimen

// Format lays out content as one or more paragraphs of justified text.
// Paragraphs are separated by '\n' and laid out independently; opts
// controls line width, tolerance and the demerits model; wordWidth
// measures fragment widths; gluePreset is the inter-word glue; hyphenate
// supplies Liang priorities for candidate hyphenation points within a
// word (pass nil to disable hyphenation entirely).
func Format(opts linebreak.Options, wordWidth WordWidth, gluePreset khipu.Glue,
	hyphenBasePenalty float64, hyphenate hyphen.Func, content string) (string, error) {

	content = strings.ReplaceAll(content, "\r", "")
	paragraphs := strings.Split(content, "\n")
	out := make([]string, len(paragraphs))
	for i, p := range paragraphs {
		laidOut, err := formatParagraph(opts, wordWidth, gluePreset, hyphenBasePenalty, hyphenate, p)
		if err != nil {
			return "", err
		}
		out[i] = laidOut
	}
	return strings.Join(out, "\n"), nil
}

// formatParagraph lays out a single paragraph (no embedded '\n').
func formatParagraph(opts linebreak.Options, wordWidth WordWidth, gluePreset khipu.Glue,
	hyphenBasePenalty float64, hyphenate hyphen.Func, para string) (string, error) {

	if strings.TrimSpace(para) == "" {
		return para, nil
	}
	normalized := norm.NFC.String(para)
	kh := khipu.NewKhipu()
	first := true
	sc := bufio.NewScanner(strings.NewReader(normalized))
	sc.Buffer(make([]byte, 0, 4096), 1<<20)
	sc.Split(words.SplitFunc)
	for sc.Scan() {
		tok := sc.Text()
		if strings.TrimSpace(tok) == "" {
			continue // inter-word whitespace already represented by gluePreset
		}
		if !first {
			kh.AppendKnot(gluePreset)
		}
		first = false
		appendWord(kh, tok, wordWidth, hyphenBasePenalty, hyphenate)
	}
	if err := sc.Err(); err != nil {
		return "", err
	}
	kh.AppendKnot(khipu.NewGlue(0, dimen.Fil, 0))
	kh.AppendKnot(khipu.ForcedBreak())

	T().Debugf("text: laid out paragraph of %d knots", kh.Length())
	lines, err := knuthplass.BreakParagraph(opts, kh.Knots())
	if err != nil {
		return "", err
	}
	return render(kh, lines), nil
}

// appendWord splits word into hyphenatable fragments (if hyphenate finds
// any valid break points) and appends the corresponding Box/Penalty knots
// to kh.
func appendWord(kh *khipu.Khipu, word string, wordWidth WordWidth, hyphenBasePenalty float64, hyphenate hyphen.Func) {
	if hyphenate == nil {
		kh.AppendKnot(khipu.NewTextBox(word, wordWidth(word)))
		return
	}
	priorities := hyphenate(word)
	var breaks []int
	for i, p := range priorities {
		if hyphen.IsBreakAt(p) {
			breaks = append(breaks, i+1)
		}
	}
	if len(breaks) == 0 {
		kh.AppendKnot(khipu.NewTextBox(word, wordWidth(word)))
		return
	}
	fragments := make([]string, 0, len(breaks)+1)
	penalties := make([]khipu.Penalty, 0, len(breaks))
	start := 0
	for _, b := range breaks {
		fragments = append(fragments, word[start:b])
		cost := hyphenBasePenalty * float64(priorities[b-1])
		penalties = append(penalties, khipu.NewPenalty(wordWidth(hyphenGlyph), cost, true))
		start = b
	}
	fragments = append(fragments, word[start:])
	knots, err := BuildWord(fragments, penalties, wordWidth)
	if err != nil {
		// breaks and penalties are built pairwise above; a mismatch here
		// would be a bug in this function, not caller input.
		panic(err)
	}
	for _, k := range knots {
		kh.AppendKnot(k)
	}
}

// BuildWord assembles a hyphenatable word from its fragments and the
// flagged penalties separating them, as Box/Penalty knots in order. len(penalties)
// must equal len(fragments)-1; callers building their own hyphenation
// pipeline outside of Format use this directly.
func BuildWord(fragments []string, penalties []khipu.Penalty, wordWidth WordWidth) ([]khipu.Knot, error) {
	if len(fragments) == 0 {
		return nil, nil
	}
	if len(penalties) != len(fragments)-1 {
		return nil, ErrPenaltyCountMismatch
	}
	knots := make([]khipu.Knot, 0, 2*len(fragments)-1)
	for i, f := range fragments {
		knots = append(knots, khipu.NewTextBox(f, wordWidth(f)))
		if i < len(penalties) {
			knots = append(knots, penalties[i])
		}
	}
	return knots, nil
}

// render reconstructs formatted text from a khipu and its computed line
// breaks, joining lines with a newline and appending a hyphen glyph where
// a line ends at a flagged, width-bearing penalty.
func render(kh *khipu.Khipu, lines []linebreak.Line) string {
	var b strings.Builder
	knots := kh.Knots()
	for li, line := range lines {
		if li > 0 {
			b.WriteString("\n")
		}
		end := line.End
		hyphenate := end > 0 && end <= len(knots) && isFlaggedBreak(knots, end)
		b.WriteString(kh.Text(line.Start, end))
		if hyphenate {
			b.WriteString(hyphenGlyph)
		}
	}
	return b.String()
}

// isFlaggedBreak reports whether the knot preceding position end is a
// flagged penalty with positive width (i.e. a hyphen was taken there).
func isFlaggedBreak(knots []khipu.Knot, end int) bool {
	if end == 0 || end > len(knots) {
		return false
	}
	p, ok := knots[end-1].(khipu.Penalty)
	return ok && p.Flagged && p.Width > 0
}
