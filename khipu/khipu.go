package khipu

import (
	"bytes"
	"fmt"
	"math"

	"github.com/npillmayer/knuthplass/core/dimen"
)

/*
BSD License
Copyright (c) 2017-20, Norbert Pillmayer

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
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.
*/

// Knots implement items for paragraph line-breaking. The three knot
// types — Box, Glue and Penalty — correspond directly to Knuth & Plass's
// box/glue/penalty model; this is a deliberately narrower set than the
// teacher's own knot zoo (which also carries Kern, Discretionary and
// TextBox variants for a full typesetting pipeline).

// === Knots =================================================================

// KnotType is a type for the different flavours of knots.
type KnotType int8

// A Knot has a width and may be discardable at line-breaks.
type Knot interface {
	Type() KnotType      // type identifier of this knot
	W() dimen.Dimen      // natural width
	IsDiscardable() bool // is this knot discardable?
}

// Knot types.
const (
	KTBox KnotType = iota
	KTGlue
	KTPenalty
	KTUserDefined // clients should use custom knot types above this
)

// KnotString is a debugging helper and returns a textual representation of a knot.
func KnotString(k Knot) string {
	switch k.Type() {
	case KTBox:
		return k.(Box).String()
	case KTGlue:
		return k.(Glue).String()
	case KTPenalty:
		return k.(Penalty).String()
	default:
		return "?knot"
	}
}

// --- Box ---------------------------------------------------------------

// A Box is an unshrinkable, unstretchable, non-discardable unit of content
// with a fixed width. It may carry an optional text payload, which the
// text-layer adapter uses to reconstruct formatted output; the width
// computation itself never looks at Text.
type Box struct {
	Width dimen.Dimen
	Text  string
}

// NewBox creates a box of the given width.
func NewBox(w dimen.Dimen) Box {
	return Box{Width: w}
}

// NewTextBox creates a box carrying its source text alongside its width.
func NewTextBox(s string, w dimen.Dimen) Box {
	return Box{Width: w, Text: s}
}

// Type is part of interface Knot.
func (b Box) Type() KnotType {
	return KTBox
}

func (b Box) String() string {
	if b.Text != "" {
		return fmt.Sprintf("«%s»", b.Text)
	}
	return fmt.Sprintf("□%s", b.Width)
}

// W is part of interface Knot.
func (b Box) W() dimen.Dimen {
	return b.Width
}

// IsDiscardable is part of interface Knot. Boxes are never discardable.
func (b Box) IsDiscardable() bool {
	return false
}

// --- Glue ------------------------------------------------------------------

// A Glue is elastic whitespace: a natural width plus stretch and shrink.
type Glue [3]dimen.Dimen // natural, stretch, shrink

// NewGlue creates a new drop of glue with the given natural width, stretch
// and shrink.
func NewGlue(w, stretch, shrink dimen.Dimen) Glue {
	return Glue{w, stretch, shrink}
}

// DefaultGlue returns the teacher's traditional "rubber space": natural
// width w, stretch w/2, shrink w/3.
func DefaultGlue(w dimen.Dimen) Glue {
	return Glue{w, w / 2, w / 3}
}

// MonospaceGlue is the fixed inter-word space used by fixed-width text,
// with a small amount of stretch and no shrink.
var MonospaceGlue = Glue{1, 0.5, 0}

// NewFill creates a drop of infinitely stretchable glue, as used to flush
// the end of a paragraph.
func NewFill(f int) Glue {
	var stretch dimen.Dimen
	switch f {
	case 2:
		stretch = dimen.Fill
	case 3:
		stretch = dimen.Filll
	default:
		stretch = dimen.Fil
	}
	return NewGlue(0, stretch, 0)
}

// Type is part of interface Knot.
func (g Glue) Type() KnotType {
	return KTGlue
}

func (g Glue) String() string {
	return fmt.Sprintf("⧟ %.2f±", g.W().Points())
}

// W is part of interface Knot. Natural width of the glue.
func (g Glue) W() dimen.Dimen {
	return g[0]
}

// Stretch returns the glue's stretchability.
func (g Glue) Stretch() dimen.Dimen {
	return g[1]
}

// Shrink returns the glue's shrinkability.
func (g Glue) Shrink() dimen.Dimen {
	return g[2]
}

// IsDiscardable is part of interface Knot. Glue is discardable.
func (g Glue) IsDiscardable() bool {
	return true
}

// --- Penalty ---------------------------------------------------------------

// A Penalty marks a potential line break. Cost of math.Inf(-1) forces a
// break; math.Inf(1) forbids one. Width contributes to the line only when
// the break is actually taken here (e.g. a hyphen glyph). Flagged marks
// breaks — typically hyphens — that should not be chosen on two
// consecutive lines.
type Penalty struct {
	Width   dimen.Dimen
	Cost    float64
	Flagged bool
}

// NewPenalty creates a penalty knot.
func NewPenalty(w dimen.Dimen, cost float64, flagged bool) Penalty {
	return Penalty{Width: w, Cost: cost, Flagged: flagged}
}

// ForcedBreak returns a zero-width penalty that forces a break, such as
// the implicit break terminating a paragraph or an explicit hard return.
func ForcedBreak() Penalty {
	return Penalty{Width: 0, Cost: math.Inf(-1), Flagged: false}
}

// Type is part of interface Knot.
func (p Penalty) Type() KnotType {
	return KTPenalty
}

func (p Penalty) String() string {
	return fmt.Sprintf("⦻%.0f", p.Cost)
}

// W is part of interface Knot. Penalties contribute width only when the
// break is actually taken at this position; callers computing line
// metrics must special-case this (see package linebreak).
func (p Penalty) W() dimen.Dimen {
	return 0
}

// IsDiscardable is part of interface Knot. Penalties are discardable.
func (p Penalty) IsDiscardable() bool {
	return true
}

// IsForced reports whether this penalty forces a break.
func (p Penalty) IsForced() bool {
	return math.IsInf(p.Cost, -1)
}

// IsForbidden reports whether this penalty forbids a break.
func (p Penalty) IsForbidden() bool {
	return math.IsInf(p.Cost, 1)
}

// === Khipus ================================================================

// Khipu is a string of knots — the teacher's (and this module's) term for
// what Knuth & Plass call a paragraph's item sequence, borrowed from the
// Inca accounting device made of knotted cords.
type Khipu struct {
	typ   int    // hlist, vlist or mlist
	knots []Knot // array of knots of different type
}

// List types.
const (
	HList int = iota // horizontal list
	VList             // vertical list
	MList             // math list
)

// NewKhipu creates a new, empty knot list.
func NewKhipu() *Khipu {
	kh := &Khipu{}
	kh.knots = make([]Knot, 0, 50)
	return kh
}

// Length gives the number of knots in the list.
func (kh *Khipu) Length() int {
	return len(kh.knots)
}

// Knots returns the underlying knot slice. Callers must not mutate it.
func (kh *Khipu) Knots() []Knot {
	return kh.knots
}

// AppendKnot appends a knot at the end of the list.
func (kh *Khipu) AppendKnot(knot Knot) *Khipu {
	kh.knots = append(kh.knots, knot)
	return kh
}

// AppendKhipu concatenates two khipus.
func (kh *Khipu) AppendKhipu(k *Khipu) *Khipu {
	kh.knots = append(kh.knots, k.knots...)
	return kh
}

// At returns the knot at index i.
func (kh *Khipu) At(i int) Knot {
	return kh.knots[i]
}

// ReplaceKnot replaces a knot within the khipu. If inx is not a valid
// index for the khipu, nothing is done.
//
// Returns the current knot at position inx.
func (kh *Khipu) ReplaceKnot(inx int, knot Knot) Knot {
	if inx >= 0 && inx < len(kh.knots) {
		k := kh.knots[inx]
		kh.knots[inx] = knot
		return k
	}
	return nil
}

// Text returns the text contents of a khipu segment, reconstructed from
// the Text fields of its boxes, with single spaces inserted at glue.
func (kh *Khipu) Text(from, to int) string {
	var b bytes.Buffer
	to = iMax(from, iMin(to, len(kh.knots)))
	spacecnt := 0
	for i := from; i < to; i++ {
		knot := kh.knots[i]
		switch knot.Type() {
		case KTBox:
			b.WriteString(knot.(Box).Text)
			spacecnt = 0
		case KTGlue:
			if spacecnt == 0 {
				b.WriteString(" ")
				spacecnt++
			}
		}
	}
	return b.String()
}

// Debug representation of a knot list.
func (kh *Khipu) String() string {
	buf := make([]byte, 0, 30)
	w := bytes.NewBuffer(buf)
	switch kh.typ {
	case HList:
		w.WriteString("\\hlist{")
	case VList:
		w.WriteString("\\vlist{")
	case MList:
		w.WriteString("\\mlist{")
	}
	first := true
	for _, knot := range kh.knots {
		if !first {
			w.WriteString(" ")
		} else {
			first = false
		}
		w.WriteString(KnotString(knot))
	}
	w.WriteString("}")
	return w.String()
}

// ----------------------------------------------------------------------

func iMin(x, y int) int {
	if x < y {
		return x
	}
	return y
}

func iMax(x, y int) int {
	if x > y {
		return x
	}
	return y
}
