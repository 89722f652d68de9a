/*
Package linebreak collects types shared by the Knuth-Plass paragraph
line-breaking search: options, line metrics, fitness classes and the
output Line type.

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
package linebreak

// https://quod.lib.umich.edu/j/jep/3336451.0013.105?view=text;rgn=main

import (
	"errors"
	"fmt"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"

	"github.com/npillmayer/knuthplass/core/dimen"
	"github.com/npillmayer/knuthplass/khipu"
)

// T traces to a global core tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

// Sentinel errors for invalid caller input.
var (
	ErrInvalidLineWidth   = errors.New("linebreak: line width must be positive")
	ErrNoFeasibleBreaking = errors.New("linebreak: no feasible breaking found")
)

// MaxBadness is TeX's badness ceiling; a line whose badness would exceed
// it is simply reported as this maximum value.
const MaxBadness = 10000.0

// Fitness classifies a line's adjustment ratio into one of TeX's four
// buckets, used to penalize visually jarring transitions between
// adjacent lines.
type Fitness int8

// Fitness classes, ordered tightest to loosest.
const (
	Tight Fitness = iota
	Normal
	Loose
	VeryLoose
)

func (f Fitness) String() string {
	switch f {
	case Tight:
		return "tight"
	case Normal:
		return "normal"
	case Loose:
		return "loose"
	case VeryLoose:
		return "very-loose"
	}
	return "?fitness"
}

// ClassifyFitness buckets an adjustment ratio into a Fitness class.
func ClassifyFitness(r float64) Fitness {
	switch {
	case r < -0.5:
		return Tight
	case r <= 0.5:
		return Normal
	case r <= 1.0:
		return Loose
	default:
		return VeryLoose
	}
}

// Line is one line of the broken paragraph: the half-open knot range
// [Start, End) it covers, and the displayed adjustment ratio for that
// range (negative means compressed, positive means stretched, -1 or
// below means overfull).
type Line struct {
	Start           int
	End             int
	AdjustmentRatio float64
}

func (l Line) String() string {
	return fmt.Sprintf("[%d,%d)@%.3f", l.Start, l.End, l.AdjustmentRatio)
}

// Options collects the configuration knobs for one call to
// knuthplass.BreakParagraph. All fields are meaningful independent of
// each other; see the package-level factory functions for sensible
// defaults resembling TeX's own \tolerance et al.
type Options struct {
	LineWidth                     dimen.Dimen // target width of a line
	Tolerance                     float64     // max badness of a non-forced feasible line
	LinePenalty                   float64     // constant added to badness before squaring
	DoubleHyphenDemerits          float64     // extra cost: two consecutive flagged breaks
	FinalHyphenDemerits           float64     // extra cost: flagged break before the last line
	AdjacentLooseTightDemerits    float64     // extra cost: fitness classes differ by >1
	FitnessClassDifferencePenalty float64     // retained for source compatibility; unused (see DESIGN.md)
	RightSkip                     khipu.Glue  // glue assumed appended at the end of each line
}

// Default returns TeX-like line-breaking options for a given line width.
func Default(lineWidth dimen.Dimen) Options {
	return Options{
		LineWidth:                  lineWidth,
		Tolerance:                  200,
		LinePenalty:                10,
		DoubleHyphenDemerits:       2000,
		FinalHyphenDemerits:        5000,
		AdjacentLooseTightDemerits: 3000,
		RightSkip:                  khipu.NewGlue(0, 0, 0),
	}
}

// DefaultMonospace returns options suited to fixed-width (terminal-style)
// text: a much higher tolerance, since monospace glue has comparatively
// little stretch to work with, and a small baseline RightSkip stretch so
// that even a single long word on a line gets a finite ratio.
func DefaultMonospace(lineWidth dimen.Dimen) Options {
	o := Default(lineWidth)
	o.Tolerance = MaxBadness
	o.RightSkip = khipu.NewGlue(0, 4, 0)
	return o
}

// DefaultWithRightSkip returns Default options with an explicit RightSkip
// stretch, useful when callers want extra give at the right margin
// without padding every inter-word glue.
func DefaultWithRightSkip(lineWidth, stretch dimen.Dimen) Options {
	o := Default(lineWidth)
	o.RightSkip = khipu.NewGlue(0, stretch, 0)
	return o
}

// Validate reports ErrInvalidLineWidth if the options cannot possibly
// produce a breaking.
func (o Options) Validate() error {
	if o.LineWidth <= 0 {
		return ErrInvalidLineWidth
	}
	return nil
}
