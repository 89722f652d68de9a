/*
Package dimen implements dimensions used throughout the line-breaking
packages.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package dimen

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
)

// Online dimension conversion for print:
// http://www.unitconversion.org/unit_converter/typography-ex.html

// Dimen is a typesetting dimension, represented as an IEEE-754 double.
// Unlike the fixed-point design units of earlier incarnations of this
// package, Dimen is a plain float64: the line-breaking arithmetic in
// package linebreak relies on real division for adjustment ratios, and
// a single float representation avoids mixing fixed- and floating-point
// rounding behaviour across that boundary.
type Dimen float64

// Some pre-defined dimensions. Values are in big points (1/72 inch),
// matching the convention of the design-unit package this one replaces.
const (
	Zero Dimen = 0
	SP   Dimen = 1.0 / 65536.0 // scaled point
	BP   Dimen = 1             // big point (PDF) = 1/72 inch
	PX   Dimen = 1             // "pixels"
	PT   Dimen = 72.0 / 72.27  // printer's point, 1/72.27 inch
	MM   Dimen = 72.0 / 25.4   // millimeters
	CM   Dimen = 72.0 / 2.54   // centimeters
	IN   Dimen = 72            // inch
)

// Infinity is a sentinel for "no elasticity available" or "unbounded".
const Infinity = Dimen(math.MaxFloat64)

// Some very stretchable dimensions, in the TeX tradition of fil/fill/filll.
const (
	Fil   Dimen = Infinity / 4
	Fill  Dimen = Infinity / 2
	Filll Dimen = Infinity - 1
)

// Epsilon is the default tolerance used when comparing a Dimen against a
// feasibility boundary. Callers typically scale it to the magnitude being
// compared (e.g. LineWidth * 1e-5) rather than using it directly.
const Epsilon = 1e-9

// Some common paper sizes.
var DINA4 = Point{210 * MM, 297 * MM}
var DINA5 = Point{148 * MM, 210 * MM}
var USLetter = Point{216 * MM, 279 * MM}
var USLegal = Point{216 * MM, 357 * MM}

// String implements fmt.Stringer.
func (d Dimen) String() string {
	if d.IsInfinite() {
		return "inf"
	}
	return fmt.Sprintf("%.4gbp", float64(d))
}

// Points returns a dimension in big (PDF) points — a no-op conversion
// since Dimen is already denominated in big points, kept for API
// compatibility with the fixed-point design-unit type it replaces.
func (d Dimen) Points() float64 {
	return float64(d)
}

// IsInfinite reports whether d represents the Infinity sentinel or one
// of its scaled derivatives Fil/Fill/Filll.
func (d Dimen) IsInfinite() bool {
	return d >= Fil
}

// Point is a point on a page.
type Point struct {
	X, Y Dimen
}

// Origin is origin.
var Origin = Point{0, 0}

// Shift moves a point along a vector.
func (p *Point) Shift(vector Point) *Point {
	p.X += vector.X
	p.Y += vector.Y
	return p
}

// Rect is a rectangle (on a page).
type Rect struct {
	TopL, BotR Point
}

// Width returns the width of a rectangle, i.e. the difference between
// x-coordinates of bottom-right and top-left corner.
func (r Rect) Width() Dimen {
	return r.BotR.X - r.TopL.X
}

// Height returns the height of a rectangle, i.e. the difference between
// y-coordinates of bottom-right and top-left corner.
func (r Rect) Height() Dimen {
	return r.BotR.Y - r.TopL.Y
}

// ---------------------------------------------------------------------------

var dimenPattern = regexp.MustCompile(`^([+\-]?[0-9]+(?:\.[0-9]+)?)(%|[cminpxtc]{2})?$`)

// ParseDimen parses a string to return a dimension. Syntax is CSS-Unit-like.
// If a percentage value is given (`80%`), the second return value will be true.
func ParseDimen(s string) (Dimen, bool, error) {
	d := dimenPattern.FindStringSubmatch(s)
	if len(d) < 2 {
		return 0, false, errors.New("dimen: format error parsing dimension")
	}
	scale := BP
	ispcnt := false
	if len(d) > 2 {
		switch d[2] {
		case "pt", "PT":
			scale = PT
		case "mm", "MM":
			scale = MM
		case "bp", "px", "BP", "PX":
			scale = BP
		case "cm", "CM":
			scale = CM
		case "in", "IN":
			scale = IN
		case "sp", "SP", "":
			scale = SP
		case "%":
			scale, ispcnt = 1, true
		default:
			return 0, false, errors.New("dimen: format error parsing dimension")
		}
	}
	n, err := strconv.ParseFloat(d[1], 64)
	if err != nil {
		return 0, false, errors.New("dimen: format error parsing dimension")
	}
	return Dimen(n) * scale, ispcnt, nil
}

// ---------------------------------------------------------------------------

// Min returns the smaller of two dimensions.
func Min(a, b Dimen) Dimen {
	if a < b {
		return a
	}
	return b
}

// Max returns the greater of two dimensions.
func Max(a, b Dimen) Dimen {
	if a > b {
		return a
	}
	return b
}

// Abs returns the absolute value of a dimension.
func Abs(a Dimen) Dimen {
	if a < 0 {
		return -a
	}
	return a
}
