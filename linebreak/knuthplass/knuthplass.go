package knuthplass

/*
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
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.  */

import (
	"github.com/npillmayer/knuthplass/khipu"
	"github.com/npillmayer/knuthplass/linebreak"
)

// BreakParagraph determines optimal line breaks for a paragraph using the
// Knuth-Plass dynamic-programming algorithm. knots is the paragraph's
// item sequence (boxes, glue, penalties); opts configures line width,
// tolerance and the demerits model.
//
// The returned lines partition [0, len(knots)) exactly; for a non-empty
// khipu a breaking is always produced, falling back to the rescue
// mechanism (overfull lines, ratio clamped to -1) when no feasible
// breaking exists within tolerance. An empty khipu yields an empty,
// nil-error result.
func BreakParagraph(opts linebreak.Options, knots []khipu.Knot) ([]linebreak.Line, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if len(knots) == 0 {
		return nil, nil
	}
	s := newSearcher(opts, knots)
	T().Debugf("starting Knuth-Plass search over %d knots, line width %v", len(knots), opts.LineWidth)
	endIdx := s.run()
	if endIdx == -1 {
		return nil, linebreak.ErrNoFeasibleBreaking
	}
	lines := s.backtrack(endIdx)
	T().Infof("Knuth-Plass search produced %d lines", len(lines))
	return lines, nil
}
