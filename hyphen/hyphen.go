/*
Package hyphen implements Frank Liang's hyphenation-pattern algorithm
(1983), used by TeX to find hyphenation opportunities inside words ahead
of line breaking.

Reference: "Word Hy-phen-a-tion by Com-put-er", Franklin Mark Liang,
https://tug.org/docs/liang/

This package ships one reference pattern set for English, built from a
small, hand-picked subset of common prefixes, suffixes and letter pairs —
nowhere near a full TeX hyphenation pattern file. Callers who need
production-quality hyphenation should load a complete pattern file (see
https://github.com/hyphenation/tex-hyphen) into a Dictionary of their own,
or supply any other Func.

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
package hyphen

import "strings"

// Func returns Liang priorities for the inter-letter positions of word.
// The returned slice has length len(word)-1; entry i is the priority for
// the position between word[i] and word[i+1]. Odd priorities mark valid
// hyphenation points.
type Func func(word string) []byte

// Dictionary holds a set of Liang patterns plus the minimum number of
// characters required on either side of a hyphen.
type Dictionary struct {
	patterns map[string][]byte // letters-only pattern -> parallel digit array (len(letters)+1)
	minLeft  int
	minRight int
}

// NewEnglish creates a Dictionary seeded with a small reference set of
// English hyphenation patterns.
func NewEnglish() *Dictionary {
	return &Dictionary{
		patterns: compilePatterns(englishPatterns),
		minLeft:  2,
		minRight: 3,
	}
}

// English is a ready-to-use reference Func for English text.
var English Func = NewEnglish().Hyphenate

// Hyphenate implements Func for a Dictionary.
func (d *Dictionary) Hyphenate(word string) []byte {
	n := len(word)
	out := make([]byte, maxInt(n-1, 0))
	if n < d.minLeft+d.minRight {
		return out
	}
	normalized := "." + strings.ToLower(word) + "."
	priorities := make([]byte, len(normalized)+1)
	for pattern, numbers := range d.patterns {
		applyPattern(normalized, pattern, numbers, priorities)
	}
	for i := d.minLeft - 1; i < n-d.minRight; i++ {
		out[i] = priorities[i+2]
	}
	return out
}

// IsBreakAt reports whether priority p marks a valid hyphenation point.
func IsBreakAt(p byte) bool {
	return p%2 == 1
}

func applyPattern(word, patternLetters string, patternNumbers []byte, priorities []byte) {
	pl := len(patternLetters)
	for i := 0; i+pl <= len(word); i++ {
		if word[i:i+pl] != patternLetters {
			continue
		}
		for j := 0; j <= pl; j++ {
			if patternNumbers[j] > priorities[i+j] {
				priorities[i+j] = patternNumbers[j]
			}
		}
	}
}

// compilePatterns splits each "letters-with-embedded-digits" pattern
// (e.g. "ex1am", ".anti5") into its letters-only key and a parallel digit
// array, once at Dictionary construction time rather than on every
// Hyphenate call.
func compilePatterns(raw []string) map[string][]byte {
	out := make(map[string][]byte, len(raw))
	for _, pattern := range raw {
		var letters strings.Builder
		numbers := make([]byte, len(pattern)+1)
		pos := 0
		for i := 0; i < len(pattern); i++ {
			ch := pattern[i]
			if ch >= '0' && ch <= '9' {
				numbers[pos] = ch - '0'
			} else {
				letters.WriteByte(ch)
				pos++
			}
		}
		out[letters.String()] = numbers[:pos+1]
	}
	return out
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
