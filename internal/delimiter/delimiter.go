// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package delimiter rewrites LaTeX display-math delimiters from bracket
// notation (\[ ... \]) to dollar notation ($$ ... $$).
//
// Matching is literal and unconditional: every \[ and every \] becomes $$,
// regardless of pairing, order, nesting, or balance. Nothing in this package
// parses LaTeX. All functions are pure and safe for concurrent use.
package delimiter

import (
	"strings"
	"unicode/utf8"

	"github.com/pdiddy/latex-converter/pkg/types"
)

const (
	// Open is the bracket-notation opening delimiter.
	Open = `\[`
	// Close is the bracket-notation closing delimiter.
	Close = `\]`
	// Dollar replaces both Open and Close.
	Dollar = `$$`
)

// replacer scans left to right and consumes each match before continuing.
// Open and Close cannot overlap each other, so the order of the pairs is
// irrelevant.
var replacer = strings.NewReplacer(Open, Dollar, Close, Dollar)

// Convert returns text with every \[ and \] replaced by $$.
func Convert(text string) string {
	return replacer.Replace(text)
}

// Count returns the number of \[ and \] occurrences in text.
func Count(text string) (opening, closing int) {
	return strings.Count(text, Open), strings.Count(text, Close)
}

// Analyze converts input and reports the resulting stats.
func Analyze(input string) (string, types.Stats) {
	output := Convert(input)
	opening, closing := Count(input)
	return output, types.Stats{
		InputChars:  utf8.RuneCountInString(input),
		OutputChars: utf8.RuneCountInString(output),
		Opening:     opening,
		Closing:     closing,
	}
}

// SplitBrackets splits text into segments, isolating each \[ and \] as a
// delimiter segment.
func SplitBrackets(text string) []types.Segment {
	return split(text, Open, Close)
}

// SplitDollars splits text into segments, isolating each $$ as a delimiter
// segment. Runs of $ are consumed two at a time from the left.
func SplitDollars(text string) []types.Segment {
	return split(text, Dollar)
}

// split walks text once, emitting plain runs between matches of any of the
// given two-byte patterns. Joining the segment texts yields text.
func split(text string, patterns ...string) []types.Segment {
	var segs []types.Segment
	start := 0
	for i := 0; i < len(text); {
		p := matchAt(text, i, patterns)
		if p == "" {
			i++
			continue
		}
		if i > start {
			segs = append(segs, types.Segment{Text: text[start:i]})
		}
		segs = append(segs, types.Segment{Text: p, Delimiter: true})
		i += len(p)
		start = i
	}
	if start < len(text) {
		segs = append(segs, types.Segment{Text: text[start:]})
	}
	return segs
}

func matchAt(text string, i int, patterns []string) string {
	for _, p := range patterns {
		if strings.HasPrefix(text[i:], p) {
			return p
		}
	}
	return ""
}
