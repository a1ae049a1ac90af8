// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package preview renders a before/after view of a conversion with the
// delimiters highlighted, plus character counters for both sides.
package preview

import (
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/logrusorgru/aurora"
	"github.com/mattn/go-isatty"

	"github.com/pdiddy/latex-converter/internal/delimiter"
	"github.com/pdiddy/latex-converter/pkg/types"
)

const (
	headingBefore = "Before (Bracket Notation)"
	headingAfter  = "After (Dollar Notation)"

	// Plain-text markers used around delimiters when colour is off.
	markOpen  = "[["
	markClose = "]]"
)

// Renderer writes previews. The zero value renders without colour.
type Renderer struct {
	Color bool
}

// NewRenderer returns a renderer for f. A nil force auto-detects colour
// from whether f is a terminal.
func NewRenderer(f *os.File, force *bool) Renderer {
	if force != nil {
		return Renderer{Color: *force}
	}
	return Renderer{Color: isTerminal(f)}
}

func isTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// Render writes the preview for input and its converted output. Nothing is
// written for empty input.
func (r Renderer) Render(w io.Writer, input, output string) error {
	if input == "" {
		return nil
	}
	_, stats := delimiter.Analyze(input)

	var b strings.Builder
	b.WriteString(headingBefore + "\n")
	r.writeSegments(&b, delimiter.SplitBrackets(input), false)
	fmt.Fprintf(&b, "\n%d characters\n\n", stats.InputChars)

	b.WriteString(headingAfter + "\n")
	r.writeSegments(&b, delimiter.SplitDollars(output), true)
	fmt.Fprintf(&b, "\n%d characters\n", stats.OutputChars)

	fmt.Fprintf(&b, "\nConverted %d delimiters (%d opening, %d closing)\n",
		stats.Delimiters(), stats.Opening, stats.Closing)

	_, err := io.WriteString(w, b.String())
	return err
}

func (r Renderer) writeSegments(b *strings.Builder, segs []types.Segment, after bool) {
	au := aurora.NewAurora(r.Color)
	for _, s := range segs {
		switch {
		case !s.Delimiter:
			b.WriteString(s.Text)
		case !r.Color:
			b.WriteString(markOpen + s.Text + markClose)
		case after:
			b.WriteString(au.BgGreen(s.Text).Black().String())
		default:
			b.WriteString(au.BgRed(s.Text).White().String())
		}
	}
}

// Counter formats a character count line the way the preview does.
func Counter(text string) string {
	return fmt.Sprintf("%d characters", utf8.RuneCountInString(text))
}
