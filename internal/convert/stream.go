// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"bufio"
	"fmt"
	"io"

	"github.com/pdiddy/latex-converter/internal/delimiter"
	"github.com/pdiddy/latex-converter/pkg/types"
)

// ConvertReader reads all of r, writes the converted text to w, and returns
// the conversion stats.
func ConvertReader(r io.Reader, w io.Writer) (string, types.Stats, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", types.Stats{}, fmt.Errorf("reading input: %w", err)
	}
	out, stats := delimiter.Analyze(string(data))
	if _, err := io.WriteString(w, out); err != nil {
		return "", stats, fmt.Errorf("writing output: %w", err)
	}
	return out, stats, nil
}

// ConvertLines converts r one line at a time, flushing each converted line
// to w as soon as it is read. Delimiters never span a line break, so the
// result equals converting the whole input at once.
func ConvertLines(r io.Reader, w io.Writer) (types.Stats, error) {
	var total types.Stats
	br := bufio.NewReader(r)
	for {
		line, readErr := br.ReadString('\n')
		if line != "" {
			out, stats := delimiter.Analyze(line)
			total.InputChars += stats.InputChars
			total.OutputChars += stats.OutputChars
			total.Opening += stats.Opening
			total.Closing += stats.Closing
			if _, err := io.WriteString(w, out); err != nil {
				return total, fmt.Errorf("writing output: %w", err)
			}
		}
		if readErr == io.EOF {
			return total, nil
		}
		if readErr != nil {
			return total, fmt.Errorf("reading input: %w", readErr)
		}
	}
}
