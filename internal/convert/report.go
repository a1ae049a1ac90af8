// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"encoding/json"
	"fmt"
	"io"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/latex-converter/pkg/types"
)

// WriteReport encodes the batch report to w in the given format.
// ReportNone writes nothing.
func WriteReport(w io.Writer, report types.BatchReport, format types.ReportFormat) error {
	switch format {
	case types.ReportNone:
		return nil
	case types.ReportYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(report); err != nil {
			return fmt.Errorf("encoding YAML report: %w", err)
		}
		return enc.Close()
	case types.ReportJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(report); err != nil {
			return fmt.Errorf("encoding JSON report: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("unknown report format %q: use yaml or json", format)
	}
}

// ParseReportFormat validates a --report flag value.
func ParseReportFormat(s string) (types.ReportFormat, error) {
	switch f := types.ReportFormat(s); f {
	case types.ReportNone, types.ReportYAML, types.ReportJSON:
		return f, nil
	default:
		return "", fmt.Errorf("unknown report format %q: use yaml or json", s)
	}
}
