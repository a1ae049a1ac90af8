// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// ReportFormat selects the batch report encoding.
type ReportFormat string

const (
	ReportNone ReportFormat = ""
	ReportYAML ReportFormat = "yaml"
	ReportJSON ReportFormat = "json"
)

// DefaultExtensions lists the file extensions picked up when a directory is
// passed to the convert command.
var DefaultExtensions = []string{".tex", ".md", ".markdown", ".txt"}

// DefaultWatchSettle is the quiet period after a file event before the watch
// loop re-converts.
const DefaultWatchSettle = 100 * time.Millisecond

// Config holds settings read from latex-converter.yaml, the environment, and
// command-line flags.
type Config struct {
	// OutputDir receives converted copies of input files. Empty means stdout
	// (or in-place, with --in-place).
	OutputDir string `json:"output_dir" yaml:"output_dir" mapstructure:"output_dir"`

	// Extensions filters files when a directory is given to convert.
	Extensions []string `json:"extensions" yaml:"extensions" mapstructure:"extensions"`

	// Color forces preview highlighting on or off. Nil means auto-detect.
	Color *bool `json:"color,omitempty" yaml:"color,omitempty" mapstructure:"color"`

	// ClipboardCommand overrides clipboard detection (e.g. "xclip -selection clipboard").
	ClipboardCommand string `json:"clipboard_command,omitempty" yaml:"clipboard_command,omitempty" mapstructure:"clipboard_command"`

	// SamplesDir holds named sample snippets for the example command.
	SamplesDir string `json:"samples_dir" yaml:"samples_dir" mapstructure:"samples_dir"`

	// WatchSettle is the debounce delay for watch mode (default 100ms).
	WatchSettle time.Duration `json:"watch_settle" yaml:"watch_settle" mapstructure:"watch_settle"`
}

// WithDefaults returns a copy of c with zero fields filled in.
func (c Config) WithDefaults() Config {
	if len(c.Extensions) == 0 {
		c.Extensions = append([]string(nil), DefaultExtensions...)
	}
	if c.SamplesDir == "" {
		c.SamplesDir = "samples"
	}
	if c.WatchSettle <= 0 {
		c.WatchSettle = DefaultWatchSettle
	}
	return c
}
