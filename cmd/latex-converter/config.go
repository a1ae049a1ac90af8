// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/latex-converter/internal/clipboard"
	"github.com/pdiddy/latex-converter/internal/preview"
	"github.com/pdiddy/latex-converter/pkg/types"
)

// loadConfig merges the config file and environment with any flags the
// command defines. Flags that were set explicitly win.
func loadConfig(cmd *cobra.Command) (types.Config, error) {
	var cfg types.Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("reading configuration: %w", err)
	}

	flags := cmd.Flags()
	if flags.Changed("output-dir") {
		cfg.OutputDir, _ = flags.GetString("output-dir")
	}
	if flags.Changed("ext") {
		cfg.Extensions, _ = flags.GetStringSlice("ext")
	}
	if flags.Changed("samples-dir") {
		cfg.SamplesDir, _ = flags.GetString("samples-dir")
	}
	if flags.Changed("settle") {
		cfg.WatchSettle, _ = flags.GetDuration("settle")
	}

	color, _ := flags.GetString("color")
	switch color {
	case "always":
		on := true
		cfg.Color = &on
	case "never":
		off := false
		cfg.Color = &off
	case "auto", "":
		if flags.Changed("color") {
			cfg.Color = nil
		}
	default:
		return cfg, fmt.Errorf("invalid --color %q: use auto, always, or never", color)
	}

	return cfg.WithDefaults(), nil
}

// newRenderer returns a preview renderer for f honoring cfg.Color.
func newRenderer(cfg types.Config, f *os.File) preview.Renderer {
	return preview.NewRenderer(f, cfg.Color)
}

// copyOutput puts text on the clipboard. Clipboard problems are reported on
// w and never fail the command: the converted text has already been printed.
func copyOutput(cfg types.Config, text string, w io.Writer) {
	cb, err := clipboard.Detect(cfg.ClipboardCommand)
	if err != nil {
		fmt.Fprintf(w, "warning: could not copy to clipboard: %v\n", err)
		return
	}
	if err := cb.Write(text); err != nil {
		fmt.Fprintf(w, "warning: could not copy to clipboard: %v\n", err)
		return
	}
	fmt.Fprintf(w, "Copied! (%s)\n", cb.Name())
}
