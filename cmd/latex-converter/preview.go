package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/latex-converter/internal/delimiter"
)

var previewCmd = &cobra.Command{
	Use:   "preview [text...]",
	Short: "Show text before and after conversion with delimiters highlighted",
	Long: `Preview prints the input with each \[ and \] highlighted, then the
converted output with each $$ highlighted, with character counts for both.
Text is taken from the arguments, or from stdin when none are given.`,
	RunE: runPreview,
}

func runPreview(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	input := strings.Join(args, " ")
	if len(args) == 0 {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("reading stdin: %w", err)
		}
		input = string(data)
	}
	if input == "" {
		fmt.Fprintln(os.Stderr, "Nothing to preview.")
		return nil
	}

	output := delimiter.Convert(input)
	if err := newRenderer(cfg, os.Stdout).Render(os.Stdout, input, output); err != nil {
		return err
	}

	doCopy, _ := cmd.Flags().GetBool("copy")
	if doCopy {
		copyOutput(cfg, output, os.Stderr)
	}
	return nil
}

func init() {
	previewCmd.Flags().Bool("copy", false, "copy the converted text to the clipboard")

	rootCmd.AddCommand(previewCmd)
}
