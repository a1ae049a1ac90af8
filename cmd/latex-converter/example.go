package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/latex-converter/internal/delimiter"
	"github.com/pdiddy/latex-converter/internal/preview"
	"github.com/pdiddy/latex-converter/internal/samples"
)

var exampleCmd = &cobra.Command{
	Use:   "example [name]",
	Short: "Show a sample input and its conversion",
	Long: `Example prints a sample in bracket notation followed by its conversion.

Without a name it uses the built-in example. Additional samples are read
from the samples directory (default ./samples, or samples_dir in the config
file): each file there is one sample named after the file.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runExample,
}

func runExample(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	list, _ := cmd.Flags().GetBool("list")
	if list {
		all, err := samples.Load(cfg.SamplesDir)
		if err != nil {
			return err
		}
		fmt.Println(strings.Join(samples.Names(all), "\n"))
		return nil
	}

	name := ""
	if len(args) > 0 {
		name = args[0]
	}
	input, err := samples.Lookup(cfg.SamplesDir, name)
	if err != nil {
		return err
	}
	output := delimiter.Convert(input)

	showPreview, _ := cmd.Flags().GetBool("preview")
	if showPreview {
		if err := newRenderer(cfg, os.Stdout).Render(os.Stdout, input, output); err != nil {
			return err
		}
	} else {
		fmt.Printf("Input (%s):\n%s\n\n", preview.Counter(input), input)
		fmt.Printf("Output (%s):\n%s\n", preview.Counter(output), output)
	}

	doCopy, _ := cmd.Flags().GetBool("copy")
	if doCopy {
		copyOutput(cfg, output, os.Stderr)
	}
	return nil
}

func init() {
	exampleCmd.Flags().Bool("list", false, "list available sample names")
	exampleCmd.Flags().Bool("preview", false, "show the highlighted before/after preview")
	exampleCmd.Flags().Bool("copy", false, "copy the converted sample to the clipboard")
	exampleCmd.Flags().String("samples-dir", "", "directory of named samples (default ./samples)")

	rootCmd.AddCommand(exampleCmd)
}
