package main

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/latex-converter/internal/convert"
	"github.com/pdiddy/latex-converter/pkg/types"
)

var convertCmd = &cobra.Command{
	Use:   "convert [files...]",
	Short: "Convert \\[ \\] delimiters to $$ in text, files, or directories",
	Long: `Convert replaces every \[ and \] with $$.

With no arguments (or "-") it reads stdin and writes the converted text to
stdout. Use --interactive to convert line by line as you type.

File and directory arguments are converted in one of three ways:
  --output-dir DIR   write converted copies into DIR
  --in-place         rewrite the files
  --dry-run          show a unified diff and write nothing
With none of these, converted file contents are printed to stdout.
Directories are searched recursively for files matching --ext; copies in
--output-dir keep their path below the directory argument.

--preview and --copy work on text printed to stdout, so they cannot be
combined with --output-dir, --in-place, or --dry-run. With --dry-run and
--report, the diffs are carried inside the report instead of printed.`,
	RunE: runConvert,
}

func runConvert(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	if len(args) == 0 || (len(args) == 1 && args[0] == "-") {
		return convertStdin(cmd, cfg)
	}

	inPlace, _ := cmd.Flags().GetBool("in-place")
	dryRun, _ := cmd.Flags().GetBool("dry-run")
	reportFlag, _ := cmd.Flags().GetString("report")
	format, err := convert.ParseReportFormat(reportFlag)
	if err != nil {
		return err
	}

	sources, err := convert.ExpandPaths(args, cfg.Extensions)
	if err != nil {
		return err
	}
	if len(sources) == 0 {
		return fmt.Errorf("no files matching %v found", cfg.Extensions)
	}

	batch := cfg.OutputDir != "" || inPlace || dryRun
	if err := checkBatchFlags(cmd, batch); err != nil {
		return err
	}
	if !batch {
		return convertToStdout(cmd, cfg, sources)
	}

	opts := types.FileOptions{
		OutputDir: cfg.OutputDir,
		InPlace:   inPlace,
		DryRun:    dryRun,
	}
	report := convert.ConvertBatch(sources, opts, os.Stderr)

	if err := writeBatchOutput(os.Stdout, report, format, dryRun); err != nil {
		return err
	}
	if report.HasFailures() {
		return fmt.Errorf("%d file(s) failed conversion", report.Failed)
	}
	return nil
}

// checkBatchFlags rejects flags that only apply to text printed on stdout
// when files are being written (or diffed) instead.
func checkBatchFlags(cmd *cobra.Command, batch bool) error {
	if !batch {
		return nil
	}
	for _, name := range []string{"preview", "copy"} {
		if on, _ := cmd.Flags().GetBool(name); on {
			return fmt.Errorf("--%s cannot be combined with --output-dir, --in-place, or --dry-run", name)
		}
	}
	return nil
}

// writeBatchOutput prints dry-run diffs or the report to w. Only one of them
// goes to w so that a report stays machine-readable; the report already
// carries each file's diff.
func writeBatchOutput(w io.Writer, report types.BatchReport, format types.ReportFormat, dryRun bool) error {
	if format != types.ReportNone {
		return convert.WriteReport(w, report, format)
	}
	if dryRun {
		for _, f := range report.Files {
			if _, err := io.WriteString(w, f.Diff); err != nil {
				return err
			}
		}
	}
	return nil
}

// convertStdin converts standard input, optionally line by line, and then
// applies --preview and --copy to the result.
func convertStdin(cmd *cobra.Command, cfg types.Config) error {
	interactive, _ := cmd.Flags().GetBool("interactive")
	if interactive {
		_, err := convert.ConvertLines(os.Stdin, os.Stdout)
		return err
	}

	var input bytes.Buffer
	out, _, err := convert.ConvertReader(io.TeeReader(os.Stdin, &input), os.Stdout)
	if err != nil {
		return err
	}
	return afterConvert(cmd, cfg, input.String(), out)
}

// convertToStdout prints the converted contents of each file, like a
// stream editor without in-place mode.
func convertToStdout(cmd *cobra.Command, cfg types.Config, sources []types.Source) error {
	var input, output bytes.Buffer
	for _, src := range sources {
		p := src.Path
		f, err := os.Open(p)
		if err != nil {
			return fmt.Errorf("opening %s: %w", p, err)
		}
		_, _, err = convert.ConvertReader(io.TeeReader(f, &input), io.MultiWriter(os.Stdout, &output))
		f.Close()
		if err != nil {
			return fmt.Errorf("converting %s: %w", p, err)
		}
	}
	return afterConvert(cmd, cfg, input.String(), output.String())
}

func afterConvert(cmd *cobra.Command, cfg types.Config, input, output string) error {
	showPreview, _ := cmd.Flags().GetBool("preview")
	if showPreview {
		fmt.Fprintln(os.Stderr)
		if err := newRenderer(cfg, os.Stderr).Render(os.Stderr, input, output); err != nil {
			return err
		}
	}
	doCopy, _ := cmd.Flags().GetBool("copy")
	if doCopy && output != "" {
		copyOutput(cfg, output, os.Stderr)
	}
	return nil
}

func init() {
	convertCmd.Flags().String("output-dir", "", "directory for converted copies")
	convertCmd.Flags().Bool("in-place", false, "rewrite files in place")
	convertCmd.Flags().Bool("dry-run", false, "print a unified diff instead of writing files")
	convertCmd.Flags().StringSlice("ext", nil, "file extensions to convert when a directory is given (default .tex,.md,.markdown,.txt)")
	convertCmd.Flags().String("report", "", "write a batch report to stdout: yaml or json (replaces printed diffs)")
	convertCmd.Flags().BoolP("interactive", "i", false, "convert stdin line by line")
	convertCmd.Flags().Bool("preview", false, "show the highlighted before/after preview on stderr (stdout mode only)")
	convertCmd.Flags().Bool("copy", false, "copy the converted text to the clipboard (stdout mode only)")

	rootCmd.AddCommand(convertCmd)
}
