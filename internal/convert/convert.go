// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package convert applies delimiter conversion to files and streams.
// Per-file failures are recorded in the batch report and never abort a run.
package convert

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pdiddy/latex-converter/internal/delimiter"
	"github.com/pdiddy/latex-converter/pkg/types"
)

// ConvertFile converts the document at path according to opts, printing a
// status line to w. A copy in OutputDir is named after the file's base name.
func ConvertFile(path string, opts types.FileOptions, w io.Writer) types.FileResult {
	return ConvertSource(types.Source{Path: path, Rel: filepath.Base(path)}, opts, w)
}

// ConvertSource converts one document according to opts, printing a status
// line to w. A document with no bracket delimiters is reported as unchanged
// and nothing is written for it, unless opts.WriteUnchanged asks for a copy
// in OutputDir.
func ConvertSource(src types.Source, opts types.FileOptions, w io.Writer) types.FileResult {
	path := src.Path
	res := types.FileResult{Path: path}

	data, err := os.ReadFile(path)
	if err != nil {
		return fail(res, w, fmt.Errorf("reading: %w", err))
	}

	before := string(data)
	after, stats := delimiter.Analyze(before)
	res.Stats = stats

	unchanged := stats.Delimiters() == 0
	copyUnchanged := opts.WriteUnchanged && opts.OutputDir != "" && !opts.DryRun
	if unchanged && !copyUnchanged {
		res.Status = types.ConversionUnchanged
		fmt.Fprintf(w, "unchanged: %s\n", path)
		return res
	}

	if opts.DryRun {
		diff, err := Diff(path, before, after)
		if err != nil {
			return fail(res, w, err)
		}
		res.Diff = diff
		res.Status = types.ConversionDone
		fmt.Fprintf(w, "would convert: %s (%d delimiters)\n", path, stats.Delimiters())
		return res
	}

	out, err := outputPath(src, opts)
	if err != nil {
		return fail(res, w, err)
	}
	if err := writeAtomic(out, []byte(after), path); err != nil {
		return fail(res, w, err)
	}

	res.OutputPath = out
	if unchanged {
		res.Status = types.ConversionUnchanged
		fmt.Fprintf(w, "unchanged: %s (copied to %s)\n", path, out)
		return res
	}
	res.Status = types.ConversionDone
	fmt.Fprintf(w, "converted: %s (%d delimiters)\n", path, stats.Delimiters())
	return res
}

// ConvertBatch converts each source in order, printing per-file status to w
// followed by a summary line. Two sources that map to the same file in
// OutputDir are never both written: the later one fails.
func ConvertBatch(sources []types.Source, opts types.FileOptions, w io.Writer) types.BatchReport {
	var report types.BatchReport
	claimed := make(map[string]string)
	for _, src := range sources {
		if opts.OutputDir != "" && !opts.DryRun {
			target := filepath.Join(opts.OutputDir, src.Rel)
			if prev, ok := claimed[target]; ok {
				res := types.FileResult{Path: src.Path}
				report.Add(fail(res, w, fmt.Errorf("output %s already written for %s", target, prev)))
				continue
			}
			claimed[target] = src.Path
		}
		report.Add(ConvertSource(src, opts, w))
	}
	fmt.Fprintf(w, "\nBatch summary: %d converted, %d unchanged, %d failed (total: %d)\n",
		report.Converted, report.Unchanged, report.Failed, report.Total())
	return report
}

func fail(res types.FileResult, w io.Writer, err error) types.FileResult {
	res.Status = types.ConversionFailed
	res.Error = err.Error()
	fmt.Fprintf(w, "failed:    %s (%v)\n", res.Path, err)
	return res
}

// outputPath resolves where the converted document goes. OutputDir wins over
// InPlace; with neither set the caller asked for nothing to be written.
func outputPath(src types.Source, opts types.FileOptions) (string, error) {
	switch {
	case opts.OutputDir != "":
		rel := filepath.Clean(src.Rel)
		if rel == "." || filepath.IsAbs(rel) || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
			return "", fmt.Errorf("output name %q escapes the output directory", src.Rel)
		}
		out := filepath.Join(opts.OutputDir, rel)
		if err := os.MkdirAll(filepath.Dir(out), 0o755); err != nil {
			return "", fmt.Errorf("creating output directory: %w", err)
		}
		if same, _ := samePath(out, src.Path); same {
			return "", fmt.Errorf("output %s would overwrite the source; use --in-place", out)
		}
		return out, nil
	case opts.InPlace:
		return src.Path, nil
	default:
		return "", fmt.Errorf("no output target: set an output directory or in-place")
	}
}

func samePath(a, b string) (bool, error) {
	absA, err := filepath.Abs(a)
	if err != nil {
		return false, err
	}
	absB, err := filepath.Abs(b)
	if err != nil {
		return false, err
	}
	return absA == absB, nil
}

// writeAtomic writes data to a temp file beside dst and renames it into
// place. The file mode is copied from modeFrom when it exists.
func writeAtomic(dst string, data []byte, modeFrom string) error {
	mode := os.FileMode(0o644)
	if info, err := os.Stat(modeFrom); err == nil {
		mode = info.Mode().Perm()
	}

	tmp, err := os.CreateTemp(filepath.Dir(dst), "."+filepath.Base(dst)+".*")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("writing %s: %w", dst, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("writing %s: %w", dst, err)
	}
	if err := os.Chmod(tmpName, mode); err != nil {
		return fmt.Errorf("setting mode on %s: %w", dst, err)
	}
	if err := os.Rename(tmpName, dst); err != nil {
		return fmt.Errorf("replacing %s: %w", dst, err)
	}
	return nil
}
