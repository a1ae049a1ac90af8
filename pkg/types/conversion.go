// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// ConversionStatus indicates the outcome of converting one document.
type ConversionStatus string

const (
	// ConversionDone means delimiters were rewritten and output was written.
	ConversionDone ConversionStatus = "converted"
	// ConversionUnchanged means the document held no bracket delimiters.
	ConversionUnchanged ConversionStatus = "unchanged"
	ConversionFailed    ConversionStatus = "failed"
)

// Stats summarizes a single conversion.
type Stats struct {
	// InputChars and OutputChars count characters (runes), not bytes.
	InputChars  int `json:"input_chars" yaml:"input_chars"`
	OutputChars int `json:"output_chars" yaml:"output_chars"`

	// Opening is the number of \[ delimiters converted.
	Opening int `json:"opening" yaml:"opening"`

	// Closing is the number of \] delimiters converted.
	Closing int `json:"closing" yaml:"closing"`
}

// Delimiters returns the total number of delimiters converted.
func (s Stats) Delimiters() int {
	return s.Opening + s.Closing
}

// Balanced reports whether opening and closing counts match. It is
// informational only; conversion never depends on it.
func (s Stats) Balanced() bool {
	return s.Opening == s.Closing
}

// Segment is a run of text in a preview. Delimiter is true when Text is a
// single math delimiter (\[, \] or $$).
type Segment struct {
	Text      string `json:"text" yaml:"text"`
	Delimiter bool   `json:"delimiter,omitempty" yaml:"delimiter,omitempty"`
}

// Source is one input document. Rel is the name the converted copy gets
// under an output directory: the path relative to the directory argument it
// was found in, or the base name for a file named directly.
type Source struct {
	Path string
	Rel  string
}

// FileOptions controls where converted documents are written.
type FileOptions struct {
	// OutputDir receives converted copies, laid out by Source.Rel.
	OutputDir string

	// InPlace rewrites the source file. Ignored when OutputDir is set.
	InPlace bool

	// DryRun computes the conversion and a unified diff without writing.
	DryRun bool

	// WriteUnchanged copies documents without delimiters to OutputDir too,
	// so the output directory always mirrors the inputs.
	WriteUnchanged bool
}

// FileResult records the outcome for one document.
type FileResult struct {
	Path       string           `json:"path" yaml:"path"`
	OutputPath string           `json:"output_path,omitempty" yaml:"output_path,omitempty"`
	Status     ConversionStatus `json:"status" yaml:"status"`
	Stats      Stats            `json:"stats" yaml:"stats"`
	Diff       string           `json:"diff,omitempty" yaml:"diff,omitempty"`
	Error      string           `json:"error,omitempty" yaml:"error,omitempty"`
}

// BatchReport holds the outcome of a batch conversion run.
type BatchReport struct {
	Files     []FileResult `json:"files" yaml:"files"`
	Converted int          `json:"converted" yaml:"converted"`
	Unchanged int          `json:"unchanged" yaml:"unchanged"`
	Failed    int          `json:"failed" yaml:"failed"`
}

// Add appends a file result and updates the totals.
func (r *BatchReport) Add(res FileResult) {
	r.Files = append(r.Files, res)
	switch res.Status {
	case ConversionDone:
		r.Converted++
	case ConversionUnchanged:
		r.Unchanged++
	case ConversionFailed:
		r.Failed++
	}
}

// Total returns the total number of documents processed.
func (r BatchReport) Total() int {
	return r.Converted + r.Unchanged + r.Failed
}

// HasFailures reports whether any document failed conversion.
func (r BatchReport) HasFailures() bool {
	return r.Failed > 0
}
