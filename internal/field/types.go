// Package field reads and writes individual values of JSON files addressed
// by field paths.
package field

import (
	"github.com/mcncl/jfield/internal/formatter"
)

// DefaultFile is used when no file is given
const DefaultFile = "package.json"

// ExtractConfig configures a single field read
type ExtractConfig struct {
	FilePath     string
	FieldPath    string
	OutputFormat formatter.OutputFormat
	StripQuotes  bool
	Indent       int
}

// DefaultExtractConfig returns the settings used when nothing is specified
func DefaultExtractConfig() ExtractConfig {
	return ExtractConfig{
		FilePath:     DefaultFile,
		FieldPath:    "name",
		OutputFormat: formatter.FormatRaw,
		Indent:       formatter.DefaultIndent,
	}
}

// SetConfig configures a single field write
type SetConfig struct {
	FilePath  string
	FieldPath string
	Value     string
	// ValueType is a coerce type name; "" or "auto" detects the type.
	ValueType     string
	CreateMissing bool
	Indent        int
}

// DefaultSetConfig returns the settings used when nothing is specified
func DefaultSetConfig() SetConfig {
	return SetConfig{
		FilePath:  DefaultFile,
		FieldPath: "name",
		Indent:    formatter.DefaultIndent,
	}
}

// FieldValue is one formatted result of a multi-field read
type FieldValue struct {
	Path  string
	Value string
}

// ExtractionResult holds the values read from one file, in request order
type ExtractionResult struct {
	FilePath string
	Fields   []FieldValue
}

// NewExtractionResult creates an empty result for filePath
func NewExtractionResult(filePath string) *ExtractionResult {
	return &ExtractionResult{FilePath: filePath}
}

// AddField appends a value
func (r *ExtractionResult) AddField(path, value string) {
	r.Fields = append(r.Fields, FieldValue{Path: path, Value: value})
}

// Get returns the value recorded for path
func (r *ExtractionResult) Get(path string) (string, bool) {
	for _, f := range r.Fields {
		if f.Path == path {
			return f.Value, true
		}
	}
	return "", false
}

// Len returns the number of recorded fields
func (r *ExtractionResult) Len() int {
	return len(r.Fields)
}

func newFormatter(indent int) *formatter.Formatter {
	f := formatter.NewFormatter()
	if indent > 0 {
		f.Indent = indent
	}
	return f
}
