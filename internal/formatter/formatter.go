package formatter

import (
	"bytes"
	"fmt"
	"strings"

	gyaml "github.com/goccy/go-yaml"

	"github.com/mcncl/jfield/internal/models"
)

// OutputFormat selects how a value is rendered.
type OutputFormat string

const (
	FormatRaw        OutputFormat = "raw"
	FormatJSON       OutputFormat = "json"
	FormatCompact    OutputFormat = "compact"
	FormatJSONPretty OutputFormat = "json-pretty"
	FormatPretty     OutputFormat = "pretty"
	FormatYAML       OutputFormat = "yaml"
)

// Formats lists the accepted output format names
var Formats = []OutputFormat{FormatRaw, FormatJSON, FormatCompact, FormatJSONPretty, FormatPretty, FormatYAML}

// DefaultIndent is the indentation width used for pretty output and for
// documents written back to disk.
const DefaultIndent = 2

// Formatter renders resolved values as text
type Formatter struct {
	Indent int
}

// NewFormatter creates a new Formatter instance
func NewFormatter() *Formatter {
	return &Formatter{Indent: DefaultIndent}
}

// ParseFormat validates a format name. An empty name means raw.
func ParseFormat(name string) (OutputFormat, error) {
	if name == "" {
		return FormatRaw, nil
	}
	for _, f := range Formats {
		if string(f) == strings.ToLower(name) {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown output format %q", name)
}

// Format renders val. Raw, json and compact all produce compact JSON;
// json-pretty and pretty produce indented JSON.
func (f *Formatter) Format(val *models.Value, format OutputFormat) (string, error) {
	switch format {
	case FormatJSONPretty, FormatPretty:
		return f.Pretty(val)
	case FormatYAML:
		return f.YAML(val)
	case FormatRaw, FormatJSON, FormatCompact, "":
		out, err := val.MarshalJSON()
		if err != nil {
			return "", fmt.Errorf("failed to encode value: %w", err)
		}
		return string(out), nil
	}
	return "", fmt.Errorf("unknown output format %q", format)
}

// Pretty renders val as indented JSON. This is also the canonical form used
// when a document is written back.
func (f *Formatter) Pretty(val *models.Value) (string, error) {
	out, err := models.MarshalIndent(val, strings.Repeat(" ", f.indent()))
	if err != nil {
		return "", fmt.Errorf("failed to encode value: %w", err)
	}
	return string(out), nil
}

// YAML renders val as a YAML document, keeping object key order.
func (f *Formatter) YAML(val *models.Value) (string, error) {
	var buf bytes.Buffer
	enc := gyaml.NewEncoder(&buf, gyaml.Indent(f.indent()), gyaml.IndentSequence(true))
	if err := enc.Encode(toOrdered(val)); err != nil {
		return "", fmt.Errorf("failed to encode YAML: %w", err)
	}
	if err := enc.Close(); err != nil {
		return "", fmt.Errorf("failed to encode YAML: %w", err)
	}
	return strings.TrimSuffix(buf.String(), "\n"), nil
}

func (f *Formatter) indent() int {
	if f.Indent <= 0 {
		return DefaultIndent
	}
	return f.Indent
}

// toOrdered converts a value into the plain Go shapes the YAML encoder
// understands, using MapSlice for objects so key order survives.
func toOrdered(val *models.Value) interface{} {
	switch val.Kind() {
	case models.KindBool:
		b, _ := val.AsBool()
		return b
	case models.KindInt:
		i, _ := val.AsInt()
		return i
	case models.KindFloat:
		fl, _ := val.AsFloat()
		return fl
	case models.KindString:
		s, _ := val.AsString()
		return s
	case models.KindArray:
		items := val.Items()
		out := make([]interface{}, len(items))
		for i, item := range items {
			out[i] = toOrdered(item)
		}
		return out
	case models.KindObject:
		obj := val.Object()
		ms := make(gyaml.MapSlice, 0, obj.Len())
		for _, key := range obj.Keys() {
			child, _ := obj.Get(key)
			ms = append(ms, gyaml.MapItem{Key: key, Value: toOrdered(child)})
		}
		return ms
	}
	return nil
}

// StripQuotes removes one layer of matching surrounding quotes ('"' or
// '\''). It is a plain text transform, not JSON unescaping.
func StripQuotes(s string) string {
	if len(s) < 2 {
		return s
	}
	first, last := s[0], s[len(s)-1]
	if first == last && (first == '"' || first == '\'') {
		return s[1 : len(s)-1]
	}
	return s
}
