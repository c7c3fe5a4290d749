package field

import (
	"log/slog"
	"strconv"

	"github.com/mcncl/jfield/internal/errors"
	"github.com/mcncl/jfield/internal/formatter"
	"github.com/mcncl/jfield/internal/models"
	"github.com/mcncl/jfield/internal/parser"
	"github.com/mcncl/jfield/internal/tree"
)

// ExtractField reads one field of a file and renders it
func ExtractField(cfg ExtractConfig) (string, error) {
	root, err := parser.ParseFile(cfg.FilePath)
	if err != nil {
		return "", err
	}
	return ExtractFromValue(root, cfg)
}

// ExtractFromValue reads one field of an already parsed document
func ExtractFromValue(root *models.Value, cfg ExtractConfig) (string, error) {
	val, err := tree.Lookup(root, cfg.FieldPath)
	if err != nil {
		slog.Debug("field lookup failed", "file", cfg.FilePath, "path", cfg.FieldPath, "error", err)
		return "", err
	}
	slog.Debug("field resolved", "file", cfg.FilePath, "path", cfg.FieldPath, "kind", val.Kind().String())

	return render(val, cfg.OutputFormat, cfg.Indent, cfg.StripQuotes)
}

// ExtractMultipleFields reads several fields of one file, parsing it once.
// The first failing path aborts the whole read.
func ExtractMultipleFields(filePath string, fieldPaths []string, stripQuotes bool) (*ExtractionResult, error) {
	return ExtractFields(ExtractConfig{
		FilePath:     filePath,
		OutputFormat: formatter.FormatRaw,
		StripQuotes:  stripQuotes,
		Indent:       formatter.DefaultIndent,
	}, fieldPaths)
}

// ExtractFields is ExtractMultipleFields with full control over rendering.
// cfg.FieldPath is ignored.
func ExtractFields(cfg ExtractConfig, fieldPaths []string) (*ExtractionResult, error) {
	root, err := parser.ParseFile(cfg.FilePath)
	if err != nil {
		return nil, err
	}

	result := NewExtractionResult(cfg.FilePath)
	for _, fieldPath := range fieldPaths {
		one := cfg
		one.FieldPath = fieldPath
		formatted, err := ExtractFromValue(root, one)
		if err != nil {
			return nil, err
		}
		result.AddField(fieldPath, formatted)
	}
	return result, nil
}

// ExtractArray reads the value at arrayPath. It is ExtractField without
// quote stripping.
func ExtractArray(filePath, arrayPath string, format formatter.OutputFormat) (string, error) {
	return ExtractField(ExtractConfig{
		FilePath:     filePath,
		FieldPath:    arrayPath,
		OutputFormat: format,
		Indent:       formatter.DefaultIndent,
	})
}

// ExtractArrayLength returns the number of elements of the array at arrayPath
func ExtractArrayLength(filePath, arrayPath string) (int, error) {
	arr, err := resolveArray(filePath, arrayPath)
	if err != nil {
		return 0, err
	}
	return arr.Len(), nil
}

// ExtractArrayElement renders element index of the array at arrayPath
func ExtractArrayElement(filePath, arrayPath string, index int, stripQuotes bool) (string, error) {
	if index < 0 {
		return "", errors.NewInvalidArrayIndexError(strconv.Itoa(index))
	}

	arr, err := resolveArray(filePath, arrayPath)
	if err != nil {
		return "", err
	}

	elem, ok := arr.Index(index)
	if !ok {
		return "", errors.NewIndexOutOfBoundsError(arrayPath, index, arr.Len())
	}
	return render(elem, formatter.FormatRaw, formatter.DefaultIndent, stripQuotes)
}

func resolveArray(filePath, arrayPath string) (*models.Value, error) {
	root, err := parser.ParseFile(filePath)
	if err != nil {
		return nil, err
	}
	val, err := tree.Lookup(root, arrayPath)
	if err != nil {
		return nil, err
	}
	if !val.IsArray() {
		return nil, errors.NewNotAnArrayError(arrayPath)
	}
	return val, nil
}

func render(val *models.Value, format formatter.OutputFormat, indent int, stripQuotes bool) (string, error) {
	out, err := newFormatter(indent).Format(val, format)
	if err != nil {
		return "", errors.NewOutputError("failed to format value", err)
	}
	if stripQuotes {
		out = formatter.StripQuotes(out)
	}
	return out, nil
}
