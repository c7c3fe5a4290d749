package parser

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	stderrors "errors" // Standard errors package

	"github.com/mcncl/jfield/internal/errors" // Custom errors package
	"github.com/mcncl/jfield/internal/models"
)

// StdinName is the file name that selects standard input.
const StdinName = "-"

// Parse reads a single JSON document from reader. name identifies the
// source in error messages.
func Parse(reader io.Reader, name string) (*models.Value, error) {
	root, err := models.Decode(reader)
	if err == nil {
		return root, nil
	}

	if stderrors.Is(err, io.EOF) {
		return nil, errors.NewInvalidJSONError(name, errors.ErrEmptyInput)
	}
	if stderrors.Is(err, models.ErrTrailingData) {
		return nil, errors.NewInvalidJSONError(name, errors.ErrMultipleJSON)
	}

	var syntaxError *json.SyntaxError
	if stderrors.As(err, &syntaxError) {
		return nil, errors.NewInvalidJSONError(name, fmt.Errorf("%w at offset %d: %v", errors.ErrInvalidJSON, syntaxError.Offset, syntaxError))
	}
	if stderrors.Is(err, io.ErrUnexpectedEOF) {
		return nil, errors.NewInvalidJSONError(name, fmt.Errorf("%w: unexpected end of input", errors.ErrInvalidJSON))
	}
	return nil, errors.NewInvalidJSONError(name, err)
}

// ParseString parses a document held in memory
func ParseString(jsonString string, name string) (*models.Value, error) {
	if strings.TrimSpace(jsonString) == "" {
		return nil, errors.NewInputError("input string is empty", errors.ErrEmptyInput)
	}
	return Parse(strings.NewReader(jsonString), name)
}

// ParseFile parses the document stored at filePath. "-" reads stdin.
func ParseFile(filePath string) (*models.Value, error) {
	raw, err := ReadSource(filePath)
	if err != nil {
		return nil, err
	}
	return Parse(strings.NewReader(raw), SourceName(filePath))
}

// SourceName is the name used for filePath in messages
func SourceName(filePath string) string {
	if filePath == StdinName {
		return "<stdin>"
	}
	return filePath
}

// ReadSource returns the raw text of a document. "-" reads stdin.
func ReadSource(filePath string) (string, error) {
	if strings.TrimSpace(filePath) == "" {
		return "", errors.NewInputError("file path is empty", errors.ErrInvalidFilePath)
	}
	if filePath == StdinName {
		return readStdin()
	}

	file, err := os.Open(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return "", errors.NewFileNotFoundError(filePath)
		}
		return "", errors.NewInputError(
			fmt.Sprintf("failed to open file '%s'", filePath),
			err,
		)
	}
	defer func() {
		if err := file.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "Error closing file: %v\n", err)
		}
	}()

	stat, err := file.Stat()
	if err != nil {
		return "", errors.NewInputError(
			fmt.Sprintf("failed to get file stats for '%s'", filePath),
			err,
		)
	}
	if stat.IsDir() {
		return "", errors.NewInputError(
			fmt.Sprintf("'%s' is a directory", filePath),
			errors.ErrInvalidFilePath,
		)
	}
	if stat.Size() == 0 {
		return "", errors.NewInputError(
			fmt.Sprintf("input file '%s' is empty", filePath),
			errors.ErrFileEmpty,
		)
	}

	data, err := io.ReadAll(file)
	if err != nil {
		return "", errors.NewInputError(
			fmt.Sprintf("failed to read file '%s'", filePath),
			err,
		)
	}
	return string(data), nil
}

func readStdin() (string, error) {
	stdinInfo, err := os.Stdin.Stat()
	if err != nil {
		return "", errors.NewInputError("failed to access stdin", err)
	}
	if (stdinInfo.Mode() & os.ModeCharDevice) != 0 {
		// Terminal is interactive, nothing was piped in
		return "", errors.NewInputError("no input provided", errors.ErrNoInput)
	}

	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", errors.NewInputError("failed to read from stdin", err)
	}
	if len(data) == 0 {
		return "", errors.NewInputError("empty input received from stdin", errors.ErrEmptyInput)
	}
	return string(data), nil
}
