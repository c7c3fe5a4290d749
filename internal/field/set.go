package field

import (
	"fmt"
	"log/slog"
	"os"

	jsonpatch "github.com/evanphx/json-patch/v5"
	"github.com/pmezard/go-difflib/difflib"

	"github.com/mcncl/jfield/internal/coerce"
	"github.com/mcncl/jfield/internal/errors"
	"github.com/mcncl/jfield/internal/models"
	"github.com/mcncl/jfield/internal/parser"
	"github.com/mcncl/jfield/internal/path"
	"github.com/mcncl/jfield/internal/tree"
)

// Change is the result of a write: the document text before and after.
type Change struct {
	FilePath string
	Original string
	// Updated is the re-serialized document, always indented JSON, without
	// a trailing newline.
	Updated string
}

// Contents returns the bytes that Save writes
func (c *Change) Contents() []byte {
	return []byte(c.Updated + "\n")
}

// SetInValue returns a copy of root with the configured field written. root
// itself is never modified, even when the write fails half way.
func SetInValue(root *models.Value, cfg SetConfig) (*models.Value, error) {
	p, err := path.Parse(cfg.FieldPath)
	if err != nil {
		return nil, err
	}

	hint, err := coerce.ParseTypeTag(cfg.ValueType)
	if err != nil {
		return nil, err
	}
	val, err := coerce.Coerce(cfg.Value, hint)
	if err != nil {
		return nil, err
	}

	updated, err := tree.Apply(root, p, val, cfg.CreateMissing)
	if err != nil {
		slog.Debug("field write failed", "file", cfg.FilePath, "path", cfg.FieldPath, "error", err)
		return nil, err
	}
	slog.Debug("field written", "file", cfg.FilePath, "path", cfg.FieldPath, "kind", val.Kind().String(), "create_missing", cfg.CreateMissing)
	return updated, nil
}

// Update reads the configured file, writes the field and returns both
// versions of the document. Nothing is persisted.
func Update(cfg SetConfig) (*Change, error) {
	raw, err := parser.ReadSource(cfg.FilePath)
	if err != nil {
		return nil, err
	}
	root, err := parser.ParseString(raw, parser.SourceName(cfg.FilePath))
	if err != nil {
		return nil, err
	}

	updated, err := SetInValue(root, cfg)
	if err != nil {
		return nil, err
	}

	text, err := newFormatter(cfg.Indent).Pretty(updated)
	if err != nil {
		return nil, errors.NewOutputError("failed to serialize document", err)
	}

	return &Change{
		FilePath: cfg.FilePath,
		Original: raw,
		Updated:  text,
	}, nil
}

// SetField writes a field and returns the updated document text
func SetField(cfg SetConfig) (string, error) {
	change, err := Update(cfg)
	if err != nil {
		return "", err
	}
	return change.Updated, nil
}

// SetFieldAndSave writes a field and persists the file
func SetFieldAndSave(cfg SetConfig) error {
	if cfg.FilePath == parser.StdinName {
		return errors.NewOutputError("cannot modify stdin in place", errors.ErrInvalidFilePath)
	}
	change, err := Update(cfg)
	if err != nil {
		return err
	}
	return change.Save()
}

// Save writes the updated document over the original file, keeping its
// permissions.
func (c *Change) Save() error {
	mode := os.FileMode(0o644)
	if stat, err := os.Stat(c.FilePath); err == nil {
		mode = stat.Mode().Perm()
	}

	if err := os.WriteFile(c.FilePath, c.Contents(), mode); err != nil {
		return errors.NewOutputError(fmt.Sprintf("failed to write to file '%s'", c.FilePath), err)
	}
	slog.Debug("document saved", "file", c.FilePath, "bytes", len(c.Updated)+1)
	return nil
}

// Changed reports whether the write altered the document's content
func (c *Change) Changed() bool {
	return !jsonpatch.Equal([]byte(c.Original), []byte(c.Updated))
}

// Diff renders a unified diff between the original file text and the text
// that Save would write.
func (c *Change) Diff() (string, error) {
	name := parser.SourceName(c.FilePath)
	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(c.Original),
		B:        difflib.SplitLines(string(c.Contents())),
		FromFile: "a/" + name,
		ToFile:   "b/" + name,
		Context:  3,
	})
	if err != nil {
		return "", errors.NewOutputError("failed to compute diff", err)
	}
	return diff, nil
}

// MergePatch returns the RFC 7386 merge patch that turns the original
// document into the updated one.
func (c *Change) MergePatch() (string, error) {
	patch, err := jsonpatch.CreateMergePatch([]byte(c.Original), []byte(c.Updated))
	if err != nil {
		return "", errors.NewOutputError("failed to compute merge patch", err)
	}
	return string(patch), nil
}
