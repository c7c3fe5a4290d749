// Package tree navigates and mutates parsed documents along a path.
package tree

import (
	"github.com/mcncl/jfield/internal/errors"
	"github.com/mcncl/jfield/internal/models"
	"github.com/mcncl/jfield/internal/path"
)

// Resolve follows p from root and returns the value it addresses. The
// document is never modified.
func Resolve(root *models.Value, p path.Path) (*models.Value, error) {
	current := root
	for _, seg := range p {
		next, ok := current.Object().Get(seg.Name)
		if !ok {
			return nil, errors.NewFieldNotFoundError(seg.Name)
		}

		if !seg.Indexed {
			current = next
			continue
		}

		if !next.IsArray() {
			return nil, errors.NewNotAnArrayError(seg.Name)
		}
		elem, ok := next.Index(seg.Index)
		if !ok {
			return nil, errors.NewIndexOutOfBoundsError(seg.Name, seg.Index, next.Len())
		}
		current = elem
	}
	return current, nil
}

// Lookup parses expr and resolves it against root.
func Lookup(root *models.Value, expr string) (*models.Value, error) {
	p, err := path.Parse(expr)
	if err != nil {
		return nil, err
	}
	return Resolve(root, p)
}
