// Package path parses field path expressions such as
// "dependencies.serde.version" or "authors[0].name".
package path

import (
	"strconv"
	"strings"

	"github.com/mcncl/jfield/internal/errors"
)

// Segment is one step of a Path. When Indexed is set the segment addresses
// element Index of the array stored under Name in the parent object.
type Segment struct {
	Name    string
	Index   int
	Indexed bool
}

// String renders the segment back into path syntax
func (s Segment) String() string {
	if s.Indexed {
		return s.Name + "[" + strconv.Itoa(s.Index) + "]"
	}
	return s.Name
}

// Path is a non-empty sequence of segments.
type Path []Segment

// String renders the path back into path syntax
func (p Path) String() string {
	parts := make([]string, len(p))
	for i, seg := range p {
		parts[i] = seg.String()
	}
	return strings.Join(parts, ".")
}

// Parse splits a path on '.', except inside brackets, and decodes each chunk
// into a Segment.
func Parse(expr string) (Path, error) {
	if expr == "" {
		return nil, errors.NewInvalidFieldPathError(expr, errors.ErrEmptyPath)
	}

	chunks, err := split(expr)
	if err != nil {
		return nil, err
	}

	p := make(Path, 0, len(chunks))
	for _, chunk := range chunks {
		seg, err := parseSegment(chunk)
		if err != nil {
			return nil, err
		}
		p = append(p, seg)
	}
	return p, nil
}

// MustParse is like Parse but panics on error. Intended for fixed paths.
func MustParse(expr string) Path {
	p, err := Parse(expr)
	if err != nil {
		panic(err)
	}
	return p
}

func split(expr string) ([]string, error) {
	var (
		chunks  []string
		current strings.Builder
		inIndex bool
	)

	for _, r := range expr {
		switch {
		case r == '.' && !inIndex:
			if current.Len() == 0 {
				return nil, errors.NewInvalidFieldPathError(expr, errors.ErrEmptySegment)
			}
			chunks = append(chunks, current.String())
			current.Reset()
		case r == '[':
			inIndex = true
			current.WriteRune(r)
		case r == ']':
			inIndex = false
			current.WriteRune(r)
		default:
			current.WriteRune(r)
		}
	}

	if current.Len() == 0 {
		return nil, errors.NewInvalidFieldPathError(expr, errors.ErrTrailingDot)
	}
	return append(chunks, current.String()), nil
}

func parseSegment(chunk string) (Segment, error) {
	open := strings.IndexByte(chunk, '[')
	if open < 0 {
		if strings.IndexByte(chunk, ']') >= 0 {
			return Segment{}, errors.NewInvalidArrayIndexError(chunk)
		}
		return Segment{Name: chunk}, nil
	}

	if !strings.HasSuffix(chunk, "]") {
		return Segment{}, errors.NewInvalidArrayIndexError(chunk)
	}

	name := chunk[:open]
	if name == "" {
		return Segment{}, errors.NewInvalidFieldPathError(chunk, errors.ErrEmptySegment)
	}

	indexText := chunk[open+1 : len(chunk)-1]
	index, err := parseIndex(indexText)
	if err != nil {
		return Segment{}, errors.NewInvalidArrayIndexError(indexText)
	}
	return Segment{Name: name, Index: index, Indexed: true}, nil
}

// parseIndex accepts only ASCII digits; signs, spaces and nested brackets
// are rejected.
func parseIndex(s string) (int, error) {
	if s == "" {
		return 0, strconv.ErrSyntax
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, strconv.ErrSyntax
		}
	}
	n, err := strconv.ParseUint(s, 10, 31)
	if err != nil {
		return 0, err
	}
	return int(n), nil
}
