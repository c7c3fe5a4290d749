package tree

import (
	"fmt"

	"github.com/mcncl/jfield/internal/errors"
	"github.com/mcncl/jfield/internal/models"
	"github.com/mcncl/jfield/internal/path"
)

// Write installs val at p inside root, mutating root in place.
//
// With createMissing set, absent objects and arrays along the way are
// created, arrays are padded with nulls up to the target index, and a
// non-object node that must hold a field is replaced by an empty object.
// On failure root may already hold containers created before the failing
// segment; use Apply when that matters.
func Write(root *models.Value, p path.Path, val *models.Value, createMissing bool) error {
	return write(root, p, val, createMissing)
}

// Apply performs Write on a copy of root and returns the copy. root is left
// untouched whether or not the write succeeds.
func Apply(root *models.Value, p path.Path, val *models.Value, createMissing bool) (*models.Value, error) {
	out := root.Clone()
	if err := write(out, p, val, createMissing); err != nil {
		return nil, err
	}
	return out, nil
}

func write(current *models.Value, p path.Path, val *models.Value, createMissing bool) error {
	if len(p) == 0 {
		return errors.NewFieldNotFoundError("Empty path")
	}

	seg, rest := p[0], p[1:]
	if seg.Indexed {
		return writeElement(current, seg, rest, val, createMissing)
	}
	return writeField(current, seg, rest, val, createMissing)
}

func writeField(current *models.Value, seg path.Segment, rest path.Path, val *models.Value, createMissing bool) error {
	if !current.IsObject() {
		if !createMissing {
			if len(rest) == 0 {
				return errors.NewNotAnObjectError(seg.Name, fmt.Sprintf("Cannot set field %s on non-object value", seg.Name))
			}
			return errors.NewNotAnObjectError(seg.Name, seg.Name)
		}
		current.Replace(models.NewObject())
	}
	obj := current.Object()

	if len(rest) == 0 {
		obj.Set(seg.Name, val.Clone())
		return nil
	}

	next, ok := obj.Get(seg.Name)
	if !ok {
		if !createMissing {
			return errors.NewNotAnObjectError(seg.Name, fmt.Sprintf("Field %s does not exist", seg.Name))
		}
		next = models.NewObject()
		obj.Set(seg.Name, next)
	}
	return write(next, rest, val, createMissing)
}

// writeElement handles "name[index]". The parent must already be an object
// even under createMissing; only the array itself is created or padded.
func writeElement(current *models.Value, seg path.Segment, rest path.Path, val *models.Value, createMissing bool) error {
	obj := current.Object()
	if obj == nil {
		return errors.NewNotAnObjectError(seg.Name, fmt.Sprintf("Parent of %s is not an object", seg.Name))
	}

	arr, ok := obj.Get(seg.Name)
	if !ok {
		arr = models.Array()
		obj.Set(seg.Name, arr)
	}
	if !arr.IsArray() {
		return errors.NewNotAnArrayError(seg.Name)
	}

	if createMissing {
		for arr.Len() <= seg.Index {
			arr.Append(models.Null())
		}
	}

	elem, ok := arr.Index(seg.Index)
	if !ok {
		return errors.NewIndexOutOfBoundsError(seg.Name, seg.Index, arr.Len())
	}

	if len(rest) == 0 {
		elem.Replace(val)
		return nil
	}
	return write(elem, rest, val, createMissing)
}
