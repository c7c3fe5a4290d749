// Package coerce turns raw command-line literals into typed JSON values.
package coerce

import (
	"math"
	"strconv"
	"strings"

	"github.com/mcncl/jfield/internal/errors"
	"github.com/mcncl/jfield/internal/models"
)

// TypeTag forces a literal to a specific JSON type.
type TypeTag string

const (
	TypeString  TypeTag = "string"
	TypeInteger TypeTag = "integer"
	TypeFloat   TypeTag = "float"
	TypeBoolean TypeTag = "boolean"
	TypeNull    TypeTag = "null"
)

// TypeAuto is accepted by ParseTypeTag and means "no hint".
const TypeAuto = "auto"

// maxExactInt is 2^53, the first integer a float64 can no longer step by one.
const maxExactInt = 1 << 53

// ParseTypeTag maps a type name to a tag. "auto" and "" yield nil.
func ParseTypeTag(name string) (*TypeTag, error) {
	switch strings.ToLower(name) {
	case "", TypeAuto:
		return nil, nil
	case "string", "str":
		return tagPtr(TypeString), nil
	case "integer", "int":
		return tagPtr(TypeInteger), nil
	case "float", "number":
		return tagPtr(TypeFloat), nil
	case "boolean", "bool":
		return tagPtr(TypeBoolean), nil
	case "null":
		return tagPtr(TypeNull), nil
	}
	return nil, errors.NewInvalidValueTypeError(name, "type name")
}

func tagPtr(t TypeTag) *TypeTag { return &t }

// Coerce converts raw into a JSON value. With a hint the conversion is
// strict; without one the type is detected.
func Coerce(raw string, hint *TypeTag) (*models.Value, error) {
	if hint == nil {
		return detect(raw), nil
	}

	switch *hint {
	case TypeString:
		return models.String(raw), nil
	case TypeInteger:
		i, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, errors.NewInvalidValueTypeError(raw, string(TypeInteger))
		}
		return models.Int(i), nil
	case TypeFloat:
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return nil, errors.NewInvalidValueTypeError(raw, string(TypeFloat))
		}
		return models.Float(f), nil
	case TypeBoolean:
		if b, ok := parseBool(raw); ok {
			return models.Bool(b), nil
		}
		return nil, errors.NewInvalidValueTypeError(raw, string(TypeBoolean))
	case TypeNull:
		return models.Null(), nil
	}
	return nil, errors.NewInvalidValueTypeError(raw, string(*hint))
}

// detect tries, in order: a complete JSON literal, true/false, null, an
// integer, a float, and finally falls back to the raw string.
func detect(raw string) *models.Value {
	if val, err := models.Unmarshal([]byte(raw)); err == nil {
		return foldFloat(val)
	}
	if b, ok := parseBool(raw); ok {
		return models.Bool(b)
	}
	if strings.EqualFold(raw, "null") {
		return models.Null()
	}
	if i, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return models.Int(i)
	}
	if f, err := strconv.ParseFloat(raw, 64); err == nil && !math.IsNaN(f) && !math.IsInf(f, 0) {
		return foldFloat(models.Float(f))
	}
	return models.String(raw)
}

// foldFloat stores a whole float below 2^53 as an integer. Other values are
// returned unchanged.
func foldFloat(val *models.Value) *models.Value {
	if val.Kind() != models.KindFloat {
		return val
	}
	f, _ := val.AsFloat()
	if f == math.Trunc(f) && math.Abs(f) < maxExactInt {
		return models.Int(int64(f))
	}
	return val
}

func parseBool(raw string) (bool, bool) {
	switch {
	case strings.EqualFold(raw, "true"):
		return true, true
	case strings.EqualFold(raw, "false"):
		return false, true
	}
	return false, false
}
