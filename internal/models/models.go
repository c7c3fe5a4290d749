// Package models holds the in-memory representation of a JSON document.
package models

// Kind identifies which variant a Value holds.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindInt
	KindFloat
	KindString
	KindArray
	KindObject
)

// String returns the JSON name of the kind
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "boolean"
	case KindInt:
		return "integer"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	default:
		return "unknown"
	}
}

// Value is a JSON value. The zero value is JSON null.
//
// Values are handled through pointers so that containers can be mutated in
// place; replacing a node with Replace rewrites it for every holder of the
// pointer.
type Value struct {
	kind  Kind
	b     bool
	i     int64
	f     float64
	s     string
	items []*Value
	obj   *Object
}

// Object is a JSON object that remembers key insertion order.
type Object struct {
	keys   []string
	fields map[string]*Value
}

// Null returns a new null value
func Null() *Value { return &Value{kind: KindNull} }

// Bool returns a new boolean value
func Bool(b bool) *Value { return &Value{kind: KindBool, b: b} }

// Int returns a new integer number
func Int(i int64) *Value { return &Value{kind: KindInt, i: i} }

// Float returns a new floating-point number
func Float(f float64) *Value { return &Value{kind: KindFloat, f: f} }

// String returns a new string value
func String(s string) *Value { return &Value{kind: KindString, s: s} }

// Array returns a new array holding items
func Array(items ...*Value) *Value {
	if items == nil {
		items = []*Value{}
	}
	return &Value{kind: KindArray, items: items}
}

// NewObject returns a new empty object value
func NewObject() *Value {
	return &Value{kind: KindObject, obj: newObject()}
}

func newObject() *Object {
	return &Object{fields: make(map[string]*Value)}
}

// Kind returns the variant held by v. A nil Value is null.
func (v *Value) Kind() Kind {
	if v == nil {
		return KindNull
	}
	return v.kind
}

func (v *Value) IsNull() bool   { return v.Kind() == KindNull }
func (v *Value) IsArray() bool  { return v.Kind() == KindArray }
func (v *Value) IsObject() bool { return v.Kind() == KindObject }

// AsBool returns the boolean held by v
func (v *Value) AsBool() (bool, bool) {
	if v.Kind() != KindBool {
		return false, false
	}
	return v.b, true
}

// AsInt returns the integer held by v
func (v *Value) AsInt() (int64, bool) {
	if v.Kind() != KindInt {
		return 0, false
	}
	return v.i, true
}

// AsFloat returns the number held by v as a float64; integers are widened.
func (v *Value) AsFloat() (float64, bool) {
	switch v.Kind() {
	case KindFloat:
		return v.f, true
	case KindInt:
		return float64(v.i), true
	}
	return 0, false
}

// AsString returns the string held by v
func (v *Value) AsString() (string, bool) {
	if v.Kind() != KindString {
		return "", false
	}
	return v.s, true
}

// Items returns the elements of an array, or nil for other kinds.
func (v *Value) Items() []*Value {
	if v.Kind() != KindArray {
		return nil
	}
	return v.items
}

// Len returns the number of elements of an array or fields of an object.
func (v *Value) Len() int {
	switch v.Kind() {
	case KindArray:
		return len(v.items)
	case KindObject:
		return v.obj.Len()
	}
	return 0
}

// Index returns the i-th element of an array
func (v *Value) Index(i int) (*Value, bool) {
	if v.Kind() != KindArray || i < 0 || i >= len(v.items) {
		return nil, false
	}
	return v.items[i], true
}

// Append adds elements to the end of an array.
func (v *Value) Append(items ...*Value) {
	if v.Kind() != KindArray {
		return
	}
	v.items = append(v.items, items...)
}

// Object returns the object held by v, or nil for other kinds.
func (v *Value) Object() *Object {
	if v.Kind() != KindObject {
		return nil
	}
	return v.obj
}

// Replace overwrites v in place with a copy of other.
func (v *Value) Replace(other *Value) {
	if other == nil {
		*v = Value{kind: KindNull}
		return
	}
	*v = *other.Clone()
}

// Clone returns a deep copy of v.
func (v *Value) Clone() *Value {
	if v == nil {
		return Null()
	}
	out := &Value{kind: v.kind, b: v.b, i: v.i, f: v.f, s: v.s}
	switch v.kind {
	case KindArray:
		out.items = make([]*Value, len(v.items))
		for i, item := range v.items {
			out.items[i] = item.Clone()
		}
	case KindObject:
		out.obj = newObject()
		for _, key := range v.obj.keys {
			out.obj.Set(key, v.obj.fields[key].Clone())
		}
	}
	return out
}

// Equal reports whether v and other are structurally equal. Object key
// order is not significant; integer and float numbers never compare equal.
func (v *Value) Equal(other *Value) bool {
	if v.Kind() != other.Kind() {
		return false
	}
	switch v.Kind() {
	case KindNull:
		return true
	case KindBool:
		return v.b == other.b
	case KindInt:
		return v.i == other.i
	case KindFloat:
		return v.f == other.f
	case KindString:
		return v.s == other.s
	case KindArray:
		if len(v.items) != len(other.items) {
			return false
		}
		for i := range v.items {
			if !v.items[i].Equal(other.items[i]) {
				return false
			}
		}
		return true
	case KindObject:
		if v.obj.Len() != other.obj.Len() {
			return false
		}
		for _, key := range v.obj.keys {
			theirs, ok := other.obj.fields[key]
			if !ok || !v.obj.fields[key].Equal(theirs) {
				return false
			}
		}
		return true
	}
	return false
}

// Get returns the value stored under key
func (o *Object) Get(key string) (*Value, bool) {
	if o == nil {
		return nil, false
	}
	val, ok := o.fields[key]
	return val, ok
}

// Set inserts or overwrites key. An overwritten key keeps its position.
func (o *Object) Set(key string, val *Value) {
	if val == nil {
		val = Null()
	}
	if _, exists := o.fields[key]; !exists {
		o.keys = append(o.keys, key)
	}
	o.fields[key] = val
}

// Keys returns the keys in insertion order
func (o *Object) Keys() []string {
	if o == nil {
		return nil
	}
	keys := make([]string, len(o.keys))
	copy(keys, o.keys)
	return keys
}

// Len returns the number of fields
func (o *Object) Len() int {
	if o == nil {
		return 0
	}
	return len(o.keys)
}
