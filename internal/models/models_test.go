package models

import (
	"encoding/json"
	"io"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnmarshal_PreservesKeyOrder(t *testing.T) {
	val, err := Unmarshal([]byte(`{"zeta": 1, "alpha": 2, "mid": {"b": true, "a": null}}`))
	require.NoError(t, err)
	require.True(t, val.IsObject())

	assert.Equal(t, []string{"zeta", "alpha", "mid"}, val.Object().Keys())

	mid, ok := val.Object().Get("mid")
	require.True(t, ok)
	assert.Equal(t, []string{"b", "a"}, mid.Object().Keys())
}

func TestUnmarshal_NumberKinds(t *testing.T) {
	tests := []struct {
		name  string
		input string
		kind  Kind
	}{
		{name: "integer", input: `42`, kind: KindInt},
		{name: "negative integer", input: `-7`, kind: KindInt},
		{name: "decimal", input: `42.5`, kind: KindFloat},
		{name: "integral decimal", input: `42.0`, kind: KindFloat},
		{name: "exponent", input: `1e3`, kind: KindFloat},
		{name: "int64 overflow", input: `9223372036854775808`, kind: KindFloat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			val, err := Unmarshal([]byte(tt.input))
			require.NoError(t, err)
			assert.Equal(t, tt.kind, val.Kind())
		})
	}
}

func TestUnmarshal_Errors(t *testing.T) {
	_, err := Unmarshal([]byte(``))
	assert.ErrorIs(t, err, io.EOF)

	_, err = Unmarshal([]byte(`{"a": 1} {"b": 2}`))
	assert.ErrorIs(t, err, ErrTrailingData)

	_, err = Unmarshal([]byte(`{"invalid": json}`))
	var syntaxErr *json.SyntaxError
	assert.ErrorAs(t, err, &syntaxErr)

	_, err = Unmarshal([]byte(`1e400`))
	assert.Error(t, err)
}

func TestUnmarshal_DuplicateKeyKeepsFirstPosition(t *testing.T) {
	val, err := Unmarshal([]byte(`{"a": 1, "b": 2, "a": 3}`))
	require.NoError(t, err)

	assert.Equal(t, []string{"a", "b"}, val.Object().Keys())
	a, _ := val.Object().Get("a")
	n, _ := a.AsInt()
	assert.Equal(t, int64(3), n)
}

func TestMarshalJSON_Compact(t *testing.T) {
	input := `{"name":"jfield","tags":["a","b"],"n":1,"f":2.5,"whole":3.0,"ok":true,"none":null,"html":"<a&b>"}`
	val, err := Unmarshal([]byte(input))
	require.NoError(t, err)

	out, err := val.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, input, string(out))
}

func TestMarshalIndent(t *testing.T) {
	val, err := Unmarshal([]byte(`{"authors":["Alice","Bob"],"empty":{}}`))
	require.NoError(t, err)

	out, err := MarshalIndent(val, "  ")
	require.NoError(t, err)

	expected := "{\n  \"authors\": [\n    \"Alice\",\n    \"Bob\"\n  ],\n  \"empty\": {}\n}"
	assert.Equal(t, expected, string(out))
}

func TestMarshalJSON_ViaEncodingJSON(t *testing.T) {
	val := NewObject()
	val.Object().Set("b", Int(1))
	val.Object().Set("a", Array(String("x")))

	out, err := json.Marshal(val)
	require.NoError(t, err)
	assert.Equal(t, `{"b":1,"a":["x"]}`, string(out))
}

func TestFormatFloat(t *testing.T) {
	tests := []struct {
		input    float64
		expected string
	}{
		{42.5, "42.5"},
		{42, "42.0"},
		{-0.25, "-0.25"},
		{1e21, "1e+21"},
		{1e-7, "1e-07"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			out, err := FormatFloat(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, out)
		})
	}

	_, err := FormatFloat(math.NaN())
	assert.Error(t, err)
	_, err = FormatFloat(math.Inf(1))
	assert.Error(t, err)
}

func TestClone_IsDeep(t *testing.T) {
	orig, err := Unmarshal([]byte(`{"a":{"b":[1,2]}}`))
	require.NoError(t, err)

	cp := orig.Clone()
	a, _ := cp.Object().Get("a")
	b, _ := a.Object().Get("b")
	b.Append(Int(3))
	a.Object().Set("c", String("new"))

	assert.False(t, orig.Equal(cp))
	out, err := orig.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `{"a":{"b":[1,2]}}`, string(out))
}

func TestEqual(t *testing.T) {
	a, err := Unmarshal([]byte(`{"x":1,"y":[true,null]}`))
	require.NoError(t, err)
	b, err := Unmarshal([]byte(`{"y":[true,null],"x":1}`))
	require.NoError(t, err)

	assert.True(t, a.Equal(b), "key order is not significant")
	assert.False(t, Int(1).Equal(Float(1)), "integers and floats are distinct")
	assert.True(t, Null().Equal(nil))
	assert.False(t, String("1").Equal(Int(1)))
}

func TestReplace(t *testing.T) {
	root, err := Unmarshal([]byte(`{"a":"scalar"}`))
	require.NoError(t, err)

	a, _ := root.Object().Get("a")
	a.Replace(NewObject())
	a.Object().Set("b", Int(1))

	out, err := root.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `{"a":{"b":1}}`, string(out))
}

func TestAccessors(t *testing.T) {
	var nilValue *Value
	assert.Equal(t, KindNull, nilValue.Kind())
	assert.Equal(t, 0, nilValue.Len())

	f, ok := Int(4).AsFloat()
	assert.True(t, ok)
	assert.Equal(t, 4.0, f)

	_, ok = String("x").AsInt()
	assert.False(t, ok)

	arr := Array(Int(1), Int(2))
	second, ok := arr.Index(1)
	require.True(t, ok)
	n, _ := second.AsInt()
	assert.Equal(t, int64(2), n)

	_, ok = arr.Index(2)
	assert.False(t, ok)
	assert.Equal(t, "object", KindObject.String())
}
