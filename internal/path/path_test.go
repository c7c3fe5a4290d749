package path

import (
	"testing"

	"github.com/mcncl/jfield/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Valid(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected Path
	}{
		{
			name:     "single field",
			input:    "name",
			expected: Path{{Name: "name"}},
		},
		{
			name:     "nested fields",
			input:    "dependencies.serde.version",
			expected: Path{{Name: "dependencies"}, {Name: "serde"}, {Name: "version"}},
		},
		{
			name:     "indexed segment",
			input:    "authors[1]",
			expected: Path{{Name: "authors", Index: 1, Indexed: true}},
		},
		{
			name:  "indexed then field",
			input: "users[0].roles[12].name",
			expected: Path{
				{Name: "users", Index: 0, Indexed: true},
				{Name: "roles", Index: 12, Indexed: true},
				{Name: "name"},
			},
		},
		{
			name:     "non-ascii names",
			input:    "données.clé",
			expected: Path{{Name: "données"}, {Name: "clé"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := Parse(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, p)
			assert.Equal(t, tt.input, p.String())
		})
	}
}

func TestParse_InvalidFieldPath(t *testing.T) {
	for _, input := range []string{"a..b", ".a", "a.", "", ".", "[0]"} {
		t.Run(input, func(t *testing.T) {
			_, err := Parse(input)
			require.Error(t, err)
			assert.True(t, errors.IsType(err, errors.ErrorTypeInvalidFieldPath), "got %v", err)
		})
	}
}

func TestParse_InvalidArrayIndex(t *testing.T) {
	tests := []struct {
		input string
		value string
	}{
		{input: "arr[x]", value: "x"},
		{input: "arr[]", value: ""},
		{input: "arr[-1]", value: "-1"},
		{input: "arr[+1]", value: "+1"},
		{input: "arr[0][1]", value: "0][1"},
		{input: "arr[1.5]", value: "1.5"},
		{input: "arr[0", value: "arr[0"},
		{input: "arr]", value: "arr]"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			_, err := Parse(tt.input)
			require.Error(t, err)

			var appErr *errors.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, errors.ErrorTypeInvalidArrayIndex, appErr.Type)
			assert.Equal(t, tt.value, appErr.Value)
		})
	}
}

func TestParse_DotInsideBracketDoesNotSplit(t *testing.T) {
	// The dot stays within the bracket, so the index text is rejected as a
	// whole rather than producing an empty segment.
	_, err := Parse("arr[1.2].x")
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.ErrorTypeInvalidArrayIndex))
}

func TestMustParse(t *testing.T) {
	assert.Equal(t, Path{{Name: "version"}}, MustParse("version"))
	assert.Panics(t, func() { MustParse("a..b") })
}
