package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcncl/jfield/internal/errors"
)

const testPackage = `{
  "name": "test-package",
  "version": "1.2.3",
  "authors": ["Alice", "Bob"],
  "dependencies": {"left-pad": "^1.3.0", "lodash": "4.17.21"}
}`

// setupDir moves the test into an empty directory holding package.json so
// that no config file from the surrounding tree is picked up.
func setupDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	chdir(t, dir)
	file := filepath.Join(dir, "package.json")
	require.NoError(t, os.WriteFile(file, []byte(testPackage), 0o644))
	return file
}

func runCLI(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	err := execute(args, &stdout, &stderr)
	return stdout.String(), stderr.String(), err
}

func TestRun_Get(t *testing.T) {
	file := setupDir(t)

	tests := []struct {
		name     string
		args     []string
		expected string
	}{
		{
			name:     "default file",
			args:     []string{"get", "-k", "name"},
			expected: "\"test-package\"\n",
		},
		{
			name:     "strip quotes",
			args:     []string{"get", "-f", file, "-k", "version", "-s"},
			expected: "1.2.3\n",
		},
		{
			name:     "multiple keys",
			args:     []string{"get", "-k", "name", "-k", "authors[1]", "-s"},
			expected: "test-package\nBob\n",
		},
		{
			name:     "pretty array",
			args:     []string{"get", "-k", "authors", "-o", "json-pretty"},
			expected: "[\n  \"Alice\",\n  \"Bob\"\n]\n",
		},
		{
			name:     "yaml",
			args:     []string{"get", "-k", "authors", "-o", "yaml"},
			expected: "- Alice\n- Bob\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _, err := runCLI(t, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, out)
		})
	}
}

func TestRun_GetErrors(t *testing.T) {
	setupDir(t)

	_, _, err := runCLI(t, "get", "-k", "missing")
	require.Error(t, err)
	assert.Equal(t, "Field not found: missing", errors.UserFriendlyError(err))

	_, _, err = runCLI(t, "get", "-k", "authors[2]")
	require.Error(t, err)
	assert.Equal(t, "Array index out of bounds: authors[2], array length: 2", errors.UserFriendlyError(err))

	_, _, err = runCLI(t, "get", "-k", "name", "-o", "xml")
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.ErrorTypeConfig))

	_, _, err = runCLI(t, "get", "-f", "nope.json", "-k", "name")
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.ErrorTypeFileNotFound))
}

func TestRun_Set(t *testing.T) {
	file := setupDir(t)

	out, _, err := runCLI(t, "set", "-k", "authors[0]", "-v", "Charlie")
	require.NoError(t, err)
	assert.Contains(t, out, "\"Charlie\"")

	// Printing does not modify the file.
	raw, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.Equal(t, testPackage, string(raw))
}

func TestRun_SetInPlace(t *testing.T) {
	file := setupDir(t)

	out, stderr, err := runCLI(t, "set", "-k", "version", "-v", "2.0.0", "-i")
	require.NoError(t, err)
	assert.Empty(t, out)
	assert.Contains(t, stderr, "Field 'version' set to '2.0.0' in package.json")

	got, _, err := runCLI(t, "version", "-f", file)
	require.NoError(t, err)
	assert.Equal(t, "2.0.0\n", got)
}

func TestRun_SetCreateMissingAndTypes(t *testing.T) {
	setupDir(t)

	_, _, err := runCLI(t, "set", "-k", "config.port", "-v", "8080")
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.ErrorTypeNotAnObject))

	_, _, err = runCLI(t, "set", "-k", "config.port", "-v", "8080", "--create-missing", "-i")
	require.NoError(t, err)

	out, _, err := runCLI(t, "get", "-k", "config")
	require.NoError(t, err)
	assert.Equal(t, "{\"port\":8080}\n", out)

	_, _, err = runCLI(t, "set", "-k", "config.port", "-v", "eighty", "-t", "integer")
	require.Error(t, err)
	assert.Equal(t, "Invalid value type: eighty is not a valid integer", errors.UserFriendlyError(err))
}

func TestRun_SetDiffAndPatch(t *testing.T) {
	file := setupDir(t)

	out, _, err := runCLI(t, "set", "-k", "name", "-v", "renamed", "--diff")
	require.NoError(t, err)
	assert.Contains(t, out, "-  \"name\": \"test-package\",")
	assert.Contains(t, out, "+  \"name\": \"renamed\",")

	out, _, err = runCLI(t, "set", "-k", "name", "-v", "renamed", "--patch")
	require.NoError(t, err)
	assert.Equal(t, "{\"name\":\"renamed\"}\n", out)

	raw, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.Equal(t, testPackage, string(raw))
}

func TestRun_SetStdinInPlace(t *testing.T) {
	setupDir(t)

	_, _, err := runCLI(t, "set", "-f", "-", "-k", "a", "-v", "1", "-i")
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.ErrorTypeOutput))
}

func TestRun_LengthAndElement(t *testing.T) {
	setupDir(t)

	out, _, err := runCLI(t, "length", "-k", "authors")
	require.NoError(t, err)
	assert.Equal(t, "2\n", out)

	out, _, err = runCLI(t, "element", "-k", "authors", "-n", "1", "-s")
	require.NoError(t, err)
	assert.Equal(t, "Bob\n", out)

	_, _, err = runCLI(t, "length", "-k", "name")
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.ErrorTypeNotAnArray))
}

func TestRun_Presets(t *testing.T) {
	setupDir(t)

	out, _, err := runCLI(t, "name")
	require.NoError(t, err)
	assert.Equal(t, "test-package\n", out)

	out, _, err = runCLI(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "1.2.3\n", out)

	out, _, err = runCLI(t, "deps")
	require.NoError(t, err)
	assert.Equal(t, "left-pad: ^1.3.0\nlodash: 4.17.21\n", out)
}

func TestRun_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "app.json"), []byte(`{"name": "from-config"}`), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".jfield.yml"), []byte("file: app.json\nstrip_quotes: true\n"), 0o644))

	out, _, err := runCLI(t, "get", "-k", "name")
	require.NoError(t, err)
	assert.Equal(t, "from-config\n", out)

	t.Setenv("JFIELD_STRIP_QUOTES", "false")
	out, _, err = runCLI(t, "get", "-k", "name")
	require.NoError(t, err)
	assert.Equal(t, "\"from-config\"\n", out)
}

func TestRun_InvalidConfig(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	configPath := filepath.Join(dir, "bad.yml")
	require.NoError(t, os.WriteFile(configPath, []byte("indent: 42\n"), 0o644))

	_, _, err := runCLI(t, "--config", configPath, "get", "-k", "name")
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.ErrorTypeConfig))
}

func TestRun_UnknownCommand(t *testing.T) {
	setupDir(t)

	_, _, err := runCLI(t, "frobnicate")
	assert.Error(t, err)
}

// chdir changes the working directory for the duration of the test,
// restoring it on cleanup (equivalent of testing.T.Chdir, added in Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	orig, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(orig) })
}
