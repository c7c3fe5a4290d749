package field

import (
	"github.com/mcncl/jfield/internal/formatter"
	"github.com/mcncl/jfield/internal/parser"
)

func presetFile(filePath string) string {
	if filePath == "" {
		return DefaultFile
	}
	return filePath
}

// GetPackageName returns the unquoted "name" of a package.json file.
// An empty filePath means package.json in the working directory.
func GetPackageName(filePath string) (string, error) {
	return ExtractField(ExtractConfig{
		FilePath:     presetFile(filePath),
		FieldPath:    "name",
		OutputFormat: formatter.FormatRaw,
		StripQuotes:  true,
	})
}

// GetPackageVersion returns the unquoted "version" of a package.json file
func GetPackageVersion(filePath string) (string, error) {
	return ExtractField(ExtractConfig{
		FilePath:     presetFile(filePath),
		FieldPath:    "version",
		OutputFormat: formatter.FormatRaw,
		StripQuotes:  true,
	})
}

// GetDependencies returns the "dependencies" section as name -> version.
// A missing or non-object section yields an empty map; non-string versions
// map to "".
func GetDependencies(filePath string) (map[string]string, error) {
	list, err := ListDependencies(filePath)
	if err != nil {
		return nil, err
	}

	deps := make(map[string]string, len(list))
	for _, dep := range list {
		deps[dep.Path] = dep.Value
	}
	return deps, nil
}

// ListDependencies is GetDependencies in file order. Each FieldValue holds
// the package name in Path and its version in Value.
func ListDependencies(filePath string) ([]FieldValue, error) {
	root, err := parser.ParseFile(presetFile(filePath))
	if err != nil {
		return nil, err
	}

	section, ok := root.Object().Get("dependencies")
	if !ok || !section.IsObject() {
		return nil, nil
	}

	obj := section.Object()
	list := make([]FieldValue, 0, obj.Len())
	for _, name := range obj.Keys() {
		val, _ := obj.Get(name)
		version, _ := val.AsString()
		list = append(list, FieldValue{Path: name, Value: version})
	}
	return list, nil
}
