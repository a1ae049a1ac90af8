// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package samples provides example input for the converter: a built-in
// example plus named snippets loaded from a directory of plain-text files.
// Each file in the directory is one sample: the filename without its
// extension is the name and the file contents (trimmed) are the text.
package samples

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// DefaultName selects the built-in example.
const DefaultName = "default"

// Example is the built-in sample text: two display equations in bracket
// notation.
const Example = `Here is an equation: \[E = mc^2\] and another one: \[\sum_{i=1}^{n} x_i = \frac{n(n+1)}{2}\]`

// Load reads all files in dir and returns a map of sample name to trimmed
// contents. A missing directory is not an error; Load returns an empty map.
// Unreadable files produce a warning on stderr but do not abort.
func Load(dir string) (map[string]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]string{}, nil
		}
		return nil, fmt.Errorf("reading samples directory %s: %w", dir, err)
	}

	samples := make(map[string]string)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if strings.HasPrefix(name, ".") {
			continue
		}

		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: could not read sample %s: %v\n", name, err)
			continue
		}

		value := strings.TrimSpace(string(data))
		if value != "" {
			samples[strings.TrimSuffix(name, filepath.Ext(name))] = value
		}
	}

	return samples, nil
}

// Lookup returns the sample called name. An empty name or DefaultName
// returns Example unless dir defines a sample with that name.
func Lookup(dir, name string) (string, error) {
	all, err := Load(dir)
	if err != nil {
		return "", err
	}
	if name == "" {
		name = DefaultName
	}
	if text, ok := all[name]; ok {
		return text, nil
	}
	if name == DefaultName {
		return Example, nil
	}
	return "", fmt.Errorf("unknown sample %q (available: %s)", name, strings.Join(Names(all), ", "))
}

// Names returns the sorted sample names in all, always including DefaultName.
func Names(all map[string]string) []string {
	names := []string{DefaultName}
	for k := range all {
		if k != DefaultName {
			names = append(names, k)
		}
	}
	sort.Strings(names[1:])
	return names
}
