// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pdiddy/latex-converter/pkg/types"
)

// ExpandPaths turns the command-line arguments into a list of sources.
// Regular files are kept as given, whatever their extension, and named by
// their base name. Directories are walked recursively and contribute files
// whose extension is in exts (case-insensitive), named by their path below
// the directory; hidden entries below them are skipped. The result keeps
// argument order, with directory contents sorted.
func ExpandPaths(args []string, exts []string) ([]types.Source, error) {
	allowed := make(map[string]bool, len(exts))
	for _, e := range exts {
		e = strings.ToLower(e)
		if !strings.HasPrefix(e, ".") {
			e = "." + e
		}
		allowed[e] = true
	}

	var sources []types.Source
	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", arg, err)
		}
		if !info.IsDir() {
			sources = append(sources, types.Source{Path: arg, Rel: filepath.Base(arg)})
			continue
		}

		var found []string
		err = filepath.WalkDir(arg, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if path != arg && strings.HasPrefix(d.Name(), ".") {
				if d.IsDir() {
					return filepath.SkipDir
				}
				return nil
			}
			if d.IsDir() {
				return nil
			}
			if allowed[strings.ToLower(filepath.Ext(path))] {
				found = append(found, path)
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("walking %s: %w", arg, err)
		}
		sort.Strings(found)
		for _, p := range found {
			rel, err := filepath.Rel(arg, p)
			if err != nil {
				return nil, fmt.Errorf("naming %s: %w", p, err)
			}
			sources = append(sources, types.Source{Path: p, Rel: rel})
		}
	}
	return sources, nil
}
