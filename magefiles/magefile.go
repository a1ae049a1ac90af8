// Package main contains Mage build targets for latex-converter developer tooling.
package main

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	binDir     = "bin"
	binName    = "latex-converter"
	cmdPkg     = "./cmd/latex-converter"
	samplesDir = "samples"
)

// starterSamples seeds the samples directory for the example command.
var starterSamples = map[string]string{
	"euler.tex":      `Euler's identity: \[e^{i\pi} + 1 = 0\]`,
	"gauss.tex":      `The Gaussian integral \[\int_{-\infty}^{\infty} e^{-x^2}\,dx = \sqrt{\pi}\] converges.`,
	"unbalanced.tex": `An opening bracket with no partner \[x^2 is still converted.`,
}

// Init creates the samples directory with a few starter samples. Existing
// files are left untouched.
func Init() error {
	if err := os.MkdirAll(samplesDir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", samplesDir, err)
	}
	for name, text := range starterSamples {
		path := filepath.Join(samplesDir, name)
		if _, err := os.Stat(path); err == nil {
			continue
		}
		if err := os.WriteFile(path, []byte(text+"\n"), 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", path, err)
		}
		fmt.Println("  ", path)
	}
	fmt.Println("Samples initialized.")
	return nil
}

// Build compiles the CLI binary into bin/.
func Build() error {
	if err := os.MkdirAll(binDir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", binDir, err)
	}
	out := filepath.Join(binDir, binName)
	version, err := sh.Output("git", "describe", "--tags", "--always", "--dirty")
	if err != nil {
		version = "dev"
	}
	ldflags := "-X main.version=" + version
	if err := sh.RunV("go", "build", "-ldflags", ldflags, "-o", out, cmdPkg); err != nil {
		return fmt.Errorf("go build: %w", err)
	}
	fmt.Printf("Built %s\n", out)
	return nil
}

// Test runs the unit tests with the race detector.
func Test() error {
	return sh.RunV("go", "test", "-race", "./...")
}

// Example builds the CLI and previews the built-in example.
func Example() error {
	mg.Deps(Build)
	return sh.RunV(filepath.Join(binDir, binName), "example", "--preview")
}

// Clean removes build output.
func Clean() error {
	return sh.Rm(binDir)
}

// Stats prints project metrics: Go production/test LOC and documentation word count.
func Stats() error {
	m, err := collectMetrics(".")
	if err != nil {
		return err
	}
	fmt.Printf("Lines of code (Go, production): %d\n", m.prodLines)
	fmt.Printf("Lines of code (Go, tests):      %d\n", m.testLines)
	fmt.Printf("Words (documentation):           %d\n", m.docWords)
	return nil
}

type metrics struct {
	prodLines, testLines, docWords int
}

// collectMetrics counts non-blank Go lines (split by test and production) and
// words in Markdown and YAML files under root, in a single walk.
func collectMetrics(root string) (metrics, error) {
	var m metrics
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			name := d.Name()
			if path != root && (name == binDir || strings.HasPrefix(name, ".") || strings.HasPrefix(name, "_")) {
				return filepath.SkipDir
			}
			return nil
		}
		ext := filepath.Ext(path)
		switch ext {
		case ".go", ".md", ".yaml", ".yml":
		default:
			return nil
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}
		if ext != ".go" {
			m.docWords += len(strings.Fields(string(data)))
			return nil
		}
		n := 0
		for _, line := range strings.Split(string(data), "\n") {
			if strings.TrimSpace(line) != "" {
				n++
			}
		}
		if strings.HasSuffix(path, "_test.go") {
			m.testLines += n
		} else {
			m.prodLines += n
		}
		return nil
	})
	return m, err
}
