// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package samples

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/latex-converter/internal/delimiter"
)

func TestExampleConverts(t *testing.T) {
	want := `Here is an equation: $$E = mc^2$$ and another one: $$\sum_{i=1}^{n} x_i = \frac{n(n+1)}{2}$$`
	assert.Equal(t, want, delimiter.Convert(Example))
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name  string
		setup func(t *testing.T) string
		want  map[string]string
	}{
		{
			name: "reads sample files and trims whitespace",
			setup: func(t *testing.T) string {
				dir := t.TempDir()
				writeFile(t, dir, "maxwell.tex", "  \\[\\nabla \\cdot E = \\rho\\]  \n")
				writeFile(t, dir, "euler", "\\[e^{i\\pi} + 1 = 0\\]")
				return dir
			},
			want: map[string]string{
				"maxwell": `\[\nabla \cdot E = \rho\]`,
				"euler":   `\[e^{i\pi} + 1 = 0\]`,
			},
		},
		{
			name: "returns empty map for nonexistent directory",
			setup: func(t *testing.T) string {
				return filepath.Join(t.TempDir(), "does-not-exist")
			},
			want: map[string]string{},
		},
		{
			name: "skips empty files and dotfiles",
			setup: func(t *testing.T) string {
				dir := t.TempDir()
				writeFile(t, dir, "valid.md", "x")
				writeFile(t, dir, "empty.md", "   \n\t ")
				writeFile(t, dir, ".hidden.tex", "\\[y\\]")
				return dir
			},
			want: map[string]string{"valid": "x"},
		},
		{
			name: "skips subdirectories",
			setup: func(t *testing.T) string {
				dir := t.TempDir()
				writeFile(t, dir, "a.tex", "a")
				require.NoError(t, os.Mkdir(filepath.Join(dir, "nested"), 0o755))
				return dir
			},
			want: map[string]string{"a": "a"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Load(tt.setup(t))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLoadUnreadableFile(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("root can read files without permission bits")
	}
	dir := t.TempDir()
	writeFile(t, dir, "good.tex", "value")

	badPath := filepath.Join(dir, "bad.tex")
	require.NoError(t, os.WriteFile(badPath, []byte("secret"), 0o000))
	t.Cleanup(func() { os.Chmod(badPath, 0o644) })

	got, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"good": "value"}, got)
}

func TestLookup(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "euler.tex", `\[e^{i\pi} + 1 = 0\]`)

	text, err := Lookup(dir, "")
	require.NoError(t, err)
	assert.Equal(t, Example, text)

	text, err = Lookup(dir, DefaultName)
	require.NoError(t, err)
	assert.Equal(t, Example, text)

	text, err = Lookup(dir, "euler")
	require.NoError(t, err)
	assert.Equal(t, `\[e^{i\pi} + 1 = 0\]`, text)

	_, err = Lookup(dir, "gauss")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "available: default, euler")
}

func TestLookup_OverrideDefault(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "default.tex", `\[1+1=2\]`)

	text, err := Lookup(dir, "")
	require.NoError(t, err)
	assert.Equal(t, `\[1+1=2\]`, text)
}

func TestNames(t *testing.T) {
	assert.Equal(t, []string{"default"}, Names(nil))
	assert.Equal(t, []string{"default", "a", "b"}, Names(map[string]string{"b": "", "a": "", "default": ""}))
}

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}
