// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package delimiter

import (
	"math/rand/v2"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/latex-converter/pkg/types"
)

const exampleText = `Here is an equation: \[E = mc^2\] and another one: \[\sum_{i=1}^{n} x_i = \frac{n(n+1)}{2}\]`

func TestConvert(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "empty", input: "", want: ""},
		{name: "no delimiters", input: "plain text with [brackets] and \\alpha", want: "plain text with [brackets] and \\alpha"},
		{name: "lone opening", input: `\[`, want: "$$"},
		{name: "lone closing", input: `\]`, want: "$$"},
		{name: "simple pair", input: `\[E = mc^2\]`, want: "$$E = mc^2$$"},
		{
			name:  "example text",
			input: exampleText,
			want:  `Here is an equation: $$E = mc^2$$ and another one: $$\sum_{i=1}^{n} x_i = \frac{n(n+1)}{2}$$`,
		},
		{name: "unbalanced opening", input: `\[a \[b \]`, want: "$$a $$b $$"},
		{name: "reversed order", input: `\]x\[`, want: "$$x$$"},
		{name: "nested", input: `\[\[x\]\]`, want: "$$$$x$$$$"},
		{name: "existing dollars untouched", input: `$$a$$ \[b\]`, want: "$$a$$ $$b$$"},
		{name: "double backslash before bracket", input: `\\[x`, want: `\$$x`},
		{name: "bare brackets untouched", input: "[x] \\(y\\)", want: "[x] \\(y\\)"},
		{name: "multibyte text", input: `\[α + β = γ\]`, want: "$$α + β = γ$$"},
		{name: "multiline", input: "before\n\\[\nx^2\n\\]\nafter", want: "before\n$$\nx^2\n$$\nafter"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Convert(tt.input))
		})
	}
}

func TestConvert_DoesNotInterpretRegex(t *testing.T) {
	// Characters that would be metacharacters in a pattern language stay literal.
	in := `.*+?^${}()|[]\`
	assert.Equal(t, in, Convert(in))
}

func TestCount(t *testing.T) {
	opening, closing := Count(exampleText)
	assert.Equal(t, 2, opening)
	assert.Equal(t, 2, closing)

	opening, closing = Count(`\[\[\]`)
	assert.Equal(t, 2, opening)
	assert.Equal(t, 1, closing)
}

func TestAnalyze(t *testing.T) {
	out, stats := Analyze(`\[α\]`)
	assert.Equal(t, "$$α$$", out)
	assert.Equal(t, types.Stats{InputChars: 5, OutputChars: 5, Opening: 1, Closing: 1}, stats)
	assert.Equal(t, 2, stats.Delimiters())
	assert.True(t, stats.Balanced())

	_, stats = Analyze(`\[x`)
	assert.False(t, stats.Balanced())
}

func TestSplitBrackets(t *testing.T) {
	got := SplitBrackets(`a \[x\]b`)
	want := []types.Segment{
		{Text: "a "},
		{Text: `\[`, Delimiter: true},
		{Text: "x"},
		{Text: `\]`, Delimiter: true},
		{Text: "b"},
	}
	assert.Equal(t, want, got)
	assert.Nil(t, SplitBrackets(""))
}

func TestSplitDollars(t *testing.T) {
	got := SplitDollars("$$x$$$")
	want := []types.Segment{
		{Text: "$$", Delimiter: true},
		{Text: "x"},
		{Text: "$$", Delimiter: true},
		{Text: "$"},
	}
	assert.Equal(t, want, got)
}

// randomText builds strings dense in backslashes and brackets so that the
// interesting cases show up often.
func randomText(r *rand.Rand, alphabet []string) string {
	n := r.IntN(40)
	var b strings.Builder
	for range n {
		b.WriteString(alphabet[r.IntN(len(alphabet))])
	}
	return b.String()
}

func joinSegments(segs []types.Segment) string {
	var b strings.Builder
	for _, s := range segs {
		b.WriteString(s.Text)
	}
	return b.String()
}

func TestConvert_Properties(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	withDollar := []string{`\`, "[", "]", "$", "a", " ", "é", "{", "}"}
	noDollar := []string{`\`, "[", "]", "a", " ", "é", "{", "}"}

	for i := 0; i < 2000; i++ {
		s := randomText(r, withDollar)
		out := Convert(s)

		require.Equal(t, out, Convert(out), "idempotence for %q", s)
		require.Len(t, out, len(s), "length for %q", s)
		require.NotContains(t, out, Open, "output of %q", s)
		require.NotContains(t, out, Close, "output of %q", s)
		require.Equal(t, s, joinSegments(SplitBrackets(s)))
		require.Equal(t, out, joinSegments(SplitDollars(out)))

		s = randomText(r, noDollar)
		opening, closing := Count(s)
		require.Equal(t, opening+closing, strings.Count(Convert(s), Dollar), "dollar count for %q", s)
	}
}

func TestConvert_Concurrent(t *testing.T) {
	var wg sync.WaitGroup
	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 100 {
				if got := Convert(exampleText); !strings.HasPrefix(got, "Here is an equation: $$") {
					t.Errorf("unexpected output %q", got)
					return
				}
			}
		}()
	}
	wg.Wait()
}
