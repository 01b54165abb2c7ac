package trie

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/unicode/norm"
	"pgregory.net/rapid"
)

func TestFixedWidthTokenize(t *testing.T) {
	t.Parallel()

	for _, tcase := range []struct {
		name   string
		width  int
		key    string
		tokens []string
	}{
		{"per character", 1, "cat", []string{"c", "a", "t"}},
		{"pairs with trailing partial", 2, "abcde", []string{"ab", "cd", "e"}},
		{"width beyond key", 8, "abc", []string{"abc"}},
		{"empty key", 1, "", nil},
		{"multibyte cluster kept whole", 2, "héllo", []string{"h", "é", "ll", "o"}},
	} {
		tcase := tcase
		t.Run(tcase.name, func(t *testing.T) {
			assert.Equal(t, tcase.tokens, FixedWidth(tcase.width).Tokenize(tcase.key))
		})
	}
}

// A cluster wider than the slice width flushes the (empty) running token
// first, so the sequence starts with an empty token. The round trip still
// holds because detokenization concatenates.
func TestFixedWidthOversizeCluster(t *testing.T) {
	t.Parallel()

	tk := FixedWidth(1)
	tokens := tk.Tokenize("é")
	assert.Equal(t, []string{"", "é"}, tokens)
	assert.Equal(t, "é", tk.Detokenize(tokens))
}

func TestFixedWidthGraphemeBoundaries(t *testing.T) {
	t.Parallel()

	// "e" followed by a combining acute accent is one grapheme cluster of
	// three bytes; a byte or rune based slicer would cut the accent off.
	decomposed := norm.NFD.String("éé")
	tk := FixedWidth(3)
	tokens := tk.Tokenize(decomposed)
	assert.Equal(t, []string{norm.NFD.String("é"), norm.NFD.String("é")}, tokens)
	assert.Equal(t, decomposed, tk.Detokenize(tokens))
}

func TestDelimiterTokenize(t *testing.T) {
	t.Parallel()

	for _, tcase := range []struct {
		name   string
		sep    string
		key    string
		tokens []string
	}{
		{"dotted path", ".", "a.b.c", []string{"a", "b", "c"}},
		{"consecutive delimiters keep empty tokens", ".", "a..b", []string{"a", "", "b"}},
		{"no delimiter present", "/", "abc", []string{"abc"}},
		{"empty key", ".", "", []string{""}},
		{"multi byte delimiter", "::", "a::b", []string{"a", "b"}},
	} {
		tcase := tcase
		t.Run(tcase.name, func(t *testing.T) {
			tk := Delimiter(tcase.sep)
			tokens := tk.Tokenize(tcase.key)
			assert.Equal(t, tcase.tokens, tokens)
			assert.Equal(t, tcase.key, tk.Detokenize(tokens))
		})
	}
}

func TestTokenizerFuncs(t *testing.T) {
	t.Parallel()

	tk := TokenizerFuncs(
		func(key string) []string { return strings.Split(key, "|") },
		func(tokens []string) string { return strings.Join(tokens, "|") },
	)
	assert.Equal(t, []string{"a", "b"}, tk.Tokenize("a|b"))
	assert.Equal(t, "a|b", tk.Detokenize([]string{"a", "b"}))
}

func TestFixedWidthRoundTrip(t *testing.T) {
	t.Parallel()

	rapid.Check(t, func(t *rapid.T) {
		width := rapid.IntRange(1, 8).Draw(t, "width")
		key := rapid.String().Draw(t, "key")
		tk := FixedWidth(width)
		assert.Equal(t, key, tk.Detokenize(tk.Tokenize(key)))
	})
}

func TestDelimiterRoundTrip(t *testing.T) {
	t.Parallel()

	rapid.Check(t, func(t *rapid.T) {
		sep := rapid.SampledFrom([]string{".", "/", "::", "-"}).Draw(t, "sep")
		key := rapid.String().Draw(t, "key")
		tk := Delimiter(sep)
		assert.Equal(t, key, tk.Detokenize(tk.Tokenize(key)))
	})
}
