package trie

import (
	"strings"

	"github.com/rivo/uniseg"
)

// TokenizeFunc splits a whole key into an ordered sequence of tokens.
type TokenizeFunc func(key string) []string

// DetokenizeFunc reassembles an ordered sequence of tokens into a key.
type DetokenizeFunc func(tokens []string) string

// Tokenizer converts keys to and from ordered token sequences. Token order is
// significant: it defines the descent path through the trie. Every node of one
// trie shares the same Tokenizer value.
//
// Callers supplying their own Tokenizer are responsible for the round trip
// contract Detokenize(Tokenize(s)) == s for every key that must be
// reconstructed by enumeration; a violation silently corrupts reconstructed
// keys but never causes a failure.
type Tokenizer interface {
	Tokenize(key string) []string
	Detokenize(tokens []string) string
}

// FixedWidth returns a Tokenizer that slices keys into tokens of up to width
// bytes, never splitting inside a grapheme cluster. A running token is flushed
// as soon as the next cluster would overflow it; the trailing partial token is
// flushed at the end. Detokenization concatenates tokens with no separator.
func FixedWidth(width int) Tokenizer {
	return fixedWidthTokenizer{width: width}
}

// Delimiter returns a Tokenizer that splits keys on the literal substring sep,
// keeping empty tokens between consecutive delimiters, and joins tokens back
// with sep.
func Delimiter(sep string) Tokenizer {
	return delimiterTokenizer{sep: sep}
}

// TokenizerFuncs returns a Tokenizer backed by a caller supplied function
// pair. The pair is shared by reference across every node of a trie, so both
// functions must be pure.
func TokenizerFuncs(tokenize TokenizeFunc, detokenize DetokenizeFunc) Tokenizer {
	return funcTokenizer{tokenize: tokenize, detokenize: detokenize}
}

type fixedWidthTokenizer struct {
	width int
}

func (f fixedWidthTokenizer) Tokenize(key string) []string {
	var (
		tokens []string
		cur    strings.Builder
	)
	graphemes := uniseg.NewGraphemes(key)
	for graphemes.Next() {
		cluster := graphemes.Str()
		if cur.Len()+len(cluster) <= f.width {
			cur.WriteString(cluster)
			continue
		}
		tokens = append(tokens, cur.String())
		cur.Reset()
		cur.WriteString(cluster)
	}
	if cur.Len() > 0 {
		tokens = append(tokens, cur.String())
	}
	return tokens
}

func (f fixedWidthTokenizer) Detokenize(tokens []string) string {
	return strings.Join(tokens, "")
}

type delimiterTokenizer struct {
	sep string
}

func (d delimiterTokenizer) Tokenize(key string) []string {
	return strings.Split(key, d.sep)
}

func (d delimiterTokenizer) Detokenize(tokens []string) string {
	return strings.Join(tokens, d.sep)
}

type funcTokenizer struct {
	tokenize   TokenizeFunc
	detokenize DetokenizeFunc
}

func (c funcTokenizer) Tokenize(key string) []string {
	return c.tokenize(key)
}

func (c funcTokenizer) Detokenize(tokens []string) string {
	return c.detokenize(tokens)
}
