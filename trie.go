package trie

import (
	"strings"
)

// Trie is a hierarchical key-value index. Keys are decomposed into ordered
// token sequences by the trie's Tokenizer and stored along paths of the tree;
// each node is itself a Trie rooted at that point of the hierarchy.
//
// A node carries a traversal count: the number of insertions that have passed
// through it, net of removals. A child is kept only while its count is above
// zero; the moment it reaches zero the parent prunes it. The count is not a
// subtree size and not distinct-key membership, it is a cumulative tally (see
// Add).
//
// A Trie is not safe for concurrent use. Callers mutating it from multiple
// goroutines must provide their own exclusion.
type Trie[T any] struct {
	count     uint64
	children  map[string]*Trie[T]
	data      T
	hasData   bool
	isKeyEnd  bool
	tokenizer Tokenizer
}

// New creates an empty trie with the default per-character tokenizer
// (fixed-width slicing of length 1).
func New[T any]() *Trie[T] {
	return newRoot[T](FixedWidth(1))
}

// NewFixedWidth creates an empty trie whose keys are sliced into tokens of up
// to width bytes on grapheme cluster boundaries.
func NewFixedWidth[T any](width int) *Trie[T] {
	return newRoot[T](FixedWidth(width))
}

// NewDelimited creates an empty trie whose keys are split on the literal
// delimiter sep.
func NewDelimited[T any](sep string) *Trie[T] {
	return newRoot[T](Delimiter(sep))
}

// NewCustom creates an empty trie using a caller supplied tokenize/detokenize
// function pair. The pair is shared by every node of the tree; see Tokenizer
// for the round trip contract.
func NewCustom[T any](tokenize TokenizeFunc, detokenize DetokenizeFunc) *Trie[T] {
	return newRoot[T](TokenizerFuncs(tokenize, detokenize))
}

func newRoot[T any](tokenizer Tokenizer) *Trie[T] {
	return &Trie[T]{
		children:  make(map[string]*Trie[T]),
		tokenizer: tokenizer,
	}
}

// newChild creates an empty node carrying the same tokenizer as its creator.
// The tokenizer is shared, not copied, so custom function pairs stay uniform
// tree-wide.
func (t *Trie[T]) newChild() *Trie[T] {
	return &Trie[T]{
		children:  make(map[string]*Trie[T]),
		tokenizer: t.tokenizer,
	}
}

// Data returns the payload stored at this node and whether one is present.
func (t *Trie[T]) Data() (T, bool) {
	return t.data, t.hasData
}

// SetData stores a payload at this node, overwriting any prior value.
func (t *Trie[T]) SetData(data T) {
	t.data = data
	t.hasData = true
}

// IsKeyEnd reports whether this node is the terminus of at least one
// currently present key.
func (t *Trie[T]) IsKeyEnd() bool {
	return t.isKeyEnd
}

// Add inserts key with the given payload, overwriting the payload of an
// already present key. Every node reached by a token of the key has its
// traversal count incremented, including on re-insertion of an identical key;
// the count tracks cumulative insert traversals, not distinct keys.
func (t *Trie[T]) Add(key string, data T) {
	node := t.addTokens(key)
	node.data = data
	node.hasData = true
	node.isKeyEnd = true
}

// AddKey inserts key with no payload, clearing any payload stored by an
// earlier Add of the same key.
func (t *Trie[T]) AddKey(key string) {
	node := t.addTokens(key)
	var zero T
	node.data = zero
	node.hasData = false
	node.isKeyEnd = true
}

func (t *Trie[T]) addTokens(key string) *Trie[T] {
	node := t
	for _, token := range t.tokenizer.Tokenize(key) {
		child, ok := node.children[token]
		if !ok {
			child = node.newChild()
			node.children[token] = child
		}
		node = child
		node.count++
	}
	return node
}

// Remove deletes key from the trie. Removing a key that is not present is a
// no-op. Every node along the key's token path has its count decremented and
// zero-count children are pruned as the walk unwinds; the terminal node's key
// end flag is cleared but the node itself survives while other keys still
// pass through it.
func (t *Trie[T]) Remove(key string) {
	if !t.Exists(key) {
		return
	}
	node := t
	var path []*Trie[T]
	for _, token := range t.tokenizer.Tokenize(key) {
		child, ok := node.children[token]
		if !ok {
			return
		}
		node = child
		path = append(path, node)
	}
	// Unwind from the terminal node to the shallowest, pruning as we go.
	for i := len(path) - 1; i >= 0; i-- {
		n := path[i]
		if n.count > 0 {
			n.count--
		}
		if i == len(path)-1 {
			n.isKeyEnd = false
		}
		n.pruneUnusedChildren()
	}
	t.pruneUnusedChildren()
}

// pruneUnusedChildren drops every direct child whose count has reached zero.
func (t *Trie[T]) pruneUnusedChildren() {
	for token, child := range t.children {
		if child.count == 0 {
			delete(t.children, token)
		}
	}
}

// Exists reports whether key is currently present in the trie.
func (t *Trie[T]) Exists(key string) bool {
	if node, ok := t.Get(key); ok {
		return node.isKeyEnd
	}
	return false
}

// Get resolves key token by token and returns the node it leads to. The
// second return is false as soon as an intermediate token has no child. The
// resolved node is returned even when it is not a key end, which allows
// navigation to partial paths.
func (t *Trie[T]) Get(key string) (*Trie[T], bool) {
	node := t
	for _, token := range t.tokenizer.Tokenize(key) {
		child, ok := node.children[token]
		if !ok {
			return nil, false
		}
		node = child
	}
	return node, true
}

// FuzzyGet resolves all tokens of key except the last exactly, then matches
// the last token as a substring against the direct children of the node
// reached. It returns the nodes of every matching child, in no particular
// order; an unresolvable intermediate token yields an empty result.
func (t *Trie[T]) FuzzyGet(key string) []*Trie[T] {
	var items []*Trie[T]
	tokens := t.tokenizer.Tokenize(key)
	if len(tokens) == 0 {
		return items
	}
	fragment := tokens[len(tokens)-1]
	node := t
	for _, token := range tokens[:len(tokens)-1] {
		child, ok := node.children[token]
		if !ok {
			return items
		}
		node = child
	}
	for token := range node.children {
		if !strings.Contains(token, fragment) {
			continue
		}
		if match, ok := node.Get(token); ok {
			items = append(items, match)
		}
	}
	return items
}

// KeysByPartialPath resolves all tokens of key except the last exactly and
// treats the last as a fragment. If the fragment itself resolves under the
// node reached, the original key is returned unchanged as the only candidate.
// Otherwise one reconstructed key is returned per direct child whose token
// starts with the whitespace-trimmed fragment.
func (t *Trie[T]) KeysByPartialPath(key string) []string {
	tokens := t.tokenizer.Tokenize(key)
	fragment := ""
	var prefix []string
	if len(tokens) > 0 {
		fragment = tokens[len(tokens)-1]
		prefix = tokens[:len(tokens)-1]
	}
	node := t
	for _, token := range prefix {
		child, ok := node.children[token]
		if !ok {
			return nil
		}
		node = child
	}
	if _, ok := node.Get(fragment); ok {
		return []string{key}
	}

	// Fragment is not a complete token; expand it against the children.
	var keys []string
	trimmed := strings.TrimSpace(fragment)
	for token := range node.children {
		if !strings.HasPrefix(token, trimmed) {
			continue
		}
		candidate := append(append([]string{}, prefix...), token)
		keys = append(keys, t.tokenizer.Detokenize(candidate))
	}
	return keys
}

// KeysUnderPrefix collects every key stored at or below the given prefix. The
// prefix is resolved through KeysByPartialPath, so an incomplete final token
// fans out over all children it matches. Sibling order is unspecified.
func (t *Trie[T]) KeysUnderPrefix(key string) []string {
	var keys []string
	for _, candidate := range t.KeysByPartialPath(key) {
		if node, ok := t.Get(candidate); ok {
			node.collectKeys(candidate, &keys)
		}
	}
	return keys
}

func (t *Trie[T]) collectKeys(key string, keys *[]string) {
	if t.isKeyEnd {
		*keys = append(*keys, key)
	}
	for token, child := range t.children {
		child.collectKeys(t.tokenizer.Detokenize([]string{key, token}), keys)
	}
}
