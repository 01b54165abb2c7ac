/*
Package trie provides a generic associative trie keyed by token sequences.
Keys are split into ordered tokens by a pluggable tokenizer (fixed-width
grapheme slicing, delimiter splitting, or a caller supplied function pair) and
stored along paths of the tree, supporting exact lookup, prefix enumeration
and substring matching on the final token of a query.
*/
package trie
