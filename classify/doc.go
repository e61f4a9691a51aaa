// Package classify converts between a flat collection of (path, value)
// entries and an equivalent nested tree.
//
// Classify builds a tree by peeling path components off each entry with
// a caller-supplied split function; Unclassify is the lazy inverse,
// rejoining components with escaping so keys containing separator bytes
// survive a round trip. Inflate and Deflate are the tokenizer-backed
// conveniences over the two.
package classify
