// Package tree defines the nested key/value tree at the center of this
// module, together with path-addressed navigation over it.
//
// A tree is a [Node]: a leaf holding an arbitrary Go value, a mapping
// from string keys to child nodes, or a sequence of child nodes. The
// navigator functions Get, Set and Delete walk a tree one token at a
// time, creating intermediate mappings on assignment and reporting
// typed errors for the ways a walk can fail.
package tree
