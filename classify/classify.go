package classify

import (
	"iter"
	"strconv"

	"github.com/mdict-format/go-mdict/tree"
)

// Entry is one (path, value) pair of a flat projection. Value is
// usually an opaque leaf payload; a *tree.Node value is attached to
// the built tree as is, which is how depth-limited round trips carry
// whole subtrees through.
type Entry struct {
	Path  string
	Value any
}

// SplitFunc peels the first component off a path. It returns the
// decoded head, the remaining raw path, and final == true when no
// component boundary remains, in which case head is the whole decoded
// path.
type SplitFunc func(path string) (head, rest string, final bool)

// JoinFunc re-attaches a key component to a sub-path, re-escaping the
// key so component boundaries occurring literally in it survive a
// later split. When final, sub is empty and the escaped key alone is
// the result.
type JoinFunc func(key, sub string, final bool) string

// Classify builds a nested mapping from flat entries. deep bounds how
// many components are split off each path: negative means unbounded,
// zero stores every path verbatim as a single key.
//
// A leaf and a subtree arriving at the same key conflict in either
// order; two leaves at the same exact path overwrite silently, last
// entry winning. Detection is order-dependent: the entry arriving
// second triggers the failure.
func Classify(entries []Entry, split SplitFunc, deep int) (*tree.Node, error) {
	root := tree.Map()
	for _, e := range entries {
		if err := insert(root, e.Path, e.Value, split, deep); err != nil {
			return nil, err
		}
	}
	return root, nil
}

func insert(n *tree.Node, path string, v any, split SplitFunc, deep int) error {
	var head, rest string
	final := true
	if deep != 0 {
		head, rest, final = split(path)
	} else {
		head = path
	}
	child, ok := n.Lookup(head)
	if final {
		if ok && child.Type.Traversable() {
			return &ConflictError{Key: head, Prev: child.Type, Next: tree.LeafType}
		}
		n.SetKey(head, valueNode(v))
		return nil
	}
	if !ok {
		child = tree.Map()
		n.SetKey(head, child)
	} else if child.Type != tree.MapType {
		return &ConflictError{
			Key:     head,
			Prev:    child.Type,
			Next:    tree.MapType,
			Preview: preview(child),
		}
	}
	if deep > 0 {
		deep--
	}
	return insert(child, rest, v, split, deep)
}

func valueNode(v any) *tree.Node {
	if n, ok := v.(*tree.Node); ok {
		return n
	}
	return tree.Leaf(v)
}

// Unclassify lazily flattens a tree into entries. Traversable children
// are descended while the depth budget allows, sequence children under
// their decimal index; a depth-exhausted container is emitted whole as
// the entry value. Negative deep means unbounded.
func Unclassify(root *tree.Node, join JoinFunc, deep int) iter.Seq[Entry] {
	return func(yield func(Entry) bool) {
		walk(root, join, deep, yield)
	}
}

func walk(n *tree.Node, join JoinFunc, deep int, yield func(Entry) bool) bool {
	if !n.Type.Traversable() {
		return true
	}
	for i, child := range n.Values {
		key := ""
		if n.Type == tree.MapType {
			key = n.Keys[i]
		} else {
			key = strconv.Itoa(i)
		}
		if child.Type.Traversable() && deep != 0 {
			d := deep - 1
			if deep < 0 {
				d = -1
			}
			ok := walk(child, join, d, func(sub Entry) bool {
				return yield(Entry{Path: join(key, sub.Path, false), Value: sub.Value})
			})
			if !ok {
				return false
			}
			continue
		}
		v := child.Leaf
		if child.Type.Traversable() {
			v = any(child)
		}
		if !yield(Entry{Path: join(key, "", true), Value: v}) {
			return false
		}
	}
	return true
}
