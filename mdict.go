// Package mdict exposes map-like access to a nested key/value tree
// through delimited paths.
//
// An MDict wraps a caller-owned tree plus one fixed tokenizer
// configuration. Deep values are addressed with separator-delimited
// paths, with escaping for keys that contain the separator:
//
//	m := mdict.FromGo(map[string]any{"a": map[string]any{"b": 1}})
//	v, _ := m.Get("a.b")
//
// Container children come back as MDict views sharing the underlying
// node by reference, so mutating a child view mutates the parent tree.
package mdict

import (
	"errors"
	"fmt"
	"iter"
	"strconv"

	"github.com/mdict-format/go-mdict/classify"
	"github.com/mdict-format/go-mdict/debug"
	"github.com/mdict-format/go-mdict/token"
	"github.com/mdict-format/go-mdict/tree"
)

// MDict is a read/write view over a tree with a fixed tokenizer. The
// zero value is not usable; construct with New or FromGo.
//
// MDict offers no locking. Views produced by Get share nodes with
// their parent, and concurrent mutation through any of them is a data
// race the caller must prevent.
type MDict struct {
	root *tree.Node
	tk   *token.Tokenizer

	flatHash uint64
	flat     []classify.Entry
	flatOK   bool
}

type Option func(*MDict)

// WithTokenizer sets the tokenizer configuration used to decode every
// path passed to this view.
func WithTokenizer(tk *token.Tokenizer) Option {
	return func(m *MDict) { m.tk = tk }
}

// New wraps root. The tree is shared, not copied: mutation through the
// view is visible to any other holder of root.
func New(root *tree.Node, opts ...Option) *MDict {
	m := &MDict{root: root, tk: token.Default()}
	for _, o := range opts {
		o(m)
	}
	return m
}

// FromGo converts v into a tree and wraps it.
func FromGo(v any, opts ...Option) *MDict {
	return New(tree.FromGo(v), opts...)
}

// Root returns the wrapped tree.
func (m *MDict) Root() *tree.Node { return m.root }

// Get resolves path and returns the value there. Leaves come back as
// their payload; mappings and sequences come back as a new *MDict
// wrapping that exact child, sharing it by reference.
func (m *MDict) Get(path string) (any, error) {
	n, err := tree.GetPath(m.root, path, m.tk)
	if err != nil {
		return nil, err
	}
	if n.Type.Traversable() {
		return &MDict{root: n, tk: m.tk}, nil
	}
	return n.Leaf, nil
}

// GetDefault is Get with a fallback for missing keys. Only a missing
// mapping key substitutes def; any other traversal failure, a
// malformed path or a wrong tree shape, is returned as an error.
func (m *MDict) GetDefault(path string, def any) (any, error) {
	v, err := m.Get(path)
	if tree.IsMissingKey(err) {
		return def, nil
	}
	if err != nil {
		return nil, err
	}
	return v, nil
}

// Set assigns v at path, creating intermediate mappings as needed. A
// *tree.Node or *MDict value is attached as is; anything else is
// converted with tree.FromGo.
func (m *MDict) Set(path string, v any) error {
	return tree.SetPath(m.root, path, asNode(v), m.tk)
}

// Delete removes the value at path from its parent container.
func (m *MDict) Delete(path string) error {
	return tree.DeletePath(m.root, path, m.tk)
}

// Len is the number of direct children of the wrapped node.
func (m *MDict) Len() int { return m.root.Len() }

// Keys iterates the direct keys of the wrapped node, each re-escaped
// through the tokenizer so a key containing the separator can be fed
// back into Get unchanged. Sequence elements iterate as their decimal
// indices.
func (m *MDict) Keys() iter.Seq[string] {
	return func(yield func(string) bool) {
		switch m.root.Type {
		case tree.MapType:
			for _, k := range m.root.Keys {
				if !yield(m.tk.Escape(k)) {
					return
				}
			}
		case tree.SeqType:
			for i := range m.root.Values {
				if !yield(strconv.Itoa(i)) {
					return
				}
			}
		}
	}
}

// String renders the wrapped tree in Go literal form behind an "m"
// marker distinguishing views from plain values.
func (m *MDict) String() string {
	return fmt.Sprintf("m%v", tree.ToGo(m.root))
}

// Flattened returns the deflated projection of the wrapped tree,
// computed on first access and reused while the tree's structural hash
// is unchanged. The returned slice is the caller's to reorder or
// mutate. A hash collision after mutation can serve a stale
// projection, so flattening after mutating through a shared child view
// is best treated as undefined.
func (m *MDict) Flattened() ([]classify.Entry, error) {
	if m.root == nil {
		return nil, errors.New("no tree attached")
	}
	h := m.root.Hash()
	if m.flatOK && h == m.flatHash {
		debug.Logger(debug.Cache).Debugw("flattened served from cache", "hash", h)
	} else {
		m.flat = classify.Deflate(m.root, m.tk, -1)
		m.flatHash = h
		m.flatOK = true
		debug.Logger(debug.Cache).Debugw("flattened recomputed",
			"hash", h, "entries", len(m.flat))
	}
	out := make([]classify.Entry, len(m.flat))
	copy(out, m.flat)
	return out, nil
}

func asNode(v any) *tree.Node {
	switch t := v.(type) {
	case *tree.Node:
		return t
	case *MDict:
		return t.root
	default:
		return tree.FromGo(v)
	}
}
