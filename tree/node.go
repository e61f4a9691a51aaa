package tree

// Node is one value in a nested key/value tree: an opaque leaf, a
// string-keyed mapping, or an integer-indexed sequence. Mappings keep
// their keys in insertion order; Keys and Values are parallel slices.
//
// Trees are owned by the caller. Every operation in this module mutates
// the supplied structure in place; nothing here deep-copies unless
// [Node.Clone] is called explicitly.
type Node struct {
	Type   Type
	Keys   []string
	Values []*Node
	Leaf   any
}

// Leaf returns a leaf node holding v.
func Leaf(v any) *Node {
	return &Node{Type: LeafType, Leaf: v}
}

// Map returns a new empty mapping node.
func Map() *Node {
	return &Node{Type: MapType}
}

// Seq returns a sequence node over the given children.
func Seq(vs ...*Node) *Node {
	return &Node{Type: SeqType, Values: vs}
}

// Len returns the number of children of a container, and 0 for a leaf.
func (n *Node) Len() int {
	if n.Type == MapType {
		return len(n.Keys)
	}
	return len(n.Values)
}

// Index returns the position of key in a mapping, or -1.
func (n *Node) Index(key string) int {
	for i, k := range n.Keys {
		if k == key {
			return i
		}
	}
	return -1
}

// Lookup returns the child stored under key in a mapping.
func (n *Node) Lookup(key string) (*Node, bool) {
	i := n.Index(key)
	if i == -1 {
		return nil, false
	}
	return n.Values[i], true
}

// SetKey stores child under key, overwriting in place when the key
// already exists and appending otherwise.
func (n *Node) SetKey(key string, child *Node) {
	if i := n.Index(key); i != -1 {
		n.Values[i] = child
		return
	}
	n.Keys = append(n.Keys, key)
	n.Values = append(n.Values, child)
}

// DeleteKey removes key from a mapping, reporting whether it was there.
func (n *Node) DeleteKey(key string) bool {
	i := n.Index(key)
	if i == -1 {
		return false
	}
	n.Keys = append(n.Keys[:i], n.Keys[i+1:]...)
	n.Values = append(n.Values[:i], n.Values[i+1:]...)
	return true
}

// Clone returns a deep copy of n. Leaf payloads are shared, not copied;
// they are opaque to this module.
func (n *Node) Clone() *Node {
	if n == nil {
		return nil
	}
	dst := &Node{Type: n.Type, Leaf: n.Leaf}
	if n.Keys != nil {
		dst.Keys = append([]string(nil), n.Keys...)
	}
	if n.Values != nil {
		dst.Values = make([]*Node, len(n.Values))
		for i, v := range n.Values {
			dst.Values[i] = v.Clone()
		}
	}
	return dst
}

// Visit walks n in preorder, calling f on every node. Returning false
// from f prunes the subtree below that node.
func (n *Node) Visit(f func(*Node) bool) {
	if n == nil || !f(n) {
		return
	}
	for _, v := range n.Values {
		v.Visit(f)
	}
}

// Equal reports structural equality, comparing leaf payloads with ==
// when comparable and falling through to false otherwise.
func Equal(a, b *Node) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil || a.Type != b.Type {
		return false
	}
	switch a.Type {
	case LeafType:
		return leafEqual(a.Leaf, b.Leaf)
	case MapType:
		if len(a.Keys) != len(b.Keys) {
			return false
		}
		for i, k := range a.Keys {
			bv, ok := b.Lookup(k)
			if !ok || !Equal(a.Values[i], bv) {
				return false
			}
		}
		return true
	case SeqType:
		if len(a.Values) != len(b.Values) {
			return false
		}
		for i := range a.Values {
			if !Equal(a.Values[i], b.Values[i]) {
				return false
			}
		}
		return true
	}
	return false
}

func leafEqual(a, b any) bool {
	defer func() {
		// uncomparable payloads compare unequal rather than panicking
		_ = recover()
	}()
	return a == b
}
