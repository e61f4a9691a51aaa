package tree

import (
	"encoding/binary"
	"fmt"
	"hash/maphash"
	"sort"
)

var hashSeed = maphash.MakeSeed()

// Hash returns a 64-bit structural fingerprint of n. Two structurally
// equal trees hash the same within one process; leaf payloads are
// folded in through their %#v rendering, so the fingerprint tracks
// value changes as well as shape changes. It panics if n is nil.
func (n *Node) Hash() uint64 {
	if n == nil {
		panic("tree: Hash called on nil node")
	}
	var h maphash.Hash
	h.SetSeed(hashSeed)
	n.hashTo(&h)
	return h.Sum64()
}

func (n *Node) hashTo(h *maphash.Hash) {
	h.WriteByte(byte(n.Type))
	var b [8]byte
	switch n.Type {
	case LeafType:
		fmt.Fprintf(h, "%#v", n.Leaf)
	case SeqType:
		for _, v := range n.Values {
			// child hashes combined order-dependently
			binary.LittleEndian.PutUint64(b[:], v.Hash())
			h.Write(b[:])
		}
	case MapType:
		// key order is insertion order, which Equal ignores; fold
		// children in sorted-key order so equal trees hash the same
		keys := append([]string(nil), n.Keys...)
		sort.Strings(keys)
		for _, k := range keys {
			h.WriteString(k)
			c, _ := n.Lookup(k)
			binary.LittleEndian.PutUint64(b[:], c.Hash())
			h.Write(b[:])
		}
	}
}
