// Package cascade reads through an ordered list of source trees
// without merging them. A lookup asks each source in turn and moves on
// to the next one only when the current source is missing the key;
// every other failure is final.
package cascade

import (
	"github.com/mdict-format/go-mdict/debug"
	"github.com/mdict-format/go-mdict/token"
	"github.com/mdict-format/go-mdict/tree"
)

// Cascade is a read-only view over source trees in priority order,
// earliest source winning. Sources are shared, not copied; results
// reference nodes inside the winning source.
type Cascade struct {
	sources []*tree.Node
	tk      *token.Tokenizer
}

// New builds a cascade over sources with tk decoding every path. A nil
// tk uses the default tokenizer.
func New(tk *token.Tokenizer, sources ...*tree.Node) *Cascade {
	if tk == nil {
		tk = token.Default()
	}
	return &Cascade{sources: sources, tk: tk}
}

// Get resolves path against each source in order. A missing key falls
// through to the next source; any other traversal failure stops the
// cascade and is returned. When every source misses, the last miss is
// returned.
func (c *Cascade) Get(path string) (*tree.Node, error) {
	log := debug.Logger(debug.Cascade)
	var last error
	for i, src := range c.sources {
		n, err := tree.GetPath(src, path, c.tk)
		if err == nil {
			log.Debugw("cascade hit", "path", path, "source", i)
			return n, nil
		}
		if !tree.IsMissingKey(err) {
			return nil, err
		}
		log.Debugw("cascade miss", "path", path, "source", i)
		last = err
	}
	if last == nil {
		last = &tree.MissingKeyError{Key: path}
	}
	return nil, last
}

// GetDefault is Get with a fallback for a full cascade miss. Leaf hits
// come back as their payload, container hits as the node itself. Only
// missing keys substitute def; a hard traversal failure in any source
// is returned as an error.
func (c *Cascade) GetDefault(path string, def any) (any, error) {
	n, err := c.Get(path)
	if tree.IsMissingKey(err) {
		return def, nil
	}
	if err != nil {
		return nil, err
	}
	if n.Type.Traversable() {
		return n, nil
	}
	return n.Leaf, nil
}

// Keys returns the union of the sources' top-level mapping keys, in
// source order then key order, first occurrence winning.
func (c *Cascade) Keys() []string {
	seen := make(map[string]bool)
	var keys []string
	for _, src := range c.sources {
		if src.Type != tree.MapType {
			continue
		}
		for _, k := range src.Keys {
			if seen[k] {
				continue
			}
			seen[k] = true
			keys = append(keys, k)
		}
	}
	return keys
}
