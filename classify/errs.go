package classify

import (
	"fmt"

	"github.com/mdict-format/go-mdict/tree"
)

const previewMax = 24

// ConflictError reports an attempt to store both a leaf and a subtree
// at the same key within one classification. Which of the two is Prev
// and which is Next depends on entry order; callers wanting a
// deterministic failure point should sort entries first (see Inflate).
type ConflictError struct {
	Key     string
	Prev    tree.Type
	Next    tree.Type
	Preview string
}

func (e *ConflictError) Error() string {
	msg := fmt.Sprintf("key %q already holds a %s value, cannot classify a %s under it",
		e.Key, e.Prev, e.Next)
	if e.Preview != "" {
		msg += fmt.Sprintf(" (stored value is %s)", e.Preview)
	}
	return msg
}

func preview(n *tree.Node) string {
	if n == nil || n.Type != tree.LeafType {
		return ""
	}
	p := fmt.Sprintf("%#v", n.Leaf)
	if len(p) > previewMax {
		return ""
	}
	return p
}
