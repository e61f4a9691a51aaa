package tree

import (
	"errors"
	"fmt"
)

// ErrNoTokens is returned by Set and Delete when given an empty token
// sequence: there is no container to assign into or remove from.
var ErrNoTokens = errors.New("empty token sequence")

// previewMax bounds the leaf preview included in NonTraversableError
// messages; longer renderings are omitted rather than truncated.
const previewMax = 24

// MissingKeyError reports a mapping traversal that missed a key. It is
// the only recoverable failure in the taxonomy: callers may substitute
// a default, and cascading readers use it to fall through to the next
// source.
type MissingKeyError struct {
	Key string
}

func (e *MissingKeyError) Error() string {
	return fmt.Sprintf("missing key %q in map", e.Key)
}

// IsMissingKey reports whether err is or wraps a *MissingKeyError.
func IsMissingKey(err error) bool {
	var mk *MissingKeyError
	return errors.As(err, &mk)
}

// NonTraversableError reports a path that continues past a leaf.
// Preview holds a short rendering of the leaf value when one fits.
type NonTraversableError struct {
	Key     string
	Preview string
}

func (e *NonTraversableError) Error() string {
	if e.Preview != "" {
		return fmt.Sprintf("cannot query subvalue %q of a leaf (leaf value is %s)", e.Key, e.Preview)
	}
	return fmt.Sprintf("cannot query subvalue %q of a leaf", e.Key)
}

// IndexNotIntegerError reports sequence traversal with a token that
// does not parse as an integer.
type IndexNotIntegerError struct {
	Token string
}

func (e *IndexNotIntegerError) Error() string {
	return fmt.Sprintf("non-integer index %q provided on a sequence", e.Token)
}

// IndexOutOfRangeError reports a sequence index outside the container,
// after negative-index resolution. Index is the index as given.
type IndexOutOfRangeError struct {
	Index int
	Len   int
}

func (e *IndexOutOfRangeError) Error() string {
	return fmt.Sprintf("index %d is out of range (%d elements in sequence)", e.Index, e.Len)
}

func leafPreview(n *Node) string {
	p := fmt.Sprintf("%#v", n.Leaf)
	if len(p) > previewMax {
		return ""
	}
	return p
}
