package tree

import (
	"strconv"

	"github.com/mdict-format/go-mdict/token"
)

// Get walks root along toks and returns the node at the end of the
// path. An empty token sequence returns root itself.
func Get(root *Node, toks []string) (*Node, error) {
	n := root
	for _, tok := range toks {
		c, err := childAt(n, tok)
		if err != nil {
			return nil, err
		}
		n = c
	}
	return n, nil
}

// GetPath tokenizes path with tk and calls Get. A nil tk uses the
// default tokenizer.
func GetPath(root *Node, path string, tk *token.Tokenizer) (*Node, error) {
	if tk == nil {
		tk = token.Default()
	}
	return Get(root, tk.Tokenize(path))
}

// Set walks root along toks and assigns v at the final position.
//
// Intermediate mapping misses create fresh empty mappings along the
// way; any other intermediate failure stops the walk, leaving mappings
// already created in place. The final token assigns into whatever
// container the walk reached: a mapping key is inserted or replaced, a
// sequence index must already be in range.
func Set(root *Node, toks []string, v *Node) error {
	if len(toks) == 0 {
		return ErrNoTokens
	}
	n := root
	for _, tok := range toks[:len(toks)-1] {
		c, err := childAt(n, tok)
		if err != nil {
			if !IsMissingKey(err) {
				return err
			}
			c = Map()
			n.SetKey(tok, c)
		}
		n = c
	}
	last := toks[len(toks)-1]
	switch n.Type {
	case MapType:
		n.SetKey(last, v)
		return nil
	case SeqType:
		i, err := seqIndex(n, last)
		if err != nil {
			return err
		}
		n.Values[i] = v
		return nil
	default:
		return &NonTraversableError{Key: last, Preview: leafPreview(n)}
	}
}

// SetPath tokenizes path with tk and calls Set. A nil tk uses the
// default tokenizer.
func SetPath(root *Node, path string, v *Node, tk *token.Tokenizer) error {
	if tk == nil {
		tk = token.Default()
	}
	return Set(root, tk.Tokenize(path), v)
}

// Delete walks root along toks and removes the node at the final
// position from its parent. Mapping children are removed by key,
// sequence children are spliced out. Missing intermediate containers
// are not created.
func Delete(root *Node, toks []string) error {
	if len(toks) == 0 {
		return ErrNoTokens
	}
	n, err := Get(root, toks[:len(toks)-1])
	if err != nil {
		return err
	}
	last := toks[len(toks)-1]
	switch n.Type {
	case MapType:
		if !n.DeleteKey(last) {
			return &MissingKeyError{Key: last}
		}
		return nil
	case SeqType:
		i, err := seqIndex(n, last)
		if err != nil {
			return err
		}
		n.Values = append(n.Values[:i], n.Values[i+1:]...)
		return nil
	default:
		return &NonTraversableError{Key: last, Preview: leafPreview(n)}
	}
}

// DeletePath tokenizes path with tk and calls Delete. A nil tk uses
// the default tokenizer.
func DeletePath(root *Node, path string, tk *token.Tokenizer) error {
	if tk == nil {
		tk = token.Default()
	}
	return Delete(root, tk.Tokenize(path))
}

// childAt resolves one token against n. Sequence tokens must parse as
// integers; negative indices count back from the end.
func childAt(n *Node, tok string) (*Node, error) {
	switch n.Type {
	case MapType:
		c, ok := n.Lookup(tok)
		if !ok {
			return nil, &MissingKeyError{Key: tok}
		}
		return c, nil
	case SeqType:
		i, err := seqIndex(n, tok)
		if err != nil {
			return nil, err
		}
		return n.Values[i], nil
	default:
		return nil, &NonTraversableError{Key: tok, Preview: leafPreview(n)}
	}
}

func seqIndex(n *Node, tok string) (int, error) {
	i, err := strconv.Atoi(tok)
	if err != nil {
		return 0, &IndexNotIntegerError{Token: tok}
	}
	j := i
	if j < 0 {
		j += len(n.Values)
	}
	if j < 0 || j >= len(n.Values) {
		return 0, &IndexOutOfRangeError{Index: i, Len: len(n.Values)}
	}
	return j, nil
}
