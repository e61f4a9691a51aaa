package classify

import (
	"sort"

	"github.com/mdict-format/go-mdict/token"
	"github.com/mdict-format/go-mdict/tree"
)

// Inflate classifies entries under a tokenizer's splitting rule. The
// entries are sorted by raw path first, so a colliding entry set fails
// at the same point regardless of input order. A nil tk uses the
// default tokenizer.
func Inflate(entries []Entry, tk *token.Tokenizer, deep int) (*tree.Node, error) {
	if tk == nil {
		tk = token.Default()
	}
	sorted := make([]Entry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Path < sorted[j].Path
	})
	return Classify(sorted, tk.SplitOne, deep)
}

// Deflate is Unclassify under a tokenizer's joining rule, collected
// into a slice. A nil tk uses the default tokenizer.
func Deflate(root *tree.Node, tk *token.Tokenizer, deep int) []Entry {
	if tk == nil {
		tk = token.Default()
	}
	var out []Entry
	for e := range Unclassify(root, tk.JoinOne, deep) {
		out = append(out, e)
	}
	return out
}
