package token

import (
	"fmt"
	"strings"
)

// DefaultSep and DefaultEsc are the separator and escape bytes used by
// [Default].
const (
	DefaultSep = '.'
	DefaultEsc = '\\'
)

// Tokenizer converts between path strings and token sequences for one
// fixed (separator, escape) byte pair. It holds no per-call state;
// construct one per configuration and reuse it.
type Tokenizer struct {
	sep byte
	esc byte
}

var defaultTokenizer = &Tokenizer{sep: DefaultSep, esc: DefaultEsc}

// Default returns the shared "." / "\" tokenizer.
func Default() *Tokenizer {
	return defaultTokenizer
}

// New returns a tokenizer for the given separator and escape bytes.
// It panics if the two are equal; such a grammar cannot be decoded.
func New(sep, esc byte) *Tokenizer {
	if sep == esc {
		panic(fmt.Sprintf("token: separator and escape are both %q", string(sep)))
	}
	return &Tokenizer{sep: sep, esc: esc}
}

// Sep returns the separator byte.
func (t *Tokenizer) Sep() byte { return t.sep }

// Esc returns the escape byte.
func (t *Tokenizer) Esc() byte { return t.esc }

// Tokenize splits s into its token sequence.
//
// The scan has two states. Normally the separator ends the current token
// and the escape byte shifts to the escaped state; in the escaped state
// the next byte is taken literally, whatever it is. Empty tokens are
// preserved, so adjacent separators and leading or trailing separators
// produce empty-string tokens, and the empty string is the single empty
// token [""], never zero tokens. A trailing escape with nothing after it
// is kept as a literal escape byte.
func (t *Tokenizer) Tokenize(s string) []string {
	toks := make([]string, 0, 1+strings.Count(s, string(t.sep)))
	var b strings.Builder
	escaped := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case escaped:
			b.WriteByte(c)
			escaped = false
		case c == t.esc:
			escaped = true
		case c == t.sep:
			toks = append(toks, b.String())
			b.Reset()
		default:
			b.WriteByte(c)
		}
	}
	if escaped {
		b.WriteByte(t.esc)
	}
	return append(toks, b.String())
}

// Untokenize is the structural inverse of [Tokenizer.Tokenize]: each
// token is escaped with [Tokenizer.Escape] and the results are joined
// with the bare separator. Tokenize(Untokenize(toks)) == toks for every
// token sequence.
func (t *Tokenizer) Untokenize(toks []string) string {
	var b strings.Builder
	for i, tok := range toks {
		if i > 0 {
			b.WriteByte(t.sep)
		}
		t.escapeTo(&b, tok)
	}
	return b.String()
}

// Escape returns tok with every literal separator or escape byte
// prefixed by the escape byte, suitable for use as one path component.
func (t *Tokenizer) Escape(tok string) string {
	if !strings.ContainsAny(tok, string([]byte{t.sep, t.esc})) {
		return tok
	}
	var b strings.Builder
	t.escapeTo(&b, tok)
	return b.String()
}

func (t *Tokenizer) escapeTo(b *strings.Builder, tok string) {
	for i := 0; i < len(tok); i++ {
		c := tok[i]
		if c == t.sep || c == t.esc {
			b.WriteByte(t.esc)
		}
		b.WriteByte(c)
	}
}

// SplitOne peels the first token off the front of path. It returns the
// decoded head, the remaining raw path after the first unescaped
// separator, and final == true when no unescaped separator remains, in
// which case head is the whole decoded path and rest is empty.
func (t *Tokenizer) SplitOne(path string) (head, rest string, final bool) {
	var b strings.Builder
	escaped := false
	for i := 0; i < len(path); i++ {
		c := path[i]
		switch {
		case escaped:
			b.WriteByte(c)
			escaped = false
		case c == t.esc:
			escaped = true
		case c == t.sep:
			return b.String(), path[i+1:], false
		default:
			b.WriteByte(c)
		}
	}
	if escaped {
		b.WriteByte(t.esc)
	}
	return b.String(), "", true
}

// JoinOne re-attaches a key component to a sub-path. The key is
// re-escaped so separator and escape bytes occurring literally in it
// survive a later SplitOne; when final, sub is ignored and the escaped
// key alone is returned.
func (t *Tokenizer) JoinOne(key, sub string, final bool) string {
	if final {
		return t.Escape(key)
	}
	var b strings.Builder
	t.escapeTo(&b, key)
	b.WriteByte(t.sep)
	b.WriteString(sub)
	return b.String()
}
