// Package token splits and joins delimited key paths.
//
// A [Tokenizer] pairs a separator byte with an escape byte and converts
// between a path string such as "a.b.c" and its token sequence
// ["a" "b" "c"]. Escaping lets separator and escape bytes occur literally
// inside a token: with the default configuration, `a\.b` is the single
// token "a.b".
//
// [Tokenizer.SplitOne] and [Tokenizer.JoinOne] are the lower-level
// single-separator primitives used by classification; they peel or attach
// one key component at a time without tokenizing the whole path.
package token
