// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package newick

import (
	"strings"
)

// Structural delimiters of a Newick string.
const (
	descStart   = "("
	descEnd     = ")"
	sibling     = ","
	lengthStart = ":"
	terminal    = ";"
)

const delimiters = "(),:;"

// A token is either a structural delimiter
// or a run of literal text.
type token struct {
	pos int
	val string
}

func (tk token) isDelim() bool {
	return len(tk.val) == 1 && strings.Contains(delimiters, tk.val)
}

// Tokenize splits a Newick string into tokens.
// Delimiters are kept as tokens,
// literal runs are trimmed,
// and blank runs are dropped.
// Bracketed comments are removed.
func tokenize(text string) ([]token, error) {
	var tks []token
	start := -1
	flush := func(end int) {
		if start < 0 {
			return
		}
		v := strings.TrimSpace(text[start:end])
		if v != "" {
			tks = append(tks, token{pos: start, val: v})
		}
		start = -1
	}

	for i := 0; i < len(text); i++ {
		r := text[i]
		switch {
		case r == '[':
			flush(i)
			end := strings.IndexByte(text[i:], ']')
			if end < 0 {
				return nil, &ParseError{Pos: i, Token: text[i:], Err: ErrComment}
			}
			i += end
		case strings.IndexByte(delimiters, r) >= 0:
			flush(i)
			tks = append(tks, token{pos: i, val: text[i : i+1]})
		default:
			if start < 0 {
				start = i
			}
		}
	}
	flush(len(text))
	return tks, nil
}
