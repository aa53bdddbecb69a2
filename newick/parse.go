// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package newick

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
)

// Parse errors.
var (
	ErrComment    = errors.New("unterminated comment")
	ErrEmpty      = errors.New("empty tree")
	ErrLength     = errors.New("invalid branch length")
	ErrToken      = errors.New("unexpected token")
	ErrUnbalanced = errors.New("unbalanced parenthesis")
	ErrZeroDepth  = errors.New("tree without edges can not be normalized")
)

// A ParseError is returned when a Newick string
// can not be parsed.
type ParseError struct {
	Pos   int    // byte offset of the offending token
	Token string // offending token
	Err   error
}

func (e *ParseError) Error() string {
	if e.Token == "" {
		return fmt.Sprintf("newick: at %d: %v", e.Pos, e.Err)
	}
	return fmt.Sprintf("newick: at %d: token %q: %v", e.Pos, e.Token, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Parse reads a tree from a Newick string.
//
// Branch lengths are interpreted
// using the indicated length scheme.
//
// If translate is not nil,
// node names are replaced by its value in the table.
// Names not found in the table are used as given.
//
// Parsing stops at the first ';',
// so only a single tree is read.
func Parse(text string, scheme LengthScheme, translate map[string]string) (*Node, error) {
	tks, err := tokenize(text)
	if err != nil {
		return nil, err
	}
	for i, tk := range tks {
		if tk.val == terminal {
			tks = tks[:i]
			break
		}
	}
	return parse(tks, len(text), scheme, translate)
}

// Parse builds a tree from the tokens of a single tree,
// without the ';' terminator.
// End is the offset reported
// for errors found after the last token.
func parse(tks []token, end int, scheme LengthScheme, translate map[string]string) (*Node, error) {
	if len(tks) == 0 {
		return nil, &ParseError{Pos: end, Err: ErrEmpty}
	}

	root := newNode()
	n := root
	var anc []*Node
	prev := ""

	for _, tk := range tks {
		switch tk.val {
		case descStart:
			c := newNode()
			n.Children = append(n.Children, c)
			anc = append(anc, n)
			n = c
		case sibling:
			if len(anc) == 0 {
				return nil, &ParseError{Pos: tk.pos, Token: tk.val, Err: ErrUnbalanced}
			}
			p := anc[len(anc)-1]
			c := newNode()
			p.Children = append(p.Children, c)
			n = c
		case descEnd:
			if len(anc) == 0 {
				return nil, &ParseError{Pos: tk.pos, Token: tk.val, Err: ErrUnbalanced}
			}
			n = anc[len(anc)-1]
			anc = anc[:len(anc)-1]
		case lengthStart:
		default:
			switch prev {
			case "", descStart, sibling, descEnd:
				n.Name = tk.val
				if v, ok := translate[tk.val]; ok {
					n.Name = v
				}
			case lengthStart:
				l, err := strconv.ParseFloat(tk.val, 64)
				if err != nil || math.IsNaN(l) || math.IsInf(l, 0) {
					return nil, &ParseError{Pos: tk.pos, Token: tk.val, Err: ErrLength}
				}
				n.Length = l
			default:
				return nil, &ParseError{Pos: tk.pos, Token: tk.val, Err: ErrToken}
			}
		}
		prev = tk.val
	}
	if len(anc) > 0 {
		return nil, &ParseError{Pos: end, Err: ErrUnbalanced}
	}

	if scheme == NormalizedRTT {
		max := root.Height()
		if max == 0 {
			return nil, &ParseError{Pos: end, Err: ErrZeroDepth}
		}
		setRTT(root, max)
	}
	return root, nil
}

// ReadAll reads all the trees
// from a Newick formatted input,
// one per ';' terminated string.
//
// The input is tokenized once,
// and error offsets are measured
// from the start of the input.
func ReadAll(r io.Reader, scheme LengthScheme) ([]*Node, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	text := string(b)
	tks, err := tokenize(text)
	if err != nil {
		return nil, err
	}

	var trees []*Node
	for len(tks) > 0 {
		next := len(tks)
		end := len(text)
		for i, tk := range tks {
			if tk.val == terminal {
				next = i
				end = tk.pos
				break
			}
		}

		t, err := parse(tks[:next], end, scheme, nil)
		if err != nil {
			return nil, fmt.Errorf("tree %d: %w", len(trees)+1, err)
		}
		trees = append(trees, t)

		if next == len(tks) {
			break
		}
		tks = tks[next+1:]
	}
	return trees, nil
}

// SetRTT sets the branch lengths of the descendants of n
// so each one is the difference of the heights
// (in number of edges)
// between its parent and itself,
// divided by the largest height of the tree.
func setRTT(n *Node, max int) int {
	if n.IsLeaf() {
		return 0
	}

	hs := make([]int, len(n.Children))
	h := 0
	for i, c := range n.Children {
		hs[i] = setRTT(c, max)
		if hs[i]+1 > h {
			h = hs[i] + 1
		}
	}
	for i, c := range n.Children {
		c.Length = float64(h-hs[i]) / float64(max)
	}
	return h
}
