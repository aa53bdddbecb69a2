// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package nexus implements reading and writing
// of the TREES block of NEXUS files.
//
// Only the trees block is read,
// any other block in the file is ignored.
// A tree block may have a translate table
// that maps tokens in the trees
// (usually integers)
// to taxon names.
// The table is shared by all the trees in the block.
//
// Here is an example file:
//
//	#NEXUS
//	BEGIN TREES;
//		TRANSLATE
//			1 Alpha,
//			2 Beta,
//			3 Gamma;
//		TREE t1 = ((1:1,2:1):1,3:2);
//		TREE t2 = (1:1,(2:1,3:1):1);
//	END;
//
// Each tree description must be in a single line.
package nexus

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/js-arias/phyloviz/newick"
)

// Errors returned by the parser.
var (
	// ErrNotNexus is returned when the input
	// does not have a NEXUS marker.
	ErrNotNexus = errors.New("nexus: input is not in NEXUS format")

	// ErrTreeLine is returned when a tree line
	// does not have a '(' followed by a ';'.
	ErrTreeLine = errors.New("tree description not found")
)

// A Tree is a named tree read from a NEXUS file.
type Tree struct {
	Name string
	Root *newick.Node
}

// Parse reads the trees of the TREES block
// of a NEXUS formatted text.
//
// Branch lengths are set using the indicated scheme.
func Parse(text string, scheme newick.LengthScheme) ([]Tree, error) {
	if !strings.Contains(strings.ToUpper(text), "NEXUS") {
		return nil, ErrNotNexus
	}

	var trees []Tree
	translate := make(map[string]string)

	inTrees := false
	inTranslate := false
	for i, ln := range strings.Split(text, "\n") {
		ln = strings.TrimSpace(ln)
		if ln == "" {
			continue
		}
		lower := strings.ToLower(ln)

		if !inTrees {
			if strings.HasPrefix(lower, "begin trees") {
				inTrees = true
			}
			continue
		}

		if inTranslate {
			inTranslate = readTranslate(translate, ln)
			continue
		}

		switch {
		case lower == "end;" || lower == "endblock;":
			inTrees = false
		case strings.HasPrefix(lower, "translate"):
			inTranslate = readTranslate(translate, ln[len("translate"):])
		case strings.HasPrefix(lower, "tree") || strings.HasPrefix(lower, "utree"):
			t, err := parseTree(ln, scheme, translate)
			if err != nil {
				return nil, fmt.Errorf("nexus: on line %d: %w", i+1, err)
			}
			if t.Name == "" {
				t.Name = fmt.Sprintf("tree%d", len(trees)+1)
			}
			trees = append(trees, t)
		}
	}

	return trees, nil
}

// Read reads the trees of the TREES block
// of a NEXUS formatted input.
func Read(r io.Reader, scheme newick.LengthScheme) ([]Tree, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return Parse(string(b), scheme)
}

// ReadTranslate adds the pairs in a line
// of a translate sub-block to the table.
// It returns false if the sub-block ends in the line.
func readTranslate(tr map[string]string, ln string) bool {
	ln = strings.TrimSpace(ln)
	more := !strings.HasSuffix(ln, ";")
	ln = strings.TrimSuffix(ln, ";")

	for _, p := range strings.Split(ln, ",") {
		f := strings.Fields(p)
		if len(f) < 2 {
			continue
		}
		name := strings.Join(f[1:], " ")
		name = strings.Trim(name, "'")
		tr[f[0]] = name
	}
	return more
}

// ParseTree reads a tree from a tree line.
// The Newick string is the text between
// the first '(' and the first ';' of the line.
func parseTree(ln string, scheme newick.LengthScheme, tr map[string]string) (Tree, error) {
	var name string
	if eq := strings.IndexByte(ln, '='); eq > 0 {
		f := strings.Fields(ln[:eq])
		if len(f) > 1 {
			name = strings.Trim(f[len(f)-1], "'")
		}
	}

	start := strings.IndexByte(ln, '(')
	end := strings.IndexByte(ln, ';')
	if start < 0 || end < start {
		return Tree{}, fmt.Errorf("%w: %q", ErrTreeLine, ln)
	}

	root, err := newick.Parse(ln[start:end], scheme, tr)
	if err != nil {
		return Tree{}, err
	}
	return Tree{Name: name, Root: root}, nil
}

// Write writes a set of trees
// as a NEXUS file with a single TREES block.
func Write(w io.Writer, trees []Tree) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "#NEXUS\n")
	fmt.Fprintf(bw, "BEGIN TREES;\n")
	for i, t := range trees {
		name := t.Name
		if name == "" {
			name = fmt.Sprintf("tree%d", i+1)
		}
		fmt.Fprintf(bw, "\tTREE %s = %s\n", name, t.Root.String())
	}
	fmt.Fprintf(bw, "END;\n")
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("nexus: while writing data: %v", err)
	}
	return nil
}
