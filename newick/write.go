// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package newick

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// String returns the tree rooted at the node
// as a Newick string.
func (n *Node) String() string {
	var b strings.Builder
	n.format(&b)
	b.WriteString(terminal)
	return b.String()
}

// Write writes the tree rooted at the node
// in Newick format,
// followed by a new line.
//
// It returns an error if a node name
// contains a Newick delimiter.
func (n *Node) Write(w io.Writer) error {
	for _, d := range n.Nodes() {
		if strings.ContainsAny(d.Name, delimiters+"[]") {
			return fmt.Errorf("newick: invalid node name %q", d.Name)
		}
	}

	bw := bufio.NewWriter(w)
	n.format(bw)
	fmt.Fprintf(bw, "%s\n", terminal)
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("newick: while writing data: %v", err)
	}
	return nil
}

type stringWriter interface {
	WriteString(string) (int, error)
}

func (n *Node) format(w stringWriter) {
	if !n.IsLeaf() {
		w.WriteString(descStart)
		for i, c := range n.Children {
			if i > 0 {
				w.WriteString(sibling)
			}
			c.format(w)
		}
		w.WriteString(descEnd)
	}
	w.WriteString(n.Name)
	w.WriteString(lengthStart)
	w.WriteString(strconv.FormatFloat(n.Length, 'g', -1, 64))
}
