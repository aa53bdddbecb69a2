// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package newick implements reading and writing
// of phylogenetic trees in parenthetical
// (Newick) format.
//
// A parsed tree is a hierarchy of nodes.
// Once parsed,
// a tree is never modified by this package,
// so it can be shared by any number of readers.
package newick

import (
	"slices"
)

// A Node is a node of a phylogenetic tree.
type Node struct {
	// Name is the name of the node.
	// It is usually empty for internal nodes.
	Name string

	// Length is the length of the branch
	// that connects the node with its parent.
	Length float64

	// Children are the descendants of the node,
	// in the order found in the input.
	Children []*Node
}

func newNode() *Node {
	return &Node{Length: DefaultLength}
}

// DefaultLength is the branch length
// assigned to a node without an explicit length.
const DefaultLength = 1.0

// IsLeaf returns true if the node is a terminal.
func (n *Node) IsLeaf() bool {
	return len(n.Children) == 0
}

// Leaves returns the terminals of the tree
// rooted at the node,
// in traversal order.
func (n *Node) Leaves() []*Node {
	var ls []*Node
	n.walk(func(d *Node) {
		if d.IsLeaf() {
			ls = append(ls, d)
		}
	})
	return ls
}

// Nodes returns all the nodes of the tree
// rooted at the node,
// in pre-order.
func (n *Node) Nodes() []*Node {
	var ls []*Node
	n.walk(func(d *Node) {
		ls = append(ls, d)
	})
	return ls
}

// Len returns the number of nodes
// in the tree rooted at the node.
func (n *Node) Len() int {
	sz := 1
	for _, c := range n.Children {
		sz += c.Len()
	}
	return sz
}

// Terms returns the sorted names
// of the terminals of the tree.
// Terminals without a name are ignored.
func (n *Node) Terms() []string {
	var terms []string
	for _, l := range n.Leaves() {
		if l.Name == "" {
			continue
		}
		terms = append(terms, l.Name)
	}
	slices.Sort(terms)
	return terms
}

// Height returns the largest number of edges
// between the node and any of its terminals.
func (n *Node) Height() int {
	h := 0
	for _, c := range n.Children {
		if ch := c.Height() + 1; ch > h {
			h = ch
		}
	}
	return h
}

func (n *Node) walk(fn func(*Node)) {
	fn(n)
	for _, c := range n.Children {
		c.walk(fn)
	}
}
