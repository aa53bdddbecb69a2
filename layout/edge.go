// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package layout

import "github.com/js-arias/phyloviz/newick"

// An Edge is a branch of a laid out tree.
type Edge struct {
	Parent *newick.Node
	Child  *newick.Node

	// pixel coordinates of the parent
	// and the child
	Source Point
	Target Point
}

// Elbow returns the path of the edge
// as drawn in a rectangular cladogram:
// a vertical segment at the parent,
// followed by a horizontal segment
// at the height of the child.
func (e Edge) Elbow() []Point {
	return []Point{
		e.Source,
		{X: e.Source.X, Y: e.Target.Y},
		e.Target,
	}
}

// Edges returns the edges of the tree,
// in pre-order of their child nodes.
func (l *Layout) Edges() []Edge {
	var edges []Edge
	var walk func(n *newick.Node)
	walk = func(n *newick.Node) {
		src := l.Point(n)
		for _, c := range n.Children {
			edges = append(edges, Edge{
				Parent: n,
				Child:  c,
				Source: src,
				Target: l.Point(c),
			})
			walk(c)
		}
	}
	walk(l.root)
	return edges
}
