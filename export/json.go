// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package export implements the output documents
// of laid out trees
// and cluster assignments,
// used by external renderers.
package export

import (
	"fmt"
	"io"

	"github.com/goccy/go-json"
	"github.com/js-arias/phyloviz/bipart"
	"github.com/js-arias/phyloviz/cluster"
	"github.com/js-arias/phyloviz/layout"
	"github.com/js-arias/phyloviz/newick"
)

// Point is a 2D coordinate.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

func newPoint(p layout.Point) Point {
	return Point{X: p.X, Y: p.Y}
}

// Scale is a linear scale.
type Scale struct {
	Domain [2]float64 `json:"domain"`
	Range  [2]float64 `json:"range"`
}

// Node is a node of a laid out tree.
type Node struct {
	ID       int     `json:"id"`
	Name     string  `json:"name,omitempty"`
	Parent   int     `json:"parent"`
	Length   float64 `json:"length"`
	RootDist float64 `json:"rootDist"`
	Depth    int     `json:"depth"`
	Leaf     bool    `json:"leaf"`
	Raw      Point   `json:"raw"`
	Point    Point   `json:"point"`
}

// Edge is an edge of a laid out tree.
type Edge struct {
	Parent      int     `json:"parent"`
	Child       int     `json:"child"`
	Bipartition string  `json:"bipartition,omitempty"`
	Path        []Point `json:"path"`
}

// LayoutDoc is the document of a laid out tree.
type LayoutDoc struct {
	Name   string  `json:"name,omitempty"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	X      Scale   `json:"x"`
	Y      Scale   `json:"y"`
	Nodes  []Node  `json:"nodes"`
	Edges  []Edge  `json:"edges"`

	// Duplicates are the IDs of bipartitions
	// assigned to more than one edge.
	Duplicates []string `json:"duplicates,omitempty"`
}

// NewLayoutDoc returns the document of a laid out tree.
// Nodes are stored in pre-order,
// so the root is always the first node,
// with parent -1.
func NewLayoutDoc(name string, l *layout.Layout, edges []bipart.Edge) LayoutDoc {
	cfg := l.Config()
	doc := LayoutDoc{
		Name:   name,
		Width:  cfg.Width,
		Height: cfg.Height,
		X:      Scale{Domain: l.X.Domain, Range: l.X.Range},
		Y:      Scale{Domain: l.Y.Domain, Range: l.Y.Range},
	}

	ids := make(map[*newick.Node]int)
	parent := make(map[*newick.Node]int)
	for i, n := range l.Root().Nodes() {
		ids[n] = i
		for _, c := range n.Children {
			parent[c] = i
		}
		p, ok := parent[n]
		if !ok {
			p = -1
		}
		doc.Nodes = append(doc.Nodes, Node{
			ID:       i,
			Name:     n.Name,
			Parent:   p,
			Length:   n.Length,
			RootDist: l.RootDist(n),
			Depth:    l.Depth(n),
			Leaf:     n.IsLeaf(),
			Raw:      newPoint(l.Raw(n)),
			Point:    newPoint(l.Point(n)),
		})
	}

	doc.Edges = make([]Edge, 0, len(edges))
	for _, e := range edges {
		var path []Point
		for _, p := range e.Elbow() {
			path = append(path, newPoint(p))
		}
		doc.Edges = append(doc.Edges, Edge{
			Parent:      ids[e.Parent],
			Child:       ids[e.Child],
			Bipartition: e.Bipartition,
			Path:        path,
		})
	}
	doc.Duplicates = bipart.Duplicates(edges)
	return doc
}

// ClusterDoc is the document of a cluster assignment.
type ClusterDoc struct {
	Threshold float64           `json:"threshold"`
	Method    string            `json:"method"`
	Groups    map[string]string `json:"groups"`
	Sets      [][]string        `json:"sets"`
}

// NewClusterDoc returns the document
// of a cluster assignment.
func NewClusterDoc(method string, a cluster.Assignment) ClusterDoc {
	sets := a.Sets
	if sets == nil {
		sets = [][]string{}
	}
	return ClusterDoc{
		Threshold: a.Threshold,
		Method:    method,
		Groups:    a.Groups,
		Sets:      sets,
	}
}

// JSON writes a document as indented JSON.
func JSON(w io.Writer, doc any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("while encoding JSON: %v", err)
	}
	return nil
}
