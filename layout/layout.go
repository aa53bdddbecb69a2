// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package layout implements a rectangular layout
// of phylogenetic trees
// (i.e., a phylogram).
//
// In the layout the x coordinate of a node
// is its distance from the root,
// and the terminals are evenly spaced
// along the y axis.
// The y coordinate of an internal node
// is the middle point between the top and bottom
// of its descendants.
//
// Coordinates are stored in a side table
// keyed by node,
// so a tree is never modified by a layout,
// and the same tree can be used in several layouts
// at the same time.
// Raw coordinates are kept apart from the pixel scales,
// so a layout can be rescaled
// without computing the coordinates again.
package layout

import (
	"errors"

	"github.com/js-arias/phyloviz/newick"
	"gonum.org/v1/gonum/floats"
)

// Layout errors.
var (
	ErrNoLeaves = errors.New("layout: tree without terminals")
	ErrCanvas   = errors.New("layout: invalid canvas size")
)

// Config is the size of the canvas
// and its margins,
// in pixels.
type Config struct {
	Width  float64
	Height float64

	Left   float64
	Right  float64 // space for terminal labels
	Top    float64
	Bottom float64
}

// DefaultConfig returns the default canvas.
func DefaultConfig() Config {
	return Config{
		Width:  800,
		Height: 600,
		Left:   20,
		Right:  150,
		Top:    20,
		Bottom: 20,
	}
}

// Validate returns ErrCanvas
// if the canvas is empty
// or the margins are larger than the canvas.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return ErrCanvas
	}
	if c.Left+c.Right > c.Width || c.Top+c.Bottom > c.Height {
		return ErrCanvas
	}
	return nil
}

// A Point is a 2D coordinate.
type Point struct {
	X float64
	Y float64
}

type position struct {
	dist  float64
	depth int
	y     float64
}

// A Layout is a rectangular layout of a tree.
type Layout struct {
	root   *newick.Node
	nodes  map[*newick.Node]*position
	leaves []*newick.Node
	cfg    Config

	// X maps root distances into pixels.
	X Scale

	// Y maps raw y values into pixels.
	Y Scale
}

// New returns the layout of a tree
// for the given canvas.
func New(root *newick.Node, cfg Config) (*Layout, error) {
	if root == nil {
		return nil, ErrNoLeaves
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	l := &Layout{
		root:  root,
		nodes: make(map[*newick.Node]*position, root.Len()),
	}
	for n, d := range RootDistance(root) {
		l.nodes[n] = &position{dist: d}
	}
	l.leaves = root.Leaves()
	if len(l.leaves) == 0 {
		return nil, ErrNoLeaves
	}

	l.setY(cfg.Height)
	l.setScales(cfg)
	return l, nil
}

// RootDistance returns the distance
// (sum of branch lengths)
// from the root to each node of the tree.
// The root is at distance 0.
func RootDistance(root *newick.Node) map[*newick.Node]float64 {
	dist := make(map[*newick.Node]float64, root.Len())
	var walk func(n *newick.Node, d float64)
	walk = func(n *newick.Node, d float64) {
		if _, ok := dist[n]; ok {
			return
		}
		dist[n] = d
		for _, c := range n.Children {
			walk(c, d+c.Length)
		}
	}
	walk(root, 0)
	return dist
}

// SetY sets the raw y values.
// Terminals are evenly spaced,
// and internal nodes are set,
// from the deepest to the root,
// at the middle of their descendants.
func (l *Layout) setY(height float64) {
	dy := height / float64(len(l.leaves)+1)
	for i, n := range l.leaves {
		l.nodes[n].y = dy * float64(i+1)
	}

	var byDepth [][]*newick.Node
	var walk func(n *newick.Node, depth int)
	walk = func(n *newick.Node, depth int) {
		l.nodes[n].depth = depth
		if n.IsLeaf() {
			return
		}
		for len(byDepth) <= depth {
			byDepth = append(byDepth, nil)
		}
		byDepth[depth] = append(byDepth[depth], n)
		for _, c := range n.Children {
			walk(c, depth+1)
		}
	}
	walk(l.root, 0)

	for d := len(byDepth) - 1; d >= 0; d-- {
		for _, n := range byDepth[d] {
			if len(n.Children) == 1 {
				l.nodes[n].y = l.nodes[n.Children[0]].y
				continue
			}
			ys := make([]float64, 0, len(n.Children))
			for _, c := range n.Children {
				ys = append(ys, l.nodes[c].y)
			}
			l.nodes[n].y = (floats.Min(ys) + floats.Max(ys)) / 2
		}
	}
}

func (l *Layout) setScales(cfg Config) {
	xs := make([]float64, 0, len(l.leaves))
	ys := make([]float64, 0, len(l.leaves))
	for _, n := range l.leaves {
		p := l.nodes[n]
		xs = append(xs, p.dist)
		ys = append(ys, p.y)
	}

	l.cfg = cfg
	l.X = Scale{
		Domain: [2]float64{0, floats.Max(xs)},
		Range:  [2]float64{cfg.Left, cfg.Width - cfg.Right},
	}
	l.Y = Scale{
		Domain: [2]float64{floats.Min(ys), floats.Max(ys)},
		Range:  [2]float64{cfg.Top, cfg.Height - cfg.Bottom},
	}
}

// Rescale returns a new layout of the same tree
// with the scales set for a different canvas.
// The raw coordinates are shared
// with the original layout.
func (l *Layout) Rescale(cfg Config) (*Layout, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	nl := &Layout{
		root:   l.root,
		nodes:  l.nodes,
		leaves: l.leaves,
	}
	nl.setScales(cfg)
	return nl, nil
}

// Config returns the canvas used by the scales.
func (l *Layout) Config() Config {
	return l.cfg
}

// Root returns the root of the laid out tree.
func (l *Layout) Root() *newick.Node {
	return l.root
}

// Leaves returns the terminals of the tree
// in the order used for the y axis.
func (l *Layout) Leaves() []*newick.Node {
	return l.leaves
}

// Has returns true if n is a node
// of the laid out tree.
func (l *Layout) Has(n *newick.Node) bool {
	_, ok := l.nodes[n]
	return ok
}

// RootDist returns the distance from the root
// to the node.
func (l *Layout) RootDist(n *newick.Node) float64 {
	if p, ok := l.nodes[n]; ok {
		return p.dist
	}
	return 0
}

// Depth returns the number of edges
// between the root and the node.
func (l *Layout) Depth(n *newick.Node) int {
	if p, ok := l.nodes[n]; ok {
		return p.depth
	}
	return 0
}

// Raw returns the raw coordinates of a node.
func (l *Layout) Raw(n *newick.Node) Point {
	p, ok := l.nodes[n]
	if !ok {
		return Point{}
	}
	return Point{X: p.dist, Y: p.y}
}

// Point returns the pixel coordinates of a node.
func (l *Layout) Point(n *newick.Node) Point {
	r := l.Raw(n)
	return Point{
		X: l.X.Map(r.X),
		Y: l.Y.Map(r.Y),
	}
}
