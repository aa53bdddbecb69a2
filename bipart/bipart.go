// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package bipart implements the correlation
// between the edges of a tree
// and a set of bipartitions
// identified by an external source
// (for example a network of splits).
//
// A bipartition is identified
// by the set of taxa on one side of the split.
// An edge matches a bipartition
// if the clade of its descendant node
// is equal to the taxon set of the bipartition.
package bipart

import (
	"slices"

	"github.com/js-arias/phyloviz/layout"
	"github.com/js-arias/phyloviz/newick"
)

// Sets is a collection of bipartitions,
// as a map of bipartition IDs
// to the names of the taxa in the bipartition.
type Sets map[string][]string

// IDs returns the sorted IDs of the bipartitions.
func (s Sets) IDs() []string {
	ids := make([]string, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// An Edge is a tree edge
// annotated with a bipartition ID.
type Edge struct {
	layout.Edge

	// Bipartition is the ID of the matching bipartition.
	// It is empty if no bipartition matches the edge.
	Bipartition string
}

// Correlate annotates each edge
// with the first bipartition
// (in ID order)
// that is equal to the clade of the edge.
//
// A bipartition is not removed from the candidates
// after it matches an edge,
// so the same bipartition might be assigned
// to more than one edge
// (for example in a chain of single-child nodes).
// Use Duplicates to detect such cases.
func Correlate(edges []layout.Edge, sets Sets) []Edge {
	ids := sets.IDs()
	cand := make([]taxonSet, len(ids))
	for i, id := range ids {
		cand[i] = newTaxonSet(sets[id])
	}

	memo := make(map[*newick.Node]taxonSet)
	ann := make([]Edge, 0, len(edges))
	for _, e := range edges {
		ae := Edge{Edge: e}
		clade := cladeSet(e.Child, memo)
		for i, c := range cand {
			if c.equal(clade) {
				ae.Bipartition = ids[i]
				break
			}
		}
		ann = append(ann, ae)
	}
	return ann
}

// Duplicates returns the sorted IDs of the bipartitions
// assigned to more than one edge.
func Duplicates(edges []Edge) []string {
	count := make(map[string]int)
	for _, e := range edges {
		if e.Bipartition == "" {
			continue
		}
		count[e.Bipartition]++
	}

	var dup []string
	for id, c := range count {
		if c > 1 {
			dup = append(dup, id)
		}
	}
	slices.Sort(dup)
	return dup
}

// Clades returns the names of the terminals
// descendant of each node of a tree.
// Terminals without a name are ignored.
func Clades(root *newick.Node) map[*newick.Node][]string {
	memo := make(map[*newick.Node]taxonSet)
	cladeSet(root, memo)

	clades := make(map[*newick.Node][]string, len(memo))
	for n, s := range memo {
		clades[n] = s.names()
	}
	return clades
}

// Equal returns true if two lists of taxa
// have the same elements,
// regardless of its order.
func Equal(a, b []string) bool {
	return newTaxonSet(a).equal(newTaxonSet(b))
}

type taxonSet map[string]struct{}

func newTaxonSet(names []string) taxonSet {
	s := make(taxonSet, len(names))
	for _, n := range names {
		s[n] = struct{}{}
	}
	return s
}

func (s taxonSet) equal(o taxonSet) bool {
	if len(s) != len(o) {
		return false
	}
	for n := range s {
		if _, ok := o[n]; !ok {
			return false
		}
	}
	return true
}

func (s taxonSet) names() []string {
	ls := make([]string, 0, len(s))
	for n := range s {
		ls = append(ls, n)
	}
	slices.Sort(ls)
	return ls
}

func cladeSet(n *newick.Node, memo map[*newick.Node]taxonSet) taxonSet {
	if s, ok := memo[n]; ok {
		return s
	}

	s := make(taxonSet)
	if n.IsLeaf() && n.Name != "" {
		s[n.Name] = struct{}{}
	}
	for _, c := range n.Children {
		for tax := range cladeSet(c, memo) {
			s[tax] = struct{}{}
		}
	}
	memo[n] = s
	return s
}
