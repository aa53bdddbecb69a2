// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package cluster

import (
	"slices"
	"strconv"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/community"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"
)

// weighted is an undirected weighted graph
// made with the links above a threshold.
type weighted struct {
	g   *simple.WeightedUndirectedGraph
	ids []string       // node IDs, by graph ID
	idx map[string]int // graph IDs, by node ID
}

func newWeighted(g Graph, threshold float64) *weighted {
	w := &weighted{
		g:   simple.NewWeightedUndirectedGraph(0, 0),
		idx: make(map[string]int),
	}
	node := func(id string) graph.Node {
		i, ok := w.idx[id]
		if !ok {
			i = len(w.ids)
			w.idx[id] = i
			w.ids = append(w.ids, id)
			w.g.AddNode(simple.Node(i))
		}
		return simple.Node(i)
	}

	for _, l := range Filter(g.Links, threshold) {
		from := node(l.Source)
		to := node(l.Target)
		if from.ID() == to.ID() {
			// self links are not allowed in simple graphs
			continue
		}
		w.g.SetWeightedEdge(w.g.NewWeightedEdge(from, to, l.Value))
	}
	return w
}

// sets returns the sets of node IDs
// sorted by the first member
// (in order of arrival).
func (w *weighted) sets(nodes [][]graph.Node) [][]string {
	idx := make([][]int64, 0, len(nodes))
	for _, c := range nodes {
		ids := make([]int64, 0, len(c))
		for _, n := range c {
			ids = append(ids, n.ID())
		}
		slices.Sort(ids)
		idx = append(idx, ids)
	}
	slices.SortFunc(idx, func(a, b []int64) int {
		return int(a[0] - b[0])
	})

	sets := make([][]string, 0, len(idx))
	for _, c := range idx {
		s := make([]string, 0, len(c))
		for _, i := range c {
			s = append(s, w.ids[i])
		}
		sets = append(sets, s)
	}
	return sets
}

// Components returns the connected components
// of the graph made with the links
// with a value greater or equal to the threshold.
// Nodes without links above the threshold
// are ignored.
func Components(g Graph, threshold float64) [][]string {
	w := newWeighted(g, threshold)
	return w.sets(topo.ConnectedComponents(w.g))
}

// Communities assigns the nodes to groups
// using the Louvain modularity algorithm
// on the graph made with the links
// with a value greater or equal to the threshold,
// at the given resolution.
// The seed is used for the random number generator,
// so the same seed always gives the same result.
func Communities(g Graph, threshold, resolution float64, seed uint64) Assignment {
	w := newWeighted(g, threshold)

	a := Assignment{
		Threshold: threshold,
		Groups:    make(map[string]string),
	}
	if len(w.ids) > 0 {
		r := community.Modularize(w.g, resolution, rand.NewSource(seed))
		a.Sets = w.sets(r.Communities())
	}
	for i, s := range a.Sets {
		for _, id := range s {
			a.Groups[id] = strconv.Itoa(i)
		}
	}
	for _, id := range g.IDs() {
		if _, ok := a.Groups[id]; !ok {
			a.Groups[id] = DefaultGroup
		}
	}
	return a
}
