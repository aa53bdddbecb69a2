// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package cluster implements the grouping
// of the nodes of a weighted graph
// (for example a covariance or affinity matrix)
// using a threshold on the weight of the links.
//
// Two nodes are in the same group
// if there is a path between them
// made only of links with a value
// greater or equal to the threshold.
// Groups are recomputed from scratch
// on each call,
// and the input graph is never modified.
package cluster

import (
	"slices"
	"strconv"
)

// DefaultGroup is the group assigned to nodes
// without any link above the threshold.
const DefaultGroup = "-1"

// A Link is a weighted connection between two nodes.
type Link struct {
	Source string
	Target string
	Value  float64
}

// A Graph is a weighted graph.
type Graph struct {
	// Nodes are the IDs of the nodes of the graph.
	Nodes []string

	Links []Link
}

// IDs returns the IDs of the nodes
// in the graph,
// including the nodes only found in the links,
// in the order they are found.
func (g Graph) IDs() []string {
	seen := make(map[string]bool, len(g.Nodes))
	var ids []string
	add := func(id string) {
		if seen[id] {
			return
		}
		seen[id] = true
		ids = append(ids, id)
	}
	for _, id := range g.Nodes {
		add(id)
	}
	for _, l := range g.Links {
		add(l.Source)
		add(l.Target)
	}
	return ids
}

// Filter returns a new slice
// with the links with a value
// greater or equal to the threshold.
func Filter(links []Link, threshold float64) []Link {
	var f []Link
	for _, l := range links {
		if l.Value >= threshold {
			f = append(f, l)
		}
	}
	return f
}

// An Assignment is the assignment of nodes to groups.
type Assignment struct {
	Threshold float64

	// Groups maps node IDs to group IDs.
	Groups map[string]string

	// Sets are the members of each group,
	// in group order.
	Sets [][]string
}

// Group returns the group of a node.
func (a Assignment) Group(id string) string {
	if g, ok := a.Groups[id]; ok {
		return g
	}
	return DefaultGroup
}

// Threshold assigns the nodes of a graph to groups
// using the links with a value
// greater or equal to the threshold.
//
// Groups are numbered
// in the order they are created
// while reading the links.
// When a link connects two existing groups,
// the groups are merged
// and the merged group keeps the oldest number.
// Group numbers are consecutive,
// starting from "0".
func Threshold(g Graph, threshold float64) Assignment {
	ds := newDisjointSet()
	for _, l := range Filter(g.Links, threshold) {
		ds.link(l.Source, l.Target)
	}
	return ds.assignment(g.IDs(), threshold)
}

// Sweep returns the number of groups
// for each threshold value.
func Sweep(g Graph, thresholds []float64) []int {
	n := make([]int, len(thresholds))
	for i, t := range thresholds {
		n[i] = len(Threshold(g, t).Sets)
	}
	return n
}

// A disjointSet is a union-find structure
// with union by rank
// and path compression.
type disjointSet struct {
	parent  map[string]string
	rank    map[string]int
	created map[string]int // creation index, by root
	order   []string       // members, in order of arrival
	next    int
}

func newDisjointSet() *disjointSet {
	return &disjointSet{
		parent:  make(map[string]string),
		rank:    make(map[string]int),
		created: make(map[string]int),
	}
}

func (ds *disjointSet) has(id string) bool {
	_, ok := ds.parent[id]
	return ok
}

// newSet creates a new set with a single member.
func (ds *disjointSet) newSet(id string) {
	ds.parent[id] = id
	ds.created[id] = ds.next
	ds.next++
	ds.order = append(ds.order, id)
}

// join adds id to the set of root.
func (ds *disjointSet) join(id, root string) {
	ds.parent[id] = root
	ds.order = append(ds.order, id)
}

func (ds *disjointSet) find(id string) string {
	root := id
	for ds.parent[root] != root {
		root = ds.parent[root]
	}
	for id != root {
		next := ds.parent[id]
		ds.parent[id] = root
		id = next
	}
	return root
}

func (ds *disjointSet) union(a, b string) {
	ra, rb := ds.find(a), ds.find(b)
	if ra == rb {
		return
	}
	if ds.rank[ra] < ds.rank[rb] {
		ra, rb = rb, ra
	}
	ds.parent[rb] = ra
	if ds.rank[ra] == ds.rank[rb] {
		ds.rank[ra]++
	}
	if ds.created[rb] < ds.created[ra] {
		ds.created[ra] = ds.created[rb]
	}
	delete(ds.created, rb)
}

func (ds *disjointSet) link(source, target string) {
	hs, ht := ds.has(source), ds.has(target)
	switch {
	case !hs && !ht:
		ds.newSet(source)
		if target != source {
			ds.join(target, source)
		}
	case hs && !ht:
		ds.join(target, ds.find(source))
	case !hs && ht:
		ds.join(source, ds.find(target))
	default:
		ds.union(source, target)
	}
}

func (ds *disjointSet) assignment(ids []string, threshold float64) Assignment {
	roots := make([]string, 0, len(ds.created))
	for r := range ds.created {
		roots = append(roots, r)
	}
	slices.SortFunc(roots, func(a, b string) int {
		return ds.created[a] - ds.created[b]
	})

	group := make(map[string]int, len(roots))
	for i, r := range roots {
		group[r] = i
	}

	a := Assignment{
		Threshold: threshold,
		Groups:    make(map[string]string, len(ids)),
		Sets:      make([][]string, len(roots)),
	}
	for _, id := range ds.order {
		gi := group[ds.find(id)]
		a.Groups[id] = strconv.Itoa(gi)
		a.Sets[gi] = append(a.Sets[gi], id)
	}
	for _, id := range ids {
		if _, ok := a.Groups[id]; !ok {
			a.Groups[id] = DefaultGroup
		}
	}
	return a
}
