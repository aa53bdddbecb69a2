// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package bipart_test

import (
	"bytes"
	"reflect"
	"strings"
	"testing"

	"github.com/js-arias/phyloviz/bipart"
	"github.com/js-arias/phyloviz/layout"
	"github.com/js-arias/phyloviz/newick"
	"pgregory.net/rapid"
)

func TestCorrelate(t *testing.T) {
	l := newLayout(t, "(A:1,B:2,(C:3,D:4)CD:5);")

	sets := bipart.Sets{
		"s1": {"D", "C"},
		"s2": {"A"},
		"s3": {"X", "Y"},
		"s4": {"C", "D"},
	}
	edges := bipart.Correlate(l.Edges(), sets)
	if len(edges) != 5 {
		t.Fatalf("edges: got %d, want %d", len(edges), 5)
	}

	want := map[string]string{
		"A":  "s2",
		"B":  "",
		"CD": "s1", // first ID that matches
		"C":  "",
		"D":  "",
	}
	for _, e := range edges {
		if e.Bipartition != want[e.Child.Name] {
			t.Errorf("edge %q: got %q, want %q", e.Child.Name, e.Bipartition, want[e.Child.Name])
		}
		if e.Target != l.Point(e.Child) {
			t.Errorf("edge %q: target: got %v, want %v", e.Child.Name, e.Target, l.Point(e.Child))
		}
	}
	if dup := bipart.Duplicates(edges); len(dup) != 0 {
		t.Errorf("duplicates: got %v, want none", dup)
	}
}

func TestDuplicates(t *testing.T) {
	l := newLayout(t, "(((A,B)ab)x,C);")
	sets := bipart.Sets{
		"ab": {"A", "B"},
	}

	edges := bipart.Correlate(l.Edges(), sets)
	var matched []string
	for _, e := range edges {
		if e.Bipartition == "ab" {
			matched = append(matched, e.Child.Name)
		}
	}
	want := []string{"x", "ab"}
	if !reflect.DeepEqual(matched, want) {
		t.Errorf("matched: got %v, want %v", matched, want)
	}
	if dup := bipart.Duplicates(edges); !reflect.DeepEqual(dup, []string{"ab"}) {
		t.Errorf("duplicates: got %v, want %v", dup, []string{"ab"})
	}
}

func TestClades(t *testing.T) {
	root, err := newick.Parse("((A,B)ab,(C,(D,E)de)cde);", newick.Raw, nil)
	if err != nil {
		t.Fatalf("unable to parse tree: %v", err)
	}
	clades := bipart.Clades(root)

	want := map[string][]string{
		"ab":  {"A", "B"},
		"cde": {"C", "D", "E"},
		"de":  {"D", "E"},
		"A":   {"A"},
	}
	for _, n := range root.Nodes() {
		w, ok := want[n.Name]
		if !ok {
			continue
		}
		if !reflect.DeepEqual(clades[n], w) {
			t.Errorf("clade %q: got %v, want %v", n.Name, clades[n], w)
		}
	}
	if got := clades[root]; len(got) != 5 {
		t.Errorf("root clade: got %v", got)
	}
}

func TestEqual(t *testing.T) {
	tests := []struct {
		a, b []string
		want bool
	}{
		{[]string{"A", "B"}, []string{"B", "A"}, true},
		{[]string{"A", "B"}, []string{"A", "B", "C"}, false},
		{[]string{"A", "B"}, []string{"A", "C"}, false},
		{nil, []string{}, true},
		{[]string{"A", "A", "B"}, []string{"B", "A"}, true},
	}
	for _, test := range tests {
		if got := bipart.Equal(test.a, test.b); got != test.want {
			t.Errorf("equal %v %v: got %v, want %v", test.a, test.b, got, test.want)
		}
	}
}

func TestEqualProperties(t *testing.T) {
	names := rapid.SampledFrom([]string{"A", "B", "C", "D", "E", "F"})
	rapid.Check(t, func(t *rapid.T) {
		a := rapid.SliceOf(names).Draw(t, "a")
		b := rapid.SliceOf(names).Draw(t, "b")
		p := rapid.Permutation(a).Draw(t, "permutation")

		if !bipart.Equal(a, a) {
			t.Fatalf("not reflexive: %v", a)
		}
		if bipart.Equal(a, b) != bipart.Equal(b, a) {
			t.Fatalf("not symmetric: %v %v", a, b)
		}
		if !bipart.Equal(a, p) {
			t.Fatalf("order dependent: %v %v", a, p)
		}
	})
}

func TestTSV(t *testing.T) {
	sets := bipart.Sets{
		"split-1": {"Homo sapiens", "Pan troglodytes"},
		"split-2": {"Gorilla gorilla", "Homo sapiens", "Pan troglodytes"},
	}

	var buf bytes.Buffer
	if err := sets.TSV(&buf); err != nil {
		t.Fatalf("unable to write data: %v", err)
	}

	got, err := bipart.ReadTSV(strings.NewReader(buf.String()))
	if err != nil {
		t.Logf("output:\n%s\n", buf.String())
		t.Fatalf("unable to read data: %v", err)
	}
	if !reflect.DeepEqual(got, sets) {
		t.Errorf("sets: got %v, want %v", got, sets)
	}

	if _, err := bipart.ReadTSV(strings.NewReader("id\ttaxon\nx\tA\n")); err == nil {
		t.Errorf("bad header: expecting error")
	}
}

func newLayout(t testing.TB, s string) *layout.Layout {
	t.Helper()

	root, err := newick.Parse(s, newick.Raw, nil)
	if err != nil {
		t.Fatalf("unable to parse %q: %v", s, err)
	}
	l, err := layout.New(root, layout.DefaultConfig())
	if err != nil {
		t.Fatalf("unable to make layout: %v", err)
	}
	return l
}
