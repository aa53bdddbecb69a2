// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package export_test

import (
	"bytes"
	"encoding/xml"
	"errors"
	"io"
	"reflect"
	"testing"

	"github.com/goccy/go-json"
	"github.com/js-arias/phyloviz/bipart"
	"github.com/js-arias/phyloviz/cluster"
	"github.com/js-arias/phyloviz/export"
	"github.com/js-arias/phyloviz/layout"
	"github.com/js-arias/phyloviz/newick"
)

func TestLayoutDoc(t *testing.T) {
	l, edges := newLayout(t, "(A:1,B:2,(C:3,D:4)CD:5);", bipart.Sets{
		"s1": {"C", "D"},
	})

	doc := export.NewLayoutDoc("test", l, edges)
	var buf bytes.Buffer
	if err := export.JSON(&buf, doc); err != nil {
		t.Fatalf("unable to write JSON: %v", err)
	}

	var got export.LayoutDoc
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("unable to decode JSON: %v", err)
	}
	if !reflect.DeepEqual(got, doc) {
		t.Errorf("document: got %v, want %v", got, doc)
	}

	if len(got.Nodes) != 6 {
		t.Fatalf("nodes: got %d, want %d", len(got.Nodes), 6)
	}
	if got.Nodes[0].Parent != -1 {
		t.Errorf("root parent: got %d, want %d", got.Nodes[0].Parent, -1)
	}
	parents := map[string]string{
		"A":  "",
		"B":  "",
		"CD": "",
		"C":  "CD",
		"D":  "CD",
	}
	for _, n := range got.Nodes[1:] {
		p := got.Nodes[n.Parent].Name
		if p != parents[n.Name] {
			t.Errorf("node %q: parent: got %q, want %q", n.Name, p, parents[n.Name])
		}
		if n.Name == "D" {
			if n.RootDist != 9 {
				t.Errorf("node %q: root distance: got %.3f, want %.3f", n.Name, n.RootDist, 9.0)
			}
			if want := (export.Point{X: 650, Y: 580}); n.Point != want {
				t.Errorf("node %q: point: got %v, want %v", n.Name, n.Point, want)
			}
		}
	}

	if len(got.Edges) != 5 {
		t.Fatalf("edges: got %d, want %d", len(got.Edges), 5)
	}
	for _, e := range got.Edges {
		want := ""
		if got.Nodes[e.Child].Name == "CD" {
			want = "s1"
		}
		if e.Bipartition != want {
			t.Errorf("edge %q: got %q, want %q", got.Nodes[e.Child].Name, e.Bipartition, want)
		}
		if len(e.Path) != 3 {
			t.Errorf("edge %q: path: got %d points, want %d", got.Nodes[e.Child].Name, len(e.Path), 3)
		}
	}
}

func TestClusterDoc(t *testing.T) {
	g := cluster.Graph{
		Links: []cluster.Link{
			{Source: "1", Target: "2", Value: 5},
			{Source: "2", Target: "3", Value: 1},
		},
	}
	doc := export.NewClusterDoc("threshold", cluster.Threshold(g, 3))

	var buf bytes.Buffer
	if err := export.JSON(&buf, doc); err != nil {
		t.Fatalf("unable to write JSON: %v", err)
	}
	var got export.ClusterDoc
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("unable to decode JSON: %v", err)
	}
	want := export.ClusterDoc{
		Threshold: 3,
		Method:    "threshold",
		Groups: map[string]string{
			"1": "0",
			"2": "0",
			"3": cluster.DefaultGroup,
		},
		Sets: [][]string{{"1", "2"}},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("document: got %v, want %v", got, want)
	}
}

func TestSVG(t *testing.T) {
	l, edges := newLayout(t, "(((A,B)ab)x,C);", bipart.Sets{
		"ab": {"A", "B"},
	})

	var buf bytes.Buffer
	if err := export.SVG(&buf, l, edges); err != nil {
		t.Fatalf("unable to write SVG: %v", err)
	}

	count := make(map[string]int)
	var titles []string
	var inTitle bool
	dec := xml.NewDecoder(&buf)
	for {
		tk, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			t.Fatalf("invalid SVG: %v", err)
		}
		switch v := tk.(type) {
		case xml.StartElement:
			count[v.Name.Local]++
			if v.Name.Local == "polyline" {
				for _, a := range v.Attr {
					if a.Name.Local == "stroke" && a.Value != export.DuplicateColor {
						t.Errorf("duplicated bipartition: got color %q, want %q", a.Value, export.DuplicateColor)
					}
				}
			}
			inTitle = v.Name.Local == "title"
		case xml.CharData:
			if inTitle {
				titles = append(titles, string(v))
			}
		case xml.EndElement:
			inTitle = false
		}
	}

	if count["polyline"] != len(edges) {
		t.Errorf("edges: got %d, want %d", count["polyline"], len(edges))
	}
	if count["text"] != 3 {
		t.Errorf("labels: got %d, want %d", count["text"], 3)
	}
	if want := []string{"ab", "ab"}; !reflect.DeepEqual(titles, want) {
		t.Errorf("titles: got %v, want %v", titles, want)
	}
}

func newLayout(t testing.TB, s string, sets bipart.Sets) (*layout.Layout, []bipart.Edge) {
	t.Helper()

	root, err := newick.Parse(s, newick.Raw, nil)
	if err != nil {
		t.Fatalf("unable to parse %q: %v", s, err)
	}
	l, err := layout.New(root, layout.DefaultConfig())
	if err != nil {
		t.Fatalf("unable to make layout: %v", err)
	}
	return l, bipart.Correlate(l.Edges(), sets)
}
