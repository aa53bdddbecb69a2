// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package newick_test

import (
	"errors"
	"math"
	"reflect"
	"strings"
	"testing"

	"github.com/js-arias/phyloviz/newick"
)

func TestParse(t *testing.T) {
	root, err := newick.Parse("(A:1,B:2,(C:3,D:4):5);", newick.Raw, nil)
	if err != nil {
		t.Fatalf("unable to parse tree: %v", err)
	}

	want := &newick.Node{
		Length: 1,
		Children: []*newick.Node{
			{Name: "A", Length: 1},
			{Name: "B", Length: 2},
			{
				Length: 5,
				Children: []*newick.Node{
					{Name: "C", Length: 3},
					{Name: "D", Length: 4},
				},
			},
		},
	}
	testTree(t, "example", root, want)

	if got := len(root.Leaves()); got != 4 {
		t.Errorf("leaves: got %d, want %d", got, 4)
	}
	if got := root.Len(); got != 6 {
		t.Errorf("nodes: got %d, want %d", got, 6)
	}
	terms := []string{"A", "B", "C", "D"}
	if got := root.Terms(); !reflect.DeepEqual(got, terms) {
		t.Errorf("terms: got %v, want %v", got, terms)
	}
}

func TestParseNames(t *testing.T) {
	tests := map[string]struct {
		in    string
		trans map[string]string
		want  *newick.Node
	}{
		"default lengths": {
			in: "(A,B)root;",
			want: &newick.Node{
				Name:   "root",
				Length: 1,
				Children: []*newick.Node{
					{Name: "A", Length: 1},
					{Name: "B", Length: 1},
				},
			},
		},
		"single node": {
			in:   "A:0.5;",
			want: &newick.Node{Name: "A", Length: 0.5},
		},
		"spaces and comments": {
			in: "( Homo sapiens : 0.25 [&support=0.9], Pan[x] :0.75 ) ;",
			want: &newick.Node{
				Length: 1,
				Children: []*newick.Node{
					{Name: "Homo sapiens", Length: 0.25},
					{Name: "Pan", Length: 0.75},
				},
			},
		},
		"translate": {
			in:    "(1:1,2:1,3:1);",
			trans: map[string]string{"1": "Alpha", "2": "Beta"},
			want: &newick.Node{
				Length: 1,
				Children: []*newick.Node{
					{Name: "Alpha", Length: 1},
					{Name: "Beta", Length: 1},
					{Name: "3", Length: 1},
				},
			},
		},
		"internal names": {
			in: "((A,B)ab:2,C)abc;",
			want: &newick.Node{
				Name:   "abc",
				Length: 1,
				Children: []*newick.Node{
					{
						Name:   "ab",
						Length: 2,
						Children: []*newick.Node{
							{Name: "A", Length: 1},
							{Name: "B", Length: 1},
						},
					},
					{Name: "C", Length: 1},
				},
			},
		},
		"stop at terminal": {
			in:   "A:2;(B,C);",
			want: &newick.Node{Name: "A", Length: 2},
		},
	}

	for name, test := range tests {
		root, err := newick.Parse(test.in, newick.Raw, test.trans)
		if err != nil {
			t.Errorf("%s: unexpected error: %v", name, err)
			continue
		}
		testTree(t, name, root, test.want)
	}
}

func TestParseErrors(t *testing.T) {
	tests := map[string]struct {
		in     string
		scheme newick.LengthScheme
		err    error
	}{
		"close without open": {in: "A);", err: newick.ErrUnbalanced},
		"unclosed":           {in: "((A,B),C;", err: newick.ErrUnbalanced},
		"top level sibling":  {in: "A,B;", err: newick.ErrUnbalanced},
		"bad length":         {in: "(A:x,B);", err: newick.ErrLength},
		"infinite length":    {in: "(A:Inf,B);", err: newick.ErrLength},
		"empty":              {in: "  ", err: newick.ErrEmpty},
		"only terminal":      {in: ";", err: newick.ErrEmpty},
		"open comment":       {in: "(A,B)[root;", err: newick.ErrComment},
		"zero depth":         {in: "A;", scheme: newick.NormalizedRTT, err: newick.ErrZeroDepth},
	}

	for name, test := range tests {
		_, err := newick.Parse(test.in, test.scheme, nil)
		if !errors.Is(err, test.err) {
			t.Errorf("%s: got error %v, want %v", name, err, test.err)
			continue
		}
		var pe *newick.ParseError
		if !errors.As(err, &pe) {
			t.Errorf("%s: error %v is not a parse error", name, err)
		}
	}
}

func TestNormalized(t *testing.T) {
	in := "((A:3,B:4):5,C:6);"
	raw, err := newick.Parse(in, newick.Raw, nil)
	if err != nil {
		t.Fatalf("unable to parse tree: %v", err)
	}
	norm, err := newick.Parse(in, newick.Normalized, nil)
	if err != nil {
		t.Fatalf("unable to parse tree: %v", err)
	}
	testTree(t, "normalized", norm, raw)
}

func TestNormalizedRTT(t *testing.T) {
	root, err := newick.Parse("((A:3,B:4):5,(C,(D,E)));", newick.NormalizedRTT, nil)
	if err != nil {
		t.Fatalf("unable to parse tree: %v", err)
	}

	lengths := map[string]float64{
		"A": 1.0 / 3,
		"B": 1.0 / 3,
		"C": 2.0 / 3,
		"D": 1.0 / 3,
		"E": 1.0 / 3,
	}
	for _, l := range root.Leaves() {
		if !closeTo(l.Length, lengths[l.Name]) {
			t.Errorf("length %q: got %.6f, want %.6f", l.Name, l.Length, lengths[l.Name])
		}
	}

	// every terminal is at distance 1 from the root
	var walk func(n *newick.Node, d float64)
	walk = func(n *newick.Node, d float64) {
		if n.IsLeaf() {
			if !closeTo(d, 1) {
				t.Errorf("root distance %q: got %.6f, want 1", n.Name, d)
			}
			return
		}
		for _, c := range n.Children {
			walk(c, d+c.Length)
		}
	}
	walk(root, 0)
}

func TestReadAll(t *testing.T) {
	in := `(A:1,B:2);
	((C,D),E);
	`
	trees, err := newick.ReadAll(strings.NewReader(in), newick.Raw)
	if err != nil {
		t.Fatalf("unable to read trees: %v", err)
	}
	if len(trees) != 2 {
		t.Fatalf("trees: got %d, want %d", len(trees), 2)
	}

	want := [][]string{
		{"A", "B"},
		{"C", "D", "E"},
	}
	for i, tr := range trees {
		if got := tr.Terms(); !reflect.DeepEqual(got, want[i]) {
			t.Errorf("tree %d: got terms %v, want %v", i, got, want[i])
		}
	}

	if _, err := newick.ReadAll(strings.NewReader("(A,B);(C,D;"), newick.Raw); !errors.Is(err, newick.ErrUnbalanced) {
		t.Errorf("bad second tree: got error %v, want %v", err, newick.ErrUnbalanced)
	}
}

func TestReadAllLarge(t *testing.T) {
	const tree = "((Homo:1,Pan:1):2,(Gorilla:2,(Pongo:1,Hylobates:1):1):1);\n"
	const n = 5000

	var b strings.Builder
	for i := 0; i < n; i++ {
		b.WriteString(tree)
	}
	trees, err := newick.ReadAll(strings.NewReader(b.String()), newick.Raw)
	if err != nil {
		t.Fatalf("unable to read trees: %v", err)
	}
	if len(trees) != n {
		t.Fatalf("trees: got %d, want %d", len(trees), n)
	}
	want := []string{"Gorilla", "Homo", "Hylobates", "Pan", "Pongo"}
	for _, i := range []int{0, n / 2, n - 1} {
		if got := trees[i].Terms(); !reflect.DeepEqual(got, want) {
			t.Errorf("tree %d: got terms %v, want %v", i, got, want)
		}
	}
}

func TestReadAllErrorPos(t *testing.T) {
	in := "(A,B);\n(C:x,D);"
	_, err := newick.ReadAll(strings.NewReader(in), newick.Raw)
	var pe *newick.ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("got error %v, want a parse error", err)
	}
	if !errors.Is(err, newick.ErrLength) {
		t.Errorf("got error %v, want %v", err, newick.ErrLength)
	}
	if pe.Pos != 10 || pe.Token != "x" {
		t.Errorf("error at %d, token %q: want at %d, token %q", pe.Pos, pe.Token, 10, "x")
	}
	if !strings.HasPrefix(err.Error(), "tree 2:") {
		t.Errorf("error %q: want tree 2", err.Error())
	}

	// missing parenthesis reported at the terminator
	_, err = newick.ReadAll(strings.NewReader("(A,B);\n((C,D);"), newick.Raw)
	if !errors.As(err, &pe) {
		t.Fatalf("got error %v, want a parse error", err)
	}
	if pe.Pos != 13 {
		t.Errorf("unbalanced: error at %d, want %d", pe.Pos, 13)
	}
}

func TestParseScheme(t *testing.T) {
	for _, s := range []newick.LengthScheme{newick.Raw, newick.Normalized, newick.NormalizedRTT} {
		got, err := newick.ParseScheme(strings.ToUpper(s.String()))
		if err != nil {
			t.Errorf("scheme %q: unexpected error: %v", s, err)
			continue
		}
		if got != s {
			t.Errorf("scheme %q: got %q", s, got)
		}
	}
	if s, err := newick.ParseScheme(""); err != nil || s != newick.Raw {
		t.Errorf("empty scheme: got %q, %v", s, err)
	}
	if _, err := newick.ParseScheme("ultrametric"); err == nil {
		t.Errorf("unknown scheme: expecting error")
	}
}

// tester is the subset of testing.TB
// also implemented by rapid.T.
type tester interface {
	Helper()
	Errorf(format string, args ...any)
}

func testTree(t tester, name string, got, want *newick.Node) {
	t.Helper()

	if got.Name != want.Name {
		t.Errorf("%s: name: got %q, want %q", name, got.Name, want.Name)
	}
	if !closeTo(got.Length, want.Length) {
		t.Errorf("%s: node %q: length: got %.6f, want %.6f", name, want.Name, got.Length, want.Length)
	}
	if len(got.Children) != len(want.Children) {
		t.Errorf("%s: node %q: children: got %d, want %d", name, want.Name, len(got.Children), len(want.Children))
		return
	}
	for i := range got.Children {
		testTree(t, name, got.Children[i], want.Children[i])
	}
}

func closeTo(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}
