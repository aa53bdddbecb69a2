// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package project_test

import (
	"bytes"
	"os"
	"path/filepath"
	"reflect"
	"slices"
	"strings"
	"testing"

	"github.com/js-arias/phyloviz/bipart"
	"github.com/js-arias/phyloviz/cluster"
	"github.com/js-arias/phyloviz/newick"
	"github.com/js-arias/phyloviz/pipeline"
	"github.com/js-arias/phyloviz/project"
	"github.com/js-arias/phyloviz/settings"
)

type setPath struct {
	set  project.Dataset
	path string
}

func TestProject(t *testing.T) {
	p := project.New()

	sets := []setPath{
		{project.Newick, "trees.tre"},
		{project.Nexus, "trees.nex"},
		{project.Bipartitions, "splits.tab"},
		{project.Links, "links.tab"},
		{project.Matrix, "matrix.tab"},
		{project.Settings, "settings.yaml"},
	}

	for _, s := range sets {
		p.Add(s.set, s.path)
	}
	testProject(t, p, sets)

	name := "tmp-project-for-test.tab"
	defer os.Remove(name)

	p.SetName(name)
	if err := p.Write(); err != nil {
		t.Fatalf("error when writing data: %v", err)
	}

	np, err := project.Read(name)
	if err != nil {
		t.Fatalf("error when reading data: %v", err)
	}
	testProject(t, np, sets)
	if np.Name() != name {
		t.Errorf("name: got %q, want %q", np.Name(), name)
	}

	if prev := np.Add(project.Links, ""); prev != "links.tab" {
		t.Errorf("removed set: got previous %q, want %q", prev, "links.tab")
	}
	if path := np.Path(project.Links); path != "" {
		t.Errorf("removed set: got path %q", path)
	}
}

func TestReadUnknownDataset(t *testing.T) {
	name := "tmp-project-unknown-for-test.tab"
	defer os.Remove(name)

	data := "dataset\tpath\ngeomotion\tgeo-motion.tab\n"
	if err := os.WriteFile(name, []byte(data), 0644); err != nil {
		t.Fatalf("unable to write project: %v", err)
	}
	if _, err := project.Read(name); err == nil {
		t.Errorf("unknown dataset: expecting error")
	}
}

func TestDecode(t *testing.T) {
	data := `# phyloviz project files
Dataset	Path
nexus	trees.nex
links	
matrix	affinity.tab
`
	p, err := project.Decode(strings.NewReader(data))
	if err != nil {
		t.Fatalf("unable to decode project: %v", err)
	}
	want := []project.Dataset{project.Matrix, project.Nexus}
	if got := p.Sets(); !reflect.DeepEqual(got, want) {
		t.Errorf("sets: got %v, want %v", got, want)
	}

	var buf bytes.Buffer
	if err := p.Encode(&buf); err != nil {
		t.Fatalf("unable to encode project: %v", err)
	}
	np, err := project.Decode(strings.NewReader(buf.String()))
	if err != nil {
		t.Logf("output:\n%s\n", buf.String())
		t.Fatalf("unable to decode project: %v", err)
	}
	testProject(t, np, []setPath{
		{project.Matrix, "affinity.tab"},
		{project.Nexus, "trees.nex"},
	})

	bad := map[string]string{
		"duplicated": "dataset\tpath\nnexus\ta.nex\nnexus\tb.nex\n",
		"no path":    "dataset\nnexus\n",
		"no header":  "",
	}
	for name, data := range bad {
		if _, err := project.Decode(strings.NewReader(data)); err == nil {
			t.Errorf("%s: expecting error", name)
		}
	}
}

func TestFile(t *testing.T) {
	abs, err := filepath.Abs("splits.tab")
	if err != nil {
		t.Fatalf("unable to build path: %v", err)
	}

	p := project.New()
	p.SetName(filepath.Join("data", "primates.tab"))
	p.Add(project.Nexus, "trees.nex")
	p.Add(project.Bipartitions, abs)

	if got, want := p.File(project.Nexus), filepath.Join("data", "trees.nex"); got != want {
		t.Errorf("relative path: got %q, want %q", got, want)
	}
	if got := p.File(project.Bipartitions); got != abs {
		t.Errorf("absolute path: got %q, want %q", got, abs)
	}
	if got := p.File(project.Links); got != "" {
		t.Errorf("undefined dataset: got %q", got)
	}
	if got := p.Path(project.Nexus); got != "trees.nex" {
		t.Errorf("stored path: got %q, want %q", got, "trees.nex")
	}

	if got := p.Rel(filepath.Join("data", "splits.tab")); got != "splits.tab" {
		t.Errorf("rel: got %q, want %q", got, "splits.tab")
	}
	if got, want := p.Rel("links.tab"), filepath.Join("..", "links.tab"); got != want {
		t.Errorf("rel: got %q, want %q", got, want)
	}
	if got := p.Rel(abs); got != abs {
		t.Errorf("rel absolute: got %q, want %q", got, abs)
	}
}

func TestSession(t *testing.T) {
	files := map[string]string{
		"tmp-trees-for-test.tre":    "(A:1,B:2,(C:3,D:4)CD:5);\n",
		"tmp-splits-for-test.tab":   "bipartition\ttaxon\ns1\tC\ns1\tD\n",
		"tmp-matrix-for-test.tab":   "node\tA\tB\nA\t1\t5\nB\t5\t1\n",
		"tmp-settings-for-test.yml": "scheme: normalized_rtt\n",
	}
	for name, data := range files {
		if err := os.WriteFile(name, []byte(data), 0644); err != nil {
			t.Fatalf("unable to write file %q: %v", name, err)
		}
		defer os.Remove(name)
	}

	p := project.New()
	p.Add(project.Newick, "tmp-trees-for-test.tre")
	p.Add(project.Bipartitions, "tmp-splits-for-test.tab")
	p.Add(project.Matrix, "tmp-matrix-for-test.tab")
	p.Add(project.Settings, "tmp-settings-for-test.yml")

	set, err := p.Settings()
	if err != nil {
		t.Fatalf("unable to read settings: %v", err)
	}
	if set.LengthScheme() != newick.NormalizedRTT {
		t.Errorf("scheme: got %v, want %v", set.LengthScheme(), newick.NormalizedRTT)
	}

	sets, err := p.Bipartitions()
	if err != nil {
		t.Fatalf("unable to read bipartitions: %v", err)
	}
	if want := (bipart.Sets{"s1": {"C", "D"}}); !reflect.DeepEqual(sets, want) {
		t.Errorf("bipartitions: got %v, want %v", sets, want)
	}

	g, err := p.Graph()
	if err != nil {
		t.Fatalf("unable to read graph: %v", err)
	}
	want := cluster.Graph{
		Nodes: []string{"A", "B"},
		Links: []cluster.Link{{Source: "A", Target: "B", Value: 5}},
	}
	if !reflect.DeepEqual(g, want) {
		t.Errorf("graph: got %v, want %v", g, want)
	}

	s, err := p.Session(set, nil)
	if err != nil {
		t.Fatalf("unable to create session: %v", err)
	}
	if s.Format() != pipeline.Newick {
		t.Errorf("format: got %v, want %v", s.Format(), pipeline.Newick)
	}
	_, edges, err := s.Correlate(0, set.Layout())
	if err != nil {
		t.Fatalf("unable to correlate edges: %v", err)
	}
	var matched []string
	for _, e := range edges {
		if e.Bipartition != "" {
			matched = append(matched, e.Child.Name)
		}
	}
	if !reflect.DeepEqual(matched, []string{"CD"}) {
		t.Errorf("matched edges: got %v, want %v", matched, []string{"CD"})
	}

	empty := project.New()
	if _, _, err := empty.TreeFile(); err == nil {
		t.Errorf("empty project: expecting error")
	}
	if s, err := empty.Settings(); err != nil || !reflect.DeepEqual(s, settings.Default()) {
		t.Errorf("empty project: settings: got %v (%v), want default", s, err)
	}
}

func testProject(t testing.TB, p *project.Project, sets []setPath) {
	t.Helper()

	for _, s := range sets {
		if path := p.Path(s.set); path != s.path {
			t.Errorf("set %s: got path %q, want %q", s.set, path, s.path)
		}
	}
	datasets := make([]project.Dataset, 0, len(sets))
	for _, v := range sets {
		datasets = append(datasets, v.set)
	}
	slices.Sort(datasets)

	if ls := p.Sets(); !reflect.DeepEqual(ls, datasets) {
		t.Errorf("sets: got %v, want %v", ls, datasets)
	}
}
