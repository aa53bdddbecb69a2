// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package project implements the PhyloViz project file,
// a tab-delimited list that binds each kind of input
// (trees, bipartitions, graph, settings)
// to the file that stores it.
//
// Relative paths are resolved
// from the directory of the project file.
package project

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"
)

// Dataset is a keyword to identify
// the type of a dataset file in a project.
type Dataset string

// Valid dataset types.
const (
	// File for bipartitions
	// (sets of taxa identified by an external source).
	Bipartitions Dataset = "bipartitions"

	// File for the links of a weighted graph.
	Links Dataset = "links"

	// File for a square matrix of weights
	// (for example a covariance or affinity matrix).
	Matrix Dataset = "matrix"

	// File for phylogenetic trees in Newick format.
	Newick Dataset = "newick"

	// File for phylogenetic trees in NEXUS format.
	Nexus Dataset = "nexus"

	// File for the analysis settings.
	Settings Dataset = "settings"
)

// IsValid returns true if the dataset
// is a known dataset type.
func (d Dataset) IsValid() bool {
	switch d {
	case Bipartitions, Links, Matrix, Newick, Nexus, Settings:
		return true
	}
	return false
}

// A Project maps each dataset
// to the path of its file.
type Project struct {
	name  string
	paths map[Dataset]string
}

// New creates a new empty project.
func New() *Project {
	return &Project{paths: make(map[Dataset]string)}
}

var header = []string{
	"dataset",
	"path",
}

// Read reads a project file.
func Read(name string) (*Project, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	p, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("on file %q: %v", name, err)
	}
	p.name = name
	return p, nil
}

// Decode reads a project from a TSV input
// with the fields:
//
//   - dataset, the kind of input
//   - path, the file that stores it
//
// Here is an example file:
//
//	# phyloviz project files
//	dataset	path
//	nexus	trees.nex
//	bipartitions	splits.tab
//	matrix	affinity.tab
//	settings	settings.yaml
//
// A dataset defined twice is an error.
func Decode(r io.Reader) (*Project, error) {
	tsv := csv.NewReader(r)
	tsv.Comma = '\t'
	tsv.Comment = '#'

	head, err := tsv.Read()
	if err != nil {
		return nil, fmt.Errorf("header: %v", err)
	}
	fields := make(map[string]int, len(head))
	for i, h := range head {
		fields[strings.ToLower(strings.TrimSpace(h))] = i
	}
	for _, h := range header {
		if _, ok := fields[h]; !ok {
			return nil, fmt.Errorf("expecting field %q", h)
		}
	}

	p := New()
	for {
		row, err := tsv.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		ln, _ := tsv.FieldPos(0)
		if err != nil {
			return nil, fmt.Errorf("on row %d: %v", ln, err)
		}

		set := Dataset(strings.ToLower(strings.TrimSpace(row[fields["dataset"]])))
		if !set.IsValid() {
			return nil, fmt.Errorf("on row %d: unknown dataset %q", ln, set)
		}
		if _, dup := p.paths[set]; dup {
			return nil, fmt.Errorf("on row %d: dataset %q already defined", ln, set)
		}
		path := strings.TrimSpace(row[fields["path"]])
		if path == "" {
			continue
		}
		p.paths[set] = path
	}
	return p, nil
}

// Add sets the path of a dataset
// and returns the previous path.
// An empty path removes the dataset.
func (p *Project) Add(set Dataset, path string) string {
	prev := p.paths[set]
	if path == "" {
		delete(p.paths, set)
		return prev
	}

	p.paths[set] = path
	return prev
}

// Path returns the path of a dataset
// as stored in the project.
func (p *Project) Path(set Dataset) string {
	return p.paths[set]
}

// File returns the path of a dataset file,
// with relative paths resolved
// from the directory of the project file.
// It returns an empty string
// if the dataset is not defined.
func (p *Project) File(set Dataset) string {
	path := p.paths[set]
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(filepath.Dir(p.name), path)
}

// Rel returns a file path
// relative to the directory of the project file,
// so it can be stored in the project.
// Absolute paths are returned unchanged.
func (p *Project) Rel(path string) string {
	dir := filepath.Dir(p.name)
	if dir == "." || filepath.IsAbs(path) {
		return path
	}
	r, err := filepath.Rel(dir, path)
	if err != nil {
		return path
	}
	return r
}

// Sets returns the defined datasets
// in alphabetical order.
func (p *Project) Sets() []Dataset {
	var sets []Dataset
	for s := range p.paths {
		sets = append(sets, s)
	}
	slices.Sort(sets)
	return sets
}

// Name returns the project file name.
func (p *Project) Name() string {
	return p.name
}

// SetName sets the project file name.
func (p *Project) SetName(name string) {
	p.name = name
}

// Write writes the project
// to its project file.
func (p *Project) Write() (err error) {
	f, err := os.Create(p.name)
	if err != nil {
		return err
	}
	defer func() {
		e := f.Close()
		if e != nil && err == nil {
			err = e
		}
	}()

	if err := p.Encode(f); err != nil {
		return fmt.Errorf("on file %q: %v", p.name, err)
	}
	return nil
}

// Encode writes the project as a TSV
// with the datasets in alphabetical order.
func (p *Project) Encode(w io.Writer) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "# phyloviz project files\n")
	fmt.Fprintf(bw, "# data save on: %s\n", time.Now().Format(time.RFC3339))
	tsv := csv.NewWriter(bw)
	tsv.Comma = '\t'
	tsv.UseCRLF = true

	if err := tsv.Write(header); err != nil {
		return fmt.Errorf("while writing header: %v", err)
	}
	for _, s := range p.Sets() {
		if err := tsv.Write([]string{string(s), p.paths[s]}); err != nil {
			return err
		}
	}

	tsv.Flush()
	if err := tsv.Error(); err != nil {
		return fmt.Errorf("while writing data: %v", err)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("while writing data: %v", err)
	}
	return nil
}
