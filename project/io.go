// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package project

import (
	"fmt"
	"os"

	"github.com/js-arias/phyloviz/bipart"
	"github.com/js-arias/phyloviz/cluster"
	"github.com/js-arias/phyloviz/pipeline"
	"github.com/js-arias/phyloviz/settings"
	"go.uber.org/zap"
)

// Bipartitions reads a bipartition file
// as defined in a project.
// If no bipartition file is defined,
// it returns nil.
func (p *Project) Bipartitions() (bipart.Sets, error) {
	name := p.File(Bipartitions)
	if name == "" {
		return nil, nil
	}

	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	s, err := bipart.ReadTSV(f)
	if err != nil {
		return nil, fmt.Errorf("on file %q: %v", name, err)
	}
	return s, nil
}

// Graph reads a weighted graph
// as defined in a project.
// If both a links and a matrix file are defined,
// the links file is used.
func (p *Project) Graph() (cluster.Graph, error) {
	set := Links
	name := p.File(Links)
	if name == "" {
		set = Matrix
		name = p.File(Matrix)
	}
	if name == "" {
		return cluster.Graph{}, fmt.Errorf("graph not defined in project %q", p.name)
	}

	f, err := os.Open(name)
	if err != nil {
		return cluster.Graph{}, err
	}
	defer f.Close()

	var g cluster.Graph
	if set == Links {
		g, err = cluster.ReadTSV(f)
	} else {
		g, err = cluster.ReadMatrix(f)
	}
	if err != nil {
		return cluster.Graph{}, fmt.Errorf("on file %q: %v", name, err)
	}
	return g, nil
}

// Settings reads the settings file
// as defined in a project.
// If no settings file is defined,
// it returns the default settings.
func (p *Project) Settings() (settings.Settings, error) {
	name := p.File(Settings)
	if name == "" {
		return settings.Default(), nil
	}

	f, err := os.Open(name)
	if err != nil {
		return settings.Settings{}, err
	}
	defer f.Close()

	s, err := settings.Read(f)
	if err != nil {
		return settings.Settings{}, fmt.Errorf("on file %q: %v", name, err)
	}
	return s, nil
}

// TreeFile returns the format
// and the path of the tree file of a project.
// If both a Newick and a NEXUS file are defined,
// the NEXUS file is used.
func (p *Project) TreeFile() (pipeline.Format, string, error) {
	if name := p.File(Nexus); name != "" {
		return pipeline.Nexus, name, nil
	}
	if name := p.File(Newick); name != "" {
		return pipeline.Newick, name, nil
	}
	return pipeline.Newick, "", fmt.Errorf("trees not defined in project %q", p.name)
}

// Session returns a pipeline session
// with the trees and bipartitions
// defined in a project,
// using the length scheme of the project settings.
func (p *Project) Session(set settings.Settings, logger *zap.Logger) (*pipeline.Session, error) {
	format, name, err := p.TreeFile()
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(name)
	if err != nil {
		return nil, err
	}

	s := pipeline.New(set.LengthScheme(), logger)
	if err := s.Load(format, string(data)); err != nil {
		return nil, fmt.Errorf("on file %q: %v", name, err)
	}

	sets, err := p.Bipartitions()
	if err != nil {
		return nil, err
	}
	s.SetBipartitions(sets)
	return s, nil
}
