// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package pipeline implements a session
// that connects the parsing,
// layout,
// and bipartition correlation of trees,
// as well as the clustering of weighted graphs.
//
// Each session owns its state,
// so different sessions can be used at the same time.
// A session is not safe for concurrent use.
package pipeline

import (
	"errors"
	"fmt"
	"strings"

	"github.com/js-arias/phyloviz/bipart"
	"github.com/js-arias/phyloviz/cluster"
	"github.com/js-arias/phyloviz/layout"
	"github.com/js-arias/phyloviz/newick"
	"github.com/js-arias/phyloviz/nexus"
	"go.uber.org/zap"
)

// A Format is a tree text format.
type Format int

// Valid formats.
const (
	Newick Format = iota
	Nexus
)

var formatNames = []string{
	Newick: "newick",
	Nexus:  "nexus",
}

func (f Format) String() string {
	if f < 0 || int(f) >= len(formatNames) {
		return fmt.Sprintf("Format(%d)", int(f))
	}
	return formatNames[f]
}

// ParseFormat returns the format
// with the given name.
func ParseFormat(name string) (Format, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, f := range formatNames {
		if f == name {
			return Format(i), nil
		}
	}
	return Newick, fmt.Errorf("unknown tree format %q", name)
}

// ErrNoTree is returned when a tree is not found
// in a session.
var ErrNoTree = errors.New("pipeline: tree not found")

// A Session is the state of a loaded input.
type Session struct {
	scheme newick.LengthScheme
	format Format
	trees  []nexus.Tree
	sets   bipart.Sets
	logger *zap.Logger
}

// New creates a new session
// that reads trees using the given length scheme.
// If logger is nil,
// no log is produced.
func New(scheme newick.LengthScheme, logger *zap.Logger) *Session {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Session{
		scheme: scheme,
		logger: logger,
	}
}

// Load parses a text in the given format
// and replaces the trees of the session.
// Trees without a name are named "tree<n>",
// in which n is the position of the tree,
// starting from 1.
func (s *Session) Load(f Format, text string) error {
	var trees []nexus.Tree
	switch f {
	case Newick:
		ts, err := newick.ReadAll(strings.NewReader(text), s.scheme)
		if err != nil {
			s.logger.Debug("parse failed",
				zap.Stringer("format", f),
				zap.Error(err),
			)
			return err
		}
		for i, r := range ts {
			trees = append(trees, nexus.Tree{
				Name: fmt.Sprintf("tree%d", i+1),
				Root: r,
			})
		}
	case Nexus:
		ts, err := nexus.Parse(text, s.scheme)
		if err != nil {
			s.logger.Debug("parse failed",
				zap.Stringer("format", f),
				zap.Error(err),
			)
			return err
		}
		trees = ts
	default:
		return fmt.Errorf("pipeline: unknown format %v", f)
	}

	s.format = f
	s.trees = trees
	s.logger.Debug("trees loaded",
		zap.Stringer("format", f),
		zap.Stringer("scheme", s.scheme),
		zap.Int("trees", len(trees)),
	)
	return nil
}

// Format returns the format of the last loaded input.
func (s *Session) Format() Format {
	return s.format
}

// Trees returns the trees of the session.
func (s *Session) Trees() []nexus.Tree {
	trees := make([]nexus.Tree, len(s.trees))
	copy(trees, s.trees)
	return trees
}

// Tree returns the index of a tree
// with the given name.
// If name is empty,
// it returns the first tree.
func (s *Session) Tree(name string) (int, error) {
	if len(s.trees) == 0 {
		return -1, ErrNoTree
	}
	if name == "" {
		return 0, nil
	}
	for i, t := range s.trees {
		if t.Name == name {
			return i, nil
		}
	}
	return -1, fmt.Errorf("%w: %q", ErrNoTree, name)
}

// SetBipartitions sets the bipartitions
// used to annotate the edges of the trees.
func (s *Session) SetBipartitions(sets bipart.Sets) {
	s.sets = sets
	s.logger.Debug("bipartitions set", zap.Int("bipartitions", len(sets)))
}

func (s *Session) root(i int) (*newick.Node, error) {
	if i < 0 || i >= len(s.trees) {
		return nil, fmt.Errorf("%w: index %d", ErrNoTree, i)
	}
	return s.trees[i].Root, nil
}

// Layout returns the layout
// of the i-th tree of the session.
func (s *Session) Layout(i int, cfg layout.Config) (*layout.Layout, error) {
	root, err := s.root(i)
	if err != nil {
		return nil, err
	}
	l, err := layout.New(root, cfg)
	if err != nil {
		s.logger.Debug("layout failed",
			zap.String("tree", s.trees[i].Name),
			zap.Error(err),
		)
		return nil, err
	}
	s.logger.Debug("tree laid out",
		zap.String("tree", s.trees[i].Name),
		zap.Int("terminals", len(l.Leaves())),
		zap.Float64("width", cfg.Width),
		zap.Float64("height", cfg.Height),
	)
	return l, nil
}

// Correlate returns the layout of the i-th tree
// and its edges annotated
// with the bipartitions of the session.
func (s *Session) Correlate(i int, cfg layout.Config) (*layout.Layout, []bipart.Edge, error) {
	l, err := s.Layout(i, cfg)
	if err != nil {
		return nil, nil, err
	}
	edges := bipart.Correlate(l.Edges(), s.sets)

	matched := 0
	for _, e := range edges {
		if e.Bipartition != "" {
			matched++
		}
	}
	s.logger.Debug("edges correlated",
		zap.String("tree", s.trees[i].Name),
		zap.Int("edges", len(edges)),
		zap.Int("matched", matched),
	)
	if dup := bipart.Duplicates(edges); len(dup) > 0 {
		s.logger.Warn("bipartitions assigned to more than one edge",
			zap.String("tree", s.trees[i].Name),
			zap.Strings("bipartitions", dup),
		)
	}
	return l, edges, nil
}

// Cluster assigns the nodes of a graph to groups
// using a threshold.
func (s *Session) Cluster(g cluster.Graph, threshold float64) cluster.Assignment {
	a := cluster.Threshold(g, threshold)
	s.logger.Debug("graph clustered",
		zap.Float64("threshold", threshold),
		zap.Int("links", len(g.Links)),
		zap.Int("groups", len(a.Sets)),
	)
	return a
}

// Communities assigns the nodes of a graph to groups
// using modularity
// on the links above the threshold.
func (s *Session) Communities(g cluster.Graph, threshold, resolution float64, seed uint64) cluster.Assignment {
	a := cluster.Communities(g, threshold, resolution, seed)
	s.logger.Debug("communities detected",
		zap.Float64("threshold", threshold),
		zap.Float64("resolution", resolution),
		zap.Uint64("seed", seed),
		zap.Int("groups", len(a.Sets)),
	)
	return a
}
