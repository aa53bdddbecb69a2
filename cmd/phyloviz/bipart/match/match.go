// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package match implements a command to print
// the edges of the trees in a PhyloViz project
// that match a bipartition.
package match

import (
	"encoding/csv"
	"fmt"
	"strings"

	"github.com/js-arias/command"
	"github.com/js-arias/phyloviz/bipart"
	"github.com/js-arias/phyloviz/cmd/phyloviz/internal/logger"
	"github.com/js-arias/phyloviz/project"
)

var Command = &command.Command{
	Usage: "match [--tree <tree-name>] [--all] [--verbose] <project-file>",
	Short: "print the edges that match a bipartition",
	Long: `
Command match reads the trees and the bipartitions of a PhyloViz project, and
prints the tree edges that match a bipartition, as a tab-delimited table.

The argument of the command is the name of the project file.

An edge matches a bipartition if the terminals descendant of the edge are
equal to the taxa of the bipartition. A bipartition might match more than one
edge (for example in a chain of nodes with a single descendant). Such
bipartitions are reported as warnings on the standard error.

The output table has the following fields:

	- tree         the name of the tree
	- edge         the index of the edge (in pre-order)
	- node         the name of the descendant node of the edge
	- bipartition  the ID of the bipartition
	- taxa         the terminals of the edge, separated by commas

By default, only the matched edges are printed. Use the flag --all to print
all edges.

By default, all trees will be used. If the flag --tree is set, only the
indicated tree will be used.

Use the flag --verbose to print the steps of the analysis on the standard
error.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var treeName string
var allFlag bool
var verbose bool

func setFlags(c *command.Command) {
	c.Flags().StringVar(&treeName, "tree", "", "")
	c.Flags().BoolVar(&allFlag, "all", false, "")
	c.Flags().BoolVar(&verbose, "verbose", false, "")
}

func run(c *command.Command, args []string) error {
	if len(args) < 1 {
		return c.UsageError("expecting project file")
	}

	p, err := project.Read(args[0])
	if err != nil {
		return err
	}
	if p.Path(project.Bipartitions) == "" {
		return fmt.Errorf("bipartitions not defined in project %q", args[0])
	}
	set, err := p.Settings()
	if err != nil {
		return err
	}

	log := logger.New(c.Stderr(), verbose)
	defer log.Sync()

	s, err := p.Session(set, log)
	if err != nil {
		return err
	}

	tsv := csv.NewWriter(c.Stdout())
	tsv.Comma = '\t'
	tsv.UseCRLF = true
	if err := tsv.Write([]string{"tree", "edge", "node", "bipartition", "taxa"}); err != nil {
		return fmt.Errorf("unable to write header: %v", err)
	}

	for i, t := range s.Trees() {
		if treeName != "" && t.Name != treeName {
			continue
		}
		_, edges, err := s.Correlate(i, set.Layout())
		if err != nil {
			return fmt.Errorf("tree %q: %v", t.Name, err)
		}

		clades := bipart.Clades(t.Root)
		for j, e := range edges {
			if e.Bipartition == "" && !allFlag {
				continue
			}
			row := []string{
				t.Name,
				fmt.Sprintf("%d", j),
				e.Child.Name,
				e.Bipartition,
				strings.Join(clades[e.Child], ","),
			}
			if err := tsv.Write(row); err != nil {
				return fmt.Errorf("when writing data: %v", err)
			}
		}
	}

	tsv.Flush()
	if err := tsv.Error(); err != nil {
		return fmt.Errorf("when writing data: %v", err)
	}
	return nil
}
