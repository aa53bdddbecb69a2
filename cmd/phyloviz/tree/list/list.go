// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package list implements a command to print
// the list of trees in a PhyloViz project.
package list

import (
	"fmt"
	"io"
	"slices"

	"github.com/js-arias/command"
	"github.com/js-arias/phyloviz/newick"
	"github.com/js-arias/phyloviz/project"
	"gonum.org/v1/gonum/stat"
)

var Command = &command.Command{
	Usage: "list [--stats] <project-file>",
	Short: "print a list of the trees in a project",
	Long: `
Command list reads the trees from a PhyloViz project and print the tree names
in the standard output.

The argument of the command is the name of the project file.

If the flag --stats is defined, the output will be a tab-delimited table with
the number of terminals and nodes of each tree, as well as the mean, median,
and standard deviation of the branch lengths (as set by the length scheme of
the project settings).
	`,
	SetFlags: setFlags,
	Run:      run,
}

var statsFlag bool

func setFlags(c *command.Command) {
	c.Flags().BoolVar(&statsFlag, "stats", false, "")
}

func run(c *command.Command, args []string) error {
	if len(args) < 1 {
		return c.UsageError("expecting project file")
	}

	p, err := project.Read(args[0])
	if err != nil {
		return err
	}
	set, err := p.Settings()
	if err != nil {
		return err
	}
	s, err := p.Session(set, nil)
	if err != nil {
		return err
	}

	if !statsFlag {
		for _, t := range s.Trees() {
			fmt.Fprintf(c.Stdout(), "%s\n", t.Name)
		}
		return nil
	}

	fmt.Fprintf(c.Stdout(), "tree\tterminals\tnodes\tmean\tmedian\tsd\n")
	for _, t := range s.Trees() {
		printStats(c.Stdout(), t.Name, t.Root)
	}
	return nil
}

func printStats(w io.Writer, name string, root *newick.Node) {
	var lens []float64
	for _, n := range root.Nodes() {
		if n == root {
			continue
		}
		lens = append(lens, n.Length)
	}

	var mean, median, sd float64
	if len(lens) > 0 {
		slices.Sort(lens)
		mean, sd = stat.MeanStdDev(lens, nil)
		median = stat.Quantile(0.5, stat.Empirical, lens, nil)
	}
	fmt.Fprintf(w, "%s\t%d\t%d\t%.6f\t%.6f\t%.6f\n", name, len(root.Leaves()), root.Len(), mean, median, sd)
}
