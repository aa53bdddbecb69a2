// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package export implements a command to export
// the trees of a PhyloViz project
// as a collection of time calibrated trees.
package export

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/js-arias/command"
	"github.com/js-arias/phyloviz/project"
	"github.com/js-arias/timetree"
)

// MillionYears is the number of years
// in a million years.
const MillionYears = 1_000_000

var Command = &command.Command{
	Usage: `export [--age <value>] [-o|--output <file>]
	<project-file>`,
	Short: "export trees as time calibrated trees",
	Long: `
Command export reads the trees of a PhyloViz project and writes them as a
tab-delimited file of time calibrated trees, as used by PhyGeo.

The argument of the command is the name of the project file.

Branch lengths are taken as million years (after applying the length scheme
of the project settings). By default, the age of the root will be calculated
from the largest distance between any terminal and the root. To set a
different root age, use the flag --age, with a value in million years.

By default, the output will be printed in the standard output. Use the flag
-o, or --output, to define an output file.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var rootAge float64
var output string

func setFlags(c *command.Command) {
	c.Flags().Float64Var(&rootAge, "age", 0, "")
	c.Flags().StringVar(&output, "output", "", "")
	c.Flags().StringVar(&output, "o", "", "")
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

	tc := timetree.NewCollection()
	for _, t := range s.Trees() {
		nc, err := timetree.Newick(strings.NewReader(t.Root.String()), t.Name, int64(rootAge*MillionYears))
		if err != nil {
			return fmt.Errorf("tree %q: %v", t.Name, err)
		}
		for _, tn := range nc.Names() {
			if err := tc.Add(nc.Tree(tn)); err != nil {
				return fmt.Errorf("tree %q: %v", t.Name, err)
			}
		}
	}

	return writeTrees(c.Stdout(), tc)
}

func writeTrees(w io.Writer, tc *timetree.Collection) (err error) {
	if output == "" {
		return tc.TSV(w)
	}

	f, err := os.Create(output)
	if err != nil {
		return err
	}
	defer func() {
		e := f.Close()
		if e != nil && err == nil {
			err = e
		}
	}()

	if err := tc.TSV(f); err != nil {
		return fmt.Errorf("while writing to %q: %v", output, err)
	}
	return nil
}
