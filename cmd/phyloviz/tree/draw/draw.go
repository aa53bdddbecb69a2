// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package draw implements a command to draw
// trees in a PhyloViz project as SVG files.
package draw

import (
	"fmt"
	"os"

	"github.com/js-arias/command"
	"github.com/js-arias/phyloviz/bipart"
	"github.com/js-arias/phyloviz/cmd/phyloviz/internal/logger"
	"github.com/js-arias/phyloviz/export"
	"github.com/js-arias/phyloviz/layout"
	"github.com/js-arias/phyloviz/project"
)

var Command = &command.Command{
	Usage: `draw [--tree <tree>]
	[--width <value>] [--height <value>]
	[-o|--output <out-prefix>] [--verbose]
	<project-file>`,
	Short: "draw project trees as SVG files",
	Long: `
Command draw reads a PhyloViz project and draws the trees into a SVG-encoded
file.

The argument of the command is the name of the project file.

The trees are drawn as rectangular cladograms. If the project has a
bipartition file, the edges that match a bipartition will be drawn in blue,
or in orange if the bipartition matches more than one edge.

By default, the canvas size is taken from the project settings. Use the flags
--width and --height to define a different size.

By default, all trees in the project will be drawn. If the flag --tree is set,
only the indicated tree will be printed.

By default, the names of the trees will be used as the output file names. Use
the flag -o, or --output, to define a prefix for the resulting files.

Use the flag --verbose to print the steps of the analysis on the standard
error.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var treeName string
var outPrefix string
var width float64
var height float64
var verbose bool

func setFlags(c *command.Command) {
	c.Flags().StringVar(&outPrefix, "output", "", "")
	c.Flags().StringVar(&outPrefix, "o", "", "")
	c.Flags().StringVar(&treeName, "tree", "", "")
	c.Flags().Float64Var(&width, "width", 0, "")
	c.Flags().Float64Var(&height, "height", 0, "")
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
	set, err := p.Settings()
	if err != nil {
		return err
	}
	if width > 0 {
		set.Canvas.Width = width
	}
	if height > 0 {
		set.Canvas.Height = height
	}
	cfg := set.Layout()
	if err := cfg.Validate(); err != nil {
		return c.UsageError(err.Error())
	}

	log := logger.New(c.Stderr(), verbose)
	defer log.Sync()

	s, err := p.Session(set, log)
	if err != nil {
		return err
	}

	for i, t := range s.Trees() {
		if treeName != "" && t.Name != treeName {
			continue
		}
		l, edges, err := s.Correlate(i, cfg)
		if err != nil {
			return fmt.Errorf("tree %q: %v", t.Name, err)
		}
		if err := writeSVG(t.Name, l, edges); err != nil {
			return err
		}
	}
	return nil
}

func writeSVG(name string, l *layout.Layout, edges []bipart.Edge) (err error) {
	if outPrefix != "" {
		name = fmt.Sprintf("%s-%s.svg", outPrefix, name)
	} else {
		name += ".svg"
	}

	f, err := os.Create(name)
	if err != nil {
		return err
	}
	defer func() {
		e := f.Close()
		if e != nil && err == nil {
			err = e
		}
	}()

	if err := export.SVG(f, l, edges); err != nil {
		return fmt.Errorf("while writing to %q: %v", name, err)
	}
	return nil
}
