// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package layout implements a command to write
// the layout of the trees in a PhyloViz project
// as a JSON document.
package layout

import (
	"fmt"
	"io"
	"os"

	"github.com/js-arias/command"
	"github.com/js-arias/phyloviz/cmd/phyloviz/internal/logger"
	"github.com/js-arias/phyloviz/export"
	"github.com/js-arias/phyloviz/project"
)

var Command = &command.Command{
	Usage: `layout [--tree <tree-name>]
	[--width <value>] [--height <value>]
	[-o|--output <file>] [--verbose]
	<project-file>`,
	Short: "write tree layouts as JSON",
	Long: `
Command layout reads the trees of a PhyloViz project, calculates the
rectangular layout of each tree, and writes the layout as a JSON document.

The argument of the command is the name of the project file.

The document of each tree includes the nodes, with its branch length,
distance to the root, and raw and pixel coordinates, and the edges with its
elbow path. If the project has a bipartition file, each edge will include the
ID of the bipartition that matches the clade of the edge.

By default, all trees in the project will be written as a JSON array. If the
flag --tree is set, only the indicated tree will be written as a single
document.

By default, the canvas size is taken from the project settings. Use the flags
--width and --height to define a different size.

By default, the output will be printed in the standard output. Use the flag
-o, or --output, to define an output file.

Use the flag --verbose to print the steps of the analysis on the standard
error.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var treeName string
var output string
var width float64
var height float64
var verbose bool

func setFlags(c *command.Command) {
	c.Flags().StringVar(&treeName, "tree", "", "")
	c.Flags().StringVar(&output, "output", "", "")
	c.Flags().StringVar(&output, "o", "", "")
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

	var docs []export.LayoutDoc
	if treeName != "" {
		i, err := s.Tree(treeName)
		if err != nil {
			return err
		}
		l, edges, err := s.Correlate(i, cfg)
		if err != nil {
			return fmt.Errorf("tree %q: %v", treeName, err)
		}
		return writeJSON(c.Stdout(), export.NewLayoutDoc(treeName, l, edges))
	}

	for i, t := range s.Trees() {
		l, edges, err := s.Correlate(i, cfg)
		if err != nil {
			return fmt.Errorf("tree %q: %v", t.Name, err)
		}
		docs = append(docs, export.NewLayoutDoc(t.Name, l, edges))
	}
	return writeJSON(c.Stdout(), docs)
}

func writeJSON(w io.Writer, doc any) (err error) {
	if output == "" {
		return export.JSON(w, doc)
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

	if err := export.JSON(f, doc); err != nil {
		return fmt.Errorf("while writing to %q: %v", output, err)
	}
	return nil
}
