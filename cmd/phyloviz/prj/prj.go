// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package prj implements a command to print
// the basic information of a project.
package prj

import (
	"fmt"
	"io"

	"github.com/js-arias/command"
	"github.com/js-arias/phyloviz/project"
	"github.com/js-arias/phyloviz/settings"
)

var Command = &command.Command{
	Usage: "prj <project-file>",
	Short: "print information about a project",
	Long: `
Command prj reads a PhyloViz project and prints the information of the
different project elements into the standard output.

The argument of the command is the name of the project file.
	`,
	Run: run,
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
	printSettings(c.Stdout(), p.Path(project.Settings), set)

	if _, tf, err := p.TreeFile(); err == nil {
		if err := printTrees(c.Stdout(), p, tf, set); err != nil {
			return err
		}
	}

	if bf := p.Path(project.Bipartitions); bf != "" {
		if err := printBipartitions(c.Stdout(), p, bf); err != nil {
			return err
		}
	}

	gf := p.Path(project.Links)
	if gf == "" {
		gf = p.Path(project.Matrix)
	}
	if gf != "" {
		if err := printGraph(c.Stdout(), p, gf); err != nil {
			return err
		}
	}

	return nil
}

func printSettings(w io.Writer, name string, set settings.Settings) {
	fmt.Fprintf(w, "Settings:\n")
	if name == "" {
		name = "<default>"
	}
	fmt.Fprintf(w, "\tfile: %s\n", name)
	fmt.Fprintf(w, "\tlength scheme: %s\n", set.LengthScheme())
	fmt.Fprintf(w, "\tcanvas: %.0fx%.0f\n", set.Canvas.Width, set.Canvas.Height)
	fmt.Fprintf(w, "\tthreshold: %.6g\n", set.Cluster.Threshold)
	fmt.Fprintf(w, "\n")
}

func printTrees(w io.Writer, p *project.Project, name string, set settings.Settings) error {
	s, err := p.Session(set, nil)
	if err != nil {
		return err
	}

	terms := make(map[string]bool)
	trees := s.Trees()
	for _, t := range trees {
		for _, tax := range t.Root.Terms() {
			terms[tax] = true
		}
	}

	fmt.Fprintf(w, "Trees:\n")
	fmt.Fprintf(w, "\tfile: %s\n", name)
	fmt.Fprintf(w, "\tformat: %s\n", s.Format())
	fmt.Fprintf(w, "\ttrees: %d\n", len(trees))
	fmt.Fprintf(w, "\tterminals: %d\n", len(terms))
	fmt.Fprintf(w, "\n")
	return nil
}

func printBipartitions(w io.Writer, p *project.Project, name string) error {
	sets, err := p.Bipartitions()
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "Bipartitions:\n")
	fmt.Fprintf(w, "\tfile: %s\n", name)
	fmt.Fprintf(w, "\tbipartitions: %d\n", len(sets))
	fmt.Fprintf(w, "\n")
	return nil
}

func printGraph(w io.Writer, p *project.Project, name string) error {
	g, err := p.Graph()
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "Weighted graph:\n")
	fmt.Fprintf(w, "\tfile: %s\n", name)
	fmt.Fprintf(w, "\tnodes: %d\n", len(g.IDs()))
	fmt.Fprintf(w, "\tlinks: %d\n", len(g.Links))
	fmt.Fprintf(w, "\n")
	return nil
}
