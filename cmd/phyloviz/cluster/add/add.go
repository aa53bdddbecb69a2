// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package add implements a command to add
// a weighted graph file to a PhyloViz project.
package add

import (
	"errors"
	"fmt"
	"os"

	"github.com/js-arias/command"
	"github.com/js-arias/phyloviz/cluster"
	"github.com/js-arias/phyloviz/project"
)

var Command = &command.Command{
	Usage: "add [--matrix] <project-file> <graph-file>",
	Short: "add a weighted graph file to a PhyloViz project",
	Long: `
Command add reads a weighted graph from a file, and if the file is valid, sets
it as the graph file of a PhyloViz project.

The first argument of the command is the name of the project file. If no
project file exists, a new project will be created.

The second argument is the name of the graph file. By default, the file is
expected to be a list of links. If the flag --matrix is defined, the file is
expected to be a square matrix of weights. See 'phyloviz help graph-files'
for a description of the file formats.

A project has a single graph file. If a graph file is already defined, it will
be replaced by the new file.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var matrixFlag bool

func setFlags(c *command.Command) {
	c.Flags().BoolVar(&matrixFlag, "matrix", false, "")
}

func run(c *command.Command, args []string) error {
	if len(args) < 2 {
		return c.UsageError("expecting project file and graph file")
	}

	p, err := openProject(args[0])
	if err != nil {
		return err
	}

	gf := args[1]
	if err := readGraph(gf); err != nil {
		return err
	}

	p.Add(project.Links, "")
	p.Add(project.Matrix, "")
	if matrixFlag {
		p.Add(project.Matrix, p.Rel(gf))
	} else {
		p.Add(project.Links, p.Rel(gf))
	}
	if err := p.Write(); err != nil {
		return err
	}
	return nil
}

func openProject(name string) (*project.Project, error) {
	p, err := project.Read(name)
	if errors.Is(err, os.ErrNotExist) {
		p := project.New()
		p.SetName(name)
		return p, nil
	}
	if err != nil {
		return nil, fmt.Errorf("unable to open project %q: %v", name, err)
	}
	return p, nil
}

func readGraph(name string) error {
	f, err := os.Open(name)
	if err != nil {
		return err
	}
	defer f.Close()

	read := cluster.ReadTSV
	if matrixFlag {
		read = cluster.ReadMatrix
	}
	if _, err := read(f); err != nil {
		return fmt.Errorf("on file %q: %v", name, err)
	}
	return nil
}
