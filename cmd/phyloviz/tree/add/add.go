// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package add implements a command to add trees
// to a PhyloViz project.
package add

import (
	"errors"
	"fmt"
	"os"

	"github.com/js-arias/command"
	"github.com/js-arias/phyloviz/pipeline"
	"github.com/js-arias/phyloviz/project"
)

var Command = &command.Command{
	Usage: `add [--format <format>]
	<project-file> <tree-file>`,
	Short: "add a tree file to a PhyloViz project",
	Long: `
Command add reads the trees from a tree file, and if all trees are valid, sets
the file as the tree file of a PhyloViz project.

The first argument of the command is the name of the project file. If no
project file exists, a new project will be created.

The second argument is the name of the tree file.

By default, the tree file is expected to be in Newick (parenthetical) format.
Use the flag --format to define a different format. Valid formats are:

	newick	Newick (parenthetical) format
	nexus	trees in the TREES block of a NEXUS file

A project has a single tree file. If a tree file is already defined, it will
be replaced by the new file.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var formatFlag string

func setFlags(c *command.Command) {
	c.Flags().StringVar(&formatFlag, "format", "newick", "")
}

func run(c *command.Command, args []string) error {
	if len(args) < 2 {
		return c.UsageError("expecting project file and tree file")
	}
	format, err := pipeline.ParseFormat(formatFlag)
	if err != nil {
		return c.UsageError(err.Error())
	}

	pFile := args[0]
	p, err := openProject(pFile)
	if err != nil {
		return err
	}

	set, err := p.Settings()
	if err != nil {
		return err
	}

	tf := args[1]
	data, err := os.ReadFile(tf)
	if err != nil {
		return err
	}
	s := pipeline.New(set.LengthScheme(), nil)
	if err := s.Load(format, string(data)); err != nil {
		return fmt.Errorf("on file %q: %v", tf, err)
	}
	if len(s.Trees()) == 0 {
		return fmt.Errorf("on file %q: no trees found", tf)
	}

	p.Add(project.Newick, "")
	p.Add(project.Nexus, "")
	if format == pipeline.Nexus {
		p.Add(project.Nexus, p.Rel(tf))
	} else {
		p.Add(project.Newick, p.Rel(tf))
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
