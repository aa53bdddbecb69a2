// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package add implements a command to add
// a bipartition file to a PhyloViz project.
package add

import (
	"errors"
	"fmt"
	"os"

	"github.com/js-arias/command"
	"github.com/js-arias/phyloviz/bipart"
	"github.com/js-arias/phyloviz/project"
)

var Command = &command.Command{
	Usage: "add <project-file> <bipartition-file>",
	Short: "add a bipartition file to a PhyloViz project",
	Long: `
Command add reads the bipartitions from a file, and if the file is valid, sets
it as the bipartition file of a PhyloViz project.

The first argument of the command is the name of the project file. If no
project file exists, a new project will be created.

The second argument is the name of the bipartition file. A bipartition file
is a tab-delimited file with the following fields:

	- bipartition  the ID of the bipartition
	- taxon        the name of a taxon in the bipartition

Here is an example file:

	# bipartitions
	bipartition	taxon
	split-1	Homo sapiens
	split-1	Pan troglodytes
	split-2	Gorilla gorilla
	split-2	Homo sapiens
	split-2	Pan troglodytes
	`,
	Run: run,
}

func run(c *command.Command, args []string) error {
	if len(args) < 2 {
		return c.UsageError("expecting project file and bipartition file")
	}

	p, err := openProject(args[0])
	if err != nil {
		return err
	}

	bf := args[1]
	if err := readBipartitions(bf); err != nil {
		return err
	}

	p.Add(project.Bipartitions, p.Rel(bf))
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

func readBipartitions(name string) error {
	f, err := os.Open(name)
	if err != nil {
		return err
	}
	defer f.Close()

	s, err := bipart.ReadTSV(f)
	if err != nil {
		return fmt.Errorf("on file %q: %v", name, err)
	}
	if len(s) == 0 {
		return fmt.Errorf("on file %q: no bipartitions found", name)
	}
	return nil
}
