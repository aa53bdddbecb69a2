// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package groups implements a command to assign
// the nodes of a weighted graph to groups.
package groups

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/js-arias/command"
	"github.com/js-arias/phyloviz/cluster"
	"github.com/js-arias/phyloviz/cmd/phyloviz/internal/logger"
	"github.com/js-arias/phyloviz/export"
	"github.com/js-arias/phyloviz/pipeline"
	"github.com/js-arias/phyloviz/project"
)

var Command = &command.Command{
	Usage: `groups [--threshold <value>] [--community]
	[--resolution <value>] [--seed <value>]
	[--json] [-o|--output <file>] [--verbose]
	<project-file>`,
	Short: "assign graph nodes to groups",
	Long: `
Command groups reads the weighted graph of a PhyloViz project and assigns the
nodes of the graph to groups.

The argument of the command is the name of the project file.

Only the links with a value greater or equal to the threshold are used. By
default the threshold is taken from the project settings. Use the flag
--threshold to define a different value.

By default, two nodes are in the same group if there is a path of links
between them. Groups are numbered in the order they are found in the links,
starting from 0. Nodes without links are assigned to the group -1.

If the flag --community is defined, groups are defined using the modularity
of the graph (Louvain algorithm). The resolution and the seed of the random
number generator are taken from the project settings, or can be set with the
flags --resolution and --seed (the seed must be greater than 0).

By default, the output is a tab-delimited table with the node IDs and its
group. If the flag --json is defined, the output will be a JSON document. By
default, the output is printed in the standard output. Use the flag -o, or
--output, to define an output file.

Use the flag --verbose to print the steps of the analysis on the standard
error.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var threshold float64
var resolution float64
var seed uint64
var community bool
var jsonFlag bool
var output string
var verbose bool

func setFlags(c *command.Command) {
	c.Flags().Float64Var(&threshold, "threshold", math.NaN(), "")
	c.Flags().Float64Var(&resolution, "resolution", 0, "")
	c.Flags().Uint64Var(&seed, "seed", 0, "")
	c.Flags().BoolVar(&community, "community", false, "")
	c.Flags().BoolVar(&jsonFlag, "json", false, "")
	c.Flags().StringVar(&output, "output", "", "")
	c.Flags().StringVar(&output, "o", "", "")
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
	if !math.IsNaN(threshold) {
		set.Cluster.Threshold = threshold
	}
	if resolution > 0 {
		set.Cluster.Resolution = resolution
	}
	if seed > 0 {
		set.Cluster.Seed = seed
	}

	g, err := p.Graph()
	if err != nil {
		return err
	}

	log := logger.New(c.Stderr(), verbose)
	defer log.Sync()
	s := pipeline.New(set.LengthScheme(), log)

	method := "threshold"
	var a cluster.Assignment
	if community {
		method = "community"
		a = s.Communities(g, set.Cluster.Threshold, set.Cluster.Resolution, set.Cluster.Seed)
	} else {
		a = s.Cluster(g, set.Cluster.Threshold)
	}

	return write(c.Stdout(), g, method, a)
}

func write(w io.Writer, g cluster.Graph, method string, a cluster.Assignment) (err error) {
	if output != "" {
		f, ferr := os.Create(output)
		if ferr != nil {
			return ferr
		}
		defer func() {
			e := f.Close()
			if e != nil && err == nil {
				err = e
			}
		}()
		w = f
	}

	if jsonFlag {
		return export.JSON(w, export.NewClusterDoc(method, a))
	}

	tsv := csv.NewWriter(w)
	tsv.Comma = '\t'
	tsv.UseCRLF = true
	if err := tsv.Write([]string{"node", "group"}); err != nil {
		return fmt.Errorf("unable to write header: %v", err)
	}
	for _, id := range g.IDs() {
		if err := tsv.Write([]string{id, a.Group(id)}); err != nil {
			return fmt.Errorf("when writing data: %v", err)
		}
	}
	tsv.Flush()
	if err := tsv.Error(); err != nil {
		return fmt.Errorf("when writing data: %v", err)
	}
	return nil
}
