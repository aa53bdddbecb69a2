// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// PhyloViz is a tool to prepare phylogenetic trees
// and weighted graphs for visualization.
package main

import (
	"github.com/js-arias/command"
	"github.com/js-arias/phyloviz/cmd/phyloviz/bipart"
	"github.com/js-arias/phyloviz/cmd/phyloviz/cluster"
	"github.com/js-arias/phyloviz/cmd/phyloviz/prj"
	"github.com/js-arias/phyloviz/cmd/phyloviz/tree"
)

var app = &command.Command{
	Usage: "phyloviz <command> [<argument>...]",
	Short: "a tool to prepare phylogenetic data for visualization",
}

func init() {
	app.Add(bipart.Command)
	app.Add(cluster.Command)
	app.Add(prj.Command)
	app.Add(tree.Command)
}

func main() {
	app.Main()
}
