// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package cluster is a metapackage for commands
// that dealt with the clustering of weighted graphs.
package cluster

import (
	"github.com/js-arias/command"
	"github.com/js-arias/phyloviz/cmd/phyloviz/cluster/add"
	"github.com/js-arias/phyloviz/cmd/phyloviz/cluster/groups"
	"github.com/js-arias/phyloviz/cmd/phyloviz/cluster/sweep"
)

var Command = &command.Command{
	Usage: "cluster <command> [<argument>...]",
	Short: "commands for weighted graph clustering",
}

func init() {
	Command.Add(add.Command)
	Command.Add(groups.Command)
	Command.Add(sweep.Command)
}
