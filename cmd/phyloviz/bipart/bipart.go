// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package bipart is a metapackage for commands
// that dealt with bipartitions.
package bipart

import (
	"github.com/js-arias/command"
	"github.com/js-arias/phyloviz/cmd/phyloviz/bipart/add"
	"github.com/js-arias/phyloviz/cmd/phyloviz/bipart/match"
)

var Command = &command.Command{
	Usage: "bipart <command> [<argument>...]",
	Short: "commands for bipartitions",
}

func init() {
	Command.Add(add.Command)
	Command.Add(match.Command)
}
