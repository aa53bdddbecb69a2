// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package main

import "github.com/js-arias/command"

func init() {
	app.Add(graphFilesGuide)
	app.Add(projectsGuide)
	app.Add(settingsGuide)
	app.Add(treeFilesGuide)
}

var projectsGuide = &command.Command{
	Usage: "projects",
	Short: "about project files",
	Long: `
PhyloViz reads several files to prepare trees and weighted graphs for
visualization. To reduce the burden of keeping track of many files, a single
project file is used to hold the reference of all files required in the
analysis. This guide explains the structure of the file, but most of the
time, the best and most secure way to edit or view this file is by using
phyloviz commands.

A project file is a tab-delimited file with the following fields:

	- dataset  for the kind of file
	- path     for the path of the file

Here is an example file:

	# phyloviz project files
	dataset	path
	nexus	trees.nex
	bipartitions	splits.tab
	matrix	affinity.tab
	settings	settings.yaml

Relative paths are read from the directory of the project file. Each kind of
file can be defined only once.

The valid file types are:

- Newick trees. Defined by the dataset keyword "newick". This file contains
  one or more trees in parenthetical format. The recommended way to add a
  tree file is by using the command 'phyloviz tree add'.
- NEXUS trees. Defined by the dataset keyword "nexus". This file contains
  one or more trees in a NEXUS TREES block. If both a Newick and a NEXUS file
  are defined, the NEXUS file is used. The recommended way to add a tree
  file is by using the command 'phyloviz tree add --format nexus'.
- Bipartitions. Defined by the dataset keyword "bipartitions". This file
  contains sets of taxa identified by an external source, in the form of a
  tab-delimited file. The recommended way to add a bipartition file is by
  using the command 'phyloviz bipart add'.
- Graph links. Defined by the dataset keyword "links". This file contains
  the links of a weighted graph in the form of a tab-delimited file. The
  recommended way to add a links file is by using the command
  'phyloviz cluster add'.
- Weight matrix. Defined by the dataset keyword "matrix". This file contains
  a square matrix of weights (for example a covariance or affinity matrix).
  If both a links and a matrix file are defined, the links file is used. The
  recommended way to add a matrix file is by using the command
  'phyloviz cluster add --matrix'.
- Settings. Defined by the dataset keyword "settings". This file contains
  the analysis settings in YAML format. See 'phyloviz help settings'.
	`,
}

var settingsGuide = &command.Command{
	Usage: "settings",
	Short: "about the settings file",
	Long: `
The settings file is a YAML file that defines the parameters used by the
phyloviz commands. Any value not defined in the file takes its default value,
and most values can be overridden with command flags.

Here is an example file with the default values:

	# phyloviz settings
	scheme: raw
	canvas:
	  width: 800
	  height: 600
	  left: 20
	  right: 150
	  top: 20
	  bottom: 20
	cluster:
	  threshold: 0
	  resolution: 1
	  seed: 1

The scheme defines how branch lengths are set when reading trees:

	raw             branch lengths as found in the input (1 if not given)
	normalized      same as raw
	normalized_rtt  branch lengths set so the distance from the root to any
	                terminal is 1

The canvas is the size, in pixels, of the drawing area, and the margins
around the tree. The right margin is used for the terminal labels.

The cluster values are the threshold used to keep the links of a weighted
graph, and the resolution and seed used for community detection.
	`,
}

var treeFilesGuide = &command.Command{
	Usage: "tree-files",
	Short: "about tree files",
	Long: `
PhyloViz reads trees in Newick (parenthetical) format, or in the TREES block
of a NEXUS file.

In a Newick file each tree ends with a semicolon, for example:

	((A:1,B:2)AB:0.5,C:3);

Comments between square brackets are ignored. Terminals without a name are
kept, but are ignored when comparing taxon sets.

In a NEXUS file, only the TREES block is read. If the block has a TRANSLATE
statement, the names in the trees are replaced using the translation table.
Here is an example:

	#NEXUS
	BEGIN TREES;
		TRANSLATE
			1 Alpha,
			2 Beta;
		TREE t1 = (1:0.5,2:0.5);
	END;
	`,
}

var graphFilesGuide = &command.Command{
	Usage: "graph-files",
	Short: "about weighted graph files",
	Long: `
A weighted graph can be given as a list of links, or as a square matrix.

A links file is a tab-delimited file with the following fields:

	- source  the ID of the source node
	- target  the ID of the target node
	- value   the weight of the link

Here is an example file:

	# graph links
	source	target	value
	1	2	5
	2	3	1

A matrix file is a tab-delimited file in which the first row contains the
node IDs, and each following row starts with the ID of a node followed by the
weights. Only the upper triangle of the matrix is used, and empty cells are
taken as missing links. Here is an example file:

	# affinity matrix
	node	1	2	3
	1	1	5	0.5
	2	5	1	1
	3	0.5	1	1

In both formats, values must be numbers.
	`,
}
