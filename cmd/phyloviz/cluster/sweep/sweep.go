// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package sweep implements a command to print
// the number of groups of a weighted graph
// at different thresholds.
package sweep

import (
	"fmt"
	"math"

	"github.com/js-arias/command"
	"github.com/js-arias/phyloviz/cluster"
	"github.com/js-arias/phyloviz/project"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

var Command = &command.Command{
	Usage: `sweep [--min <value>] [--max <value>] [--step <value>]
	[-o|--output <file>]
	<project-file>`,
	Short: "print the number of groups at different thresholds",
	Long: `
Command sweep reads the weighted graph of a PhyloViz project and prints the
number of groups found at different thresholds, as a tab-delimited table.

The argument of the command is the name of the project file.

By default, the thresholds go from the smallest to the largest link value, in
20 steps. Use the flags --min, --max, and --step to define a different range.
At most 10000 thresholds are evaluated.

If the flag -o, or --output, is defined, a plot of the number of groups by
threshold will be written as a PNG file with the indicated name.
	`,
	SetFlags: setFlags,
	Run:      run,
}

// defSteps is the default number of steps.
const defSteps = 20

// maxSteps is the largest number of thresholds
// evaluated in a sweep.
const maxSteps = 10_000

var minFlag float64
var maxFlag float64
var stepFlag float64
var output string

func setFlags(c *command.Command) {
	c.Flags().Float64Var(&minFlag, "min", math.NaN(), "")
	c.Flags().Float64Var(&maxFlag, "max", math.NaN(), "")
	c.Flags().Float64Var(&stepFlag, "step", 0, "")
	c.Flags().StringVar(&output, "output", "", "")
	c.Flags().StringVar(&output, "o", "", "")
}

func run(c *command.Command, args []string) error {
	if len(args) < 1 {
		return c.UsageError("expecting project file")
	}

	p, err := project.Read(args[0])
	if err != nil {
		return err
	}
	g, err := p.Graph()
	if err != nil {
		return err
	}
	if len(g.Links) == 0 {
		return fmt.Errorf("graph without links in project %q", args[0])
	}

	ths, err := thresholds(g)
	if err != nil {
		return c.UsageError(err.Error())
	}
	n := cluster.Sweep(g, ths)

	fmt.Fprintf(c.Stdout(), "threshold\tgroups\n")
	for i, t := range ths {
		fmt.Fprintf(c.Stdout(), "%.6g\t%d\n", t, n[i])
	}

	if output == "" {
		return nil
	}
	return plotSweep(ths, n)
}

func thresholds(g cluster.Graph) ([]float64, error) {
	vals := make([]float64, 0, len(g.Links))
	for _, l := range g.Links {
		vals = append(vals, l.Value)
	}

	min := floats.Min(vals)
	if !math.IsNaN(minFlag) {
		min = minFlag
	}
	max := floats.Max(vals)
	if !math.IsNaN(maxFlag) {
		max = maxFlag
	}
	if max < min {
		return nil, fmt.Errorf("invalid range: %.6g-%.6g", min, max)
	}

	step := stepFlag
	if step <= 0 {
		step = (max - min) / defSteps
	}
	if step <= 0 {
		return []float64{min}, nil
	}

	n := math.Floor((max-min)/step + 1e-9)
	if n >= maxSteps {
		return nil, fmt.Errorf("step %.6g too small: more than %d thresholds in range %.6g-%.6g", step, maxSteps, min, max)
	}
	steps := int(n) + 1
	ths := make([]float64, 0, steps)
	for i := 0; i < steps; i++ {
		ths = append(ths, min+float64(i)*step)
	}
	return ths, nil
}

func plotSweep(ths []float64, n []int) error {
	p := plot.New()
	p.X.Label.Text = "threshold"
	p.Y.Label.Text = "groups"

	xys := make(plotter.XYs, len(ths))
	for i, t := range ths {
		xys[i].X = t
		xys[i].Y = float64(n[i])
	}

	ln, err := plotter.NewLine(xys)
	if err != nil {
		return err
	}
	ln.LineStyle = plotter.DefaultLineStyle
	p.Add(ln)

	sc, err := plotter.NewScatter(xys)
	if err != nil {
		return err
	}
	p.Add(sc)

	if err := p.Save(6*vg.Inch, 4*vg.Inch, output); err != nil {
		return fmt.Errorf("while writing to %q: %v", output, err)
	}
	return nil
}
