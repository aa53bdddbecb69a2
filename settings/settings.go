// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package settings implements the analysis settings
// of a project,
// stored as a YAML file.
//
// Any value not defined in the file
// takes its default value.
package settings

import (
	"fmt"
	"io"

	"github.com/js-arias/phyloviz/layout"
	"github.com/js-arias/phyloviz/newick"
	"gopkg.in/yaml.v3"
)

// Canvas is the size of the drawing canvas
// and its margins,
// in pixels.
type Canvas struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Left   float64 `yaml:"left"`
	Right  float64 `yaml:"right"`
	Top    float64 `yaml:"top"`
	Bottom float64 `yaml:"bottom"`
}

// Cluster are the settings for the clustering
// of weighted graphs.
type Cluster struct {
	Threshold  float64 `yaml:"threshold"`
	Resolution float64 `yaml:"resolution"`
	Seed       uint64  `yaml:"seed"`
}

// Settings are the settings of a project.
type Settings struct {
	// Scheme is the name of the branch length scheme
	// used when reading trees.
	Scheme string `yaml:"scheme"`

	Canvas  Canvas  `yaml:"canvas"`
	Cluster Cluster `yaml:"cluster"`
}

// Default returns the default settings.
func Default() Settings {
	c := layout.DefaultConfig()
	return Settings{
		Scheme: newick.Raw.String(),
		Canvas: Canvas{
			Width:  c.Width,
			Height: c.Height,
			Left:   c.Left,
			Right:  c.Right,
			Top:    c.Top,
			Bottom: c.Bottom,
		},
		Cluster: Cluster{
			Threshold:  0,
			Resolution: 1,
			Seed:       1,
		},
	}
}

// Read reads the settings from a YAML file.
// Values not defined in the file
// are set to its default.
func Read(r io.Reader) (Settings, error) {
	s := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil && err != io.EOF {
		return Settings{}, fmt.Errorf("while decoding settings: %v", err)
	}
	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// Validate returns an error
// if a value of the settings is invalid.
func (s Settings) Validate() error {
	if _, err := newick.ParseScheme(s.Scheme); err != nil {
		return fmt.Errorf("settings: scheme: %v", err)
	}
	if err := s.Layout().Validate(); err != nil {
		return fmt.Errorf("settings: canvas: %v", err)
	}
	if s.Cluster.Resolution <= 0 {
		return fmt.Errorf("settings: cluster: invalid resolution %.6f", s.Cluster.Resolution)
	}
	return nil
}

// Layout returns the layout configuration
// of the canvas.
func (s Settings) Layout() layout.Config {
	return layout.Config{
		Width:  s.Canvas.Width,
		Height: s.Canvas.Height,
		Left:   s.Canvas.Left,
		Right:  s.Canvas.Right,
		Top:    s.Canvas.Top,
		Bottom: s.Canvas.Bottom,
	}
}

// LengthScheme returns the branch length scheme.
func (s Settings) LengthScheme() newick.LengthScheme {
	sc, err := newick.ParseScheme(s.Scheme)
	if err != nil {
		return newick.Raw
	}
	return sc
}

// Write writes the settings as a YAML file.
func (s Settings) Write(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(s); err != nil {
		return fmt.Errorf("while encoding settings: %v", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("while encoding settings: %v", err)
	}
	return nil
}
