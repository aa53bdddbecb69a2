// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package settings_test

import (
	"bytes"
	"reflect"
	"strings"
	"testing"

	"github.com/js-arias/phyloviz/layout"
	"github.com/js-arias/phyloviz/newick"
	"github.com/js-arias/phyloviz/settings"
)

func TestDefault(t *testing.T) {
	s := settings.Default()
	if err := s.Validate(); err != nil {
		t.Fatalf("default settings: %v", err)
	}
	if l := s.Layout(); l != layout.DefaultConfig() {
		t.Errorf("layout: got %v, want %v", l, layout.DefaultConfig())
	}
	if sc := s.LengthScheme(); sc != newick.Raw {
		t.Errorf("scheme: got %v, want %v", sc, newick.Raw)
	}

	empty, err := settings.Read(strings.NewReader(""))
	if err != nil {
		t.Fatalf("empty file: %v", err)
	}
	if !reflect.DeepEqual(empty, s) {
		t.Errorf("empty file: got %v, want %v", empty, s)
	}
}

func TestRead(t *testing.T) {
	data := `# analysis settings
scheme: normalized_rtt
canvas:
  width: 400
  right: 80
cluster:
  threshold: 0.75
  seed: 42
`
	s, err := settings.Read(strings.NewReader(data))
	if err != nil {
		t.Fatalf("unable to read settings: %v", err)
	}

	want := settings.Default()
	want.Scheme = "normalized_rtt"
	want.Canvas.Width = 400
	want.Canvas.Right = 80
	want.Cluster.Threshold = 0.75
	want.Cluster.Seed = 42
	if !reflect.DeepEqual(s, want) {
		t.Errorf("settings: got %v, want %v", s, want)
	}
	if sc := s.LengthScheme(); sc != newick.NormalizedRTT {
		t.Errorf("scheme: got %v, want %v", sc, newick.NormalizedRTT)
	}

	var buf bytes.Buffer
	if err := s.Write(&buf); err != nil {
		t.Fatalf("unable to write settings: %v", err)
	}
	got, err := settings.Read(&buf)
	if err != nil {
		t.Fatalf("unable to read settings: %v", err)
	}
	if !reflect.DeepEqual(got, s) {
		t.Errorf("settings: got %v, want %v", got, s)
	}
}

func TestReadErrors(t *testing.T) {
	tests := map[string]string{
		"scheme":     "scheme: ultrametric\n",
		"canvas":     "canvas:\n  width: 100\n  left: 80\n  right: 80\n",
		"resolution": "cluster:\n  resolution: 0\n",
		"unknown":    "colour: red\n",
		"syntax":     "canvas: [\n",
	}
	for name, data := range tests {
		if _, err := settings.Read(strings.NewReader(data)); err == nil {
			t.Errorf("%s: expecting error", name)
		}
	}
}
