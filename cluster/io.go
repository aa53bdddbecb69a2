// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package cluster

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

var header = []string{
	"source",
	"target",
	"value",
}

// ReadTSV reads the links of a graph from a TSV file.
//
// The TSV must contain the following fields:
//
//   - source, the ID of the source node
//   - target, the ID of the target node
//   - value, the weight of the link
//
// Here is an example file:
//
//	# graph links
//	source	target	value
//	1	2	5
//	2	3	1
func ReadTSV(r io.Reader) (Graph, error) {
	tsv := csv.NewReader(r)
	tsv.Comma = '\t'
	tsv.Comment = '#'

	head, err := tsv.Read()
	if err != nil {
		return Graph{}, fmt.Errorf("while reading header: %v", err)
	}
	fields := make(map[string]int, len(head))
	for i, h := range head {
		h = strings.ToLower(strings.TrimSpace(h))
		fields[h] = i
	}
	for _, h := range header {
		if _, ok := fields[h]; !ok {
			return Graph{}, fmt.Errorf("expecting field %q", h)
		}
	}

	var g Graph
	for {
		row, err := tsv.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		ln, _ := tsv.FieldPos(0)
		if err != nil {
			return Graph{}, fmt.Errorf("on row %d: %v", ln, err)
		}

		f := "source"
		src := strings.TrimSpace(row[fields[f]])
		if src == "" {
			return Graph{}, fmt.Errorf("on row %d: field %q: empty value", ln, f)
		}

		f = "target"
		tgt := strings.TrimSpace(row[fields[f]])
		if tgt == "" {
			return Graph{}, fmt.Errorf("on row %d: field %q: empty value", ln, f)
		}

		f = "value"
		v, err := parseValue(row[fields[f]])
		if err != nil {
			return Graph{}, fmt.Errorf("on row %d: field %q: %v", ln, f, err)
		}

		g.Links = append(g.Links, Link{
			Source: src,
			Target: tgt,
			Value:  v,
		})
	}
	g.Nodes = g.IDs()
	return g, nil
}

// ReadMatrix reads a graph from a square matrix
// (for example a covariance or affinity matrix)
// stored as a TSV file.
//
// The first row contains the node IDs,
// and each following row starts with the ID
// of the node followed by the values.
// Only the upper triangle of the matrix is used
// (the diagonal is ignored),
// and empty cells are taken as missing links.
//
// Here is an example file:
//
//	# affinity matrix
//	node	1	2	3
//	1	1	5	0.5
//	2	5	1	1
//	3	0.5	1	1
func ReadMatrix(r io.Reader) (Graph, error) {
	tsv := csv.NewReader(r)
	tsv.Comma = '\t'
	tsv.Comment = '#'

	head, err := tsv.Read()
	if err != nil {
		return Graph{}, fmt.Errorf("while reading header: %v", err)
	}
	if len(head) < 2 {
		return Graph{}, fmt.Errorf("while reading header: expecting node IDs")
	}
	ids := make([]string, 0, len(head)-1)
	col := make(map[string]int, len(head)-1)
	for i, h := range head[1:] {
		h = strings.TrimSpace(h)
		if h == "" {
			return Graph{}, fmt.Errorf("while reading header: column %d: empty ID", i+2)
		}
		if _, dup := col[h]; dup {
			return Graph{}, fmt.Errorf("while reading header: repeated ID %q", h)
		}
		col[h] = i
		ids = append(ids, h)
	}

	g := Graph{Nodes: ids}
	seen := make(map[string]bool, len(ids))
	for {
		row, err := tsv.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		ln, _ := tsv.FieldPos(0)
		if err != nil {
			return Graph{}, fmt.Errorf("on row %d: %v", ln, err)
		}

		id := strings.TrimSpace(row[0])
		i, ok := col[id]
		if !ok {
			return Graph{}, fmt.Errorf("on row %d: unknown ID %q", ln, id)
		}
		if seen[id] {
			return Graph{}, fmt.Errorf("on row %d: repeated ID %q", ln, id)
		}
		seen[id] = true

		for j := i + 1; j < len(ids); j++ {
			cell := strings.TrimSpace(row[j+1])
			if cell == "" {
				continue
			}
			v, err := parseValue(cell)
			if err != nil {
				return Graph{}, fmt.Errorf("on row %d: field %q: %v", ln, ids[j], err)
			}
			g.Links = append(g.Links, Link{
				Source: id,
				Target: ids[j],
				Value:  v,
			})
		}
	}
	if len(seen) != len(ids) {
		return Graph{}, fmt.Errorf("expecting %d rows, found %d", len(ids), len(seen))
	}
	return g, nil
}

func parseValue(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) {
		return 0, fmt.Errorf("invalid value %q", s)
	}
	return v, nil
}

// TSV writes the links of a graph into a TSV file.
func (g Graph) TSV(w io.Writer) error {
	tsv := csv.NewWriter(w)
	tsv.Comma = '\t'
	tsv.UseCRLF = true

	if err := tsv.Write(header); err != nil {
		return fmt.Errorf("unable to write header: %v", err)
	}
	for _, l := range g.Links {
		row := []string{
			l.Source,
			l.Target,
			strconv.FormatFloat(l.Value, 'g', -1, 64),
		}
		if err := tsv.Write(row); err != nil {
			return fmt.Errorf("when writing data: %v", err)
		}
	}

	tsv.Flush()
	if err := tsv.Error(); err != nil {
		return fmt.Errorf("when writing data: %v", err)
	}
	return nil
}
