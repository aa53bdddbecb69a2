// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package bipart

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
)

var header = []string{
	"bipartition",
	"taxon",
}

// ReadTSV reads a set of bipartitions from a TSV file.
//
// The TSV must contain the following fields:
//
//   - bipartition, the ID of the bipartition
//   - taxon, the name of a taxon in the bipartition
//
// Here is an example file:
//
//	# bipartitions
//	bipartition	taxon
//	split-1	Homo sapiens
//	split-1	Pan troglodytes
//	split-2	Gorilla gorilla
//	split-2	Homo sapiens
//	split-2	Pan troglodytes
func ReadTSV(r io.Reader) (Sets, error) {
	tsv := csv.NewReader(r)
	tsv.Comma = '\t'
	tsv.Comment = '#'

	head, err := tsv.Read()
	if err != nil {
		return nil, fmt.Errorf("while reading header: %v", err)
	}
	fields := make(map[string]int, len(head))
	for i, h := range head {
		h = strings.ToLower(strings.TrimSpace(h))
		fields[h] = i
	}
	for _, h := range header {
		if _, ok := fields[h]; !ok {
			return nil, fmt.Errorf("expecting field %q", h)
		}
	}

	s := make(Sets)
	for {
		row, err := tsv.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		ln, _ := tsv.FieldPos(0)
		if err != nil {
			return nil, fmt.Errorf("on row %d: %v", ln, err)
		}

		f := "bipartition"
		id := strings.TrimSpace(row[fields[f]])
		if id == "" {
			return nil, fmt.Errorf("on row %d: field %q: empty value", ln, f)
		}

		f = "taxon"
		tax := strings.TrimSpace(row[fields[f]])
		if tax == "" {
			continue
		}
		s[id] = append(s[id], tax)
	}
	return s, nil
}

// TSV writes a set of bipartitions into a TSV file.
func (s Sets) TSV(w io.Writer) error {
	tsv := csv.NewWriter(w)
	tsv.Comma = '\t'
	tsv.UseCRLF = true

	if err := tsv.Write(header); err != nil {
		return fmt.Errorf("unable to write header: %v", err)
	}
	for _, id := range s.IDs() {
		for _, tax := range newTaxonSet(s[id]).names() {
			if err := tsv.Write([]string{id, tax}); err != nil {
				return fmt.Errorf("when writing data: %v", err)
			}
		}
	}

	tsv.Flush()
	if err := tsv.Error(); err != nil {
		return fmt.Errorf("when writing data: %v", err)
	}
	return nil
}
