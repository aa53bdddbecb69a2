// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package export

import (
	"encoding/xml"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/js-arias/phyloviz/bipart"
	"github.com/js-arias/phyloviz/layout"
)

// Colors used to draw edges.
const (
	EdgeColor      = "black"
	BipartColor    = "rgb(0,114,178)"
	DuplicateColor = "rgb(213,94,0)"
)

// SVG draws a laid out tree as a cladogram
// using elbow edges.
// Edges matched with a bipartition
// are drawn with a different color
// (bipartitions matched by more than one edge
// use DuplicateColor),
// and include the bipartition ID as a title.
func SVG(w io.Writer, l *layout.Layout, edges []bipart.Edge) error {
	cfg := l.Config()
	dup := make(map[string]bool)
	for _, id := range bipart.Duplicates(edges) {
		dup[id] = true
	}

	fmt.Fprintf(w, "%s", xml.Header)
	e := xml.NewEncoder(w)
	svg := xml.StartElement{
		Name: xml.Name{Local: "svg"},
		Attr: []xml.Attr{
			{Name: xml.Name{Local: "height"}, Value: ftoa(cfg.Height)},
			{Name: xml.Name{Local: "width"}, Value: ftoa(cfg.Width)},
			{Name: xml.Name{Local: "xmlns"}, Value: "http://www.w3.org/2000/svg"},
		},
	}
	e.EncodeToken(svg)

	g := xml.StartElement{
		Name: xml.Name{Local: "g"},
		Attr: []xml.Attr{
			{Name: xml.Name{Local: "stroke-width"}, Value: "2"},
			{Name: xml.Name{Local: "stroke"}, Value: EdgeColor},
			{Name: xml.Name{Local: "stroke-linecap"}, Value: "round"},
			{Name: xml.Name{Local: "fill"}, Value: "none"},
			{Name: xml.Name{Local: "font-family"}, Value: "Verdana"},
			{Name: xml.Name{Local: "font-size"}, Value: "10"},
		},
	}
	e.EncodeToken(g)

	for _, ed := range edges {
		drawEdge(e, ed, dup[ed.Bipartition])
	}
	for _, n := range l.Leaves() {
		if n.Name == "" {
			continue
		}
		p := l.Point(n)
		tx := xml.StartElement{
			Name: xml.Name{Local: "text"},
			Attr: []xml.Attr{
				{Name: xml.Name{Local: "x"}, Value: ftoa(p.X + 5)},
				{Name: xml.Name{Local: "y"}, Value: ftoa(p.Y + 3)},
				{Name: xml.Name{Local: "stroke-width"}, Value: "0"},
				{Name: xml.Name{Local: "fill"}, Value: "black"},
				{Name: xml.Name{Local: "font-style"}, Value: "italic"},
			},
		}
		e.EncodeToken(tx)
		e.EncodeToken(xml.CharData(n.Name))
		e.EncodeToken(tx.End())
	}

	e.EncodeToken(g.End())
	e.EncodeToken(svg.End())
	if err := e.Flush(); err != nil {
		return err
	}
	return nil
}

func drawEdge(e *xml.Encoder, ed bipart.Edge, dup bool) {
	var pts []string
	for _, p := range ed.Elbow() {
		pts = append(pts, ftoa(p.X)+","+ftoa(p.Y))
	}
	ln := xml.StartElement{
		Name: xml.Name{Local: "polyline"},
		Attr: []xml.Attr{
			{Name: xml.Name{Local: "points"}, Value: strings.Join(pts, " ")},
		},
	}
	if ed.Bipartition == "" {
		e.EncodeToken(ln)
		e.EncodeToken(ln.End())
		return
	}

	color := BipartColor
	if dup {
		color = DuplicateColor
	}
	ln.Attr = append(ln.Attr, xml.Attr{Name: xml.Name{Local: "stroke"}, Value: color})
	e.EncodeToken(ln)

	title := xml.StartElement{Name: xml.Name{Local: "title"}}
	e.EncodeToken(title)
	e.EncodeToken(xml.CharData(ed.Bipartition))
	e.EncodeToken(title.End())

	e.EncodeToken(ln.End())
}

func ftoa(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
