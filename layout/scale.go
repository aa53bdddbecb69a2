// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package layout

// A Scale is a linear function
// that maps values in a domain
// into pixel values in a range.
type Scale struct {
	Domain [2]float64
	Range  [2]float64
}

// Map returns the range value of v.
//
// If the domain is a single value,
// it returns the middle of the range.
func (s Scale) Map(v float64) float64 {
	w := s.Domain[1] - s.Domain[0]
	if w == 0 {
		return (s.Range[0] + s.Range[1]) / 2
	}
	return s.Range[0] + (v-s.Domain[0])/w*(s.Range[1]-s.Range[0])
}

// Invert returns the domain value
// of the range value px.
func (s Scale) Invert(px float64) float64 {
	w := s.Range[1] - s.Range[0]
	if w == 0 {
		return (s.Domain[0] + s.Domain[1]) / 2
	}
	return s.Domain[0] + (px-s.Range[0])/w*(s.Domain[1]-s.Domain[0])
}
