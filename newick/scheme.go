// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package newick

import (
	"fmt"
	"strings"
)

// A LengthScheme defines how branch lengths
// are assigned when a tree is parsed.
type LengthScheme int

// Valid length schemes.
const (
	// Raw uses the branch lengths found in the input,
	// or DefaultLength if a branch has no length.
	Raw LengthScheme = iota

	// Normalized is a pass-through of the raw lengths.
	Normalized

	// NormalizedRTT ignores the lengths of the input
	// and sets the branch lengths
	// so the distance between the root
	// and any terminal is 1.
	NormalizedRTT
)

var schemeNames = []string{
	Raw:           "raw",
	Normalized:    "normalized",
	NormalizedRTT: "normalized_rtt",
}

func (s LengthScheme) String() string {
	if s < 0 || int(s) >= len(schemeNames) {
		return fmt.Sprintf("LengthScheme(%d)", int(s))
	}
	return schemeNames[s]
}

// ParseScheme returns the length scheme
// with the given name.
// An empty string returns Raw.
func ParseScheme(name string) (LengthScheme, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return Raw, nil
	}
	for i, s := range schemeNames {
		if s == name {
			return LengthScheme(i), nil
		}
	}
	return Raw, fmt.Errorf("unknown length scheme %q", name)
}
