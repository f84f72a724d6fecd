// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package classify assigns chart colors to benchmark operations based
// on their names.
//
// Classification is an ordered list of rules. The first rule whose
// predicate matches a name decides its class, so more specific rules
// must come before the rules they overlap with. For example, every name
// containing "mkIISR" also contains "mkII".
package classify

import (
	"image/color"
	"strings"
)

// A Class is a color category for a group of operations.
type Class struct {
	Label string // Label is the color name, for diagnostics.
	Color color.Color
}

var (
	Red   = Class{"red", color.NRGBA{0xFF, 0, 0, 0xFF}}
	Green = Class{"green", color.NRGBA{0, 0x80, 0, 0xFF}}
	Blue  = Class{"blue", color.NRGBA{0, 0, 0xFF, 0xFF}}
	Gray  = Class{"gray", color.NRGBA{0x80, 0x80, 0x80, 0xFF}}
)

// A Rule assigns Class to names for which Match returns true.
type Rule struct {
	Match func(name string) bool
	Class Class
}

// Contains returns a predicate that reports whether a name contains
// substr.
func Contains(substr string) func(string) bool {
	return func(name string) bool {
		return strings.Contains(name, substr)
	}
}

// Rules is an ordered rule list with a fallback class for names no
// rule matches.
type Rules struct {
	List     []Rule
	Fallback Class
}

// Default is the classification of GMP inner product variants:
// the mkII wrapper with SR optimizations, the mkII wrapper, the
// original gmpxx, and everything else.
var Default = Rules{
	List: []Rule{
		{Contains("mkIISR"), Red},
		{Contains("mkII"), Green},
		{Contains("orig"), Blue},
	},
	Fallback: Gray,
}

// Classify returns the class of name.
func (rs Rules) Classify(name string) Class {
	for _, r := range rs.List {
		if r.Match(name) {
			return r.Class
		}
	}
	return rs.Fallback
}

// ClassifyAll returns the class of each name, aligned with names.
func (rs Rules) ClassifyAll(names []string) []Class {
	classes := make([]Class, len(names))
	for i, name := range names {
		classes[i] = rs.Classify(name)
	}
	return classes
}

// Of classifies name using the Default rules.
func Of(name string) Class {
	return Default.Classify(name)
}
