// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package classify

import (
	"testing"
)

func TestOf(t *testing.T) {
	for _, test := range []struct {
		name string
		want Class
	}{
		{"gmp_4_mkIISR", Red},
		{"gmp_4_mkIISR_openmp", Red},
		{"gmp_4_mkII", Green},
		{"gmp_4_mkII_openmp", Green},
		{"gmp_4_orig", Blue},
		{"gmp_4_orig_openmp", Blue},
		{"gmp_4_custom", Gray},
		{"", Gray},
	} {
		if got := Of(test.name); got != test.want {
			t.Errorf("Of(%q) = %s, want %s", test.name, got.Label, test.want.Label)
		}
	}
}

func TestOrderMatters(t *testing.T) {
	// With the loose rule first, mkIISR names fall into the mkII class.
	swapped := Rules{
		List:     []Rule{Default.List[1], Default.List[0], Default.List[2]},
		Fallback: Default.Fallback,
	}
	if got := swapped.Classify("gmp_4_mkIISR"); got != Green {
		t.Errorf("swapped rules: got %s, want green", got.Label)
	}
	if got := Default.Classify("gmp_4_mkIISR"); got != Red {
		t.Errorf("default rules: got %s, want red", got.Label)
	}
}

func TestClassifyAll(t *testing.T) {
	names := []string{"gmp_4_orig", "gmp_4_custom", "gmp_4_mkIISR", "gmp_4_mkII"}
	want := []Class{Blue, Gray, Red, Green}
	got := Default.ClassifyAll(names)
	if len(got) != len(want) {
		t.Fatalf("got %d classes, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("class %d (%s) = %s, want %s", i, names[i], got[i].Label, want[i].Label)
		}
	}
}

func TestEmptyRules(t *testing.T) {
	rs := Rules{Fallback: Blue}
	if got := rs.Classify("anything"); got != Blue {
		t.Errorf("got %s, want fallback blue", got.Label)
	}
}
