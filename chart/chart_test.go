// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"bytes"
	"errors"
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gonum.org/v1/plot/vg"
)

var (
	red  = color.NRGBA{0xFF, 0, 0, 0xFF}
	gray = color.NRGBA{0x80, 0x80, 0x80, 0xFF}
)

func testBars() []Bar {
	return []Bar{
		{Label: "gmp_4_mkIISR", Value: 1.23, Color: red},
		{Label: "gmp_4_custom", Value: 2.4513, Color: gray},
	}
}

func testOptions(format string) Options {
	return Options{
		Title:  "Elapsed Time",
		XLabel: "Operation",
		YLabel: "Elapsed Time (s)",
		Width:  10 * vg.Inch,
		Height: 6 * vg.Inch,
		Format: format,
	}
}

func TestFormatValue(t *testing.T) {
	for _, test := range []struct {
		in   float64
		want string
	}{
		{1.23, "1.23"},
		{2.4513, "2.45"},
		{0.2204, "0.22"},
		{3.5, "3.5"},
		{1.90211, "1.9"},
		{4, "4"},
		{10, "10"},
		{100.5, "100.5"},
		{0, "0"},
		// Rounding applies to the exact binary value.
		{2.675, "2.67"},
		{1.115, "1.11"},
		// Exact halves round to even.
		{0.125, "0.12"},
		{0.375, "0.38"},
	} {
		if got := FormatValue(test.in); got != test.want {
			t.Errorf("FormatValue(%v) = %q, want %q", test.in, got, test.want)
		}
	}
}

func TestFormatValueLarge(t *testing.T) {
	got := FormatValue(1e307)
	if strings.Contains(got, "Inf") || strings.Contains(got, ".") || len(got) < 300 {
		t.Errorf("FormatValue(1e307) = %q", got)
	}
}

func TestBarCharts(t *testing.T) {
	bcs, err := barCharts(testBars(), vg.Points(10))
	if err != nil {
		t.Fatal(err)
	}
	if len(bcs) != 2 {
		t.Fatalf("got %d bar charts, want 2", len(bcs))
	}
	for i, want := range testBars() {
		bc := bcs[i]
		if bc.XMin != float64(i) {
			t.Errorf("bar %d: XMin = %v, want %v", i, bc.XMin, float64(i))
		}
		if len(bc.Values) != 1 || bc.Values[0] != want.Value {
			t.Errorf("bar %d: values = %v, want [%v]", i, bc.Values, want.Value)
		}
		if bc.Color != want.Color {
			t.Errorf("bar %d: color = %v, want %v", i, bc.Color, want.Color)
		}
	}
}

func TestValueLabels(t *testing.T) {
	labels, err := valueLabels(testBars())
	if err != nil {
		t.Fatal(err)
	}
	wantText := []string{"1.23", "2.45"}
	for i, want := range testBars() {
		if labels.Labels[i] != wantText[i] {
			t.Errorf("label %d = %q, want %q", i, labels.Labels[i], wantText[i])
		}
		if xy := labels.XYs[i]; xy.X != float64(i) || xy.Y != want.Value {
			t.Errorf("label %d at (%v, %v), want (%v, %v)", i, xy.X, xy.Y, float64(i), want.Value)
		}
	}
}

func TestNewTicks(t *testing.T) {
	pl, err := New(testBars(), testOptions("pdf"))
	if err != nil {
		t.Fatal(err)
	}
	if pl.Title.Text != "Elapsed Time" {
		t.Errorf("title = %q", pl.Title.Text)
	}
	ticks := pl.X.Tick.Marker.Ticks(pl.X.Min, pl.X.Max)
	var got []string
	for _, tk := range ticks {
		got = append(got, tk.Label)
	}
	if strings.Join(got, ",") != "gmp_4_mkIISR,gmp_4_custom" {
		t.Errorf("tick labels = %v", got)
	}
	if pl.Y.Max < 2.4513 {
		t.Errorf("Y.Max = %v does not cover the tallest bar", pl.Y.Max)
	}
}

func TestRenderPDF(t *testing.T) {
	var buf bytes.Buffer
	if err := Render(&buf, testBars(), testOptions("pdf")); err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF")) {
		t.Errorf("output is not a PDF document: %.16q", buf.Bytes())
	}
}

func TestRenderSVG(t *testing.T) {
	var buf bytes.Buffer
	if err := Render(&buf, testBars(), testOptions("svg")); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{"<svg", "gmp_4_mkIISR", "1.23", "2.45"} {
		if !strings.Contains(out, want) {
			t.Errorf("SVG output does not contain %q", want)
		}
	}
}

func TestRenderEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := Render(&buf, nil, testOptions("pdf")); !errors.Is(err, ErrNoBars) {
		t.Fatalf("want ErrNoBars, got %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("wrote %d bytes for an empty chart", buf.Len())
	}
}

func TestSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chart.pdf")
	if err := Save(path, testBars(), testOptions("")); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Errorf("%s is not a PDF document", path)
	}
}

func TestSaveEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chart.pdf")
	if err := Save(path, nil, testOptions("")); !errors.Is(err, ErrNoBars) {
		t.Fatalf("want ErrNoBars, got %v", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("empty chart created %s", path)
	}
}

func TestFormatOf(t *testing.T) {
	for _, test := range []struct {
		path, want string
		err        bool
	}{
		{"all.pdf", "pdf", false},
		{"dir/all.SVG", "svg", false},
		{"all.png", "png", false},
		{"all.eps", "eps", false},
		{"all.txt", "", true},
		{"all", "", true},
	} {
		got, err := FormatOf(test.path)
		if (err != nil) != test.err || got != test.want {
			t.Errorf("FormatOf(%q) = %q, %v; want %q, error %v", test.path, got, err, test.want, test.err)
		}
	}
}
