// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package chart renders categorical bar charts of elapsed times.
package chart

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// ErrNoBars is returned when asked to render a chart with no bars.
// It reports that there was nothing to plot; no output is produced.
var ErrNoBars = errors.New("nothing to plot")

// A Bar is one category of a chart.
type Bar struct {
	Label string
	Value float64
	Color color.Color
}

// Options control the appearance and encoding of a chart.
type Options struct {
	Title  string
	XLabel string
	YLabel string

	Width, Height vg.Length

	// Format is the document format: "pdf", "svg", "png" or "eps".
	// If empty, Save derives it from the file name.
	Format string
}

// maxBarWidth bounds the width of bars in charts with few categories.
const maxBarWidth = 24 // points

// New builds the plot for bars. bars must not be empty.
func New(bars []Bar, opts Options) (*plot.Plot, error) {
	if len(bars) == 0 {
		return nil, ErrNoBars
	}

	pl := plot.New()
	pl.Title.Text = opts.Title
	pl.X.Label.Text = opts.XLabel
	pl.Y.Label.Text = opts.YLabel

	bcs, err := barCharts(bars, barWidth(len(bars), opts.Width))
	if err != nil {
		return nil, err
	}
	for _, bc := range bcs {
		pl.Add(bc)
	}
	labels, err := valueLabels(bars)
	if err != nil {
		return nil, err
	}
	pl.Add(labels)

	names := make([]string, len(bars))
	for i, b := range bars {
		names[i] = b.Label
	}
	pl.NominalX(names...)

	pl.X.Tick.Label.Rotation = math.Pi / 2
	pl.X.Tick.Label.XAlign = draw.XRight
	pl.X.Tick.Label.YAlign = draw.YCenter

	// Leave room for the value labels.
	pl.Y.Max *= 1.1

	return pl, nil
}

// barWidth picks a bar width that fits n bars across a chart of the
// given width.
func barWidth(n int, width vg.Length) vg.Length {
	w := vg.Points(maxBarWidth)
	if fit := width * 0.6 / vg.Length(n); fit > 0 && fit < w {
		w = fit
	}
	return w
}

// barCharts returns one single-valued bar chart per bar, so that each
// bar can have its own color. Bar i is centered on the nominal X
// position i.
func barCharts(bars []Bar, width vg.Length) ([]*plotter.BarChart, error) {
	bcs := make([]*plotter.BarChart, len(bars))
	for i, b := range bars {
		bc, err := plotter.NewBarChart(plotter.Values{b.Value}, width)
		if err != nil {
			return nil, fmt.Errorf("bar %q: %w", b.Label, err)
		}
		bc.XMin = float64(i)
		bc.LineStyle.Width = 0
		if b.Color != nil {
			bc.Color = b.Color
		}
		bcs[i] = bc
	}
	return bcs, nil
}

// valueLabels returns a label with each bar's value, centered just
// above the top of the bar.
func valueLabels(bars []Bar) (*plotter.Labels, error) {
	xyl := plotter.XYLabels{
		XYs:    make(plotter.XYs, len(bars)),
		Labels: make([]string, len(bars)),
	}
	for i, b := range bars {
		xyl.XYs[i] = plotter.XY{X: float64(i), Y: b.Value}
		xyl.Labels[i] = FormatValue(b.Value)
	}
	labels, err := plotter.NewLabels(xyl)
	if err != nil {
		return nil, err
	}
	for i := range labels.TextStyle {
		labels.TextStyle[i].XAlign = draw.XCenter
		labels.TextStyle[i].YAlign = draw.YBottom
	}
	labels.Offset = vg.Point{Y: vg.Points(2)}
	return labels, nil
}

// FormatValue formats v rounded to two decimal places, without
// trailing zeros. The exact binary value is rounded, so 2.675 is
// "2.67", and halfway cases round to even. Whole numbers have no
// fractional part: 4 is "4", not "4.0".
func FormatValue(v float64) string {
	s := strconv.FormatFloat(v, 'f', 2, 64)
	if strings.Contains(s, ".") {
		s = strings.TrimRight(s, "0")
		s = strings.TrimSuffix(s, ".")
	}
	return s
}

// Render writes the chart of bars to w in opts.Format.
func Render(w io.Writer, bars []Bar, opts Options) error {
	pl, err := New(bars, opts)
	if err != nil {
		return err
	}
	wt, err := pl.WriterTo(opts.Width, opts.Height, opts.Format)
	if err != nil {
		return err
	}
	_, err = wt.WriteTo(w)
	return err
}

// Save writes the chart of bars to the named file. If there are no
// bars, it returns ErrNoBars without creating the file.
func Save(path string, bars []Bar, opts Options) (err error) {
	if len(bars) == 0 {
		return ErrNoBars
	}
	if opts.Format == "" {
		if opts.Format, err = FormatOf(path); err != nil {
			return err
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			os.Remove(path)
		}
	}()
	if err := Render(f, bars, opts); err != nil {
		return fmt.Errorf("rendering %s: %w", path, err)
	}
	return nil
}

var formats = map[string]bool{"pdf": true, "svg": true, "png": true, "eps": true}

// FormatOf returns the document format implied by the extension of
// path.
func FormatOf(path string) (string, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	if !formats[ext] {
		return "", fmt.Errorf("%s: unsupported chart format %q", path, ext)
	}
	return ext, nil
}
