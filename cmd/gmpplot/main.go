// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Gmpplot charts the elapsed times of GMP inner product benchmark runs.
//
// Usage:
//
//	gmpplot [-config file] [-o dir] [-benchfmt file] logfile
//
// Gmpplot reads the console output of the inner_product_gmp_* benchmark
// binaries from logfile. Each run is recognized by the command line
// followed by its elapsed time:
//
//	./inner_product_gmp_4_mkIISR 10000000 512
//	Elapsed time: 1.23 s
//
// All other lines are ignored. Gmpplot writes a bar chart of every run
// to all_operations_elapsed_times_chart.pdf and, if any OpenMP variants
// ran, a chart of those to openmp_operations_elapsed_times_chart.pdf.
// Bars are colored by variant: mkIISR red, mkII green, orig blue, and
// anything else gray.
//
// The -config flag names a YAML file that overrides chart titles,
// labels, sizes (in inches) and output names, for example:
//
//	log_level: info
//	all:
//	  output: all.svg
//	  width: 20
//	openmp:
//	  title: OpenMP variants
//
// The extension of an output name selects its format: pdf, svg, png or
// eps.
//
// The -benchfmt flag additionally writes the extracted runs in the Go
// benchmark format, for use with benchstat.
//
// Gmpplot exits with status 1 if logfile is missing, cannot be read,
// or contains no benchmark runs.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"gmpplot/benchlog"
	"gmpplot/chart"
	"gmpplot/classify"
	"gmpplot/internal/config"
	"gmpplot/internal/logger"
)

var (
	// errUsage and errNoData have already been reported to the
	// user when they are returned.
	errUsage  = errors.New("usage")
	errNoData = errors.New("no data to plot")
)

func usage(fs *flag.FlagSet) {
	fmt.Fprintf(fs.Output(), `Usage: gmpplot [flags] logfile

gmpplot reads the output of GMP inner product benchmark runs from
logfile and charts the elapsed time of each run.

Flags:
`)
	fs.PrintDefaults()
}

func main() {
	log.SetPrefix("gmpplot: ")
	log.SetFlags(0)

	if err := gmpplot(os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		if err != errUsage && err != errNoData {
			log.Print(err)
		}
		os.Exit(1)
	}
}

func gmpplot(stdout, stderr io.Writer, args []string) error {
	fs := flag.NewFlagSet("gmpplot", flag.ContinueOnError)
	fs.SetOutput(stdout)
	fs.Usage = func() { usage(fs) }
	flagConfig := fs.String("config", "", "read chart settings from YAML `file`")
	flagDir := fs.String("o", ".", "write charts into `dir`")
	flagBenchfmt := fs.String("benchfmt", "", "also write the runs in Go benchmark format to `file`")
	if err := fs.Parse(args); err != nil {
		return errUsage
	}
	if fs.NArg() < 1 {
		fs.Usage()
		return errUsage
	}
	logPath := fs.Arg(0)

	cfg, err := loadConfig(*flagConfig)
	if err != nil {
		return err
	}
	lg := logger.New(stderr, cfg.LogLevel)
	defer lg.Sync()

	recs, err := benchlog.ReadFile(logPath)
	if err != nil {
		return err
	}
	omp := benchlog.FilterOpenMP(recs)

	for _, rec := range recs {
		lg.Debugw("record", "line", rec.Line, "operation", rec.Operation, "n", rec.Size, "prec", rec.Prec, "elapsed", rec.Elapsed)
	}
	lg.Infow("extracted records", "path", logPath, "count", len(recs))
	lg.Infow("operations", "names", benchlog.Names(recs))
	lg.Infow("elapsed times", "seconds", benchlog.Times(recs))
	lg.Infow("openmp operations", "names", benchlog.Names(omp))
	lg.Infow("openmp elapsed times", "seconds", benchlog.Times(omp))

	if len(recs) == 0 {
		fmt.Fprintln(stdout, "No data to plot.")
		return errNoData
	}

	if err := os.MkdirAll(*flagDir, 0o777); err != nil {
		return err
	}
	if err := saveChart(lg, *flagDir, cfg.All, recs); err != nil {
		return err
	}

	if *flagBenchfmt != "" {
		if err := writeBenchfmt(*flagBenchfmt, logPath, recs); err != nil {
			return err
		}
		lg.Infow("wrote benchmark format", "path", *flagBenchfmt, "records", len(recs))
	}

	if len(omp) == 0 {
		fmt.Fprintln(stdout, "No OpenMP data to plot.")
		return nil
	}
	return saveChart(lg, *flagDir, cfg.OpenMP, omp)
}

func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.Load(path)
	}
	cfg := config.Default()
	cfg.ApplyEnvironment()
	if err := config.Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// bars returns the chart bars for recs, colored by variant.
func bars(recs []benchlog.Record) []chart.Bar {
	names := benchlog.Names(recs)
	classes := classify.Default.ClassifyAll(names)
	out := make([]chart.Bar, len(recs))
	for i, rec := range recs {
		out[i] = chart.Bar{Label: names[i], Value: rec.Elapsed, Color: classes[i].Color}
	}
	return out
}

func saveChart(lg *zap.SugaredLogger, dir string, c config.Chart, recs []benchlog.Record) error {
	path := c.Output
	if !filepath.IsAbs(path) {
		path = filepath.Join(dir, path)
	}
	if err := chart.Save(path, bars(recs), c.Options()); err != nil {
		return err
	}
	lg.Infow("wrote chart", "path", path, "bars", len(recs))
	return nil
}

func writeBenchfmt(path, source string, recs []benchlog.Record) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	w := benchlog.NewWriter(f, source)
	for _, rec := range recs {
		if err := w.Write(rec); err != nil {
			return fmt.Errorf("writing %s: %w", path, err)
		}
	}
	return nil
}
