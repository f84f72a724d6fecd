// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchlog reads the console log produced by running the GMP
// inner product benchmark binaries.
//
// Each benchmark run appears in the log as a two-line template: the
// command that was executed, followed by the elapsed time it
// reported:
//
//	./inner_product_gmp_4_mkIISR 10 20
//	Elapsed time: 1.23 s
//
// The two numbers after the command are the vector size and the
// precision in bits. A line "MFLOPS: <number>" directly after the
// elapsed time is recorded when present. Everything else in the log is
// ignored.
package benchlog

import "strings"

// OperationPrefix is the common prefix of benchmark operation names.
// It is stripped to form display names.
const OperationPrefix = "inner_product_"

// OpenMPMarker marks operations built with OpenMP.
const OpenMPMarker = "openmp"

// A Record is a single benchmark run extracted from a log.
type Record struct {
	// Operation is the benchmark binary name without the leading
	// "./", for example "inner_product_gmp_4_mkIISR".
	Operation string

	// Size and Prec are the vector size and precision arguments
	// the benchmark was invoked with.
	Size, Prec int

	// Elapsed is the reported elapsed time in seconds.
	Elapsed float64

	// MFLOPS is the reported throughput, or 0 if the log did not
	// report one.
	MFLOPS float64

	// Line is the 1-based line number of the command line.
	Line int
}

// Name returns the display name of r's operation.
func (r Record) Name() string {
	return OperationName(r.Operation)
}

// OperationName removes the first occurrence of OperationPrefix from
// op. Names that do not contain the prefix are returned unchanged.
func OperationName(op string) string {
	return strings.Replace(op, OperationPrefix, "", 1)
}

// Filter returns the records for which keep returns true, in their
// original order.
func Filter(recs []Record, keep func(Record) bool) []Record {
	var out []Record
	for _, rec := range recs {
		if keep(rec) {
			out = append(out, rec)
		}
	}
	return out
}

// IsOpenMP reports whether rec is an OpenMP variant of a benchmark.
func IsOpenMP(rec Record) bool {
	return strings.Contains(rec.Name(), OpenMPMarker)
}

// FilterOpenMP returns the OpenMP records of recs in their original
// order.
func FilterOpenMP(recs []Record) []Record {
	return Filter(recs, IsOpenMP)
}

// Names returns the display names of recs.
func Names(recs []Record) []string {
	names := make([]string, len(recs))
	for i, rec := range recs {
		names[i] = rec.Name()
	}
	return names
}

// Times returns the elapsed times of recs.
func Times(recs []Record) []float64 {
	times := make([]float64, len(recs))
	for i, rec := range recs {
		times[i] = rec.Elapsed
	}
	return times
}
