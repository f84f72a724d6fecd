// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchlog

import (
	"bytes"
	"fmt"
	"io"
)

// BenchmarkName is the Go benchmark format name records are written
// under. The operation, size and precision are sub-benchmark keys.
const BenchmarkName = "BenchmarkInnerProduct"

// A Writer writes records in the Go benchmark format, so they can be
// compared with benchstat.
type Writer struct {
	w   io.Writer
	buf bytes.Buffer

	source string
	first  bool
}

// NewWriter returns a writer that writes records to w. If source is
// not empty, it is emitted once as a "source" file configuration line
// before the first record.
func NewWriter(w io.Writer, source string) *Writer {
	return &Writer{w: w, source: source, first: true}
}

// Write writes rec to w.
func (w *Writer) Write(rec Record) error {
	if w.first {
		if w.source != "" {
			fmt.Fprintf(&w.buf, "source: %s\n", w.source)
		}
		w.first = false
	}

	fmt.Fprintf(&w.buf, "%s/op=%s/n=%d/prec=%d 1 %v sec/op", BenchmarkName, rec.Name(), rec.Size, rec.Prec, rec.Elapsed)
	if rec.MFLOPS != 0 {
		fmt.Fprintf(&w.buf, " %v MFLOPS", rec.MFLOPS)
	}
	w.buf.WriteByte('\n')

	// Write to the buffer can't fail, so we only have to check if
	// this fails.
	_, err := w.w.Write(w.buf.Bytes())
	w.buf.Reset()
	return err
}
