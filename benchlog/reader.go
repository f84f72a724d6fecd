// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchlog

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// A Reader extracts benchmark records from a log.
//
// Its API is modeled on bufio.Scanner. Lines that are not part of a
// complete command/elapsed-time pair are skipped without error, as are
// lines longer than 1 MiB.
type Reader struct {
	br  *bufio.Reader
	err error // current I/O error

	fileName string
	line     int

	// held is a line that was read ahead and must be examined again
	// before consuming more input.
	held     string
	haveHeld bool

	// pending is the last command line seen. It becomes a record if
	// the next line reports an elapsed time.
	pending     Record
	havePending bool

	rec Record
}

// Lines longer than maxLineSize are skipped.
const maxLineSize = 1 << 20

// NewReader constructs a reader to parse benchmark logs from r.
// fileName is used in error messages; it is purely diagnostic.
func NewReader(r io.Reader, fileName string) *Reader {
	reader := new(Reader)
	reader.Reset(r, fileName)
	return reader
}

// Reset resets the reader to begin reading from a new input.
func (r *Reader) Reset(ior io.Reader, fileName string) {
	if fileName == "" {
		fileName = "<unknown>"
	}
	*r = Reader{br: bufio.NewReader(ior), fileName: fileName}
}

// Scan advances the reader to the next record and reports whether a
// record was read. The caller should use the Record method to get it.
// If Scan reaches EOF or an I/O error occurs, it returns false, in
// which case the caller should use the Err method to check for errors.
func (r *Reader) Scan() bool {
	if r.err != nil {
		return false
	}

	for {
		line, ok := r.next()
		if !ok {
			break
		}
		if r.havePending {
			r.havePending = false
			if elapsed, tail, ok := parseElapsed(line); ok {
				r.rec = r.pending
				r.rec.Elapsed = elapsed
				if cmd, ok := parseCommand(tail); ok {
					// The rest of the line starts the next
					// record, so there is no MFLOPS line.
					cmd.Line = r.line
					r.pending = cmd
					r.havePending = true
				} else if next, ok := r.next(); ok {
					if v, ok := parseMFLOPS(next); ok {
						r.rec.MFLOPS = v
					} else {
						r.unread(next)
					}
				}
				return true
			}
			// Not an elapsed line. It may still start a
			// record of its own.
		}
		if rec, ok := parseCommand(line); ok {
			rec.Line = r.line
			r.pending = rec
			r.havePending = true
		}
	}
	return false
}

// Record returns the record that was just read by Scan.
func (r *Reader) Record() Record {
	return r.rec
}

// Err returns the first I/O error encountered by the Reader.
func (r *Reader) Err() error {
	return r.err
}

func (r *Reader) next() (string, bool) {
	if r.haveHeld {
		r.haveHeld = false
		return r.held, true
	}
	if r.err != nil {
		return "", false
	}

	var buf []byte
	read, long := false, false
	for {
		frag, isPrefix, err := r.br.ReadLine()
		if err != nil {
			if err != io.EOF {
				r.err = fmt.Errorf("%s:%d: %w", r.fileName, r.line+1, err)
			}
			if !read {
				return "", false
			}
			break
		}
		read = true
		if !long {
			if len(buf)+len(frag) > maxLineSize {
				long, buf = true, nil
			} else {
				buf = append(buf, frag...)
			}
		}
		if !isPrefix {
			break
		}
	}
	r.line++
	if long {
		// Too long to be a benchmark line.
		return "", true
	}
	return strings.TrimSuffix(string(buf), "\r"), true
}

func (r *Reader) unread(line string) {
	r.held, r.haveHeld = line, true
}

// Parse returns all records in text, in order.
func Parse(text string) []Record {
	recs, _ := ReadAll(strings.NewReader(text), "")
	return recs
}

// ReadAll returns all records read from r. It returns the records
// read before any I/O error along with the error.
func ReadAll(r io.Reader, fileName string) ([]Record, error) {
	var recs []Record
	reader := NewReader(r, fileName)
	for reader.Scan() {
		recs = append(recs, reader.Record())
	}
	return recs, reader.Err()
}

// ReadFile returns all records in the named log file.
func ReadFile(path string) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadAll(f, path)
}

const (
	commandPrefix = "./" + OperationPrefix + "gmp_"
	elapsedPrefix = "Elapsed time: "
	mflopsPrefix  = "MFLOPS: "
)

// parseCommand finds a benchmark invocation in line. The invocation
// may be preceded by other text, such as a shell prompt, but must end
// the line.
func parseCommand(line string) (Record, bool) {
	for off := 0; off < len(line); {
		i := strings.Index(line[off:], commandPrefix)
		if i < 0 {
			break
		}
		start := off + i
		if rec, ok := parseInvocation(line[start+len("./"):]); ok {
			return rec, true
		}
		off = start + 1
	}
	return Record{}, false
}

// parseInvocation parses "inner_product_gmp_<digits>_<word> <digits> <digits>".
func parseInvocation(s string) (Record, bool) {
	rest := s[len(commandPrefix)-len("./"):]

	n := digits(rest)
	if n == 0 || n == len(rest) || rest[n] != '_' {
		return Record{}, false
	}
	rest = rest[n+1:]
	w := wordChars(rest)
	if w == 0 {
		return Record{}, false
	}
	rest = rest[w:]
	op := s[:len(s)-len(rest)]

	size, rest, ok := spaceNumber(rest)
	if !ok {
		return Record{}, false
	}
	prec, rest, ok := spaceNumber(rest)
	if !ok || rest != "" {
		return Record{}, false
	}
	return Record{Operation: op, Size: size, Prec: prec}, true
}

// spaceNumber parses a single space followed by a run of digits.
// Values beyond the range of int are reported as 0.
func spaceNumber(s string) (int, string, bool) {
	if len(s) == 0 || s[0] != ' ' {
		return 0, s, false
	}
	s = s[1:]
	n := digits(s)
	if n == 0 {
		return 0, s, false
	}
	v, _ := strconv.Atoi(s[:n])
	return v, s[n:], true
}

// parseElapsed parses "Elapsed time: <decimal> s" and returns the
// text that follows it on the line.
func parseElapsed(line string) (float64, string, bool) {
	rest, ok := strings.CutPrefix(line, elapsedPrefix)
	if !ok {
		return 0, "", false
	}
	n := 0
	for n < len(rest) && (isDigit(rest[n]) || rest[n] == '.') {
		n++
	}
	if n == 0 || !strings.HasPrefix(rest[n:], " s") {
		return 0, "", false
	}
	v, err := strconv.ParseFloat(rest[:n], 64)
	if err != nil {
		return 0, "", false
	}
	return v, rest[n+len(" s"):], true
}

func parseMFLOPS(line string) (float64, bool) {
	rest, ok := strings.CutPrefix(line, mflopsPrefix)
	if !ok {
		return 0, false
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(rest), 64)
	if err != nil || math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, false
	}
	return v, true
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

func digits(s string) int {
	n := 0
	for n < len(s) && isDigit(s[n]) {
		n++
	}
	return n
}

// wordChars returns the length in bytes of the run of letters, digits
// and underscores at the start of s.
func wordChars(s string) int {
	n := 0
	for n < len(s) {
		r, size := utf8.DecodeRuneInString(s[n:])
		if r != '_' && !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			break
		}
		n += size
	}
	return n
}
