// Package textscan provides a cursor-based character scanner for handwritten
// recursive descent parsers. A Scanner consumes either an in-memory string or
// a streaming reader with a bounded lookahead buffer, and exposes peek,
// expect, match-while, read-until and skip-over primitives together with
// specialized readers for lines, quoted/escaped string segments and numeric
// literals.
//
// A Scanner is a plain cursor, not a tokenizer: callers drive it directly
// from their parsing code. Instances are not safe for concurrent use.
package textscan

import (
	"errors"
	"io"
	"strings"

	"github.com/vippsas/textscan/internal/utils"
)

// EOS is returned by Peek/PeekAt/Next when no character is reachable.
const EOS rune = -1

// DefaultCapacity is the buffer capacity used by NewReader when none is given.
// The capacity also bounds every lookahead request.
const DefaultCapacity = 4096

// ErrClosed is returned by operations invoked after Close.
var ErrClosed = errors.New("scanner is closed")

// Scanner is a cursor over a stream of codepoints. See the package
// documentation for the overall contract.
type Scanner struct {
	src  source
	file FileRef

	buf    []rune // primary window
	off    int    // index of the next character to consume
	limit  int    // one past the last valid character in buf
	ahead  []rune // secondary lookahead window, reader-backed sources only
	aheadN int    // valid characters in ahead

	pos       int // characters consumed before buf[0]
	line, col int // 1-based location of the character at off

	eos       bool // backing source exhausted
	srcClosed bool
	closed    bool
	ioErr     error // sticky error from the backing source

	handler MessageHandler
	scratch strings.Builder // reused by reads that may cross a refill
}

// NewString returns a scanner over an in-memory text. The entire text is the
// buffer, so lookahead is bounded only by the text itself.
func NewString(text string) *Scanner {
	buf := []rune(text)
	return &Scanner{
		src:   stringSource{},
		buf:   buf,
		limit: len(buf),
		eos:   true,
		line:  1,
		col:   1,
	}
}

// NewReader returns a scanner over a streaming reader. capacity bounds the
// buffer and every lookahead request; values below 1 select DefaultCapacity.
// If rd is an io.Closer it is closed when the stream is exhausted or the
// scanner is closed, whichever comes first.
func NewReader(rd io.Reader, capacity int) *Scanner {
	if capacity < 1 {
		capacity = DefaultCapacity
	}
	return &Scanner{
		src:   newReaderSource(rd),
		buf:   make([]rune, capacity),
		ahead: make([]rune, capacity),
		line:  1,
		col:   1,
	}
}

// SetFile attaches a file reference used in positions and messages.
func (s *Scanner) SetFile(file FileRef) { s.file = file }

// SetMessageHandler installs the handler receiving scan messages.
func (s *Scanner) SetMessageHandler(h MessageHandler) { s.handler = h }

// Pos returns the position of the next character to consume.
func (s *Scanner) Pos() Pos {
	return Pos{File: s.file, Line: s.line, Col: s.col}
}

// Position returns the number of characters consumed since construction.
func (s *Scanner) Position() int { return s.pos + s.off }

// Line returns the 1-based line of the next character to consume.
func (s *Scanner) Line() int { return s.line }

// Column returns the 1-based column of the next character to consume.
func (s *Scanner) Column() int { return s.col }

// Err returns the sticky I/O error from the backing source, if any.
func (s *Scanner) Err() error { return s.ioErr }

// Close releases the backing source. Further operations observe EOT;
// fallible operations return ErrClosed. Close is idempotent.
func (s *Scanner) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	return s.closeSource()
}

func (s *Scanner) closeSource() error {
	if s.srcClosed {
		return nil
	}
	s.srcClosed = true
	return s.src.Close()
}

func (s *Scanner) emit(severity Severity, text string) {
	if s.handler != nil {
		s.handler(Message{Severity: severity, Pos: s.Pos(), Text: text})
	}
}

// capacity returns the lookahead bound, or -1 for in-memory sources where the
// whole text is addressable.
func (s *Scanner) capacity() int {
	if s.ahead == nil {
		return -1
	}
	return len(s.buf)
}

// requireLookahead validates that a request needing n characters of lookahead
// fits the configured capacity, before any state change.
func (s *Scanner) requireLookahead(op string, n int) {
	if c := s.capacity(); c >= 0 && n > c {
		configPanic(op, "lookahead of %d characters exceeds the buffer capacity of %d", n, c)
	}
}

// fill makes the primary window non-empty if any characters remain. It must
// only be called when the primary window is exhausted. The lookahead window,
// when populated, is swapped in without touching the backing source.
func (s *Scanner) fill() bool {
	if s.off < s.limit {
		return true
	}
	s.pos += s.limit
	s.off, s.limit = 0, 0
	if s.aheadN > 0 {
		s.buf, s.ahead = s.ahead, s.buf
		s.limit, s.aheadN = s.aheadN, 0
		return true
	}
	if s.eos || s.ioErr != nil {
		return false
	}
	n, err := s.src.read(s.buf)
	s.limit = n
	utils.DPrint("fill: %d characters at position %d\n", n, s.pos)
	if err != nil && err != io.EOF {
		s.ioErr = err
		s.emit(SeverityError, "read from backing source failed: "+err.Error())
		_ = s.closeSource()
		return n > 0
	}
	if n == 0 {
		s.eos = true
		_ = s.closeSource()
		return false
	}
	return true
}

// fillLookahead populates the secondary window, or reports that the backing
// source is exhausted. Idempotent.
func (s *Scanner) fillLookahead() bool {
	if s.aheadN > 0 {
		return true
	}
	if s.ahead == nil || s.eos || s.ioErr != nil {
		return false
	}
	n, err := s.src.read(s.ahead)
	s.aheadN = n
	utils.DPrint("fillLookahead: %d characters\n", n)
	if err != nil && err != io.EOF {
		s.ioErr = err
		s.emit(SeverityError, "read from backing source failed: "+err.Error())
		_ = s.closeSource()
		return n > 0
	}
	if n == 0 {
		s.eos = true
		_ = s.closeSource()
		return false
	}
	return true
}

// HasNext reports whether at least one character is reachable, refilling the
// buffer if needed.
func (s *Scanner) HasNext() bool {
	if s.closed {
		return false
	}
	return s.off < s.limit || s.fill()
}

// Peek returns the next character without consuming it, or EOS.
func (s *Scanner) Peek() rune {
	if !s.HasNext() {
		return EOS
	}
	return s.buf[s.off]
}

// PeekAt returns the character k positions ahead of the cursor without
// consuming anything, or EOS when the stream ends first. For reader-backed
// scanners k must stay below the buffer capacity or PeekAt panics with a
// *ConfigError before touching any state.
func (s *Scanner) PeekAt(k int) rune {
	if k < 0 {
		configPanic("PeekAt", "negative offset %d", k)
	}
	s.requireLookahead("PeekAt", k+1)
	if !s.HasNext() {
		return EOS
	}
	idx := s.off + k
	if idx < s.limit {
		return s.buf[idx]
	}
	if !s.fillLookahead() {
		return EOS
	}
	j := idx - s.limit
	if j >= s.aheadN {
		return EOS
	}
	return s.ahead[j]
}

// Next consumes and returns the next character, or EOS.
func (s *Scanner) Next() rune {
	if !s.HasNext() {
		return EOS
	}
	r := s.buf[s.off]
	s.off++
	if r == '\n' {
		s.line++
		s.col = 1
	} else {
		s.col++
	}
	return r
}

// Skip consumes up to n characters, across refills, and returns the actual
// count.
func (s *Scanner) Skip(n int) int {
	if n < 0 {
		configPanic("Skip", "negative count %d", n)
	}
	count := 0
	for count < n && s.HasNext() {
		s.Next()
		count++
	}
	return count
}

// SkipNewLine consumes one logical newline: "\n" (returns 1) or "\r\n"
// (returns 2, also when the pair crosses a refill). A lone "\r" is left in
// place. Returns 0 if the cursor is not on a newline.
func (s *Scanner) SkipNewLine() int {
	switch s.Peek() {
	case '\n':
		s.Next()
		return 1
	case '\r':
		if s.PeekAt(1) == '\n' {
			s.Next()
			s.Next()
			return 2
		}
	}
	return 0
}

// Read consumes up to n characters and returns them. The result is shorter
// than n only at EOT.
func (s *Scanner) Read(n int) string {
	if n < 0 {
		configPanic("Read", "negative count %d", n)
	}
	s.scratch.Reset()
	for i := 0; i < n; i++ {
		r := s.Next()
		if r == EOS {
			break
		}
		s.scratch.WriteRune(r)
	}
	return s.scratch.String()
}

// PeekString returns up to n characters ahead of the cursor without consuming
// them; bounded by the buffer capacity for reader-backed scanners.
func (s *Scanner) PeekString(n int) string {
	if n < 0 {
		configPanic("PeekString", "negative count %d", n)
	}
	s.requireLookahead("PeekString", n)
	var b strings.Builder
	for i := 0; i < n; i++ {
		r := s.PeekAt(i)
		if r == EOS {
			break
		}
		b.WriteRune(r)
	}
	return b.String()
}

// PeekWhile returns the longest prefix (up to max characters) accepted by the
// filter, without consuming it. max is bounded by the buffer capacity.
func (s *Scanner) PeekWhile(f Filter, max int) string {
	if max < 0 {
		configPanic("PeekWhile", "negative max %d", max)
	}
	s.requireLookahead("PeekWhile", max)
	var b strings.Builder
	for i := 0; i < max; i++ {
		r := s.PeekAt(i)
		if r == EOS || !f.Accept(r) {
			break
		}
		b.WriteRune(r)
	}
	return b.String()
}
