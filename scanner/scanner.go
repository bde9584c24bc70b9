package scanner

import (
	"unicode/utf8"
)

// Scanner is a forward-only cursor over the characters of a source string.
// Next yields each character together with its byte offset in the original
// input; Pos reports the line/column of the character most recently
// consumed. Once a character has been consumed it cannot be re-read, but
// Slice can reproduce any span of already-seen text from its byte offsets.
type Scanner struct {
	src string

	offset int

	pos          Position
	afterNewline bool
}

// New creates a Scanner positioned before the first character of src.
func New(src string) *Scanner {
	return &Scanner{
		src: src,

		// The first consumed character lands on line 1, column 1 through
		// the regular newline rule.
		pos:          Position{Line: 0, Column: 1},
		afterNewline: true,
	}
}

// Next consumes the next character and returns its byte offset within the
// source. ok is false once the input is exhausted.
func (s *Scanner) Next() (index int, r rune, ok bool) {
	if s.offset >= len(s.src) {
		return 0, 0, false
	}

	r, width := utf8.DecodeRuneInString(s.src[s.offset:])
	index = s.offset
	s.offset += width

	if s.afterNewline {
		s.afterNewline = false
		s.pos.Line++
		s.pos.Column = 1
	} else {
		s.pos.Column++
	}
	if r == '\n' {
		s.afterNewline = true
	}

	return index, r, true
}

// Peek returns the next character without consuming it. Neither the cursor
// nor the position is affected.
func (s *Scanner) Peek() (r rune, ok bool) {
	if s.offset >= len(s.src) {
		return 0, false
	}
	r, _ = utf8.DecodeRuneInString(s.src[s.offset:])
	return r, true
}

// Pos returns the position of the character most recently consumed.
func (s *Scanner) Pos() Position {
	return s.pos
}

// Slice returns the span of source text between two byte offsets previously
// returned by Next, inclusive of the whole character at both endpoints.
func (s *Scanner) Slice(from, to int) string {
	_, width := utf8.DecodeRuneInString(s.src[to:])
	return s.src[from : to+width]
}
