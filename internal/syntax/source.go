package syntax

import (
	"io"
	"unicode/utf8"
)

// source is a character reader with position tracking.
// The whole input is held in memory so the scanner can look ahead
// arbitrarily far when matching numeric literals.
type source struct {
	buf []byte // source buffer

	filename string
	line     uint32 // line of ch (1-based)
	col      uint32 // column of ch (1-based, byte offset)

	ch     rune // current character, -1 for EOF
	chOffs int  // byte offset of ch in buf
	offs   int  // byte offset just past ch

	errh func(line, col uint32, msg string)
}

// newSource creates a new source from an io.Reader.
// The errh function is called for each error; if nil, errors are silently ignored.
func newSource(filename string, src io.Reader, errh func(line, col uint32, msg string)) *source {
	s := &source{
		filename: filename,
		line:     1,
		col:      0, // incremented to 1 by the first nextch
		ch:       -1,
		errh:     errh,
	}

	var err error
	s.buf, err = io.ReadAll(src)
	if err != nil {
		s.error("error reading source file: " + err.Error())
		s.buf = nil
	}

	s.nextch()
	return s
}

// nextch reads the next character and updates the position.
// Sets s.ch to -1 at EOF.
func (s *source) nextch() {
	if s.ch == '\n' {
		s.line++
		s.col = 1
	} else {
		s.col++
	}

	s.chOffs = s.offs
	if s.offs >= len(s.buf) {
		s.ch = -1
		return
	}

	r, width := utf8.DecodeRune(s.buf[s.offs:])
	if r == utf8.RuneError && width == 1 {
		s.error("invalid UTF-8 encoding")
	}

	s.ch = r
	s.offs += width
}

// rest returns the unread input starting at the current character.
func (s *source) rest() []byte {
	return s.buf[s.chOffs:]
}

// skip advances over the next n bytes of input.
func (s *source) skip(n int) {
	end := s.chOffs + n
	for s.ch >= 0 && s.chOffs < end {
		s.nextch()
	}
}

// segment returns the input between offset start and the current character.
func (s *source) segment(start int) string {
	return string(s.buf[start:s.chOffs])
}

// pos returns the position of the current character.
func (s *source) pos() Pos {
	return Pos{filename: s.filename, line: s.line, col: s.col, offs: s.chOffs}
}

func (s *source) error(msg string) {
	if s.errh != nil {
		s.errh(s.line, s.col, msg)
	}
}

// Character classification helpers. Calvin source is matched byte-wise;
// non-ASCII characters only ever appear inside strings, comments, or as
// leftover tokens.

func isLetter(c byte) bool {
	return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' || c == '_'
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

func isHexDigit(c byte) bool {
	return isDigit(c) || 'a' <= lower(c) && lower(c) <= 'f'
}

func isOctalDigit(c byte) bool {
	return '0' <= c && c <= '7'
}

func isBinaryDigit(c byte) bool {
	return c == '0' || c == '1'
}

func isIdentChar(c byte) bool {
	return isLetter(c) || isDigit(c)
}

// lower maps an ASCII letter to lower case; ('a' - 'A') is 0x20.
func lower(c byte) byte {
	return ('a' - 'A') | c
}

// isWhitespace reports whether r is skipped between tokens.
// Calvin has no automatic semicolons, so newlines are plain whitespace.
func isWhitespace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\r', '\f', '\v':
		return true
	}
	return false
}

// isImagSuffix reports whether c ends a complex literal.
func isImagSuffix(c byte) bool {
	switch c {
	case 'i', 'j', 'I', 'J':
		return true
	}
	return false
}
