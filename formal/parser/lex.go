package parser

import (
	"fmt"
	"unicode/utf8"
)

// lexer scans a formal date string one byte at a time. All of the formal
// date syntax is ASCII, so any other byte is an error. The first error
// recorded stops the parse.
type lexer struct {
	input string
	pos   int
	err   *Error
}

// newLexer creates a new lexer configured to scan input.
func newLexer(input string) *lexer {
	return &lexer{input: input}
}

// done returns true when the lexer has consumed all of its input.
func (l *lexer) done() bool {
	return l.pos >= len(l.input)
}

// peek returns the next byte without consuming it, or 0 at the end of the
// input.
func (l *lexer) peek() byte {
	if l.done() {
		return 0
	}
	return l.input[l.pos]
}

// accept consumes the next byte and returns true if it is ch. Otherwise it
// consumes nothing and returns false.
func (l *lexer) accept(ch byte) bool {
	if l.peek() == ch && !l.done() {
		l.pos++
		return true
	}
	return false
}

func isDigit(ch byte) bool {
	return '0' <= ch && ch <= '9'
}

// digits consumes and returns the run of ASCII digits at the current
// position, which may be empty.
func (l *lexer) digits() string {
	start := l.pos
	for isDigit(l.peek()) {
		l.pos++
	}
	return l.input[start:l.pos]
}

// twoDigits consumes exactly two ASCII digits and returns their value. what
// names the field for the error recorded when two digits are not present.
func (l *lexer) twoDigits(what string) (int, bool) {
	for i := range 2 {
		if !isDigit(l.peek()) {
			l.expected("two-digit " + what)
			return 0, false
		}
		if i == 0 {
			l.pos++
		}
	}
	n := int(l.input[l.pos-1]-'0')*10 + int(l.input[l.pos]-'0')
	l.pos++
	return n, true
}

// errorf records an error at offset unless one has already been recorded.
func (l *lexer) errorf(offset int, format string, args ...any) {
	if l.err == nil {
		l.err = &Error{
			Input:  l.input,
			Offset: offset,
			Msg:    fmt.Sprintf(format, args...),
		}
	}
}

// expected records an error at the current position describing what was
// expected there and what was found instead.
func (l *lexer) expected(what string) {
	if l.done() {
		l.errorf(l.pos, "expected %v but found end of input", what)
		return
	}
	ch, _ := utf8.DecodeRuneInString(l.input[l.pos:])
	l.errorf(l.pos, "expected %v but found %q", what, ch)
}

// finish returns true if the lexer has consumed all of its input. Otherwise
// it records an error for the trailing text and returns false.
func (l *lexer) finish() bool {
	if l.done() {
		return true
	}
	ch, _ := utf8.DecodeRuneInString(l.input[l.pos:])
	l.errorf(l.pos, "unexpected %q", ch)
	return false
}
