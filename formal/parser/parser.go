// Package parser parses GEDCOM X formal dates. It implements the grammar of
// the [GEDCOM X Date Format], the inverse of the String methods of the values
// in the ast package.
//
// [GEDCOM X Date Format]: https://github.com/FamilySearch/gedcomx/blob/master/specifications/date-format-specification.md
package parser

import (
	"errors"
	"fmt"

	"github.com/theory/gedcomx/formal/ast"
)

// ErrParse errors are returned by the parser.
var ErrParse = errors.New("parser")

// Error describes a formal date string that failed to parse. Its Unwrap
// method returns [ErrParse].
type Error struct {
	// Input is the complete string passed to Parse.
	Input string

	// Offset is the byte offset into Input at which parsing failed.
	Offset int

	// Msg describes what was expected at Offset.
	Msg string
}

// Error returns a description of the failure including the original input.
func (e *Error) Error() string {
	return fmt.Sprintf("%v: %v at offset %d in %q", ErrParse, e.Msg, e.Offset, e.Input)
}

// Unwrap returns [ErrParse].
func (e *Error) Unwrap() error {
	return ErrParse
}

// Parse parses formal into an [ast.Simple], [ast.Range], or [ast.Recurring].
// Returns an [*Error] if formal is not a valid GEDCOM X formal date.
func Parse(formal string) (ast.Value, error) {
	l := newLexer(formal)
	val := l.parse()
	if l.err != nil {
		return nil, l.err
	}
	return val, nil
}
