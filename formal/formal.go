// Package formal provides GEDCOM X formal dates: single dates, ranges, and
// recurring intervals encoded in the [GEDCOM X Date Format], a profile of
// ISO 8601.
//
// Parse a formal date string with [Parse], and render its canonical form
// with [Date.String]. Date implements the text, YAML, and database/sql
// interfaces, so it may be used directly in JSON, XML, TOML, and YAML
// documents and in database columns.
//
// [GEDCOM X Date Format]: https://github.com/FamilySearch/gedcomx/blob/master/specifications/date-format-specification.md
package formal

import (
	"database/sql/driver"
	"errors"
	"fmt"

	"github.com/theory/gedcomx/formal/ast"
	"github.com/theory/gedcomx/formal/parser"
	"gopkg.in/yaml.v3"
)

// Date represents a GEDCOM X formal date.
type Date struct {
	val ast.Value
}

var (
	// ErrFormal wraps parsing and decoding errors.
	ErrFormal = errors.New("formal")

	// ErrScan wraps scanning errors.
	ErrScan = errors.New("scan")
)

// Parse parses formal and returns the resulting Date. Returns an error on
// parse failure.
func Parse(formal string) (*Date, error) {
	val, err := parser.Parse(formal)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFormal, err)
	}
	return &Date{val}, nil
}

// MustParse is like Parse but panics on parse failure.
func MustParse(formal string) *Date {
	val, err := parser.Parse(formal)
	if err != nil {
		panic(err)
	}
	return &Date{val}
}

// New creates and returns a new Date for val.
func New(val ast.Value) *Date {
	return &Date{val}
}

// AST returns the parsed value of date: an [ast.Simple], [ast.Range], or
// [ast.Recurring]. Returns nil for the zero Date.
func (date Date) AST() ast.Value {
	return date.val
}

// String returns the canonical formal string representation of date, or an
// empty string if date has no value.
func (date Date) String() string {
	if date.val == nil {
		return ""
	}
	return date.val.String()
}

// IsApproximate returns true if date is an approximate single date or an
// approximate range.
func (date Date) IsApproximate() bool {
	switch val := date.val.(type) {
	case ast.Simple:
		return val.Approximate()
	case ast.Range:
		return val.Approximate()
	default:
		return false
	}
}

// Kind returns "simple", "range", or "recurring" depending on the type of
// date's value, or an empty string if it has none.
func (date Date) Kind() string {
	switch date.val.(type) {
	case ast.Simple:
		return "simple"
	case ast.Range:
		return "range"
	case ast.Recurring:
		return "recurring"
	default:
		return ""
	}
}

// Scan implements sql.Scanner so Dates can be read from databases
// transparently. Currently, database types that map to string and []byte are
// supported. Please consult database-specific driver documentation for
// matching types.
func (date *Date) Scan(src any) error {
	switch src := src.(type) {
	case nil:
		return nil
	case string:
		// An empty string is a NULL date.
		if src == "" {
			return nil
		}

		val, err := parser.Parse(src)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrScan, err)
		}

		*date = Date{val}

	case []byte:
		if len(src) == 0 {
			return nil
		}
		return date.Scan(string(src))

	default:
		return fmt.Errorf("%w: unable to scan type %T into Date", ErrScan, src)
	}

	return nil
}

// Value implements driver.Valuer so that Dates can be written to databases
// transparently. Dates map to strings, and a Date with no value maps to NULL.
func (date Date) Value() (driver.Value, error) {
	if date.val == nil {
		return nil, nil
	}
	return date.String(), nil
}

// MarshalText implements encoding.TextMarshaler.
func (date Date) MarshalText() ([]byte, error) {
	return date.MarshalBinary()
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (date *Date) UnmarshalText(data []byte) error {
	return date.UnmarshalBinary(data)
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (date Date) MarshalBinary() ([]byte, error) {
	return []byte(date.String()), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (date *Date) UnmarshalBinary(data []byte) error {
	val, err := parser.Parse(string(data))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrFormal, err)
	}
	*date = Date{val}
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (date Date) MarshalYAML() (any, error) {
	return date.String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (date *Date) UnmarshalYAML(node *yaml.Node) error {
	var str string
	if err := node.Decode(&str); err != nil {
		return fmt.Errorf("%w: %w", ErrFormal, err)
	}
	return date.UnmarshalText([]byte(str))
}
