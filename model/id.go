package model

import (
	"fmt"
	"unicode/utf8"

	"github.com/smasher164/xid"
)

// ID is a local, context-specific identifier for a record, used as the
// fragment of local resource references. An ID must start with a Unicode
// identifier start character or an underscore, followed by identifier
// continue characters, hyphens, or periods.
type ID string

// ParseID validates str and returns it as an ID.
func ParseID(str string) (ID, error) {
	if str == "" {
		return "", fmt.Errorf("%w: empty identifier", ErrID)
	}
	if !utf8.ValidString(str) {
		return "", fmt.Errorf("%w: invalid UTF-8 in %q", ErrID, str)
	}
	for i, ch := range str {
		if !isIDRune(ch, i) {
			return "", fmt.Errorf("%w: invalid character %q at offset %d in %q", ErrID, ch, i, str)
		}
	}
	return ID(str), nil
}

// isIDRune is a predicate controlling the characters accepted as the
// character at byte offset i of an ID.
func isIDRune(ch rune, i int) bool {
	if i == 0 {
		return ch == '_' || xid.Start(ch)
	}
	return ch == '-' || ch == '.' || xid.Continue(ch)
}

// String returns id as a string.
func (id ID) String() string { return string(id) }

// Ref returns a local reference to the record identified by id.
func (id ID) Ref() *ResourceReference {
	return &ResourceReference{Resource: "#" + string(id)}
}

// UnmarshalText implements encoding.TextUnmarshaler. It validates the text
// with [ParseID].
func (id *ID) UnmarshalText(data []byte) error {
	parsed, err := ParseID(string(data))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}
