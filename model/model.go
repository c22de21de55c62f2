// Package model provides the GEDCOM X records that carry formal dates and
// timestamps: facts, concluded dates, attributions, and their supporting
// references, qualifiers, identifiers, and vocabularies.
//
// Records map directly to the GEDCOM X JSON and XML serialization formats
// via struct tags, and to YAML and TOML via the same field names. Optional
// fields are pointers or empty strings and are omitted when absent.
package model

import "errors"

// ErrID wraps identifier validation errors.
var ErrID = errors.New("id")
