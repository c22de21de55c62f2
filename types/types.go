// Package types provides the GEDCOM X Timestamp data type, which records when
// something was created or modified.
//
// A Timestamp is not a formal date: it always represents a single instant
// with millisecond precision. In JSON it encodes as the number of
// milliseconds since the Unix epoch, while in XML and other text encodings it
// encodes as an xsd:dateTime string. Because xsd:dateTime allows a time
// without a time zone, a Timestamp remembers when its source text had none
// so that it can omit the offset again when re-encoded.
package types

import "errors"

// ErrTimestamp wraps errors returned by the types package.
var ErrTimestamp = errors.New("timestamp")
