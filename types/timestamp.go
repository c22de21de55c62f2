package types

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Timestamp represents the instant at which something was created or
// modified, in UTC with millisecond precision. The zero value is
// 0001-01-01T00:00:00Z.
type Timestamp struct {
	time time.Time

	// undetermined is true when the time was parsed from text without a
	// time zone. It affects only the text representation.
	undetermined bool
}

// Formats for the text representation of Timestamp values.
const (
	secondsFormat = "2006-01-02T15:04:05Z07:00"
	millisFormat  = "2006-01-02T15:04:05.000Z07:00"
)

// New coerces src into a Timestamp by converting it to UTC and truncating it
// to milliseconds.
func New(src time.Time) *Timestamp {
	return &Timestamp{time: src.UTC().Truncate(time.Millisecond)}
}

// NewUndetermined coerces src into a Timestamp with an undetermined time
// zone. It keeps the wall clock of src and discards its location, treating
// the wall clock as UTC.
func NewUndetermined(src time.Time) *Timestamp {
	if src.Location() != time.UTC {
		src = time.Date(
			src.Year(), src.Month(), src.Day(),
			src.Hour(), src.Minute(), src.Second(), src.Nanosecond(),
			time.UTC,
		)
	}
	return &Timestamp{time: src.Truncate(time.Millisecond), undetermined: true}
}

// FromMillis creates a Timestamp from the number of milliseconds since the
// Unix epoch.
func FromMillis(ms int64) *Timestamp {
	return &Timestamp{time: time.UnixMilli(ms).UTC()}
}

// Parse parses an xsd:dateTime string, which is an RFC 3339 date and time
// with an optional time zone. A string without a time zone is interpreted as
// UTC and produces a Timestamp whose time zone is undetermined. Fractional
// seconds beyond milliseconds are truncated.
func Parse(str string) (*Timestamp, error) {
	undetermined := !hasZone(str)
	if undetermined {
		str += "Z"
	}

	tim, err := time.Parse(time.RFC3339, str)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTimestamp, err)
	}

	return &Timestamp{
		time:         tim.UTC().Truncate(time.Millisecond),
		undetermined: undetermined,
	}, nil
}

// hasZone returns true if str ends in "Z", contains "+", or contains at least
// three "-" characters: two date separators and a negative offset.
func hasZone(str string) bool {
	return strings.HasSuffix(str, "Z") ||
		strings.ContainsRune(str, '+') ||
		strings.Count(str, "-") >= 3
}

// GoTime returns the underlying time.Time object, always in UTC.
func (ts Timestamp) GoTime() time.Time { return ts.time }

// UnixMilli returns ts as the number of milliseconds since the Unix epoch.
func (ts Timestamp) UnixMilli() int64 { return ts.time.UnixMilli() }

// Undetermined returns true if ts was parsed from text without a time zone.
func (ts Timestamp) Undetermined() bool { return ts.undetermined }

// IsZero returns true if ts represents the zero time instant.
func (ts Timestamp) IsZero() bool { return ts.time.IsZero() }

// Equal returns true if ts and u represent the same instant. It ignores
// whether either time zone is undetermined.
func (ts Timestamp) Equal(u Timestamp) bool {
	return ts.time.Equal(u.time)
}

// Compare compares the time instant ts with u. If ts is before u, it returns
// -1; if ts is after u, it returns +1; if they're the same, it returns 0.
func (ts Timestamp) Compare(u Timestamp) int {
	return ts.time.Compare(u.time)
}

// String returns the xsd:dateTime representation of ts in UTC, with
// milliseconds only when they are not zero, e.g., "2020-03-07T04:40:00Z" or
// "2020-03-07T04:40:00.123Z". Omits the "Z" when the time zone is
// undetermined but keeps any milliseconds, e.g. "2020-03-07T04:40:00.250",
// rather than truncating to whole seconds; xsd:dateTime permits fractional
// seconds without a time zone.
func (ts Timestamp) String() string {
	format := secondsFormat
	if ts.time.Nanosecond() != 0 {
		format = millisFormat
	}
	str := ts.time.Format(format)
	if ts.undetermined {
		str = strings.TrimSuffix(str, "Z")
	}
	return str
}

// MarshalJSON implements the json.Marshaler interface. The time is an
// integer number of milliseconds since the Unix epoch.
func (ts Timestamp) MarshalJSON() ([]byte, error) {
	return strconv.AppendInt(nil, ts.UnixMilli(), 10), nil
}

// UnmarshalJSON implements the json.Unmarshaler interface. The time must be
// an integer number of milliseconds since the Unix epoch. A JSON null leaves
// ts unchanged.
func (ts *Timestamp) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	ms, err := strconv.ParseInt(string(data), 10, 64)
	if err != nil {
		return fmt.Errorf("%w: cannot parse %s as milliseconds", ErrTimestamp, data)
	}
	*ts = *FromMillis(ms)
	return nil
}

// MarshalText implements the encoding.TextMarshaler interface, used by XML
// and other text encodings. The text is the output of String.
func (ts Timestamp) MarshalText() ([]byte, error) {
	return []byte(ts.String()), nil
}

// UnmarshalText implements the encoding.TextUnmarshaler interface. The text
// must be a valid xsd:dateTime as accepted by [Parse].
func (ts *Timestamp) UnmarshalText(data []byte) error {
	parsed, err := Parse(string(data))
	if err != nil {
		return err
	}
	*ts = *parsed
	return nil
}

// MarshalYAML implements the yaml.Marshaler interface. The time is an
// xsd:dateTime string.
func (ts Timestamp) MarshalYAML() (any, error) {
	return ts.String(), nil
}

// UnmarshalYAML implements the yaml.Unmarshaler interface. It accepts either
// an xsd:dateTime string or an integer number of milliseconds since the Unix
// epoch.
func (ts *Timestamp) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("%w: cannot decode YAML %v into Timestamp", ErrTimestamp, node.ShortTag())
	}
	if node.ShortTag() == "!!int" {
		return ts.UnmarshalJSON([]byte(node.Value))
	}
	return ts.UnmarshalText([]byte(node.Value))
}
