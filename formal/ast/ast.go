// Package ast provides the structured model of GEDCOM X formal dates.
//
// A formal date is one of three values: a [Simple] point in time, a [Range]
// between two optional bounds, or a [Recurring] interval. Each is composed of
// the calendar primitives [Date], [Time], [Offset], and [Duration]. Every type
// renders its canonical formal string representation via String; the parser
// package constructs these values from that representation.
//
// All values are immutable. Constructors validate their arguments and panic
// on values that cannot be represented in the formal date format.
package ast

import (
	"math"
	"strconv"
	"strings"
)

// Value represents a parsed GEDCOM X formal date: a [Simple], [Range], or
// [Recurring].
type Value interface {
	// String returns the canonical formal string representation of the
	// value.
	String() string

	// writeTo writes the formal representation of the value to buf.
	writeTo(buf *strings.Builder)
}

// DateTimeOrDuration represents the end of a [Range] or [Recurring] value:
// either an absolute [DateTime] or a [Duration] relative to the start.
type DateTimeOrDuration interface {
	// String returns the formal string representation of the end.
	String() string

	writeTo(buf *strings.Builder)
	end()
}

// Format returns the canonical formal string representation of val.
func Format(val Value) string {
	buf := new(strings.Builder)
	val.writeTo(buf)
	return buf.String()
}

// DateTime represents a [Date] with an optional [Time].
type DateTime struct {
	date    Date
	time    Time
	hasTime bool
}

// NewDateTime returns a DateTime for date without a time.
func NewDateTime(date Date) DateTime {
	return DateTime{date: date}
}

// NewDateTimeAt returns a DateTime for date at time t.
func NewDateTimeAt(date Date, t Time) DateTime {
	return DateTime{date: date, time: t, hasTime: true}
}

// Date returns the date of dt.
func (dt DateTime) Date() Date { return dt.date }

// Time returns the time of dt and true, or the zero Time and false if dt has
// no time.
func (dt DateTime) Time() (Time, bool) { return dt.time, dt.hasTime }

// String returns the formal representation of dt, e.g.,
// "+0987-01-25T23:59:59Z".
func (dt DateTime) String() string {
	buf := new(strings.Builder)
	dt.writeTo(buf)
	return buf.String()
}

func (dt DateTime) writeTo(buf *strings.Builder) {
	dt.date.writeTo(buf)
	if dt.hasTime {
		buf.WriteByte('T')
		dt.time.writeTo(buf)
	}
}

func (DateTime) end() {}

// Simple represents a single point in time, optionally approximate.
type Simple struct {
	dateTime    DateTime
	approximate bool
}

// NewSimple returns a Simple value for dt. If approximate is true the value
// is marked as approximate.
func NewSimple(dt DateTime, approximate bool) Simple {
	return Simple{dateTime: dt, approximate: approximate}
}

// DateTime returns the date and time of s.
func (s Simple) DateTime() DateTime { return s.dateTime }

// Approximate reports whether s is approximate.
func (s Simple) Approximate() bool { return s.approximate }

// String returns the formal representation of s, e.g., "A+0987".
func (s Simple) String() string { return Format(s) }

func (s Simple) writeTo(buf *strings.Builder) {
	if s.approximate {
		buf.WriteByte('A')
	}
	s.dateTime.writeTo(buf)
}

// Range represents an interval between an optional start and an optional
// end. The end may be a [Duration] relative to the start.
type Range struct {
	start       DateTime
	hasStart    bool
	end         DateTimeOrDuration
	approximate bool
}

// NewRange returns a Range from start to end. Pass nil for an open start or
// end. Panics if both are nil or if end is a [Duration] and start is nil.
func NewRange(start *DateTime, end DateTimeOrDuration, approximate bool) Range {
	if start == nil {
		switch end.(type) {
		case nil:
			panic("range requires a start or an end")
		case Duration:
			panic("range duration requires a start")
		}
		return Range{end: end, approximate: approximate}
	}
	return Range{start: *start, hasStart: true, end: end, approximate: approximate}
}

// Start returns the start of r and true, or the zero DateTime and false if r
// has no start.
func (r Range) Start() (DateTime, bool) { return r.start, r.hasStart }

// End returns the end of r, or nil if r has no end.
func (r Range) End() DateTimeOrDuration { return r.end }

// Approximate reports whether r is approximate.
func (r Range) Approximate() bool { return r.approximate }

// String returns the formal representation of r, e.g., "+1000/+2000-10-01".
func (r Range) String() string { return Format(r) }

func (r Range) writeTo(buf *strings.Builder) {
	if r.approximate {
		buf.WriteByte('A')
	}
	if r.hasStart {
		r.start.writeTo(buf)
	}
	buf.WriteByte('/')
	if r.end != nil {
		r.end.writeTo(buf)
	}
}

// Recurring represents an interval from a start to an end that repeats,
// either a fixed number of times or indefinitely.
type Recurring struct {
	start DateTime
	end   DateTimeOrDuration
	count uint32 // 0 when unbounded
}

// NewRecurring returns a Recurring interval from start to end repeated count
// times. A count of zero recurs indefinitely. Panics if end is nil or count
// is negative or exceeds [math.MaxUint32].
func NewRecurring(start DateTime, end DateTimeOrDuration, count int) Recurring {
	if end == nil {
		panic("recurrence requires an end")
	}
	if count < 0 || uint64(count) > math.MaxUint32 {
		panic("recurrence count out of range")
	}
	return Recurring{start: start, end: end, count: uint32(count)}
}

// Start returns the start of r.
func (r Recurring) Start() DateTime { return r.start }

// End returns the end of r.
func (r Recurring) End() DateTimeOrDuration { return r.end }

// Count returns the number of recurrences and true, or 0 and false if r
// recurs indefinitely.
func (r Recurring) Count() (int, bool) { return int(r.count), r.count != 0 }

// String returns the formal representation of r, e.g.,
// "R3/+1000/+2000-10-01".
func (r Recurring) String() string { return Format(r) }

func (r Recurring) writeTo(buf *strings.Builder) {
	buf.WriteByte('R')
	if r.count != 0 {
		buf.WriteString(strconv.FormatUint(uint64(r.count), 10))
	}
	buf.WriteByte('/')
	r.start.writeTo(buf)
	buf.WriteByte('/')
	r.end.writeTo(buf)
}
