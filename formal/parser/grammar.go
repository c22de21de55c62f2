package parser

import (
	"strconv"
	"strings"

	"github.com/theory/gedcomx/formal/ast"
)

// Duration designators in the order they must appear.
const (
	dateUnits = "YMD"
	timeUnits = "HMS"
)

// parse parses the complete input into a formal date value. Returns nil and
// sets l.err on failure.
func (l *lexer) parse() ast.Value {
	switch {
	case l.input == "":
		l.errorf(0, "empty formal date")
		return nil
	case l.input[0] == 'R':
		return l.recurring()
	case strings.IndexByte(l.input, '/') >= 0:
		return l.dateRange()
	default:
		return l.simple()
	}
}

// simple parses an optionally approximate single date and time.
func (l *lexer) simple() ast.Value {
	approximate := l.accept('A')
	dt, ok := l.dateTime()
	if !ok || !l.finish() {
		return nil
	}
	return ast.NewSimple(dt, approximate)
}

// dateRange parses an optionally approximate range with an optional start
// and an optional end. At least one must be present, and a duration end
// requires a start.
func (l *lexer) dateRange() ast.Value {
	approximate := l.accept('A')

	var start *ast.DateTime
	if l.peek() != '/' {
		dt, ok := l.dateTime()
		if !ok {
			return nil
		}
		start = &dt
	}

	if !l.accept('/') {
		l.expected("'/'")
		return nil
	}

	endPos := l.pos
	var end ast.DateTimeOrDuration
	if !l.done() {
		var ok bool
		if end, ok = l.endpoint(); !ok {
			return nil
		}
	}
	if !l.finish() {
		return nil
	}

	if start == nil {
		switch end.(type) {
		case nil:
			l.errorf(endPos, "range requires a start or an end")
			return nil
		case ast.Duration:
			l.errorf(endPos, "range duration requires a start")
			return nil
		}
	}

	return ast.NewRange(start, end, approximate)
}

// recurring parses "R", an optional positive count, a start, and an end.
func (l *lexer) recurring() ast.Value {
	l.pos++ // R

	count := 0
	if num := l.digits(); num != "" {
		n, err := strconv.ParseUint(num, 10, 32)
		switch {
		case err != nil:
			l.errorf(1, "recurrence count %v out of range", num)
			return nil
		case n == 0:
			l.errorf(1, "recurrence count must be greater than zero")
			return nil
		}
		count = int(n)
	}

	if !l.accept('/') {
		l.expected("'/'")
		return nil
	}
	start, ok := l.dateTime()
	if !ok {
		return nil
	}
	if !l.accept('/') {
		l.expected("'/'")
		return nil
	}
	end, ok := l.endpoint()
	if !ok || !l.finish() {
		return nil
	}

	return ast.NewRecurring(start, end, count)
}

// endpoint parses the end of a range or recurrence: a duration or a date and
// time.
func (l *lexer) endpoint() (ast.DateTimeOrDuration, bool) {
	switch l.peek() {
	case 'P':
		return l.duration()
	case '+', '-':
		return l.dateTime()
	default:
		l.expected("'+', '-', or 'P'")
		return nil, false
	}
}

// dateTime parses a date optionally followed by "T" and a time.
func (l *lexer) dateTime() (ast.DateTime, bool) {
	date, ok := l.date()
	if !ok {
		return ast.DateTime{}, false
	}
	if !l.accept('T') {
		return ast.NewDateTime(date), true
	}
	t, ok := l.time()
	if !ok {
		return ast.DateTime{}, false
	}
	return ast.NewDateTimeAt(date, t), true
}

// date parses a signed year of at least four digits optionally followed by
// a month and a day.
func (l *lexer) date() (ast.Date, bool) {
	sign := 1
	switch l.peek() {
	case '+':
	case '-':
		sign = -1
	default:
		l.expected("'+' or '-'")
		return ast.Date{}, false
	}
	l.pos++

	at := l.pos
	num := l.digits()
	if len(num) < 4 {
		l.errorf(at, "year must have at least four digits")
		return ast.Date{}, false
	}
	n, err := strconv.ParseInt(num, 10, 32)
	if err != nil {
		l.errorf(at, "year %v out of range", num)
		return ast.Date{}, false
	}
	year := sign * int(n)

	if !l.accept('-') {
		return ast.NewYear(year), true
	}
	at = l.pos
	month, ok := l.twoDigits("month")
	if !ok {
		return ast.Date{}, false
	}
	if month < 1 || month > ast.MaxMonth {
		l.errorf(at, "month %02d out of range", month)
		return ast.Date{}, false
	}

	if !l.accept('-') {
		return ast.NewYearMonth(year, month), true
	}
	at = l.pos
	day, ok := l.twoDigits("day")
	if !ok {
		return ast.Date{}, false
	}
	if day < 1 || day > ast.DaysIn(year, month) {
		l.errorf(at, "day %02d out of range for month %02d", day, month)
		return ast.Date{}, false
	}

	return ast.NewDate(year, month, day), true
}

// time parses an hour optionally followed by minutes, seconds, and a time
// zone.
func (l *lexer) time() (ast.Time, bool) {
	at := l.pos
	hours, ok := l.twoDigits("hour")
	if !ok {
		return ast.Time{}, false
	}
	if hours > ast.MaxHour {
		l.errorf(at, "hour %02d out of range", hours)
		return ast.Time{}, false
	}
	t := ast.NewHour(hours)

	if l.accept(':') {
		at = l.pos
		minutes, ok := l.twoDigits("minute")
		if !ok {
			return ast.Time{}, false
		}
		if minutes > ast.MaxMinute {
			l.errorf(at, "minute %02d out of range", minutes)
			return ast.Time{}, false
		}
		if hours == ast.MaxHour && minutes != 0 {
			l.errorf(at, "hour 24 allows only zero minutes")
			return ast.Time{}, false
		}
		t = ast.NewHourMinute(hours, minutes)

		if l.accept(':') {
			at = l.pos
			seconds, ok := l.twoDigits("second")
			if !ok {
				return ast.Time{}, false
			}
			if seconds > ast.MaxSecond {
				l.errorf(at, "second %02d out of range", seconds)
				return ast.Time{}, false
			}
			if hours == ast.MaxHour && seconds != 0 {
				l.errorf(at, "hour 24 allows only zero seconds")
				return ast.Time{}, false
			}
			t = ast.NewTime(hours, minutes, seconds)
		}
	}

	switch l.peek() {
	case 'Z':
		l.pos++
		t = t.In(ast.UTC)
	case '+', '-':
		off, ok := l.offset()
		if !ok {
			return ast.Time{}, false
		}
		t = t.In(off)
	}

	return t, true
}

// offset parses a signed time zone offset of hours and optional minutes.
func (l *lexer) offset() (ast.Offset, bool) {
	sign := 1
	if l.peek() == '-' {
		sign = -1
	}
	l.pos++

	at := l.pos
	hours, ok := l.twoDigits("time zone hour")
	if !ok {
		return ast.Offset{}, false
	}
	if hours > ast.MaxOffsetHour {
		l.errorf(at, "time zone hour %02d out of range", hours)
		return ast.Offset{}, false
	}
	if !l.accept(':') {
		return ast.NewOffset(sign * hours), true
	}

	at = l.pos
	minutes, ok := l.twoDigits("time zone minute")
	if !ok {
		return ast.Offset{}, false
	}
	if minutes > ast.MaxOffsetMinute {
		l.errorf(at, "time zone minute %02d out of range", minutes)
		return ast.Offset{}, false
	}
	return ast.NewOffsetMinutes(sign*hours, sign*minutes), true
}

// duration parses "P" followed by optional years, months, and days, and an
// optional "T" followed by at least one of hours, minutes, and seconds.
func (l *lexer) duration() (ast.Duration, bool) {
	l.pos++ // P

	var parts [6]uint32
	if !l.units(dateUnits, parts[:3]) {
		return ast.Duration{}, false
	}
	if l.accept('T') {
		if !isDigit(l.peek()) {
			l.expected("duration hours, minutes, or seconds")
			return ast.Duration{}, false
		}
		if !l.units(timeUnits, parts[3:]) {
			return ast.Duration{}, false
		}
	}

	return ast.NewDuration(parts[0], parts[1], parts[2], parts[3], parts[4], parts[5]), true
}

// units parses a sequence of numbers, each followed by one of the designators
// in units. Designators must appear in order and at most once. Stores each
// number in the element of parts corresponding to its designator.
func (l *lexer) units(units string, parts []uint32) bool {
	next := 0
	for isDigit(l.peek()) {
		at := l.pos
		num := l.digits()
		n, err := strconv.ParseUint(num, 10, 32)
		if err != nil {
			l.errorf(at, "duration value %v out of range", num)
			return false
		}

		idx := -1
		if next < len(units) && !l.done() {
			idx = strings.IndexByte(units[next:], l.peek())
		}
		if idx < 0 {
			l.expected("duration designator")
			return false
		}

		parts[next+idx] = uint32(n)
		next += idx + 1
		l.pos++
	}
	return true
}
