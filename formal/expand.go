package formal

import (
	"errors"
	"fmt"
	"time"

	"github.com/teambition/rrule-go"
	"github.com/theory/gedcomx/formal/ast"
)

// ErrNotExpandable indicates a formal date that cannot be expanded into
// recurrence instants.
var ErrNotExpandable = errors.New("not expandable")

const (
	secondsPerMinute = 60
	secondsPerHour   = 60 * secondsPerMinute
	secondsPerDay    = 24 * secondsPerHour
	monthsPerYear    = 12
)

// Recurrences are expanded within the years rrule supports.
const (
	minYear = 1
	maxYear = rrule.MAXYEAR
)

// Expand returns the start instants of up to limit recurrences of date,
// which must be an [ast.Recurring] value. See [Expand] for details.
func (date Date) Expand(limit int) ([]time.Time, error) {
	r, ok := date.val.(ast.Recurring)
	if !ok {
		return nil, fmt.Errorf("%w: %q is not a recurring date", ErrNotExpandable, date.String())
	}
	return Expand(r, limit)
}

// Expand returns the start instants of up to limit recurrences of r, further
// bounded by the recurrence count of r, if any. The first instant is the
// start of r, which must include a year, month, and day. Its time zone
// offset determines the location of the returned times; a local start time
// is treated as UTC.
//
// The end of r determines the period between recurrences. A duration of
// only years and months recurs yearly or monthly; a duration of only days,
// hours, minutes, and seconds recurs at that fixed interval; and a date and
// time end recurs at the fixed interval between the start and the end.
// Returns [ErrNotExpandable] for durations that mix calendar and clock units,
// zero-length periods, starts or ends without a complete date, and starts
// outside years 1 through 9999 or at 0001-01-01T00:00:00Z. Instants after 9999-12-31T23:59:59 in the
// start location are never returned.
//
// Monthly and yearly recurrences follow RFC 5545 semantics, so a start on
// the 31st skips months with fewer days.
func Expand(r ast.Recurring, limit int) ([]time.Time, error) {
	if limit < 1 {
		return nil, fmt.Errorf("%w: limit must be greater than zero", ErrFormal)
	}

	start, err := instant(r.Start())
	if err != nil {
		return nil, err
	}
	if year := start.Year(); year < minYear || year > maxYear {
		return nil, fmt.Errorf(
			"%w: start %v is outside years %04d through %04d",
			ErrNotExpandable, r.Start(), minYear, maxYear,
		)
	}
	if start.IsZero() {
		// rrule replaces a zero start with the current time.
		return nil, fmt.Errorf("%w: start %v is the zero time", ErrNotExpandable, r.Start())
	}

	freq, interval, err := period(start, r.End())
	if err != nil {
		return nil, err
	}

	count := limit
	if n, ok := r.Count(); ok && n < limit {
		count = n
	}

	rule, err := rrule.NewRRule(rrule.ROption{
		Freq:     freq,
		Interval: interval,
		Count:    count,
		Dtstart:  start,
		Until:    time.Date(maxYear, 12, 31, 23, 59, 59, 0, start.Location()),
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotExpandable, err)
	}

	return rule.All(), nil
}

// instant converts dt to a time.Time. The date must include a month and a
// day. Absent time components are zero, and a local time is UTC.
func instant(dt ast.DateTime) (time.Time, error) {
	date := dt.Date()
	month, hasMonth := date.Month()
	day, hasDay := date.Day()
	if !hasMonth || !hasDay {
		return time.Time{}, fmt.Errorf("%w: %v lacks a month or day", ErrNotExpandable, dt)
	}

	var hours, minutes, seconds int
	loc := time.UTC
	if t, ok := dt.Time(); ok {
		hours = t.Hours()
		minutes, _ = t.Minutes()
		seconds, _ = t.Seconds()
		if off, ok := t.Offset(); ok && off != ast.UTC {
			loc = time.FixedZone(off.String(), off.Seconds())
		}
	}

	return time.Date(
		date.Year(), time.Month(month), day,
		hours, minutes, seconds, 0, loc,
	), nil
}

// period determines the rrule frequency and interval for end relative to
// start.
func period(start time.Time, end ast.DateTimeOrDuration) (rrule.Frequency, int, error) {
	switch end := end.(type) {
	case ast.Duration:
		calendar := int(end.Years())*monthsPerYear + int(end.Months())
		clock := int64(end.Days())*secondsPerDay +
			int64(end.Hours())*secondsPerHour +
			int64(end.Minutes())*secondsPerMinute +
			int64(end.Seconds())

		switch {
		case calendar != 0 && clock != 0:
			return 0, 0, fmt.Errorf("%w: duration %v mixes calendar and clock units", ErrNotExpandable, end)
		case calendar == 0 && clock == 0:
			return 0, 0, fmt.Errorf("%w: duration %v is zero", ErrNotExpandable, end)
		case end.Months() == 0 && clock == 0:
			return rrule.YEARLY, int(end.Years()), nil
		case clock == 0:
			return rrule.MONTHLY, calendar, nil
		default:
			return fixedPeriod(clock)
		}

	case ast.DateTime:
		stop, err := instant(end)
		if err != nil {
			return 0, 0, err
		}
		// time.Duration saturates after about 292 years.
		secs := stop.Unix() - start.Unix()
		if secs <= 0 {
			return 0, 0, fmt.Errorf("%w: end %v does not follow the start", ErrNotExpandable, end)
		}
		return fixedPeriod(secs)

	default:
		return 0, 0, fmt.Errorf("%w: unknown end type %T", ErrNotExpandable, end)
	}
}

// fixedPeriod returns the coarsest rrule frequency that evenly divides secs,
// together with the interval in units of that frequency.
func fixedPeriod(secs int64) (rrule.Frequency, int, error) {
	switch {
	case secs%secondsPerDay == 0:
		return rrule.DAILY, int(secs / secondsPerDay), nil
	case secs%secondsPerHour == 0:
		return rrule.HOURLY, int(secs / secondsPerHour), nil
	case secs%secondsPerMinute == 0:
		return rrule.MINUTELY, int(secs / secondsPerMinute), nil
	default:
		return rrule.SECONDLY, int(secs), nil
	}
}
