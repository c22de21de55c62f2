package ast

import (
	"fmt"
	"strings"
)

// Calendar limits shared with the parser.
const (
	MaxMonth        = 12
	MaxHour         = 24
	MaxMinute       = 59
	MaxSecond       = 59
	MaxOffsetHour   = 23
	MaxOffsetMinute = 59
)

// daysInMonth counts the maximum number of days in each month.
//
//nolint:gochecknoglobals
var daysInMonth = [...]int{0, 31, 29, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// IsLeap reports whether year is a leap year in the proleptic Gregorian
// calendar. Year zero is a leap year.
func IsLeap(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DaysIn returns the number of days in month of year. Returns 0 if month is
// not between 1 and 12.
func DaysIn(year, month int) int {
	if month < 1 || month > MaxMonth {
		return 0
	}
	if month == 2 && !IsLeap(year) {
		return 28
	}
	return daysInMonth[month]
}

// Date represents a calendar date consisting of a signed year and an optional
// month and day. A day never appears without a month.
type Date struct {
	year  int
	month uint8 // 0 when absent
	day   uint8 // 0 when absent
}

// NewYear returns a Date with only a year.
func NewYear(year int) Date {
	return Date{year: year}
}

// NewYearMonth returns a Date with a year and a month. Panics if month is not
// between 1 and 12.
func NewYearMonth(year, month int) Date {
	if month < 1 || month > MaxMonth {
		panic(fmt.Sprintf("month %d out of range", month))
	}
	return Date{year: year, month: uint8(month)}
}

// NewDate returns a Date with a year, month, and day. Panics if month is not
// between 1 and 12 or if day is not a day of that month.
func NewDate(year, month, day int) Date {
	d := NewYearMonth(year, month)
	if day < 1 || day > DaysIn(year, month) {
		panic(fmt.Sprintf("day %d out of range for month %d of %d", day, month, year))
	}
	d.day = uint8(day)
	return d
}

// Year returns the year of d.
func (d Date) Year() int { return d.year }

// Month returns the month of d and true, or 0 and false if d has no month.
func (d Date) Month() (int, bool) { return int(d.month), d.month != 0 }

// Day returns the day of d and true, or 0 and false if d has no day.
func (d Date) Day() (int, bool) { return int(d.day), d.day != 0 }

// String returns the formal representation of d, e.g., "+1600-02-29".
func (d Date) String() string {
	buf := new(strings.Builder)
	d.writeTo(buf)
	return buf.String()
}

func (d Date) writeTo(buf *strings.Builder) {
	year := d.year
	if year < 0 {
		buf.WriteByte('-')
		year = -year
	} else {
		buf.WriteByte('+')
	}
	fmt.Fprintf(buf, "%04d", year)

	if d.month != 0 {
		fmt.Fprintf(buf, "-%02d", d.month)
		if d.day != 0 {
			fmt.Fprintf(buf, "-%02d", d.day)
		}
	}
}

// Offset represents a time zone offset from UTC in hours and, optionally,
// minutes. Both components carry the sign of the offset.
type Offset struct {
	hours      int8
	minutes    int8
	hasMinutes bool
}

// UTC is the zero offset, written "Z".
//
//nolint:gochecknoglobals
var UTC = Offset{}

// NewOffset returns an offset of hours. Panics if hours is not between -23
// and 23.
func NewOffset(hours int) Offset {
	if hours < -MaxOffsetHour || hours > MaxOffsetHour {
		panic(fmt.Sprintf("offset hour %d out of range", hours))
	}
	return Offset{hours: int8(hours)}
}

// NewOffsetMinutes returns an offset of hours and minutes. The sign of
// minutes must agree with the sign of hours; when hours is zero the sign of
// minutes determines the direction of the offset. A zero offset returns
// [UTC]. Panics if either value is out of range or the signs disagree.
func NewOffsetMinutes(hours, minutes int) Offset {
	off := NewOffset(hours)
	if minutes < -MaxOffsetMinute || minutes > MaxOffsetMinute {
		panic(fmt.Sprintf("offset minute %d out of range", minutes))
	}
	if (hours < 0 && minutes > 0) || (hours > 0 && minutes < 0) {
		panic(fmt.Sprintf("offset %d:%d has mixed signs", hours, minutes))
	}
	if hours == 0 && minutes == 0 {
		return UTC
	}
	off.minutes = int8(minutes)
	off.hasMinutes = true
	return off
}

// Hours returns the hour component of o.
func (o Offset) Hours() int { return int(o.hours) }

// Minutes returns the minute component of o and true, or 0 and false if o
// has no minute component.
func (o Offset) Minutes() (int, bool) { return int(o.minutes), o.hasMinutes }

// Seconds returns the total offset in seconds east of UTC.
func (o Offset) Seconds() int {
	return int(o.hours)*60*60 + int(o.minutes)*60
}

// String returns the formal representation of o: "Z", "+05", or "-00:30".
func (o Offset) String() string {
	buf := new(strings.Builder)
	o.writeTo(buf)
	return buf.String()
}

func (o Offset) writeTo(buf *strings.Builder) {
	if o.hours == 0 && o.minutes == 0 {
		buf.WriteByte('Z')
		return
	}

	hours, minutes := int(o.hours), int(o.minutes)
	if hours > 0 || minutes > 0 {
		buf.WriteByte('+')
	} else {
		buf.WriteByte('-')
		hours, minutes = -hours, -minutes
	}

	fmt.Fprintf(buf, "%02d", hours)
	if o.hasMinutes {
		fmt.Fprintf(buf, ":%02d", minutes)
	}
}

// Time represents a time of day consisting of an hour and optional minutes,
// seconds, and time zone offset. Seconds never appear without minutes. Hour
// 24 denotes the end of the day and allows only zero minutes and seconds.
type Time struct {
	hours      uint8
	minutes    uint8
	seconds    uint8
	hasMinutes bool
	hasSeconds bool
	hasOffset  bool
	offset     Offset
}

// NewHour returns a local Time with only an hour. Panics if hours is not
// between 0 and 24.
func NewHour(hours int) Time {
	if hours < 0 || hours > MaxHour {
		panic(fmt.Sprintf("hour %d out of range", hours))
	}
	return Time{hours: uint8(hours)}
}

// NewHourMinute returns a local Time with an hour and minutes. Panics if
// either is out of range or if hours is 24 and minutes is not zero.
func NewHourMinute(hours, minutes int) Time {
	t := NewHour(hours)
	if minutes < 0 || minutes > MaxMinute {
		panic(fmt.Sprintf("minute %d out of range", minutes))
	}
	if hours == MaxHour && minutes != 0 {
		panic("hour 24 requires zero minutes")
	}
	t.minutes = uint8(minutes)
	t.hasMinutes = true
	return t
}

// NewTime returns a local Time with an hour, minutes, and seconds. Panics if
// any value is out of range or if hours is 24 and the others are not zero.
func NewTime(hours, minutes, seconds int) Time {
	t := NewHourMinute(hours, minutes)
	if seconds < 0 || seconds > MaxSecond {
		panic(fmt.Sprintf("second %d out of range", seconds))
	}
	if hours == MaxHour && seconds != 0 {
		panic("hour 24 requires zero seconds")
	}
	t.seconds = uint8(seconds)
	t.hasSeconds = true
	return t
}

// In returns a copy of t in the time zone offset off.
func (t Time) In(off Offset) Time {
	t.offset = off
	t.hasOffset = true
	return t
}

// Hours returns the hour of t.
func (t Time) Hours() int { return int(t.hours) }

// Minutes returns the minutes of t and true, or 0 and false if t has no
// minutes.
func (t Time) Minutes() (int, bool) { return int(t.minutes), t.hasMinutes }

// Seconds returns the seconds of t and true, or 0 and false if t has no
// seconds.
func (t Time) Seconds() (int, bool) { return int(t.seconds), t.hasSeconds }

// Offset returns the time zone offset of t and true, or the zero Offset and
// false if t is a local time.
func (t Time) Offset() (Offset, bool) { return t.offset, t.hasOffset }

// String returns the formal representation of t without the leading "T",
// e.g., "23:59:59Z".
func (t Time) String() string {
	buf := new(strings.Builder)
	t.writeTo(buf)
	return buf.String()
}

func (t Time) writeTo(buf *strings.Builder) {
	fmt.Fprintf(buf, "%02d", t.hours)
	if t.hasMinutes {
		fmt.Fprintf(buf, ":%02d", t.minutes)
		if t.hasSeconds {
			fmt.Fprintf(buf, ":%02d", t.seconds)
		}
	}
	if t.hasOffset {
		t.offset.writeTo(buf)
	}
}

// Duration represents a span of years, months, days, hours, minutes, and
// seconds. Every component defaults to zero.
type Duration struct {
	years   uint32
	months  uint32
	days    uint32
	hours   uint32
	minutes uint32
	seconds uint32
}

// NewDuration returns a Duration with the specified components.
func NewDuration(years, months, days, hours, minutes, seconds uint32) Duration {
	return Duration{
		years:   years,
		months:  months,
		days:    days,
		hours:   hours,
		minutes: minutes,
		seconds: seconds,
	}
}

// Years returns the years of d.
func (d Duration) Years() uint32 { return d.years }

// Months returns the months of d.
func (d Duration) Months() uint32 { return d.months }

// Days returns the days of d.
func (d Duration) Days() uint32 { return d.days }

// Hours returns the hours of d.
func (d Duration) Hours() uint32 { return d.hours }

// Minutes returns the minutes of d.
func (d Duration) Minutes() uint32 { return d.minutes }

// Seconds returns the seconds of d.
func (d Duration) Seconds() uint32 { return d.seconds }

// IsZero reports whether every component of d is zero.
func (d Duration) IsZero() bool {
	return d == Duration{}
}

// String returns the formal representation of d, e.g., "P1Y2M3DT4H5M6S". A
// zero Duration returns "P".
func (d Duration) String() string {
	buf := new(strings.Builder)
	d.writeTo(buf)
	return buf.String()
}

func (d Duration) writeTo(buf *strings.Builder) {
	buf.WriteByte('P')
	writeUnit(buf, d.years, 'Y')
	writeUnit(buf, d.months, 'M')
	writeUnit(buf, d.days, 'D')

	if d.hours != 0 || d.minutes != 0 || d.seconds != 0 {
		buf.WriteByte('T')
		writeUnit(buf, d.hours, 'H')
		writeUnit(buf, d.minutes, 'M')
		writeUnit(buf, d.seconds, 'S')
	}
}

// writeUnit writes n followed by unit to buf unless n is zero.
func writeUnit(buf *strings.Builder, n uint32, unit byte) {
	if n != 0 {
		fmt.Fprintf(buf, "%d%c", n, unit)
	}
}

func (Duration) end() {}
