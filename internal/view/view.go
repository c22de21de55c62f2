// Package view provides a structured, serializable view of formal dates
// for command and playground output.
package view

import (
	"github.com/theory/gedcomx/formal"
	"github.com/theory/gedcomx/formal/ast"
)

// Date is the structured view of a formal date. Simple dates populate
// Date; ranges and recurrences populate Start and either End or Duration.
type Date struct {
	Formal      string    `json:"formal"                yaml:"formal"`
	Kind        string    `json:"kind"                  yaml:"kind"`
	Approximate bool      `json:"approximate,omitempty" yaml:"approximate,omitempty"`
	Count       int       `json:"count,omitempty"       yaml:"count,omitempty"`
	Date        *DateTime `json:"date,omitempty"        yaml:"date,omitempty"`
	Start       *DateTime `json:"start,omitempty"       yaml:"start,omitempty"`
	End         *DateTime `json:"end,omitempty"         yaml:"end,omitempty"`
	Duration    *Duration `json:"duration,omitempty"    yaml:"duration,omitempty"`
}

// DateTime is the view of a date and optional time of day. Nil time
// components are absent from the formal date.
type DateTime struct {
	Year    int    `json:"year"              yaml:"year"`
	Month   int    `json:"month,omitempty"   yaml:"month,omitempty"`
	Day     int    `json:"day,omitempty"     yaml:"day,omitempty"`
	Hours   *int   `json:"hours,omitempty"   yaml:"hours,omitempty"`
	Minutes *int   `json:"minutes,omitempty" yaml:"minutes,omitempty"`
	Seconds *int   `json:"seconds,omitempty" yaml:"seconds,omitempty"`
	Offset  string `json:"offset,omitempty"  yaml:"offset,omitempty"`
}

// Duration is the view of a duration.
type Duration struct {
	Years   uint32 `json:"years,omitempty"   yaml:"years,omitempty"`
	Months  uint32 `json:"months,omitempty"  yaml:"months,omitempty"`
	Days    uint32 `json:"days,omitempty"    yaml:"days,omitempty"`
	Hours   uint32 `json:"hours,omitempty"   yaml:"hours,omitempty"`
	Minutes uint32 `json:"minutes,omitempty" yaml:"minutes,omitempty"`
	Seconds uint32 `json:"seconds,omitempty" yaml:"seconds,omitempty"`
}

// New returns the view of date.
func New(date *formal.Date) *Date {
	view := &Date{
		Formal:      date.String(),
		Kind:        date.Kind(),
		Approximate: date.IsApproximate(),
	}

	switch val := date.AST().(type) {
	case ast.Simple:
		view.Date = newDateTime(val.DateTime())
	case ast.Range:
		if start, ok := val.Start(); ok {
			view.Start = newDateTime(start)
		}
		view.setEnd(val.End())
	case ast.Recurring:
		view.Count, _ = val.Count()
		view.Start = newDateTime(val.Start())
		view.setEnd(val.End())
	}
	return view
}

func (view *Date) setEnd(end ast.DateTimeOrDuration) {
	switch end := end.(type) {
	case ast.DateTime:
		view.End = newDateTime(end)
	case ast.Duration:
		view.Duration = &Duration{
			Years:   end.Years(),
			Months:  end.Months(),
			Days:    end.Days(),
			Hours:   end.Hours(),
			Minutes: end.Minutes(),
			Seconds: end.Seconds(),
		}
	}
}

func newDateTime(dt ast.DateTime) *DateTime {
	date := dt.Date()
	view := &DateTime{Year: date.Year()}
	view.Month, _ = date.Month()
	view.Day, _ = date.Day()

	tim, ok := dt.Time()
	if !ok {
		return view
	}
	hours := tim.Hours()
	view.Hours = &hours
	if minutes, ok := tim.Minutes(); ok {
		view.Minutes = &minutes
	}
	if seconds, ok := tim.Seconds(); ok {
		view.Seconds = &seconds
	}
	if off, ok := tim.Offset(); ok {
		view.Offset = off.String()
	}
	return view
}
