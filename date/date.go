// Package date provides a calendar date with day-level granularity,
// serialized in the ISO-8601 "YYYY-MM-DD" form.
package date

import (
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
)

// Format is the only accepted textual representation of a Date.
const Format = "2006-01-02"

// longFormat is the human-facing rendering used on documents.
const longFormat = "January 2, 2006"

// Date represents a date with no time and no timezone.
type Date struct {
	y int
	m time.Month
	d int
}

// New returns a normalized Date for the given year, month, and day.
func New(year int, month time.Month, day int) Date {
	d := Date{year, month, day}
	d.y, d.m, d.d = d.time().Date()
	return d
}

// Today returns the current date.
func Today() Date { return New(time.Now().Date()) }

// time returns a canonical representation of that day (at midnight UTC).
func (d Date) time() time.Time { return time.Date(d.y, d.m, d.d, 0, 0, 0, 0, time.UTC) }

// Year returns the year of the date.
func (d Date) Year() int { return d.y }

// Month returns the month of the date.
func (d Date) Month() time.Month { return d.m }

// Day returns the day of the month.
func (d Date) Day() int { return d.d }

// Add returns a new Date with the given number of days added.
func (d Date) Add(days int) Date { return New(d.y, d.m, d.d+days) }

// Before reports whether the day d is before x.
func (d Date) Before(x Date) bool { return d.time().Before(x.time()) }

// After reports whether the day d is after x.
func (d Date) After(x Date) bool { return d.time().After(x.time()) }

// IsZero reports whether the date is the zero value.
func (d Date) IsZero() bool { return d == Date{} }

// String formats the date in its standard "YYYY-MM-DD" form.
func (d Date) String() string { return d.time().Format(Format) }

// Long formats the date in its long human-readable form, e.g. "February 17, 2023".
func (d Date) Long() string { return d.time().Format(longFormat) }

// Parse parses a Date from its standard form. It is strict: the string
// must be exactly "YYYY-MM-DD" with valid Gregorian calendar values.
func Parse(str string) (Date, error) {
	on, err := time.Parse(Format, str)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q, want format %q: %w", str, Format, err)
	}
	d := New(on.Date())
	// time.Parse tolerates unpadded fields; the stored form does not.
	if d.String() != str {
		return Date{}, fmt.Errorf("invalid date %q, want format %q", str, Format)
	}
	return d, nil
}

// MustParse is like Parse but panics on error.
func MustParse(str string) Date {
	d, err := Parse(str)
	if err != nil {
		panic(err.Error())
	}
	return d
}

// MarshalYAML encodes the date as its standard string form.
func (d Date) MarshalYAML() (interface{}, error) { return d.String(), nil }

// UnmarshalYAML decodes a date from its standard string form, using the
// same strict parse as Parse.
func (d *Date) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("invalid date node, want a %q scalar", Format)
	}
	parsed, err := Parse(node.Value)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

var _ yaml.Marshaler = Date{}
var _ yaml.Unmarshaler = (*Date)(nil)
