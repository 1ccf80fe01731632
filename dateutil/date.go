// Package dateutil provides calendar-date values and the date math used by
// the picker engine: strict ISO parsing, weekday normalization, consecutive
// grouping and capacity counting.
package dateutil

import (
	"errors"
	"fmt"
	"regexp"
	"slices"
	"time"
)

// ErrInvalidDate is returned when a string is not a real YYYY-MM-DD date.
var ErrInvalidDate = errors.New("invalid ISO date")

var isoPattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// Date is a local calendar date with no time-of-day component. The zero
// value is not a usable date; construct via ParseISO or DateOf.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// ParseISO parses a strict YYYY-MM-DD string into a Date. Both syntax and
// calendar validity are checked, so "2025-02-30" fails.
func ParseISO(s string) (Date, error) {
	if !isoPattern.MatchString(s) {
		return Date{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return Date{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	d := Date{Year: t.Year(), Month: t.Month(), Day: t.Day()}
	// time.Parse normalizes overflowing days, so compare back.
	if d.ISO() != s {
		return Date{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return d, nil
}

// MustParseISO is ParseISO for compile-time-known inputs; it panics on error.
func MustParseISO(s string) Date {
	d, err := ParseISO(s)
	if err != nil {
		panic(err)
	}
	return d
}

// DateOf truncates a time.Time to its calendar date in its own location.
func DateOf(t time.Time) Date {
	return Date{Year: t.Year(), Month: t.Month(), Day: t.Day()}
}

// ISO renders the canonical zero-padded YYYY-MM-DD form.
func (d Date) ISO() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

func (d Date) String() string { return d.ISO() }

// Time returns the date at midnight UTC. Date arithmetic goes through UTC so
// daylight-saving transitions never produce 23- or 25-hour days.
func (d Date) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

// Weekday returns the day of week, Sunday=0 through Saturday=6.
func (d Date) Weekday() time.Weekday {
	return d.Time().Weekday()
}

// AddDays returns the date n calendar days later (earlier when negative),
// normalizing across month and year boundaries.
func (d Date) AddDays(n int) Date {
	return DateOf(time.Date(d.Year, d.Month, d.Day+n, 0, 0, 0, 0, time.UTC))
}

// DaysUntil returns the signed number of days from d to other.
func (d Date) DaysUntil(other Date) int {
	return int(other.Time().Sub(d.Time()) / (24 * time.Hour))
}

// Compare orders dates chronologically, matching lexicographic order of
// their ISO forms.
func (d Date) Compare(other Date) int {
	if c := d.Year - other.Year; c != 0 {
		return sign(c)
	}
	if c := int(d.Month) - int(other.Month); c != 0 {
		return sign(c)
	}
	return sign(d.Day - other.Day)
}

func (d Date) Before(other Date) bool { return d.Compare(other) < 0 }
func (d Date) After(other Date) bool  { return d.Compare(other) > 0 }

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	}
	return 0
}

// AreConsecutive reports whether b is exactly one calendar day after a.
func AreConsecutive(a, b Date) bool {
	return a.AddDays(1) == b
}

// SortUnique returns a sorted ascending copy of dates with duplicates
// removed. The input slice is not modified.
func SortUnique(dates []Date) []Date {
	out := slices.Clone(dates)
	slices.SortFunc(out, Date.Compare)
	return slices.Compact(out)
}

// DateSet is a membership set of calendar dates. A nil set contains nothing.
type DateSet map[Date]struct{}

// NewDateSet builds a set from the given dates.
func NewDateSet(dates ...Date) DateSet {
	s := make(DateSet, len(dates))
	for _, d := range dates {
		s[d] = struct{}{}
	}
	return s
}

// Has reports set membership.
func (s DateSet) Has(d Date) bool {
	_, ok := s[d]
	return ok
}

// Add inserts a date into the set.
func (s DateSet) Add(d Date) {
	s[d] = struct{}{}
}

// Dates returns the members sorted ascending.
func (s DateSet) Dates() []Date {
	out := make([]Date, 0, len(s))
	for d := range s {
		out = append(out, d)
	}
	slices.SortFunc(out, Date.Compare)
	return out
}
