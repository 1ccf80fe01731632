// Package format renders calendar dates and selections for display and
// storage. Display patterns use single-letter tokens:
//
//	Y 4-digit year   y 2-digit year
//	m 01..12         n 1..12
//	d 01..31         j 1..31
//	D Mon            l Monday
//	M Jan            F January
//	U unix timestamp of the date's UTC midnight
//
// Any other rune passes through verbatim.
package format

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/calensys/libdatepick/dateutil"
)

// ISOPattern is the canonical storage pattern, year-month-day order.
const ISOPattern = "Y-m-d"

// fallbackNoYearPattern is used when stripping year tokens leaves a pattern
// with no date component at all.
const fallbackNoYearPattern = "M j"

// FormatDate renders d using the given display pattern.
func FormatDate(d dateutil.Date, pattern string) string {
	var b strings.Builder
	for _, r := range pattern {
		switch r {
		case 'Y':
			fmt.Fprintf(&b, "%04d", d.Year)
		case 'y':
			fmt.Fprintf(&b, "%02d", d.Year%100)
		case 'm':
			fmt.Fprintf(&b, "%02d", int(d.Month))
		case 'n':
			b.WriteString(strconv.Itoa(int(d.Month)))
		case 'd':
			fmt.Fprintf(&b, "%02d", d.Day)
		case 'j':
			b.WriteString(strconv.Itoa(d.Day))
		case 'D':
			b.WriteString(d.Weekday().String()[:3])
		case 'l':
			b.WriteString(d.Weekday().String())
		case 'M':
			b.WriteString(d.Month.String()[:3])
		case 'F':
			b.WriteString(d.Month.String())
		case 'U':
			b.WriteString(strconv.FormatInt(d.Time().Unix(), 10))
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

var (
	yearTokens     = regexp.MustCompile(`[Yy]+`)
	doubledComma   = regexp.MustCompile(`\s*,\s*,`)
	multiSpace     = regexp.MustCompile(`\s{2,}`)
	spaceComma     = regexp.MustCompile(`\s+,`)
	dateComponents = regexp.MustCompile(`[MDjFlmnUd]`)
)

// StripYearTokens removes year tokens from a display pattern and tidies the
// punctuation and whitespace they leave behind. If nothing renders a date
// component afterwards, the fixed month-abbrev-day pattern is returned.
func StripYearTokens(pattern string) string {
	if pattern == "" {
		return fallbackNoYearPattern
	}
	f := yearTokens.ReplaceAllString(pattern, "")
	f = doubledComma.ReplaceAllString(f, ",")
	f = multiSpace.ReplaceAllString(f, " ")
	f = spaceComma.ReplaceAllString(f, ",")
	f = strings.Trim(f, " ,")
	if !dateComponents.MatchString(f) {
		return fallbackNoYearPattern
	}
	return f
}

// StorageFormat returns the pattern used for stored (CSV) values. Patterns
// with month or weekday names cannot be re-parsed reliably and are forced to
// ISO order; numeric patterns are stored in ISO order as well so the stored
// form is always parse-safe.
func StorageFormat(display string) string {
	hasMonthNames := strings.ContainsAny(display, "FfMm")
	hasWeekday := strings.ContainsAny(display, "Dl")
	if hasMonthNames || hasWeekday {
		return ISOPattern
	}
	return ISOPattern
}

// CSV renders the selection in storage format, joined with ", ". An empty
// selection yields an empty string.
func CSV(dates []dateutil.Date, display string) string {
	if len(dates) == 0 {
		return ""
	}
	pattern := StorageFormat(display)
	parts := make([]string, 0, len(dates))
	for _, d := range dateutil.SortUnique(dates) {
		parts = append(parts, FormatDate(d, pattern))
	}
	return strings.Join(parts, ", ")
}
