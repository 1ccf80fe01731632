package dateutil

import (
	"slices"
	"strings"
	"time"

	"github.com/samber/mo"
)

// Range is a maximal run of consecutive calendar dates within a selection.
// A single date is represented with Start == End.
type Range struct {
	Start Date
	End   Date
}

// GroupConsecutive deduplicates and sorts dates, then greedily folds
// consecutive days into ranges. The result is the minimal range list; empty
// input yields an empty list.
func GroupConsecutive(dates []Date) []Range {
	sorted := SortUnique(dates)
	if len(sorted) == 0 {
		return nil
	}

	var groups []Range
	start, prev := sorted[0], sorted[0]
	for _, cur := range sorted[1:] {
		if AreConsecutive(prev, cur) {
			prev = cur
			continue
		}
		groups = append(groups, Range{Start: start, End: prev})
		start, prev = cur, cur
	}
	return append(groups, Range{Start: start, End: prev})
}

// ParseExcludedDates normalizes a loosely-typed excluded-dates payload (a
// comma-delimited string, []string or []any) into sorted dates. Entries that
// are not strict ISO dates are silently dropped; malformed input never
// errors.
func ParseExcludedDates(raw any) []Date {
	var entries []string
	switch v := raw.(type) {
	case nil:
		return nil
	case string:
		entries = strings.Split(v, ",")
	case []string:
		entries = v
	case []any:
		entries = make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				entries = append(entries, s)
			}
		}
	default:
		return nil
	}

	var out []Date
	for _, entry := range entries {
		d, err := ParseISO(strings.TrimSpace(entry))
		if err != nil {
			continue
		}
		out = append(out, d)
	}
	return SortUnique(out)
}

// CountPossibleDays counts the days in [start, end] whose weekday is allowed
// and which are not excluded. It is None when either bound or the weekday
// set is absent, and Some(0) when start is after end. Intended for capacity
// validation, not for hot paths.
func CountPossibleDays(start, end mo.Option[Date], allowed []time.Weekday, excluded DateSet) mo.Option[int] {
	first, ok := start.Get()
	if !ok {
		return mo.None[int]()
	}
	last, ok := end.Get()
	if !ok {
		return mo.None[int]()
	}
	if len(allowed) == 0 {
		return mo.None[int]()
	}
	if first.After(last) {
		return mo.Some(0)
	}

	count := 0
	for d := first; !d.After(last); d = d.AddDays(1) {
		if slices.Contains(allowed, d.Weekday()) && !excluded.Has(d) {
			count++
		}
	}
	return mo.Some(count)
}

// UnderOneYear reports whether both bounds are present and span less than a
// fixed 365 days. It is not calendar-year aware; the threshold matches the
// year-elision rule of the display layer.
func UnderOneYear(start, end mo.Option[Date]) bool {
	first, ok := start.Get()
	if !ok {
		return false
	}
	last, ok := end.Get()
	if !ok {
		return false
	}
	return first.DaysUntil(last) < 365
}
