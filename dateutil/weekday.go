package dateutil

import (
	"fmt"
	"regexp"
	"slices"
	"strings"
	"time"
)

// weekdayTokens maps the accepted spellings of each weekday to its
// time.Weekday value (Sunday=0). "7" is accepted as Sunday for hosts that
// number the week 1-7.
var weekdayTokens = map[string]time.Weekday{
	"sunday": time.Sunday, "sun": time.Sunday, "0": time.Sunday, "7": time.Sunday,
	"monday": time.Monday, "mon": time.Monday, "1": time.Monday,
	"tuesday": time.Tuesday, "tue": time.Tuesday, "tues": time.Tuesday, "2": time.Tuesday,
	"wednesday": time.Wednesday, "wed": time.Wednesday, "3": time.Wednesday,
	"thursday": time.Thursday, "thu": time.Thursday, "thur": time.Thursday, "thurs": time.Thursday, "4": time.Thursday,
	"friday": time.Friday, "fri": time.Friday, "5": time.Friday,
	"saturday": time.Saturday, "sat": time.Saturday, "6": time.Saturday,
}

var newlineSplit = regexp.MustCompile(`\r?\n+`)

// ParseAllowedWeekdays normalizes a loosely-typed weekday payload into a
// deduplicated, ascending []time.Weekday. It accepts:
//
//   - a slice of weekday names, abbreviations or numeric strings
//     (case-insensitive), or
//   - a single builder-style string whose part before the first comma is a
//     newline-separated list of option labels (optionally "Label|Value"
//     pairs, in which case the value is used) and whose part after it is a
//     comma-separated list of checked labels. A non-empty checked part is
//     the effective selection, otherwise all option labels are.
//
// Unknown tokens are dropped. An empty result is returned as-is; callers
// decide whether that is a validation error or defaults to all seven days.
func ParseAllowedWeekdays(raw any) []time.Weekday {
	switch v := raw.(type) {
	case nil:
		return nil
	case []time.Weekday:
		return weekdaysFromTokens(weekdayStrings(v))
	case []string:
		return weekdaysFromTokens(v)
	case []int:
		tokens := make([]string, len(v))
		for i, n := range v {
			tokens[i] = fmt.Sprint(n)
		}
		return weekdaysFromTokens(tokens)
	case []any:
		tokens := make([]string, 0, len(v))
		for _, item := range v {
			tokens = append(tokens, fmt.Sprint(item))
		}
		return weekdaysFromTokens(tokens)
	case string:
		return weekdaysFromBuilderString(v)
	default:
		return nil
	}
}

func weekdayStrings(days []time.Weekday) []string {
	out := make([]string, len(days))
	for i, wd := range days {
		out[i] = fmt.Sprint(int(wd))
	}
	return out
}

func weekdaysFromTokens(tokens []string) []time.Weekday {
	var out []time.Weekday
	for _, tok := range tokens {
		wd, ok := weekdayTokens[strings.ToLower(strings.TrimSpace(tok))]
		if !ok {
			continue
		}
		if !slices.Contains(out, wd) {
			out = append(out, wd)
		}
	}
	slices.Sort(out)
	return out
}

// weekdaysFromBuilderString handles the two-part option/checked payload some
// form builders emit, e.g. "Sunday\nMonday\nFriday,Monday,Friday".
func weekdaysFromBuilderString(raw string) []time.Weekday {
	if strings.TrimSpace(raw) == "" {
		return nil
	}

	optionsPart := raw
	checkedPart := ""
	if i := strings.Index(raw, ","); i >= 0 {
		optionsPart = raw[:i]
		checkedPart = raw[i+1:]
	}

	options := splitNonEmpty(newlineSplit.Split(optionsPart, -1))
	checked := splitNonEmpty(strings.Split(checkedPart, ","))

	effective := options
	if len(checked) > 0 {
		effective = checked
	}

	tokens := make([]string, len(effective))
	for i, label := range effective {
		tokens[i] = builderKey(label)
	}
	return weekdaysFromTokens(tokens)
}

// builderKey extracts the token from a label, preferring the value side of a
// "Label|Value" pair.
func builderKey(label string) string {
	if i := strings.LastIndex(label, "|"); i >= 0 {
		label = label[i+1:]
	}
	return strings.TrimSpace(label)
}

func splitNonEmpty(parts []string) []string {
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// AllWeekdays returns the full Sunday..Saturday set, the runtime default
// when a configuration supplies no usable weekdays.
func AllWeekdays() []time.Weekday {
	return []time.Weekday{
		time.Sunday, time.Monday, time.Tuesday, time.Wednesday,
		time.Thursday, time.Friday, time.Saturday,
	}
}
