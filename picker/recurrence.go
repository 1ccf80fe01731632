package picker

import (
	"fmt"

	"github.com/samber/mo"
	"github.com/teambition/rrule-go"

	"github.com/calensys/libdatepick/dateutil"
)

// expandExcludedRule expands an RFC 5545 RRULE into the concrete dates it
// excludes within [start, end]. Expansion requires both bounds; with either
// absent the rule is skipped so an unbounded rule can never enumerate
// forever. A malformed rule is an error the caller surfaces as a warning.
func expandExcludedRule(rule string, start, end mo.Option[dateutil.Date]) ([]dateutil.Date, error) {
	if rule == "" {
		return nil, nil
	}
	first, ok := start.Get()
	if !ok {
		return nil, nil
	}
	last, ok := end.Get()
	if !ok {
		return nil, nil
	}

	dtstart := first.Time().Format("20060102T150405Z")
	set, err := rrule.StrToRRuleSet(fmt.Sprintf("DTSTART:%s\nRRULE:%s", dtstart, rule))
	if err != nil {
		return nil, fmt.Errorf("failed to parse excluded rule %q: %w", rule, err)
	}

	// Between is inclusive of both ends here; occurrences land on the UTC
	// midnights the dates were encoded as.
	occurrences := set.Between(first.Time(), last.Time(), true)
	dates := make([]dateutil.Date, 0, len(occurrences))
	for _, t := range occurrences {
		dates = append(dates, dateutil.DateOf(t.UTC()))
	}
	return dates, nil
}
