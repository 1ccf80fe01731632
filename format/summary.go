package format

import (
	"fmt"
	"strings"

	"github.com/calensys/libdatepick/dateutil"
)

// EmptySummary is the sentinel rendered for an empty selection.
const EmptySummary = "No dates selected"

const enDash = "–"

// Summary renders the selection as grouped consecutive ranges in English
// list grammar ("X", "X and Y", "X, Y, and Z"). When elideYear is true the
// year is dropped from every rendered date: a multi-day range becomes
// "Mon D–D" within one month or "Mon D–Mon D" across months.
func Summary(dates []dateutil.Date, display string, elideYear bool) string {
	ranges := dateutil.GroupConsecutive(dates)
	if len(ranges) == 0 {
		return EmptySummary
	}

	noYear := StripYearTokens(display)
	parts := make([]string, len(ranges))
	for i, r := range ranges {
		parts[i] = formatRange(r, display, noYear, elideYear)
	}

	switch len(parts) {
	case 1:
		return parts[0]
	case 2:
		return parts[0] + " and " + parts[1]
	default:
		return strings.Join(parts[:len(parts)-1], ", ") + ", and " + parts[len(parts)-1]
	}
}

func formatRange(r dateutil.Range, full, noYear string, elideYear bool) string {
	if r.Start == r.End {
		if elideYear {
			return FormatDate(r.Start, noYear)
		}
		return FormatDate(r.Start, full)
	}
	if elideYear {
		sameMonth := r.Start.Year == r.End.Year && r.Start.Month == r.End.Month
		if sameMonth {
			return fmt.Sprintf("%s %d%s%d", monthAbbrev(r.Start), r.Start.Day, enDash, r.End.Day)
		}
		return fmt.Sprintf("%s %d%s%s %d", monthAbbrev(r.Start), r.Start.Day, enDash, monthAbbrev(r.End), r.End.Day)
	}
	return FormatDate(r.Start, full) + enDash + FormatDate(r.End, full)
}

func monthAbbrev(d dateutil.Date) string {
	return d.Month.String()[:3]
}
