package picker

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/samber/mo"

	"github.com/calensys/libdatepick/dateutil"
)

// DefaultDisplayFormat is the display pattern used when the host supplies
// none.
const DefaultDisplayFormat = "Y-m-d"

// Config is the raw, loosely-typed configuration a host passes in. Fields
// mirror what form platforms deliver: counts may arrive as numbers or
// numeric strings, list fields as arrays or delimited strings. Shape
// handling stops at Normalize; nothing below it branches on input shape.
type Config struct {
	StartDate string
	EndDate   string

	// MinSelectableDates and MaxSelectableDates accept ints, floats or
	// numeric strings; 0 (and anything malformed) means unenforced.
	MinSelectableDates any
	MaxSelectableDates any

	// AllowedWeekday accepts an array of weekday names/numbers or a
	// builder-style delimited string. See dateutil.ParseAllowedWeekdays.
	AllowedWeekday any

	// ExcludedDates accepts an array of ISO strings or one comma-delimited
	// string; malformed entries are dropped silently.
	ExcludedDates any

	// ExcludedRule is an optional RFC 5545 RRULE expanded within the
	// configured bounds into additional excluded dates.
	ExcludedRule string

	DisplayFormat string
}

// Settings is the canonical configuration record the engine operates on,
// immutable per configuration cycle.
type Settings struct {
	Start mo.Option[dateutil.Date]
	End   mo.Option[dateutil.Date]

	// RawStart and RawEnd keep the trimmed host input so validation can
	// report malformed bounds that normalized to None.
	RawStart string
	RawEnd   string

	MinCount int
	MaxCount int

	// Weekdays is the parsed allowed set before any defaulting; it may be
	// empty, which Validate flags and EffectiveWeekdays papers over.
	Weekdays []time.Weekday

	Excluded      dateutil.DateSet
	ExcludedRule  string
	DisplayFormat string
}

// Normalize turns raw host input into canonical Settings. It never fails:
// malformed numerics coerce to 0, malformed bounds to None (Validate still
// reports them from the raw strings), unknown weekday tokens and bad
// excluded entries are dropped.
func Normalize(cfg Config) Settings {
	rawStart := strings.TrimSpace(cfg.StartDate)
	rawEnd := strings.TrimSpace(cfg.EndDate)

	display := strings.TrimSpace(cfg.DisplayFormat)
	if display == "" {
		display = DefaultDisplayFormat
	}

	return Settings{
		Start:         parseBound(rawStart),
		End:           parseBound(rawEnd),
		RawStart:      rawStart,
		RawEnd:        rawEnd,
		MinCount:      coerceCount(cfg.MinSelectableDates),
		MaxCount:      coerceCount(cfg.MaxSelectableDates),
		Weekdays:      dateutil.ParseAllowedWeekdays(cfg.AllowedWeekday),
		Excluded:      dateutil.NewDateSet(dateutil.ParseExcludedDates(cfg.ExcludedDates)...),
		ExcludedRule:  strings.TrimSpace(cfg.ExcludedRule),
		DisplayFormat: display,
	}
}

// EffectiveWeekdays returns the runtime weekday set: the parsed set, or all
// seven days when it is empty. Validation has already flagged the empty set
// by the time this default applies.
func (s Settings) EffectiveWeekdays() []time.Weekday {
	if len(s.Weekdays) == 0 {
		return dateutil.AllWeekdays()
	}
	return s.Weekdays
}

// Validate checks a normalized Settings for structural and capacity errors
// and returns human-readable messages in a fixed order. Validation is
// advisory: the engine surfaces the joined messages as a warning and
// continues with best-effort defaults rather than refusing construction.
func Validate(s Settings) []string {
	var errs []string

	if s.RawStart != "" && s.Start.IsAbsent() {
		errs = append(errs, "Start date must be YYYY-MM-DD.")
	}
	if s.RawEnd != "" && s.End.IsAbsent() {
		errs = append(errs, "End date must be YYYY-MM-DD.")
	}
	if start, ok := s.Start.Get(); ok {
		if end, ok := s.End.Get(); ok && start.After(end) {
			errs = append(errs, "Start date must be on or before end date.")
		}
	}
	if len(s.Weekdays) == 0 {
		errs = append(errs, "Select at least one weekday.")
	}
	if s.MinCount < 0 {
		errs = append(errs, "Minimum selectable dates cannot be negative.")
	}
	if s.MaxCount < 0 {
		errs = append(errs, "Maximum selectable dates cannot be negative.")
	}
	if s.MinCount > 0 && s.MaxCount > 0 && s.MinCount > s.MaxCount {
		errs = append(errs, "Minimum selectable dates cannot be greater than maximum selectable dates.")
	}

	if possible, ok := dateutil.CountPossibleDays(s.Start, s.End, s.Weekdays, s.Excluded).Get(); ok {
		if s.MinCount > 0 && s.MinCount > possible {
			errs = append(errs, fmt.Sprintf("Minimum selectable dates (%d) exceeds available dates in range (%d).", s.MinCount, possible))
		}
		if s.MaxCount > 0 && s.MaxCount > possible {
			errs = append(errs, fmt.Sprintf("Maximum selectable dates (%d) exceeds available dates in range (%d).", s.MaxCount, possible))
		}
	}

	return errs
}

// ConfigPatch is a partial reconfiguration. Option fields distinguish
// "leave unchanged" (None) from "set, possibly to empty" (Some).
type ConfigPatch struct {
	StartDate          mo.Option[string]
	EndDate            mo.Option[string]
	MinSelectableDates mo.Option[any]
	MaxSelectableDates mo.Option[any]
	AllowedWeekday     mo.Option[any]
	ExcludedDates      mo.Option[any]
	ExcludedRule       mo.Option[string]
	DisplayFormat      mo.Option[string]
}

// apply merges the patch into a copy of base, re-normalizing every field
// the patch sets.
func (p ConfigPatch) apply(base Settings) Settings {
	s := base
	if v, ok := p.StartDate.Get(); ok {
		s.RawStart = strings.TrimSpace(v)
		s.Start = parseBound(s.RawStart)
	}
	if v, ok := p.EndDate.Get(); ok {
		s.RawEnd = strings.TrimSpace(v)
		s.End = parseBound(s.RawEnd)
	}
	if v, ok := p.MinSelectableDates.Get(); ok {
		s.MinCount = coerceCount(v)
	}
	if v, ok := p.MaxSelectableDates.Get(); ok {
		s.MaxCount = coerceCount(v)
	}
	if v, ok := p.AllowedWeekday.Get(); ok {
		s.Weekdays = dateutil.ParseAllowedWeekdays(v)
	}
	if v, ok := p.ExcludedDates.Get(); ok {
		s.Excluded = dateutil.NewDateSet(dateutil.ParseExcludedDates(v)...)
	}
	if v, ok := p.ExcludedRule.Get(); ok {
		s.ExcludedRule = strings.TrimSpace(v)
	}
	if v, ok := p.DisplayFormat.Get(); ok {
		s.DisplayFormat = strings.TrimSpace(v)
		if s.DisplayFormat == "" {
			s.DisplayFormat = DefaultDisplayFormat
		}
	}
	return s
}

func parseBound(raw string) mo.Option[dateutil.Date] {
	if raw == "" {
		return mo.None[dateutil.Date]()
	}
	d, err := dateutil.ParseISO(raw)
	if err != nil {
		return mo.None[dateutil.Date]()
	}
	return mo.Some(d)
}

// coerceCount turns a loosely-typed count into an int, keeping negatives for
// validation to flag and mapping anything unusable to 0.
func coerceCount(raw any) int {
	switch v := raw.(type) {
	case nil:
		return 0
	case int:
		return v
	case int32:
		return int(v)
	case int64:
		return int(v)
	case float32:
		return int(v)
	case float64:
		return int(v)
	case string:
		trimmed := strings.TrimSpace(v)
		if trimmed == "" {
			return 0
		}
		if n, err := strconv.Atoi(trimmed); err == nil {
			return n
		}
		if f, err := strconv.ParseFloat(trimmed, 64); err == nil {
			return int(f)
		}
		return 0
	default:
		return 0
	}
}
