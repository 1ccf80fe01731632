package picker

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/samber/mo"

	"github.com/calensys/libdatepick/dateutil"
	"github.com/calensys/libdatepick/format"
)

// ErrNoCalendar is returned by New when no calendar renderer is supplied.
// The engine cannot operate without a rendering surface.
var ErrNoCalendar = errors.New("picker: calendar renderer not available")

// Calendar is the external rendering collaborator. The engine owns all
// selection state and decision logic; the calendar only displays it and
// feeds user interactions back through OnUserChange. Implementations must
// not call back into the engine from inside these methods.
type Calendar interface {
	// Rebuild tears down and re-renders the calendar for new bounds. The
	// calendar re-queries IsDateEnabled for every day it draws.
	Rebuild(start, end mo.Option[dateutil.Date])

	// SetSelection imperatively replaces the displayed selection without
	// emitting a change event.
	SetSelection(dates []dateutil.Date)

	// Redraw re-queries the enable predicate for the visible days.
	Redraw()
}

// Options configures a Picker. Calendar is required; callbacks and Logger
// are optional.
type Options struct {
	Config   Config
	Calendar Calendar

	// OnWarning receives validation findings and interactive-limit
	// messages. It is called with "" to clear a previous warning.
	OnWarning func(message string)

	// OnChange receives the canonical sorted ISO selection after every
	// committed user change.
	OnChange func(isoDates []string)

	// OnReady fires once the calendar has been built.
	OnReady func()

	Logger *slog.Logger
}

// Picker is the date-selection engine: it owns the canonical selection, the
// day-enable predicate and the cardinality policy. All operations are
// synchronous and run to completion on the calling thread; each mutation is
// one atomic transition. Re-entrant calls from callbacks are not supported.
type Picker struct {
	id       string
	settings Settings

	// Derived per configuration cycle.
	weekdays []time.Weekday   // effective allowed set, never empty
	excluded dateutil.DateSet // configured exclusions plus rule expansion

	selected []dateutil.Date // canonical selection, sorted ascending

	calendar  Calendar
	onWarning func(string)
	onChange  func([]string)
	onReady   func()
	logger    *slog.Logger
	destroyed bool
}

// New builds a Picker from raw host configuration. Configuration problems
// are advisory: they are joined into a single OnWarning message and the
// engine continues with best-effort defaults. The only fatal condition is a
// missing Calendar.
func New(opts Options) (*Picker, error) {
	if opts.Calendar == nil {
		return nil, ErrNoCalendar
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	p := &Picker{
		id:        uuid.New().String(),
		calendar:  opts.Calendar,
		onWarning: orNop1(opts.OnWarning),
		onChange:  orNopSlice(opts.OnChange),
		onReady:   orNop0(opts.OnReady),
		logger:    logger,
	}

	p.configure(Normalize(opts.Config))
	p.calendar.Rebuild(p.settings.Start, p.settings.End)
	p.logger.Debug("picker ready", "id", p.id)
	p.onReady()
	return p, nil
}

// configure installs a normalized Settings, surfaces validation findings as
// a warning and re-derives the runtime weekday and exclusion sets.
func (p *Picker) configure(s Settings) {
	if errs := Validate(s); len(errs) > 0 {
		p.logger.Warn("settings validation failed", "id", p.id, "issues", len(errs))
		p.onWarning(strings.Join(errs, " "))
	}

	p.settings = s
	p.weekdays = s.EffectiveWeekdays()

	excluded := make(dateutil.DateSet, len(s.Excluded))
	for d := range s.Excluded {
		excluded.Add(d)
	}
	if s.ExcludedRule != "" {
		dates, err := expandExcludedRule(s.ExcludedRule, s.Start, s.End)
		if err != nil {
			p.logger.Warn("dropping excluded rule", "id", p.id, "error", err)
			p.onWarning("Excluded date rule could not be applied.")
		}
		for _, d := range dates {
			excluded.Add(d)
		}
	}
	p.excluded = excluded
}

// IsDateEnabled is the single predicate the calendar queries for every
// rendered day. Checks short-circuit in order: below start, above end,
// excluded, weekday not allowed, and finally the capacity rule: at the
// configured maximum only already-selected dates stay enabled, so the user
// can deselect but not add.
func (p *Picker) IsDateEnabled(d dateutil.Date) bool {
	if p.destroyed {
		return false
	}
	if start, ok := p.settings.Start.Get(); ok && d.Before(start) {
		return false
	}
	if end, ok := p.settings.End.Get(); ok && d.After(end) {
		return false
	}
	if p.excluded.Has(d) {
		return false
	}
	if !slices.Contains(p.weekdays, d.Weekday()) {
		return false
	}
	if p.AtCapacity() {
		return p.isSelected(d)
	}
	return true
}

// AtCapacity reports whether the selection has reached the configured
// maximum. The calendar may use it to mark not-selected days visually; all
// decision logic stays in the engine.
func (p *Picker) AtCapacity() bool {
	return p.settings.MaxCount > 0 && len(p.selected) >= p.settings.MaxCount
}

// OnUserChange receives the complete new selection proposed by the calendar
// (not a delta). Over-maximum candidates are rejected wholesale: prior state
// is restored in the engine and on the calendar, and a warning is emitted.
// Otherwise the candidate is committed, an under-minimum warning is emitted
// or the warning is cleared, the enable state is redrawn, and subscribers
// are notified of the canonical selection.
func (p *Picker) OnUserChange(candidates []dateutil.Date) {
	if p.destroyed {
		return
	}

	next := dateutil.SortUnique(candidates)

	if p.settings.MaxCount > 0 && len(next) > p.settings.MaxCount {
		p.logger.Debug("change rejected over maximum", "id", p.id,
			"candidates", len(next), "max", p.settings.MaxCount)
		p.onWarning(fmt.Sprintf("You can select up to %d %s.",
			p.settings.MaxCount, dateWord(p.settings.MaxCount)))
		p.calendar.SetSelection(slices.Clone(p.selected))
		p.calendar.Redraw()
		return
	}

	p.selected = next

	if p.settings.MinCount > 0 && len(next) < p.settings.MinCount {
		p.onWarning(fmt.Sprintf("Select at least %d %s.",
			p.settings.MinCount, dateWord(p.settings.MinCount)))
	} else {
		p.onWarning("")
	}

	// Reaching or leaving the maximum changes which days are enabled.
	p.calendar.Redraw()
	p.onChange(p.SelectedISO())
}

// SetSelectedISO imperatively overwrites the selection, e.g. when restoring
// from host storage. Input is filtered to strict ISO dates, deduplicated and
// sorted; min/max warnings are bypassed.
func (p *Picker) SetSelectedISO(isoDates []string) {
	if p.destroyed {
		return
	}
	var clean []dateutil.Date
	for _, s := range isoDates {
		d, err := dateutil.ParseISO(s)
		if err != nil {
			continue
		}
		clean = append(clean, d)
	}
	p.selected = dateutil.SortUnique(clean)
	p.calendar.SetSelection(slices.Clone(p.selected))
}

// SelectedISO returns the canonical selection as sorted ISO strings.
func (p *Picker) SelectedISO() []string {
	out := make([]string, len(p.selected))
	for i, d := range p.selected {
		out[i] = d.ISO()
	}
	return out
}

// FormattedCSV returns the selection in the storage-safe CSV form.
func (p *Picker) FormattedCSV() string {
	return format.CSV(p.selected, p.settings.DisplayFormat)
}

// HumanSummary renders the selection as grouped consecutive ranges. The
// range bounds decide year elision: when they span less than a year, years
// are dropped from the rendered dates. Absent or malformed bounds disable
// elision.
func (p *Picker) HumanSummary(rangeStartISO, rangeEndISO string) string {
	elide := dateutil.UnderOneYear(parseBound(strings.TrimSpace(rangeStartISO)),
		parseBound(strings.TrimSpace(rangeEndISO)))
	return format.Summary(p.selected, p.settings.DisplayFormat, elide)
}

// UpdateSettings merges a partial reconfiguration into the current settings,
// re-validates (advisory, surfaced via OnWarning) and rebuilds the calendar
// with the new bounds and predicate.
//
// The existing selection is intentionally left intact: dates that the new
// constraints would no longer allow persist until the next user change. The
// engine warns rather than pruning silently, matching its advisory posture
// everywhere else.
func (p *Picker) UpdateSettings(patch ConfigPatch) {
	if p.destroyed {
		return
	}
	p.configure(patch.apply(p.settings))
	p.calendar.Rebuild(p.settings.Start, p.settings.End)
	p.calendar.SetSelection(slices.Clone(p.selected))
	p.logger.Debug("picker reconfigured", "id", p.id)
}

// Settings returns the canonical settings of the current configuration
// cycle.
func (p *Picker) Settings() Settings {
	return p.settings
}

// ID returns the engine instance identifier.
func (p *Picker) ID() string {
	return p.id
}

// Destroy tears the engine down. Subsequent queries return zero values and
// mutations are ignored; the calendar reference is released.
func (p *Picker) Destroy() {
	if p.destroyed {
		return
	}
	p.destroyed = true
	p.selected = nil
	p.calendar = nil
	p.logger.Debug("picker destroyed", "id", p.id)
}

func (p *Picker) isSelected(d dateutil.Date) bool {
	_, found := slices.BinarySearchFunc(p.selected, d, dateutil.Date.Compare)
	return found
}

func dateWord(n int) string {
	if n == 1 {
		return "date"
	}
	return "dates"
}

func orNop0(fn func()) func() {
	if fn == nil {
		return func() {}
	}
	return fn
}

func orNop1(fn func(string)) func(string) {
	if fn == nil {
		return func(string) {}
	}
	return fn
}

func orNopSlice(fn func([]string)) func([]string) {
	if fn == nil {
		return func([]string) {}
	}
	return fn
}
