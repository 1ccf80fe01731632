/*
Package picker implements the date-selection engine behind a multi-date
calendar widget: configuration normalization and validation, the day-enable
predicate, cardinality enforcement, and the host-facing selection API.

# Basic Usage

Wire the engine to a calendar renderer and host callbacks:

	p, err := picker.New(picker.Options{
		Config: picker.Config{
			StartDate:          "2025-08-01",
			EndDate:            "2025-08-31",
			MinSelectableDates: "1",
			MaxSelectableDates: "5",
			AllowedWeekday:     []string{"mon", "wed", "fri"},
			ExcludedDates:      "2025-08-15",
			DisplayFormat:      "F j, Y",
		},
		Calendar:  myRenderer,
		OnWarning: func(msg string) { showWarning(msg) },
		OnChange:  func(iso []string) { hidden.Set(strings.Join(iso, ",")) },
	})
	if err != nil {
		log.Fatal(err)
	}

The renderer queries p.IsDateEnabled for every day it draws and delivers
each interaction batch through p.OnUserChange. The host reads the selection
with p.SelectedISO, p.FormattedCSV and p.HumanSummary.

# Validation Is Advisory

Configuration contradictions (start after end, min above max, counts
exceeding the available days) are reported through OnWarning and the engine
continues with best-effort defaults: an empty allowed-weekday set is flagged
as an error and then defaults to all seven days. The one hard failure is
constructing without a Calendar, and the one hard rejection at runtime is a
user change exceeding the configured maximum, which rolls back to the prior
selection.

# Concurrency

The engine is single-threaded and synchronous. Every operation runs to
completion on the calling goroutine; callbacks must not re-enter the engine.
*/
package picker
