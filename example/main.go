// Command example runs a small demo host for the picker engine: a headless
// calendar adapter plus a few HTTP endpoints to inspect and mutate the
// selection. It stands in for the real rendering widget a host page would
// provide.
package main

import (
	"encoding/json"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"strings"

	"github.com/samber/mo"

	"github.com/calensys/libdatepick/dateutil"
	"github.com/calensys/libdatepick/picker"
)

const serverAddr = ":8080"

// headlessCalendar implements picker.Calendar without a DOM: it remembers
// the configured bounds and the displayed selection, and can enumerate the
// enabled days by querying the engine's predicate the way a month grid
// would.
type headlessCalendar struct {
	picker    *picker.Picker
	start     mo.Option[dateutil.Date]
	end       mo.Option[dateutil.Date]
	displayed []dateutil.Date
}

func (c *headlessCalendar) Rebuild(start, end mo.Option[dateutil.Date]) {
	c.start, c.end = start, end
}

func (c *headlessCalendar) SetSelection(dates []dateutil.Date) {
	c.displayed = dates
}

func (c *headlessCalendar) Redraw() {
	// A real widget would repaint here; the demo re-queries on request.
}

// enabledDays walks the configured window and asks the engine about each
// day, exactly as a rendered month grid does.
func (c *headlessCalendar) enabledDays() []string {
	start, ok := c.start.Get()
	if !ok {
		return nil
	}
	end, ok := c.end.Get()
	if !ok {
		return nil
	}

	var out []string
	for d := start; !d.After(end); d = d.AddDays(1) {
		if c.picker.IsDateEnabled(d) {
			out = append(out, d.ISO())
		}
	}
	return out
}

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))

	cal := &headlessCalendar{}
	var lastWarning string

	p, err := picker.New(picker.Options{
		Config: picker.Config{
			StartDate:          "2025-08-01",
			EndDate:            "2025-08-31",
			MinSelectableDates: "1",
			MaxSelectableDates: "5",
			AllowedWeekday:     []string{"mon", "tue", "wed", "thu", "fri"},
			ExcludedDates:      "2025-08-15",
			DisplayFormat:      "F j, Y",
		},
		Calendar:  cal,
		OnWarning: func(msg string) { lastWarning = msg },
		OnChange: func(iso []string) {
			logger.Info("selection changed", "dates", strings.Join(iso, ","))
		},
		OnReady: func() { logger.Info("picker ready") },
		Logger:  logger,
	})
	if err != nil {
		log.Fatalf("failed to create picker: %v", err)
	}
	cal.picker = p

	http.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		fmt.Fprintln(w, "libdatepick demo host")
		fmt.Fprintln(w, "GET  /state            current selection state")
		fmt.Fprintln(w, "POST /select?dates=... full replacement selection, comma-separated ISO dates")
		fmt.Fprintln(w, "GET  /export.ics       selection as iCalendar")
	})

	http.HandleFunc("/state", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"selected":   p.SelectedISO(),
			"csv":        p.FormattedCSV(),
			"summary":    p.HumanSummary("2025-08-01", "2025-08-31"),
			"atCapacity": p.AtCapacity(),
			"warning":    lastWarning,
			"enabled":    cal.enabledDays(),
		})
	})

	http.HandleFunc("/select", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "use POST", http.StatusMethodNotAllowed)
			return
		}
		var candidates []dateutil.Date
		for _, part := range strings.Split(r.URL.Query().Get("dates"), ",") {
			d, err := dateutil.ParseISO(strings.TrimSpace(part))
			if err != nil {
				continue
			}
			candidates = append(candidates, d)
		}
		p.OnUserChange(candidates)
		http.Redirect(w, r, "/state", http.StatusSeeOther)
	})

	http.HandleFunc("/export.ics", func(w http.ResponseWriter, r *http.Request) {
		ics, err := p.ExportICS()
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "text/calendar")
		w.Header().Set("Content-Disposition", "attachment; filename=selection.ics")
		fmt.Fprint(w, ics)
	})

	log.Printf("Starting demo host on %s", serverAddr)
	if err := http.ListenAndServe(serverAddr, nil); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
