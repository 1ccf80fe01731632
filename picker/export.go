package picker

import (
	"fmt"
	"strings"
	"time"

	"github.com/emersion/go-ical"

	"github.com/calensys/libdatepick/dateutil"
)

const icsProductID = "-//libdatepick//NONSGML v1.0//EN"

// ExportICS renders the current selection as an iCalendar document with one
// all-day VEVENT per consecutive-date range, so hosts can hand the picked
// dates to calendar applications. An empty selection yields a calendar with
// no events.
func (p *Picker) ExportICS() (string, error) {
	cal := ical.NewCalendar()
	cal.Props.SetText(ical.PropProductID, icsProductID)
	cal.Props.SetText(ical.PropVersion, "2.0")

	now := time.Now().UTC()
	for i, r := range dateutil.GroupConsecutive(p.selected) {
		event := ical.NewEvent()
		event.Props.SetText(ical.PropUID, fmt.Sprintf("%s-%d", p.id, i))
		event.Props.SetDateTime(ical.PropDateTimeStamp, now)
		event.Props.SetText(ical.PropSummary, "Selected dates")
		event.Props.Set(dateProp(ical.PropDateTimeStart, r.Start))
		// DTEND is exclusive per RFC 5545, hence the day after the range end.
		event.Props.Set(dateProp(ical.PropDateTimeEnd, r.End.AddDays(1)))
		cal.Children = append(cal.Children, event.Component)
	}

	var buf strings.Builder
	if err := ical.NewEncoder(&buf).Encode(cal); err != nil {
		return "", fmt.Errorf("failed to encode selection calendar: %w", err)
	}
	return buf.String(), nil
}

// dateProp builds a VALUE=DATE property for an all-day boundary.
func dateProp(name string, d dateutil.Date) *ical.Prop {
	prop := ical.NewProp(name)
	prop.Params.Set(ical.ParamValue, "DATE")
	prop.Value = d.Time().Format("20060102")
	return prop
}
