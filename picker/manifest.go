package picker

import (
	"fmt"
	"strings"
	"time"

	"github.com/beevik/etree"
)

// SettingsManifest renders an XML description of the widget's configurable
// fields with the instance's current values, for host-side settings forms.
func (p *Picker) SettingsManifest() (string, error) {
	s := p.settings

	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	widget := doc.CreateElement("widget")
	widget.CreateAttr("name", "libdatepick")
	widget.CreateAttr("instance", p.id)

	fields := widget.CreateElement("fields")
	manifestField(fields, "startDate", "date", s.RawStart)
	manifestField(fields, "endDate", "date", s.RawEnd)
	manifestField(fields, "minSelectableDates", "number", fmt.Sprint(s.MinCount))
	manifestField(fields, "maxSelectableDates", "number", fmt.Sprint(s.MaxCount))
	manifestField(fields, "allowedWeekday", "checklist", weekdayCSV(s.EffectiveWeekdays()))
	manifestField(fields, "excludedDates", "textarea", excludedCSV(s))
	manifestField(fields, "excludedRule", "text", s.ExcludedRule)
	manifestField(fields, "displayFormat", "text", s.DisplayFormat)

	doc.Indent(2)
	out, err := doc.WriteToString()
	if err != nil {
		return "", fmt.Errorf("failed to render settings manifest: %w", err)
	}
	return out, nil
}

func manifestField(parent *etree.Element, name, kind, value string) {
	field := parent.CreateElement("field")
	field.CreateAttr("name", name)
	field.CreateAttr("type", kind)
	field.CreateElement("default").SetText(value)
}

func weekdayCSV(days []time.Weekday) string {
	parts := make([]string, len(days))
	for i, wd := range days {
		parts[i] = fmt.Sprint(int(wd))
	}
	return strings.Join(parts, ",")
}

func excludedCSV(s Settings) string {
	dates := s.Excluded.Dates()
	parts := make([]string, len(dates))
	for i, d := range dates {
		parts[i] = d.ISO()
	}
	return strings.Join(parts, ",")
}
