package picker

import (
	"testing"

	"github.com/beevik/etree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettingsManifest(t *testing.T) {
	cfg := Config{
		StartDate:          "2025-08-01",
		EndDate:            "2025-08-31",
		MinSelectableDates: 1,
		MaxSelectableDates: 5,
		AllowedWeekday:     []string{"mon", "fri"},
		ExcludedDates:      "2025-08-15",
		DisplayFormat:      "F j, Y",
	}
	p, _, _ := newTestPicker(t, cfg)

	out, err := p.SettingsManifest()
	require.NoError(t, err)

	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromString(out))

	widget := doc.SelectElement("widget")
	require.NotNil(t, widget)
	assert.Equal(t, p.ID(), widget.SelectAttrValue("instance", ""))

	fields := widget.SelectElement("fields")
	require.NotNil(t, fields)

	defaults := map[string]string{}
	for _, field := range fields.SelectElements("field") {
		defaults[field.SelectAttrValue("name", "")] = field.SelectElement("default").Text()
	}

	assert.Equal(t, "2025-08-01", defaults["startDate"])
	assert.Equal(t, "2025-08-31", defaults["endDate"])
	assert.Equal(t, "1", defaults["minSelectableDates"])
	assert.Equal(t, "5", defaults["maxSelectableDates"])
	assert.Equal(t, "1,5", defaults["allowedWeekday"])
	assert.Equal(t, "2025-08-15", defaults["excludedDates"])
	assert.Equal(t, "F j, Y", defaults["displayFormat"])
}
