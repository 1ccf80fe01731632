package picker

import (
	"testing"
	"time"

	"github.com/samber/mo"
	"github.com/stretchr/testify/assert"

	"github.com/calensys/libdatepick/dateutil"
)

func TestNormalizeCoercesLooseInput(t *testing.T) {
	s := Normalize(Config{
		StartDate:          "  2025-08-01 ",
		EndDate:            "2025-08-31",
		MinSelectableDates: "2",
		MaxSelectableDates: 5.0, // JSON numbers arrive as float64
		AllowedWeekday:     []string{"mon", "wed"},
		ExcludedDates:      "2025-08-15,bogus",
		DisplayFormat:      " F j, Y ",
	})

	assert.Equal(t, mo.Some(dateutil.MustParseISO("2025-08-01")), s.Start)
	assert.Equal(t, mo.Some(dateutil.MustParseISO("2025-08-31")), s.End)
	assert.Equal(t, 2, s.MinCount)
	assert.Equal(t, 5, s.MaxCount)
	assert.Equal(t, []time.Weekday{time.Monday, time.Wednesday}, s.Weekdays)
	assert.True(t, s.Excluded.Has(dateutil.MustParseISO("2025-08-15")))
	assert.Len(t, s.Excluded, 1)
	assert.Equal(t, "F j, Y", s.DisplayFormat)
}

func TestNormalizeDefaults(t *testing.T) {
	s := Normalize(Config{})

	assert.True(t, s.Start.IsAbsent())
	assert.True(t, s.End.IsAbsent())
	assert.Zero(t, s.MinCount)
	assert.Zero(t, s.MaxCount)
	assert.Empty(t, s.Weekdays)
	assert.Empty(t, s.Excluded)
	assert.Equal(t, DefaultDisplayFormat, s.DisplayFormat)

	// Empty parsed set defaults to all seven at runtime only.
	assert.Len(t, s.EffectiveWeekdays(), 7)
	assert.Empty(t, s.Weekdays)
}

func TestNormalizeMalformedInput(t *testing.T) {
	s := Normalize(Config{
		StartDate:          "08/01/2025",
		MinSelectableDates: "lots",
		MaxSelectableDates: struct{}{},
		AllowedWeekday:     42,
		ExcludedDates:      12345,
	})

	assert.True(t, s.Start.IsAbsent())
	assert.Equal(t, "08/01/2025", s.RawStart)
	assert.Zero(t, s.MinCount)
	assert.Zero(t, s.MaxCount)
	assert.Empty(t, s.Weekdays)
	assert.Empty(t, s.Excluded)
}

func TestCoerceCount(t *testing.T) {
	tests := []struct {
		name  string
		input any
		want  int
	}{
		{"int", 3, 3},
		{"int64", int64(4), 4},
		{"float64", 5.9, 5},
		{"numeric string", " 7 ", 7},
		{"float string", "2.5", 2},
		{"negative kept for validation", -1, -1},
		{"negative string", "-3", -3},
		{"empty string", "", 0},
		{"garbage string", "many", 0},
		{"nil", nil, 0},
		{"bool", true, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, coerceCount(tt.input))
		})
	}
}

func TestValidateOrderAndMessages(t *testing.T) {
	s := Normalize(Config{
		StartDate:          "not-iso",
		EndDate:            "also-bad",
		MinSelectableDates: -2,
		MaxSelectableDates: -1,
	})

	errs := Validate(s)
	assert.Equal(t, []string{
		"Start date must be YYYY-MM-DD.",
		"End date must be YYYY-MM-DD.",
		"Select at least one weekday.",
		"Minimum selectable dates cannot be negative.",
		"Maximum selectable dates cannot be negative.",
	}, errs)
}

func TestValidateStartAfterEnd(t *testing.T) {
	s := Normalize(Config{
		StartDate:      "2025-09-01",
		EndDate:        "2025-08-01",
		AllowedWeekday: []string{"mon"},
	})

	errs := Validate(s)
	assert.Contains(t, errs, "Start date must be on or before end date.")
}

func TestValidateMinOverMaxOnlyWhenBothNonzero(t *testing.T) {
	base := Config{
		StartDate:      "2025-08-01",
		EndDate:        "2025-08-31",
		AllowedWeekday: []string{"mon", "tue", "wed", "thu", "fri", "sat", "sun"},
	}

	cfg := base
	cfg.MinSelectableDates = 5
	cfg.MaxSelectableDates = 2
	assert.Contains(t, Validate(Normalize(cfg)),
		"Minimum selectable dates cannot be greater than maximum selectable dates.")

	// Max of zero means unenforced, so no contradiction.
	cfg = base
	cfg.MinSelectableDates = 5
	cfg.MaxSelectableDates = 0
	assert.Empty(t, Validate(Normalize(cfg)))
}

func TestValidateCapacity(t *testing.T) {
	// August 2025 has five Fridays.
	cfg := Config{
		StartDate:          "2025-08-01",
		EndDate:            "2025-08-31",
		AllowedWeekday:     []string{"friday"},
		MinSelectableDates: 6,
		MaxSelectableDates: 9,
	}

	errs := Validate(Normalize(cfg))
	assert.Equal(t, []string{
		"Minimum selectable dates (6) exceeds available dates in range (5).",
		"Maximum selectable dates (9) exceeds available dates in range (5).",
	}, errs)

	// Without bounds there is no capacity to check.
	cfg.StartDate = ""
	cfg.EndDate = ""
	assert.Empty(t, Validate(Normalize(cfg)))
}

func TestValidateCapacityCountsExclusions(t *testing.T) {
	cfg := Config{
		StartDate:          "2025-08-01",
		EndDate:            "2025-08-31",
		AllowedWeekday:     []string{"friday"},
		ExcludedDates:      "2025-08-08",
		MinSelectableDates: 5,
	}

	errs := Validate(Normalize(cfg))
	assert.Equal(t, []string{
		"Minimum selectable dates (5) exceeds available dates in range (4).",
	}, errs)
}

func TestValidateCleanSettings(t *testing.T) {
	s := Normalize(Config{
		StartDate:          "2025-08-01",
		EndDate:            "2025-08-31",
		AllowedWeekday:     []string{"mon", "fri"},
		MinSelectableDates: 1,
		MaxSelectableDates: 5,
	})
	assert.Empty(t, Validate(s))
}

func TestConfigPatchApply(t *testing.T) {
	base := Normalize(Config{
		StartDate:      "2025-08-01",
		EndDate:        "2025-08-31",
		AllowedWeekday: []string{"mon"},
		DisplayFormat:  "F j, Y",
	})

	t.Run("all none is a no-op", func(t *testing.T) {
		assert.Equal(t, base, ConfigPatch{}.apply(base))
	})

	t.Run("set fields re-normalize", func(t *testing.T) {
		got := ConfigPatch{
			EndDate:            mo.Some("2025-09-30"),
			MaxSelectableDates: mo.Some[any]("3"),
			AllowedWeekday:     mo.Some[any]([]string{"sat", "sun"}),
		}.apply(base)

		assert.Equal(t, mo.Some(dateutil.MustParseISO("2025-08-01")), got.Start)
		assert.Equal(t, mo.Some(dateutil.MustParseISO("2025-09-30")), got.End)
		assert.Equal(t, 3, got.MaxCount)
		assert.Equal(t, []time.Weekday{time.Sunday, time.Saturday}, got.Weekdays)
		assert.Equal(t, "F j, Y", got.DisplayFormat)
	})

	t.Run("setting to empty differs from leaving unset", func(t *testing.T) {
		got := ConfigPatch{
			StartDate:     mo.Some(""),
			DisplayFormat: mo.Some(""),
		}.apply(base)

		assert.True(t, got.Start.IsAbsent())
		assert.Equal(t, DefaultDisplayFormat, got.DisplayFormat)
		assert.Equal(t, base.End, got.End)
	})
}
