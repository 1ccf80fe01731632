package dateutil

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseAllowedWeekdaysArrays(t *testing.T) {
	tests := []struct {
		name  string
		input any
		want  []time.Weekday
	}{
		{
			name:  "full names",
			input: []string{"Monday", "Wednesday", "Friday"},
			want:  []time.Weekday{time.Monday, time.Wednesday, time.Friday},
		},
		{
			name:  "abbreviations and case mix",
			input: []string{"SUN", "tue", "Thur", "sat"},
			want:  []time.Weekday{time.Sunday, time.Tuesday, time.Thursday, time.Saturday},
		},
		{
			name:  "numeric strings with seven as sunday",
			input: []string{"7", "1", "3"},
			want:  []time.Weekday{time.Sunday, time.Monday, time.Wednesday},
		},
		{
			name:  "same day in three spellings maps once",
			input: []string{"Monday", "mon", "1"},
			want:  []time.Weekday{time.Monday},
		},
		{
			name:  "unknown tokens dropped",
			input: []string{"funday", "mon", ""},
			want:  []time.Weekday{time.Monday},
		},
		{
			name:  "unsorted input comes back ascending",
			input: []string{"sat", "sun", "wed"},
			want:  []time.Weekday{time.Sunday, time.Wednesday, time.Saturday},
		},
		{
			name:  "any slice",
			input: []any{"fri", 2},
			want:  []time.Weekday{time.Tuesday, time.Friday},
		},
		{
			name:  "int slice",
			input: []int{0, 6},
			want:  []time.Weekday{time.Sunday, time.Saturday},
		},
		{
			name:  "nothing usable",
			input: []string{"holiday"},
			want:  nil,
		},
		{
			name:  "nil input",
			input: nil,
			want:  nil,
		},
		{
			name:  "unsupported shape",
			input: 42,
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseAllowedWeekdays(tt.input))
		})
	}
}

func TestParseAllowedWeekdaysBuilderString(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []time.Weekday
	}{
		{
			name:  "options only, no checked part",
			input: "Sunday\nMonday\nFriday",
			want:  []time.Weekday{time.Sunday, time.Monday, time.Friday},
		},
		{
			name:  "checked part wins over options",
			input: "Sunday\nMonday\nFriday,Monday,Friday",
			want:  []time.Weekday{time.Monday, time.Friday},
		},
		{
			name:  "label pipe value pairs use the value",
			input: "First day|Sunday\nLast day|Saturday",
			want:  []time.Weekday{time.Sunday, time.Saturday},
		},
		{
			name:  "checked pairs with values",
			input: "Weekstart|1\nWeekend|6,6",
			want:  []time.Weekday{time.Saturday},
		},
		{
			name:  "windows line endings and blank lines",
			input: "Monday\r\n\r\nTuesday",
			want:  []time.Weekday{time.Monday, time.Tuesday},
		},
		{
			name:  "blank string",
			input: "   ",
			want:  nil,
		},
		{
			name:  "unknown labels dropped",
			input: "Someday\nMonday",
			want:  []time.Weekday{time.Monday},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseAllowedWeekdays(tt.input))
		})
	}
}

func TestParseAllowedWeekdaysIdempotent(t *testing.T) {
	first := ParseAllowedWeekdays([]string{"Monday", "wed", "5"})

	// Re-parsing the normalized numeric output yields the same set.
	numeric := make([]string, len(first))
	for i, wd := range first {
		numeric[i] = fmt.Sprint(int(wd))
	}
	assert.Equal(t, first, ParseAllowedWeekdays(numeric))
	assert.Equal(t, first, ParseAllowedWeekdays(first))
}

func TestParseAllowedWeekdaysCaseInsensitive(t *testing.T) {
	for _, token := range []string{"Monday", "MONDAY", "monday", "mon", "Mon", "1"} {
		assert.Equal(t, []time.Weekday{time.Monday}, ParseAllowedWeekdays([]string{token}), token)
	}
}

func TestAllWeekdays(t *testing.T) {
	all := AllWeekdays()
	assert.Len(t, all, 7)
	assert.Equal(t, time.Sunday, all[0])
	assert.Equal(t, time.Saturday, all[6])
}
