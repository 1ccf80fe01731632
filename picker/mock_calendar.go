package picker

import (
	"github.com/samber/mo"
	"github.com/stretchr/testify/mock"

	"github.com/calensys/libdatepick/dateutil"
)

// MockCalendar implements the Calendar interface for testing. It is exported
// so host applications can assert on how the engine drives their adapter.
type MockCalendar struct {
	mock.Mock
}

// Rebuild implements the Calendar interface
func (m *MockCalendar) Rebuild(start, end mo.Option[dateutil.Date]) {
	m.Called(start, end)
}

// SetSelection implements the Calendar interface
func (m *MockCalendar) SetSelection(dates []dateutil.Date) {
	m.Called(dates)
}

// Redraw implements the Calendar interface
func (m *MockCalendar) Redraw() {
	m.Called()
}
