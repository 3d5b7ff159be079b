package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cafe_menu_service/internal/domain/menu"
)

func TestDayTypeOf(t *testing.T) {
	// 2024-01-13 was a Saturday, 14th a Sunday, 15th a Monday.
	assert.Equal(t, DaySaturday, DayTypeOf(time.Date(2024, 1, 13, 12, 0, 0, 0, time.UTC)))
	assert.Equal(t, DaySunday, DayTypeOf(time.Date(2024, 1, 14, 12, 0, 0, 0, time.UTC)))
	assert.Equal(t, DayWeekday, DayTypeOf(time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC)))
	assert.Equal(t, DayWeekday, DayTypeOf(time.Date(2024, 1, 19, 12, 0, 0, 0, time.UTC)))
}

func TestNewTable(t *testing.T) {
	t.Run("Canonical Weekday Pattern", func(t *testing.T) {
		table, err := NewTable(TableConfig{})
		require.NoError(t, err)

		windows := table.WindowsFor(DayWeekday)
		require.Len(t, windows, 4)
		assert.Equal(t, menu.SlotMorningMeal, windows[0].Key)
		assert.Equal(t, 8*60, windows[0].Start)
		assert.Equal(t, 15, windows[0].Duration)
		assert.Equal(t, menu.SlotMorningTea, windows[1].Key)
		assert.Equal(t, 10*60, windows[1].Start)
		assert.Equal(t, menu.SlotLunchMeal, windows[2].Key)
		assert.Equal(t, 90, windows[2].Duration)
		assert.Equal(t, menu.SlotAfternoonMeal, windows[3].Key)
		assert.Equal(t, DefaultAfternoonMinutes, windows[3].Duration)
	})

	t.Run("Sunday Is Always Closed", func(t *testing.T) {
		table, err := NewTable(TableConfig{})
		require.NoError(t, err)
		assert.Empty(t, table.WindowsFor(DaySunday))
	})

	t.Run("Saturday Half Day Drops Lunch And Afternoon", func(t *testing.T) {
		table, err := NewTable(TableConfig{SaturdayHalfDay: true})
		require.NoError(t, err)

		windows := table.WindowsFor(DaySaturday)
		require.Len(t, windows, 2)
		assert.Equal(t, menu.SlotMorningMeal, windows[0].Key)
		assert.Equal(t, menu.SlotMorningTea, windows[1].Key)
	})

	t.Run("Saturday Full Day Matches Weekday", func(t *testing.T) {
		table, err := NewTable(TableConfig{})
		require.NoError(t, err)
		assert.Equal(t, table.WindowsFor(DayWeekday), table.WindowsFor(DaySaturday))
	})

	t.Run("Configured Afternoon Duration", func(t *testing.T) {
		table, err := NewTable(TableConfig{AfternoonMinutes: 15})
		require.NoError(t, err)

		windows := table.WindowsFor(DayWeekday)
		assert.Equal(t, 15, windows[3].Duration)
	})

	t.Run("Windows Are Sorted And Non-Overlapping", func(t *testing.T) {
		table, err := NewTable(TableConfig{})
		require.NoError(t, err)

		for _, day := range []DayType{DaySunday, DaySaturday, DayWeekday} {
			windows := table.WindowsFor(day)
			for i := 1; i < len(windows); i++ {
				assert.GreaterOrEqual(t, windows[i].Start, windows[i-1].End())
			}
		}
	})
}

func TestSlotWindowStartClock(t *testing.T) {
	assert.Equal(t, "08:00", SlotWindow{Start: 8 * 60}.StartClock())
	assert.Equal(t, "15:00", SlotWindow{Start: 15 * 60}.StartClock())
	assert.Equal(t, "09:05", SlotWindow{Start: 9*60 + 5}.StartClock())
}
