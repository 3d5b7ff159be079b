package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cafe_menu_service/internal/domain/menu"
)

func newTestResolver(t *testing.T, cfg TableConfig) *Resolver {
	t.Helper()
	table, err := NewTable(cfg)
	require.NoError(t, err)
	return NewResolver(table)
}

// monday is 2024-01-15; the helper shifts by whole days.
func at(dayOffset, hour, minute int) time.Time {
	return time.Date(2024, 1, 15+dayOffset, hour, minute, 0, 0, time.UTC)
}

func TestResolveActiveSlot(t *testing.T) {
	r := newTestResolver(t, TableConfig{})

	t.Run("Boundary Minute Belongs To Starting Slot", func(t *testing.T) {
		res := r.Resolve(at(0, 8, 0))
		assert.Equal(t, menu.SlotMorningMeal, res.Active)
	})

	t.Run("Last Minute Of Window Still Active", func(t *testing.T) {
		res := r.Resolve(at(0, 8, 14))
		assert.Equal(t, menu.SlotMorningMeal, res.Active)
	})

	t.Run("End Minute Is Exclusive", func(t *testing.T) {
		res := r.Resolve(at(0, 8, 15))
		assert.NotEqual(t, menu.SlotMorningMeal, res.Active)
		assert.Empty(t, res.Active)
	})

	t.Run("Lunch Mid-Window", func(t *testing.T) {
		res := r.Resolve(at(0, 12, 45))
		assert.Equal(t, menu.SlotLunchMeal, res.Active)
		require.NotNil(t, res.Next)
		assert.Equal(t, menu.SlotAfternoonMeal, res.Next.Key)
		assert.Equal(t, "15:00", res.Next.Time)
		assert.Empty(t, res.Next.Day)
	})

	t.Run("No Slot Between Windows", func(t *testing.T) {
		res := r.Resolve(at(0, 11, 0))
		assert.Empty(t, res.Active)
		require.NotNil(t, res.Next)
		assert.Equal(t, menu.SlotLunchMeal, res.Next.Key)
		assert.Equal(t, "12:00", res.Next.Time)
	})
}

func TestResolveSunday(t *testing.T) {
	r := newTestResolver(t, TableConfig{})

	// Sunday 2024-01-14, sampled across the whole day.
	for _, hour := range []int{0, 8, 12, 15, 23} {
		res := r.Resolve(at(-1, hour, 30))
		assert.Empty(t, res.Active, "no slot may be active on Sunday")
		require.NotNil(t, res.Next)
		assert.Equal(t, menu.SlotMorningMeal, res.Next.Key)
		assert.Equal(t, "08:00", res.Next.Time)
		assert.Equal(t, "Tomorrow", res.Next.Day, "next points at Monday's first window")
	}
}

func TestResolveNextSlot(t *testing.T) {
	r := newTestResolver(t, TableConfig{})

	t.Run("Before First Window", func(t *testing.T) {
		res := r.Resolve(at(0, 7, 0))
		require.NotNil(t, res.Next)
		assert.Equal(t, menu.SlotMorningMeal, res.Next.Key)
		assert.Empty(t, res.Next.Day)
		assert.Equal(t, "08:00", res.Next.HumanTime())
	})

	t.Run("During Active Slot Next Is After Its End", func(t *testing.T) {
		res := r.Resolve(at(0, 8, 5))
		assert.Equal(t, menu.SlotMorningMeal, res.Active)
		require.NotNil(t, res.Next)
		assert.Equal(t, menu.SlotMorningTea, res.Next.Key)
	})

	t.Run("After Last Window Rolls Over To Tomorrow", func(t *testing.T) {
		res := r.Resolve(at(0, 16, 0))
		assert.Empty(t, res.Active)
		require.NotNil(t, res.Next)
		assert.Equal(t, menu.SlotMorningMeal, res.Next.Key)
		assert.Equal(t, "Tomorrow", res.Next.Day)
		assert.Equal(t, "Tomorrow 08:00", res.Next.HumanTime())
	})

	t.Run("Saturday Evening Skips Closed Sunday", func(t *testing.T) {
		// Saturday 2024-01-20 after the last window.
		res := r.Resolve(at(5, 18, 0))
		assert.Empty(t, res.Active)
		require.NotNil(t, res.Next)
		assert.Equal(t, menu.SlotMorningMeal, res.Next.Key)
		assert.Equal(t, "Monday", res.Next.Day)
	})
}

func TestResolveSaturdayHalfDay(t *testing.T) {
	r := newTestResolver(t, TableConfig{SaturdayHalfDay: true})

	t.Run("Morning Tea Still Served", func(t *testing.T) {
		res := r.Resolve(at(5, 10, 5))
		assert.Equal(t, menu.SlotMorningTea, res.Active)
	})

	t.Run("No Lunch On Saturday", func(t *testing.T) {
		res := r.Resolve(at(5, 12, 30))
		assert.Empty(t, res.Active)
		require.NotNil(t, res.Next)
		assert.Equal(t, "Monday", res.Next.Day)
	})
}

func TestResolveLookaheadBound(t *testing.T) {
	// A fully closed schedule must terminate with no next slot instead
	// of scanning forever.
	closed := &Table{windows: map[DayType][]SlotWindow{
		DaySunday:   {},
		DaySaturday: {},
		DayWeekday:  {},
	}}
	r := NewResolver(closed)

	res := r.Resolve(at(0, 12, 0))
	assert.Empty(t, res.Active)
	assert.Nil(t, res.Next)
}
