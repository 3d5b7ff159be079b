package schedule

import (
	"fmt"
	"time"

	"cafe_menu_service/internal/domain/menu"
)

// DayType classifies a calendar date for schedule lookup.
type DayType string

const (
	DaySunday   DayType = "SUNDAY"
	DaySaturday DayType = "SATURDAY"
	DayWeekday  DayType = "WEEKDAY"
)

// DayTypeOf derives the day type from the date's day of week
// (0=Sunday, 6=Saturday, 1-5=Weekday).
func DayTypeOf(t time.Time) DayType {
	switch t.Weekday() {
	case time.Sunday:
		return DaySunday
	case time.Saturday:
		return DaySaturday
	default:
		return DayWeekday
	}
}

// SlotWindow is one serving window of a day: start as minute-of-day
// plus duration in minutes. Start is inclusive, End exclusive.
type SlotWindow struct {
	Key      menu.SlotKey
	Start    int
	Duration int
}

// End returns the exclusive end minute of the window.
func (w SlotWindow) End() int {
	return w.Start + w.Duration
}

// StartClock renders the window start as 24-hour HH:MM.
func (w SlotWindow) StartClock() string {
	return fmt.Sprintf("%02d:%02d", w.Start/60, w.Start%60)
}

// TableConfig captures the points where the weekly schedule varies by
// deployment. Day-type variation is data held in one table, not code.
type TableConfig struct {
	// SaturdayHalfDay drops the lunch and afternoon windows from
	// Saturday, closing the cafe at noon.
	SaturdayHalfDay bool
	// AfternoonMinutes is the afternoon window duration; defaults to
	// DefaultAfternoonMinutes when zero.
	AfternoonMinutes int
}

// DefaultAfternoonMinutes is the afternoon-meal duration used when the
// config leaves it unset.
const DefaultAfternoonMinutes = 30

// Table is the immutable weekly schedule: day type to ordered,
// non-overlapping slot windows.
type Table struct {
	windows map[DayType][]SlotWindow
}

// NewTable builds the weekly schedule from cfg. The canonical weekday
// pattern is morning-meal 08:00+15m, morning-tea 10:00+15m, lunch-meal
// 12:00+90m, afternoon-meal 15:00 + the configured duration. Sunday is
// always closed. It fails if the resulting windows for any day are not
// sorted ascending and non-overlapping.
func NewTable(cfg TableConfig) (*Table, error) {
	afternoon := cfg.AfternoonMinutes
	if afternoon == 0 {
		afternoon = DefaultAfternoonMinutes
	}
	if afternoon < 0 {
		return nil, fmt.Errorf("afternoon duration must be positive, got %d", afternoon)
	}

	weekday := []SlotWindow{
		{Key: menu.SlotMorningMeal, Start: 8 * 60, Duration: 15},
		{Key: menu.SlotMorningTea, Start: 10 * 60, Duration: 15},
		{Key: menu.SlotLunchMeal, Start: 12 * 60, Duration: 90},
		{Key: menu.SlotAfternoonMeal, Start: 15 * 60, Duration: afternoon},
	}

	saturday := weekday
	if cfg.SaturdayHalfDay {
		saturday = weekday[:2]
	}

	t := &Table{windows: map[DayType][]SlotWindow{
		DaySunday:   {},
		DaySaturday: saturday,
		DayWeekday:  weekday,
	}}

	for day, ws := range t.windows {
		for i := 1; i < len(ws); i++ {
			if ws[i].Start < ws[i-1].End() {
				return nil, fmt.Errorf("schedule windows for %s overlap or are unsorted at %s", day, ws[i].Key)
			}
		}
	}
	return t, nil
}

// WindowsFor returns the ordered windows for the day type. The slice
// must not be mutated by callers.
func (t *Table) WindowsFor(day DayType) []SlotWindow {
	return t.windows[day]
}
