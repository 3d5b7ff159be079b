package schedule

import (
	"time"

	"cafe_menu_service/internal/domain/menu"
)

// maxLookaheadDays bounds the next-slot scan so a degenerate schedule
// (every day closed) cannot loop forever.
const maxLookaheadDays = 7

// NextSlot describes the upcoming serving window. Day is empty when
// the window is later today, "Tomorrow" for the immediate next day,
// otherwise the weekday name.
type NextSlot struct {
	Key  menu.SlotKey `json:"key"`
	Time string       `json:"time"`
	Day  string       `json:"day,omitempty"`
}

// HumanTime renders the next window for display, e.g. "12:00" or
// "Tomorrow 08:00".
func (n NextSlot) HumanTime() string {
	if n.Day == "" {
		return n.Time
	}
	return n.Day + " " + n.Time
}

// Resolution is the serving state at one instant. Active is empty when
// no slot is being served; Next is nil only when no window exists in
// the coming week.
type Resolution struct {
	Active menu.SlotKey
	Next   *NextSlot
}

// Resolver maps wall-clock timestamps to serving-slot state against a
// fixed weekly table. It is pure and safe for concurrent use.
type Resolver struct {
	table *Table
}

func NewResolver(table *Table) *Resolver {
	return &Resolver{table: table}
}

// Resolve computes the serving state at the given instant. The
// timestamp is an explicit parameter; the resolver never reads an
// ambient clock. A window's start minute is inclusive and its end
// minute exclusive, so the exact boundary minute belongs to the
// starting slot.
func (r *Resolver) Resolve(at time.Time) Resolution {
	minuteOfDay := at.Hour()*60 + at.Minute()
	windows := r.table.WindowsFor(DayTypeOf(at))

	var res Resolution
	searchFrom := minuteOfDay
	for _, w := range windows {
		if w.Start <= minuteOfDay && minuteOfDay < w.End() {
			res.Active = w.Key
			searchFrom = w.End() - 1
			break
		}
	}

	for _, w := range windows {
		if w.Start > searchFrom {
			res.Next = &NextSlot{Key: w.Key, Time: w.StartClock()}
			return res
		}
	}

	for ahead := 1; ahead <= maxLookaheadDays; ahead++ {
		day := at.AddDate(0, 0, ahead)
		windows := r.table.WindowsFor(DayTypeOf(day))
		if len(windows) == 0 {
			continue
		}
		label := day.Weekday().String()
		if ahead == 1 {
			label = "Tomorrow"
		}
		res.Next = &NextSlot{Key: windows[0].Key, Time: windows[0].StartClock(), Day: label}
		return res
	}
	return res
}
