package notify

import (
	"cafe_menu_service/internal/domain/menu"
)

// SentStore persists at most one sent-mark per (slot key, calendar
// date) pair. Entries older than seven days are eligible for pruning;
// enforcement is best effort and left to the implementation.
type SentStore interface {
	WasSent(slotKey menu.SlotKey, date string) (bool, error)
	MarkSent(slotKey menu.SlotKey, date string) error
}

// Transport presents a notification to the viewer. Delivery is
// fire-and-forget: failures are non-fatal and must never affect menu
// logic.
type Transport interface {
	Present(title, body, icon, tag string) error
}

// Gate decides whether a serving notification may fire: at most once
// per (slot key, calendar date), and only while the feature is
// enabled. The calendar date is the viewer-local day at evaluation
// time, not the menu's date field.
//
// The gate carries no transition detection. Callers must track the
// previously observed active slot and consult the gate only when it
// changes to a different slot.
type Gate struct {
	enabled bool
	store   SentStore
}

func NewGate(enabled bool, store SentStore) *Gate {
	return &Gate{enabled: enabled, store: store}
}

// ShouldFire reports whether a notification for the pair is permitted:
// the feature is enabled and no prior mark exists.
func (g *Gate) ShouldFire(slotKey menu.SlotKey, date string) (bool, error) {
	if !g.enabled {
		return false, nil
	}
	sent, err := g.store.WasSent(slotKey, date)
	if err != nil {
		return false, err
	}
	return !sent, nil
}

// MarkFired records that the pair's notification has been presented.
func (g *Gate) MarkFired(slotKey menu.SlotKey, date string) error {
	return g.store.MarkSent(slotKey, date)
}
