package menu

import (
	"encoding/json"
	"time"
)

// SlotKey identifies one of the fixed serving windows of the day.
// The vocabulary is closed; payloads carrying any other key are rejected.
type SlotKey string

const (
	SlotMorningMeal   SlotKey = "morning-meal"
	SlotMorningTea    SlotKey = "morning-tea"
	SlotLunchMeal     SlotKey = "lunch-meal"
	SlotAfternoonMeal SlotKey = "afternoon-meal"
)

// SlotKeys lists the closed vocabulary in canonical serving order.
var SlotKeys = []SlotKey{SlotMorningMeal, SlotMorningTea, SlotLunchMeal, SlotAfternoonMeal}

// IsValidSlotKey reports whether k belongs to the closed vocabulary.
func IsValidSlotKey(k SlotKey) bool {
	for _, valid := range SlotKeys {
		if k == valid {
			return true
		}
	}
	return false
}

// FoodItem is a single dish or drink offered within a slot.
// Image is an opaque string (usually a URL) and may be empty.
type FoodItem struct {
	Name  string `json:"name"`
	Image string `json:"image"`
}

// UnmarshalJSON accepts both the canonical object shape and the bare
// string shape found in historical payloads ("Rice" instead of
// {"name":"Rice","image":""}). Normalizing here keeps every consumer
// on the canonical shape.
func (f *FoodItem) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var name string
		if err := json.Unmarshal(data, &name); err != nil {
			return err
		}
		*f = FoodItem{Name: name}
		return nil
	}

	type foodItemAlias FoodItem
	var alias foodItemAlias
	if err := json.Unmarshal(data, &alias); err != nil {
		return err
	}
	*f = FoodItem(alias)
	return nil
}

// Slot is a serving window with its published content.
//
// Time is admin-entered display data in 24-hour HH:MM form. Whether a
// slot is currently being served is decided by the weekly schedule
// table, never by this field; the two are intentionally decoupled.
type Slot struct {
	Key   SlotKey    `json:"key"`
	Label string     `json:"label"`
	Time  string     `json:"time"`
	Foods []FoodItem `json:"foods"`
}

// Record is the canonical per-date menu. Date ("YYYY-MM-DD") is the
// unique key; Slots hold at most one entry per SlotKey.
type Record struct {
	Date      string    `json:"date"`
	Slots     []Slot    `json:"slots"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Clone returns a deep copy of the record. Callers that mutate slots
// (read-modify-write flows) must work on a copy so shared instances,
// e.g. cached ones, stay intact.
func (r *Record) Clone() *Record {
	if r == nil {
		return nil
	}
	out := *r
	out.Slots = CloneSlots(r.Slots)
	return &out
}

// CloneSlots deep-copies a slot list including the food items.
func CloneSlots(slots []Slot) []Slot {
	if slots == nil {
		return nil
	}
	out := make([]Slot, len(slots))
	for i, s := range slots {
		out[i] = s
		out[i].Foods = append([]FoodItem(nil), s.Foods...)
	}
	return out
}

// FindSlot returns the slot with the given key, or nil if the record
// does not contain it.
func (r *Record) FindSlot(key SlotKey) *Slot {
	for i := range r.Slots {
		if r.Slots[i].Key == key {
			return &r.Slots[i]
		}
	}
	return nil
}
