package app

import (
	"cafe_menu_service/internal/domain/menu"
	"cafe_menu_service/internal/domain/schedule"
)

// SlotLabels maps each slot key to its published display label.
var SlotLabels = map[menu.SlotKey]string{
	menu.SlotMorningMeal:   "Morning Meal",
	menu.SlotMorningTea:    "Morning Tea/Coffee",
	menu.SlotLunchMeal:     "Lunch Meal",
	menu.SlotAfternoonMeal: "Afternoon Coffee",
}

// DefaultSlots synthesizes the menu content shown for a date that has
// no stored record: empty for Sunday (closed), otherwise the canonical
// four-slot template. The result is never persisted.
func DefaultSlots(day schedule.DayType) []menu.Slot {
	if day == schedule.DaySunday {
		return []menu.Slot{}
	}

	return []menu.Slot{
		{
			Key:   menu.SlotMorningMeal,
			Label: "🍽️ Morning Meal",
			Time:  "08:00",
			Foods: []menu.FoodItem{
				{Name: "Breakfast Items"},
				{Name: "Toast"},
				{Name: "Eggs"},
			},
		},
		{
			Key:   menu.SlotMorningTea,
			Label: "☕ Morning Tea/Coffee",
			Time:  "10:00",
			Foods: []menu.FoodItem{
				{Name: "Coffee"},
				{Name: "Tea"},
				{Name: "Pastries"},
			},
		},
		{
			Key:   menu.SlotLunchMeal,
			Label: "🍛 Lunch Meal",
			Time:  "12:00",
			Foods: []menu.FoodItem{
				{Name: "Main Course"},
				{Name: "Rice"},
				{Name: "Vegetables"},
			},
		},
		{
			Key:   menu.SlotAfternoonMeal,
			Label: "☕ Afternoon Coffee",
			Time:  "15:00",
			Foods: []menu.FoodItem{
				{Name: "Coffee"},
				{Name: "Tea"},
				{Name: "Snacks"},
			},
		},
	}
}
