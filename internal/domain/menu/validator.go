package menu

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

// MaxFoodNameLength caps food item names, measured in characters.
const MaxFoodNameLength = 100

var (
	dateFormatRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	timeFormatRe = regexp.MustCompile(`^([0-1]?[0-9]|2[0-3]):[0-5][0-9]$`)
)

// ValidationError reports the first violated validation rule. It is
// always recoverable by the caller correcting the input and is never
// retried automatically.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

func validationErrorf(format string, args ...interface{}) *ValidationError {
	return &ValidationError{Reason: fmt.Sprintf(format, args...)}
}

// ValidateDate checks that date is in YYYY-MM-DD form.
func ValidateDate(date string) error {
	if date == "" {
		return &ValidationError{Reason: "date is required"}
	}
	if !dateFormatRe.MatchString(date) {
		return &ValidationError{Reason: "date must be in YYYY-MM-DD format"}
	}
	return nil
}

// ValidateFood checks a single food item: non-empty name of at most
// MaxFoodNameLength characters. Image is opaque and never validated.
func ValidateFood(food FoodItem) error {
	if strings.TrimSpace(food.Name) == "" {
		return &ValidationError{Reason: "food item must have a name"}
	}
	if utf8.RuneCountInString(food.Name) > MaxFoodNameLength {
		return validationErrorf("food item name cannot exceed %d characters", MaxFoodNameLength)
	}
	return nil
}

// ValidateSlots applies the structural rules for a slot list in order;
// the first failure wins. An empty list is valid and represents a
// closed day.
func ValidateSlots(slots []Slot) error {
	var invalid []string
	for _, s := range slots {
		if !IsValidSlotKey(s.Key) {
			invalid = append(invalid, string(s.Key))
		}
	}
	if len(invalid) > 0 {
		return validationErrorf("invalid slot keys: %s", strings.Join(invalid, ", "))
	}

	seen := make(map[SlotKey]struct{}, len(slots))
	for _, s := range slots {
		if _, dup := seen[s.Key]; dup {
			return &ValidationError{Reason: "duplicate slot keys are not allowed"}
		}
		seen[s.Key] = struct{}{}
	}

	for i, s := range slots {
		if s.Key == "" || s.Label == "" || s.Time == "" {
			return validationErrorf("slot at index %d is missing required fields (key, label, time)", i)
		}
		if !timeFormatRe.MatchString(s.Time) {
			return validationErrorf("slot at index %d has invalid time format, must be HH:MM", i)
		}
		for j, food := range s.Foods {
			if err := ValidateFood(food); err != nil {
				return validationErrorf("slot %d, food %d: %s", i, j, err.Error())
			}
		}
	}
	return nil
}

// Validate checks a full menu payload: the date first, then the slots.
func Validate(date string, slots []Slot) error {
	if err := ValidateDate(date); err != nil {
		return err
	}
	return ValidateSlots(slots)
}
