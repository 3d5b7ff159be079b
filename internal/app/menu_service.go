package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"cafe_menu_service/internal/domain/menu"
	idb "cafe_menu_service/internal/infra/database"
)

// Custom application-level errors for the menu service.
var ErrMenuNotFound = errors.New("menu for date not found")
var ErrSlotNotFound = errors.New("slot not found in menu")

// MenuService owns the canonical per-date menu records. All writes
// validate first; storage faults pass through already classified by
// the repository, and the service never retries internally.
type MenuService struct {
	menuRepo menu.Repository
	logger   *logrus.Entry
}

func NewMenuService(menuRepo menu.Repository, logger *logrus.Entry) *MenuService {
	return &MenuService{
		menuRepo: menuRepo,
		logger:   logger,
	}
}

// FindByDate returns the stored record for the date, or nil when none
// exists. It never fabricates a default; synthesizing one is the
// calling edge's policy.
func (s *MenuService) FindByDate(ctx context.Context, date string) (*menu.Record, error) {
	if err := menu.ValidateDate(date); err != nil {
		return nil, err
	}

	rec, err := s.menuRepo.GetByDate(ctx, date)
	if err != nil {
		if errors.Is(err, idb.ErrMenuNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get menu for date %s: %w", date, err)
	}
	return rec, nil
}

// Upsert validates the payload and atomically inserts or wholesale-
// replaces the record for the date (last writer wins).
func (s *MenuService) Upsert(ctx context.Context, date string, slots []menu.Slot) (*menu.Record, error) {
	if err := menu.Validate(date, slots); err != nil {
		return nil, err
	}

	rec, err := s.menuRepo.Upsert(ctx, date, slots)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert menu for date %s: %w", date, err)
	}

	s.logger.WithFields(logrus.Fields{"date": date, "slots": len(slots)}).Info("Menu upserted")
	return rec, nil
}

// Update replaces the slots of an existing record and fails with
// ErrMenuNotFound when no record exists for the date.
func (s *MenuService) Update(ctx context.Context, date string, slots []menu.Slot) (*menu.Record, error) {
	if err := menu.Validate(date, slots); err != nil {
		return nil, err
	}

	changed, err := s.menuRepo.Update(ctx, date, slots)
	if err != nil {
		return nil, fmt.Errorf("failed to update menu for date %s: %w", date, err)
	}
	if changed == 0 {
		return nil, ErrMenuNotFound
	}

	rec, err := s.menuRepo.GetByDate(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("failed to reload menu for date %s: %w", date, err)
	}

	s.logger.WithFields(logrus.Fields{"date": date, "slots": len(slots)}).Info("Menu updated")
	return rec, nil
}

// Delete removes the record for the date and fails with
// ErrMenuNotFound when nothing was removed.
func (s *MenuService) Delete(ctx context.Context, date string) error {
	if err := menu.ValidateDate(date); err != nil {
		return err
	}

	changed, err := s.menuRepo.Delete(ctx, date)
	if err != nil {
		return fmt.Errorf("failed to delete menu for date %s: %w", date, err)
	}
	if changed == 0 {
		return ErrMenuNotFound
	}

	s.logger.WithField("date", date).Info("Menu deleted")
	return nil
}

// AddFoodToSlot appends a food item to the named slot of an existing
// menu. This is a read-modify-write and is not atomic across
// processes; concurrent editors of the same date must be serialized by
// the caller.
func (s *MenuService) AddFoodToSlot(ctx context.Context, date string, slotKey menu.SlotKey, food menu.FoodItem) (*menu.Record, error) {
	if err := menu.ValidateDate(date); err != nil {
		return nil, err
	}
	if err := menu.ValidateFood(food); err != nil {
		return nil, err
	}

	rec, err := s.menuRepo.GetByDate(ctx, date)
	if err != nil {
		if errors.Is(err, idb.ErrMenuNotFound) {
			return nil, ErrMenuNotFound
		}
		return nil, fmt.Errorf("failed to get menu for date %s: %w", date, err)
	}

	rec = rec.Clone()
	slot := rec.FindSlot(slotKey)
	if slot == nil {
		return nil, ErrSlotNotFound
	}
	slot.Foods = append(slot.Foods, menu.FoodItem{Name: food.Name, Image: food.Image})

	return s.Update(ctx, date, rec.Slots)
}

// ListAll returns every stored record ordered by date descending.
func (s *MenuService) ListAll(ctx context.Context) ([]*menu.Record, error) {
	records, err := s.menuRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list menus: %w", err)
	}
	return records, nil
}
