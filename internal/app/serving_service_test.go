package app

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cafe_menu_service/internal/domain/menu"
	"cafe_menu_service/internal/domain/notify"
	"cafe_menu_service/internal/domain/schedule"
	"cafe_menu_service/internal/infra/kvstore"
)

type fakeTransport struct {
	titles []string
	tags   []string
	err    error
}

func (t *fakeTransport) Present(title, body, icon, tag string) error {
	if t.err != nil {
		return t.err
	}
	t.titles = append(t.titles, title)
	t.tags = append(t.tags, tag)
	return nil
}

func newServingFixture(t *testing.T, transport *fakeTransport, gateEnabled bool) (*ServingService, *notify.Gate, *MenuService) {
	t.Helper()
	table, err := schedule.NewTable(schedule.TableConfig{})
	require.NoError(t, err)

	menus := NewMenuService(newFakeMenuRepo(), testLogger())
	gate := notify.NewGate(gateEnabled, kvstore.NewMemorySentStore())
	svc := NewServingService(schedule.NewResolver(table), menus, gate, transport, "", testLogger())
	return svc, gate, menus
}

// monday is 2024-01-15.
func mondayAt(hour, minute int) time.Time {
	return time.Date(2024, 1, 15, hour, minute, 0, 0, time.Local)
}

func TestServingTickFiresOnSlotStart(t *testing.T) {
	transport := &fakeTransport{}
	svc, _, _ := newServingFixture(t, transport, true)
	ctx := context.Background()

	svc.Tick(ctx, mondayAt(7, 59))
	assert.Empty(t, transport.tags, "nothing fires before the window")

	svc.Tick(ctx, mondayAt(8, 0))
	require.Len(t, transport.tags, 1)
	assert.Equal(t, "serving-morning-meal", transport.tags[0])

	svc.Tick(ctx, mondayAt(8, 1))
	svc.Tick(ctx, mondayAt(8, 10))
	assert.Len(t, transport.tags, 1, "polling inside the window is not a transition")

	svc.Tick(ctx, mondayAt(10, 0))
	require.Len(t, transport.tags, 2)
	assert.Equal(t, "serving-morning-tea", transport.tags[1])
}

func TestServingTickDedupsAcrossGapDays(t *testing.T) {
	transport := &fakeTransport{}
	svc, gate, _ := newServingFixture(t, transport, true)
	ctx := context.Background()

	svc.Tick(ctx, mondayAt(12, 0))
	require.Len(t, transport.tags, 1)

	// Next calendar day: the same slot fires again.
	tuesday := mondayAt(12, 0).AddDate(0, 0, 1)
	svc.Tick(ctx, tuesday.Add(-3*time.Hour)) // 09:00 gap resets the observed slot
	svc.Tick(ctx, tuesday)
	require.Len(t, transport.tags, 2)

	ok, err := gate.ShouldFire(menu.SlotLunchMeal, tuesday.Format("2006-01-02"))
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestServingTickRespectsDisabledGate(t *testing.T) {
	transport := &fakeTransport{}
	svc, _, _ := newServingFixture(t, transport, false)

	svc.Tick(context.Background(), mondayAt(8, 0))
	assert.Empty(t, transport.tags)
}

func TestServingTickUsesStoredMenuLabel(t *testing.T) {
	transport := &fakeTransport{}
	svc, _, menus := newServingFixture(t, transport, true)
	ctx := context.Background()

	_, err := menus.Upsert(ctx, mondayAt(0, 0).Format("2006-01-02"), []menu.Slot{{
		Key:   menu.SlotLunchMeal,
		Label: "Special Holiday Lunch",
		Time:  "12:00",
		Foods: []menu.FoodItem{{Name: "Injera"}},
	}})
	require.NoError(t, err)

	svc.Tick(ctx, mondayAt(12, 0))
	require.Len(t, transport.titles, 1)
	assert.Contains(t, transport.titles[0], "Special Holiday Lunch")
}

func TestServingTickFallsBackToDefaultLabel(t *testing.T) {
	transport := &fakeTransport{}
	svc, _, _ := newServingFixture(t, transport, true)

	svc.Tick(context.Background(), mondayAt(12, 0))
	require.Len(t, transport.titles, 1)
	assert.Contains(t, transport.titles[0], "Lunch Meal")
}

func TestServingTickDeliveryFailureLeavesGateUnmarked(t *testing.T) {
	transport := &fakeTransport{err: errors.New("network down")}
	svc, gate, _ := newServingFixture(t, transport, true)

	svc.Tick(context.Background(), mondayAt(8, 0))

	ok, err := gate.ShouldFire(menu.SlotMorningMeal, mondayAt(8, 0).Format("2006-01-02"))
	require.NoError(t, err)
	assert.True(t, ok, "an undelivered notification may be retried later")
}
