package app

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"cafe_menu_service/internal/domain/menu"
	"cafe_menu_service/internal/domain/notify"
	"cafe_menu_service/internal/domain/schedule"
)

// ServingService watches serving-slot transitions and requests one
// notification per slot start. It owns the transition detection the
// gate itself does not do: a notification is considered only when the
// active slot changes from a different value (including from none) to
// a new slot.
type ServingService struct {
	resolver  *schedule.Resolver
	menus     *MenuService
	gate      *notify.Gate
	transport notify.Transport
	iconURL   string
	logger    *logrus.Entry

	mu         sync.Mutex
	lastActive menu.SlotKey
}

func NewServingService(
	resolver *schedule.Resolver,
	menus *MenuService,
	gate *notify.Gate,
	transport notify.Transport,
	iconURL string,
	logger *logrus.Entry,
) *ServingService {
	return &ServingService{
		resolver:  resolver,
		menus:     menus,
		gate:      gate,
		transport: transport,
		iconURL:   iconURL,
		logger:    logger,
	}
}

// Resolve exposes the current serving state for the given instant.
func (s *ServingService) Resolve(at time.Time) schedule.Resolution {
	return s.resolver.Resolve(at)
}

// Tick evaluates the serving state at now and fires a notification on
// a slot-start transition, subject to the gate's once-per-day policy.
// Transport failures are logged and swallowed; they must never affect
// menu logic, and an undelivered notification leaves the gate unmarked
// so a later tick inside the window may try again.
func (s *ServingService) Tick(ctx context.Context, now time.Time) {
	res := s.resolver.Resolve(now)

	s.mu.Lock()
	transitioned := res.Active != "" && res.Active != s.lastActive
	s.lastActive = res.Active
	s.mu.Unlock()

	if !transitioned {
		return
	}

	date := now.Format("2006-01-02")
	tickLogger := s.logger.WithFields(logrus.Fields{"slot": res.Active, "date": date})

	ok, err := s.gate.ShouldFire(res.Active, date)
	if err != nil {
		tickLogger.WithError(err).Warn("Could not consult notification gate")
		return
	}
	if !ok {
		tickLogger.Debug("Notification suppressed by gate")
		return
	}

	label := s.slotLabel(ctx, date, now, res.Active)
	title := fmt.Sprintf("🍽️ %s is Now Serving!", label)
	body := fmt.Sprintf("It's time for %s! Check out what's available at the cafe.", label)
	tag := "serving-" + string(res.Active)

	if err := s.transport.Present(title, body, s.iconURL, tag); err != nil {
		tickLogger.WithError(err).Warn("Notification delivery failed")
		return
	}
	if err := s.gate.MarkFired(res.Active, date); err != nil {
		tickLogger.WithError(err).Warn("Could not record notification sent mark")
		return
	}
	tickLogger.Info("Serving notification sent")
}

// slotLabel prefers the label stored in today's menu and falls back to
// the default template's label for the slot.
func (s *ServingService) slotLabel(ctx context.Context, date string, now time.Time, key menu.SlotKey) string {
	rec, err := s.menus.FindByDate(ctx, date)
	if err != nil {
		s.logger.WithError(err).Warn("Could not load today's menu for notification label")
	} else if rec != nil {
		if slot := rec.FindSlot(key); slot != nil && slot.Label != "" {
			return slot.Label
		}
	}

	for _, slot := range DefaultSlots(schedule.DayTypeOf(now)) {
		if slot.Key == key {
			return slot.Label
		}
	}
	return SlotLabels[key]
}
