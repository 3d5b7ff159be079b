package kvstore

import (
	"sync"

	"cafe_menu_service/internal/domain/menu"
)

// MemorySentStore is an in-process SentStore. Marks do not survive a
// restart; it backs tests and deployments that accept a repeated
// notification after a crash.
type MemorySentStore struct {
	mu   sync.Mutex
	sent map[string]struct{}
}

func NewMemorySentStore() *MemorySentStore {
	return &MemorySentStore{sent: make(map[string]struct{})}
}

func (s *MemorySentStore) WasSent(slotKey menu.SlotKey, date string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.sent[date+"/"+string(slotKey)]
	return ok, nil
}

func (s *MemorySentStore) MarkSent(slotKey menu.SlotKey, date string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sent[date+"/"+string(slotKey)] = struct{}{}
	return nil
}
