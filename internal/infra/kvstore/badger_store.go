package kvstore

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/dgraph-io/badger/v3"

	"cafe_menu_service/internal/domain/menu"
)

// sentMarkTTL keeps dedup marks for seven days; Badger expires them
// afterwards, which covers the best-effort pruning the gate expects.
const sentMarkTTL = 7 * 24 * time.Hour

// BadgerSentStore persists notification sent-marks in a local BadgerDB
// so the once-per-slot-per-day guarantee survives restarts.
type BadgerSentStore struct {
	db *badger.DB
}

// NewBadgerSentStore opens (or creates) the Badger database under
// dataDir.
func NewBadgerSentStore(dataDir string) (*BadgerSentStore, error) {
	absPath, err := filepath.Abs(dataDir)
	if err != nil {
		return nil, fmt.Errorf("failed to get absolute path: %w", err)
	}

	opts := badger.DefaultOptions(absPath)
	opts.Logger = nil // Disable Badger's internal logger

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open BadgerDB: %w", err)
	}
	return &BadgerSentStore{db: db}, nil
}

func sentMarkKey(slotKey menu.SlotKey, date string) []byte {
	return []byte("notify-sent/" + date + "/" + string(slotKey))
}

func (s *BadgerSentStore) WasSent(slotKey menu.SlotKey, date string) (bool, error) {
	err := s.db.View(func(txn *badger.Txn) error {
		_, err := txn.Get(sentMarkKey(slotKey, date))
		return err
	})
	if err == badger.ErrKeyNotFound {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to read sent mark: %w", err)
	}
	return true, nil
}

func (s *BadgerSentStore) MarkSent(slotKey menu.SlotKey, date string) error {
	err := s.db.Update(func(txn *badger.Txn) error {
		entry := badger.NewEntry(sentMarkKey(slotKey, date), []byte("1")).WithTTL(sentMarkTTL)
		return txn.SetEntry(entry)
	})
	if err != nil {
		return fmt.Errorf("failed to write sent mark: %w", err)
	}
	return nil
}

// Close closes the underlying Badger database.
func (s *BadgerSentStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}
