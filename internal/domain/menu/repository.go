package menu

import (
	"context"
)

// Repository defines the operations for persisting and retrieving menu
// records. Implementations must guarantee that Upsert is an atomic
// insert-or-replace keyed by date, so concurrent upserts for the same
// date serialize at the store.
type Repository interface {
	// GetByDate returns the record for the date or the store's
	// not-found error when absent.
	GetByDate(ctx context.Context, date string) (*Record, error)
	// Upsert atomically inserts or wholesale-replaces the slots for
	// the date and returns the persisted record.
	Upsert(ctx context.Context, date string, slots []Slot) (*Record, error)
	// Update replaces the slots for an existing date and returns the
	// number of changed rows (zero when the date is absent).
	Update(ctx context.Context, date string, slots []Slot) (int64, error)
	// Delete removes the record and returns the number of removed
	// rows (zero when the date is absent).
	Delete(ctx context.Context, date string) (int64, error)
	// ListAll returns every record ordered by date descending.
	ListAll(ctx context.Context) ([]*Record, error)
}
