package database

import (
	"context"
	"database/sql/driver"
	"errors"
	"fmt"
	"net"

	"github.com/lib/pq"
)

// ErrMenuNotFound is returned when no menu record exists for a date.
var ErrMenuNotFound = errors.New("menu not found")

// StorageKind classifies a storage fault for retry decisions.
type StorageKind string

const (
	// StorageConflict is a unique-key race; the losing writer should
	// re-read rather than retry blindly.
	StorageConflict StorageKind = "CONFLICT"
	// StorageTransient is a connectivity or timeout fault, safe to
	// retry with backoff.
	StorageTransient StorageKind = "TRANSIENT"
	// StorageFatal is a schema or permission fault; retrying cannot
	// help.
	StorageFatal StorageKind = "FATAL"
)

// StorageError wraps an underlying persistence fault with its
// classification. Retry-with-backoff is the edge's policy; the
// repository and services only classify, never retry.
type StorageError struct {
	Op   string
	Kind StorageKind
	Err  error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage fault (%s) during %s: %v", e.Kind, e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// Retryable reports whether the fault is safe to retry with backoff.
func (e *StorageError) Retryable() bool {
	return e.Kind == StorageTransient
}

// wrapStorageError classifies err into the storage taxonomy. Unique
// violations become conflicts; connectivity, cancellation and timeout
// faults become transient; everything else is fatal.
func wrapStorageError(op string, err error) error {
	if err == nil {
		return nil
	}

	kind := StorageFatal
	var pqErr *pq.Error
	var netErr net.Error
	switch {
	case errors.As(err, &pqErr):
		switch {
		case pqErr.Code == "23505": // unique_violation
			kind = StorageConflict
		case pqErr.Code.Class() == "08": // connection exceptions
			kind = StorageTransient
		case pqErr.Code == "57014": // query_canceled (statement timeout)
			kind = StorageTransient
		}
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		kind = StorageTransient
	case errors.Is(err, driver.ErrBadConn):
		kind = StorageTransient
	case errors.As(err, &netErr):
		kind = StorageTransient
	}

	return &StorageError{Op: op, Kind: kind, Err: err}
}
