// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"
	"errors"

	"github.com/mmynk/naijatax/internal/models"
)

// ErrNotFound is returned when a requested record does not exist
// (or belongs to another user).
var ErrNotFound = errors.New("not found")

// Store defines the interface for history and user storage operations.
// This abstraction allows swapping storage backends (SQLite, PostgreSQL, etc.)
// without changing the service layer.
type Store interface {
	HistoryStore

	CreateUser(ctx context.Context, user *models.User) error
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetUserByID(ctx context.Context, id string) (*models.User, error)

	// Close releases any resources held by the store.
	Close() error
}

// HistoryStore persists saved calculations. Every operation is scoped to a user.
type HistoryStore interface {
	// CreateHistoryRecord persists a record. ID and CreatedAt are filled in
	// when empty.
	CreateHistoryRecord(ctx context.Context, record *models.HistoryRecord) error

	// ListHistory returns up to limit records for the user, newest first.
	// A non-positive limit returns every record.
	ListHistory(ctx context.Context, userID string, limit int) ([]*models.HistoryRecord, error)

	// GetHistoryRecord returns ErrNotFound if the record is missing.
	GetHistoryRecord(ctx context.Context, userID, recordID string) (*models.HistoryRecord, error)

	// DeleteHistoryRecord returns ErrNotFound if nothing was deleted.
	DeleteHistoryRecord(ctx context.Context, userID, recordID string) error

	// ClearHistory removes all of the user's records and reports how many went.
	ClearHistory(ctx context.Context, userID string) (int64, error)
}
