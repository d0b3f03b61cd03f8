package store

import (
	"context"

	"github.com/sravanipallapu19/healthComp/internal/model"
)

// Store exposes persistence operations required by services.
// Implementations live under internal/store/<driver>/ (sqlite, postgres).
//
// Lookups of missing rows return an error wrapping model.ErrNotFound;
// duplicate unique keys return one wrapping model.ErrConflict.
type Store interface {
	Users() Users
	Entries() Entries
	Moods() Moods

	HealthPing(ctx context.Context) error
	Close() error
}

type Users interface {
	Create(ctx context.Context, u *model.User) (*model.User, error)
	Get(ctx context.Context, userID string) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
}

// Entries stores journal entries. Every method is scoped to one user; an
// entry owned by someone else is reported as not found.
type Entries interface {
	Create(ctx context.Context, e *model.JournalEntry) (*model.JournalEntry, error)
	// List returns matching entries newest first.
	List(ctx context.Context, req model.ListEntriesRequest) ([]*model.JournalEntry, error)
	GetByID(ctx context.Context, userID, entryID string) (*model.JournalEntry, error)
	// Update overwrites the mutable fields of e.
	Update(ctx context.Context, e *model.JournalEntry) (*model.JournalEntry, error)
	SetFavorite(ctx context.Context, userID, entryID string, favorite bool) (*model.JournalEntry, error)
	Delete(ctx context.Context, userID, entryID string) error
}

type Moods interface {
	Create(ctx context.Context, m *model.MoodEntry) (*model.MoodEntry, error)
	// List returns matching check-ins oldest first.
	List(ctx context.Context, req model.ListMoodsRequest) ([]*model.MoodEntry, error)
}
