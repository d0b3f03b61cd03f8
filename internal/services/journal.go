package services

import (
	"context"
	"time"

	"github.com/sravanipallapu19/healthComp/internal/model"
	"github.com/sravanipallapu19/healthComp/internal/stats"
	"github.com/sravanipallapu19/healthComp/internal/store"
	"github.com/sravanipallapu19/healthComp/internal/validate"
)

// JournalService coordinates journal entry persistence and statistics.
type JournalService struct {
	store     store.Store
	streakCap int
	now       func() time.Time
}

func NewJournalService(s store.Store, streakCap int) *JournalService {
	return &JournalService{store: s, streakCap: streakCap, now: time.Now}
}

func (s *JournalService) ListEntries(ctx context.Context, req model.ListEntriesRequest) ([]*model.JournalEntry, error) {
	return s.store.Entries().List(ctx, req)
}

// CreateEntry validates e and stores it for userID. Id, owner and
// lastModified are always assigned here; a zero date becomes now.
func (s *JournalService) CreateEntry(ctx context.Context, userID string, e model.JournalEntry) (*model.JournalEntry, error) {
	if err := validate.CreateEntry(e); err != nil {
		return nil, err
	}
	e.ID = ""
	e.UserID = userID
	if e.Date.IsZero() {
		e.Date = s.now()
	}
	return s.store.Entries().Create(ctx, &e)
}

func (s *JournalService) GetEntry(ctx context.Context, userID, entryID string) (*model.JournalEntry, error) {
	return s.store.Entries().GetByID(ctx, userID, entryID)
}

// UpdateEntry applies patch to an existing entry.
func (s *JournalService) UpdateEntry(ctx context.Context, userID, entryID string, patch model.EntryPatch) (*model.JournalEntry, error) {
	if err := validate.UpdateEntry(patch); err != nil {
		return nil, err
	}
	cur, err := s.store.Entries().GetByID(ctx, userID, entryID)
	if err != nil {
		return nil, err
	}
	next := patch.Apply(*cur)
	return s.store.Entries().Update(ctx, &next)
}

func (s *JournalService) SetFavorite(ctx context.Context, userID, entryID string, favorite bool) (*model.JournalEntry, error) {
	return s.store.Entries().SetFavorite(ctx, userID, entryID, favorite)
}

func (s *JournalService) DeleteEntry(ctx context.Context, userID, entryID string) error {
	return s.store.Entries().Delete(ctx, userID, entryID)
}

// Stats derives total, histogram and streak over all of the user's entries
// using the user's time zone for day boundaries.
func (s *JournalService) Stats(ctx context.Context, userID string) (stats.Stats, error) {
	u, err := s.store.Users().Get(ctx, userID)
	if err != nil {
		return stats.Stats{}, err
	}
	list, err := s.store.Entries().List(ctx, model.ListEntriesRequest{UserID: userID})
	if err != nil {
		return stats.Stats{}, err
	}
	entries := make([]model.JournalEntry, 0, len(list))
	for _, e := range list {
		entries = append(entries, *e)
	}
	engine := stats.New(
		stats.WithLocation(u.Location()),
		stats.WithClock(s.now),
		stats.WithStreakCap(s.streakCap),
	)
	return engine.RecomputeAll(entries), nil
}

// SetClock overrides the time source used for default dates and statistics.
func (s *JournalService) SetClock(now func() time.Time) { s.now = now }
