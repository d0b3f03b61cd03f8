package services

import (
	"context"
	"time"

	"github.com/sravanipallapu19/healthComp/internal/model"
	"github.com/sravanipallapu19/healthComp/internal/stats"
	"github.com/sravanipallapu19/healthComp/internal/store"
	"github.com/sravanipallapu19/healthComp/internal/validate"
)

const (
	defaultHistoryWindow = 30 * 24 * time.Hour
	summaryDays          = 30
	trendDays            = 7
)

// MoodStats is the dashboard payload of GET /api/mood/stats.
type MoodStats struct {
	stats.MoodSummary
	Daily []stats.DailyMood `json:"daily"`
}

// MoodService records mood check-ins and summarises them.
type MoodService struct {
	store store.Store
	now   func() time.Time
}

func NewMoodService(s store.Store) *MoodService {
	return &MoodService{store: s, now: time.Now}
}

// LogMood validates and stores a check-in; a zero timestamp becomes now.
func (s *MoodService) LogMood(ctx context.Context, userID string, m model.MoodEntry) (*model.MoodEntry, error) {
	if err := validate.MoodEntry(m); err != nil {
		return nil, err
	}
	m.ID = ""
	m.UserID = userID
	if m.Timestamp.IsZero() {
		m.Timestamp = s.now()
	}
	return s.store.Moods().Create(ctx, &m)
}

// History lists check-ins in [start, end]. A nil start means 30 days before
// end; a nil end means now.
func (s *MoodService) History(ctx context.Context, userID string, start, end *time.Time) ([]*model.MoodEntry, error) {
	if end == nil {
		now := s.now()
		end = &now
	}
	if start == nil {
		from := end.Add(-defaultHistoryWindow)
		start = &from
	}
	return s.store.Moods().List(ctx, model.ListMoodsRequest{UserID: userID, Start: start, End: end})
}

// Stats summarises the last 30 days in the user's time zone.
func (s *MoodService) Stats(ctx context.Context, userID string) (MoodStats, error) {
	u, err := s.store.Users().Get(ctx, userID)
	if err != nil {
		return MoodStats{}, err
	}
	loc := u.Location()
	engine := stats.New(stats.WithLocation(loc), stats.WithClock(s.now))
	// The summary counts whole calendar days, so the window opens at
	// midnight of the oldest counted day rather than 30*24h ago.
	start := engine.Today().AddDays(-(summaryDays - 1)).Midnight(loc)
	end := s.now()
	list, err := s.History(ctx, userID, &start, &end)
	if err != nil {
		return MoodStats{}, err
	}
	entries := make([]model.MoodEntry, 0, len(list))
	for _, m := range list {
		entries = append(entries, *m)
	}
	return MoodStats{
		MoodSummary: engine.SummarizeMoods(entries),
		Daily:       engine.DailyAverages(entries, trendDays),
	}, nil
}

// SetClock overrides the time source used for default timestamps and windows.
func (s *MoodService) SetClock(now func() time.Time) { s.now = now }
