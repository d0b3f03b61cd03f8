package services

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/sravanipallapu19/healthComp/internal/auth"
	"github.com/sravanipallapu19/healthComp/internal/model"
	"github.com/sravanipallapu19/healthComp/internal/store"
	"github.com/sravanipallapu19/healthComp/internal/store/sqlite"
)

var fixedNow = time.Date(2026, 10, 14, 15, 0, 0, 0, time.UTC)

func newStore(t *testing.T) store.Store {
	t.Helper()
	s, err := sqlite.New(context.Background(), filepath.Join(t.TempDir(), "svc.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func newUsers(s store.Store) *UserService {
	us := NewUserService(s, auth.NewIssuer("test-secret", time.Hour))
	us.cost = bcrypt.MinCost
	return us
}

func register(t *testing.T, us *UserService, email, tz string) *model.User {
	t.Helper()
	u, err := us.Register(context.Background(), RegisterRequest{Email: email, Password: "correct horse", TimeZone: tz})
	require.NoError(t, err)
	return u
}

func TestUserService_RegisterAndLogin(t *testing.T) {
	ctx := context.Background()
	us := newUsers(newStore(t))

	u := register(t, us, "  Alice@Example.com ", "")
	assert.Equal(t, "alice@example.com", u.Email)
	assert.Equal(t, "UTC", u.TimeZone)
	assert.NotEqual(t, "correct horse", u.PasswordHash)

	_, err := us.Register(ctx, RegisterRequest{Email: "alice@example.com", Password: "another-one"})
	assert.True(t, errors.Is(err, model.ErrConflict))

	_, err = us.Register(ctx, RegisterRequest{Email: "bob@example.com", Password: "short"})
	assert.True(t, errors.Is(err, model.ErrValidation))

	token, got, err := us.Login(ctx, "ALICE@example.com", "correct horse")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, u.UserID, got.UserID)

	claims, err := us.issuer.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, u.UserID, claims.UserID)

	_, _, err = us.Login(ctx, "alice@example.com", "wrong password")
	assert.True(t, errors.Is(err, model.ErrUnauthorized))
	_, _, err = us.Login(ctx, "nobody@example.com", "whatever1")
	assert.True(t, errors.Is(err, model.ErrUnauthorized))
}

func TestJournalService_CRUDAndStats(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)
	u := register(t, newUsers(s), "j@example.com", "UTC")

	js := NewJournalService(s, 100)
	js.now = func() time.Time { return fixedNow }

	today, err := js.CreateEntry(ctx, u.UserID, model.JournalEntry{Title: "today", Content: "c", Mood: "happy"})
	require.NoError(t, err)
	assert.True(t, today.Date.Equal(fixedNow), "zero date defaults to now")

	_, err = js.CreateEntry(ctx, u.UserID, model.JournalEntry{Content: "c", Emotion: "calm", Date: fixedNow.Add(-24 * time.Hour)})
	require.NoError(t, err)
	_, err = js.CreateEntry(ctx, u.UserID, model.JournalEntry{Content: "c", Mood: "happy", Date: fixedNow.Add(-72 * time.Hour)})
	require.NoError(t, err)

	_, err = js.CreateEntry(ctx, u.UserID, model.JournalEntry{Title: "no content"})
	assert.True(t, errors.Is(err, model.ErrValidation))

	st, err := js.Stats(ctx, u.UserID)
	require.NoError(t, err)
	assert.Equal(t, 3, st.Total)
	assert.Equal(t, map[string]int{"happy": 2, "calm": 1}, st.ByMood)
	assert.Equal(t, 2, st.Streak)

	mood := "sad"
	upd, err := js.UpdateEntry(ctx, u.UserID, today.ID, model.EntryPatch{Mood: &mood})
	require.NoError(t, err)
	assert.Equal(t, "sad", upd.Mood)
	assert.Equal(t, "today", upd.Title, "untouched fields survive a patch")

	fav, err := js.SetFavorite(ctx, u.UserID, today.ID, true)
	require.NoError(t, err)
	assert.True(t, fav.IsFavorite)

	require.NoError(t, js.DeleteEntry(ctx, u.UserID, today.ID))
	st, err = js.Stats(ctx, u.UserID)
	require.NoError(t, err)
	assert.Equal(t, 2, st.Total)
	assert.Equal(t, 0, st.Streak)

	_, err = js.UpdateEntry(ctx, u.UserID, "missing", model.EntryPatch{Mood: &mood})
	assert.True(t, errors.Is(err, model.ErrNotFound))
}

func TestJournalService_StatsUseUserZone(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)
	u := register(t, newUsers(s), "tz@example.com", "America/New_York")

	js := NewJournalService(s, 100)
	js.now = func() time.Time { return fixedNow }

	// 02:00 UTC on the 14th is the evening of the 13th in New York.
	_, err := js.CreateEntry(ctx, u.UserID, model.JournalEntry{Content: "late", Date: time.Date(2026, 10, 14, 2, 0, 0, 0, time.UTC)})
	require.NoError(t, err)

	st, err := js.Stats(ctx, u.UserID)
	require.NoError(t, err)
	assert.Equal(t, 0, st.Streak)
}

func TestMoodService_LogHistoryStats(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)
	u := register(t, newUsers(s), "m@example.com", "UTC")

	ms := NewMoodService(s)
	ms.now = func() time.Time { return fixedNow }

	for _, m := range []model.MoodEntry{
		{Rating: 8, Emotions: []string{"joy"}},
		{Rating: 6, Emotions: []string{"joy", "calm"}, Timestamp: fixedNow.Add(-48 * time.Hour)},
		{Rating: 4, Timestamp: fixedNow.Add(-8 * 24 * time.Hour)},
		{Rating: 2, Timestamp: fixedNow.Add(-40 * 24 * time.Hour)},
	} {
		_, err := ms.LogMood(ctx, u.UserID, m)
		require.NoError(t, err)
	}

	_, err := ms.LogMood(ctx, u.UserID, model.MoodEntry{Rating: 11})
	assert.True(t, errors.Is(err, model.ErrValidation))

	hist, err := ms.History(ctx, u.UserID, nil, nil)
	require.NoError(t, err)
	assert.Len(t, hist, 3, "default window is the last 30 days")

	st, err := ms.Stats(ctx, u.UserID)
	require.NoError(t, err)
	assert.InDelta(t, 7.0, st.WeeklyAverage, 1e-9)
	assert.InDelta(t, 6.0, st.MonthlyAverage, 1e-9)
	assert.InDelta(t, 0.75, st.Improvement, 1e-9)
	require.NotEmpty(t, st.TopEmotions)
	assert.Equal(t, "joy", st.TopEmotions[0].Emotion)
	assert.Len(t, st.Daily, 2)
}

func TestMoodService_StatsWindowFollowsCalendarDays(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)
	u := register(t, newUsers(s), "dst@example.com", "America/New_York")

	// 23:30 EST on Nov 10. The 30 counted days start at 00:00 EDT on Oct 12,
	// which is more than 30*24h ago because Nov 1 lasted 25 hours.
	now := time.Date(2026, 11, 11, 4, 30, 0, 0, time.UTC)
	ms := NewMoodService(s)
	ms.now = func() time.Time { return now }

	for _, m := range []model.MoodEntry{
		{Rating: 9, Emotions: []string{"hopeful"}, Timestamp: time.Date(2026, 10, 12, 4, 15, 0, 0, time.UTC)},
		{Rating: 1, Emotions: []string{"tired"}, Timestamp: time.Date(2026, 10, 12, 3, 30, 0, 0, time.UTC)},
	} {
		_, err := ms.LogMood(ctx, u.UserID, m)
		require.NoError(t, err)
	}

	st, err := ms.Stats(ctx, u.UserID)
	require.NoError(t, err)
	assert.Equal(t, 1, st.Count)
	assert.InDelta(t, 9.0, st.MonthlyAverage, 1e-9)
	require.Len(t, st.TopEmotions, 1)
	assert.Equal(t, "hopeful", st.TopEmotions[0].Emotion)
}
