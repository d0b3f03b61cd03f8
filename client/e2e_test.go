package client

import (
	"context"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sravanipallapu19/healthComp/internal/api"
	"github.com/sravanipallapu19/healthComp/internal/auth"
	"github.com/sravanipallapu19/healthComp/internal/stats"
	"github.com/sravanipallapu19/healthComp/internal/store/sqlite"
)

type upHealth struct{}

func (upHealth) IsHealthy() bool             { return true }
func (upHealth) Components() map[string]bool { return map[string]bool{"store": true} }

// TestClientAgainstService drives the full REST surface through the SDK.
func TestClientAgainstService(t *testing.T) {
	now := time.Date(2026, 10, 14, 15, 0, 0, 0, time.UTC)
	ctx := context.Background()

	st, err := sqlite.New(ctx, filepath.Join(t.TempDir(), "e2e.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	srv := httptest.NewServer(api.NewRouter(api.Deps{
		Store:     st,
		Issuer:    auth.NewIssuer("e2e-secret", time.Hour),
		Health:    upHealth{},
		Log:       zerolog.Nop(),
		StreakCap: stats.DefaultStreakCap,
		Now:       func() time.Time { return now },
	}))
	t.Cleanup(srv.Close)

	c, err := New(srv.URL, WithRetry(1))
	require.NoError(t, err)

	h, err := c.Health(ctx)
	require.NoError(t, err)
	assert.True(t, h.Healthy())

	_, err = c.ListEntries(ctx, EntryFilter{})
	require.ErrorIs(t, err, ErrUnauthorized)

	_, err = c.Register(ctx, RegisterRequest{Email: "ada@example.com", Password: "correct horse", TimeZone: "UTC"})
	require.NoError(t, err)
	_, err = c.Register(ctx, RegisterRequest{Email: "ada@example.com", Password: "correct horse"})
	require.ErrorIs(t, err, ErrConflict)

	_, err = c.Login(ctx, "ada@example.com", "wrong password")
	require.ErrorIs(t, err, ErrUnauthorized)
	login, err := c.Login(ctx, "ada@example.com", "correct horse")
	require.NoError(t, err)
	c.SetToken(login.Token)

	today := now.Add(-time.Hour)
	yesterday := now.Add(-24 * time.Hour)
	first, err := c.CreateEntry(ctx, CreateEntryRequest{Title: "today", Content: "c", Mood: "happy", Date: &today})
	require.NoError(t, err)
	_, err = c.CreateEntry(ctx, CreateEntryRequest{Title: "yesterday", Content: "c", Emotion: "calm", Date: &yesterday})
	require.NoError(t, err)

	_, err = c.CreateEntry(ctx, CreateEntryRequest{Title: "no content"})
	require.ErrorIs(t, err, ErrValidation)

	list, err := c.ListEntries(ctx, EntryFilter{})
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, first.ID, list[0].ID)
	assert.Equal(t, today.Unix(), list[0].When().Unix())

	s, err := c.GetJournalStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, Stats{Total: 2, ByMood: map[string]int{"happy": 1, "calm": 1}, Streak: 2}, *s)

	sad := "sad"
	upd, err := c.UpdateEntry(ctx, first.ID, UpdateEntryRequest{Mood: &sad})
	require.NoError(t, err)
	assert.Equal(t, "sad", upd.Mood)

	fav, err := c.ToggleFavorite(ctx, first.ID, true)
	require.NoError(t, err)
	assert.True(t, fav.IsFavorite)

	require.NoError(t, c.DeleteEntry(ctx, first.ID))
	require.ErrorIs(t, c.DeleteEntry(ctx, first.ID), ErrNotFound)

	s, err = c.GetJournalStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, s.Total)
	assert.Equal(t, 0, s.Streak)

	ts := now.Add(-2 * time.Hour)
	m, err := c.LogMood(ctx, LogMoodRequest{Rating: 7, Emotions: []string{"joy"}, Timestamp: &ts})
	require.NoError(t, err)
	assert.NotEmpty(t, m.ID)
	_, err = c.LogMood(ctx, LogMoodRequest{Rating: 11})
	require.ErrorIs(t, err, ErrValidation)

	hist, err := c.MoodHistory(ctx, nil, nil)
	require.NoError(t, err)
	require.Len(t, hist, 1)
	assert.Equal(t, 7, hist[0].Rating)

	ms, err := c.MoodStats(ctx)
	require.NoError(t, err)
	assert.InDelta(t, 7.0, ms.WeeklyAverage, 1e-9)
	require.NotEmpty(t, ms.TopEmotions)
	assert.Equal(t, "joy", ms.TopEmotions[0].Emotion)
	require.Len(t, ms.Daily, 1)
	assert.Equal(t, "2026-10-14", ms.Daily[0].Day)
}
