package stats

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sravanipallapu19/healthComp/internal/model"
)

var fixedNow = time.Date(2026, 10, 14, 15, 0, 0, 0, time.UTC)

func newTestEngine(opts ...Option) *Engine {
	base := []Option{WithLocation(time.UTC), WithClock(func() time.Time { return fixedNow })}
	return New(append(base, opts...)...)
}

// daysAgo returns an instant n days before fixedNow at the given hour.
func daysAgo(n, hour int) time.Time {
	d := fixedNow.AddDate(0, 0, -n)
	return time.Date(d.Year(), d.Month(), d.Day(), hour, 0, 0, 0, time.UTC)
}

func entry(id, mood string, date time.Time) model.JournalEntry {
	return model.JournalEntry{ID: id, Title: id, Content: "c", Mood: mood, Date: date}
}

func consecutive(n int) []model.JournalEntry {
	out := make([]model.JournalEntry, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, entry(fmt.Sprintf("e%d", i), "", daysAgo(i, 9)))
	}
	return out
}

func sum(m map[string]int) int {
	total := 0
	for _, v := range m {
		total += v
	}
	return total
}

func TestRecomputeAll_Empty(t *testing.T) {
	got := newTestEngine().RecomputeAll(nil)
	assert.Equal(t, 0, got.Total)
	assert.Equal(t, 0, got.Streak)
	require.NotNil(t, got.ByMood)
	assert.Empty(t, got.ByMood)
}

func TestRecomputeAll_TotalsAndHistogram(t *testing.T) {
	entries := []model.JournalEntry{
		entry("a", "happy", daysAgo(0, 8)),
		entry("b", "happy", daysAgo(1, 8)),
		entry("c", "sad", daysAgo(3, 8)),
		entry("d", "", daysAgo(4, 8)),
		{ID: "e", Emotion: "calm", Date: daysAgo(5, 8)},
	}
	got := newTestEngine().RecomputeAll(entries)

	assert.Equal(t, len(entries), got.Total)
	assert.Equal(t, map[string]int{"happy": 2, "sad": 1, "calm": 1}, got.ByMood)
	assert.Equal(t, 4, sum(got.ByMood), "histogram sum equals labelled entries")
	assert.Equal(t, 2, got.Streak)
}

func TestComputeStreak_NoEntryTodayIsZero(t *testing.T) {
	entries := []model.JournalEntry{
		entry("a", "", daysAgo(1, 8)),
		entry("b", "", daysAgo(2, 8)),
		entry("c", "", daysAgo(3, 8)),
	}
	assert.Equal(t, 0, newTestEngine().ComputeStreak(entries))
}

func TestComputeStreak_ThreeConsecutiveDays(t *testing.T) {
	assert.Equal(t, 3, newTestEngine().ComputeStreak(consecutive(3)))
}

func TestComputeStreak_GapYesterday(t *testing.T) {
	entries := []model.JournalEntry{
		entry("a", "", daysAgo(0, 8)),
		entry("b", "", daysAgo(2, 8)),
	}
	assert.Equal(t, 1, newTestEngine().ComputeStreak(entries))
}

func TestComputeStreak_SameDayCountsOnce(t *testing.T) {
	entries := []model.JournalEntry{
		entry("a", "", daysAgo(0, 8)),
		entry("b", "", daysAgo(0, 20)),
		entry("c", "", daysAgo(1, 12)),
	}
	assert.Equal(t, 2, newTestEngine().ComputeStreak(entries))
}

func TestComputeStreak_OrderIndependent(t *testing.T) {
	entries := consecutive(5)
	reversed := make([]model.JournalEntry, len(entries))
	for i := range entries {
		reversed[len(entries)-1-i] = entries[i]
	}
	e := newTestEngine()
	assert.Equal(t, e.ComputeStreak(entries), e.ComputeStreak(reversed))
}

func TestComputeStreak_CappedAtDefault(t *testing.T) {
	got := newTestEngine().ComputeStreak(consecutive(150))
	assert.Equal(t, DefaultStreakCap, got)

	got = newTestEngine().ComputeStreak(consecutive(101))
	assert.Equal(t, 100, got)
}

func TestComputeStreak_Unbounded(t *testing.T) {
	e := newTestEngine(WithStreakCap(0))
	assert.Equal(t, 150, e.ComputeStreak(consecutive(150)))

	withGap := append(consecutive(4), entry("old", "", daysAgo(6, 8)))
	assert.Equal(t, 4, e.ComputeStreak(withGap))

	future := append(consecutive(2), entry("tomorrow", "", fixedNow.Add(24*time.Hour)))
	assert.Equal(t, 2, e.ComputeStreak(future))
}

func TestComputeStreak_SkipsUndatedEntries(t *testing.T) {
	entries := []model.JournalEntry{
		entry("a", "", daysAgo(0, 8)),
		{ID: "undated"},
		entry("b", "", daysAgo(1, 8)),
	}
	assert.Equal(t, 2, newTestEngine().ComputeStreak(entries))
}

func TestComputeStreak_UsesCalendarLocation(t *testing.T) {
	ny, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	// 02:00 UTC on the 14th is still the 13th in New York.
	entries := []model.JournalEntry{entry("late", "", time.Date(2026, 10, 14, 2, 0, 0, 0, time.UTC))}

	utc := newTestEngine()
	assert.Equal(t, 1, utc.ComputeStreak(entries))

	local := New(WithLocation(ny), WithClock(func() time.Time { return fixedNow }))
	assert.Equal(t, 0, local.ComputeStreak(entries))
}

func TestApplyCreate(t *testing.T) {
	e := newTestEngine()
	all := []model.JournalEntry{entry("a", "sad", daysAgo(1, 8))}
	prev := e.RecomputeAll(all)
	require.Equal(t, 0, prev.Streak)

	created := entry("b", "happy", daysAgo(0, 8))
	all = append(all, created)
	next := e.ApplyCreate(prev, created, all)

	assert.Equal(t, 2, next.Total)
	assert.Equal(t, map[string]int{"sad": 1, "happy": 1}, next.ByMood)
	assert.Equal(t, 2, next.Streak)
	assert.Equal(t, e.RecomputeAll(all), next)
	assert.Equal(t, 1, prev.Total, "prev must not be mutated")
}

func TestApplyUpdate_MoodChangedAndStreakRecomputed(t *testing.T) {
	e := newTestEngine()
	before := entry("a", "sad", daysAgo(1, 8))
	all := []model.JournalEntry{before, entry("b", "", daysAgo(0, 8))}
	prev := e.RecomputeAll(all)
	require.Equal(t, 2, prev.Streak)

	after := before
	after.Mood = "happy"
	after.Date = daysAgo(3, 8)
	all[0] = after
	next := e.ApplyUpdate(prev, before, after, all)

	assert.Equal(t, map[string]int{"happy": 1}, next.ByMood)
	assert.Equal(t, 2, next.Total)
	assert.Equal(t, 1, next.Streak)
	assert.Equal(t, e.RecomputeAll(all), next)
}

func TestApplyUpdate_SameMoodKeepsHistogram(t *testing.T) {
	e := newTestEngine()
	before := entry("a", "calm", daysAgo(0, 8))
	prev := e.RecomputeAll([]model.JournalEntry{before})
	after := before
	after.Title = "renamed"
	next := e.ApplyUpdate(prev, before, after, []model.JournalEntry{after})
	assert.Equal(t, prev, next)
}

func TestApplyDelete_OnlyHappyEntry(t *testing.T) {
	e := newTestEngine()
	happy := entry("a", "happy", daysAgo(0, 8))
	other := entry("b", "sad", daysAgo(1, 8))
	prev := e.RecomputeAll([]model.JournalEntry{happy, other})

	rest := []model.JournalEntry{other}
	next := e.ApplyDelete(prev, happy, rest)

	assert.Equal(t, prev.Total-1, next.Total)
	assert.Zero(t, next.ByMood["happy"])
	_, present := next.ByMood["happy"]
	assert.False(t, present)
	assert.Equal(t, 0, next.Streak, "today's only entry was removed")
}

func TestDecrement_ClampsAtZero(t *testing.T) {
	e := newTestEngine()
	prev := Stats{Total: 0, ByMood: map[string]int{}}
	next := e.ApplyDelete(prev, entry("ghost", "happy", daysAgo(0, 8)), nil)
	assert.Equal(t, 0, next.Total)
	assert.Empty(t, next.ByMood)
}

func TestIncrementalMatchesRecompute(t *testing.T) {
	e := newTestEngine()
	var all []model.JournalEntry
	s := e.RecomputeAll(all)
	moods := []string{"happy", "sad", "", "calm", "happy"}
	for i, m := range moods {
		created := entry(fmt.Sprintf("e%d", i), m, daysAgo(i, 10))
		all = append(all, created)
		s = e.ApplyCreate(s, created, all)
		require.Equal(t, e.RecomputeAll(all), s)
	}
	removed := all[1]
	all = append(all[:1], all[2:]...)
	s = e.ApplyDelete(s, removed, all)
	require.Equal(t, e.RecomputeAll(all), s)
}
