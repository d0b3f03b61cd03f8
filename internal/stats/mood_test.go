package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sravanipallapu19/healthComp/internal/model"
)

func mood(rating int, ageDays int, emotions ...string) model.MoodEntry {
	return model.MoodEntry{Rating: rating, Emotions: emotions, Timestamp: daysAgo(ageDays, 10)}
}

func TestSummarizeMoods(t *testing.T) {
	entries := []model.MoodEntry{
		mood(8, 0, "joy"),
		mood(6, 2, "joy", "calm"),
		mood(4, 8, "anxious"),
		mood(6, 10),
		mood(2, 40, "sad"),
	}
	got := newTestEngine().SummarizeMoods(entries)

	assert.InDelta(t, 7.0, got.WeeklyAverage, 1e-9)
	assert.InDelta(t, 6.0, got.MonthlyAverage, 1e-9)
	assert.InDelta(t, 0.4, got.Improvement, 1e-9)
	assert.Equal(t, 4, got.Count)
	assert.Equal(t, []EmotionCount{{"joy", 2}, {"anxious", 1}, {"calm", 1}}, got.TopEmotions)
}

func TestSummarizeMoods_NoPriorWeek(t *testing.T) {
	got := newTestEngine().SummarizeMoods([]model.MoodEntry{mood(5, 1)})
	assert.Zero(t, got.Improvement)
	assert.Empty(t, got.TopEmotions)
}

func TestDailyAverages(t *testing.T) {
	entries := []model.MoodEntry{
		mood(4, 0),
		mood(8, 0),
		mood(5, 3),
		mood(9, 7),
	}
	got := newTestEngine().DailyAverages(entries, 7)
	require.Len(t, got, 2)
	assert.Equal(t, "2026-10-11", got[0].Day)
	assert.InDelta(t, 5.0, got[0].AverageMood, 1e-9)
	assert.Equal(t, "2026-10-14", got[1].Day)
	assert.InDelta(t, 6.0, got[1].AverageMood, 1e-9)
	assert.Equal(t, 2, got[1].Count)
}
