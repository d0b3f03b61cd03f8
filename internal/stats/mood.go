package stats

import (
	"sort"

	"github.com/sravanipallapu19/healthComp/internal/model"
)

const topEmotionsLimit = 5

// EmotionCount is one row of the top-emotions ranking.
type EmotionCount struct {
	Emotion string `json:"emotion"`
	Count   int    `json:"count"`
}

// MoodSummary aggregates mood check-ins for the dashboard.
type MoodSummary struct {
	WeeklyAverage  float64        `json:"weeklyAverage"`
	MonthlyAverage float64        `json:"monthlyAverage"`
	TopEmotions    []EmotionCount `json:"topEmotions"`
	// Improvement is the fractional change of the last 7 days' average
	// against the 7 days before them; 0 without prior data.
	Improvement float64 `json:"improvement"`
	Count       int     `json:"count"`
}

// DailyMood is the mean rating of one calendar day.
type DailyMood struct {
	Day         string  `json:"day"`
	AverageMood float64 `json:"averageMood"`
	Count       int     `json:"count"`
}

type mean struct {
	sum   int
	count int
}

func (m *mean) add(v int) { m.sum += v; m.count++ }

func (m mean) value() float64 {
	if m.count == 0 {
		return 0
	}
	return float64(m.sum) / float64(m.count)
}

// SummarizeMoods computes weekly and monthly averages, the top emotions of
// the last 30 days and the week-over-week improvement.
func (e *Engine) SummarizeMoods(entries []model.MoodEntry) MoodSummary {
	today := e.Today()
	var week, prior, month mean
	counts := map[string]int{}

	for _, en := range entries {
		if en.Timestamp.IsZero() {
			continue
		}
		age := CalendarDay(en.Timestamp, e.loc).DaysUntil(today)
		if age < 0 {
			continue
		}
		switch {
		case age < 7:
			week.add(en.Rating)
		case age < 14:
			prior.add(en.Rating)
		}
		if age < 30 {
			month.add(en.Rating)
			for _, emo := range en.Emotions {
				if emo != "" {
					counts[emo]++
				}
			}
		}
	}

	out := MoodSummary{
		WeeklyAverage:  week.value(),
		MonthlyAverage: month.value(),
		TopEmotions:    rankEmotions(counts, topEmotionsLimit),
		Count:          month.count,
	}
	if p := prior.value(); p > 0 && week.count > 0 {
		out.Improvement = (out.WeeklyAverage - p) / p
	}
	return out
}

// DailyAverages returns one row per day having check-ins within the last
// days days (today included), oldest first. days <= 0 means 7.
func (e *Engine) DailyAverages(entries []model.MoodEntry, days int) []DailyMood {
	if days <= 0 {
		days = 7
	}
	today := e.Today()
	byDay := map[Day]*mean{}
	for _, en := range entries {
		if en.Timestamp.IsZero() {
			continue
		}
		d := CalendarDay(en.Timestamp, e.loc)
		if age := d.DaysUntil(today); age < 0 || age >= days {
			continue
		}
		m, ok := byDay[d]
		if !ok {
			m = &mean{}
			byDay[d] = m
		}
		m.add(en.Rating)
	}

	keys := make([]Day, 0, len(byDay))
	for d := range byDay {
		keys = append(keys, d)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i].Before(keys[j]) })

	out := make([]DailyMood, 0, len(keys))
	for _, d := range keys {
		m := byDay[d]
		out = append(out, DailyMood{Day: d.String(), AverageMood: m.value(), Count: m.count})
	}
	return out
}

func rankEmotions(counts map[string]int, limit int) []EmotionCount {
	out := make([]EmotionCount, 0, len(counts))
	for k, v := range counts {
		out = append(out, EmotionCount{Emotion: k, Count: v})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Emotion < out[j].Emotion
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}
