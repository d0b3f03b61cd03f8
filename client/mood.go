package client

import (
	"context"
	"net/http"
	"time"
)

type moodHistoryResponse struct {
	Moods []MoodEntry `json:"moods"`
	Count int         `json:"count"`
}

// LogMood records a mood check-in.
func (c *Client) LogMood(ctx context.Context, req LogMoodRequest) (*MoodEntry, error) {
	var out MoodEntry
	if err := c.do(ctx, call{op: "log_mood", method: http.MethodPost, path: "/api/mood/log", body: req, out: &out}); err != nil {
		return nil, err
	}
	return &out, nil
}

// MoodHistory lists check-ins oldest first. Nil bounds let the server
// default to the last 30 days.
func (c *Client) MoodHistory(ctx context.Context, start, end *time.Time) ([]MoodEntry, error) {
	q := map[string]string{}
	if start != nil {
		q["startDate"] = start.Format(time.RFC3339)
	}
	if end != nil {
		q["endDate"] = end.Format(time.RFC3339)
	}
	var out moodHistoryResponse
	if err := c.do(ctx, call{op: "mood_history", method: http.MethodGet, path: "/api/mood/history", query: q, out: &out}); err != nil {
		return nil, err
	}
	if out.Moods == nil {
		out.Moods = []MoodEntry{}
	}
	return out.Moods, nil
}

// MoodStats returns the mood summary and the last seven daily averages.
func (c *Client) MoodStats(ctx context.Context) (*MoodStats, error) {
	var out MoodStats
	if err := c.do(ctx, call{op: "mood_stats", method: http.MethodGet, path: "/api/mood/stats", out: &out}); err != nil {
		return nil, err
	}
	return &out, nil
}
