package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

type listEntriesResponse struct {
	Entries []Entry `json:"entries"`
	Count   int     `json:"count"`
}

func (f EntryFilter) query() map[string]string {
	q := map[string]string{}
	if f.Start != nil {
		q["startDate"] = f.Start.Format(time.RFC3339)
	}
	if f.End != nil {
		q["endDate"] = f.End.Format(time.RFC3339)
	}
	if len(f.Emotions) > 0 {
		q["emotions"] = strings.Join(f.Emotions, ",")
	}
	if f.Limit > 0 {
		q["limit"] = strconv.Itoa(f.Limit)
	}
	return q
}

// ListEntries returns the caller's entries, newest first.
func (c *Client) ListEntries(ctx context.Context, f EntryFilter) ([]Entry, error) {
	var out listEntriesResponse
	if err := c.do(ctx, call{op: "list_entries", method: http.MethodGet, path: "/api/journal/entries", query: f.query(), out: &out}); err != nil {
		return nil, err
	}
	if out.Entries == nil {
		out.Entries = []Entry{}
	}
	return out.Entries, nil
}

// CreateEntry stores a new entry and returns it with its server-assigned id.
func (c *Client) CreateEntry(ctx context.Context, req CreateEntryRequest) (*Entry, error) {
	var out Entry
	if err := c.do(ctx, call{op: "create_entry", method: http.MethodPost, path: "/api/journal/entries", body: req, out: &out}); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateEntry applies a partial update.
func (c *Client) UpdateEntry(ctx context.Context, id string, req UpdateEntryRequest) (*Entry, error) {
	if id == "" {
		return nil, fmt.Errorf("entry id is required: %w", ErrValidation)
	}
	var out Entry
	if err := c.do(ctx, call{op: "update_entry", method: http.MethodPut, path: entryPath(id), body: req, out: &out}); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteEntry removes an entry.
func (c *Client) DeleteEntry(ctx context.Context, id string) error {
	if id == "" {
		return fmt.Errorf("entry id is required: %w", ErrValidation)
	}
	return c.do(ctx, call{op: "delete_entry", method: http.MethodDelete, path: entryPath(id)})
}

// ToggleFavorite sets the favorite flag of an entry.
func (c *Client) ToggleFavorite(ctx context.Context, id string, favorite bool) (*Entry, error) {
	if id == "" {
		return nil, fmt.Errorf("entry id is required: %w", ErrValidation)
	}
	body := map[string]bool{"isFavorite": favorite}
	var out Entry
	if err := c.do(ctx, call{op: "toggle_favorite", method: http.MethodPatch, path: entryPath(id), body: body, out: &out}); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetJournalStats returns statistics computed server-side in the user's zone.
func (c *Client) GetJournalStats(ctx context.Context) (*Stats, error) {
	var out Stats
	if err := c.do(ctx, call{op: "journal_stats", method: http.MethodGet, path: "/api/journal/stats", out: &out}); err != nil {
		return nil, err
	}
	if out.ByMood == nil {
		out.ByMood = map[string]int{}
	}
	return &out, nil
}

func entryPath(id string) string {
	return "/api/journal/entries/" + url.PathEscape(id)
}
