package session

import (
	"context"
	"fmt"

	"github.com/sravanipallapu19/healthComp/client"
	"github.com/sravanipallapu19/healthComp/internal/model"
)

// API is the subset of the REST client the journal session drives.
type API interface {
	ListEntries(ctx context.Context, f client.EntryFilter) ([]client.Entry, error)
	CreateEntry(ctx context.Context, req client.CreateEntryRequest) (*client.Entry, error)
	UpdateEntry(ctx context.Context, id string, req client.UpdateEntryRequest) (*client.Entry, error)
	DeleteEntry(ctx context.Context, id string) error
	ToggleFavorite(ctx context.Context, id string, favorite bool) (*client.Entry, error)
}

var _ API = (*client.Client)(nil)

// Journal applies API results to a Store. Each call marks the store loading,
// awaits the API and then applies the outcome in one step.
type Journal struct {
	api   API
	store *Store
}

func NewJournal(api API, store *Store) *Journal {
	return &Journal{api: api, store: store}
}

// Store returns the state container the journal writes to.
func (j *Journal) Store() *Store { return j.store }

// Fetch loads the collection and recomputes all statistics.
func (j *Journal) Fetch(ctx context.Context, f client.EntryFilter) error {
	j.store.Begin(OpFetch)
	list, err := j.api.ListEntries(ctx, f)
	if err != nil {
		j.store.Failed(OpFetch, err)
		return fmt.Errorf("fetch entries: %w", err)
	}
	entries := make([]model.JournalEntry, len(list))
	for i, e := range list {
		entries[i] = toModel(e)
	}
	j.store.FetchCompleted(entries)
	return nil
}

// Create stores a new entry and adds the server's copy to the collection.
func (j *Journal) Create(ctx context.Context, req client.CreateEntryRequest) (model.JournalEntry, error) {
	j.store.Begin(OpCreate)
	out, err := j.api.CreateEntry(ctx, req)
	if err != nil {
		j.store.Failed(OpCreate, err)
		return model.JournalEntry{}, fmt.Errorf("create entry: %w", err)
	}
	e := toModel(*out)
	j.store.Created(e)
	return e, nil
}

// Update applies a partial update and replaces the cached entry.
func (j *Journal) Update(ctx context.Context, id string, req client.UpdateEntryRequest) (model.JournalEntry, error) {
	j.store.Begin(OpUpdate)
	out, err := j.api.UpdateEntry(ctx, id, req)
	if err != nil {
		j.store.Failed(OpUpdate, err)
		return model.JournalEntry{}, fmt.Errorf("update entry %s: %w", id, err)
	}
	e := toModel(*out)
	j.store.Updated(e)
	return e, nil
}

// Delete removes an entry on the server and from the collection.
func (j *Journal) Delete(ctx context.Context, id string) error {
	j.store.Begin(OpDelete)
	if err := j.api.DeleteEntry(ctx, id); err != nil {
		j.store.Failed(OpDelete, err)
		return fmt.Errorf("delete entry %s: %w", id, err)
	}
	j.store.Deleted(id)
	return nil
}

// ToggleFavorite flips the favorite flag of a cached entry.
func (j *Journal) ToggleFavorite(ctx context.Context, id string) (model.JournalEntry, error) {
	current, ok := j.find(id)
	if !ok {
		err := fmt.Errorf("entry %s: %w", id, model.ErrNotFound)
		j.store.Failed(OpFavorite, err)
		return model.JournalEntry{}, err
	}
	j.store.Begin(OpFavorite)
	out, err := j.api.ToggleFavorite(ctx, id, !current.IsFavorite)
	if err != nil {
		j.store.Failed(OpFavorite, err)
		return model.JournalEntry{}, fmt.Errorf("toggle favorite %s: %w", id, err)
	}
	e := toModel(*out)
	j.store.FavoriteSet(e)
	return e, nil
}

func (j *Journal) find(id string) (model.JournalEntry, bool) {
	j.store.mu.RLock()
	defer j.store.mu.RUnlock()
	if i := j.store.indexOf(id); i >= 0 {
		return j.store.state.Entries[i].Clone(), true
	}
	return model.JournalEntry{}, false
}

// toModel converts the wire entry. A malformed date becomes the zero time,
// which the streak ignores.
func toModel(e client.Entry) model.JournalEntry {
	return model.JournalEntry{
		ID:           e.ID,
		UserID:       e.UserID,
		Title:        e.Title,
		Content:      e.Content,
		Mood:         e.Mood,
		Emotion:      e.Emotion,
		Tags:         append([]string(nil), e.Tags...),
		IsFavorite:   e.IsFavorite,
		Date:         e.When(),
		LastModified: e.Modified(),
	}
}
