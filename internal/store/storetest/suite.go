package storetest

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/sravanipallapu19/healthComp/internal/model"
	"github.com/sravanipallapu19/healthComp/internal/store"
)

// Run exercises a compliance suite against a store.Store implementation.
// Implementations should provide a clean, isolated store and return it from makeStore.
func Run(t *testing.T, makeStore func(t *testing.T) store.Store) {
	t.Helper()

	s := makeStore(t)
	ctx := context.Background()

	if err := s.HealthPing(ctx); err != nil {
		t.Fatalf("HealthPing: %v", err)
	}

	// Users
	email := "u-" + uuid.New().String() + "@example.test"
	u, err := s.Users().Create(ctx, &model.User{Email: email, TimeZone: "Europe/Berlin", PasswordHash: "hash"})
	if err != nil {
		t.Fatalf("CreateUser: %v", err)
	}
	if u.UserID == "" {
		t.Fatalf("CreateUser: empty user id")
	}
	if got, err := s.Users().Get(ctx, u.UserID); err != nil || got.Email != email || got.PasswordHash != "hash" {
		t.Fatalf("GetUser: got=%v err=%v", got, err)
	}
	if got, err := s.Users().GetByEmail(ctx, email); err != nil || got.UserID != u.UserID || got.TimeZone != "Europe/Berlin" {
		t.Fatalf("GetUserByEmail: got=%v err=%v", got, err)
	}
	if _, err := s.Users().Create(ctx, &model.User{Email: email, PasswordHash: "x"}); !errors.Is(err, model.ErrConflict) {
		t.Fatalf("duplicate email: want ErrConflict, got %v", err)
	}
	if _, err := s.Users().Get(ctx, "missing"); !errors.Is(err, model.ErrNotFound) {
		t.Fatalf("missing user: want ErrNotFound, got %v", err)
	}

	other, err := s.Users().Create(ctx, &model.User{Email: "o-" + email, PasswordHash: "x"})
	if err != nil {
		t.Fatalf("CreateUser other: %v", err)
	}

	// Entries
	base := time.Date(2026, 10, 10, 9, 0, 0, 0, time.UTC)
	e1, err := s.Entries().Create(ctx, &model.JournalEntry{UserID: u.UserID, Title: "one", Content: "first", Mood: "happy", Tags: []string{"a"}, Date: base})
	if err != nil {
		t.Fatalf("CreateEntry e1: %v", err)
	}
	if e1.ID == "" || e1.LastModified.IsZero() {
		t.Fatalf("CreateEntry e1: id/lastModified not assigned: %+v", e1)
	}
	e2, err := s.Entries().Create(ctx, &model.JournalEntry{UserID: u.UserID, Title: "two", Content: "second", Emotion: "calm", Date: base.Add(48 * time.Hour)})
	if err != nil {
		t.Fatalf("CreateEntry e2: %v", err)
	}
	if _, err := s.Entries().Create(ctx, &model.JournalEntry{UserID: other.UserID, Title: "x", Content: "x", Date: base}); err != nil {
		t.Fatalf("CreateEntry other: %v", err)
	}

	lst, err := s.Entries().List(ctx, model.ListEntriesRequest{UserID: u.UserID})
	if err != nil || len(lst) != 2 {
		t.Fatalf("ListEntries: n=%d err=%v", len(lst), err)
	}
	if lst[0].ID != e2.ID {
		t.Fatalf("ListEntries: want newest first, got %s", lst[0].ID)
	}
	if !lst[1].Date.Equal(base) || len(lst[1].Tags) != 1 || lst[1].Tags[0] != "a" {
		t.Fatalf("ListEntries: round trip mismatch: %+v", lst[1])
	}

	start := base.Add(24 * time.Hour)
	if lst, err := s.Entries().List(ctx, model.ListEntriesRequest{UserID: u.UserID, Start: &start}); err != nil || len(lst) != 1 || lst[0].ID != e2.ID {
		t.Fatalf("ListEntries start filter: n=%d err=%v", len(lst), err)
	}
	if lst, err := s.Entries().List(ctx, model.ListEntriesRequest{UserID: u.UserID, Emotions: []string{"calm"}}); err != nil || len(lst) != 1 || lst[0].ID != e2.ID {
		t.Fatalf("ListEntries emotion filter: n=%d err=%v", len(lst), err)
	}
	if lst, err := s.Entries().List(ctx, model.ListEntriesRequest{UserID: u.UserID, Limit: 1}); err != nil || len(lst) != 1 {
		t.Fatalf("ListEntries limit: n=%d err=%v", len(lst), err)
	}

	// Update
	upd := e1.Clone()
	upd.Title = "one (edited)"
	upd.Mood = "sad"
	upd.Tags = []string{"a", "b"}
	got, err := s.Entries().Update(ctx, &upd)
	if err != nil || got.Title != "one (edited)" || got.Mood != "sad" || len(got.Tags) != 2 {
		t.Fatalf("UpdateEntry: got=%+v err=%v", got, err)
	}
	missing := upd
	missing.ID = "missing"
	if _, err := s.Entries().Update(ctx, &missing); !errors.Is(err, model.ErrNotFound) {
		t.Fatalf("UpdateEntry missing: want ErrNotFound, got %v", err)
	}

	// Favorite
	fav, err := s.Entries().SetFavorite(ctx, u.UserID, e1.ID, true)
	if err != nil || !fav.IsFavorite {
		t.Fatalf("SetFavorite: got=%+v err=%v", fav, err)
	}
	if _, err := s.Entries().SetFavorite(ctx, other.UserID, e1.ID, true); !errors.Is(err, model.ErrNotFound) {
		t.Fatalf("SetFavorite foreign owner: want ErrNotFound, got %v", err)
	}

	// Delete
	if err := s.Entries().Delete(ctx, u.UserID, e1.ID); err != nil {
		t.Fatalf("DeleteEntry: %v", err)
	}
	if _, err := s.Entries().GetByID(ctx, u.UserID, e1.ID); !errors.Is(err, model.ErrNotFound) {
		t.Fatalf("GetEntry after delete: want ErrNotFound, got %v", err)
	}
	if err := s.Entries().Delete(ctx, u.UserID, e1.ID); !errors.Is(err, model.ErrNotFound) {
		t.Fatalf("DeleteEntry twice: want ErrNotFound, got %v", err)
	}

	// Moods
	for i, r := range []int{4, 7, 9} {
		_, err := s.Moods().Create(ctx, &model.MoodEntry{UserID: u.UserID, Rating: r, Emotions: []string{"calm"}, Timestamp: base.Add(time.Duration(i) * time.Hour)})
		if err != nil {
			t.Fatalf("CreateMood %d: %v", i, err)
		}
	}
	moods, err := s.Moods().List(ctx, model.ListMoodsRequest{UserID: u.UserID})
	if err != nil || len(moods) != 3 || moods[0].Rating != 4 || moods[2].Rating != 9 {
		t.Fatalf("ListMoods: %+v err=%v", moods, err)
	}
	if len(moods[0].Emotions) != 1 || moods[0].Emotions[0] != "calm" {
		t.Fatalf("ListMoods emotions round trip: %+v", moods[0])
	}
	end := base.Add(30 * time.Minute)
	if moods, err := s.Moods().List(ctx, model.ListMoodsRequest{UserID: u.UserID, End: &end}); err != nil || len(moods) != 1 {
		t.Fatalf("ListMoods end filter: n=%d err=%v", len(moods), err)
	}
}
