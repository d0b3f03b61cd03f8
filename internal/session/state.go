// Package session holds the journal state of one signed-in user: the entry
// collection, its statistics and the loading/error flags a UI renders.
package session

import (
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/sravanipallapu19/healthComp/internal/model"
	"github.com/sravanipallapu19/healthComp/internal/stats"
)

// Op names a journal operation for loading and error reporting.
type Op string

const (
	OpFetch    Op = "fetch"
	OpCreate   Op = "create"
	OpUpdate   Op = "update"
	OpDelete   Op = "delete"
	OpFavorite Op = "favorite"
)

var failureMessages = map[Op]string{
	OpFetch:    "Failed to fetch journal entries",
	OpCreate:   "Failed to create journal entry",
	OpUpdate:   "Failed to update journal entry",
	OpDelete:   "Failed to delete journal entry",
	OpFavorite: "Failed to update favorite",
}

// FailureMessage is the user-facing message recorded when op fails.
func FailureMessage(op Op) string {
	if m, ok := failureMessages[op]; ok {
		return m
	}
	return "Journal operation failed"
}

// State is a point-in-time view of the session. Entries are newest first.
// Loading is true while any operation is in flight.
type State struct {
	Entries    []model.JournalEntry
	Stats      stats.Stats
	Loading    bool
	Error      string
	LastSynced time.Time
}

func (s State) clone() State {
	out := s
	out.Entries = make([]model.JournalEntry, len(s.Entries))
	for i, e := range s.Entries {
		out.Entries[i] = e.Clone()
	}
	out.Stats = s.Stats.Clone()
	return out
}

// Store owns State. Every mutation runs under one lock, so a reader never
// observes entries and stats that disagree.
type Store struct {
	mu       sync.RWMutex
	engine   *stats.Engine
	log      zerolog.Logger
	now      func() time.Time
	inflight map[Op]int
	state    State
}

// NewStore returns an empty store computing statistics with engine.
func NewStore(engine *stats.Engine, log zerolog.Logger) *Store {
	if engine == nil {
		engine = stats.New()
	}
	return &Store{
		engine: engine,
		log:    log.With().Str("component", "session").Logger(),
		now:      time.Now,
		inflight: map[Op]int{},
		state:    State{Entries: []model.JournalEntry{}, Stats: engine.RecomputeAll(nil)},
	}
}

// Snapshot returns a deep copy of the current state.
func (s *Store) Snapshot() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.clone()
}

// Begin marks op as in flight and clears the previous error.
func (s *Store) Begin(op Op) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.inflight[op]++
	s.state.Loading = true
	s.state.Error = ""
	s.log.Debug().Str("op", string(op)).Msg("journal operation started")
}

// FetchCompleted replaces the collection and recomputes every statistic.
func (s *Store) FetchCompleted(entries []model.JournalEntry) {
	list := make([]model.JournalEntry, len(entries))
	for i, e := range entries {
		list[i] = e.Clone()
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Entries = list
	s.state.Stats = s.engine.RecomputeAll(list)
	s.finish(OpFetch)
	s.state.LastSynced = s.now()
}

// Created prepends entry and folds it into the statistics.
func (s *Store) Created(entry model.JournalEntry) {
	entry = entry.Clone()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Entries = append([]model.JournalEntry{entry}, s.state.Entries...)
	s.state.Stats = s.engine.ApplyCreate(s.state.Stats, entry, s.state.Entries)
	s.finish(OpCreate)
}

// Updated replaces the entry with the same id. An unknown id leaves the
// collection and statistics unchanged.
func (s *Store) Updated(entry model.JournalEntry) { s.replaced(OpUpdate, entry) }

// FavoriteSet applies the result of a favorite change, like Updated.
func (s *Store) FavoriteSet(entry model.JournalEntry) { s.replaced(OpFavorite, entry) }

func (s *Store) replaced(op Op, entry model.JournalEntry) {
	entry = entry.Clone()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.finish(op)
	idx := s.indexOf(entry.ID)
	if idx < 0 {
		s.log.Warn().Str("entry_id", entry.ID).Msg("update for unknown entry ignored")
		return
	}
	before := s.state.Entries[idx]
	s.state.Entries[idx] = entry
	s.state.Stats = s.engine.ApplyUpdate(s.state.Stats, before, entry, s.state.Entries)
}

// Deleted removes the entry with id. An unknown id keeps total and byMood
// and only re-derives the streak.
func (s *Store) Deleted(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.finish(OpDelete)
	idx := s.indexOf(id)
	if idx < 0 {
		s.log.Warn().Str("entry_id", id).Msg("delete for unknown entry")
		s.state.Stats.Streak = s.engine.ComputeStreak(s.state.Entries)
		return
	}
	removed := s.state.Entries[idx]
	s.state.Entries = append(s.state.Entries[:idx:idx], s.state.Entries[idx+1:]...)
	s.state.Stats = s.engine.ApplyDelete(s.state.Stats, removed, s.state.Entries)
}

// Failed records the failure of op. Entries and statistics are untouched.
func (s *Store) Failed(op Op, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.finish(op)
	s.state.Error = FailureMessage(op)
	s.log.Error().Err(err).Str("op", string(op)).Msg("journal operation failed")
}

// ResetError clears the recorded error.
func (s *Store) ResetError() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Error = ""
}

// RefreshStreak re-derives the streak against the engine clock, for when
// the calendar day changes with no mutation.
func (s *Store) RefreshStreak() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Stats.Streak = s.engine.ComputeStreak(s.state.Entries)
	return s.state.Stats.Streak
}

// Location is the zone calendar days are computed in.
func (s *Store) Location() *time.Location { return s.engine.Location() }

// InFlight reports how many calls of op have begun and not yet completed.
func (s *Store) InFlight(op Op) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.inflight[op]
}

// finish retires one in-flight op. A completion without a Begin is
// tolerated. Caller holds mu.
func (s *Store) finish(op Op) {
	if s.inflight[op] > 1 {
		s.inflight[op]--
	} else {
		delete(s.inflight, op)
	}
	s.state.Loading = len(s.inflight) > 0
}

func (s *Store) indexOf(id string) int {
	for i := range s.state.Entries {
		if s.state.Entries[i].ID == id {
			return i
		}
	}
	return -1
}
