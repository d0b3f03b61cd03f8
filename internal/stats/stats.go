// Package stats derives journal and mood aggregates from in-memory entry
// collections.
//
// Every operation is pure: the incremental helpers (ApplyCreate, ApplyUpdate,
// ApplyDelete) patch the histogram and total, but the streak is always
// re-derived from the full entry list so it can never drift from
// RecomputeAll.
package stats

import (
	"time"

	"github.com/sravanipallapu19/healthComp/internal/model"
)

// DefaultStreakCap bounds the backward day walk of ComputeStreak.
const DefaultStreakCap = 100

// Stats holds the derived journal aggregates of one entry collection.
type Stats struct {
	Total  int            `json:"total"`
	ByMood map[string]int `json:"byMood"`
	Streak int            `json:"streak"`
}

// Clone returns a copy of s that shares no map with it.
func (s Stats) Clone() Stats {
	out := Stats{Total: s.Total, Streak: s.Streak, ByMood: make(map[string]int, len(s.ByMood))}
	for k, v := range s.ByMood {
		out.ByMood[k] = v
	}
	return out
}

// Engine computes Stats relative to a clock and a calendar location.
type Engine struct {
	loc       *time.Location
	now       func() time.Time
	streakCap int
}

// Option configures an Engine.
type Option func(*Engine)

// WithLocation sets the location whose midnights delimit calendar days.
// A nil location is ignored.
func WithLocation(loc *time.Location) Option {
	return func(e *Engine) {
		if loc != nil {
			e.loc = loc
		}
	}
}

// WithClock overrides time.Now. Used by tests and by the session rollover.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		if now != nil {
			e.now = now
		}
	}
}

// WithStreakCap sets the maximum streak reported. n <= 0 removes the cap.
func WithStreakCap(n int) Option {
	return func(e *Engine) { e.streakCap = n }
}

// New returns an Engine using time.Local, time.Now and DefaultStreakCap
// unless overridden.
func New(opts ...Option) *Engine {
	e := &Engine{loc: time.Local, now: time.Now, streakCap: DefaultStreakCap}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Location returns the engine's calendar location.
func (e *Engine) Location() *time.Location { return e.loc }

// Today returns the current calendar day in the engine's location.
func (e *Engine) Today() Day { return CalendarDay(e.now(), e.loc) }

// RecomputeAll derives Stats from scratch. Order of entries is irrelevant.
func (e *Engine) RecomputeAll(entries []model.JournalEntry) Stats {
	s := Stats{Total: len(entries), ByMood: make(map[string]int)}
	for _, en := range entries {
		increment(s.ByMood, en.MoodLabel())
	}
	s.Streak = e.ComputeStreak(entries)
	return s
}

// ApplyCreate patches prev for a newly created entry. all must already
// contain created.
func (e *Engine) ApplyCreate(prev Stats, created model.JournalEntry, all []model.JournalEntry) Stats {
	next := prev.Clone()
	next.Total++
	increment(next.ByMood, created.MoodLabel())
	next.Streak = e.ComputeStreak(all)
	return next
}

// ApplyUpdate patches prev for an entry replaced in place. all must already
// hold after in place of before. The streak is recomputed because an update
// may move the entry's date.
func (e *Engine) ApplyUpdate(prev Stats, before, after model.JournalEntry, all []model.JournalEntry) Stats {
	next := prev.Clone()
	if old, cur := before.MoodLabel(), after.MoodLabel(); old != cur {
		decrement(next.ByMood, old)
		increment(next.ByMood, cur)
	}
	next.Streak = e.ComputeStreak(all)
	return next
}

// ApplyDelete patches prev for a removed entry. all must no longer contain
// removed.
func (e *Engine) ApplyDelete(prev Stats, removed model.JournalEntry, all []model.JournalEntry) Stats {
	next := prev.Clone()
	if next.Total > 0 {
		next.Total--
	}
	decrement(next.ByMood, removed.MoodLabel())
	next.Streak = e.ComputeStreak(all)
	return next
}

func increment(m map[string]int, label string) {
	if label == "" {
		return
	}
	m[label]++
}

// decrement floors at zero and drops labels whose count reaches zero, so the
// histogram sum always equals the number of labelled entries.
func decrement(m map[string]int, label string) {
	if label == "" {
		return
	}
	if m[label] <= 1 {
		delete(m, label)
		return
	}
	m[label]--
}
