package session

import (
	"context"
	"fmt"
	"sync"
	"time"

	rcron "github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
)

// midnightSpec fires at 00:00 every day.
const midnightSpec = "0 0 * * *"

// Rollover re-derives the streak of a Store when the local calendar day
// changes. Extra jobs, such as a periodic re-fetch, can share its scheduler.
type Rollover struct {
	store *Store
	log   zerolog.Logger
	cron  *rcron.Cron
	id    rcron.EntryID

	mu        sync.Mutex
	onRefresh func(streak int)
}

// NewRollover schedules store.RefreshStreak at midnight in the store's zone.
func NewRollover(store *Store, log zerolog.Logger) (*Rollover, error) {
	r := &Rollover{
		store: store,
		log:   log.With().Str("component", "rollover").Logger(),
		cron:  rcron.New(rcron.WithLocation(store.Location())),
	}
	id, err := r.cron.AddFunc(midnightSpec, r.run)
	if err != nil {
		return nil, fmt.Errorf("schedule rollover: %w", err)
	}
	r.id = id
	return r, nil
}

// OnRefresh registers fn to receive the streak after every midnight refresh.
func (r *Rollover) OnRefresh(fn func(streak int)) {
	r.mu.Lock()
	r.onRefresh = fn
	r.mu.Unlock()
}

// Schedule adds fn under a cron spec ("@every 5m", "30 6 * * *") evaluated
// in the store's zone.
func (r *Rollover) Schedule(spec string, fn func()) error {
	if _, err := r.cron.AddFunc(spec, fn); err != nil {
		return fmt.Errorf("schedule %q: %w", spec, err)
	}
	return nil
}

func (r *Rollover) run() {
	streak := r.store.RefreshStreak()
	r.log.Info().Int("streak", streak).Msg("day rolled over")
	r.mu.Lock()
	fn := r.onRefresh
	r.mu.Unlock()
	if fn != nil {
		fn(streak)
	}
}

// Start runs the scheduler until ctx is done.
func (r *Rollover) Start(ctx context.Context) {
	r.cron.Start()
	go func() {
		<-ctx.Done()
		r.Stop()
	}()
}

// Stop halts the scheduler and waits for running jobs to finish.
func (r *Rollover) Stop() {
	<-r.cron.Stop().Done()
}

// Next reports when the next midnight refresh will run. Zero before Start.
func (r *Rollover) Next() time.Time {
	return r.cron.Entry(r.id).Next
}
