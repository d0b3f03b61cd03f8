package health

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
)

// Checker is implemented by component-level checkers (store today).
type Checker interface {
	Name() string
	IsHealthy() bool
	Start(ctx context.Context, interval time.Duration)
}

// ServiceChecker folds component checkers into a single service health flag.
type ServiceChecker struct {
	healthy atomic.Bool
	deps    []Checker
	log     zerolog.Logger
}

func NewServiceChecker(log zerolog.Logger, deps ...Checker) *ServiceChecker {
	return &ServiceChecker{deps: deps, log: log}
}

// IsHealthy returns cached service health.
func (h *ServiceChecker) IsHealthy() bool { return h.healthy.Load() }

// Components reports the cached state of every dependency by name.
func (h *ServiceChecker) Components() map[string]bool {
	out := make(map[string]bool, len(h.deps))
	for _, c := range h.deps {
		out[c.Name()] = c.IsHealthy()
	}
	return out
}

// Start periodically evaluates dependency health and updates the service flag.
func (h *ServiceChecker) Start(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	prev := false
	eval := func() {
		all := true
		for _, c := range h.deps {
			if !c.IsHealthy() {
				all = false
				h.log.Debug().Str("checker", c.Name()).Msg("dependency unhealthy")
			}
		}
		h.healthy.Store(all)
		if all != prev {
			if all {
				h.log.Info().Msg("service health: UP")
			} else {
				h.log.Error().Msg("service health: DOWN")
			}
			prev = all
		}
	}

	eval()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			eval()
		}
	}
}

// PingChecker probes a Pinger on every tick and caches the outcome.
type PingChecker struct {
	name         string
	target       Pinger
	healthy      atomic.Bool
	log          zerolog.Logger
	probeTimeout time.Duration
}

// NewPingChecker returns a checker that starts unhealthy until its first
// successful probe.
func NewPingChecker(name string, target Pinger, log zerolog.Logger, probeTimeout time.Duration) *PingChecker {
	return &PingChecker{name: name, target: target, log: log, probeTimeout: probeTimeout}
}

func (c *PingChecker) Name() string    { return c.name }
func (c *PingChecker) IsHealthy() bool { return c.healthy.Load() }

// Start probes immediately and then once per interval until ctx is done.
func (c *PingChecker) Start(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	c.Probe(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			c.Probe(ctx)
		}
	}
}

// Probe runs a single bounded ping and records the result.
func (c *PingChecker) Probe(ctx context.Context) bool {
	to := c.probeTimeout
	if to <= 0 {
		to = 2 * time.Second
	}
	probeCtx, cancel := context.WithTimeout(ctx, to)
	defer cancel()

	if err := c.target.HealthPing(probeCtx); err != nil {
		c.log.Error().Stack().Str("checker", c.name).Err(err).Msg("health probe failed")
		c.healthy.Store(false)
		return false
	}
	c.healthy.Store(true)
	return true
}
