// Command journalctl is a terminal client for the journal service.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/sravanipallapu19/healthComp/client"
	"github.com/sravanipallapu19/healthComp/internal/session"
	"github.com/sravanipallapu19/healthComp/internal/stats"
)

const (
	envAPI   = "JOURNALCTL_API"
	envToken = "JOURNALCTL_TOKEN"
)

type globals struct {
	api       string
	token     string
	timeout   time.Duration
	debug     bool
	tz        string
	streakCap int

	outMu sync.Mutex
	out   io.Writer
}

func (g *globals) client() (*client.Client, error) {
	opts := []client.Option{client.WithHTTPTimeout(g.timeout), client.WithDebugLogging(g.debug)}
	if g.token != "" {
		opts = append(opts, client.WithToken(g.token))
	}
	return client.New(g.api, opts...)
}

func (g *globals) authed() (*client.Client, error) {
	if g.token == "" {
		return nil, fmt.Errorf("--token or %s required (run `journalctl login`)", envToken)
	}
	return g.client()
}

func (g *globals) location() (*time.Location, error) {
	if g.tz == "" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(g.tz)
	if err != nil {
		return nil, fmt.Errorf("--tz: %w", err)
	}
	return loc, nil
}

// journal returns a session over the caller's full collection, so that
// mutations update statistics incrementally from a complete baseline.
func (g *globals) journal(ctx context.Context) (*session.Journal, *client.Client, error) {
	loc, err := g.location()
	if err != nil {
		return nil, nil, err
	}
	c, err := g.authed()
	if err != nil {
		return nil, nil, err
	}
	engine := stats.New(stats.WithLocation(loc), stats.WithStreakCap(g.streakCap))
	j := session.NewJournal(c, session.NewStore(engine, g.logger()))
	if err := j.Fetch(ctx, client.EntryFilter{}); err != nil {
		return nil, nil, err
	}
	return j, c, nil
}

func (g *globals) print(v any) error {
	g.outMu.Lock()
	defer g.outMu.Unlock()
	enc := json.NewEncoder(g.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func (g *globals) logger() zerolog.Logger {
	if !g.debug {
		return zerolog.Nop()
	}
	return zerolog.New(os.Stderr).With().Timestamp().Logger()
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func newRootCmd(out io.Writer) *cobra.Command {
	g := &globals{out: out}
	root := &cobra.Command{
		Use:           "journalctl",
		Short:         "CLI client for the journal service REST API",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(out)
	root.PersistentFlags().StringVarP(&g.api, "api", "a", envOr(envAPI, "http://localhost:8080"), "Journal service base URL ($"+envAPI+")")
	root.PersistentFlags().StringVarP(&g.token, "token", "t", os.Getenv(envToken), "Bearer token ($"+envToken+")")
	root.PersistentFlags().DurationVar(&g.timeout, "timeout", 30*time.Second, "HTTP timeout")
	root.PersistentFlags().BoolVar(&g.debug, "debug", false, "Dump HTTP traffic to stderr")
	root.PersistentFlags().StringVar(&g.tz, "tz", "", "IANA zone for calendar days, default local")
	root.PersistentFlags().IntVar(&g.streakCap, "cap", stats.DefaultStreakCap, "Streak cap, 0 for unbounded")

	root.AddCommand(
		newRegisterCmd(g),
		newLoginCmd(g),
		newHealthCmd(g),
		newEntriesCmd(g),
		newStatsCmd(g),
		newWatchCmd(g),
		newMoodCmd(g),
	)
	return root
}

func newHealthCmd(g *globals) *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Show service health",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := g.client()
			if err != nil {
				return err
			}
			h, err := c.Health(cmd.Context())
			if err != nil {
				return err
			}
			if err := g.print(h); err != nil {
				return err
			}
			if !h.Healthy() {
				return fmt.Errorf("service is %s", h.Status)
			}
			return nil
		},
	}
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := newRootCmd(os.Stdout).ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
