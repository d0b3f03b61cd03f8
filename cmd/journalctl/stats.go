package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/sravanipallapu19/healthComp/client"
	"github.com/sravanipallapu19/healthComp/internal/session"
	"github.com/sravanipallapu19/healthComp/internal/stats"
)

type statsOutput struct {
	Local  stats.Stats   `json:"local"`
	Remote *client.Stats `json:"remote,omitempty"`
	Zone   string        `json:"zone"`
	Synced time.Time     `json:"synced"`
}

func snapshotOutput(j *session.Journal) statsOutput {
	st := j.Store().Snapshot()
	return statsOutput{Local: st.Stats, Zone: j.Store().Location().String(), Synced: st.LastSynced}
}

func newStatsCmd(g *globals) *cobra.Command {
	var remote bool
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Fetch all entries and compute total, mood histogram and streak",
		RunE: func(cmd *cobra.Command, args []string) error {
			j, c, err := g.journal(cmd.Context())
			if err != nil {
				return err
			}
			out := snapshotOutput(j)
			if remote {
				if out.Remote, err = c.GetJournalStats(cmd.Context()); err != nil {
					return err
				}
			}
			return g.print(out)
		},
	}
	cmd.Flags().BoolVar(&remote, "remote", false, "Also print the service's own statistics")
	return cmd
}

func newWatchCmd(g *globals) *cobra.Command {
	var refresh time.Duration
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Print statistics now, at every local midnight and on each refresh",
		Long: "Print statistics now and keep running. The streak is re-derived at midnight in --tz; " +
			"with --refresh the collection is re-fetched on that interval. Stop with Ctrl-C.",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			j, _, err := g.journal(ctx)
			if err != nil {
				return err
			}
			log := g.logger()
			r, err := session.NewRollover(j.Store(), log)
			if err != nil {
				return err
			}
			r.OnRefresh(func(int) { _ = g.print(snapshotOutput(j)) })
			if refresh > 0 {
				if err := r.Schedule(fmt.Sprintf("@every %s", refresh), func() { refetch(ctx, g, j) }); err != nil {
					return err
				}
			}
			if err := g.print(snapshotOutput(j)); err != nil {
				return err
			}
			r.Start(ctx)
			<-ctx.Done()
			r.Stop()
			return nil
		},
	}
	cmd.Flags().DurationVar(&refresh, "refresh", 0, "Re-fetch interval, 0 to only refresh at midnight")
	return cmd
}

func refetch(ctx context.Context, g *globals, j *session.Journal) {
	if err := j.Fetch(ctx, client.EntryFilter{}); err != nil {
		if ctx.Err() == nil {
			log := g.logger()
			log.Warn().Err(err).Msg("refresh failed")
		}
		return
	}
	_ = g.print(snapshotOutput(j))
}
