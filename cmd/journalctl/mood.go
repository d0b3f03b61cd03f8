package main

import (
	"github.com/spf13/cobra"

	"github.com/sravanipallapu19/healthComp/client"
)

func newMoodCmd(g *globals) *cobra.Command {
	cmd := &cobra.Command{Use: "mood", Short: "Mood tracking operations"}

	var req client.LogMoodRequest
	var emotions string
	logCmd := &cobra.Command{
		Use:   "log",
		Short: "Record a mood check-in",
		RunE: func(cmd *cobra.Command, args []string) error {
			req.Emotions = splitList(emotions)
			c, err := g.authed()
			if err != nil {
				return err
			}
			m, err := c.LogMood(cmd.Context(), req)
			if err != nil {
				return err
			}
			return g.print(m)
		},
	}
	logCmd.Flags().IntVarP(&req.Rating, "rating", "r", 0, "Rating 1-10 (required)")
	logCmd.Flags().StringVar(&emotions, "emotions", "", "Comma separated emotions")
	logCmd.Flags().StringVar(&req.Note, "note", "", "Free text note")
	_ = logCmd.MarkFlagRequired("rating")

	var from, to string
	historyCmd := &cobra.Command{
		Use:   "history",
		Short: "List check-ins, default last 30 days",
		RunE: func(cmd *cobra.Command, args []string) error {
			start, err := parseWhen("from", from, false)
			if err != nil {
				return err
			}
			end, err := parseWhen("to", to, true)
			if err != nil {
				return err
			}
			c, err := g.authed()
			if err != nil {
				return err
			}
			list, err := c.MoodHistory(cmd.Context(), start, end)
			if err != nil {
				return err
			}
			return g.print(list)
		},
	}
	historyCmd.Flags().StringVar(&from, "from", "", "Earliest date (RFC3339 or YYYY-MM-DD)")
	historyCmd.Flags().StringVar(&to, "to", "", "Latest date (RFC3339 or YYYY-MM-DD)")

	statsCmd := &cobra.Command{
		Use:   "stats",
		Short: "Show weekly and monthly averages, top emotions and trend",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := g.authed()
			if err != nil {
				return err
			}
			st, err := c.MoodStats(cmd.Context())
			if err != nil {
				return err
			}
			return g.print(st)
		},
	}

	cmd.AddCommand(logCmd, historyCmd, statsCmd)
	return cmd
}
