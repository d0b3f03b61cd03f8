package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/sravanipallapu19/healthComp/client"
	"github.com/sravanipallapu19/healthComp/internal/model"
	"github.com/sravanipallapu19/healthComp/internal/stats"
)

// mutationOutput is printed after each entry change: the affected entry and
// the statistics of the whole collection after it.
type mutationOutput struct {
	Entry   *model.JournalEntry `json:"entry,omitempty"`
	Deleted string              `json:"deleted,omitempty"`
	Stats   stats.Stats         `json:"stats"`
}

// parseWhen accepts RFC3339 or YYYY-MM-DD in the local zone. A bare date
// used as an upper bound covers the whole day.
func parseWhen(flag, v string, endOfDay bool) (*time.Time, error) {
	if v == "" {
		return nil, nil
	}
	if t, err := time.Parse(time.RFC3339, v); err == nil {
		return &t, nil
	}
	t, err := time.ParseInLocation("2006-01-02", v, time.Local)
	if err != nil {
		return nil, fmt.Errorf("--%s: want RFC3339 or YYYY-MM-DD, got %q", flag, v)
	}
	if endOfDay {
		t = t.AddDate(0, 0, 1).Add(-time.Second)
	}
	return &t, nil
}

func splitList(v string) []string {
	var out []string
	for _, p := range strings.Split(v, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func newEntriesCmd(g *globals) *cobra.Command {
	cmd := &cobra.Command{Use: "entries", Short: "Journal entry operations"}
	cmd.AddCommand(
		newEntriesListCmd(g),
		newEntriesAddCmd(g),
		newEntriesUpdateCmd(g),
		newEntriesDeleteCmd(g),
		newEntriesFavoriteCmd(g),
	)
	return cmd
}

func newEntriesListCmd(g *globals) *cobra.Command {
	var from, to, emotions string
	var limit int
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List entries, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := entryFilter(from, to, emotions, limit)
			if err != nil {
				return err
			}
			c, err := g.authed()
			if err != nil {
				return err
			}
			list, err := c.ListEntries(cmd.Context(), f)
			if err != nil {
				return err
			}
			return g.print(list)
		},
	}
	addFilterFlags(cmd, &from, &to, &emotions, &limit)
	return cmd
}

func addFilterFlags(cmd *cobra.Command, from, to, emotions *string, limit *int) {
	cmd.Flags().StringVar(from, "from", "", "Earliest date (RFC3339 or YYYY-MM-DD)")
	cmd.Flags().StringVar(to, "to", "", "Latest date (RFC3339 or YYYY-MM-DD)")
	cmd.Flags().StringVar(emotions, "emotions", "", "Comma separated mood/emotion labels")
	cmd.Flags().IntVar(limit, "limit", 0, "Maximum entries, 0 for the server default")
}

func entryFilter(from, to, emotions string, limit int) (client.EntryFilter, error) {
	start, err := parseWhen("from", from, false)
	if err != nil {
		return client.EntryFilter{}, err
	}
	end, err := parseWhen("to", to, true)
	if err != nil {
		return client.EntryFilter{}, err
	}
	return client.EntryFilter{Start: start, End: end, Emotions: splitList(emotions), Limit: limit}, nil
}

func newEntriesAddCmd(g *globals) *cobra.Command {
	var req client.CreateEntryRequest
	var tags, date string
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create an entry",
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := parseWhen("date", date, false)
			if err != nil {
				return err
			}
			req.Date = d
			req.Tags = splitList(tags)
			j, _, err := g.journal(cmd.Context())
			if err != nil {
				return err
			}
			e, err := j.Create(cmd.Context(), req)
			if err != nil {
				return err
			}
			return g.print(mutationOutput{Entry: &e, Stats: j.Store().Snapshot().Stats})
		},
	}
	cmd.Flags().StringVar(&req.Title, "title", "", "Title")
	cmd.Flags().StringVarP(&req.Content, "content", "c", "", "Content (required)")
	cmd.Flags().StringVarP(&req.Mood, "mood", "m", "", "Mood label")
	cmd.Flags().StringVar(&req.Emotion, "emotion", "", "Emotion label")
	cmd.Flags().StringVar(&tags, "tags", "", "Comma separated tags")
	cmd.Flags().StringVar(&date, "date", "", "Authoring date, default now")
	_ = cmd.MarkFlagRequired("content")
	return cmd
}

func newEntriesUpdateCmd(g *globals) *cobra.Command {
	var title, content, mood, emotion, tags, date string
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update the given fields of an entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var req client.UpdateEntryRequest
			fl := cmd.Flags()
			if fl.Changed("title") {
				req.Title = &title
			}
			if fl.Changed("content") {
				req.Content = &content
			}
			if fl.Changed("mood") {
				req.Mood = &mood
			}
			if fl.Changed("emotion") {
				req.Emotion = &emotion
			}
			if fl.Changed("tags") {
				list := splitList(tags)
				if list == nil {
					list = []string{}
				}
				req.Tags = &list
			}
			if fl.Changed("date") {
				d, err := parseWhen("date", date, false)
				if err != nil {
					return err
				}
				req.Date = d
			}
			j, _, err := g.journal(cmd.Context())
			if err != nil {
				return err
			}
			e, err := j.Update(cmd.Context(), args[0], req)
			if err != nil {
				return err
			}
			return g.print(mutationOutput{Entry: &e, Stats: j.Store().Snapshot().Stats})
		},
	}
	cmd.Flags().StringVar(&title, "title", "", "Title")
	cmd.Flags().StringVarP(&content, "content", "c", "", "Content")
	cmd.Flags().StringVarP(&mood, "mood", "m", "", "Mood label")
	cmd.Flags().StringVar(&emotion, "emotion", "", "Emotion label")
	cmd.Flags().StringVar(&tags, "tags", "", "Comma separated tags, empty to clear")
	cmd.Flags().StringVar(&date, "date", "", "Authoring date")
	return cmd
}

func newEntriesDeleteCmd(g *globals) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			j, _, err := g.journal(cmd.Context())
			if err != nil {
				return err
			}
			if err := j.Delete(cmd.Context(), args[0]); err != nil {
				return err
			}
			return g.print(mutationOutput{Deleted: args[0], Stats: j.Store().Snapshot().Stats})
		},
	}
}

func newEntriesFavoriteCmd(g *globals) *cobra.Command {
	return &cobra.Command{
		Use:   "favorite <id>",
		Short: "Toggle the favorite flag of an entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			j, _, err := g.journal(cmd.Context())
			if err != nil {
				return err
			}
			e, err := j.ToggleFavorite(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return g.print(mutationOutput{Entry: &e, Stats: j.Store().Snapshot().Stats})
		},
	}
}
