package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/riskibarqy/football-manager/internal/app"
	"github.com/riskibarqy/football-manager/internal/domain/player"
	"github.com/riskibarqy/football-manager/internal/domain/topscorers"
	"github.com/riskibarqy/football-manager/internal/usecase"
	"github.com/spf13/cobra"
)

var errLedgerOutOfSync = errors.New("player totals differ from the goal ledger")

type openFunc func(ctx context.Context) (*app.App, error)

type cli struct {
	open openFunc
	now  func() time.Time
}

func newRootCmd(open openFunc) *cobra.Command {
	c := &cli{open: open, now: time.Now}

	root := &cobra.Command{
		Use:   "football-manager",
		Short: "Manage players, matches and goals of the league",
		Long: `A command-line interface over the league store. It runs the same use cases
as the HTTP API against the store selected by STORE_DRIVER.`,
		SilenceUsage: true,
	}
	root.AddCommand(c.playersCmd(), c.goalsCmd(), c.matchesCmd(), c.topCmd(), c.reconcileCmd())
	return root
}

func (c *cli) withApp(cmd *cobra.Command, fn func(ctx context.Context, a *app.App) error) (err error) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	a, err := c.open(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := a.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}()
	return fn(ctx, a)
}

func (c *cli) playersCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "players", Short: "Register and list players"}

	var name, position string
	add := &cobra.Command{
		Use:   "add",
		Short: "Register a player",
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.withApp(cmd, func(ctx context.Context, a *app.App) error {
				p, err := a.Players.Register(ctx, usecase.RegisterPlayerInput{Name: name, Position: position})
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "registered player %d: %s (%s)\n", p.ID, p.Name, p.Position)
				return nil
			})
		},
	}
	add.Flags().StringVar(&name, "name", "", "player name")
	add.Flags().StringVar(&position, "position", string(player.PositionForward), "player position")
	_ = add.MarkFlagRequired("name")

	list := &cobra.Command{
		Use:   "list",
		Short: "List players by name",
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.withApp(cmd, func(ctx context.Context, a *app.App) error {
				players, err := a.Players.ListAll(ctx)
				if err != nil {
					return err
				}
				w := newTable(cmd.OutOrStdout(), "ID", "NAME", "POSITION", "GOALS")
				for _, p := range players {
					fmt.Fprintf(w, "%d\t%s\t%s\t%d\n", p.ID, p.Name, p.Position, p.TotalGoals)
				}
				return w.Flush()
			})
		},
	}

	cmd.AddCommand(add, list)
	return cmd
}

func (c *cli) goalsCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "goals", Short: "Record goals"}

	var (
		playerID, matchID int64
		quantity          int
		date              string
	)
	add := &cobra.Command{
		Use:   "add",
		Short: "Append a goal entry and bump the player's total",
		RunE: func(cmd *cobra.Command, args []string) error {
			day, err := parseDay(date)
			if err != nil {
				return err
			}
			input := usecase.AddGoalInput{PlayerID: playerID, Quantity: quantity, Date: day}
			if matchID > 0 {
				input.MatchID = &matchID
			}
			return c.withApp(cmd, func(ctx context.Context, a *app.App) error {
				g, err := a.Goals.AddGoal(ctx, input)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "recorded goal entry %d: player %d scored %d on %s\n",
					g.ID, g.PlayerID, g.Quantity, g.Date.Format(time.DateOnly))
				return nil
			})
		},
	}
	add.Flags().Int64Var(&playerID, "player", 0, "player id")
	add.Flags().IntVar(&quantity, "quantity", 1, "number of goals")
	add.Flags().Int64Var(&matchID, "match", 0, "match id (optional)")
	add.Flags().StringVar(&date, "date", "", "day of the goals, YYYY-MM-DD (default today)")
	_ = add.MarkFlagRequired("player")

	cmd.AddCommand(add)
	return cmd
}

func (c *cli) matchesCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "matches", Short: "Record and list matches"}

	var team1, team2, winner, date string
	add := &cobra.Command{
		Use:   "add",
		Short: "Record a match",
		RunE: func(cmd *cobra.Command, args []string) error {
			when, err := parseInstant(date)
			if err != nil {
				return err
			}
			return c.withApp(cmd, func(ctx context.Context, a *app.App) error {
				m, err := a.Matches.RecordMatch(ctx, usecase.RecordMatchInput{
					Team1:  team1,
					Team2:  team2,
					Winner: winner,
					Date:   when,
				})
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "recorded match %d: %s x %s\n", m.ID, m.Team1, m.Team2)
				return nil
			})
		},
	}
	add.Flags().StringVar(&team1, "team1", "", "first team")
	add.Flags().StringVar(&team2, "team2", "", "second team")
	add.Flags().StringVar(&winner, "winner", "", "winning team, empty for a draw")
	add.Flags().StringVar(&date, "date", "", "kick-off, RFC 3339 or YYYY-MM-DD (default now)")
	_ = add.MarkFlagRequired("team1")
	_ = add.MarkFlagRequired("team2")

	list := &cobra.Command{
		Use:   "list",
		Short: "List matches, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.withApp(cmd, func(ctx context.Context, a *app.App) error {
				matches, err := a.Matches.ListAll(ctx)
				if err != nil {
					return err
				}
				w := newTable(cmd.OutOrStdout(), "ID", "DATE", "TEAM1", "TEAM2", "WINNER")
				for _, m := range matches {
					fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n", m.ID, m.Date.UTC().Format(time.RFC3339), m.Team1, m.Team2, m.Winner)
				}
				return w.Flush()
			})
		},
	}

	cmd.AddCommand(add, list)
	return cmd
}

func (c *cli) topCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "top", Short: "Show the top scorers of a month or a year"}

	var month, year int
	monthCmd := &cobra.Command{
		Use:   "month",
		Short: "Top scorers of a calendar month",
		RunE: func(cmd *cobra.Command, args []string) error {
			now := c.now().UTC()
			m, y := month, year
			if !cmd.Flags().Changed("month") {
				m = int(now.Month())
			}
			if !cmd.Flags().Changed("year") {
				y = now.Year()
			}
			return c.withApp(cmd, func(ctx context.Context, a *app.App) error {
				rows, err := a.TopScores.TopScorersForMonth(ctx, m, y)
				if err != nil {
					return err
				}
				return printTopScorers(cmd.OutOrStdout(), rows)
			})
		},
	}
	monthCmd.Flags().IntVar(&month, "month", 0, "month 1-12 (default current)")
	monthCmd.Flags().IntVar(&year, "year", 0, "year (default current)")

	var annual int
	yearCmd := &cobra.Command{
		Use:   "year",
		Short: "Top scorers of a calendar year",
		RunE: func(cmd *cobra.Command, args []string) error {
			y := annual
			if !cmd.Flags().Changed("year") {
				y = c.now().UTC().Year()
			}
			return c.withApp(cmd, func(ctx context.Context, a *app.App) error {
				rows, err := a.TopScores.TopScorersForYear(ctx, y)
				if err != nil {
					return err
				}
				return printTopScorers(cmd.OutOrStdout(), rows)
			})
		},
	}
	yearCmd.Flags().IntVar(&annual, "year", 0, "year (default current)")

	cmd.AddCommand(monthCmd, yearCmd)
	return cmd
}

func (c *cli) reconcileCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reconcile",
		Short: "Compare player totals with the goal ledger",
		Long:  "Reports every player whose total differs from the sum of their goal entries. Exits non-zero on any mismatch.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.withApp(cmd, func(ctx context.Context, a *app.App) error {
				report, err := a.Reconcile.Reconcile(ctx)
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "checked %d players, %d mismatches\n", report.Checked, len(report.Mismatches))
				if len(report.Mismatches) == 0 {
					return nil
				}
				w := newTable(out, "ID", "NAME", "TOTAL", "LEDGER")
				for _, m := range report.Mismatches {
					fmt.Fprintf(w, "%d\t%s\t%d\t%d\n", m.PlayerID, m.PlayerName, m.Cached, m.Ledger)
				}
				if err := w.Flush(); err != nil {
					return err
				}
				return errLedgerOutOfSync
			})
		},
	}
}

func printTopScorers(out io.Writer, rows []topscorers.TopScorer) error {
	if len(rows) == 0 {
		fmt.Fprintln(out, "no goals in this period")
		return nil
	}
	w := newTable(out, "RANK", "ID", "NAME", "GOALS")
	for _, row := range rows {
		fmt.Fprintf(w, "%d\t%d\t%s\t%d\n", row.Rank, row.Player.ID, row.Player.Name, row.TotalGoals)
	}
	return w.Flush()
}

func newTable(out io.Writer, headers ...string) *tabwriter.Writer {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, strings.Join(headers, "\t"))
	return w
}

func parseDay(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, nil
	}
	v, err := time.Parse(time.DateOnly, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("date must be YYYY-MM-DD: %w", err)
	}
	return v, nil
}

func parseInstant(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, nil
	}
	if v, err := time.Parse(time.RFC3339, raw); err == nil {
		return v, nil
	}
	v, err := time.Parse(time.DateOnly, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("date must be RFC 3339 or YYYY-MM-DD")
	}
	return v, nil
}
