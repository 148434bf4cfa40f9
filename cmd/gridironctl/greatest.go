package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/spf13/cobra"

	"github.com/okian/gridiron/internal/adapters/repository"
	"github.com/okian/gridiron/internal/domain/score"
)

var greatestCmd = &cobra.Command{
	Use:   "greatest",
	Short: "Show the greatest scored seasons from stored history",
	Long:  "Score every stored season and rank the best ones. Only players with more than one stored season are considered.",
	Args:  cobra.NoArgs,
	RunE:  runGreatest,
}

func runGreatest(cmd *cobra.Command, args []string) error {
	store, err := repository.OpenSQLite(dbPath)
	if err != nil {
		return fmt.Errorf("open history database: %w", err)
	}
	defer store.Close()

	all, err := store.AllEntries(cmd.Context())
	if err != nil {
		return fmt.Errorf("load history: %w", err)
	}

	seasons := score.Greatest(all)
	if len(seasons) == 0 {
		fmt.Fprintln(os.Stdout, "No scoreable seasons yet. Players need more than one stored season to rank.")
		return nil
	}

	table := tablewriter.NewTable(os.Stdout, tablewriter.WithConfig(tablewriter.Config{
		Row:    tw.CellConfig{Alignment: tw.CellAlignment{Global: tw.AlignRight}},
		Header: tw.CellConfig{Alignment: tw.CellAlignment{Global: tw.AlignCenter}},
	}))
	table.Header("RANK", "PLAYER", "POS", "SEASON", "SCORE", "TIER", "KEY STATS")
	for i, s := range seasons {
		table.Append(
			strconv.Itoa(i+1),
			s.Player,
			s.Position,
			s.Season,
			fmt.Sprintf("%.1f", s.Score),
			s.Tier,
			strings.Join(s.KeyStats, ", "),
		)
	}
	table.Render()
	return nil
}
