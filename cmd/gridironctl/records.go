package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/spf13/cobra"

	"github.com/okian/gridiron/internal/adapters/repository"
	"github.com/okian/gridiron/internal/domain/leaderboard"
)

var recordsCmd = &cobra.Command{
	Use:   "records",
	Short: "Show single-season record boards from stored history",
	Args:  cobra.NoArgs,
	RunE:  runRecords,
}

func runRecords(cmd *cobra.Command, args []string) error {
	store, err := repository.OpenSQLite(dbPath)
	if err != nil {
		return fmt.Errorf("open history database: %w", err)
	}
	defer store.Close()

	all, err := store.AllEntries(cmd.Context())
	if err != nil {
		return fmt.Errorf("load history: %w", err)
	}
	if len(all) == 0 {
		fmt.Fprintln(os.Stdout, "No history stored yet. Run 'gridironctl load <rows.json>' to add seasons.")
		return nil
	}

	boards := leaderboard.StandardSeasonBoards(leaderboard.Flatten(all), topN)
	for _, board := range boards {
		if len(board.Entries) == 0 {
			continue
		}
		fmt.Fprintf(os.Stdout, "\n--- %s ---\n\n", board.Stat)
		table := tablewriter.NewTable(os.Stdout, tablewriter.WithConfig(tablewriter.Config{
			Row:    tw.CellConfig{Alignment: tw.CellAlignment{Global: tw.AlignRight}},
			Header: tw.CellConfig{Alignment: tw.CellAlignment{Global: tw.AlignCenter}},
		}))
		table.Header("RANK", "PLAYER", "POS", "TEAM", "SEASON", "VALUE")
		for i, e := range board.Entries {
			table.Append(
				strconv.Itoa(i+1),
				e.Player,
				e.Position,
				e.Team,
				e.Season,
				fmt.Sprintf("%.0f", e.Value),
			)
		}
		table.Render()
	}
	return nil
}
