package main

import (
	"fmt"
	"os"
	"sort"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/spf13/cobra"

	"github.com/okian/gridiron/internal/adapters/repository"
)

var playersCmd = &cobra.Command{
	Use:   "players",
	Short: "List all players with stored history",
	Args:  cobra.NoArgs,
	RunE:  runPlayers,
}

func runPlayers(cmd *cobra.Command, args []string) error {
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

	type line struct {
		name, position string
		seasons        int
		games          float64
	}
	lines := make([]line, 0, len(all))
	for key, seasons := range all {
		games := 0.0
		for _, s := range seasons {
			games += s.Games
		}
		lines = append(lines, line{
			name:     key.PlayerName(),
			position: key.Position(),
			seasons:  len(seasons),
			games:    games,
		})
	}
	sort.Slice(lines, func(i, j int) bool {
		if lines[i].position != lines[j].position {
			return lines[i].position < lines[j].position
		}
		return lines[i].name < lines[j].name
	})

	table := tablewriter.NewTable(os.Stdout, tablewriter.WithConfig(tablewriter.Config{
		Row:    tw.CellConfig{Alignment: tw.CellAlignment{Global: tw.AlignRight}},
		Header: tw.CellConfig{Alignment: tw.CellAlignment{Global: tw.AlignCenter}},
	}))
	table.Header("POS", "PLAYER", "SEASONS", "GAMES")
	for _, l := range lines {
		table.Append(l.position, l.name, strconv.Itoa(l.seasons), fmt.Sprintf("%.0f", l.games))
	}
	table.Render()
	return nil
}
