package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/okian/gridiron/internal/adapters/repository"
	"github.com/okian/gridiron/internal/domain/identity"
	"github.com/okian/gridiron/internal/domain/model"
)

var loadCmd = &cobra.Command{
	Use:   "load <rows.json>",
	Short: "Load season stat rows into the history database",
	Long:  "Read a JSON array of season stat rows and append them to the history database. Rows carrying a season label already on file replace the stored season in place.",
	Args:  cobra.ExactArgs(1),
	RunE:  runLoad,
}

func runLoad(cmd *cobra.Command, args []string) error {
	raw, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("read rows file: %w", err)
	}

	var rows []model.StatRow
	if err := json.Unmarshal(raw, &rows); err != nil {
		return fmt.Errorf("parse rows file: %w", err)
	}
	if len(rows) == 0 {
		return fmt.Errorf("%s contains no rows", args[0])
	}

	store, err := repository.OpenSQLite(dbPath)
	if err != nil {
		return fmt.Errorf("open history database: %w", err)
	}
	defer store.Close()

	ctx := cmd.Context()
	appended, replaced, skipped := 0, 0, 0
	for i, row := range rows {
		if row.Name == "" || row.Position == "" {
			fmt.Fprintf(os.Stderr, "skipping row %d: missing name or position\n", i)
			skipped++
			continue
		}
		key := identity.Resolve(row.Position, row.Name)
		rep, err := store.Append(ctx, key, row.Snapshot())
		if err != nil {
			return fmt.Errorf("append row %d (%s): %w", i, key, err)
		}
		if rep {
			replaced++
		} else {
			appended++
		}
	}

	fmt.Fprintf(os.Stdout, "Loaded %d rows into %s (%d new, %d replaced, %d skipped)\n",
		len(rows)-skipped, dbPath, appended, replaced, skipped)
	return nil
}
