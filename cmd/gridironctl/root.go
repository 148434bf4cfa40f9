package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	dbPath string
	topN   int
)

var rootCmd = &cobra.Command{
	Use:   "gridironctl",
	Short: "Football stats history tool",
	Long:  "Load season stat rows into a local SQLite history database and browse record boards offline.",
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "gridiron.db", "path to SQLite history database")
	rootCmd.PersistentFlags().IntVar(&topN, "top", 10, "entries per record board")

	rootCmd.AddCommand(loadCmd)
	rootCmd.AddCommand(playersCmd)
	rootCmd.AddCommand(recordsCmd)
	rootCmd.AddCommand(greatestCmd)
}
