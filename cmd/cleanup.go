package cmd

import (
	"fmt"

	"github.com/Suchak123/RSS-Extractor/internal/config"
	"github.com/Suchak123/RSS-Extractor/internal/database"
	"github.com/Suchak123/RSS-Extractor/internal/site"
	"github.com/spf13/cobra"
)

var cleanupCmd = &cobra.Command{
	Use:   "cleanup",
	Short: "Remove duplicate site records",
	Long: `Removes stored rows whose website URLs normalize to the same origin
(legacy rows differing only by a trailing slash), keeping the row with the
most feeds.`,
	RunE: runCleanup,
}

func init() {
	rootCmd.AddCommand(cleanupCmd)
}

func runCleanup(cmd *cobra.Command, args []string) error {
	db, err := database.New(config.DBPath())
	if err != nil {
		return err
	}
	defer db.Close()

	deleted, err := site.NewRepository(db).CleanupDuplicates()
	if err != nil {
		return err
	}

	if deleted == 0 {
		fmt.Println("No duplicates found.")
	} else {
		fmt.Printf("Removed %d duplicate record(s)\n", deleted)
	}
	return nil
}
