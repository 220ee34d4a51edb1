package cmd

import (
	"fmt"
	"os"

	"github.com/Suchak123/RSS-Extractor/internal/config"
	"github.com/Suchak123/RSS-Extractor/internal/database"
	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize configuration and database",
	Long:  `Creates the ~/.rss-extractor directory with config.yaml and the SQLite database.`,
	RunE:  runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	dir := config.Dir()

	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	cfg := config.Default()
	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}
	fmt.Printf("Created config at %s/config.yaml\n", dir)

	db, err := database.New(config.DBPath())
	if err != nil {
		return fmt.Errorf("failed to create database: %w", err)
	}
	db.Close()
	fmt.Printf("Created database at %s\n", config.DBPath())

	fmt.Println("\nRSS-Extractor initialized! Next steps:")
	fmt.Println("  rss-extractor discover <url>      Find feeds for a single site")
	fmt.Println("  rss-extractor run <input.csv>     Process a batch of sites")

	return nil
}
