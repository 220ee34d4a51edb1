package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/Suchak123/RSS-Extractor/internal/config"
	"github.com/Suchak123/RSS-Extractor/internal/database"
	"github.com/Suchak123/RSS-Extractor/internal/feed"
	"github.com/Suchak123/RSS-Extractor/internal/site"
	"github.com/spf13/cobra"
)

var discoverCmd = &cobra.Command{
	Use:   "discover <url>",
	Short: "Discover feeds for a single website",
	Long: `Runs the full discovery pipeline against one site: hub-page routing,
CMS detection, page metadata, anchor heuristics, and known-path probing.`,
	Args: cobra.ExactArgs(1),
	RunE: runDiscover,
}

var (
	discoverTitles bool
	discoverSave   bool
)

func init() {
	rootCmd.AddCommand(discoverCmd)
	discoverCmd.Flags().BoolVar(&discoverTitles, "titles", false, "Fetch each confirmed feed's title")
	discoverCmd.Flags().BoolVar(&discoverSave, "save", false, "Store the result in the database")
}

func runDiscover(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	client, _, _, processor := buildStack(cfg)
	defer client.Close()

	rawURL := args[0]
	fmt.Printf("Discovering feeds for %s...\n\n", rawURL)

	result := processor.ProcessSite(context.Background(), rawURL)

	if len(result.Feeds) == 0 {
		fmt.Printf("No feeds found for %s\n", result.Website)
	} else {
		fmt.Printf("Found %d feed(s) for %s:\n", len(result.Feeds), result.Website)

		var titles *feed.TitleFetcher
		if discoverTitles {
			titles = feed.NewTitleFetcher(cfg.Fetch.UserAgent, time.Duration(cfg.Fetch.PageTimeoutSecs)*time.Second)
		}

		for _, feedURL := range result.Feeds {
			if titles != nil {
				if title, err := titles.FetchTitle(context.Background(), feedURL); err == nil && title != "" {
					fmt.Printf("  %s  (%s)\n", feedURL, title)
					continue
				}
			}
			fmt.Printf("  %s\n", feedURL)
		}
	}

	if !discoverSave {
		return nil
	}

	db, err := database.New(config.DBPath())
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	wrote, err := site.NewRepository(db).Save(result.Website, result.RSSString())
	if err != nil {
		return err
	}
	if wrote {
		fmt.Printf("\nSaved result for %s\n", result.Website)
	} else {
		fmt.Printf("\nKept existing richer record for %s\n", result.Website)
	}

	return nil
}
