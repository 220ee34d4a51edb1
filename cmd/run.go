package cmd

import (
	"context"
	"fmt"

	"github.com/Suchak123/RSS-Extractor/internal/config"
	"github.com/Suchak123/RSS-Extractor/internal/csvfile"
	"github.com/Suchak123/RSS-Extractor/internal/database"
	"github.com/Suchak123/RSS-Extractor/internal/site"
	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run [input.csv]",
	Short: "Discover feeds for every site in a CSV and store the results",
	Long: `Reads website URLs from the input CSV (a "url" column), discovers feeds
for each site concurrently, and upserts the per-site feed lists into the
database. An existing record is only overwritten by a richer result.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRun,
}

var runConcurrency int

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().IntVarP(&runConcurrency, "concurrency", "c", 0, "Concurrent sites (0 = config value)")
}

func runRun(cmd *cobra.Command, args []string) error {
	inputCSV := "input_websites.csv"
	if len(args) > 0 {
		inputCSV = args[0]
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if runConcurrency > 0 {
		cfg.Discover.SiteConcurrency = runConcurrency
	}

	websites, err := csvfile.ReadWebsites(inputCSV)
	if err != nil {
		return err
	}
	if len(websites) == 0 {
		fmt.Printf("No websites found in %s. Add URLs under a \"url\" column and run again.\n", inputCSV)
		return nil
	}
	fmt.Printf("Loaded %d website(s) from %s\n", len(websites), inputCSV)

	// Processing must not start if the store is unavailable.
	db, err := database.New(config.DBPath())
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()
	repo := site.NewRepository(db)

	client, _, _, processor := buildStack(cfg)
	defer client.Close()

	fmt.Printf("Processing %d websites...\n\n", len(websites))

	results := processor.ProcessAll(context.Background(), websites, func(done, total int, res site.Result) {
		fmt.Printf("[%d/%d] %s: %d feed(s)\n", done, total, res.Website, len(res.Feeds))
	})

	fmt.Println("\nSaving results...")
	saved, err := repo.SaveBatch(results)
	if err != nil {
		return fmt.Errorf("failed to save results: %w", err)
	}
	fmt.Printf("Saved %d result(s), %d skipped\n", saved, len(results)-saved)

	printSummary(results)
	return nil
}

func printSummary(results []site.Result) {
	total := len(results)
	withFeeds := 0
	totalFeeds := 0
	for _, r := range results {
		if len(r.Feeds) > 0 {
			withFeeds++
			totalFeeds += len(r.Feeds)
		}
	}

	fmt.Println("\n============================================================")
	fmt.Println("PROCESSING SUMMARY")
	fmt.Println("============================================================")
	fmt.Printf("Total websites processed: %d\n", total)
	fmt.Printf("Websites with feeds:      %d\n", withFeeds)
	fmt.Printf("Websites without feeds:   %d\n", total-withFeeds)
	if withFeeds > 0 {
		fmt.Printf("Total feeds found:        %d\n", totalFeeds)
		fmt.Printf("Average feeds per site:   %.1f\n", float64(totalFeeds)/float64(withFeeds))
	}
	fmt.Println("============================================================")
}
