package cmd

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/Suchak123/RSS-Extractor/internal/config"
	"github.com/Suchak123/RSS-Extractor/internal/hub"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var hubCmd = &cobra.Command{
	Use:   "hub <url>",
	Short: "Parse a feed-hub page",
	Long: `Treats the given URL as a page that lists many feeds, extracts every
feed with its title and category, and prints them grouped by category.`,
	Args: cobra.ExactArgs(1),
	RunE: runHub,
}

var (
	hubValidate bool
	hubScan     bool
)

func init() {
	rootCmd.AddCommand(hubCmd)
	hubCmd.Flags().BoolVar(&hubValidate, "validate", false, "Keep only feeds that respond as RSS/Atom")
	hubCmd.Flags().BoolVar(&hubScan, "scan", false, "Scan the site's known hub paths instead of parsing the URL")
}

func runHub(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	client, _, parser, _ := buildStack(cfg)
	defer client.Close()

	ctx := context.Background()

	if hubScan {
		hubs := parser.DiscoverHubPages(ctx, args[0])
		if len(hubs) == 0 {
			fmt.Println("No hub pages found.")
			return nil
		}
		fmt.Printf("Found %d hub page(s):\n", len(hubs))
		for _, h := range hubs {
			fmt.Printf("  %s\n", h)
		}
		return nil
	}

	records := parser.ParseFeeds(ctx, args[0])
	if len(records) == 0 {
		fmt.Println("No feeds found on this page.")
		return nil
	}

	if hubValidate {
		fmt.Printf("Validating %d feed(s)...\n", len(records))
		records = parser.ValidateAll(ctx, records)
	}

	displayRecords(records)
	return nil
}

func displayRecords(records []hub.Record) {
	sort.Slice(records, func(i, j int) bool {
		if records[i].Category != records[j].Category {
			return records[i].Category < records[j].Category
		}
		return records[i].Title < records[j].Title
	})

	categoryStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	titleStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	urlStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("14"))

	fmt.Printf("Found %d feed(s)\n", len(records))

	currentCategory := ""
	for _, rec := range records {
		if rec.Category != currentCategory {
			currentCategory = rec.Category
			fmt.Println()
			fmt.Println(categoryStyle.Render("[" + currentCategory + "]"))
			fmt.Println(strings.Repeat("─", 40))
		}
		fmt.Printf("  %s\n  %s\n", titleStyle.Render(rec.Title), urlStyle.Render(rec.URL))
	}
}
