package cmd

import (
	"fmt"
	"strings"

	"github.com/Suchak123/RSS-Extractor/internal/config"
	"github.com/Suchak123/RSS-Extractor/internal/database"
	"github.com/Suchak123/RSS-Extractor/internal/site"
	"github.com/Suchak123/RSS-Extractor/internal/urlutil"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var sitesCmd = &cobra.Command{
	Use:   "sites",
	Short: "List stored site results",
	Long:  `Display every processed website with its stored feed count.`,
	RunE:  runSites,
}

var sitesShowFeeds bool

func init() {
	rootCmd.AddCommand(sitesCmd)
	sitesCmd.Flags().BoolVar(&sitesShowFeeds, "feeds", false, "Also print each stored feed URL")
}

func runSites(cmd *cobra.Command, args []string) error {
	db, err := database.New(config.DBPath())
	if err != nil {
		return err
	}
	defer db.Close()

	records, err := site.NewRepository(db).List()
	if err != nil {
		return err
	}

	if len(records) == 0 {
		fmt.Println("No results stored yet. Run 'rss-extractor run <input.csv>' first.")
		return nil
	}

	headerStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	countStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	urlStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("8"))

	fmt.Println(headerStyle.Render(fmt.Sprintf(" %-6s  %s", "FEEDS", "WEBSITE")))
	fmt.Println(strings.Repeat("─", 80))

	for _, rec := range records {
		count := rec.FeedCount()
		label := fmt.Sprintf("%-6d", count)
		if count == 0 {
			fmt.Printf(" %s  %s  %s\n", dimStyle.Render(label), urlStyle.Render(rec.WebsiteURL), dimStyle.Render(urlutil.NotFound))
			continue
		}

		fmt.Printf(" %s  %s\n", countStyle.Render(label), urlStyle.Render(rec.WebsiteURL))
		if sitesShowFeeds {
			for _, feedURL := range urlutil.NormalizeFeedList(rec.FeedURLs) {
				fmt.Printf("         %s\n", dimStyle.Render(feedURL))
			}
		}
	}

	return nil
}
