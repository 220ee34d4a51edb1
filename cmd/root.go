package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "rss-extractor",
	Short: "Discover RSS/Atom feeds for websites",
	Long: `RSS-Extractor takes website URLs and finds the syndication feeds they
publish, without any feed-discovery API: it probes well-known paths, reads
page metadata, detects the CMS, and recognizes dedicated feed-hub pages.

Pipeline: read sites → discover feeds per site → store per-site feed lists`,
}

func init() {
	rootCmd.Version = "0.1.0"
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
