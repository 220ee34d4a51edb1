package cmd

import (
	"time"

	"github.com/Suchak123/RSS-Extractor/internal/config"
	"github.com/Suchak123/RSS-Extractor/internal/discovery"
	"github.com/Suchak123/RSS-Extractor/internal/feed"
	"github.com/Suchak123/RSS-Extractor/internal/fetch"
	"github.com/Suchak123/RSS-Extractor/internal/hub"
)

// buildStack wires the shared HTTP client and the discovery components from
// config. The caller owns the returned client and must Close it.
func buildStack(cfg *config.Config) (*fetch.Client, *feed.Finder, *hub.Parser, *discovery.Processor) {
	client := fetch.NewClient(cfg.Fetch.UserAgent)

	validator := feed.NewValidator(
		client,
		time.Duration(cfg.Fetch.ProbeTimeoutSecs)*time.Second,
		cfg.Discover.ValidateConcurrency,
	)

	finder := feed.NewFinder(
		client,
		validator,
		time.Duration(cfg.Fetch.PageTimeoutSecs)*time.Second,
		cfg.Discover.MaxAnchorCandidates,
	)

	parser := hub.NewParser(
		client,
		validator,
		time.Duration(cfg.Fetch.HubPageTimeoutSecs)*time.Second,
		time.Duration(cfg.Fetch.HubProbeTimeoutSecs)*time.Second,
		cfg.Discover.ValidateConcurrency,
	)

	processor := discovery.NewProcessor(finder, parser, cfg.Discover.SiteConcurrency)
	return client, finder, parser, processor
}
