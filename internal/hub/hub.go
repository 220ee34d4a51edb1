// internal/hub/hub.go
//
// Some sites publish a single page that indexes many feeds at once. Treating
// that page as a hub yields richer results (titles, categories) than probing
// the site path by path.
package hub

import (
	"regexp"
	"strings"
)

// Record is one feed extracted from a hub page.
type Record struct {
	Category string
	Title    string
	URL      string
}

// hubURLPatterns route a site straight to the hub parser before any
// network call happens.
var hubURLPatterns = []string{"/rss", "/feeds", "/feed-list", "/subscribe", "/syndication"}

// hubPaths are probed by DiscoverHubPages.
var hubPaths = []string{
	"/rss",
	"/feeds",
	"/feed-list",
	"/rss-feeds",
	"/subscribe",
	"/syndication",
	"/news/rss",
	"/blog/rss",
	"/feeds.html",
	"/rss.html",
	"/rss-feeds.html",
	"/feed",
	"/atom",
	"/rss.xml",
	"/feeds.xml",
}

// hubIndicators are prose phrases typical of a feed-directory page.
var hubIndicators = []string{
	"rss feed",
	"subscribe to",
	"feed url",
	"syndication",
	"available feeds",
	"rss feeds",
	"atom feed",
	"news feeds",
	"feed list",
	"rss channels",
	"subscribe via rss",
}

var feedURLPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\.rss$`),
	regexp.MustCompile(`\.xml$`),
	regexp.MustCompile(`\.atom$`),
	regexp.MustCompile(`/rss/`),
	regexp.MustCompile(`/feed/`),
	regexp.MustCompile(`/feeds/`),
	regexp.MustCompile(`/atom/`),
	regexp.MustCompile(`/rss$`),
	regexp.MustCompile(`/feed$`),
	regexp.MustCompile(`/atom$`),
	regexp.MustCompile(`rss\.xml`),
	regexp.MustCompile(`feed\.xml`),
	regexp.MustCompile(`atom\.xml`),
}

// IsHubPageURL is the router's cheap pre-check: true when the URL path
// already looks like a feed directory. Evaluated before any network call.
func IsHubPageURL(url string) bool {
	lower := strings.ToLower(url)
	for _, pattern := range hubURLPatterns {
		if strings.Contains(lower, pattern) {
			return true
		}
	}
	return false
}

// LooksLikeHubPage classifies a fetched body. Two signals are counted
// separately so both prose-style directories ("subscribe to our feeds...")
// and bare link lists qualify: ≥2 indicator phrases or ≥3 feed-link-like
// occurrences.
func LooksLikeHubPage(body string) bool {
	lower := strings.ToLower(body)

	indicatorCount := 0
	for _, indicator := range hubIndicators {
		if strings.Contains(lower, indicator) {
			indicatorCount++
		}
	}

	feedLinkCount := strings.Count(lower, ".xml") +
		strings.Count(lower, `href="/feed`) +
		strings.Count(lower, `href="/rss`) +
		strings.Count(lower, "atom.xml")

	return indicatorCount >= 2 || feedLinkCount >= 3
}

// IsFeedURL reports whether an href looks like a direct feed URL.
func IsFeedURL(url string) bool {
	if url == "" {
		return false
	}
	lower := strings.ToLower(url)
	for _, pattern := range feedURLPatterns {
		if pattern.MatchString(lower) {
			return true
		}
	}
	return false
}
