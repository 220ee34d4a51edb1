// internal/feed/finder.go
package feed

import (
	"context"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/Suchak123/RSS-Extractor/internal/cms"
	"github.com/Suchak123/RSS-Extractor/internal/fetch"
	"github.com/Suchak123/RSS-Extractor/internal/urlutil"
)

var commonFeedPaths = []string{
	"/rss",
	"/feed",
	"/rss.xml",
	"/feed.xml",
	"/atom.xml",
	"/index.xml",
	"/feeds",
	"/blog/feed",
	"/rss-feed",
	"/site/rss",
	"/site/feed",
	"/syndication",
	"/feed/rss",
	"/atom",
	"/news/rss",
	"/blog/rss",
}

var nestedFeedPaths = []string{"/feed", "/feed.xml", "/rss", "/rss.xml", "/atom.xml"}

var anchorHints = []string{"rss", "feed", "xml", "atom"}

// Finder locates feeds for one site by running five discovery strategies
// concurrently: CMS-specific paths, <link> tags, feed-looking anchors,
// well-known paths, and nested paths under the seed URL's own path. Every
// strategy validates its own candidates, so only confirmed feeds surface.
type Finder struct {
	client      *fetch.Client
	validator   *Validator
	pageTimeout time.Duration
	maxAnchors  int
}

func NewFinder(client *fetch.Client, validator *Validator, pageTimeout time.Duration, maxAnchors int) *Finder {
	if maxAnchors < 1 {
		maxAnchors = 30
	}
	return &Finder{
		client:      client,
		validator:   validator,
		pageTimeout: pageTimeout,
		maxAnchors:  maxAnchors,
	}
}

// FindFeeds fetches the landing page once and fans out the strategies.
// A failed landing fetch yields an empty result; a failed strategy
// contributes nothing but never blocks its siblings.
func (f *Finder) FindFeeds(ctx context.Context, siteURL string) []string {
	res, err := f.client.Get(ctx, siteURL, f.pageTimeout)
	if err != nil || !res.OK() {
		return nil
	}

	baseURL := urlutil.NormalizeSiteURL(siteURL)
	pageURL, err := url.Parse(siteURL)
	if err != nil {
		return nil
	}

	doc, docErr := goquery.NewDocumentFromReader(strings.NewReader(res.Body))
	platform := cms.Detect(res.Body)

	results := make([][]string, 5)
	var wg sync.WaitGroup

	run := func(i int, strategy func() []string) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i] = strategy()
		}()
	}

	run(0, func() []string { return f.tryPaths(ctx, baseURL, cms.FeedPaths(platform)) })
	run(3, func() []string { return f.tryPaths(ctx, baseURL, commonFeedPaths) })
	run(4, func() []string { return f.tryNestedPaths(ctx, baseURL, pageURL) })
	if docErr == nil {
		run(1, func() []string { return f.extractFromLinkTags(ctx, pageURL, doc) })
		run(2, func() []string { return f.extractFromAnchorTags(ctx, pageURL, doc) })
	}

	wg.Wait()

	seen := make(map[string]bool)
	var feeds []string
	for _, list := range results {
		for _, feedURL := range list {
			normalized := urlutil.NormalizeFeedURL(feedURL)
			if normalized == "" || seen[normalized] {
				continue
			}
			seen[normalized] = true
			feeds = append(feeds, normalized)
		}
	}
	return feeds
}

func (f *Finder) tryPaths(ctx context.Context, baseURL string, paths []string) []string {
	if len(paths) == 0 {
		return nil
	}

	candidates := make([]string, len(paths))
	for i, path := range paths {
		candidates[i] = baseURL + path
	}
	return f.validator.FilterValid(ctx, candidates)
}

func (f *Finder) tryNestedPaths(ctx context.Context, baseURL string, pageURL *url.URL) []string {
	// Only meaningful when the seed URL already points below the root;
	// root-level probing is the common-path strategy's job.
	seedPath := strings.Trim(pageURL.Path, "/")
	if seedPath == "" {
		return nil
	}

	prefix := baseURL + strings.TrimRight(pageURL.Path, "/")
	candidates := make([]string, len(nestedFeedPaths))
	for i, sub := range nestedFeedPaths {
		candidates[i] = prefix + sub
	}
	return f.validator.FilterValid(ctx, candidates)
}

func (f *Finder) extractFromLinkTags(ctx context.Context, pageURL *url.URL, doc *goquery.Document) []string {
	var candidates []string
	doc.Find(`link[type="application/rss+xml"], link[type="application/atom+xml"]`).Each(func(_ int, s *goquery.Selection) {
		href, ok := s.Attr("href")
		if !ok || href == "" {
			return
		}
		if resolved := resolveHref(pageURL, href); resolved != "" {
			candidates = append(candidates, resolved)
		}
	})
	return f.validator.FilterValid(ctx, candidates)
}

func (f *Finder) extractFromAnchorTags(ctx context.Context, pageURL *url.URL, doc *goquery.Document) []string {
	seen := make(map[string]bool)
	var candidates []string

	doc.Find("a[href]").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		href, _ := s.Attr("href")
		lower := strings.ToLower(href)

		hinted := false
		for _, hint := range anchorHints {
			if strings.Contains(lower, hint) {
				hinted = true
				break
			}
		}
		if !hinted {
			return true
		}

		resolved := resolveHref(pageURL, href)
		if resolved == "" || seen[resolved] {
			return true
		}
		seen[resolved] = true
		candidates = append(candidates, resolved)

		return len(candidates) < f.maxAnchors
	})

	return f.validator.FilterValid(ctx, candidates)
}

func resolveHref(base *url.URL, href string) string {
	ref, err := url.Parse(strings.TrimSpace(href))
	if err != nil {
		return ""
	}
	return base.ResolveReference(ref).String()
}
