// internal/hub/parser.go
package hub

import (
	"context"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/Suchak123/RSS-Extractor/internal/feed"
	"github.com/Suchak123/RSS-Extractor/internal/fetch"
	"github.com/Suchak123/RSS-Extractor/internal/urlutil"
)

const headingSelector = "h1, h2, h3, h4, h5, h6"

// Parser extracts feed records from hub pages.
type Parser struct {
	client       *fetch.Client
	validator    *feed.Validator
	pageTimeout  time.Duration
	probeTimeout time.Duration
	concurrency  int
}

func NewParser(client *fetch.Client, validator *feed.Validator, pageTimeout, probeTimeout time.Duration, concurrency int) *Parser {
	if concurrency < 1 {
		concurrency = 1
	}
	return &Parser{
		client:       client,
		validator:    validator,
		pageTimeout:  pageTimeout,
		probeTimeout: probeTimeout,
		concurrency:  concurrency,
	}
}

// DiscoverHubPages probes the known hub-style paths off a site's origin and
// returns the ones that respond 200 with hub-looking content.
func (p *Parser) DiscoverHubPages(ctx context.Context, siteURL string) []string {
	base := urlutil.NormalizeSiteURL(siteURL)
	if base == "" {
		return nil
	}

	var hubs []string
	for _, path := range hubPaths {
		testURL := base + path
		res, err := p.client.Get(ctx, testURL, p.probeTimeout)
		if err != nil || !res.OK() {
			continue
		}
		if LooksLikeHubPage(res.Body) {
			hubs = append(hubs, testURL)
		}
	}
	return hubs
}

// ParseFeeds fetches a hub page and extracts every feed it links, merged
// from feed-typed <link> tags and feed-looking anchors, deduplicated by
// normalized URL. A fetch failure yields an empty list.
func (p *Parser) ParseFeeds(ctx context.Context, hubURL string) []Record {
	res, err := p.client.Get(ctx, hubURL, p.pageTimeout)
	if err != nil || !res.OK() {
		return nil
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(res.Body))
	if err != nil {
		return nil
	}

	base, err := url.Parse(urlutil.NormalizeSiteURL(hubURL))
	if err != nil {
		return nil
	}

	seen := make(map[string]bool)
	var records []Record

	doc.Find(`link[type="application/rss+xml"], link[type="application/atom+xml"]`).Each(func(_ int, s *goquery.Selection) {
		href, ok := s.Attr("href")
		if !ok || href == "" {
			return
		}
		normalized := urlutil.NormalizeFeedURL(resolveHref(base, href))
		if normalized == "" || seen[normalized] {
			return
		}
		seen[normalized] = true

		title := strings.TrimSpace(s.AttrOr("title", ""))
		if title == "" {
			title = TitleFromURL(normalized)
		}
		records = append(records, Record{Category: "General", Title: title, URL: normalized})
	})

	doc.Find("a[href]").Each(func(_ int, s *goquery.Selection) {
		href, _ := s.Attr("href")
		if !IsFeedURL(href) {
			return
		}
		normalized := urlutil.NormalizeFeedURL(resolveHref(base, href))
		if normalized == "" || seen[normalized] {
			return
		}
		seen[normalized] = true

		records = append(records, Record{
			Category: ExtractCategory(s),
			Title:    ExtractTitle(s),
			URL:      normalized,
		})
	})

	return records
}

// ValidateAll keeps only records whose URL actually serves a feed, checked
// concurrently under the parser's validation limit. Input order is kept.
func (p *Parser) ValidateAll(ctx context.Context, records []Record) []Record {
	if len(records) == 0 {
		return nil
	}

	valid := make([]bool, len(records))

	var wg sync.WaitGroup
	sem := make(chan struct{}, p.concurrency)
	for i, rec := range records {
		wg.Add(1)
		go func(i int, url string) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()
			valid[i] = p.validator.IsFeed(ctx, url)
		}(i, rec.URL)
	}
	wg.Wait()

	var kept []Record
	for i, rec := range records {
		if valid[i] {
			kept = append(kept, rec)
		}
	}
	return kept
}

// ExtractCategory walks outward from an anchor looking for classification
// context: a heading preceding the enclosing list item, then any preceding
// heading up the ancestor chain, then a category-flavored class or data
// attribute on an ancestor. Defaults to "General".
func ExtractCategory(anchor *goquery.Selection) string {
	if li := anchor.Closest("li"); li.Length() > 0 {
		if heading := precedingHeading(li); heading != "" {
			return heading
		}
	}

	var found string
	anchor.Parents().EachWithBreak(func(_ int, parent *goquery.Selection) bool {
		if heading := precedingHeading(parent); heading != "" {
			found = heading
			return false
		}
		return true
	})
	if found != "" {
		return found
	}

	var category string
	anchor.Parents().EachWithBreak(func(_ int, parent *goquery.Selection) bool {
		if !parent.Is("section, div, article") {
			return true
		}
		class, ok := parent.Attr("class")
		if !ok {
			return true
		}
		for _, cls := range strings.Fields(class) {
			lower := strings.ToLower(cls)
			if strings.Contains(lower, "category") || strings.Contains(lower, "section") ||
				strings.Contains(lower, "topic") || strings.Contains(lower, "group") {
				category = cleanSegment(cls)
				return false
			}
		}
		return true
	})
	if category != "" {
		return category
	}

	anchor.Parents().EachWithBreak(func(_ int, parent *goquery.Selection) bool {
		if v, ok := parent.Attr("data-category"); ok && v != "" {
			category = v
			return false
		}
		if v, ok := parent.Attr("data-section"); ok && v != "" {
			category = v
			return false
		}
		return true
	})
	if category != "" {
		return category
	}

	return "General"
}

// precedingHeading finds the text of the nearest heading before s: either a
// preceding sibling heading or a heading nested inside a preceding sibling.
func precedingHeading(s *goquery.Selection) string {
	var text string
	s.PrevAll().EachWithBreak(func(_ int, prev *goquery.Selection) bool {
		if prev.Is(headingSelector) {
			text = strings.TrimSpace(prev.Text())
			return text == ""
		}
		if h := prev.Find(headingSelector).Last(); h.Length() > 0 {
			text = strings.TrimSpace(h.Text())
			return text == ""
		}
		return true
	})
	return text
}

// ExtractTitle derives a display title for an anchor's feed: own text, then
// title attribute, aria-label, a short parent text, then the URL itself.
func ExtractTitle(anchor *goquery.Selection) string {
	if title := strings.TrimSpace(anchor.Text()); len(title) > 2 {
		return title
	}
	if title := strings.TrimSpace(anchor.AttrOr("title", "")); len(title) > 2 {
		return title
	}
	if title := strings.TrimSpace(anchor.AttrOr("aria-label", "")); len(title) > 2 {
		return title
	}

	if parent := anchor.Parent(); parent.Length() > 0 {
		text := strings.Join(strings.Fields(parent.Text()), " ")
		if text != "" && len(text) < 100 {
			return text
		}
	}

	if href := anchor.AttrOr("href", ""); href != "" {
		if title := titleFromPath(href); title != "" {
			return title
		}
	}

	return "Untitled Feed"
}

// TitleFromURL derives a title from the last non-extension path segment of a
// feed URL, falling back to "RSS Feed".
func TitleFromURL(url string) string {
	if title := titleFromPath(url); title != "" {
		return title
	}
	return "RSS Feed"
}

func titleFromPath(rawURL string) string {
	parsed, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil {
		return ""
	}
	parts := strings.Split(parsed.Path, "/")
	for i := len(parts) - 1; i >= 0; i-- {
		part := parts[i]
		if part == "" || strings.HasSuffix(part, ".xml") ||
			strings.HasSuffix(part, ".rss") || strings.HasSuffix(part, ".atom") {
			continue
		}
		if clean := cleanSegment(part); len(clean) > 2 {
			return clean
		}
	}
	return ""
}

func cleanSegment(segment string) string {
	clean := strings.ReplaceAll(segment, "-", " ")
	clean = strings.ReplaceAll(clean, "_", " ")
	// A cases.Caser carries transformer state, so build one per call rather
	// than sharing across concurrent hub parses.
	return cases.Title(language.English).String(clean)
}

func resolveHref(base *url.URL, href string) string {
	ref, err := url.Parse(strings.TrimSpace(href))
	if err != nil {
		return ""
	}
	return base.ResolveReference(ref).String()
}
