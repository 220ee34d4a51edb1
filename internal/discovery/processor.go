package discovery

import (
	"context"
	"sync"

	"github.com/Suchak123/RSS-Extractor/internal/feed"
	"github.com/Suchak123/RSS-Extractor/internal/hub"
	"github.com/Suchak123/RSS-Extractor/internal/site"
	"github.com/Suchak123/RSS-Extractor/internal/urlutil"
)

// validateHubThreshold: a hub parse yielding more records than this gets a
// validation pass before the result is accepted; small result sets are
// accepted as-is.
const validateHubThreshold = 5

// Processor routes each site down the hub or the generic discovery path and
// assembles the final per-site result.
type Processor struct {
	finder          *feed.Finder
	parser          *hub.Parser
	siteConcurrency int
}

func NewProcessor(finder *feed.Finder, parser *hub.Parser, siteConcurrency int) *Processor {
	if siteConcurrency < 1 {
		siteConcurrency = 1
	}
	return &Processor{finder: finder, parser: parser, siteConcurrency: siteConcurrency}
}

// ProcessSite discovers feeds for one site. Invalid input and any failure
// along the way degrade to an empty feed list; the returned result always
// carries the (normalized, when possible) website URL so every input site
// has a corresponding output.
func (p *Processor) ProcessSite(ctx context.Context, rawURL string) site.Result {
	website := urlutil.NormalizeSiteURL(rawURL)
	if website == "" {
		return site.Result{Website: rawURL}
	}

	// The route decision and the seed fetch keep the input's path; only the
	// result key is reduced to the origin.
	seed := urlutil.EnsureScheme(rawURL)

	var feeds []string
	if hub.IsHubPageURL(seed) {
		records := p.parser.ParseFeeds(ctx, seed)
		if len(records) > validateHubThreshold {
			records = p.parser.ValidateAll(ctx, records)
		}
		for _, rec := range records {
			feeds = append(feeds, rec.URL)
		}
	} else {
		feeds = p.finder.FindFeeds(ctx, seed)
	}

	return site.Result{Website: website, Feeds: dedupNormalized(feeds)}
}

// ProgressFunc is called once per completed site with the 1-based completion
// count and the site's result. Calls are serialized and arrive in completion
// order.
type ProgressFunc func(done, total int, result site.Result)

// ProcessAll runs every site through ProcessSite, at most siteConcurrency at
// a time, all sharing one underlying connection pool. Per-site failures never
// abort the batch; results arrive in completion order.
func (p *Processor) ProcessAll(ctx context.Context, websites []string, progress ProgressFunc) []site.Result {
	results := make([]site.Result, 0, len(websites))

	var wg sync.WaitGroup
	var mu sync.Mutex
	sem := make(chan struct{}, p.siteConcurrency)

	for _, website := range websites {
		wg.Add(1)
		go func(website string) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			result := p.processSafely(ctx, website)

			// The callback runs under the lock so completion counts are
			// reported in order.
			mu.Lock()
			results = append(results, result)
			if progress != nil {
				progress(len(results), len(websites), result)
			}
			mu.Unlock()
		}(website)
	}
	wg.Wait()

	return results
}

// processSafely converts a panicking site task into an empty result, so one
// bad site cannot take the batch down.
func (p *Processor) processSafely(ctx context.Context, website string) (result site.Result) {
	defer func() {
		if r := recover(); r != nil {
			normalized := urlutil.NormalizeSiteURL(website)
			if normalized == "" {
				normalized = website
			}
			result = site.Result{Website: normalized}
		}
	}()
	return p.ProcessSite(ctx, website)
}

// dedupNormalized re-normalizes every URL and drops duplicates, preserving
// first-seen order.
func dedupNormalized(urls []string) []string {
	seen := make(map[string]bool)
	var feeds []string
	for _, u := range urls {
		normalized := urlutil.NormalizeFeedURL(u)
		if normalized == "" || seen[normalized] {
			continue
		}
		seen[normalized] = true
		feeds = append(feeds, normalized)
	}
	return feeds
}
