package feed

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/Suchak123/RSS-Extractor/internal/fetch"
)

// classificationPrefix caps how much body is inspected for feed markers,
// so a probe never downloads a full page just to reject it.
const classificationPrefix = 500

var contentTypeMarkers = []string{"xml", "rss", "atom"}

var bodyMarkers = []string{"<rss", "<feed", "<?xml", "<atom"}

// Validator confirms that candidate URLs actually serve RSS/Atom documents.
type Validator struct {
	client      *fetch.Client
	timeout     time.Duration
	concurrency int
}

func NewValidator(client *fetch.Client, timeout time.Duration, concurrency int) *Validator {
	if concurrency < 1 {
		concurrency = 1
	}
	return &Validator{client: client, timeout: timeout, concurrency: concurrency}
}

// IsFeed fetches a URL and classifies the response. Any fetch failure or
// non-200 status classifies as not-a-feed; nothing propagates to the caller.
func (v *Validator) IsFeed(ctx context.Context, url string) bool {
	res, err := v.client.GetPrefix(ctx, url, v.timeout, classificationPrefix)
	if err != nil || !res.OK() {
		return false
	}

	contentType := strings.ToLower(res.ContentType)
	for _, marker := range contentTypeMarkers {
		if strings.Contains(contentType, marker) {
			return true
		}
	}

	body := strings.ToLower(res.Body)
	for _, marker := range bodyMarkers {
		if strings.Contains(body, marker) {
			return true
		}
	}
	return false
}

// FilterValid checks candidates concurrently, bounded by the validator's
// concurrency limit, and returns the ones that classified as feeds in their
// original order.
func (v *Validator) FilterValid(ctx context.Context, urls []string) []string {
	if len(urls) == 0 {
		return nil
	}

	valid := make([]bool, len(urls))

	var wg sync.WaitGroup
	sem := make(chan struct{}, v.concurrency)
	for i, u := range urls {
		wg.Add(1)
		go func(i int, u string) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()
			valid[i] = v.IsFeed(ctx, u)
		}(i, u)
	}
	wg.Wait()

	var feeds []string
	for i, u := range urls {
		if valid[i] {
			feeds = append(feeds, u)
		}
	}
	return feeds
}
