package feed

import (
	"context"
	"fmt"
	"time"

	"github.com/mmcdole/gofeed"
)

// TitleFetcher resolves a confirmed feed URL to its declared title for
// display. Discovery itself never parses feed contents; this exists only
// for the human-facing output path.
type TitleFetcher struct {
	parser  *gofeed.Parser
	timeout time.Duration
}

func NewTitleFetcher(userAgent string, timeout time.Duration) *TitleFetcher {
	parser := gofeed.NewParser()
	parser.UserAgent = userAgent
	return &TitleFetcher{parser: parser, timeout: timeout}
}

func (f *TitleFetcher) FetchTitle(ctx context.Context, feedURL string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	parsed, err := f.parser.ParseURLWithContext(feedURL, ctx)
	if err != nil {
		return "", fmt.Errorf("failed to parse feed: %w", err)
	}
	return parsed.Title, nil
}
