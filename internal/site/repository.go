package site

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Suchak123/RSS-Extractor/internal/database"
	"github.com/Suchak123/RSS-Extractor/internal/urlutil"
)

// Result is one site's discovery outcome: the normalized site URL and its
// deduplicated feed list (empty when nothing was found).
type Result struct {
	Website string
	Feeds   []string
}

// RSSString renders the feed list in storage form ("url1; url2" or the
// not-found sentinel).
func (r Result) RSSString() string {
	return urlutil.JoinFeedList(r.Feeds)
}

// Record is a stored row from the rss_feeds table.
type Record struct {
	ID         int64
	WebsiteURL string
	FeedURLs   string
	CreatedAt  time.Time
}

// FeedCount counts the stored feed entries.
func (rec Record) FeedCount() int {
	return countFeeds(rec.FeedURLs)
}

type Repository struct {
	db *database.DB
}

func NewRepository(db *database.DB) *Repository {
	return &Repository{db: db}
}

// ErrInvalidWebsite is returned by Save when the site URL cannot be
// normalized to an origin.
var ErrInvalidWebsite = errors.New("invalid website URL")

// Save upserts one site's feed list keyed by normalized site URL. An existing
// row is overwritten only when the new feed count strictly exceeds the stored
// count, so a transient bad crawl never clobbers a richer prior result.
// Returns whether the row was written.
func (r *Repository) Save(websiteURL, rssString string) (bool, error) {
	website := urlutil.NormalizeSiteURL(websiteURL)
	if website == "" {
		return false, fmt.Errorf("%w: %q", ErrInvalidWebsite, websiteURL)
	}

	newList := urlutil.NormalizeFeedList(rssString)
	newCount := len(newList)

	var newFeeds sql.NullString
	if newCount > 0 {
		newFeeds = sql.NullString{String: strings.Join(newList, "; "), Valid: true}
	}

	tx, err := r.db.Begin()
	if err != nil {
		return false, err
	}
	defer tx.Rollback()

	var oldFeeds sql.NullString
	err = tx.QueryRow(`SELECT feed_urls FROM rss_feeds WHERE website_url = ?`, website).Scan(&oldFeeds)
	switch {
	case err == sql.ErrNoRows:
		// First sighting of this site.
	case err != nil:
		return false, err
	default:
		if newCount <= countFeeds(oldFeeds.String) {
			return false, nil
		}
	}

	_, err = tx.Exec(`
		INSERT INTO rss_feeds (website_url, feed_urls) VALUES (?, ?)
		ON CONFLICT (website_url) DO UPDATE SET feed_urls = excluded.feed_urls`,
		website, newFeeds,
	)
	if err != nil {
		return false, fmt.Errorf("failed to save result for %s: %w", website, err)
	}

	return true, tx.Commit()
}

// SaveBatch persists a slice of results. A result whose website URL cannot
// be normalized is skipped, so one malformed input row never blocks the rest
// of the batch; store failures remain terminal.
func (r *Repository) SaveBatch(results []Result) (saved int, err error) {
	for _, res := range results {
		wrote, err := r.Save(res.Website, res.RSSString())
		if errors.Is(err, ErrInvalidWebsite) {
			continue
		}
		if err != nil {
			return saved, err
		}
		if wrote {
			saved++
		}
	}
	return saved, nil
}

// Get returns the stored record for a site URL (normalized before lookup).
func (r *Repository) Get(websiteURL string) (*Record, error) {
	website := urlutil.NormalizeSiteURL(websiteURL)

	var rec Record
	var feeds sql.NullString
	err := r.db.QueryRow(
		`SELECT id, website_url, feed_urls, created_at FROM rss_feeds WHERE website_url = ?`,
		website,
	).Scan(&rec.ID, &rec.WebsiteURL, &feeds, &rec.CreatedAt)
	if err != nil {
		return nil, err
	}
	rec.FeedURLs = feeds.String
	return &rec, nil
}

// List returns all stored records ordered by site URL.
func (r *Repository) List() ([]Record, error) {
	rows, err := r.db.Query(`SELECT id, website_url, feed_urls, created_at FROM rss_feeds ORDER BY website_url`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var rec Record
		var feeds sql.NullString
		if err := rows.Scan(&rec.ID, &rec.WebsiteURL, &feeds, &rec.CreatedAt); err != nil {
			return nil, err
		}
		rec.FeedURLs = feeds.String
		records = append(records, rec)
	}
	return records, rows.Err()
}

// CleanupDuplicates removes rows whose website URLs normalize identically
// (legacy rows differing only by trailing slash), keeping the row with the
// most feeds. Returns the number of rows deleted.
func (r *Repository) CleanupDuplicates() (int, error) {
	records, err := r.List()
	if err != nil {
		return 0, err
	}

	byNormalized := make(map[string][]Record)
	for _, rec := range records {
		key := urlutil.NormalizeSiteURL(rec.WebsiteURL)
		byNormalized[key] = append(byNormalized[key], rec)
	}

	deleted := 0
	for _, group := range byNormalized {
		if len(group) < 2 {
			continue
		}

		keep := group[0]
		for _, rec := range group[1:] {
			if rec.FeedCount() > keep.FeedCount() {
				keep = rec
			}
		}

		for _, rec := range group {
			if rec.ID == keep.ID {
				continue
			}
			if _, err := r.db.Exec(`DELETE FROM rss_feeds WHERE id = ?`, rec.ID); err != nil {
				return deleted, err
			}
			deleted++
		}
	}
	return deleted, nil
}

func countFeeds(joined string) int {
	if joined == "" {
		return 0
	}
	count := 0
	for _, entry := range strings.Split(joined, ";") {
		if strings.TrimSpace(entry) != "" {
			count++
		}
	}
	return count
}
