package site

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/Suchak123/RSS-Extractor/internal/database"
	"github.com/Suchak123/RSS-Extractor/internal/urlutil"
)

func setupTestDB(t *testing.T) *database.DB {
	tmpDir := t.TempDir()
	db, err := database.New(filepath.Join(tmpDir, "test.db"))
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}
	return db
}

func TestSaveNewSite(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	repo := NewRepository(db)

	wrote, err := repo.Save("example.com/", "https://example.com/feed; https://example.com/blog/rss")
	if err != nil {
		t.Fatalf("failed to save: %v", err)
	}
	if !wrote {
		t.Error("expected first save to write")
	}

	rec, err := repo.Get("https://example.com")
	if err != nil {
		t.Fatalf("failed to read back: %v", err)
	}
	if rec.WebsiteURL != "https://example.com" {
		t.Errorf("site URL not normalized: %q", rec.WebsiteURL)
	}
	if rec.FeedCount() != 2 {
		t.Errorf("expected 2 feeds, got %d (%q)", rec.FeedCount(), rec.FeedURLs)
	}
}

func TestSaveSkipsWhenNotRicher(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	repo := NewRepository(db)

	if _, err := repo.Save("example.com", "https://example.com/a; https://example.com/b; https://example.com/c"); err != nil {
		t.Fatalf("failed to seed: %v", err)
	}

	// Fewer feeds: skipped.
	wrote, err := repo.Save("example.com", "https://example.com/a; https://example.com/b")
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if wrote {
		t.Error("expected save with fewer feeds to be skipped")
	}

	rec, _ := repo.Get("example.com")
	if rec.FeedCount() != 3 {
		t.Errorf("stored record should be unchanged, got %d feeds", rec.FeedCount())
	}

	// Equal count: also skipped.
	wrote, err = repo.Save("example.com", "https://example.com/x; https://example.com/y; https://example.com/z")
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if wrote {
		t.Error("expected save with equal feed count to be skipped")
	}

	// More feeds: overwritten.
	wrote, err = repo.Save("example.com", "https://example.com/a; https://example.com/b; https://example.com/c; https://example.com/d")
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if !wrote {
		t.Error("expected save with more feeds to overwrite")
	}

	rec, _ = repo.Get("example.com")
	if rec.FeedCount() != 4 {
		t.Errorf("expected 4 feeds after overwrite, got %d", rec.FeedCount())
	}
}

func TestSaveNotFoundSentinel(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	repo := NewRepository(db)

	wrote, err := repo.Save("example.com", urlutil.NotFound)
	if err != nil {
		t.Fatalf("failed to save sentinel: %v", err)
	}
	if !wrote {
		t.Error("expected first sentinel save to write a row")
	}

	rec, err := repo.Get("example.com")
	if err != nil {
		t.Fatalf("failed to read back: %v", err)
	}
	if rec.FeedCount() != 0 {
		t.Errorf("expected 0 feeds, got %d", rec.FeedCount())
	}
}

func TestSaveInvalidURL(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	repo := NewRepository(db)

	_, err := repo.Save("", "https://example.com/feed")
	if !errors.Is(err, ErrInvalidWebsite) {
		t.Errorf("expected ErrInvalidWebsite for empty website URL, got %v", err)
	}
}

func TestSaveBatch(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	repo := NewRepository(db)

	results := []Result{
		{Website: "https://a.com", Feeds: []string{"https://a.com/feed"}},
		{Website: "https://b.com", Feeds: nil},
		{Website: "https://c.com", Feeds: []string{"https://c.com/rss", "https://c.com/atom.xml"}},
	}

	saved, err := repo.SaveBatch(results)
	if err != nil {
		t.Fatalf("batch save failed: %v", err)
	}
	if saved != 3 {
		t.Errorf("expected 3 rows written, got %d", saved)
	}

	records, err := repo.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(records) != 3 {
		t.Errorf("expected 3 records, got %d", len(records))
	}
}

func TestSaveBatchSkipsInvalidWebsite(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	repo := NewRepository(db)

	// A malformed input row must not block the rows that follow it.
	results := []Result{
		{Website: "not a url"},
		{Website: "https://good.com", Feeds: []string{"https://good.com/feed"}},
		{Website: "https://also-good.com", Feeds: nil},
	}

	saved, err := repo.SaveBatch(results)
	if err != nil {
		t.Fatalf("batch save failed: %v", err)
	}
	if saved != 2 {
		t.Errorf("expected 2 rows written, got %d", saved)
	}

	rec, err := repo.Get("https://good.com")
	if err != nil {
		t.Fatalf("valid site was not persisted: %v", err)
	}
	if rec.FeedCount() != 1 {
		t.Errorf("expected 1 feed, got %d", rec.FeedCount())
	}
	if _, err := repo.Get("https://also-good.com"); err != nil {
		t.Fatalf("trailing site was not persisted: %v", err)
	}
}

func TestCleanupDuplicates(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	repo := NewRepository(db)

	// Seed raw rows bypassing Save's normalization, as legacy data would be.
	db.Exec(`INSERT INTO rss_feeds (website_url, feed_urls) VALUES (?, ?)`,
		"https://example.com", "https://example.com/feed")
	db.Exec(`INSERT INTO rss_feeds (website_url, feed_urls) VALUES (?, ?)`,
		"https://example.com/", "https://example.com/feed; https://example.com/rss")
	db.Exec(`INSERT INTO rss_feeds (website_url, feed_urls) VALUES (?, ?)`,
		"https://other.com", "https://other.com/feed")

	deleted, err := repo.CleanupDuplicates()
	if err != nil {
		t.Fatalf("cleanup failed: %v", err)
	}
	if deleted != 1 {
		t.Errorf("expected 1 row deleted, got %d", deleted)
	}

	records, _ := repo.List()
	if len(records) != 2 {
		t.Fatalf("expected 2 records after cleanup, got %d", len(records))
	}
	for _, rec := range records {
		if urlutil.NormalizeSiteURL(rec.WebsiteURL) == "https://example.com" && rec.FeedCount() != 2 {
			t.Errorf("cleanup kept the poorer duplicate: %q", rec.FeedURLs)
		}
	}
}

func TestResultRSSString(t *testing.T) {
	r := Result{Website: "https://example.com"}
	if r.RSSString() != urlutil.NotFound {
		t.Errorf("empty result should render sentinel, got %q", r.RSSString())
	}

	r.Feeds = []string{"https://example.com/feed"}
	if r.RSSString() != "https://example.com/feed" {
		t.Errorf("unexpected rss string: %q", r.RSSString())
	}
}
