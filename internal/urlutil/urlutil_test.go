package urlutil

import (
	"strings"
	"testing"
)

func TestEnsureScheme(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"example.com/rss", "https://example.com/rss"},
		{"http://example.com/rss", "http://example.com/rss"},
		{" example.com ", "https://example.com"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := EnsureScheme(tt.input); got != tt.want {
			t.Errorf("EnsureScheme(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestNormalizeSiteURL(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"example.com", "https://example.com"},
		{"example.com/", "https://example.com"},
		{"https://example.com", "https://example.com"},
		{"https://example.com/blog/posts", "https://example.com"},
		{"http://example.com/?q=1#frag", "http://example.com"},
		{"  example.com  ", "https://example.com"},
		{"", ""},
		{"   ", ""},
	}

	for _, tt := range tests {
		if got := NormalizeSiteURL(tt.input); got != tt.want {
			t.Errorf("NormalizeSiteURL(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestNormalizeSiteURLIdempotent(t *testing.T) {
	once := NormalizeSiteURL("example.com/")
	twice := NormalizeSiteURL(once)
	if once != twice {
		t.Errorf("expected idempotent normalization, got %q then %q", once, twice)
	}
	if once != NormalizeSiteURL("https://example.com") {
		t.Errorf("trailing-slash and schemeless forms should normalize identically")
	}
}

func TestNormalizeFeedURL(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"http://x.com/feed/?a=1#frag", "http://x.com/feed?a=1"},
		{"x.com/feed/", "https://x.com/feed"},
		{"https://x.com", "https://x.com"},
		{"https://x.com/", "https://x.com"},
		{"  https://x.com/rss.xml  ", "https://x.com/rss.xml"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := NormalizeFeedURL(tt.input); got != tt.want {
			t.Errorf("NormalizeFeedURL(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestNormalizeFeedList(t *testing.T) {
	got := NormalizeFeedList("http://a.com/f; http://a.com/f/; http://b.com/g")
	want := []string{"http://a.com/f", "http://b.com/g"}

	if len(got) != len(want) {
		t.Fatalf("expected %d feeds, got %d: %v", len(want), len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("feed %d: got %q, want %q", i, got[i], want[i])
		}
	}
}

func TestNormalizeFeedListIdempotent(t *testing.T) {
	first := NormalizeFeedList("http://b.com/g; http://a.com/f/;; bogus stuff here")
	second := NormalizeFeedList(strings.Join(first, "; "))

	if len(first) != len(second) {
		t.Fatalf("second pass changed length: %v vs %v", first, second)
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("entry %d changed: %q vs %q", i, first[i], second[i])
		}
	}
}

func TestNormalizeFeedListSentinel(t *testing.T) {
	if got := NormalizeFeedList(NotFound); len(got) != 0 {
		t.Errorf("sentinel should yield empty list, got %v", got)
	}
	if got := NormalizeFeedList(""); len(got) != 0 {
		t.Errorf("empty input should yield empty list, got %v", got)
	}
}

func TestJoinFeedList(t *testing.T) {
	if got := JoinFeedList(nil); got != NotFound {
		t.Errorf("expected sentinel for empty list, got %q", got)
	}
	if got := JoinFeedList([]string{"http://a.com/f", "http://b.com/g"}); got != "http://a.com/f; http://b.com/g" {
		t.Errorf("unexpected joined list: %q", got)
	}
}
