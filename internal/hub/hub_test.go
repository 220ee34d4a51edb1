package hub

import "testing"

func TestIsHubPageURL(t *testing.T) {
	tests := []struct {
		url  string
		want bool
	}{
		{"https://news.example.com/rss", true},
		{"https://example.com/feeds", true},
		{"https://example.com/feed-list.html", true},
		{"https://example.com/Subscribe", true},
		{"https://example.com/syndication/all", true},
		{"https://example.com", false},
		{"https://example.com/blog", false},
	}

	for _, tt := range tests {
		if got := IsHubPageURL(tt.url); got != tt.want {
			t.Errorf("IsHubPageURL(%q) = %v, want %v", tt.url, got, tt.want)
		}
	}
}

func TestLooksLikeHubPageIndicators(t *testing.T) {
	// Two distinct indicator phrases, no link-like occurrences.
	body := "<p>Subscribe to our channels. Our available feeds are listed below.</p>"
	if !LooksLikeHubPage(body) {
		t.Error("two indicator phrases should classify as hub")
	}
}

func TestLooksLikeHubPageFeedLinks(t *testing.T) {
	// No indicator phrases, three .xml occurrences.
	body := `<a href="a.xml">a</a><a href="b.xml">b</a><a href="c.xml">c</a>`
	if !LooksLikeHubPage(body) {
		t.Error("three feed-like links should classify as hub")
	}
}

func TestLooksLikeHubPageBelowThresholds(t *testing.T) {
	// One indicator, two link-like occurrences: not enough on either axis.
	body := `<p>Check our rss feed</p><a href="a.xml">a</a><a href="b.xml">b</a>`
	if LooksLikeHubPage(body) {
		t.Error("one indicator and two links should not classify as hub")
	}
}

func TestIsFeedURL(t *testing.T) {
	tests := []struct {
		url  string
		want bool
	}{
		{"/news.rss", true},
		{"/sports.xml", true},
		{"/tech.atom", true},
		{"/rss/world", true},
		{"/feed/all", true},
		{"/feeds/politics", true},
		{"https://example.com/rss", true},
		{"https://example.com/section/feed", true},
		{"https://example.com/rss.xml?id=3", true},
		{"/about", false},
		{"/feedback-form", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := IsFeedURL(tt.url); got != tt.want {
			t.Errorf("IsFeedURL(%q) = %v, want %v", tt.url, got, tt.want)
		}
	}
}
