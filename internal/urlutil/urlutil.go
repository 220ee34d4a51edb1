package urlutil

import (
	"net/url"
	"sort"
	"strings"
)

// NotFound is the sentinel stored/displayed for a site with no feeds.
const NotFound = "Not found"

// EnsureScheme trims a raw URL and prepends https:// when no scheme is
// present, leaving path and query intact. Routing decisions and seed fetches
// need the full URL; only identity keys go through NormalizeSiteURL.
func EnsureScheme(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	if !strings.HasPrefix(raw, "http://") && !strings.HasPrefix(raw, "https://") {
		raw = "https://" + raw
	}
	return raw
}

// NormalizeSiteURL reduces a raw URL to its origin: scheme://host with no
// path, query, fragment or trailing slash. Returns "" for unusable input.
func NormalizeSiteURL(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}

	if !strings.HasPrefix(raw, "http://") && !strings.HasPrefix(raw, "https://") {
		raw = "https://" + raw
	}

	parsed, err := url.Parse(raw)
	if err != nil || parsed.Host == "" {
		return ""
	}

	host := strings.TrimRight(parsed.Host, "/")
	return parsed.Scheme + "://" + host
}

// NormalizeFeedURL canonicalizes a feed URL so differently written forms
// compare equal: scheme://host + path without trailing slash, query kept,
// fragment dropped. Returns "" for unusable input.
func NormalizeFeedURL(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}

	if !strings.HasPrefix(raw, "http://") && !strings.HasPrefix(raw, "https://") {
		raw = "https://" + raw
	}

	parsed, err := url.Parse(raw)
	if err != nil || parsed.Host == "" {
		return ""
	}

	path := ""
	if parsed.Path != "" {
		path = strings.TrimRight(parsed.Path, "/")
	}

	normalized := parsed.Scheme + "://" + parsed.Host + path
	if parsed.RawQuery != "" {
		normalized += "?" + parsed.RawQuery
	}
	return normalized
}

// NormalizeFeedList splits a "url1; url2; url3" string, normalizes each
// entry, drops invalid and duplicate entries, and returns the survivors
// sorted. The NotFound sentinel and empty input yield an empty list.
// Idempotent: feeding the joined output back in returns the same list.
func NormalizeFeedList(joined string) []string {
	if joined == "" || joined == NotFound {
		return nil
	}

	seen := make(map[string]bool)
	var feeds []string
	for _, entry := range strings.Split(joined, ";") {
		normalized := NormalizeFeedURL(entry)
		if normalized == "" || seen[normalized] {
			continue
		}
		seen[normalized] = true
		feeds = append(feeds, normalized)
	}

	sort.Strings(feeds)
	return feeds
}

// JoinFeedList is the inverse of NormalizeFeedList; an empty list yields
// the NotFound sentinel.
func JoinFeedList(feeds []string) string {
	if len(feeds) == 0 {
		return NotFound
	}
	return strings.Join(feeds, "; ")
}
