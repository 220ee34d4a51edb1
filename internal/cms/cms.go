package cms

import "strings"

// Platform identifies a content management system detected from page markup.
type Platform string

const (
	WordPress Platform = "wordpress"
	Drupal    Platform = "drupal"
	Ghost     Platform = "ghost"
	Medium    Platform = "medium"
	None      Platform = ""
)

// fingerprints is checked in order; the first matching substring wins.
var fingerprints = []struct {
	marker   string
	platform Platform
}{
	{"wp-content", WordPress},
	{"wp-", WordPress},
	{"drupal", Drupal},
	{"/ghost/", Ghost},
	{"medium.com", Medium},
}

var feedPaths = map[Platform][]string{
	WordPress: {"/feed", "/comments/feed", "/blog/feed"},
	Drupal:    {"/rss.xml", "/feed"},
	Ghost:     {"/rss/"},
	Medium:    {"/feed"},
}

// Detect inspects raw page markup for platform fingerprints.
func Detect(htmlText string) Platform {
	text := strings.ToLower(htmlText)
	for _, fp := range fingerprints {
		if strings.Contains(text, fp.marker) {
			return fp.platform
		}
	}
	return None
}

// FeedPaths returns the feed paths worth probing for a detected platform.
func FeedPaths(p Platform) []string {
	return feedPaths[p]
}
