package feed

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/Suchak123/RSS-Extractor/internal/fetch"
)

func newTestValidator(t *testing.T) *Validator {
	t.Helper()
	client := fetch.NewClient("TestAgent/1.0")
	t.Cleanup(client.Close)
	return NewValidator(client, 2*time.Second, 10)
}

func TestIsFeedByContentType(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/rss+xml; charset=utf-8")
		w.Write([]byte("doesn't matter"))
	}))
	defer srv.Close()

	v := newTestValidator(t)
	if !v.IsFeed(context.Background(), srv.URL) {
		t.Error("expected rss content type to classify as feed")
	}
}

func TestIsFeedByBodyMarker(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte(`<?XML version="1.0"?><RSS version="2.0"><channel></channel></RSS>`))
	}))
	defer srv.Close()

	v := newTestValidator(t)
	if !v.IsFeed(context.Background(), srv.URL) {
		t.Error("expected body markers to classify as feed despite html content type")
	}
}

func TestIsFeedNonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/rss+xml")
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte(`<rss version="2.0"></rss>`))
	}))
	defer srv.Close()

	v := newTestValidator(t)
	if v.IsFeed(context.Background(), srv.URL) {
		t.Error("non-200 must classify as not-a-feed regardless of body")
	}
}

func TestIsFeedPlainHTML(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte("<html><body>just a page</body></html>"))
	}))
	defer srv.Close()

	v := newTestValidator(t)
	if v.IsFeed(context.Background(), srv.URL) {
		t.Error("plain html should not classify as feed")
	}
}

func TestIsFeedMarkerBeyondPrefix(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte("<html>" + strings.Repeat("x", 600) + "<rss></html>"))
	}))
	defer srv.Close()

	v := newTestValidator(t)
	if v.IsFeed(context.Background(), srv.URL) {
		t.Error("markers past the 500-char prefix should not count")
	}
}

func TestIsFeedUnreachable(t *testing.T) {
	v := newTestValidator(t)
	if v.IsFeed(context.Background(), "http://127.0.0.1:1/feed") {
		t.Error("connection failure should classify as not-a-feed")
	}
}

func TestFilterValid(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/feed", "/atom.xml":
			w.Header().Set("Content-Type", "application/xml")
			w.Write([]byte(`<rss version="2.0"></rss>`))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	v := newTestValidator(t)
	got := v.FilterValid(context.Background(), []string{
		srv.URL + "/feed",
		srv.URL + "/nope",
		srv.URL + "/atom.xml",
	})

	if len(got) != 2 {
		t.Fatalf("expected 2 valid feeds, got %d: %v", len(got), got)
	}
	if got[0] != srv.URL+"/feed" || got[1] != srv.URL+"/atom.xml" {
		t.Errorf("expected survivors in input order, got %v", got)
	}
}

func TestFilterValidEmpty(t *testing.T) {
	v := newTestValidator(t)
	if got := v.FilterValid(context.Background(), nil); got != nil {
		t.Errorf("expected nil for empty input, got %v", got)
	}
}
