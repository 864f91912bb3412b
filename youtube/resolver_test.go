package youtube

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

const resolvedChannelID = "UCabcdefghijklmnopqrstuv"

type countingTransport struct {
	calls int
}

func (t *countingTransport) RoundTrip(*http.Request) (*http.Response, error) {
	t.calls++
	return nil, errors.New("network disabled in this test")
}

func newTestClient(srv *httptest.Server) *Client {
	return &Client{http: srv.Client(), baseURL: srv.URL}
}

func TestResolveChannelIDCanonicalInputSkipsNetwork(t *testing.T) {
	transport := &countingTransport{}
	c := &Client{http: &http.Client{Transport: transport}, baseURL: "http://example.invalid"}

	got, err := c.ResolveChannelID(context.Background(), resolvedChannelID)
	if err != nil {
		t.Fatalf("ResolveChannelID error: %v", err)
	}
	if got != resolvedChannelID {
		t.Errorf("got %q; want input returned unchanged", got)
	}
	if transport.calls != 0 {
		t.Errorf("made %d network calls; want 0 for canonical input", transport.calls)
	}
}

func TestResolveChannelIDFromHandle(t *testing.T) {
	var calls int
	var path string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		path = r.URL.Path
		w.Write([]byte(`<html><head><link rel="canonical" href="https://www.youtube.com/channel/` + resolvedChannelID + `"></head></html>`))
	}))
	defer srv.Close()
	c := newTestClient(srv)

	cases := []struct {
		name     string
		input    string
		wantPath string
	}{
		{"handle", "@SomeHandle", "/@SomeHandle"},
		{"bare username gets @ prefix", "SomeUser", "/@SomeUser"},
		{"surrounding whitespace trimmed", "  @SomeHandle  ", "/@SomeHandle"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			calls = 0
			got, err := c.ResolveChannelID(context.Background(), tc.input)
			if err != nil {
				t.Fatalf("ResolveChannelID(%q) error: %v", tc.input, err)
			}
			if got != resolvedChannelID {
				t.Errorf("got %q; want %q", got, resolvedChannelID)
			}
			if calls != 1 {
				t.Errorf("made %d page fetches; want exactly 1", calls)
			}
			if path != tc.wantPath {
				t.Errorf("fetched %q; want %q", path, tc.wantPath)
			}
		})
	}
}

func TestResolveChannelIDErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/@gone":
			http.Error(w, "not found", http.StatusNotFound)
		default:
			w.Write([]byte("<html>no canonical link here</html>"))
		}
	}))
	defer srv.Close()
	c := newTestClient(srv)

	if _, err := c.ResolveChannelID(context.Background(), "@gone"); err == nil {
		t.Error("want error for non-2xx channel page")
	} else if !strings.Contains(err.Error(), "404") {
		t.Errorf("error %q should carry the status code", err)
	}

	if _, err := c.ResolveChannelID(context.Background(), "@nopattern"); err == nil {
		t.Error("want error when the channel ID pattern is absent")
	}
}
