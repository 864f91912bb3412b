package youtube

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
)

// newTranscriptServer serves watch pages and timedtext documents for a
// fixed set of video IDs.
func newTranscriptServer(t *testing.T) *Client {
	t.Helper()
	mux := http.NewServeMux()
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	playerJSON := func(tracks string) string {
		return `<html><script>var ytInitialPlayerResponse = {"captions":{"playerCaptionsTracklistRenderer":{"captionTracks":` + tracks + `}}};</script></html>`
	}

	mux.HandleFunc("/watch", func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Query().Get("v") {
		case "hasboth":
			fmt.Fprint(w, playerJSON(`[{"baseUrl":"`+srv.URL+`/tt/auto","languageCode":"en","kind":"asr"},{"baseUrl":"`+srv.URL+`/tt/manual","languageCode":"en"},{"baseUrl":"`+srv.URL+`/tt/fr","languageCode":"fr"}]`))
		case "autoonly":
			fmt.Fprint(w, playerJSON(`[{"baseUrl":"`+srv.URL+`/tt/auto","languageCode":"en","kind":"asr"}]`))
		case "french":
			fmt.Fprint(w, playerJSON(`[{"baseUrl":"`+srv.URL+`/tt/fr","languageCode":"fr"}]`))
		case "blank":
			fmt.Fprint(w, playerJSON(`[{"baseUrl":"`+srv.URL+`/tt/blank","languageCode":"en"}]`))
		case "nocaptions":
			fmt.Fprint(w, `<html><body>watch page without caption metadata</body></html>`)
		default:
			http.Error(w, "unavailable", http.StatusNotFound)
		}
	})
	mux.HandleFunc("/tt/manual", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `<transcript><text start="0" dur="2">Hello &amp;#39;world&amp;#39;</text><text start="2" dur="1">   </text><text start="3" dur="2">again</text></transcript>`)
	})
	mux.HandleFunc("/tt/auto", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `<transcript><text start="0" dur="2">auto generated</text></transcript>`)
	})
	mux.HandleFunc("/tt/blank", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `<transcript><text start="0" dur="1">  </text><text start="1" dur="1"></text></transcript>`)
	})

	return newTestClient(srv)
}

func TestTranscript(t *testing.T) {
	c := newTranscriptServer(t)
	ctx := context.Background()

	cases := []struct {
		name    string
		videoID string
		want    string
	}{
		{"manual track preferred over auto", "hasboth", "Hello 'world' again"},
		{"auto-generated accepted when alone", "autoonly", "auto generated"},
		{"non-english only yields empty", "french", ""},
		{"all-blank snippets yield empty", "blank", ""},
		{"no caption metadata yields empty", "nocaptions", ""},
		{"unavailable video yields empty", "missing", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := c.Transcript(ctx, tc.videoID)
			if got != tc.want {
				t.Fatalf("Transcript(%q) = %q; want %q", tc.videoID, got, tc.want)
			}
		})
	}
}
