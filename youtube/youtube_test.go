package youtube

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestFetchChannelVideosEndToEnd(t *testing.T) {
	mux := http.NewServeMux()
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	mux.HandleFunc("/@somechannel", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `<link rel="canonical" href="https://www.youtube.com/channel/`+resolvedChannelID+`">`)
	})
	mux.HandleFunc("/feeds/videos.xml", func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("channel_id"); got != resolvedChannelID {
			t.Errorf("feed requested for channel %q; want %q", got, resolvedChannelID)
		}
		entries := videoEntry("vidwithtx01", "Captioned", "", "2024-06-12T12:00:00+00:00", "has captions") +
			videoEntry("vidwithout2", "Silent", "", "2024-06-12T11:00:00+00:00", "no captions")
		fmt.Fprintf(w, videoFeedTemplate, entries)
	})
	mux.HandleFunc("/watch", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("v") == "vidwithtx01" {
			fmt.Fprint(w, `{"captionTracks":[{"baseUrl":"`+srv.URL+`/timedtext","languageCode":"en"}]}`)
			return
		}
		fmt.Fprint(w, `<html>no captions here</html>`)
	})
	mux.HandleFunc("/timedtext", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `<transcript><text start="0" dur="2">hello there</text></transcript>`)
	})

	c := newTestClient(srv)
	videos, err := c.FetchChannelVideos(context.Background(), "@somechannel", time.Time{}, true, 50)
	if err != nil {
		t.Fatalf("FetchChannelVideos error: %v", err)
	}
	if len(videos) != 2 {
		t.Fatalf("got %d videos; want 2", len(videos))
	}

	if videos[0].Transcript != "hello there" {
		t.Errorf("Transcript = %q; want %q", videos[0].Transcript, "hello there")
	}
	// A video with no English transcript still appears, transcript empty.
	if videos[1].VideoID != "vidwithout2" {
		t.Fatalf("second video = %q; want the caption-less one kept", videos[1].VideoID)
	}
	if videos[1].Transcript != "" {
		t.Errorf("Transcript = %q; want empty for caption-less video", videos[1].Transcript)
	}
}

func TestFetchChannelVideosWithoutTranscripts(t *testing.T) {
	mux := http.NewServeMux()
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	watchCalls := 0
	mux.HandleFunc("/feeds/videos.xml", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, videoFeedTemplate, videoEntry("vidnotxreq1", "One", "", "2024-06-12T12:00:00+00:00", ""))
	})
	mux.HandleFunc("/watch", func(w http.ResponseWriter, r *http.Request) {
		watchCalls++
		http.NotFound(w, r)
	})

	c := newTestClient(srv)
	videos, err := c.FetchChannelVideos(context.Background(), resolvedChannelID, time.Time{}, false, 50)
	if err != nil {
		t.Fatalf("FetchChannelVideos error: %v", err)
	}
	if len(videos) != 1 || videos[0].Transcript != "" {
		t.Fatalf("got %+v; want one video without transcript", videos)
	}
	if watchCalls != 0 {
		t.Errorf("made %d watch-page fetches; want 0 when transcripts are off", watchCalls)
	}
}

func TestFetchChannelVideosResolutionFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusGone)
	}))
	t.Cleanup(srv.Close)

	c := newTestClient(srv)
	if _, err := c.FetchChannelVideos(context.Background(), "@missing", time.Time{}, true, 50); err == nil {
		t.Fatal("want resolution error surfaced to the caller")
	}
}
