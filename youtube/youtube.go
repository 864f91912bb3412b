// Package youtube fetches channel video listings and transcripts from
// YouTube's public surfaces: the channel RSS feed, channel pages for ID
// resolution, and timedtext captions.
package youtube

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"ainews/config"
	"ainews/types"
)

// Client performs all YouTube-facing requests. The zero value is not
// usable; construct with NewClient.
type Client struct {
	http    *http.Client
	baseURL string
}

// NewClient returns a client with the standard base URL and a bounded
// request timeout.
func NewClient() *Client {
	return &Client{
		http:    &http.Client{Timeout: config.RequestTimeout},
		baseURL: "https://www.youtube.com",
	}
}

// FetchChannelVideos resolves a channel reference (UCxxx... ID, @handle,
// or legacy username) and returns its recent videos, newest-first as the
// feed emits them. since is exclusive: only videos published strictly
// after it are returned; pass the zero time for no filtering. When
// includeTranscripts is set, an English transcript is attached to each
// video in list order; a transcript failure for one video never aborts
// the rest.
func (c *Client) FetchChannelVideos(ctx context.Context, channelInput string, since time.Time, includeTranscripts bool, maxResults int) ([]types.VideoEntry, error) {
	channelID, err := c.ResolveChannelID(ctx, channelInput)
	if err != nil {
		return nil, err
	}
	log.Printf("Resolved %q to channel %s", channelInput, channelID)

	videos, err := c.FetchVideos(ctx, channelID, since, maxResults)
	if err != nil {
		return nil, err
	}
	log.Printf("Found %d video(s) in channel %s", len(videos), channelID)

	if includeTranscripts {
		for i := range videos {
			videos[i].Transcript = c.Transcript(ctx, videos[i].VideoID)
		}
	}
	return videos, nil
}

// get fetches a URL with the aggregator User-Agent and returns the body.
func (c *Client) get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build request for %s: %w", url, err)
	}
	req.Header.Set("User-Agent", config.UserAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%s returned HTTP %d", url, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", url, err)
	}
	return body, nil
}
