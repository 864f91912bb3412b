package youtube

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/mmcdole/gofeed"

	"ainews/config"
	"ainews/types"
)

// FetchVideos fetches recent videos from a channel's public RSS feed.
// The feed is assumed reverse-chronological but not strictly monotonic,
// so every item is scanned and too-old items are skipped individually
// rather than stopping at the first one. maxResults caps the raw feed
// before the since filter. A feed that cannot be fetched or parsed is
// an error; a well-formed feed with no items is not.
func (c *Client) FetchVideos(ctx context.Context, channelID string, since time.Time, maxResults int) ([]types.VideoEntry, error) {
	feedURL := c.baseURL + "/feeds/videos.xml?channel_id=" + channelID

	fp := gofeed.NewParser()
	fp.Client = c.http
	fp.UserAgent = config.UserAgent
	feed, err := fp.ParseURLWithContext(feedURL, ctx)
	if err != nil {
		return nil, fmt.Errorf("video feed for channel %s: %w", channelID, err)
	}

	items := feed.Items
	if maxResults > 0 && len(items) > maxResults {
		items = items[:maxResults]
	}

	entries := make([]types.VideoEntry, 0, len(items))
	for _, item := range items {
		videoID := ytVideoID(item)

		url := item.Link
		if url == "" && videoID != "" {
			url = c.baseURL + "/watch?v=" + videoID
		}

		// A missing feed time falls back to now, logged.
		var publishedAt time.Time
		if item.PublishedParsed != nil {
			publishedAt = item.PublishedParsed.UTC()
		} else {
			log.Printf("No published time for video %q; using current time", videoID)
			publishedAt = time.Now().UTC()
		}

		if !since.IsZero() && !publishedAt.After(since) {
			continue
		}

		description := mediaDescription(item)
		if description == "" {
			description = item.Description
		}

		entries = append(entries, types.VideoEntry{
			VideoID:     videoID,
			Title:       itemTitle(item),
			URL:         url,
			PublishedAt: publishedAt,
			Description: strings.TrimSpace(description),
		})
	}
	return entries, nil
}

func itemTitle(item *gofeed.Item) string {
	if t := strings.TrimSpace(item.Title); t != "" {
		return t
	}
	return "Untitled"
}

// ytVideoID reads the <yt:videoId> extension from a feed entry.
func ytVideoID(item *gofeed.Item) string {
	ns, ok := item.Extensions["yt"]
	if !ok {
		return ""
	}
	ids, ok := ns["videoId"]
	if !ok || len(ids) == 0 {
		return ""
	}
	return strings.TrimSpace(ids[0].Value)
}

// mediaDescription reads <media:group><media:description> from a feed
// entry, the field YouTube uses for video descriptions.
func mediaDescription(item *gofeed.Item) string {
	ns, ok := item.Extensions["media"]
	if !ok {
		return ""
	}
	groups, ok := ns["group"]
	if !ok || len(groups) == 0 {
		return ""
	}
	descs, ok := groups[0].Children["description"]
	if !ok || len(descs) == 0 {
		return ""
	}
	return descs[0].Value
}
