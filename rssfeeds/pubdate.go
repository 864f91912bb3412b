// Package rssfeeds fetches the configured RSS news and newsletter
// digest feeds and normalizes their items.
package rssfeeds

import (
	"log"
	"strings"
	"time"

	"github.com/araddon/dateparse"
	"github.com/mmcdole/gofeed"
)

// publishedAt resolves a UTC publish time for a feed item: the
// structured parsed time first, then a best-effort parse of the raw
// pubDate string, then the current time. The last resort is logged as
// a warning since it signals unexpected feed data.
func publishedAt(item *gofeed.Item, sourceName string) time.Time {
	if item.PublishedParsed != nil {
		return item.PublishedParsed.UTC()
	}

	if raw := strings.TrimSpace(item.Published); raw != "" {
		if t, err := dateparse.ParseAny(raw); err == nil {
			return t.UTC()
		}
	}

	log.Printf("Could not parse pubDate for %s item %q; using current time", sourceName, item.Link)
	return time.Now().UTC()
}
