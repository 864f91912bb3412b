package rssfeeds

import (
	"context"
	"log"

	"ainews/htmltext"
	"ainews/types"
)

// FetchLatestSmolAIIssue fetches the most recent daily digest from the
// smol.ai newsletter feed. Only the first item (the latest issue) is
// read, with no date filtering, no scanning. Returns a single-element list,
// or an empty list when the feed is unavailable or has no items.
func FetchLatestSmolAIIssue(ctx context.Context, feedURL string) []types.DigestEntry {
	feed, err := parseFeed(ctx, feedURL)
	if err != nil {
		log.Printf("Smol AI feed error: %v", err)
		return nil
	}
	if len(feed.Items) == 0 {
		log.Printf("Smol AI feed is empty or could not be fetched")
		return nil
	}

	item := feed.Items[0]

	// Content priority: content:encoded, then description.
	raw := item.Content
	if raw == "" {
		raw = item.Description
	}
	content := ""
	if raw != "" {
		content = htmltext.Strip(raw)
	}

	entry := types.DigestEntry{
		PostID:      item.Link,
		Title:       itemTitle(item),
		URL:         item.Link,
		PublishedAt: publishedAt(item, "Smol AI"),
		Content:     content,
	}

	log.Printf("Fetched Smol AI issue %q published %s (%d chars of content)",
		entry.Title, entry.PublishedAt.Format("2006-01-02"), len(entry.Content))

	return []types.DigestEntry{entry}
}
