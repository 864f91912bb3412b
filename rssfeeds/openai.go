package rssfeeds

import (
	"context"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/mmcdole/gofeed"

	"ainews/config"
	"ainews/htmltext"
	"ainews/types"
)

// FetchOpenAINews fetches recent posts from the OpenAI News RSS feed.
//
// The feed is sorted newest-first, so iteration stops at the first item
// published at or before since; only the head of the feed is ever
// processed. Pass the zero time to return every item. An unreachable,
// unparseable, or empty feed is a normal transient condition for this
// source and yields an empty list, not an error.
func FetchOpenAINews(ctx context.Context, feedURL string, since time.Time) []types.NewsEntry {
	feed, err := parseFeed(ctx, feedURL)
	if err != nil {
		log.Printf("OpenAI News feed error: %v", err)
		return nil
	}
	if len(feed.Items) == 0 {
		log.Printf("OpenAI News feed is empty or could not be fetched")
		return nil
	}

	var entries []types.NewsEntry
	for _, item := range feed.Items {
		pub := publishedAt(item, "OpenAI News")

		// Everything from here on is older.
		if !since.IsZero() && !pub.After(since) {
			break
		}

		content := ""
		if item.Description != "" {
			content = htmltext.Strip(item.Description)
		}

		entries = append(entries, types.NewsEntry{
			PostID:      item.Link,
			Title:       itemTitle(item),
			URL:         item.Link,
			PublishedAt: pub,
			Content:     content,
		})
	}

	log.Printf("Fetched %d OpenAI News entry(ies)", len(entries))
	return entries
}

func parseFeed(ctx context.Context, feedURL string) (*gofeed.Feed, error) {
	fp := gofeed.NewParser()
	fp.Client = &http.Client{Timeout: config.RequestTimeout}
	fp.UserAgent = config.UserAgent
	return fp.ParseURLWithContext(feedURL, ctx)
}

func itemTitle(item *gofeed.Item) string {
	if t := strings.TrimSpace(item.Title); t != "" {
		return t
	}
	return "Untitled"
}
