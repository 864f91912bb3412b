// Package aggregator runs every configured fetcher, passes a shared
// cutoff into each one, and returns a single combined entry list.
package aggregator

import (
	"context"
	"log"
	"time"

	"ainews/config"
	"ainews/rssfeeds"
	"ainews/types"
	"ainews/youtube"
)

// RSSFetchFunc fetches a cutoff-filtered RSS source.
type RSSFetchFunc func(ctx context.Context, feedURL string, since time.Time) ([]types.Entry, error)

// NewsletterFetchFunc fetches the latest issue of a newsletter source.
// Newsletter fetchers take no cutoff: they always return at most the
// single most recent issue.
type NewsletterFetchFunc func(ctx context.Context, feedURL string) ([]types.Entry, error)

// VideoFetcher lists a channel's recent videos with transcripts.
type VideoFetcher interface {
	FetchChannelVideos(ctx context.Context, channelInput string, since time.Time, includeTranscripts bool, maxResults int) ([]types.VideoEntry, error)
}

// Aggregator dispatches each configured source to its fetcher and
// concatenates the results. Fields are exported so tests can substitute
// sources and fetchers; use New for the default wiring.
type Aggregator struct {
	Sources     config.Sources
	YouTube     VideoFetcher
	RSS         map[config.FetcherKey]RSSFetchFunc
	Newsletters map[config.FetcherKey]NewsletterFetchFunc
}

// New returns an aggregator wired with the built-in source set and the
// standard fetcher registries.
func New() *Aggregator {
	return &Aggregator{
		Sources: config.Default(),
		YouTube: youtube.NewClient(),
		RSS: map[config.FetcherKey]RSSFetchFunc{
			config.FetcherOpenAINews: func(ctx context.Context, feedURL string, since time.Time) ([]types.Entry, error) {
				return asEntries(rssfeeds.FetchOpenAINews(ctx, feedURL, since)), nil
			},
		},
		Newsletters: map[config.FetcherKey]NewsletterFetchFunc{
			config.FetcherSmolAI: func(ctx context.Context, feedURL string) ([]types.Entry, error) {
				return asEntries(rssfeeds.FetchLatestSmolAIIssue(ctx, feedURL)), nil
			},
		},
	}
}

// Run executes all configured fetchers with a cutoff of now (UTC) minus
// the look-back window and returns one combined list. Each source's
// internal order and the overall source order are preserved; there is
// no cross-source sort and no deduplication. A failing source is logged
// and contributes nothing; it never aborts the run.
func (a *Aggregator) Run(ctx context.Context, hours int) []types.Entry {
	cutoff := time.Now().UTC().Add(-time.Duration(hours) * time.Hour)
	log.Printf("Running all fetchers with cutoff=%s (last %d hours)", cutoff.Format(time.RFC3339), hours)

	var all []types.Entry

	for _, channel := range a.Sources.YouTubeChannels {
		log.Printf("Fetching YouTube channel: %s", channel)
		videos, err := a.YouTube.FetchChannelVideos(ctx, channel, cutoff, true, config.DefaultMaxResults)
		if err != nil {
			log.Printf("YouTube fetch failed for %q: %v", channel, err)
			continue
		}
		log.Printf("  %d video(s) from %q", len(videos), channel)
		all = append(all, asEntries(videos)...)
	}

	for _, src := range a.Sources.RSS {
		fetch, ok := a.RSS[src.Fetcher]
		if !ok {
			log.Printf("No RSS fetcher registered for key %q (source: %s)", src.Fetcher, src.Name)
			continue
		}
		log.Printf("Fetching RSS source: %s", src.Name)
		entries, err := fetch(ctx, src.URL, cutoff)
		if err != nil {
			log.Printf("RSS fetch failed for %q: %v", src.Name, err)
			continue
		}
		log.Printf("  %d entry(ies) from %q", len(entries), src.Name)
		all = append(all, entries...)
	}

	for _, src := range a.Sources.Newsletters {
		fetch, ok := a.Newsletters[src.Fetcher]
		if !ok {
			log.Printf("No newsletter fetcher registered for key %q (source: %s)", src.Fetcher, src.Name)
			continue
		}
		log.Printf("Fetching newsletter: %s", src.Name)
		entries, err := fetch(ctx, src.URL)
		if err != nil {
			log.Printf("Newsletter fetch failed for %q: %v", src.Name, err)
			continue
		}
		log.Printf("  %d entry(ies) from %q", len(entries), src.Name)
		all = append(all, entries...)
	}

	log.Printf("Total entries collected: %d", len(all))
	return all
}

func asEntries[E types.Entry](in []E) []types.Entry {
	out := make([]types.Entry, len(in))
	for i, e := range in {
		out[i] = e
	}
	return out
}
