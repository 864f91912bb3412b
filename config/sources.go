package config

// Central source configuration for the aggregator.
//
// This is the only place where source URLs and channel identifiers are
// defined. Add new sources here; no other file needs to change unless
// a new fetcher key is introduced.

// FetcherKey selects which fetch function handles a source. The
// aggregator looks keys up in a fixed registry; an unregistered key is
// a configuration warning, not a crash.
type FetcherKey string

const (
	FetcherOpenAINews FetcherKey = "openai_news"
	FetcherSmolAI     FetcherKey = "smol_ai"
)

// Source describes a single configured feed source.
type Source struct {
	Name    string     `json:"name"`
	URL     string     `json:"url"`
	Fetcher FetcherKey `json:"fetcher"`
}

// Sources is the complete static source set consumed by one run.
type Sources struct {
	// YouTubeChannels accepts channel IDs (UCxxx...), @handles, or
	// legacy usernames.
	YouTubeChannels []string

	// RSS sources are filtered by the shared cutoff inside each fetcher.
	RSS []Source

	// Newsletter fetchers always return the latest issue (no cutoff).
	Newsletters []Source
}

// Default returns the built-in source set.
func Default() Sources {
	return Sources{
		YouTubeChannels: []string{
			"@Fireship",
		},
		RSS: []Source{
			{
				Name:    "openai_news",
				URL:     "https://openai.com/news/rss.xml",
				Fetcher: FetcherOpenAINews,
			},
		},
		Newsletters: []Source{
			{
				Name:    "smol_ai",
				URL:     "https://news.smol.ai/rss.xml",
				Fetcher: FetcherSmolAI,
			},
		},
	}
}
