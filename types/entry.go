package types

import "time"

// Kind discriminates the entry variants in an aggregated list.
type Kind string

const (
	KindVideo  Kind = "video"
	KindNews   Kind = "news"
	KindDigest Kind = "digest"
)

// Entry is the closed union of the three entry shapes the fetchers
// produce. Consumers switch on the concrete type (or Kind) rather than
// duck-typing fields.
type Entry interface {
	EntryKind() Kind
}

// VideoEntry represents a single video from a channel's public feed.
// All optional text fields use "" for absence.
type VideoEntry struct {
	VideoID     string    `json:"video_id"`
	Title       string    `json:"title"`
	URL         string    `json:"url"`
	PublishedAt time.Time `json:"published_at"`
	Description string    `json:"description,omitempty"`
	Transcript  string    `json:"transcript,omitempty"`
}

func (VideoEntry) EntryKind() Kind { return KindVideo }

// NewsEntry represents a single post from an RSS news feed. PostID is
// the post URL, used as a stable identifier within the feed.
type NewsEntry struct {
	PostID      string    `json:"post_id"`
	Title       string    `json:"title"`
	URL         string    `json:"url"`
	PublishedAt time.Time `json:"published_at"`
	Content     string    `json:"content,omitempty"`
}

func (NewsEntry) EntryKind() Kind { return KindNews }

// DigestEntry represents one issue of a newsletter digest. Digest
// fetchers produce at most one of these per run (the latest issue).
type DigestEntry struct {
	PostID      string    `json:"post_id"`
	Title       string    `json:"title"`
	URL         string    `json:"url"`
	PublishedAt time.Time `json:"published_at"`
	Content     string    `json:"content,omitempty"`
}

func (DigestEntry) EntryKind() Kind { return KindDigest }
