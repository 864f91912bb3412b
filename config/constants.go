package config

import "time"

// Fetch Constants
const (
	// RequestTimeout bounds every outbound HTTP request.
	RequestTimeout = 10 * time.Second

	// UserAgent identifies the aggregator to the sites it fetches.
	UserAgent = "Mozilla/5.0 (compatible; AINewsAggregator/1.0)"

	// DefaultWindowHours is the default look-back window.
	DefaultWindowHours = 24

	// DefaultMaxResults caps the number of videos read from a channel feed.
	DefaultMaxResults = 50
)

// CLI Constants
const (
	// PreviewCount is the number of entries printed after a one-shot run.
	PreviewCount = 20
)
