// ainews aggregates recent posts from a configured set of YouTube
// channels, RSS news feeds, and newsletter digests into one normalized
// entry list. Run it one-shot to print the collected entries, or with
// -serve to expose the same aggregation over HTTP.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"ainews/aggregator"
	"ainews/api"
	"ainews/config"
	"ainews/types"
)

func main() {
	// Load environment variables from .env if present (non-fatal if missing)
	_ = godotenv.Load()

	hours := flag.Int("hours", config.DefaultWindowHours, "look-back window in hours")
	serve := flag.Bool("serve", false, "run the HTTP API instead of a one-shot aggregation")
	flag.Parse()

	// Log to stderr so entry output to stdout is clean
	log.SetOutput(os.Stderr)

	agg := aggregator.New()

	if *serve {
		runServer(agg)
		return
	}

	entries := agg.Run(context.Background(), *hours)

	rule := strings.Repeat("-", 50)
	fmt.Printf("\n%s\n", rule)
	fmt.Printf("Total entries: %d\n", len(entries))
	fmt.Println(rule)
	for i, e := range entries {
		if i == config.PreviewCount {
			fmt.Printf("... and %d more\n", len(entries)-config.PreviewCount)
			break
		}
		fmt.Println(previewLine(e))
	}
}

func runServer(agg *aggregator.Aggregator) {
	addr := ":" + config.GetEnvOrDefault("PORT", "8080")

	r := api.NewRouter(agg)
	log.Printf("Starting API server on %s", addr)
	log.Println("API endpoints available:")
	log.Println("  GET /api/health")
	log.Println("  GET /api/entries?hours=24")

	if err := http.ListenAndServe(addr, r); err != nil {
		log.Fatalf("server error: %v", err)
	}
}

func previewLine(e types.Entry) string {
	switch v := e.(type) {
	case types.VideoEntry:
		return fmt.Sprintf("[video]  %s  %s  %s", v.PublishedAt.Format("2006-01-02 15:04"), v.Title, v.URL)
	case types.NewsEntry:
		return fmt.Sprintf("[news]   %s  %s  %s", v.PublishedAt.Format("2006-01-02 15:04"), v.Title, v.URL)
	case types.DigestEntry:
		return fmt.Sprintf("[digest] %s  %s  %s", v.PublishedAt.Format("2006-01-02 15:04"), v.Title, v.URL)
	default:
		return fmt.Sprintf("[%s]", e.EntryKind())
	}
}
