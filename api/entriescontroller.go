package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"ainews/config"
	"ainews/types"
)

// RegisterEntryRoutes registers aggregation endpoints.
func RegisterEntryRoutes(r *gin.Engine, runner Runner) {
	g := r.Group("/api")
	g.GET("/entries", handleGetEntries(runner))
}

// handleGetEntries runs the aggregator over the requested look-back
// window and returns the combined list, each entry tagged with its kind.
// GET /api/entries?hours=24
func handleGetEntries(runner Runner) gin.HandlerFunc {
	return func(c *gin.Context) {
		hours := config.DefaultWindowHours
		if v := c.Query("hours"); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil || n <= 0 {
				c.JSON(http.StatusBadRequest, gin.H{"error": "hours must be a positive integer"})
				return
			}
			hours = n
		}

		entries := runner.Run(c.Request.Context(), hours)

		items := make([]gin.H, 0, len(entries))
		for _, e := range entries {
			items = append(items, entryJSON(e))
		}
		c.JSON(http.StatusOK, gin.H{
			"fetched_at": time.Now().UTC(),
			"hours":      hours,
			"count":      len(entries),
			"entries":    items,
		})
	}
}

func entryJSON(e types.Entry) gin.H {
	switch v := e.(type) {
	case types.VideoEntry:
		return gin.H{
			"kind":         v.EntryKind(),
			"video_id":     v.VideoID,
			"title":        v.Title,
			"url":          v.URL,
			"published_at": v.PublishedAt,
			"description":  v.Description,
			"transcript":   v.Transcript,
		}
	case types.NewsEntry:
		return gin.H{
			"kind":         v.EntryKind(),
			"post_id":      v.PostID,
			"title":        v.Title,
			"url":          v.URL,
			"published_at": v.PublishedAt,
			"content":      v.Content,
		}
	case types.DigestEntry:
		return gin.H{
			"kind":         v.EntryKind(),
			"post_id":      v.PostID,
			"title":        v.Title,
			"url":          v.URL,
			"published_at": v.PublishedAt,
			"content":      v.Content,
		}
	default:
		return gin.H{"kind": e.EntryKind()}
	}
}
