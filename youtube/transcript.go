package youtube

import (
	"context"
	"encoding/json"
	"encoding/xml"
	"errors"
	"fmt"
	"html"
	"log"
	"regexp"
	"strings"
)

// ErrNoTranscript means the video has no usable English transcript:
// captions are disabled, the video is unavailable, or no English track
// exists.
var ErrNoTranscript = errors.New("no english transcript")

// The watch page embeds the player caption metadata as JSON.
var captionTracksRe = regexp.MustCompile(`"captionTracks":(\[.*?\])`)

type captionTrack struct {
	BaseURL      string `json:"baseUrl"`
	LanguageCode string `json:"languageCode"`
	Kind         string `json:"kind"` // "asr" marks auto-generated tracks
}

type timedText struct {
	Texts []struct {
		Value string `xml:",chardata"`
	} `xml:"text"`
}

// Transcript returns the English transcript of a video as one plain
// text string. Transcript absence is an expected, non-fatal outcome for
// any video: every failure mode (no transcript, captions disabled,
// video unavailable, network or decode errors) is logged and yields "".
func (c *Client) Transcript(ctx context.Context, videoID string) string {
	text, err := c.fetchTranscript(ctx, videoID)
	if err != nil {
		log.Printf("No transcript for video %q: %v", videoID, err)
		return ""
	}
	return text
}

// fetchTranscript locates the English caption track on the watch page
// and decodes its timedtext document. Only English is considered,
// manually created tracks preferred over auto-generated ones; there is
// no translation or other-language fallback.
func (c *Client) fetchTranscript(ctx context.Context, videoID string) (string, error) {
	page, err := c.get(ctx, c.baseURL+"/watch?v="+videoID)
	if err != nil {
		return "", err
	}

	m := captionTracksRe.FindSubmatch(page)
	if m == nil {
		// No caption metadata at all: disabled or unavailable.
		return "", ErrNoTranscript
	}

	var tracks []captionTrack
	if err := json.Unmarshal(m[1], &tracks); err != nil {
		return "", fmt.Errorf("decode caption tracks: %w", err)
	}

	track := pickEnglishTrack(tracks)
	if track == nil {
		return "", ErrNoTranscript
	}

	raw, err := c.get(ctx, track.BaseURL)
	if err != nil {
		return "", err
	}

	var tt timedText
	if err := xml.Unmarshal(raw, &tt); err != nil {
		return "", fmt.Errorf("decode timedtext: %w", err)
	}

	parts := make([]string, 0, len(tt.Texts))
	for _, snippet := range tt.Texts {
		text := strings.TrimSpace(html.UnescapeString(snippet.Value))
		if text != "" {
			parts = append(parts, text)
		}
	}
	if len(parts) == 0 {
		return "", ErrNoTranscript
	}
	return strings.Join(parts, " "), nil
}

func pickEnglishTrack(tracks []captionTrack) *captionTrack {
	var auto *captionTrack
	for i := range tracks {
		t := &tracks[i]
		if t.LanguageCode != "en" && !strings.HasPrefix(t.LanguageCode, "en-") {
			continue
		}
		if t.Kind == "asr" {
			if auto == nil {
				auto = t
			}
			continue
		}
		return t
	}
	return auto
}
