package youtube

import (
	"context"
	"fmt"
	"regexp"
	"strings"
)

// A channel ID always starts with "UC" and is 24 characters total.
var (
	channelIDRe = regexp.MustCompile(`^UC[\w-]{22}$`)
	canonicalRe = regexp.MustCompile(`youtube\.com/channel/(UC[\w-]{22})`)
)

// ResolveChannelID accepts a channel ID (UCxxx...), a legacy username,
// or a handle (@name) and returns the canonical 24-character channel
// ID. Inputs already in canonical form are returned without any network
// call; anything else costs one channel-page fetch.
func (c *Client) ResolveChannelID(ctx context.Context, channelInput string) (string, error) {
	channelInput = strings.TrimSpace(channelInput)

	if channelIDRe.MatchString(channelInput) {
		return channelInput, nil
	}

	handle := channelInput
	if !strings.HasPrefix(handle, "@") {
		handle = "@" + handle
	}
	return c.scrapeChannelID(ctx, c.baseURL+"/"+handle)
}

// scrapeChannelID fetches a channel page and extracts the channel ID.
// YouTube embeds it in a canonical link:
//
//	<link rel="canonical" href="https://www.youtube.com/channel/UCxxx...">
func (c *Client) scrapeChannelID(ctx context.Context, pageURL string) (string, error) {
	body, err := c.get(ctx, pageURL)
	if err != nil {
		return "", fmt.Errorf("resolve channel: %w", err)
	}

	if m := canonicalRe.FindSubmatch(body); m != nil {
		return string(m[1]), nil
	}
	return "", fmt.Errorf("no channel ID found at %s: check that the handle or username is correct", pageURL)
}
