package domain

import (
	"fmt"
	"strings"
	"time"
)

// ChatPayload is the outbound webhook message: a plain-text fallback line
// plus an ordered sequence of Block Kit blocks.
type ChatPayload struct {
	Text   string  `json:"text"`
	Blocks []Block `json:"blocks"`
}

type Block struct {
	Type     string      `json:"type"`
	Text     *BlockText  `json:"text,omitempty"`
	Elements []BlockText `json:"elements,omitempty"`
}

type BlockText struct {
	Type  string `json:"type"`
	Text  string `json:"text"`
	Emoji bool   `json:"emoji,omitempty"`
}

const (
	blockTypeHeader  = "header"
	blockTypeDivider = "divider"
	blockTypeSection = "section"
	blockTypeContext = "context"

	textTypePlain  = "plain_text"
	textTypeMrkdwn = "mrkdwn"
)

const contextNote = "Curated by AI based on global importance and your preferences."

// FormatChatMessage renders a digest into a webhook payload. It is pure and
// deterministic for a given item list and clock reading.
func FormatChatMessage(items []NewsItem, now time.Time) ChatPayload {
	date := digestDate(now)

	blocks := []Block{
		{
			Type: blockTypeHeader,
			Text: &BlockText{
				Type:  textTypePlain,
				Text:  "🌍 Daily Global News Digest - " + date,
				Emoji: true,
			},
		},
		{Type: blockTypeDivider},
	}

	for i, item := range items {
		blocks = append(blocks, Block{
			Type: blockTypeSection,
			Text: &BlockText{
				Type: textTypeMrkdwn,
				Text: formatSection(i+1, item),
			},
		})
	}

	blocks = append(blocks, Block{
		Type:     blockTypeContext,
		Elements: []BlockText{{Type: textTypeMrkdwn, Text: contextNote}},
	})

	return ChatPayload{
		Text:   "Daily News Digest - " + date,
		Blocks: blocks,
	}
}

// FormatPlainText renders the digest for clipboard use: section texts joined
// by blank lines, without the header, divider, or context chrome. An empty
// digest falls back to the one-line summary.
func FormatPlainText(items []NewsItem, now time.Time) string {
	if len(items) == 0 {
		return "Daily News Digest - " + digestDate(now)
	}

	sections := make([]string, 0, len(items))
	for i, item := range items {
		sections = append(sections, formatSection(i+1, item))
	}
	return strings.Join(sections, "\n\n")
}

func formatSection(index int, item NewsItem) string {
	icon := "📰"
	if item.RelevanceScore > HighRelevanceThreshold {
		icon = "🔥"
	}

	source := item.Source
	if source == "" {
		source = "Unknown"
	}
	url := item.URL
	if url == "" {
		url = "#"
	}

	return fmt.Sprintf("*%d. %s %s*\n%s\n_%s_ | <%s|Read More>",
		index, icon, item.Title, item.Summary, source, url)
}

func digestDate(now time.Time) string {
	return now.Format("Mon, Jan 2")
}
