// Package gemini implements news curation and preference analysis on top of
// the Gemini API.
package gemini

import (
	"context"
	"fmt"
	"strings"
	"time"

	"google.golang.org/genai"

	"github.com/curatednews/digest/internal/datasources"
	"github.com/curatednews/digest/internal/domain"
)

var _ datasources.NewsCurator = (*Client)(nil)
var _ datasources.PreferenceAnalyzer = (*Client)(nil)

const DefaultModel = "gemini-2.5-flash"

type Client struct {
	client *genai.Client
	model  string
	now    func() time.Time
}

func NewClient(ctx context.Context, apiKey, model string) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini API key is required")
	}
	if model == "" {
		model = DefaultModel
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("creating gemini client: %w", err)
	}

	return &Client{
		client: client,
		model:  model,
		now:    time.Now,
	}, nil
}

// CurateNews asks the model for ten curated stories, search-augmented,
// weighted 70% global importance and 30% profile alignment.
//
// The response MIME type cannot be forced to JSON while the search tool is
// enabled, so the prompt carries the format contract and the response goes
// through the tolerant parser.
func (c *Client) CurateNews(ctx context.Context, profile domain.UserPreferences) ([]domain.NewsItem, error) {
	prompt := buildCurationPrompt(profile)

	resp, err := c.client.Models.GenerateContent(ctx, c.model, genai.Text(prompt), &genai.GenerateContentConfig{
		Tools: []*genai.Tool{{GoogleSearch: &genai.GoogleSearch{}}},
	})
	if err != nil {
		return nil, fmt.Errorf("generating curated news: %w", err)
	}

	text := resp.Text()
	if text == "" {
		return nil, fmt.Errorf("empty response from model")
	}

	items, err := ParseNewsItems(text, c.now())
	if err != nil {
		return nil, fmt.Errorf("parsing curated news: %w", err)
	}

	return items, nil
}

// AnalyzePreferences extracts five keywords and three representative
// categories from the liked items.
func (c *Client) AnalyzePreferences(ctx context.Context, liked []domain.NewsItem) (domain.LearnedSignals, error) {
	prompt := buildAnalysisPrompt(liked)

	resp, err := c.client.Models.GenerateContent(ctx, c.model, genai.Text(prompt), &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
	})
	if err != nil {
		return domain.LearnedSignals{}, fmt.Errorf("analyzing preferences: %w", err)
	}

	text := resp.Text()
	if text == "" {
		return domain.LearnedSignals{}, fmt.Errorf("empty response from model")
	}

	signals, err := ParseLearnedSignals(text)
	if err != nil {
		return domain.LearnedSignals{}, fmt.Errorf("parsing learned signals: %w", err)
	}

	return signals, nil
}

func buildCurationPrompt(profile domain.UserPreferences) string {
	return fmt.Sprintf(`You are an expert news editor for a daily digest.

Task:
1. Search for the most important global news stories happening right now (last 24 hours).
2. Select exactly 10 distinct news items.
3. Balance the selection based on two factors:
   - Global Importance (70%% weight): major geopolitical, economic, scientific, or humanitarian events that everyone should know.
   - User Preference (30%% weight): news that aligns with the user's interests.

User Profile:
- Interests/Keywords: %s
- Liked Categories: %s
- Disliked Categories: %s (try to avoid these unless critical)

Output Format:
Return a strictly valid JSON array of objects. Do not wrap in markdown unless necessary for a code block.
Each object must have:
- title: string
- summary: string (concise, 2-3 sentences)
- category: string
- relevanceScore: number (0-100, how well it matches the criteria)
- reasonForSelection: string (short explanation why this was picked)
- url: string (source URL from search results if available)
- source: string (source name)`,
		joinOrNone(profile.Keywords),
		joinOrNone(profile.LikedCategories),
		joinOrNone(profile.DislikedCategories),
	)
}

func buildAnalysisPrompt(liked []domain.NewsItem) string {
	lines := make([]string, 0, len(liked))
	for _, item := range liked {
		lines = append(lines, fmt.Sprintf("%s (%s)", item.Title, item.Category))
	}

	return fmt.Sprintf(`Analyze the following list of news articles the user liked.
Extract 5 key topics/keywords and the top 3 categories that represent their interests.
Return JSON: { "keywords": string[], "categories": string[] }

Articles:
%s`, strings.Join(lines, "\n"))
}

func joinOrNone(values []string) string {
	if len(values) == 0 {
		return "None"
	}
	return strings.Join(values, ", ")
}
