package gemini

import (
	"encoding/json"
	"fmt"
	"math"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/curatednews/digest/internal/domain"
)

// Model output frequently arrives wrapped in a fenced code block even when
// the prompt asks for bare JSON. ExtractJSON applies the documented fallback
// order: a ```json fence, then any fence, then the raw text.
var (
	fencedJSONPattern = regexp.MustCompile("(?s)```json\\s*\\n(.*?)\\n\\s*```")
	fencedAnyPattern  = regexp.MustCompile("(?s)```(?:[a-zA-Z0-9]*\\s*\\n)?(.*?)```")
)

func ExtractJSON(text string) string {
	if m := fencedJSONPattern.FindStringSubmatch(text); m != nil {
		return strings.TrimSpace(m[1])
	}
	if m := fencedAnyPattern.FindStringSubmatch(text); m != nil {
		return strings.TrimSpace(m[1])
	}
	return strings.TrimSpace(text)
}

// rawNewsItem is the untrusted shape coming back from the model. Scores
// arrive as arbitrary JSON numbers.
type rawNewsItem struct {
	Title              string  `json:"title"`
	Summary            string  `json:"summary"`
	URL                string  `json:"url"`
	Source             string  `json:"source"`
	Category           string  `json:"category"`
	RelevanceScore     float64 `json:"relevanceScore"`
	ReasonForSelection string  `json:"reasonForSelection"`
}

// ParseNewsItems validates and coerces a model response into NewsItems,
// substituting defaults for missing optional fields and assigning fresh IDs
// and today's date. It fails when the text is not a JSON array or the array
// is empty.
func ParseNewsItems(text string, now time.Time) ([]domain.NewsItem, error) {
	extracted := ExtractJSON(text)

	var raw []rawNewsItem
	if err := json.Unmarshal([]byte(extracted), &raw); err != nil {
		return nil, fmt.Errorf("response is not a JSON array: %w", err)
	}
	if len(raw) == 0 {
		return nil, fmt.Errorf("response contained no news items")
	}

	date := now.Format("2006-01-02")
	items := make([]domain.NewsItem, 0, len(raw))
	for _, r := range raw {
		items = append(items, domain.NewsItem{
			ID:                 "news-" + uuid.NewString(),
			Title:              stringOr(r.Title, "No Title"),
			Summary:            stringOr(r.Summary, "No Summary"),
			URL:                r.URL,
			Source:             r.Source,
			Category:           stringOr(r.Category, "General"),
			RelevanceScore:     scoreOr(r.RelevanceScore, 50),
			ReasonForSelection: stringOr(r.ReasonForSelection, "Global Importance"),
			PublishedDate:      date,
		})
	}

	return items, nil
}

// ParseLearnedSignals decodes the strict-JSON analysis response, tolerating
// a stray fence the same way ParseNewsItems does.
func ParseLearnedSignals(text string) (domain.LearnedSignals, error) {
	extracted := ExtractJSON(text)

	var signals domain.LearnedSignals
	if err := json.Unmarshal([]byte(extracted), &signals); err != nil {
		return domain.LearnedSignals{}, fmt.Errorf("response is not a signals object: %w", err)
	}

	return signals, nil
}

func stringOr(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

func scoreOr(value float64, fallback int) int {
	if value == 0 {
		return fallback
	}
	return int(math.Round(value))
}
