package domain

type NewsItem struct {
	ID                 string `json:"id"`
	Title              string `json:"title"`
	Summary            string `json:"summary"`
	URL                string `json:"url,omitempty"`
	Source             string `json:"source,omitempty"`
	Category           string `json:"category"`
	RelevanceScore     int    `json:"relevance_score"`
	ReasonForSelection string `json:"reason_for_selection"`
	PublishedDate      string `json:"published_date,omitempty"`
}

// HighRelevanceThreshold is the score above which an item is rendered with
// the high-relevance marker.
const HighRelevanceThreshold = 80

type DigestStatus string

const (
	DigestStatusIdle    DigestStatus = "idle"
	DigestStatusLoading DigestStatus = "loading"
	DigestStatusSuccess DigestStatus = "success"
	DigestStatusError   DigestStatus = "error"
)
