package domain

// MaxPreferenceEntries caps each preference collection; entries beyond the
// cap are dropped in insertion order.
const MaxPreferenceEntries = 10

type UserPreferences struct {
	Keywords           []string `json:"keywords"`
	LikedCategories    []string `json:"likedCategories"`
	DislikedCategories []string `json:"dislikedCategories"`
	WebhookURL         string   `json:"webhookUrl"`
}

// DefaultPreferences is the profile used before the user has saved anything.
func DefaultPreferences() UserPreferences {
	return UserPreferences{
		Keywords:           []string{"Technology", "Global Economy", "Science"},
		LikedCategories:    []string{},
		DislikedCategories: []string{},
		WebhookURL:         "",
	}
}

// LearnedSignals is the analyzer's output for a set of liked items.
type LearnedSignals struct {
	Keywords   []string `json:"keywords"`
	Categories []string `json:"categories"`
}

// ApplyLearnedSignals merges analyzer output into a profile. Keywords and
// liked categories are appended after the existing entries, first occurrence
// wins, capped at MaxPreferenceEntries. Disliked categories and the webhook
// URL pass through untouched.
func ApplyLearnedSignals(profile UserPreferences, signals LearnedSignals) UserPreferences {
	merged := profile
	merged.Keywords = mergeDistinct(profile.Keywords, signals.Keywords, MaxPreferenceEntries)
	merged.LikedCategories = mergeDistinct(profile.LikedCategories, signals.Categories, MaxPreferenceEntries)
	return merged
}

// Normalized enforces set semantics over every preference collection,
// dropping duplicates and entries beyond the cap.
func (p UserPreferences) Normalized() UserPreferences {
	normalized := p
	normalized.Keywords = mergeDistinct(p.Keywords, nil, MaxPreferenceEntries)
	normalized.LikedCategories = mergeDistinct(p.LikedCategories, nil, MaxPreferenceEntries)
	normalized.DislikedCategories = mergeDistinct(p.DislikedCategories, nil, MaxPreferenceEntries)
	return normalized
}

func mergeDistinct(existing, incoming []string, limit int) []string {
	merged := make([]string, 0, limit)
	seen := make(map[string]bool, limit)

	for _, values := range [][]string{existing, incoming} {
		for _, v := range values {
			if seen[v] {
				continue
			}
			seen[v] = true
			merged = append(merged, v)
			if len(merged) == limit {
				return merged
			}
		}
	}

	return merged
}
