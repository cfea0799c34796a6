package domain

// Feedback holds the per-digest like/dislike marks, keyed by item ID.
// The two sets are disjoint: marking an ID in one removes it from the other.
type Feedback struct {
	Liked    map[string]bool `json:"liked"`
	Disliked map[string]bool `json:"disliked"`
}

func NewFeedback() Feedback {
	return Feedback{
		Liked:    map[string]bool{},
		Disliked: map[string]bool{},
	}
}

// ToggleLiked adds the ID to the liked set, or removes it if already there.
// Liking removes any standing dislike.
func (f Feedback) ToggleLiked(id string) {
	if f.Liked[id] {
		delete(f.Liked, id)
		return
	}
	f.Liked[id] = true
	delete(f.Disliked, id)
}

// ToggleDisliked is symmetric with ToggleLiked.
func (f Feedback) ToggleDisliked(id string) {
	if f.Disliked[id] {
		delete(f.Disliked, id)
		return
	}
	f.Disliked[id] = true
	delete(f.Liked, id)
}

// LikedSubset returns the items whose IDs are currently liked, in digest order.
func (f Feedback) LikedSubset(items []NewsItem) []NewsItem {
	var liked []NewsItem
	for _, item := range items {
		if f.Liked[item.ID] {
			liked = append(liked, item)
		}
	}
	return liked
}

// Clone returns an independent copy of both mark sets.
func (f Feedback) Clone() Feedback {
	clone := NewFeedback()
	for id := range f.Liked {
		clone.Liked[id] = true
	}
	for id := range f.Disliked {
		clone.Disliked[id] = true
	}
	return clone
}
