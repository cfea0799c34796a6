// Package state holds the application's mutable state behind an explicit
// container: the current digest and its status, the per-digest feedback
// marks, and the active preference profile. Every mutation is a named
// transition; callers never reach into the fields directly.
package state

import (
	"sync"

	"github.com/curatednews/digest/internal/domain"
)

type App struct {
	mu       sync.Mutex
	digest   []domain.NewsItem
	status   domain.DigestStatus
	feedback domain.Feedback
	profile  domain.UserPreferences
}

func New(profile domain.UserPreferences) *App {
	return &App{
		status:   domain.DigestStatusIdle,
		feedback: domain.NewFeedback(),
		profile:  profile,
	}
}

// Digest returns a copy of the current digest and its status.
func (a *App) Digest() ([]domain.NewsItem, domain.DigestStatus) {
	a.mu.Lock()
	defer a.mu.Unlock()

	items := make([]domain.NewsItem, len(a.digest))
	copy(items, a.digest)
	return items, a.status
}

// Feedback returns a copy of the current feedback marks.
func (a *App) Feedback() domain.Feedback {
	a.mu.Lock()
	defer a.mu.Unlock()

	return a.feedback.Clone()
}

// Profile returns a copy of the active preference profile.
func (a *App) Profile() domain.UserPreferences {
	a.mu.Lock()
	defer a.mu.Unlock()

	return a.profile
}

// SetProfile applies a new profile, last-write-wins.
func (a *App) SetProfile(profile domain.UserPreferences) {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.profile = profile
}

// BeginFetch transitions to loading and returns a profile snapshot for the
// fetch. At most one fetch may be in flight; a second attempt while loading
// fails with ErrFetchInFlight.
func (a *App) BeginFetch() (domain.UserPreferences, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.status == domain.DigestStatusLoading {
		return domain.UserPreferences{}, domain.ErrFetchInFlight
	}
	a.status = domain.DigestStatusLoading
	return a.profile, nil
}

// CompleteFetch replaces the digest wholesale and clears all feedback marks.
func (a *App) CompleteFetch(items []domain.NewsItem) {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.digest = items
	a.status = domain.DigestStatusSuccess
	a.feedback = domain.NewFeedback()
}

// FailFetch records the failure, leaving the previous digest untouched.
func (a *App) FailFetch() {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.status = domain.DigestStatusError
}

// ToggleLiked toggles the like mark for an item in the current digest and
// returns the updated feedback marks.
func (a *App) ToggleLiked(id string) (domain.Feedback, error) {
	return a.toggle(id, domain.Feedback.ToggleLiked)
}

// ToggleDisliked is symmetric with ToggleLiked.
func (a *App) ToggleDisliked(id string) (domain.Feedback, error) {
	return a.toggle(id, domain.Feedback.ToggleDisliked)
}

func (a *App) toggle(id string, apply func(domain.Feedback, string)) (domain.Feedback, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if !a.inDigest(id) {
		return domain.Feedback{}, domain.ErrUnknownItem
	}
	apply(a.feedback, id)
	return a.feedback.Clone(), nil
}

// LearnSnapshot returns the liked subset of the current digest together with
// the profile, both captured atomically for a learning run.
func (a *App) LearnSnapshot() ([]domain.NewsItem, domain.UserPreferences) {
	a.mu.Lock()
	defer a.mu.Unlock()

	return a.feedback.LikedSubset(a.digest), a.profile
}

// DispatchSnapshot returns the digest and profile captured atomically for a
// delivery run.
func (a *App) DispatchSnapshot() ([]domain.NewsItem, domain.UserPreferences) {
	a.mu.Lock()
	defer a.mu.Unlock()

	items := make([]domain.NewsItem, len(a.digest))
	copy(items, a.digest)
	return items, a.profile
}

func (a *App) inDigest(id string) bool {
	for _, item := range a.digest {
		if item.ID == id {
			return true
		}
	}
	return false
}
