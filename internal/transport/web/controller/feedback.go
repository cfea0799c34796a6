package controller

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/curatednews/digest/internal/domain"
	"github.com/curatednews/digest/internal/state"
)

// FeedbackResponse returns the marks after a toggle.
type FeedbackResponse struct {
	Feedback domain.Feedback `json:"feedback"`
}

type feedbackToggle func(id string) (domain.Feedback, error)

func handleFeedback(w http.ResponseWriter, r *http.Request, toggle feedbackToggle) {
	vars := mux.Vars(r)
	id := vars["item_id"]
	logger := domain.LoggerFromContext(r.Context())
	ctx := domain.ContextWithLogger(r.Context(), logger.With("item_id", id))

	feedback, err := toggle(id)
	if err != nil {
		domain.LoggerFromContext(ctx).ErrorContext(ctx, "unable to toggle feedback", "error", err)
		respondError(w, r, err)
		return
	}

	respondJSON(w, r, http.StatusOK, FeedbackResponse{Feedback: feedback})
}

// ItemLikeToggle handles POST /v1/digest/items/{item_id}/like.
type ItemLikeToggle struct {
	State *state.App
}

func (c ItemLikeToggle) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	handleFeedback(w, r, c.State.ToggleLiked)
}

// ItemDislikeToggle handles POST /v1/digest/items/{item_id}/dislike.
type ItemDislikeToggle struct {
	State *state.App
}

func (c ItemDislikeToggle) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	handleFeedback(w, r, c.State.ToggleDisliked)
}
