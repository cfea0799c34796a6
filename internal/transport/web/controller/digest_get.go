package controller

import (
	"net/http"

	"github.com/curatednews/digest/internal/domain"
	"github.com/curatednews/digest/internal/state"
)

// DigestResponse is the full digest view the frontend renders from.
type DigestResponse struct {
	Status   domain.DigestStatus `json:"status"`
	Items    []domain.NewsItem   `json:"items"`
	Feedback domain.Feedback     `json:"feedback"`
}

// DigestGet handles GET /v1/digest.
type DigestGet struct {
	State *state.App
}

func (c DigestGet) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	items, status := c.State.Digest()

	respondJSON(w, r, http.StatusOK, DigestResponse{
		Status:   status,
		Items:    items,
		Feedback: c.State.Feedback(),
	})
}
