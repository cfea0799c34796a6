package controller

import (
	"net/http"
	"time"

	"github.com/gorilla/feeds"

	"github.com/curatednews/digest/internal/domain"
	"github.com/curatednews/digest/internal/state"
)

// RSS serves the current digest as a feed, for readers that poll instead of
// opening the app.
type RSS struct {
	FeedHostname string
	FeedPath     string
	State        *state.App
}

func (c RSS) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	items, _ := c.State.Digest()

	feed := &feeds.Feed{
		Title:       "Daily Global News Digest",
		Link:        &feeds.Link{Href: c.FeedHostname + c.FeedPath},
		Description: "Ten stories balanced between global importance and your preferences",
		Created:     time.Now(),
	}

	for _, item := range items {
		link := item.URL
		if link == "" {
			link = "#"
		}
		feed.Items = append(feed.Items, &feeds.Item{
			Id:          item.ID,
			IsPermaLink: "false",
			Title:       item.Title,
			Link:        &feeds.Link{Href: link},
			Description: item.Summary,
			Author:      &feeds.Author{Name: item.Source},
		})
	}

	rss, err := feed.ToRss()
	if err != nil {
		ctx := r.Context()
		logger := domain.LoggerFromContext(ctx)
		logger.ErrorContext(ctx, "unable to format feed as RSS", "error", err)

		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/xml")

	if _, err := w.Write([]byte(rss)); err != nil {
		ctx := r.Context()
		logger := domain.LoggerFromContext(ctx)
		logger.ErrorContext(ctx, "unable to write feed to response", "error", err)
	}
}
