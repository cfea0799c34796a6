package server

import (
	"context"
	"fmt"
	"net/http"
)

// Server serves the digest API on a local port. The app is
// single-installation and unauthenticated, so it binds plain HTTP.
type Server struct {
	Port   int
	Router http.Handler
}

func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", s.Port),
		Handler: s.Router,
	}

	go func() {
		<-ctx.Done()
		_ = srv.Close()
	}()

	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}
