package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/kaapav/kaapav-bot/internal/handler"
	"github.com/kaapav/kaapav-bot/internal/middleware"
)

func setupRouter(h *handler.Handler, limiter *middleware.RateLimiter, auth func(http.Handler) http.Handler) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.CleanPath)

	h.Register(r, limiter.Middleware(), auth)

	return r
}
