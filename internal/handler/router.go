package handler

import (
	"context"
	"fooodimp-be/internal/catalog"
	"fooodimp-be/internal/logger"
	"fooodimp-be/internal/middleware"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
)

// NewRouter builds the HTTP surface. Background work started for it stops
// when ctx is done.
func NewRouter(ctx context.Context, h *Handler, frontendOrigin string) http.Handler {
	limiter := middleware.NewRateLimiter(ctx)

	r := chi.NewRouter()
	r.Use(logger.RequestIDMiddleware)
	r.Use(logger.LoggingMiddleware)
	r.Use(chimw.Recoverer)
	r.Use(middleware.CORS(frontendOrigin))
	r.Use(limiter.Middleware)

	r.Get("/health", h.HealthCheck)
	r.Get("/", h.Root)
	r.Get("/metrics", h.MetricsSnapshot)

	// /getItalianFood, /getIndianFood, /getKoreanFood
	for _, c := range catalog.Categories {
		r.Get("/get"+c.Label()+"Food", h.ListCategory(c))
	}
	r.Get("/getFoodDetails/{foodID}", h.GetFoodDetails)
	r.Put("/submitFood1", h.SubmitFood)

	r.Post("/submitdata", h.SubmitOrder)
	r.Get("/getOrder/{orderNumber}", h.GetOrder)

	return r
}
