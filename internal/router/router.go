package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"partner-program/internal/config"
	"partner-program/internal/handler"
	"partner-program/pkg/middleware"
)

func SetupRoutes(
	r chi.Router,
	h *handler.PartnerHandler,
	wh *handler.WebhookHandler,
	cfg config.AppConfig,
	rdb *redis.Client,
	logger *zap.Logger,
) chi.Router {
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Leadpipe-Signature"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Route("/partner", func(pr chi.Router) {
		// Public endpoints, throttled per client IP. Throttling is skipped
		// when Redis is not wired (local dev, handler tests).
		pr.Group(func(pub chi.Router) {
			if rdb != nil {
				pub.Use(middleware.RateLimit(rdb, 60, time.Minute, "public", logger))
			}
			pub.Post("/apply", h.Apply)
			pub.Post("/track", h.Track)
		})

		// Partner self-service.
		pr.Group(func(priv chi.Router) {
			priv.Use(middleware.RequireAuth(cfg.JWTSecret, logger))
			priv.Get("/me", h.Me)
			priv.Get("/me/referrals", h.MeReferrals)
		})

		// Admin.
		pr.Group(func(adm chi.Router) {
			adm.Use(middleware.RequireAdmin(cfg.AdminSecret, logger))
			adm.Post("/approve", h.Approve)
		})
	})

	r.Post("/webhooks/leadpipe", wh.Leadpipe)

	return r
}
