package server

import (
	"log"
	"net/http"
	"time"

	"partner-program/internal/config"
	"partner-program/internal/handler"
	"partner-program/internal/notifier"
	"partner-program/internal/repository"
	"partner-program/internal/router"
	"partner-program/internal/usecase"

	"github.com/go-chi/chi/v5"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type Server struct {
	HTTP   *http.Server
	Logger *zap.Logger

	closers []func()
}

// NewServer wires every dependency once at process start. The pgx pool and
// the Redis client are the only shared resources; both are safe for
// concurrent use and are released by Close on shutdown.
func NewServer(cfg config.AppConfig) *Server {
	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}

	db, err := config.ConnectDB()
	if err != nil {
		logger.Fatal("failed to connect to DB", zap.Error(err))
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPass,
		DB:       0,
	})

	partnerRepo := repository.NewPartnerRepo(db)
	referralRepo := repository.NewReferralRepo(db)
	credentialRepo := repository.NewCredentialRepo(db)

	emailNotifier := notifier.NewEmailNotifier(cfg)
	chatNotifier := notifier.NewChatNotifier(cfg.ChatWebhookURL)

	uc := usecase.NewPartnerUsecase(partnerRepo, referralRepo, credentialRepo, emailNotifier, logger)

	partnerHandler := handler.NewPartnerHandler(uc, cfg.ApplyRedirectURL, logger)
	webhookHandler := handler.NewWebhookHandler(cfg.LeadpipeSecret, chatNotifier, logger)

	r := chi.NewRouter()
	router.SetupRoutes(r, partnerHandler, webhookHandler, cfg, rdb, logger)

	httpSrv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	return &Server{
		HTTP:   httpSrv,
		Logger: logger,
		closers: []func(){
			db.Close,
			func() { _ = rdb.Close() },
			func() { _ = logger.Sync() },
		},
	}
}

// StartHTTP runs the HTTP server.
func (s *Server) StartHTTP() error {
	s.Logger.Info("partner-program HTTP service listening", zap.String("addr", s.HTTP.Addr))
	return s.HTTP.ListenAndServe()
}

// Close releases the shared connection resources.
func (s *Server) Close() {
	for _, fn := range s.closers {
		fn()
	}
}
