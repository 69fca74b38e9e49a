package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"partner-program/internal/config"
	"partner-program/internal/server"

	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("partner-program: no .env file found, relying on system env vars")
	}

	cfg := config.Load()
	srv := server.NewServer(cfg)
	defer srv.Close()

	errCh := make(chan error, 1)
	go func() {
		if err := srv.StartHTTP(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-quit:
		log.Println("shutting down partner-program server...")
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.HTTP.Shutdown(ctx); err != nil {
			log.Printf("failed to shutdown HTTP server: %v", err)
		}
	case err := <-errCh:
		log.Fatalf("server error: %v", err)
	}
}
