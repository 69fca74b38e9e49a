package config

import (
	"os"
)

type AppConfig struct {
	HTTPAddr  string
	RedisAddr string
	RedisPass string

	// AdminSecret authorizes the approve endpoint (static bearer token).
	AdminSecret string
	// LeadpipeSecret keys the HMAC signature on inbound lead webhooks.
	LeadpipeSecret string
	// JWTSecret verifies session tokens issued by the auth subsystem.
	JWTSecret string

	// ApplyRedirectURL is returned to the marketing site after a successful
	// application.
	ApplyRedirectURL string
	// ChatWebhookURL receives formatted lead notifications (Slack-style
	// incoming webhook). Empty disables forwarding.
	ChatWebhookURL string

	SMTPHost  string
	SMTPPort  string
	SMTPUser  string
	SMTPPass  string
	EmailFrom string
}

func Load() AppConfig {
	return AppConfig{
		HTTPAddr:  getEnv("HTTP_ADDR", ":8001"),
		RedisAddr: getEnv("REDIS_ADDR", "redis:6379"),
		RedisPass: getEnv("REDIS_PASS", ""),

		AdminSecret:    getEnv("ADMIN_SECRET", ""),
		LeadpipeSecret: getEnv("LEADPIPE_SECRET", ""),
		JWTSecret:      getEnv("JWT_SECRET", ""),

		ApplyRedirectURL: getEnv("APPLY_REDIRECT_URL", "/partners/thank-you"),
		ChatWebhookURL:   getEnv("CHAT_WEBHOOK_URL", ""),

		SMTPHost:  getEnv("SMTP_HOST", ""),
		SMTPPort:  getEnv("SMTP_PORT", "587"),
		SMTPUser:  getEnv("SMTP_USER", ""),
		SMTPPass:  getEnv("SMTP_PASS", ""),
		EmailFrom: getEnv("EMAIL_FROM", "partners@example.com"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
