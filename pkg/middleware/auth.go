package middleware

import (
	"context"
	"crypto/subtle"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/render"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
)

type contextKey string

// ContextUserID carries the authenticated auth-subsystem user id.
const ContextUserID contextKey = "user_id"

type sessionClaims struct {
	UserID string `json:"uid"`
	jwt.RegisteredClaims
}

// RequireAuth validates the bearer session token issued by the auth
// subsystem (HS256, shared secret) and injects the user id into the request
// context.
func RequireAuth(jwtSecret string, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// An empty secret would let HS256 tokens signed with the empty
			// key verify; treat it as everything-rejected, like RequireAdmin.
			if jwtSecret == "" {
				logger.Warn("session auth rejected: no signing secret configured",
					zap.String("path", r.URL.Path))
				sendError(w, r, http.StatusUnauthorized, "invalid session token")
				return
			}

			token := bearerToken(r)
			if token == "" {
				sendError(w, r, http.StatusUnauthorized, "missing bearer token")
				return
			}

			claims := &sessionClaims{}
			parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
				if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
				}
				return []byte(jwtSecret), nil
			})
			if err != nil || !parsed.Valid || claims.UserID == "" {
				logger.Warn("rejected session token",
					zap.String("path", r.URL.Path),
					zap.Error(err))
				sendError(w, r, http.StatusUnauthorized, "invalid session token")
				return
			}

			ctx := context.WithValue(r.Context(), ContextUserID, claims.UserID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAdmin guards admin-only endpoints with a static shared secret
// carried in the Authorization header. This is admin-to-admin trust: a plain
// byte-for-byte comparison, done in constant time.
func RequireAdmin(adminSecret string, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := bearerToken(r)
			if adminSecret == "" || token == "" ||
				subtle.ConstantTimeCompare([]byte(token), []byte(adminSecret)) != 1 {
				logger.Warn("rejected admin request",
					zap.String("path", r.URL.Path),
					zap.String("ip", clientIP(r)))
				sendError(w, r, http.StatusUnauthorized, "unauthorized")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// UserIDFromContext retrieves the authenticated user id set by RequireAuth.
func UserIDFromContext(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(ContextUserID).(string)
	return userID, ok
}

func bearerToken(r *http.Request) string {
	h := r.Header.Get("Authorization")
	if !strings.HasPrefix(h, "Bearer ") {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
}

func sendError(w http.ResponseWriter, r *http.Request, status int, message string) {
	render.Status(r, status)
	render.JSON(w, r, map[string]string{"error": message})
}

func clientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		ips := strings.Split(xff, ",")
		return strings.TrimSpace(ips[0])
	}
	if xrip := r.Header.Get("X-Real-IP"); xrip != "" {
		return xrip
	}
	ip := r.RemoteAddr
	if colonIdx := strings.LastIndex(ip, ":"); colonIdx != -1 {
		ip = ip[:colonIdx]
	}
	return ip
}
