package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"partner-program/internal/config"
	"partner-program/internal/domain"
	"partner-program/internal/handler"
	"partner-program/internal/notifier"
	"partner-program/internal/repository"
	"partner-program/internal/router"
	"partner-program/internal/usecase"
)

const (
	testAdminSecret    = "admin-secret-for-tests"
	testJWTSecret      = "jwt-secret-for-tests"
	testLeadpipeSecret = "whsec_test"
	testRedirect       = "/partners/thank-you"
)

// stubNotifier satisfies usecase.Notifier for handler tests.
type stubNotifier struct {
	mu            sync.Mutex
	approvalErr   error
	lastPlaintext string
}

func (s *stubNotifier) SendApplicationReceived(context.Context, *domain.Partner) error {
	return nil
}

func (s *stubNotifier) SendApprovalCredentials(_ context.Context, _ *domain.Partner, tempPassword string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastPlaintext = tempPassword
	return s.approvalErr
}

type testServer struct {
	handler   http.Handler
	partners  *repository.MemoryPartnerStore
	referrals *repository.MemoryReferralStore
	notifier  *stubNotifier
	uc        *usecase.PartnerUsecase
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	partners := repository.NewMemoryPartnerStore()
	referrals := repository.NewMemoryReferralStore()
	credentials := repository.NewMemoryCredentialStore()
	stub := &stubNotifier{}
	logger := zap.NewNop()

	uc := usecase.NewPartnerUsecase(partners, referrals, credentials, stub, logger)

	cfg := config.AppConfig{
		AdminSecret:      testAdminSecret,
		JWTSecret:        testJWTSecret,
		LeadpipeSecret:   testLeadpipeSecret,
		ApplyRedirectURL: testRedirect,
	}

	h := handler.NewPartnerHandler(uc, cfg.ApplyRedirectURL, logger)
	wh := handler.NewWebhookHandler(cfg.LeadpipeSecret, notifier.NewChatNotifier(""), logger)

	r := chi.NewRouter()
	router.SetupRoutes(r, h, wh, cfg, nil, logger)

	return &testServer{
		handler:   r,
		partners:  partners,
		referrals: referrals,
		notifier:  stub,
		uc:        uc,
	}
}

func (ts *testServer) do(t *testing.T, method, path string, body interface{}, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	rec := httptest.NewRecorder()
	ts.handler.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func sessionToken(t *testing.T, userID string) string {
	t.Helper()
	claims := jwt.MapClaims{
		"uid": userID,
		"exp": time.Now().Add(time.Hour).Unix(),
		"iat": time.Now().Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testJWTSecret))
	require.NoError(t, err)
	return token
}

func applyIntake() map[string]interface{} {
	return map[string]interface{}{
		"fullName":    "Jane Doe",
		"email":       "jane@x.com",
		"company":     "Acme Corp!!",
		"industry":    "SaaS",
		"partnerType": "Organization",
		"imageUrl":    "https://x.com/a.png",
	}
}

// applyPartner submits an application and returns the inserted partner.
func applyPartner(t *testing.T, ts *testServer) *domain.Partner {
	t.Helper()

	rec := ts.do(t, http.MethodPost, "/partner/apply", applyIntake(), nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	all := ts.partners.All()
	require.NotEmpty(t, all)
	return all[len(all)-1]
}

// applyAndApprove runs the full flow and returns the active partner.
func applyAndApprove(t *testing.T, ts *testServer) *domain.Partner {
	t.Helper()

	p := applyPartner(t, ts)

	rec := ts.do(t, http.MethodPost, "/partner/approve",
		map[string]string{"partner_id": p.ID},
		map[string]string{"Authorization": "Bearer " + testAdminSecret})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	refreshed, err := ts.partners.GetPartnerByID(context.Background(), p.ID)
	require.NoError(t, err)
	return refreshed
}
