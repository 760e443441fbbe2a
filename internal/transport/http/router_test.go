package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-docs-auth/internal/config"
	"github.com/go-docs-auth/internal/domain"
	"github.com/go-docs-auth/internal/gateway"
	"github.com/stretchr/testify/assert"
)

func testRouter() http.Handler {
	cfg := &config.Config{SessionCookieName: "doc-session", AllowedOrigins: []string{"*"}}
	return NewRouter(cfg, &Deps{
		Admin: func() (gateway.Admin, error) { return nil, gateway.ErrNoAdminCredential },
		Session: func(string) (gateway.Session, error) {
			return nil, &domain.NoSessionError{Reason: "invalid or expired token"}
		},
		UsersCollection: "users",
	})
}

func TestRouter_HealthCheck(t *testing.T) {
	rec := httptest.NewRecorder()
	testRouter().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/health-check/ping", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRouter_CreateAccountFailureIsOpaque(t *testing.T) {
	body := strings.NewReader(`{"type":"sign-up","fullName":"Jane Doe","email":"new@x.com"}`)
	req := httptest.NewRequest(http.MethodPost, "/v1/accounts", body)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	testRouter().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"failed to create account"}`, rec.Body.String())
}

func TestRouter_CurrentSessionRequiresToken(t *testing.T) {
	router := testRouter()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/sessions/current", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	req := httptest.NewRequest(http.MethodGet, "/v1/sessions/current", nil)
	req.Header.Set("Authorization", "Bearer expired")
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"error":"no session found"}`, rec.Body.String())
}
