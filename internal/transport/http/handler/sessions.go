package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-docs-auth/internal/application/session"
	"github.com/go-docs-auth/internal/domain"
	"github.com/go-docs-auth/internal/transport/http/middleware"
)

// CookieConfig controls the session cookie.
type CookieConfig struct {
	Name   string
	Secure bool
}

// SessionHandler handles session endpoints.
type SessionHandler struct {
	svc    session.Service
	cookie CookieConfig
}

func NewSessionHandler(svc session.Service, cookie CookieConfig) *SessionHandler {
	return &SessionHandler{svc: svc, cookie: cookie}
}

// Create verifies an emailed code and sets the session cookie.
func (h *SessionHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.VerifySessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	res, err := h.svc.Verify(r.Context(), req)
	switch {
	case err == nil:
	case errors.Is(err, domain.ErrBadRequest):
		writeError(w, http.StatusBadRequest, err.Error())
		return
	case errors.Is(err, domain.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, "invalid or expired code")
		return
	default:
		slog.ErrorContext(r.Context(), "session verification failed", "account_id", req.AccountID, "err", err)
		writeError(w, http.StatusInternalServerError, "failed to create session")
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     h.cookie.Name,
		Value:    res.Token,
		Path:     "/",
		Expires:  time.Unix(res.Session.ExpiresAt, 0),
		HttpOnly: true,
		Secure:   h.cookie.Secure,
		SameSite: http.SameSiteStrictMode,
	})
	writeJSON(w, http.StatusCreated, SessionEnvelope{Session: res.Session})
}

func (h *SessionHandler) GetCurrent(w http.ResponseWriter, r *http.Request) {
	token, ok := middleware.TokenFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "no session found")
		return
	}
	cur, err := h.svc.Current(r.Context(), token)
	if err != nil {
		h.writeSessionError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, cur)
}

func (h *SessionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	token, ok := middleware.TokenFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "no session found")
		return
	}
	if err := h.svc.Logout(r.Context(), token); err != nil {
		h.writeSessionError(w, r, err)
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     h.cookie.Name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.cookie.Secure,
		SameSite: http.SameSiteStrictMode,
	})
	writeJSON(w, http.StatusOK, MessageEnvelope{Message: "logged out"})
}

func (h *SessionHandler) writeSessionError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, domain.ErrUnauthorized) {
		writeError(w, http.StatusUnauthorized, "no session found")
		return
	}
	slog.ErrorContext(r.Context(), "session request failed", "err", err)
	writeError(w, http.StatusInternalServerError, "internal server error")
}
