package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-docs-auth/internal/application/account"
	"github.com/go-docs-auth/internal/domain"
)

// AccountHandler serves the sign-in / sign-up form submission.
type AccountHandler struct {
	svc account.Service
}

func NewAccountHandler(svc account.Service) *AccountHandler {
	return &AccountHandler{svc: svc}
}

// Create starts email verification and returns the account id to verify against.
// New and existing emails get the same response shape.
func (h *AccountHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	res, err := h.svc.CreateAccount(r.Context(), req)
	switch {
	case err == nil:
		writeJSON(w, http.StatusOK, res)
	case errors.Is(err, domain.ErrAccountCreation):
		// causes are logged by the service
		writeError(w, http.StatusInternalServerError, domain.ErrAccountCreation.Error())
	case errors.Is(err, domain.ErrBadRequest):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, domain.ErrAccountCreation.Error())
	}
}
