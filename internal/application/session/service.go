package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/go-docs-auth/internal/domain"
	"github.com/go-docs-auth/internal/gateway"
	"github.com/go-docs-auth/internal/infrastructure/dynamo"
	"github.com/go-docs-auth/internal/pkg/validate"
)

type VerifyResult struct {
	Token   string
	Session *domain.Session
}

type Service interface {
	Verify(ctx context.Context, req domain.VerifySessionRequest) (*VerifyResult, error)
	Current(ctx context.Context, token string) (*domain.CurrentUser, error)
	Logout(ctx context.Context, token string) error
}

type tokenSigner interface {
	Sign(accountID, sessionID string) (string, error)
}

type ServiceDeps struct {
	Admin           gateway.AdminFactory
	Session         gateway.SessionFactory
	Signer          tokenSigner
	UsersCollection string
}

type service struct {
	admin      gateway.AdminFactory
	session    gateway.SessionFactory
	signer     tokenSigner
	collection string
}

func NewService(deps ServiceDeps) Service {
	return &service{
		admin:      deps.Admin,
		session:    deps.Session,
		signer:     deps.Signer,
		collection: deps.UsersCollection,
	}
}

// Verify exchanges an emailed code for a session and its signed token.
func (s *service) Verify(ctx context.Context, req domain.VerifySessionRequest) (*VerifyResult, error) {
	if err := validate.Struct(req); err != nil {
		return nil, err
	}
	if s.signer == nil {
		return nil, errors.New("session signing is not configured")
	}
	admin, err := s.admin()
	if err != nil {
		return nil, err
	}
	sess, err := admin.Accounts().CreateSession(ctx, req.AccountID, req.Secret)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("invalid or expired code: %w", domain.ErrUnauthorized)
	}
	if err != nil {
		return nil, err
	}
	token, err := s.signer.Sign(sess.AccountID, sess.SessionID)
	if err != nil {
		return nil, err
	}
	return &VerifyResult{Token: token, Session: sess}, nil
}

// Current returns the caller's identity and user document.
func (s *service) Current(ctx context.Context, token string) (*domain.CurrentUser, error) {
	h, err := s.session(token)
	if err != nil {
		return nil, err
	}
	identity, err := h.Account().Get(ctx)
	if err != nil {
		return nil, err
	}
	list, err := h.Documents().ListDocuments(ctx, s.collection, dynamo.Equal("email", identity.Email))
	if err != nil {
		return nil, err
	}
	out := &domain.CurrentUser{Identity: identity}
	if list.Total == 0 || len(list.Documents) == 0 {
		return out, nil
	}
	var rec domain.UserRecord
	if err := list.Documents[0].Decode(&rec); err != nil {
		return nil, fmt.Errorf("decode user document: %w", err)
	}
	rec.Avatar = s.avatarURL(ctx, rec.Avatar)
	out.User = &rec
	return out, nil
}

// avatarURL falls back to the stored reference when it cannot be resolved.
func (s *service) avatarURL(ctx context.Context, avatar string) string {
	admin, err := s.admin()
	if err != nil {
		return avatar
	}
	u, err := admin.Avatars().URL(ctx, avatar)
	if err != nil {
		slog.WarnContext(ctx, "failed to resolve avatar url", "avatar", avatar, "err", err)
		return avatar
	}
	return u
}

func (s *service) Logout(ctx context.Context, token string) error {
	h, err := s.session(token)
	if err != nil {
		return err
	}
	return h.Account().DeleteSession(ctx)
}
