package gateway

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"text/template"
	"time"

	"github.com/go-docs-auth/internal/domain"
	jwtinfra "github.com/go-docs-auth/internal/infrastructure/jwt"
	"github.com/go-docs-auth/internal/pkg/id"
	"github.com/go-docs-auth/internal/pkg/otp"
	"golang.org/x/crypto/bcrypt"
)

const codeEmailSubject = "Your verification code"

// codeEmailTemplate is the body of the verification email.
var codeEmailTemplate = template.Must(template.New("code").Parse(`Hi {{.Email}},

This is your verification code for {{.SiteName}}:

{{.Code}}

The code is valid for {{printf "%.f" .Expiration.Minutes}} minutes.

If you did not request a code, you can ignore this email.
`))

type codeEmailParams struct {
	Email      string
	SiteName   string
	Code       string
	Expiration time.Duration
}

type identityStore interface {
	Create(ctx context.Context, id *domain.Identity) error
	Get(ctx context.Context, accountID string) (*domain.Identity, error)
	GetByEmail(ctx context.Context, email string) (*domain.Identity, error)
	OwnerOfEmail(ctx context.Context, email string) (string, error)
	MarkEmailVerified(ctx context.Context, accountID string) error
}

type tokenStore interface {
	Put(ctx context.Context, v *domain.PendingVerification) error
	Get(ctx context.Context, accountID string) (*domain.PendingVerification, error)
	Delete(ctx context.Context, accountID string) error
	RecordFailure(ctx context.Context, accountID string) (int, error)
	Consume(ctx context.Context, accountID, secretHash string, maxAttempts int) error
}

type sessionStore interface {
	Put(ctx context.Context, s *domain.Session) error
	Get(ctx context.Context, sessionID string) (*domain.Session, error)
	Disable(ctx context.Context, sessionID string) error
}

// accounts is the identity provider behind AccountOps.
type accounts struct {
	identities identityStore
	tokens     tokenStore
	sessions   sessionStore
	mailer     Mailer
	siteName   string
	codeTTL    time.Duration
	sessionTTL time.Duration
	now        func() time.Time
	newCode    func() (string, error)
}

func newAccounts(identities identityStore, tokens tokenStore, sessions sessionStore, mailer Mailer, cfg Config) *accounts {
	return &accounts{
		identities: identities,
		tokens:     tokens,
		sessions:   sessions,
		mailer:     mailer,
		siteName:   cfg.SiteName,
		codeTTL:    cfg.CodeTTL,
		sessionTTL: cfg.SessionTTL,
		now:        time.Now,
		newCode:    otp.NewCode,
	}
}

// CreateEmailToken emails a fresh one-time code to email and returns the id of
// the identity it belongs to. An existing identity for email keeps its id and
// userID is ignored. Any earlier pending code for the identity is replaced.
func (a *accounts) CreateEmailToken(ctx context.Context, userID, email string) (*domain.EmailToken, error) {
	if email == "" {
		return nil, fmt.Errorf("email is required: %w", domain.ErrBadRequest)
	}
	accountID, err := a.resolveIdentity(ctx, userID, email)
	if err != nil {
		return nil, err
	}

	code, err := a.newCode()
	if err != nil {
		return nil, err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(code), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash code: %w", err)
	}
	now := a.now().UTC()
	expires := now.Add(a.codeTTL)
	if err := a.tokens.Put(ctx, &domain.PendingVerification{
		AccountID:  accountID,
		SecretHash: string(hash),
		ExpiresAt:  expires.Unix(),
		CreatedAt:  now,
	}); err != nil {
		return nil, fmt.Errorf("store pending verification: %w", err)
	}

	var body bytes.Buffer
	if err := codeEmailTemplate.Execute(&body, codeEmailParams{
		Email:      email,
		SiteName:   a.siteName,
		Code:       code,
		Expiration: a.codeTTL,
	}); err != nil {
		return nil, fmt.Errorf("render code email: %w", err)
	}
	if err := a.mailer.SendEmail(email, codeEmailSubject, body.String()); err != nil {
		return nil, fmt.Errorf("deliver code email: %w", err)
	}
	return &domain.EmailToken{UserID: accountID, ExpiresAt: expires}, nil
}

func (a *accounts) resolveIdentity(ctx context.Context, userID, email string) (string, error) {
	existing, err := a.identities.GetByEmail(ctx, email)
	if err == nil {
		return existing.AccountID, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return "", fmt.Errorf("resolve identity: %w", err)
	}
	if userID == "" {
		return "", fmt.Errorf("user id is required for a new identity: %w", domain.ErrBadRequest)
	}
	now := a.now().UTC()
	err = a.identities.Create(ctx, &domain.Identity{
		AccountID: userID,
		Email:     email,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if errors.Is(err, domain.ErrConflict) {
		// another instance reserved the email first
		if owner, oerr := a.identities.OwnerOfEmail(ctx, email); oerr == nil {
			return owner, nil
		}
	}
	if err != nil {
		return "", fmt.Errorf("create identity: %w", err)
	}
	return userID, nil
}

// CreateSession exchanges a pending code for a session. The code is consumed on
// success and discarded after MaxCodeAttempts wrong guesses.
func (a *accounts) CreateSession(ctx context.Context, userID, secret string) (*domain.Session, error) {
	pv, err := a.tokens.Get(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("pending verification: %w", err)
	}
	now := a.now().UTC()
	if pv.Expired(now) {
		return nil, fmt.Errorf("code expired: %w", domain.ErrUnauthorized)
	}
	if pv.Attempts >= MaxCodeAttempts {
		if err := a.tokens.Delete(ctx, userID); err != nil {
			return nil, fmt.Errorf("discard locked code: %w", err)
		}
		return nil, fmt.Errorf("too many attempts: %w", domain.ErrUnauthorized)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(pv.SecretHash), []byte(secret)); err != nil {
		return nil, a.rejectCode(ctx, userID)
	}
	if err := a.tokens.Consume(ctx, userID, pv.SecretHash, MaxCodeAttempts); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("code already used: %w", domain.ErrUnauthorized)
		}
		return nil, fmt.Errorf("consume code: %w", err)
	}
	if err := a.identities.MarkEmailVerified(ctx, userID); err != nil {
		slog.Warn("failed to mark email verified", "account_id", userID, "err", err)
	}

	sess := &domain.Session{
		SessionID: id.New(),
		AccountID: userID,
		Enable:    true,
		ExpiresAt: now.Add(a.sessionTTL).Unix(),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := a.sessions.Put(ctx, sess); err != nil {
		return nil, fmt.Errorf("store session: %w", err)
	}
	return sess, nil
}

// rejectCode counts a wrong guess and discards the code once the limit is hit.
func (a *accounts) rejectCode(ctx context.Context, userID string) error {
	n, err := a.tokens.RecordFailure(ctx, userID)
	if errors.Is(err, domain.ErrNotFound) {
		return fmt.Errorf("invalid code: %w", domain.ErrUnauthorized)
	}
	if err != nil {
		return fmt.Errorf("record failed attempt: %w", err)
	}
	if n >= MaxCodeAttempts {
		if err := a.tokens.Delete(ctx, userID); err != nil {
			return fmt.Errorf("discard locked code: %w", err)
		}
		slog.Info("pending code locked out", "account_id", userID, "attempts", n)
	}
	return fmt.Errorf("invalid code: %w", domain.ErrUnauthorized)
}

// sessionAccount is the caller's own account behind SessionAccountOps.
type sessionAccount struct {
	identities identityStore
	sessions   sessionStore
	claims     *jwtinfra.Claims
	now        func() time.Time
}

func (s *sessionAccount) current(ctx context.Context) (*domain.Session, error) {
	sess, err := s.sessions.Get(ctx, s.claims.SessionID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, &domain.NoSessionError{Reason: "session not found"}
	}
	if err != nil {
		return nil, err
	}
	if !sess.Enable || sess.ExpiresAt <= s.now().Unix() || sess.AccountID != s.claims.AccountID {
		return nil, &domain.NoSessionError{Reason: "session is no longer active"}
	}
	return sess, nil
}

func (s *sessionAccount) Get(ctx context.Context) (*domain.Identity, error) {
	sess, err := s.current(ctx)
	if err != nil {
		return nil, err
	}
	return s.identities.Get(ctx, sess.AccountID)
}

func (s *sessionAccount) DeleteSession(ctx context.Context) error {
	sess, err := s.current(ctx)
	if err != nil {
		return err
	}
	return s.sessions.Disable(ctx, sess.SessionID)
}
