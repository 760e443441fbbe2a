package account

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/go-docs-auth/internal/domain"
	"github.com/go-docs-auth/internal/gateway"
	"github.com/go-docs-auth/internal/pkg/keylock"
	"github.com/go-docs-auth/internal/pkg/validate"
)

// EventUserProvisioned is published after a new user document is written.
const EventUserProvisioned = "user.provisioned"

type Service interface {
	CreateAccount(ctx context.Context, req domain.CreateAccountRequest) (*domain.CreateAccountResult, error)
}

type userFinder interface {
	ByEmail(ctx context.Context, email string) (*domain.UserRecord, error)
}

type otpIssuer interface {
	Issue(ctx context.Context, email string) (string, error)
}

type recordWriter interface {
	Create(ctx context.Context, fullName, email, accountID string) (*domain.UserRecord, error)
}

type eventPublisher interface {
	Publish(ctx context.Context, eventType string, payload interface{}) error
}

type ServiceDeps struct {
	Admin           gateway.AdminFactory
	UsersCollection string
	Publisher       eventPublisher // optional
}

type service struct {
	lookup    userFinder
	issuer    otpIssuer
	writer    recordWriter
	publisher eventPublisher
	locks     *keylock.Locker
}

func NewService(deps ServiceDeps) Service {
	return &service{
		lookup:    NewLookup(deps.Admin, deps.UsersCollection),
		issuer:    NewOTPIssuer(deps.Admin),
		writer:    NewRecordWriter(deps.Admin, deps.UsersCollection),
		publisher: deps.Publisher,
		locks:     keylock.New(),
	}
}

// CreateAccount looks the email up, always issues a fresh code, and writes a
// user document only when none existed. The result is the same shape for new
// and existing users. Every failure is logged and returned wrapped in
// domain.ErrAccountCreation.
func (s *service) CreateAccount(ctx context.Context, req domain.CreateAccountRequest) (*domain.CreateAccountResult, error) {
	req.Email = normalizeEmail(req.Email)
	req.FullName = strings.TrimSpace(req.FullName)
	if err := validate.Struct(req); err != nil {
		return nil, err
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	unlock, err := s.locks.Lock(ctx, req.Email)
	if err != nil {
		return nil, s.fail(ctx, "lock", req.Email, err)
	}
	defer unlock()

	existing, err := s.lookup.ByEmail(ctx, req.Email)
	if err != nil {
		return nil, s.fail(ctx, "lookup", req.Email, err)
	}

	accountID, err := s.issuer.Issue(ctx, req.Email)
	if err != nil {
		return nil, s.fail(ctx, "issue_otp", req.Email, err)
	}

	if existing != nil {
		return &domain.CreateAccountResult{AccountID: accountID}, nil
	}

	rec, err := s.writer.Create(ctx, req.FullName, req.Email, accountID)
	if err != nil {
		return nil, s.fail(ctx, "create_record", req.Email, err)
	}
	s.publishProvisioned(ctx, rec)
	return &domain.CreateAccountResult{AccountID: accountID}, nil
}

func (s *service) fail(ctx context.Context, stage, email string, err error) error {
	slog.ErrorContext(ctx, "account provisioning failed", "stage", stage, "email", email, "err", err)
	return fmt.Errorf("%w: %w", domain.ErrAccountCreation, err)
}

func (s *service) publishProvisioned(ctx context.Context, rec *domain.UserRecord) {
	if s.publisher == nil {
		return
	}
	payload := map[string]string{
		"account_id":  rec.AccountID,
		"document_id": rec.DocumentID,
		"email":       rec.Email,
	}
	if err := s.publisher.Publish(ctx, EventUserProvisioned, payload); err != nil {
		slog.WarnContext(ctx, "failed to publish provisioning event", "account_id", rec.AccountID, "err", err)
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
