package account

import (
	"context"
	"fmt"
	"time"

	"github.com/go-docs-auth/internal/domain"
	"github.com/go-docs-auth/internal/gateway"
	"github.com/go-docs-auth/internal/pkg/id"
)

// RecordWriter creates user documents.
type RecordWriter struct {
	admin      gateway.AdminFactory
	collection string
	newID      func() string
	now        func() time.Time
}

func NewRecordWriter(admin gateway.AdminFactory, collection string) *RecordWriter {
	return &RecordWriter{admin: admin, collection: collection, newID: id.New, now: time.Now}
}

// Create writes a new user document with the default avatar.
func (w *RecordWriter) Create(ctx context.Context, fullName, email, accountID string) (*domain.UserRecord, error) {
	fail := func(err error) error {
		return &domain.RecordCreationError{Email: email, AccountID: accountID, Err: err}
	}
	admin, err := w.admin()
	if err != nil {
		return nil, fail(err)
	}
	avatar, err := admin.Avatars().Default(ctx)
	if err != nil {
		return nil, fail(fmt.Errorf("default avatar: %w", err))
	}
	rec := &domain.UserRecord{
		DocumentID: w.newID(),
		Email:      email,
		FullName:   fullName,
		Avatar:     avatar,
		AccountID:  accountID,
		CreatedAt:  w.now().UTC(),
	}
	if _, err := admin.Documents().CreateDocument(ctx, w.collection, rec.DocumentID, rec); err != nil {
		return nil, fail(err)
	}
	return rec, nil
}
