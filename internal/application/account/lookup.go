package account

import (
	"context"
	"fmt"

	"github.com/go-docs-auth/internal/domain"
	"github.com/go-docs-auth/internal/gateway"
	"github.com/go-docs-auth/internal/infrastructure/dynamo"
)

// Lookup finds the user document for an email.
type Lookup struct {
	admin      gateway.AdminFactory
	collection string
}

func NewLookup(admin gateway.AdminFactory, collection string) *Lookup {
	return &Lookup{admin: admin, collection: collection}
}

// ByEmail returns the first user document whose email equals email, or nil
// when there is none. Absence is not an error.
func (l *Lookup) ByEmail(ctx context.Context, email string) (*domain.UserRecord, error) {
	admin, err := l.admin()
	if err != nil {
		return nil, &domain.LookupError{Email: email, Err: err}
	}
	list, err := admin.Documents().ListDocuments(ctx, l.collection, dynamo.Equal("email", email))
	if err != nil {
		return nil, &domain.LookupError{Email: email, Err: err}
	}
	if list.Total == 0 || len(list.Documents) == 0 {
		return nil, nil
	}
	var rec domain.UserRecord
	if err := list.Documents[0].Decode(&rec); err != nil {
		return nil, &domain.LookupError{Email: email, Err: fmt.Errorf("decode user document: %w", err)}
	}
	return &rec, nil
}
