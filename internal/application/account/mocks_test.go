package account

import (
	"context"

	"github.com/go-docs-auth/internal/domain"
	"github.com/go-docs-auth/internal/gateway"
	"github.com/go-docs-auth/internal/infrastructure/dynamo"
	"github.com/stretchr/testify/mock"
)

// --- mocks ---

type mockAccounts struct{ mock.Mock }

func (m *mockAccounts) CreateEmailToken(ctx context.Context, userID, email string) (*domain.EmailToken, error) {
	args := m.Called(ctx, userID, email)
	if t, _ := args.Get(0).(*domain.EmailToken); t != nil {
		return t, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockAccounts) CreateSession(ctx context.Context, userID, secret string) (*domain.Session, error) {
	args := m.Called(ctx, userID, secret)
	if s, _ := args.Get(0).(*domain.Session); s != nil {
		return s, args.Error(1)
	}
	return nil, args.Error(1)
}

type mockDocuments struct{ mock.Mock }

func (m *mockDocuments) ListDocuments(ctx context.Context, collection string, queries ...dynamo.Query) (*dynamo.DocumentList, error) {
	args := m.Called(ctx, collection, queries)
	if l, _ := args.Get(0).(*dynamo.DocumentList); l != nil {
		return l, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockDocuments) CreateDocument(ctx context.Context, collection, documentID string, data interface{}) (*dynamo.Document, error) {
	args := m.Called(ctx, collection, documentID, data)
	if d, _ := args.Get(0).(*dynamo.Document); d != nil {
		return d, args.Error(1)
	}
	return nil, args.Error(1)
}

type mockAvatars struct{ mock.Mock }

func (m *mockAvatars) Default(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}
func (m *mockAvatars) URL(ctx context.Context, avatar string) (string, error) {
	args := m.Called(ctx, avatar)
	return args.String(0), args.Error(1)
}

// fakeAdmin hands out the same mocks on every accessor call.
type fakeAdmin struct {
	accounts  *mockAccounts
	documents *mockDocuments
	avatars   *mockAvatars
}

func newFakeAdmin() *fakeAdmin {
	return &fakeAdmin{accounts: &mockAccounts{}, documents: &mockDocuments{}, avatars: &mockAvatars{}}
}

func (f *fakeAdmin) Accounts() gateway.AccountOps   { return f.accounts }
func (f *fakeAdmin) Documents() gateway.DocumentOps { return f.documents }
func (f *fakeAdmin) Storage() gateway.StorageOps    { return nil }
func (f *fakeAdmin) Avatars() gateway.AvatarOps     { return f.avatars }

func (f *fakeAdmin) factory() gateway.AdminFactory {
	return func() (gateway.Admin, error) { return f, nil }
}

type mockPublisher struct{ mock.Mock }

func (m *mockPublisher) Publish(ctx context.Context, eventType string, payload interface{}) error {
	return m.Called(ctx, eventType, payload).Error(0)
}
