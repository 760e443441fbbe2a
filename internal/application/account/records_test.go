package account

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/go-docs-auth/internal/domain"
	"github.com/go-docs-auth/internal/infrastructure/dynamo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestWriter(admin *fakeAdmin) *RecordWriter {
	w := NewRecordWriter(admin.factory(), "users")
	w.newID = func() string { return "doc1" }
	w.now = func() time.Time { return time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC) }
	return w
}

func TestRecordWriterCreate(t *testing.T) {
	admin := newFakeAdmin()
	admin.avatars.On("Default", mock.Anything).Return("s3://bucket/avatars/default.png", nil)
	admin.documents.On("CreateDocument", mock.Anything, "users", "doc1", mock.MatchedBy(func(r *domain.UserRecord) bool {
		return r.Email == "new@x.com" && r.FullName == "Jane Doe" && r.AccountID == "otp_1" &&
			r.Avatar == "s3://bucket/avatars/default.png"
	})).Return(&dynamo.Document{ID: "doc1"}, nil)

	rec, err := newTestWriter(admin).Create(context.Background(), "Jane Doe", "new@x.com", "otp_1")
	require.NoError(t, err)
	assert.Equal(t, "doc1", rec.DocumentID)
	admin.documents.AssertExpectations(t)
}

func TestRecordWriterCreate_WriteFails(t *testing.T) {
	admin := newFakeAdmin()
	admin.avatars.On("Default", mock.Anything).Return("https://cdn/avatar.png", nil)
	admin.documents.On("CreateDocument", mock.Anything, "users", "doc1", mock.Anything).
		Return(nil, errors.New("throttled"))

	_, err := newTestWriter(admin).Create(context.Background(), "", "new@x.com", "otp_3")
	var re *domain.RecordCreationError
	require.ErrorAs(t, err, &re)
	assert.Equal(t, "otp_3", re.AccountID)
}

func TestRecordWriterCreate_AvatarFails(t *testing.T) {
	admin := newFakeAdmin()
	admin.avatars.On("Default", mock.Anything).Return("", errors.New("access denied"))

	_, err := newTestWriter(admin).Create(context.Background(), "", "new@x.com", "otp_3")
	var re *domain.RecordCreationError
	assert.ErrorAs(t, err, &re)
	admin.documents.AssertNotCalled(t, "CreateDocument", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}
