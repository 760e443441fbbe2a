package domain

import "time"

// Identity is the identity provider's account, independent of the user document.
type Identity struct {
	AccountID         string    `json:"id" dynamodbav:"account_id"`
	Email             string    `json:"email" dynamodbav:"email"`
	EmailVerification bool      `json:"emailVerification" dynamodbav:"email_verification"`
	CreatedAt         time.Time `json:"created" dynamodbav:"created_at"`
	UpdatedAt         time.Time `json:"updated" dynamodbav:"updated_at"`
}

type Session struct {
	SessionID string    `json:"id" dynamodbav:"session_id"`
	AccountID string    `json:"userId" dynamodbav:"account_id"`
	Enable    bool      `json:"enable" dynamodbav:"enable"`
	ExpiresAt int64     `json:"expire" dynamodbav:"expires_at"`
	CreatedAt time.Time `json:"created" dynamodbav:"created_at"`
	UpdatedAt time.Time `json:"updated" dynamodbav:"updated_at"`
}

type VerifySessionRequest struct {
	AccountID string `json:"accountId" validate:"required"`
	Secret    string `json:"secret" validate:"required,len=6,numeric"`
}

// CurrentUser is the signed-in caller as shown to the client. User is nil when
// the identity has no user document.
type CurrentUser struct {
	Identity *Identity   `json:"account"`
	User     *UserRecord `json:"user"`
}
