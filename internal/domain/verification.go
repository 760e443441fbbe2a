package domain

import "time"

// PendingVerification is the hashed one-time code awaiting verification.
// PK: account_id. ExpiresAt is a Unix timestamp used as DynamoDB TTL.
type PendingVerification struct {
	AccountID  string    `json:"account_id" dynamodbav:"account_id"`
	SecretHash string    `json:"-" dynamodbav:"secret_hash"`
	ExpiresAt  int64     `json:"expires_at" dynamodbav:"expires_at"`
	Attempts   int       `json:"attempts" dynamodbav:"attempts"`
	CreatedAt  time.Time `json:"created" dynamodbav:"created_at"`
}

// Expired reports whether the code can no longer be used.
func (p *PendingVerification) Expired(now time.Time) bool {
	return p.ExpiresAt <= now.Unix()
}

// EmailToken is what the identity provider hands back after sending a code.
// It never carries the secret.
type EmailToken struct {
	UserID    string    `json:"userId"`
	ExpiresAt time.Time `json:"expire"`
}
