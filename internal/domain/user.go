package domain

import (
	"fmt"
	"time"
)

// UserRecord is the document stored in the users collection, one per email.
type UserRecord struct {
	DocumentID string    `json:"id" dynamodbav:"document_id"`
	Email      string    `json:"email" dynamodbav:"email"`
	FullName   string    `json:"fullName" dynamodbav:"full_name"`
	Avatar     string    `json:"avatar" dynamodbav:"avatar"`
	AccountID  string    `json:"accountId" dynamodbav:"account_id"`
	CreatedAt  time.Time `json:"created" dynamodbav:"created_at"`
}

// Form intents. They only change which fields the caller must supply.
const (
	IntentSignIn = "sign-in"
	IntentSignUp = "sign-up"
)

// CreateAccountRequest is the provisioning input. FullName is only required for sign-up.
type CreateAccountRequest struct {
	Type     string `json:"type" validate:"omitempty,oneof=sign-in sign-up"`
	FullName string `json:"fullName" validate:"omitempty,min=2,max=50"`
	Email    string `json:"email" validate:"required,email"`
}

// CreateAccountResult has the same shape for new and existing users.
type CreateAccountResult struct {
	AccountID string `json:"accountId"`
}

// Validate applies the intent-dependent rule the struct tags cannot express.
func (r CreateAccountRequest) Validate() error {
	if r.Type == IntentSignUp && r.FullName == "" {
		return fmt.Errorf("fullName is required for sign-up: %w", ErrBadRequest)
	}
	return nil
}
