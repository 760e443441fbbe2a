package http

import (
	"context"

	"github.com/go-docs-auth/internal/gateway"
)

// TokenSigner signs session tokens after a code is verified.
type TokenSigner interface {
	Sign(accountID, sessionID string) (string, error)
}

// EventPublisher receives provisioning events.
type EventPublisher interface {
	Publish(ctx context.Context, eventType string, payload interface{}) error
}

// Deps holds everything the router needs to build its services.
type Deps struct {
	Admin           gateway.AdminFactory
	Session         gateway.SessionFactory
	Signer          TokenSigner    // nil disables session completion
	Publisher       EventPublisher // optional
	UsersCollection string
}
