package account

import (
	"context"
	"errors"

	"github.com/go-docs-auth/internal/domain"
	"github.com/go-docs-auth/internal/gateway"
	"github.com/go-docs-auth/internal/pkg/id"
)

var errNoAccountID = errors.New("identity provider returned no account id")

// OTPIssuer asks the identity provider to email a verification code.
// Every call sends an email, so it is never retried here.
type OTPIssuer struct {
	admin gateway.AdminFactory
	newID func() string
}

func NewOTPIssuer(admin gateway.AdminFactory) *OTPIssuer {
	return &OTPIssuer{admin: admin, newID: id.New}
}

// Issue returns the account id the code is bound to.
func (o *OTPIssuer) Issue(ctx context.Context, email string) (string, error) {
	admin, err := o.admin()
	if err != nil {
		return "", &domain.OtpIssuanceError{Email: email, Err: err}
	}
	tok, err := admin.Accounts().CreateEmailToken(ctx, o.newID(), email)
	if err != nil {
		return "", &domain.OtpIssuanceError{Email: email, Err: err}
	}
	if tok == nil || tok.UserID == "" {
		return "", &domain.OtpIssuanceError{Email: email, Err: errNoAccountID}
	}
	return tok.UserID, nil
}
