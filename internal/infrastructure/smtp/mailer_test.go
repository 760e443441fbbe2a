package smtp

import (
	"errors"
	"net/smtp"
	"testing"

	"github.com/go-docs-auth/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSendEmail_BuildsMessage(t *testing.T) {
	m := NewMailer(&config.Config{
		SMTPHost: "mail.local",
		SMTPPort: "2525",
		SMTPFrom: "noreply@docs.test",
		SiteName: "Docs",
	}).(*mailer)

	var gotAddr, gotFrom string
	var gotTo []string
	var gotMsg []byte
	m.send = func(addr string, a smtp.Auth, from string, to []string, msg []byte) error {
		gotAddr, gotFrom, gotTo, gotMsg = addr, from, to, msg
		assert.Nil(t, a)
		return nil
	}

	require.NoError(t, m.SendEmail("jane@x.com", "Your code", "123456"))
	assert.Equal(t, "mail.local:2525", gotAddr)
	assert.Equal(t, "noreply@docs.test", gotFrom)
	assert.Equal(t, []string{"jane@x.com"}, gotTo)
	assert.Contains(t, string(gotMsg), "From: Docs <noreply@docs.test>\r\n")
	assert.Contains(t, string(gotMsg), "Subject: Your code\r\n")
	assert.Contains(t, string(gotMsg), "\r\n\r\n123456")
}

func TestSendEmail_RejectsHeaderInjection(t *testing.T) {
	m := NewMailer(&config.Config{SMTPHost: "h", SMTPPort: "25"}).(*mailer)
	m.send = func(string, smtp.Auth, string, []string, []byte) error {
		t.Fatal("send must not be called")
		return nil
	}
	assert.Error(t, m.SendEmail("a@x.com\r\nBcc: evil@x.com", "s", "b"))
}

func TestSendEmail_PropagatesTransportError(t *testing.T) {
	m := NewMailer(&config.Config{SMTPHost: "h", SMTPPort: "25", SMTPUsername: "u", SMTPPassword: "p"}).(*mailer)
	boom := errors.New("550 mailbox unavailable")
	m.send = func(_ string, a smtp.Auth, _ string, _ []string, _ []byte) error {
		assert.NotNil(t, a)
		return boom
	}
	assert.ErrorIs(t, m.SendEmail("a@x.com", "s", "b"), boom)
}
