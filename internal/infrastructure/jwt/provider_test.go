package jwtinfra

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeKeyPair(t *testing.T) (string, string) {
	t.Helper()
	privKey, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	dir := t.TempDir()
	privPath := filepath.Join(dir, "private.pem")
	pubPath := filepath.Join(dir, "public.pem")

	privPEM := pem.EncodeToMemory(&pem.Block{Type: "RSA PRIVATE KEY", Bytes: x509.MarshalPKCS1PrivateKey(privKey)})
	require.NoError(t, os.WriteFile(privPath, privPEM, 0600))

	pubBytes, err := x509.MarshalPKIXPublicKey(&privKey.PublicKey)
	require.NoError(t, err)
	pubPEM := pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: pubBytes})
	require.NoError(t, os.WriteFile(pubPath, pubPEM, 0600))
	return privPath, pubPath
}

func TestNewProvider_MissingKey(t *testing.T) {
	_, err := NewProvider(filepath.Join(t.TempDir(), "nope.pem"), "", time.Hour)
	assert.ErrorContains(t, err, "read private key")
}

func TestSignVerify_RoundTrip(t *testing.T) {
	privPath, pubPath := writeKeyPair(t)
	p, err := NewProvider(privPath, pubPath, time.Hour)
	require.NoError(t, err)

	signed, err := p.Sign("acc1", "sess1")
	require.NoError(t, err)

	claims, err := p.Verify(signed)
	require.NoError(t, err)
	assert.Equal(t, "acc1", claims.AccountID)
	assert.Equal(t, "sess1", claims.SessionID)
}

func TestVerify_Expired(t *testing.T) {
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	p := NewProviderFromKey(key, -time.Minute)

	signed, err := p.Sign("acc1", "sess1")
	require.NoError(t, err)
	_, err = p.Verify(signed)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestVerify_ForeignKey(t *testing.T) {
	k1, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	k2, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	signed, err := NewProviderFromKey(k1, time.Hour).Sign("acc1", "sess1")
	require.NoError(t, err)
	_, err = NewProviderFromKey(k2, time.Hour).Verify(signed)
	assert.Error(t, err)
}

func TestVerify_MissingSession(t *testing.T) {
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	p := NewProviderFromKey(key, time.Hour)

	signed, err := p.Sign("acc1", "")
	require.NoError(t, err)
	_, err = p.Verify(signed)
	assert.ErrorContains(t, err, "no session")
}
