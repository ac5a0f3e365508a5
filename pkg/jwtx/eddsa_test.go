package jwtx_test

import (
	"crypto/ed25519"
	"crypto/rand"
	"testing"
	"time"

	"github.com/northbeamhq/portal/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

func newTestSigner(t *testing.T, kid string) (*jwtx.EdDSASigner, *jwtx.KeySet) {
	t.Helper()

	pub, priv, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)

	signer, err := jwtx.NewSignerEdDSA(kid, priv)
	require.NoError(t, err)

	keys := jwtx.NewKeySet()
	require.NoError(t, keys.Add(kid, pub))

	return signer, keys
}

func TestEdDSASignAndVerify(t *testing.T) {
	signer, keys := newTestSigner(t, "staff-1")
	verifier := jwtx.NewCommonEdDSA(keys, "portal-identity", nil)

	claims := jwtx.NewStaffClaims(
		"user-123",
		[]string{"invitations:read", "invitations:write"},
		time.Minute,
		"portal-identity",
		nil,
		"Test Staff",
		time.Now().UTC(),
	)

	token, err := signer.Sign(claims)
	require.NoError(t, err)

	got, err := verifier.Verify(token)
	require.NoError(t, err)
	require.Equal(t, "user-123", got.Subject)
	require.Equal(t, []string{"invitations:read", "invitations:write"}, got.Scopes)
	require.Equal(t, "Test Staff", got.Name)
}

func TestEdDSAVerifyRejectsWrongIssuer(t *testing.T) {
	signer, keys := newTestSigner(t, "staff-1")
	verifier := jwtx.NewCommonEdDSA(keys, "portal-identity", nil)

	claims := jwtx.NewStaffClaims("user-123", nil, time.Minute, "someone-else", nil, "", time.Now().UTC())
	token, err := signer.Sign(claims)
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	require.ErrorIs(t, err, jwtx.ErrIssuer)
}

func TestEdDSAVerifyRejectsExpired(t *testing.T) {
	signer, keys := newTestSigner(t, "staff-1")
	verifier := jwtx.NewCommonEdDSA(keys, "", nil)

	claims := jwtx.NewStaffClaims("user-123", nil, time.Minute, "", nil, "", time.Now().UTC().Add(-time.Hour))
	token, err := signer.Sign(claims)
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	require.Error(t, err)
}

func TestEdDSAVerifyRejectsUnknownKid(t *testing.T) {
	signer, _ := newTestSigner(t, "staff-1")
	_, otherKeys := newTestSigner(t, "staff-2")
	verifier := jwtx.NewCommonEdDSA(otherKeys, "", nil)

	claims := jwtx.NewStaffClaims("user-123", nil, time.Minute, "", nil, "", time.Now().UTC())
	token, err := signer.Sign(claims)
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	require.Error(t, err)
}

func TestKeySetBase64RoundTrip(t *testing.T) {
	keys := jwtx.NewKeySet()
	require.False(t, keys.IsReady())

	require.Error(t, keys.AddBase64("kid", "!!not-base64!!"))
	require.False(t, keys.IsReady())
}
