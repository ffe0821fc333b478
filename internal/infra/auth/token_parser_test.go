package auth

import (
	"crypto/rand"
	"crypto/rsa"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenParser_RejectsForeignKey(t *testing.T) {
	other, err := rsa.GenerateKey(rand.Reader, MinSigningKeyBits)
	require.NoError(t, err)

	pair, err := newTestIssuer(t).Issue(uuid.New())
	require.NoError(t, err)

	_, err = NewTokenParser(testIssuer, &other.PublicKey).Parse(pair.AccessToken)
	assert.Error(t, err)
}

func TestTokenParser_RejectsOtherIssuer(t *testing.T) {
	pair, err := newTestIssuer(t).Issue(uuid.New())
	require.NoError(t, err)

	_, err = NewTokenParser("someone-else", &sharedTestKey().PublicKey).Parse(pair.AccessToken)
	assert.Error(t, err)
}

func TestTokenParser_RejectsExpiredToken(t *testing.T) {
	past := time.Now().Add(-2 * time.Hour)
	issuer := newRSATokenIssuer(testIssuer, sharedTestKey(), func() time.Time { return past })

	pair, err := issuer.Issue(uuid.New())
	require.NoError(t, err)

	_, err = NewTokenParser(testIssuer, &sharedTestKey().PublicKey).Parse(pair.AccessToken)
	require.Error(t, err)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestTokenParser_RejectsHMACToken(t *testing.T) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Issuer:    testIssuer,
		ID:        uuid.NewString(),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	signed, err := token.SignedString([]byte("shared-secret"))
	require.NoError(t, err)

	_, err = NewTokenParser(testIssuer, &sharedTestKey().PublicKey).Parse(signed)
	assert.Error(t, err)
}

func TestTokenParser_RejectsGarbage(t *testing.T) {
	_, err := NewTokenParser(testIssuer, &sharedTestKey().PublicKey).Parse("clearly-not-a-jwt-token-format")
	assert.Error(t, err)
}
