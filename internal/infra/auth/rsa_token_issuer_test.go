package auth

import (
	"crypto/rand"
	"crypto/rsa"
	"encoding/base64"
	"encoding/json"
	"strings"
	"sync"
	"testing"
	"time"

	"authflow/config"
	domainerrors "authflow/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testIssuer = "Biso24"

var sharedTestKey = sync.OnceValue(func() *rsa.PrivateKey {
	key, err := rsa.GenerateKey(rand.Reader, MinSigningKeyBits)
	if err != nil {
		panic(err)
	}

	return key
})

func newTestIssuer(t *testing.T) *rsaTokenIssuer {
	t.Helper()

	return newRSATokenIssuer(testIssuer, sharedTestKey(), time.Now)
}

func decodePayload(t *testing.T, token string) map[string]any {
	t.Helper()

	parts := strings.Split(token, ".")
	require.Len(t, parts, 3, "token must be header.claims.signature")

	raw, err := base64.RawURLEncoding.DecodeString(parts[1])
	require.NoError(t, err)

	payload := map[string]any{}
	require.NoError(t, json.Unmarshal(raw, &payload))

	return payload
}

func decodeHeader(t *testing.T, token string) map[string]any {
	t.Helper()

	raw, err := base64.RawURLEncoding.DecodeString(strings.Split(token, ".")[0])
	require.NoError(t, err)

	header := map[string]any{}
	require.NoError(t, json.Unmarshal(raw, &header))

	return header
}

func TestRSATokenIssuer_IssueAndParse(t *testing.T) {
	issuer := newTestIssuer(t)
	parser := NewTokenParser(testIssuer, &sharedTestKey().PublicKey)
	userID := uuid.New()

	pair, err := issuer.Issue(userID)
	require.NoError(t, err)
	require.NotNil(t, pair)

	access, err := parser.Parse(pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, testIssuer, access.Issuer)
	assert.Equal(t, userID, access.Subject)
	assert.True(t, access.HasSubject())
	assert.NotEmpty(t, access.TokenID)

	refresh, err := parser.Parse(pair.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, testIssuer, refresh.Issuer)
	assert.False(t, refresh.HasSubject())
	assert.NotEmpty(t, refresh.TokenID)

	assert.NotEqual(t, access.TokenID, refresh.TokenID)
}

func TestRSATokenIssuer_ClaimShapes(t *testing.T) {
	issuer := newTestIssuer(t)
	userID := uuid.New()

	pair, err := issuer.Issue(userID)
	require.NoError(t, err)

	access := decodePayload(t, pair.AccessToken)
	assert.Equal(t, testIssuer, access["iss"])
	assert.Equal(t, userID.String(), access["sub"])
	assert.Contains(t, access, "jti")
	assert.Contains(t, access, "exp")

	refresh := decodePayload(t, pair.RefreshToken)
	assert.Equal(t, testIssuer, refresh["iss"])
	assert.NotContains(t, refresh, "sub")
	assert.Contains(t, refresh, "jti")
	assert.Contains(t, refresh, "exp")

	assert.Equal(t, "RS256", decodeHeader(t, pair.AccessToken)["alg"])
	assert.Equal(t, "RS256", decodeHeader(t, pair.RefreshToken)["alg"])
}

func TestRSATokenIssuer_ExpiryIsOneHour(t *testing.T) {
	now := time.Now().Truncate(time.Second)
	issuer := newRSATokenIssuer(testIssuer, sharedTestKey(), func() time.Time { return now })
	parser := NewTokenParser(testIssuer, &sharedTestKey().PublicKey)

	pair, err := issuer.Issue(uuid.New())
	require.NoError(t, err)

	for _, token := range []string{pair.AccessToken, pair.RefreshToken} {
		claims, err := parser.Parse(token)
		require.NoError(t, err)
		assert.Equal(t, now.Unix(), claims.IssuedAt.Unix())
		assert.Equal(t, time.Hour, claims.ExpiresAt.Sub(claims.IssuedAt))
	}
}

func TestRSATokenIssuer_TokenIDsNeverRepeat(t *testing.T) {
	issuer := newTestIssuer(t)
	parser := NewTokenParser(testIssuer, &sharedTestKey().PublicKey)
	userID := uuid.New()

	const logins = 16

	var (
		mu   sync.Mutex
		seen = make(map[string]struct{}, logins*2)
		wg   sync.WaitGroup
	)

	for range logins {
		wg.Add(1)
		go func() {
			defer wg.Done()

			pair, err := issuer.Issue(userID)
			if !assert.NoError(t, err) {
				return
			}

			for _, token := range []string{pair.AccessToken, pair.RefreshToken} {
				claims, err := parser.Parse(token)
				if !assert.NoError(t, err) {
					return
				}

				mu.Lock()
				seen[claims.TokenID] = struct{}{}
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Len(t, seen, logins*2)
}

func TestRSATokenIssuer_MissingKey(t *testing.T) {
	issuer := newRSATokenIssuer(testIssuer, nil, time.Now)

	pair, err := issuer.Issue(uuid.New())
	assert.Nil(t, pair)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrSigningFailed))
	assert.Equal(t, domainerrors.KindSigning, domainerrors.KindOf(err))
}

func TestRSATokenIssuer_EmptySubject(t *testing.T) {
	issuer := newTestIssuer(t)

	pair, err := issuer.Issue(uuid.Nil)
	assert.Nil(t, pair)
	assert.Equal(t, domainerrors.KindSigning, domainerrors.KindOf(err))
}

func TestNewRSATokenIssuer_UsesConfiguredIssuer(t *testing.T) {
	cfg := &config.Config{Token: &config.TokenConfig{Issuer: "other-issuer"}}
	issuer := NewRSATokenIssuer(TokenIssuerParams{Config: cfg, Key: sharedTestKey()})

	pair, err := issuer.Issue(uuid.New())
	require.NoError(t, err)

	assert.Equal(t, "other-issuer", decodePayload(t, pair.AccessToken)["iss"])
}
