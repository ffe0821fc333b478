package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoginState_CanTransition(t *testing.T) {
	allowed := map[LoginState][]LoginState{
		LoginStateAwaitingVerification: {LoginStateVerified, LoginStateRejected, LoginStateUpstreamFailed},
		LoginStateVerified:             {LoginStateTokensIssued},
	}
	states := []LoginState{
		LoginStateAwaitingVerification,
		LoginStateVerified,
		LoginStateTokensIssued,
		LoginStateRejected,
		LoginStateUpstreamFailed,
	}

	for _, from := range states {
		for _, to := range states {
			want := false
			for _, next := range allowed[from] {
				if next == to {
					want = true
				}
			}
			assert.Equal(t, want, from.CanTransition(to), "%s -> %s", from, to)
		}
	}
}

func TestLoginState_Terminal(t *testing.T) {
	assert.False(t, LoginStateAwaitingVerification.Terminal())
	assert.False(t, LoginStateVerified.Terminal())
	assert.True(t, LoginStateTokensIssued.Terminal())
	assert.True(t, LoginStateRejected.Terminal())
	assert.True(t, LoginStateUpstreamFailed.Terminal())
}

func TestLoginState_String(t *testing.T) {
	assert.Equal(t, "awaiting-verification", LoginStateAwaitingVerification.String())
	assert.Equal(t, "upstream-failed", LoginStateUpstreamFailed.String())
	assert.Equal(t, "LoginState(42)", LoginState(42).String())
}

func TestUserCredential_IdentityOmitsHash(t *testing.T) {
	record := &UserCredential{Email: "a@x.io", Name: "Alice", PasswordHash: "secret-hash"}

	identity := record.Identity()

	assert.Equal(t, "a@x.io", identity.Email)
	assert.Equal(t, "Alice", identity.Name)
	assert.Nil(t, (*UserCredential)(nil).Identity())
}

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "a@x.com", NormalizeEmail("  A@X.com\t"))
	assert.Equal(t, "", NormalizeEmail("   "))
}
