package entity

import (
	"time"

	"github.com/google/uuid"
)

// TokenType distinguishes the two tokens issued per login.
type TokenType string

const (
	TokenTypeAccess  TokenType = "access"
	TokenTypeRefresh TokenType = "refresh"
)

// TokenPair is the result of a successful login. Both tokens are signed with
// the same key and neither is persisted.
type TokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// TokenClaims is the decoded claim set of an issued token. Subject is uuid.Nil
// for refresh tokens.
type TokenClaims struct {
	Issuer    string
	Subject   uuid.UUID
	TokenID   string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// HasSubject reports whether the claims carry a subject (access tokens only).
func (c *TokenClaims) HasSubject() bool {
	return c.Subject != uuid.Nil
}
