package auth

import (
	"crypto/rsa"

	"authflow/internal/domain/entity"
	"authflow/internal/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// TokenParser verifies tokens signed by rsaTokenIssuer using only the public key.
type TokenParser struct {
	key    *rsa.PublicKey
	parser *jwt.Parser
}

// NewTokenParser accepts RS256 tokens from issuer that carry an expiry.
func NewTokenParser(issuer string, key *rsa.PublicKey) *TokenParser {
	return &TokenParser{
		key: key,
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()}),
			jwt.WithIssuer(issuer),
			jwt.WithExpirationRequired(),
			jwt.WithIssuedAt(),
		),
	}
}

// Parse verifies the signature and standard claims and returns the decoded claim set.
func (p *TokenParser) Parse(tokenString string) (*entity.TokenClaims, error) {
	claims := &jwt.RegisteredClaims{}

	token, err := p.parser.ParseWithClaims(tokenString, claims, func(*jwt.Token) (any, error) {
		return p.key, nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "parse token")
	}
	if !token.Valid {
		return nil, errors.WithStack(jwt.ErrTokenInvalidClaims)
	}
	if claims.ID == "" {
		return nil, errors.New("token has no jti")
	}

	out := &entity.TokenClaims{
		Issuer:  claims.Issuer,
		TokenID: claims.ID,
	}
	if claims.Subject != "" {
		subject, err := uuid.Parse(claims.Subject)
		if err != nil {
			return nil, errors.Wrap(err, "parse subject")
		}
		out.Subject = subject
	}
	if claims.IssuedAt != nil {
		out.IssuedAt = claims.IssuedAt.Time
	}
	if claims.ExpiresAt != nil {
		out.ExpiresAt = claims.ExpiresAt.Time
	}

	return out, nil
}
