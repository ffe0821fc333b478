package auth

import (
	"crypto/rsa"
	"time"

	"authflow/config"
	"authflow/internal/domain/entity"
	domainerrors "authflow/internal/domain/errors"
	"authflow/internal/domain/service"
	"authflow/internal/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/fx"
)

const (
	// TokenTTL is the lifetime of both issued tokens.
	TokenTTL = time.Hour

	// SigningAlgorithm is the JWS alg of every issued token.
	SigningAlgorithm = "RS256"
)

// rsaTokenIssuer implements service.TokenIssuer with RS256 signatures.
// The key is shared read-only by all concurrent Issue calls.
type rsaTokenIssuer struct {
	issuer string
	key    *rsa.PrivateKey
	now    func() time.Time
	newID  func() string
}

// TokenIssuerParams holds dependencies for the token issuer, injected by Fx.
type TokenIssuerParams struct {
	fx.In

	Config *config.Config
	Key    *rsa.PrivateKey
}

// NewRSATokenIssuer binds the issuer to the key loaded by NewSigningKey.
func NewRSATokenIssuer(params TokenIssuerParams) service.TokenIssuer {
	return newRSATokenIssuer(params.Config.Token.Issuer, params.Key, time.Now)
}

func newRSATokenIssuer(issuer string, key *rsa.PrivateKey, now func() time.Time) *rsaTokenIssuer {
	return &rsaTokenIssuer{
		issuer: issuer,
		key:    key,
		now:    now,
		newID:  uuid.NewString,
	}
}

// Issue signs an access token {iss, sub, jti} and a subject-less refresh
// token {iss, jti}. Either both tokens are returned or neither.
func (s *rsaTokenIssuer) Issue(subjectID uuid.UUID) (*entity.TokenPair, error) {
	if s.key == nil {
		return nil, errors.Wrap(domainerrors.ErrSigningFailed, "signing key not loaded")
	}
	if subjectID == uuid.Nil {
		return nil, errors.Wrap(domainerrors.ErrSigningFailed, "empty subject")
	}

	issuedAt := s.now()

	accessToken, err := s.sign(subjectID.String(), issuedAt)
	if err != nil {
		return nil, errors.Wrap(err, "access token")
	}

	refreshToken, err := s.sign("", issuedAt)
	if err != nil {
		return nil, errors.Wrap(err, "refresh token")
	}

	return &entity.TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

func (s *rsaTokenIssuer) sign(subject string, issuedAt time.Time) (string, error) {
	claims := jwt.RegisteredClaims{
		Issuer:    s.issuer,
		Subject:   subject, // omitted from the payload when empty
		ID:        s.newID(),
		IssuedAt:  jwt.NewNumericDate(issuedAt),
		ExpiresAt: jwt.NewNumericDate(issuedAt.Add(TokenTTL)),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(s.key)
	if err != nil {
		return "", errors.Wrapf(domainerrors.ErrSigningFailed, "sign: %v", err)
	}

	return signed, nil
}
