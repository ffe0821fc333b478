package service

import (
	"authflow/internal/domain/entity"

	"github.com/google/uuid"
)

// TokenIssuer signs the access and refresh token of a successful login.
type TokenIssuer interface {
	// Issue returns a token pair for subjectID. Every call mints two fresh
	// token identifiers. A signing failure yields ErrSigningFailed and no tokens.
	Issue(subjectID uuid.UUID) (*entity.TokenPair, error)
}
