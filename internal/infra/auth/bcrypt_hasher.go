// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"authflow/config"
	"authflow/internal/domain/service"
	"authflow/internal/errors"

	"github.com/google/uuid"
	"go.uber.org/fx"
	"golang.org/x/crypto/bcrypt"
)

// bcryptHasher implements service.PasswordHasher using bcrypt.
type bcryptHasher struct {
	cost int

	// decoy is compared against when the caller has no stored hash.
	decoy []byte
}

// HasherParams holds dependencies for the bcrypt hasher, injected by Fx.
type HasherParams struct {
	fx.In

	Config *config.Config
}

// NewBcryptHasher builds the hasher with the configured cost.
func NewBcryptHasher(params HasherParams) (service.PasswordHasher, error) {
	cost := bcrypt.DefaultCost
	if params.Config != nil && params.Config.Auth != nil {
		cost = params.Config.Auth.BcryptCost
	}

	return NewBcryptHasherWithCost(cost)
}

// NewBcryptHasherWithCost builds the hasher with an explicit cost. Out-of-range
// costs fall back to bcrypt.DefaultCost.
func NewBcryptHasherWithCost(cost int) (service.PasswordHasher, error) {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}

	decoy, err := bcrypt.GenerateFromPassword([]byte(uuid.NewString()), cost)
	if err != nil {
		return nil, errors.Wrap(err, "generate decoy hash")
	}

	return &bcryptHasher{cost: cost, decoy: decoy}, nil
}

// Hash generates a salted hash; the salt and cost are encoded in the result.
func (h *bcryptHasher) Hash(password string) (string, error) {
	if password == "" {
		return "", errors.New("password must not be empty")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", errors.Wrap(err, "bcrypt hash")
	}

	return string(hashed), nil
}

// Check reports whether password matches hash. An empty hash is checked
// against the decoy and always fails.
func (h *bcryptHasher) Check(password, hash string) bool {
	if hash == "" {
		_ = bcrypt.CompareHashAndPassword(h.decoy, []byte(password))

		return false
	}

	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
