package service

import (
	"context"

	"authflow/internal/domain/entity"
)

// CredentialVerifier checks an email/password pair against the credential store.
// Implementations exist in-process and over the network; callers cannot tell them apart.
//
// Failures are ErrValidationFailed, ErrCredentialNotFound, ErrInvalidCredential
// and, for network implementations, ErrUpstreamUnavailable.
type CredentialVerifier interface {
	Verify(ctx context.Context, email, password string) (*entity.Identity, error)
}
