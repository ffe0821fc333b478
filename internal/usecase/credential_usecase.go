// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"authflow/internal/domain/entity"
	"authflow/internal/domain/service"
)

// VerifyInput is the body of the credential service's verify call.
type VerifyInput struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// ProvisionInput defines the data required to create a credential record.
type ProvisionInput struct {
	Name     string
	Email    string
	Password string
	IsAdmin  bool
}

// CredentialUsecase is owned by the credential service. Its Verify method
// makes it the in-process service.CredentialVerifier.
type CredentialUsecase interface {
	service.CredentialVerifier

	// Provision hashes the password and stores a new record.
	Provision(ctx context.Context, input *ProvisionInput) (*entity.Identity, error)
}
