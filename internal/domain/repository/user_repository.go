// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"authflow/internal/domain/entity"
)

var (
	// ErrCredentialNotFound is returned when no record matches the lookup key.
	ErrCredentialNotFound = errors.New("credential not found")

	// ErrCredentialAlreadyExists is returned when the email is already taken.
	ErrCredentialAlreadyExists = errors.New("credential already exists")
)

// CredentialRepository is the credential store: user records keyed by email.
type CredentialRepository interface {
	// FindByEmail returns the single record for email or ErrCredentialNotFound.
	FindByEmail(ctx context.Context, email string) (*entity.UserCredential, error)

	// Create persists a new record and fills in its ID and timestamps.
	Create(ctx context.Context, credential *entity.UserCredential) error
}
