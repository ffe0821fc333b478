// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"authflow/internal/domain/entity"
	domainerrors "authflow/internal/domain/errors"
	"authflow/internal/domain/repository"
	"authflow/internal/errors"
	"authflow/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"
)

// credentialRepository implements repository.CredentialRepository using GORM.
type credentialRepository struct {
	db *gorm.DB
}

// NewCredentialRepository is the constructor for credentialRepository.
func NewCredentialRepository(db *gorm.DB) repository.CredentialRepository {
	return &credentialRepository{db: db}
}

// FindByEmail reads from the primary so a freshly provisioned account can log
// in before replicas catch up.
func (repo *credentialRepository) FindByEmail(ctx context.Context, email string) (*entity.UserCredential, error) {
	var userM model.UserModel

	err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Where("email = ?", entity.NormalizeEmail(email)).
		Take(&userM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCredentialNotFound
		}

		return nil, errors.WithStack(domainerrors.NewDatabaseExecuteError(err, "find credential by email"))
	}

	return toCredentialDomain(&userM), nil
}

// Create inserts a new credential record and copies generated fields back.
func (repo *credentialRepository) Create(ctx context.Context, credential *entity.UserCredential) error {
	if credential.ID == uuid.Nil {
		id, err := uuid.NewV7()
		if err != nil {
			return errors.Wrap(err, "generate credential id")
		}
		credential.ID = id
	}

	userM := fromCredentialDomain(credential)
	if err := repo.db.WithContext(ctx).Create(userM).Error; err != nil {
		switch {
		case isUniqueConstraintViolation(err):
			return repository.ErrCredentialAlreadyExists
		case isNotNullConstraintViolation(err):
			return errors.Wrap(domainerrors.ErrValidationFailed, err.Error())
		default:
			return errors.WithStack(domainerrors.NewDatabaseExecuteError(err, "create credential"))
		}
	}

	credential.Email = userM.Email
	credential.CreatedAt = userM.CreatedAt
	credential.UpdatedAt = userM.UpdatedAt

	return nil
}

func toCredentialDomain(m *model.UserModel) *entity.UserCredential {
	return &entity.UserCredential{
		ID:           m.ID,
		Email:        m.Email,
		Name:         m.Name,
		IsAdmin:      m.IsAdmin,
		PasswordHash: m.PasswordHash,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func fromCredentialDomain(c *entity.UserCredential) *model.UserModel {
	return &model.UserModel{
		ID:           c.ID,
		Email:        entity.NormalizeEmail(c.Email),
		Name:         c.Name,
		IsAdmin:      c.IsAdmin,
		PasswordHash: c.PasswordHash,
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
	}
}
