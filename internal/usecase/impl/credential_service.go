// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "authflow/internal/delivery/context"
	"authflow/internal/domain/entity"
	domainerrors "authflow/internal/domain/errors"
	"authflow/internal/domain/repository"
	"authflow/internal/domain/service"
	"authflow/internal/errors"
	"authflow/internal/usecase"

	"go.uber.org/fx"
)

// credentialService implements usecase.CredentialUsecase. It is the only
// component that ever reads a password hash.
type credentialService struct {
	txManager      repository.TransactionManager
	credentialRepo repository.CredentialRepository
	hasher         service.PasswordHasher
	logger         *slog.Logger
}

// CredentialServiceParams holds dependencies for CredentialService, injected by Fx.
type CredentialServiceParams struct {
	fx.In

	TxManager      repository.TransactionManager
	CredentialRepo repository.CredentialRepository
	Hasher         service.PasswordHasher
	Logger         *slog.Logger
}

// NewCredentialService is the constructor for credentialService.
func NewCredentialService(params CredentialServiceParams) usecase.CredentialUsecase {
	return &credentialService{
		txManager:      params.TxManager,
		credentialRepo: params.CredentialRepo,
		hasher:         params.Hasher,
		logger:         params.Logger,
	}
}

func (srv *credentialService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Verify looks the record up by email and compares password with the stored
// hash. The store is never written.
func (srv *credentialService) Verify(ctx context.Context, email, password string) (*entity.Identity, error) {
	if strings.TrimSpace(email) == "" || password == "" {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "email and password are required")
	}

	record, err := srv.credentialRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrCredentialNotFound) {
			// Spend the same bcrypt work as a wrong password would.
			srv.hasher.Check(password, "")
			srv.log(ctx).Info("Credential verification failed", slog.String("reason", domainerrors.KindCredentialNotFound.String()))

			return nil, errors.Wrap(domainerrors.ErrCredentialNotFound, "verify credential")
		}

		return nil, errors.Wrap(err, "failed to find credential")
	}

	if !srv.hasher.Check(password, record.PasswordHash) {
		srv.log(ctx).Info("Credential verification failed",
			slog.String("reason", domainerrors.KindInvalidCredential.String()),
			slog.Any("user_id", record.ID),
		)

		return nil, errors.Wrap(domainerrors.ErrInvalidCredential, "verify credential")
	}

	srv.log(ctx).Debug("Credential verified", slog.Any("user_id", record.ID))

	return record.Identity(), nil
}

// Provision hashes the password and stores a new record, rejecting emails
// that are already registered.
func (srv *credentialService) Provision(ctx context.Context, input *usecase.ProvisionInput) (*entity.Identity, error) {
	if input == nil || strings.TrimSpace(input.Email) == "" || input.Password == "" {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "email and password are required")
	}
	email := entity.NormalizeEmail(input.Email)

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash password")
	}

	record := &entity.UserCredential{
		Email:        email,
		Name:         input.Name,
		IsAdmin:      input.IsAdmin,
		PasswordHash: hash,
	}

	err = srv.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		repo := factory.NewCredentialRepository()

		_, findErr := repo.FindByEmail(ctx, email)
		switch {
		case findErr == nil:
			return errors.Wrap(domainerrors.ErrUserAlreadyExists, "email is taken")
		case !errors.Is(findErr, repository.ErrCredentialNotFound):
			return errors.Wrap(findErr, "failed to check existing credential")
		}

		if createErr := repo.Create(ctx, record); createErr != nil {
			if errors.Is(createErr, repository.ErrCredentialAlreadyExists) {
				return errors.Wrap(domainerrors.ErrUserAlreadyExists, "email is taken")
			}

			return errors.Wrap(createErr, "failed to create credential")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Provisioning failed", slog.String("email", email), slog.Any("error", err))

		return nil, errors.Wrap(err, "provision credential")
	}

	srv.log(ctx).Info("Credential provisioned", slog.Any("user_id", record.ID))

	return record.Identity(), nil
}
