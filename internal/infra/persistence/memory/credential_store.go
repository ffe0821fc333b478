// Package memory is a process-local credential store for development and tests.
package memory

import (
	"context"
	"sync"
	"time"

	"authflow/internal/domain/entity"
	"authflow/internal/domain/repository"
	"authflow/internal/errors"

	"github.com/google/uuid"
)

// CredentialStore implements repository.CredentialRepository and
// repository.TransactionManager. Units of work run one at a time and are not
// rolled back on error.
type CredentialStore struct {
	mu      sync.RWMutex
	byEmail map[string]entity.UserCredential

	txMu sync.Mutex
	now  func() time.Time
}

// NewCredentialStore returns an empty store.
func NewCredentialStore() *CredentialStore {
	return &CredentialStore{
		byEmail: make(map[string]entity.UserCredential),
		now:     time.Now,
	}
}

func (s *CredentialStore) FindByEmail(ctx context.Context, email string) (*entity.UserCredential, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.WithStack(err)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	record, ok := s.byEmail[entity.NormalizeEmail(email)]
	if !ok {
		return nil, repository.ErrCredentialNotFound
	}

	return &record, nil
}

func (s *CredentialStore) Create(ctx context.Context, credential *entity.UserCredential) error {
	if err := ctx.Err(); err != nil {
		return errors.WithStack(err)
	}

	key := entity.NormalizeEmail(credential.Email)

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.byEmail[key]; exists {
		return repository.ErrCredentialAlreadyExists
	}

	if credential.ID == uuid.Nil {
		id, err := uuid.NewV7()
		if err != nil {
			return errors.Wrap(err, "generate credential id")
		}
		credential.ID = id
	}
	now := s.now().UTC()
	credential.Email = key
	credential.CreatedAt = now
	credential.UpdatedAt = now

	s.byEmail[key] = *credential

	return nil
}

// Len returns the number of stored records.
func (s *CredentialStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.byEmail)
}

func (s *CredentialStore) Execute(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
	s.txMu.Lock()
	defer s.txMu.Unlock()

	return fn(s)
}

func (s *CredentialStore) NewCredentialRepository() repository.CredentialRepository {
	return s
}
