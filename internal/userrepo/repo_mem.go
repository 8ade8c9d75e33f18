package userrepo

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/go-fin/fin-ledger/internal/domain"
)

// RepoMem is an in-memory user directory with the same contract as RepoPGS.
type RepoMem struct {
	mu    sync.RWMutex
	users map[uuid.UUID]domain.User
}

// NewRepoMem returns an empty in-memory user directory.
func NewRepoMem() *RepoMem {
	return &RepoMem{
		users: make(map[uuid.UUID]domain.User),
	}
}

// Create creates the user and then returns it.
func (r *RepoMem) Create(ctx context.Context, arg domain.CreateUserParams) (domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if u.Email == arg.Email {
			return domain.User{}, domain.ErrEmailAlreadyExists
		}
	}

	now := time.Now().UTC()

	u := domain.User{
		ID:             uuid.New(),
		Name:           arg.Name,
		Email:          arg.Email,
		HashedPassword: arg.HashedPassword,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	r.users[u.ID] = u

	return u, nil
}

// Get returns the user with the given id.
func (r *RepoMem) Get(ctx context.Context, id uuid.UUID) (domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.users[id]
	if !ok {
		return domain.User{}, domain.ErrUserNotFound
	}

	return u, nil
}

// GetByEmail returns the user with the given email.
func (r *RepoMem) GetByEmail(ctx context.Context, email string) (domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}

	return domain.User{}, domain.ErrUserNotFound
}
