package statementrepo

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/go-fin/fin-ledger/internal/domain"
)

// RepoMem is an in-memory statement store with the same contract as RepoPGS.
type RepoMem struct {
	mu         sync.RWMutex
	statements map[uuid.UUID][]domain.Statement
}

// NewRepoMem returns an empty in-memory statement store.
func NewRepoMem() *RepoMem {
	return &RepoMem{
		statements: make(map[uuid.UUID][]domain.Statement),
	}
}

// Append stores the statement and returns it with the assigned id and timestamps.
func (r *RepoMem) Append(ctx context.Context, arg domain.CreateStatementParams) (domain.Statement, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now().UTC()

	s := domain.Statement{
		ID:          uuid.New(),
		UserID:      arg.UserID,
		Description: arg.Description,
		Amount:      arg.Amount,
		Type:        arg.Type,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	r.statements[arg.UserID] = append(r.statements[arg.UserID], s)

	return s, nil
}

// ListByUser returns all statements of the given user in insertion order.
func (r *RepoMem) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Statement, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	items := make([]domain.Statement, len(r.statements[userID]))
	copy(items, r.statements[userID])

	return items, nil
}

// Get returns the statement with the given id owned by the given user.
func (r *RepoMem) Get(ctx context.Context, statementID, userID uuid.UUID) (domain.Statement, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, s := range r.statements[userID] {
		if s.ID == statementID {
			return s, nil
		}
	}

	return domain.Statement{}, domain.ErrStatementNotFound
}
