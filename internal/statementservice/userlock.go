package statementservice

import (
	"sync"

	"github.com/google/uuid"
)

// userLocks serializes the balance-check-then-append sequence per user.
// Distinct users map to distinct mutexes and never contend.
type userLocks struct {
	locks sync.Map // uuid.UUID -> *sync.Mutex
}

func (ul *userLocks) lock(userID uuid.UUID) (unlock func()) {
	v, _ := ul.locks.LoadOrStore(userID, &sync.Mutex{})
	mu := v.(*sync.Mutex)
	mu.Lock()

	return mu.Unlock
}
