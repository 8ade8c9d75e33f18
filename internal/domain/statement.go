package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	// ErrInsufficientFunds indicates that the withdrawal amount exceeds the user's balance.
	ErrInsufficientFunds = errors.New("insufficient funds")
	// ErrStatementNotFound indicates that no statement owned by the user matches the given id.
	ErrStatementNotFound = errors.New("statement not found")
	// ErrInvalidAmount indicates that the amount is not a valid decimal number.
	ErrInvalidAmount = errors.New("invalid amount")
	// ErrNonPositiveAmount indicates that the amount is zero or negative.
	ErrNonPositiveAmount = errors.New("amount must be positive")
	// ErrInvalidOperationType indicates an unknown statement operation type.
	ErrInvalidOperationType = errors.New("invalid operation type")
)

// OperationType tells whether a statement increases or decreases the balance.
type OperationType string

// The sign of a statement is implied by its operation type; Amount is always positive.
const (
	OperationDeposit  OperationType = "deposit"
	OperationWithdraw OperationType = "withdraw"
)

// Valid reports whether the operation type is one of the known values.
func (o OperationType) Valid() bool {
	return o == OperationDeposit || o == OperationWithdraw
}

// Statement holds one immutable ledger record of a user.
type Statement struct {
	ID          uuid.UUID     `json:"id"`
	UserID      uuid.UUID     `json:"user_id"`
	Description string        `json:"description"`
	Amount      string        `json:"amount"` // positive decimal
	Type        OperationType `json:"type"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}

// CreateStatementParams is the input data to append a statement to the ledger.
type CreateStatementParams struct {
	UserID      uuid.UUID     `json:"user_id"`
	Description string        `json:"description"`
	Amount      string        `json:"amount"`
	Type        OperationType `json:"type"`
}

// Balance holds the derived net sum of a user's statements together with
// the full statement sequence it was computed from. It is never persisted.
type Balance struct {
	Statement []Statement `json:"statement"`
	Balance   string      `json:"balance"`
}
