// Package statementservice manages business logic layer of statements.
package statementservice

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/go-fin/fin-ledger/internal/domain"
)

// Repo provides data access layer interface needed by statement service layer.
//
//go:generate mockgen -source service.go -destination service_mock.go -package statementservice
type Repo interface {
	Append(ctx context.Context, arg domain.CreateStatementParams) (domain.Statement, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Statement, error)
	Get(ctx context.Context, statementID, userID uuid.UUID) (domain.Statement, error)
}

// UserDirectory resolves user ids for statement operations.
type UserDirectory interface {
	Get(ctx context.Context, id uuid.UUID) (domain.User, error)
}

// Service facilitates statement service layer logic.
type Service struct {
	repo  Repo
	users UserDirectory
	locks userLocks
}

// New returns statement service struct to manage statement business logic.
func New(sr Repo, ud UserDirectory) *Service {
	return &Service{
		repo:  sr,
		users: ud,
	}
}

func (s *Service) validAmount(ctx context.Context, amount string) (decimal.Decimal, error) {
	l := zerolog.Ctx(ctx)

	amountDecimal, err := decimal.NewFromString(amount)
	if err != nil {
		l.Info().Err(err).Send()
		return amountDecimal, domain.ErrInvalidAmount
	}

	if amountDecimal.LessThanOrEqual(decimal.Zero) {
		l.Info().Str("amount", amount).Msg("non-positive amount")
		return amountDecimal, domain.ErrNonPositiveAmount
	}

	return amountDecimal, nil
}

// balance folds the statement sequence into the net balance starting from zero.
func balance(statements []domain.Statement) (decimal.Decimal, error) {
	total := decimal.Zero

	for _, st := range statements {
		amount, err := decimal.NewFromString(st.Amount)
		if err != nil {
			return total, err
		}

		switch st.Type {
		case domain.OperationDeposit:
			total = total.Add(amount)
		case domain.OperationWithdraw:
			total = total.Sub(amount)
		default:
			return total, domain.ErrInvalidOperationType
		}
	}

	return total, nil
}

// Create validates the request and appends a statement to the user's ledger.
//
// For withdrawals the current balance is recomputed from the full statement
// sequence and the statement is rejected with domain.ErrInsufficientFunds when
// the amount exceeds it. Withdrawing exactly the current balance is allowed.
// The check-then-append window is serialized per user; operations on distinct
// users proceed in parallel.
func (s *Service) Create(ctx context.Context, arg domain.CreateStatementParams) (domain.Statement, error) {
	l := zerolog.Ctx(ctx)

	amountDecimal, err := s.validAmount(ctx, arg.Amount)
	if err != nil {
		return domain.Statement{}, err
	}

	if !arg.Type.Valid() {
		l.Info().Str("type", string(arg.Type)).Msg("unknown operation type")
		return domain.Statement{}, domain.ErrInvalidOperationType
	}

	if _, err := s.users.Get(ctx, arg.UserID); err != nil {
		return domain.Statement{}, err
	}

	unlock := s.locks.lock(arg.UserID)
	defer unlock()

	if arg.Type == domain.OperationWithdraw {
		statements, err := s.repo.ListByUser(ctx, arg.UserID)
		if err != nil {
			return domain.Statement{}, err
		}

		currentBalance, err := balance(statements)
		if err != nil {
			l.Error().Err(err).Send()
			return domain.Statement{}, err
		}

		if currentBalance.LessThan(amountDecimal) {
			return domain.Statement{}, domain.ErrInsufficientFunds
		}
	}

	statement, err := s.repo.Append(ctx, arg)
	if err != nil {
		return domain.Statement{}, err
	}

	return statement, nil
}

// GetBalance returns the user's balance together with the full statement
// sequence it was derived from.
func (s *Service) GetBalance(ctx context.Context, userID uuid.UUID) (domain.Balance, error) {
	l := zerolog.Ctx(ctx)

	if _, err := s.users.Get(ctx, userID); err != nil {
		return domain.Balance{}, err
	}

	statements, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return domain.Balance{}, err
	}

	total, err := balance(statements)
	if err != nil {
		l.Error().Err(err).Send()
		return domain.Balance{}, err
	}

	return domain.Balance{
		Statement: statements,
		Balance:   total.String(),
	}, nil
}

// GetStatement returns the single statement with the given id if it is owned
// by the given user.
func (s *Service) GetStatement(ctx context.Context, userID, statementID uuid.UUID) (domain.Statement, error) {
	if _, err := s.users.Get(ctx, userID); err != nil {
		return domain.Statement{}, err
	}

	statement, err := s.repo.Get(ctx, statementID, userID)
	if err != nil {
		return domain.Statement{}, err
	}

	return statement, nil
}
