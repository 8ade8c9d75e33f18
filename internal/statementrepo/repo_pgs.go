// Package statementrepo manages repository layer of statements.
package statementrepo

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/rs/zerolog"

	"github.com/go-fin/fin-ledger/internal/domain"
	"github.com/go-fin/fin-ledger/pkg/dbpkg"
	"github.com/go-fin/fin-ledger/pkg/errorspkg"
)

// RepoPGS facilitates statement repository layer logic.
type RepoPGS struct {
	db dbpkg.SQLInterface
}

// NewRepoPGS returns statement RepoPGS.
func NewRepoPGS(db dbpkg.SQLInterface) *RepoPGS {
	return &RepoPGS{
		db: db,
	}
}

const appendQuery = `
INSERT INTO
    statements (user_id, description, amount, type)
VALUES
    ($1, $2, $3, $4)
RETURNING id, user_id, description, amount, type, created_at, updated_at
`

// Append inserts the statement into the ledger and then returns it with
// the assigned id and timestamps. Statements are never updated or deleted.
func (r *RepoPGS) Append(ctx context.Context, arg domain.CreateStatementParams) (domain.Statement, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, appendQuery,
		arg.UserID,
		arg.Description,
		arg.Amount,
		arg.Type,
	)

	var s domain.Statement

	err := row.Scan(
		&s.ID,
		&s.UserID,
		&s.Description,
		&s.Amount,
		&s.Type,
		&s.CreatedAt,
		&s.UpdatedAt,
	)

	if err != nil {
		l.Error().Err(err).Send()

		if pqErr, ok := err.(*pq.Error); ok {
			switch pqErr.Constraint {
			case "statements_user_id_fkey":
				return s, domain.ErrUserNotFound
			case "statements_amount_check":
				return s, domain.ErrNonPositiveAmount
			case "statements_type_check":
				return s, domain.ErrInvalidOperationType
			}
		}

		return s, errorspkg.ErrInternal
	}

	return s, nil
}

const listByUserQuery = `
SELECT
	id, user_id, description, amount, type, created_at, updated_at
FROM statements
WHERE user_id = $1
ORDER BY created_at, id
`

// ListByUser returns all statements of the given user in insertion order.
func (r *RepoPGS) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Statement, error) {
	l := zerolog.Ctx(ctx)

	rows, err := r.db.QueryContext(ctx, listByUserQuery, userID)
	if err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}
	defer rows.Close()

	items := []domain.Statement{}

	for rows.Next() {
		var s domain.Statement
		if err := rows.Scan(&s.ID, &s.UserID, &s.Description, &s.Amount, &s.Type, &s.CreatedAt, &s.UpdatedAt); err != nil {
			l.Error().Err(err).Send()
			return nil, errorspkg.ErrInternal
		}

		items = append(items, s)
	}

	if err := rows.Err(); err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}

	return items, nil
}

const getQuery = `
SELECT
	id, user_id, description, amount, type, created_at, updated_at
FROM statements
WHERE id = $1 AND user_id = $2
`

// Get returns the statement with the given id owned by the given user.
// A statement that belongs to another user is reported as not found.
func (r *RepoPGS) Get(ctx context.Context, statementID, userID uuid.UUID) (domain.Statement, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, getQuery, statementID, userID)

	var s domain.Statement

	err := row.Scan(
		&s.ID,
		&s.UserID,
		&s.Description,
		&s.Amount,
		&s.Type,
		&s.CreatedAt,
		&s.UpdatedAt,
	)

	if err != nil {
		l.Error().Err(err).Send()

		if err == sql.ErrNoRows {
			return s, domain.ErrStatementNotFound
		}

		return s, errorspkg.ErrInternal
	}

	return s, nil
}
