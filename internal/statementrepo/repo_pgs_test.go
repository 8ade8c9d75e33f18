package statementrepo

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/stretchr/testify/require"

	"github.com/go-fin/fin-ledger/internal/domain"
)

var statementColumns = []string{"id", "user_id", "description", "amount", "type", "created_at", "updated_at"}

func newMockRepo(t *testing.T) (*RepoPGS, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	t.Cleanup(func() {
		db.Close()
	})

	return NewRepoPGS(db), mock
}

func TestAppend(t *testing.T) {
	repo, mock := newMockRepo(t)

	arg := domain.CreateStatementParams{
		UserID:      uuid.New(),
		Description: "Salary",
		Amount:      "1000",
		Type:        domain.OperationDeposit,
	}

	statementID := uuid.New()
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta(appendQuery)).
		WithArgs(arg.UserID, arg.Description, arg.Amount, arg.Type).
		WillReturnRows(sqlmock.NewRows(statementColumns).
			AddRow(statementID.String(), arg.UserID.String(), arg.Description, arg.Amount, string(arg.Type), now, now))

	statement, err := repo.Append(context.Background(), arg)
	require.NoError(t, err)

	require.Equal(t, statementID, statement.ID)
	require.Equal(t, arg.UserID, statement.UserID)
	require.Equal(t, arg.Description, statement.Description)
	require.Equal(t, arg.Amount, statement.Amount)
	require.Equal(t, arg.Type, statement.Type)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAppendUnknownUser(t *testing.T) {
	repo, mock := newMockRepo(t)

	arg := domain.CreateStatementParams{
		UserID:      uuid.New(),
		Description: "Salary",
		Amount:      "1000",
		Type:        domain.OperationDeposit,
	}

	mock.ExpectQuery(regexp.QuoteMeta(appendQuery)).
		WithArgs(arg.UserID, arg.Description, arg.Amount, arg.Type).
		WillReturnError(&pq.Error{Constraint: "statements_user_id_fkey"})

	_, err := repo.Append(context.Background(), arg)
	require.ErrorIs(t, err, domain.ErrUserNotFound)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAppendNonPositiveAmount(t *testing.T) {
	repo, mock := newMockRepo(t)

	arg := domain.CreateStatementParams{
		UserID:      uuid.New(),
		Description: "Salary",
		Amount:      "-1",
		Type:        domain.OperationDeposit,
	}

	mock.ExpectQuery(regexp.QuoteMeta(appendQuery)).
		WithArgs(arg.UserID, arg.Description, arg.Amount, arg.Type).
		WillReturnError(&pq.Error{Constraint: "statements_amount_check"})

	_, err := repo.Append(context.Background(), arg)
	require.ErrorIs(t, err, domain.ErrNonPositiveAmount)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestListByUser(t *testing.T) {
	repo, mock := newMockRepo(t)

	userID := uuid.New()
	now := time.Now()

	rows := sqlmock.NewRows(statementColumns).
		AddRow(uuid.NewString(), userID.String(), "Salary", "1000", string(domain.OperationDeposit), now, now).
		AddRow(uuid.NewString(), userID.String(), "Shop", "100", string(domain.OperationWithdraw), now.Add(time.Second), now.Add(time.Second))

	mock.ExpectQuery(regexp.QuoteMeta(listByUserQuery)).
		WithArgs(userID).
		WillReturnRows(rows)

	statements, err := repo.ListByUser(context.Background(), userID)
	require.NoError(t, err)
	require.Len(t, statements, 2)
	require.Equal(t, "Salary", statements[0].Description)
	require.Equal(t, domain.OperationWithdraw, statements[1].Type)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestListByUserEmpty(t *testing.T) {
	repo, mock := newMockRepo(t)

	userID := uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta(listByUserQuery)).
		WithArgs(userID).
		WillReturnRows(sqlmock.NewRows(statementColumns))

	statements, err := repo.ListByUser(context.Background(), userID)
	require.NoError(t, err)
	require.Empty(t, statements)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGet(t *testing.T) {
	repo, mock := newMockRepo(t)

	statementID := uuid.New()
	userID := uuid.New()
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta(getQuery)).
		WithArgs(statementID, userID).
		WillReturnRows(sqlmock.NewRows(statementColumns).
			AddRow(statementID.String(), userID.String(), "Salary", "1000", string(domain.OperationDeposit), now, now))

	statement, err := repo.Get(context.Background(), statementID, userID)
	require.NoError(t, err)
	require.Equal(t, statementID, statement.ID)
	require.Equal(t, userID, statement.UserID)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetNotFound(t *testing.T) {
	repo, mock := newMockRepo(t)

	statementID := uuid.New()
	userID := uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta(getQuery)).
		WithArgs(statementID, userID).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.Get(context.Background(), statementID, userID)
	require.ErrorIs(t, err, domain.ErrStatementNotFound)

	require.NoError(t, mock.ExpectationsWereMet())
}
