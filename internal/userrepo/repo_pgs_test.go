package userrepo

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
	"github.com/go-fin/fin-ledger/pkg/randompkg"
)

var userColumns = []string{"id", "name", "email", "hashed_password", "created_at", "updated_at"}

func newMockRepo(t *testing.T) (*RepoPGS, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	t.Cleanup(func() {
		db.Close()
	})

	return NewRepoPGS(db), mock
}

func TestCreate(t *testing.T) {
	repo, mock := newMockRepo(t)

	arg := domain.CreateUserParams{
		Name:           randompkg.Name(),
		Email:          randompkg.Email(),
		HashedPassword: randompkg.String(32),
	}

	userID := uuid.New()
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta(createQuery)).
		WithArgs(arg.Name, arg.Email, arg.HashedPassword).
		WillReturnRows(sqlmock.NewRows(userColumns).
			AddRow(userID.String(), arg.Name, arg.Email, arg.HashedPassword, now, now))

	user, err := repo.Create(context.Background(), arg)
	require.NoError(t, err)

	require.Equal(t, userID, user.ID)
	require.Equal(t, arg.Name, user.Name)
	require.Equal(t, arg.Email, user.Email)
	require.Equal(t, arg.HashedPassword, user.HashedPassword)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateDuplicateEmail(t *testing.T) {
	repo, mock := newMockRepo(t)

	arg := domain.CreateUserParams{
		Name:           randompkg.Name(),
		Email:          randompkg.Email(),
		HashedPassword: randompkg.String(32),
	}

	mock.ExpectQuery(regexp.QuoteMeta(createQuery)).
		WithArgs(arg.Name, arg.Email, arg.HashedPassword).
		WillReturnError(&pq.Error{Code: "23505", Constraint: "users_email_key"})

	_, err := repo.Create(context.Background(), arg)
	require.ErrorIs(t, err, domain.ErrEmailAlreadyExists)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetNotFound(t *testing.T) {
	repo, mock := newMockRepo(t)

	userID := uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta(getQuery)).
		WithArgs(userID).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.Get(context.Background(), userID)
	require.ErrorIs(t, err, domain.ErrUserNotFound)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByEmail(t *testing.T) {
	repo, mock := newMockRepo(t)

	userID := uuid.New()
	email := randompkg.Email()
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta(getByEmailQuery)).
		WithArgs(email).
		WillReturnRows(sqlmock.NewRows(userColumns).
			AddRow(userID.String(), "user", email, randompkg.String(32), now, now))

	user, err := repo.GetByEmail(context.Background(), email)
	require.NoError(t, err)
	require.Equal(t, userID, user.ID)
	require.Equal(t, email, user.Email)

	require.NoError(t, mock.ExpectationsWereMet())
}
