// Package userservice manages business logic layer of users.
package userservice

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/go-fin/fin-ledger/internal/domain"
	"github.com/go-fin/fin-ledger/pkg/errorspkg"
	"github.com/go-fin/fin-ledger/pkg/passpkg"
	"github.com/go-fin/fin-ledger/pkg/tokenpkg"
)

// Repo provides data access layer interface needed by user service layer.
//
//go:generate mockgen -source service.go -destination service_mock.go -package userservice
type Repo interface {
	Create(ctx context.Context, arg domain.CreateUserParams) (domain.User, error)
	Get(ctx context.Context, id uuid.UUID) (domain.User, error)
	GetByEmail(ctx context.Context, email string) (domain.User, error)
}

// Service facilitates user service layer logic.
type Service struct {
	repo          Repo
	tokenMaker    tokenpkg.Maker
	tokenDuration time.Duration
}

// New returns user service struct to manage user business logic.
func New(ur Repo, tm tokenpkg.Maker, tokenDuration time.Duration) *Service {
	return &Service{
		repo:          ur,
		tokenMaker:    tm,
		tokenDuration: tokenDuration,
	}
}

// NewUserWithoutPassword returns user with removed sensitive data.
func NewUserWithoutPassword(u domain.User) domain.UserWithoutPassword {
	return domain.UserWithoutPassword{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
	}
}

// Create creates and returns user.
func (s *Service) Create(ctx context.Context, name, email, password string) (domain.UserWithoutPassword, error) {
	l := zerolog.Ctx(ctx)

	var result domain.UserWithoutPassword

	hashedPassword, err := passpkg.Hash(password)
	if err != nil {
		l.Error().Err(err).Send()
		return result, errorspkg.ErrInternal
	}

	arg := domain.CreateUserParams{
		Name:           name,
		Email:          email,
		HashedPassword: hashedPassword,
	}

	gotUser, err := s.repo.Create(ctx, arg)
	if err != nil {
		return result, err
	}

	result = NewUserWithoutPassword(gotUser)

	return result, nil
}

// Login checks the credentials and issues an access token for the user.
func (s *Service) Login(ctx context.Context, email, password string) (string, *tokenpkg.Payload, domain.UserWithoutPassword, error) {
	l := zerolog.Ctx(ctx)

	var response domain.UserWithoutPassword

	gotUser, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return "", nil, response, err
	}

	if err := passpkg.Check(password, gotUser.HashedPassword); err != nil {
		l.Warn().Err(err).Send()
		return "", nil, response, domain.ErrWrongPassword
	}

	accessToken, payload, err := s.tokenMaker.CreateToken(gotUser.ID, s.tokenDuration)
	if err != nil {
		l.Error().Err(err).Send()
		return "", nil, response, errorspkg.ErrInternal
	}

	response = NewUserWithoutPassword(gotUser)

	return accessToken, payload, response, nil
}

// Get returns the user with the given id without sensitive data.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (domain.UserWithoutPassword, error) {
	gotUser, err := s.repo.Get(ctx, id)
	if err != nil {
		return domain.UserWithoutPassword{}, err
	}

	return NewUserWithoutPassword(gotUser), nil
}
