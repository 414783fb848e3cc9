package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/khlug/booking/internal/booking/domain"
	"github.com/khlug/booking/internal/booking/store"
	"github.com/khlug/booking/pkg/slogx"
)

var (
	ErrDuplicateUser = errors.New("user already exists")
	ErrInvalidRole   = errors.New("invalid role")
	ErrSelfDelete    = errors.New("managers cannot delete themselves")
	ErrUserHasLoans  = errors.New("user has open loans")
)

// UserService manages member accounts. Every mutation here sits behind a
// manager-gated endpoint.
type UserService struct {
	Store store.Store
}

// Create registers a new account. The caller picks the id (it doubles as the
// kiosk login), so collisions surface as ErrDuplicateUser.
func (s *UserService) Create(ctx context.Context, id, name, email string, role domain.Role) (domain.User, error) {
	log := slogx.FromContext(ctx)

	if !role.Valid() {
		return domain.User{}, ErrInvalidRole
	}

	now := time.Now().UTC()
	user := domain.User{
		ID:        id,
		Name:      name,
		Email:     email,
		Role:      role,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.Store.Users().CreateUser(ctx, user); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.User{}, ErrDuplicateUser
		}
		return domain.User{}, err
	}

	log.Info("user created",
		slog.String("user_id", id),
		slog.String("role", string(role)),
	)
	return user, nil
}

// Delete removes an account. Two guards apply: the acting manager cannot
// delete their own account, and accounts with copies still out are kept so
// the open loans remain attributable.
func (s *UserService) Delete(ctx context.Context, actorID, userID string) error {
	log := slogx.FromContext(ctx)

	if actorID == userID {
		return ErrSelfDelete
	}

	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		if _, err := tx.Users().GetUserByID(ctx, userID); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrUserNotFound
			}
			return err
		}

		open, err := tx.Loans().CountOpenLoansByUser(ctx, userID)
		if err != nil {
			return err
		}
		if open > 0 {
			return ErrUserHasLoans
		}
		return tx.Users().DeleteUser(ctx, userID)
	})
	if err != nil {
		return err
	}

	log.Info("user deleted", slog.String("user_id", userID))
	return nil
}

// Get returns one account by id.
func (s *UserService) Get(ctx context.Context, userID string) (domain.User, error) {
	user, err := s.Store.Users().GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.User{}, ErrUserNotFound
		}
		return domain.User{}, err
	}
	return user, nil
}

// List returns every account.
func (s *UserService) List(ctx context.Context) ([]domain.User, error) {
	return s.Store.Users().ListUsers(ctx)
}
