package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/khlug/booking/internal/booking/domain"
	"github.com/khlug/booking/internal/booking/qr"
	"github.com/khlug/booking/internal/booking/store"
	"github.com/khlug/booking/pkg/slogx"
)

var (
	ErrUserNotFound = errors.New("user not found")
	ErrInvalidToken = errors.New("invalid or expired token")
	ErrNotManager   = errors.New("user is not a manager")
)

// AuthService mints and redeems the short-lived QR tokens that stand in for
// a session at the kiosk.
type AuthService struct {
	Tokens *qr.Store
	Store  store.Store
}

// Mint issues a fresh single-use token for userID. The user must exist:
// tokens for unknown ids would only ever fail later at redeem time, with a
// far less useful error.
func (s *AuthService) Mint(ctx context.Context, userID string) (string, time.Duration, error) {
	log := slogx.FromContext(ctx)

	if _, err := s.Store.Users().GetUserByID(ctx, userID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return "", 0, ErrUserNotFound
		}
		return "", 0, err
	}

	token, ttl, err := s.Tokens.Mint(userID)
	if err != nil {
		log.Error("token mint failed", slog.String("user_id", userID), slog.Any("error", err))
		return "", 0, err
	}

	log.Info("token minted",
		slog.String("user_id", userID),
		slog.Duration("ttl", ttl),
	)
	return token, ttl, nil
}

// Redeem consumes a token and returns the user id it was minted for.
// Expired, already-used and never-minted tokens are indistinguishable.
func (s *AuthService) Redeem(ctx context.Context, token string) (string, error) {
	userID, err := s.Tokens.Redeem(token)
	if err != nil {
		if errors.Is(err, qr.ErrNotFound) {
			return "", ErrInvalidToken
		}
		return "", err
	}
	return userID, nil
}

// RedeemManager consumes a token and asserts that its holder is a manager.
// The token is spent even when the role check fails: a rejected redemption
// must not leave a replayable credential behind.
func (s *AuthService) RedeemManager(ctx context.Context, token string) (domain.User, error) {
	log := slogx.FromContext(ctx)

	userID, err := s.Redeem(ctx, token)
	if err != nil {
		return domain.User{}, err
	}

	user, err := s.Store.Users().GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.User{}, ErrUserNotFound
		}
		return domain.User{}, err
	}

	if user.Role != domain.RoleManager {
		log.Warn("manager access denied", slog.String("user_id", userID))
		return domain.User{}, ErrNotManager
	}
	return user, nil
}
