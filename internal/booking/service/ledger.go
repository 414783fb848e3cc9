package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/khlug/booking/internal/booking/domain"
	"github.com/khlug/booking/internal/booking/store"
	"github.com/khlug/booking/pkg/idx"
	"github.com/khlug/booking/pkg/slogx"
)

var (
	ErrBookNotFound = errors.New("book not found")
	ErrNoStock      = errors.New("no copies available")
	ErrNotBorrowed  = errors.New("no open loan for this user and book")
)

// LoanService is the authority over inventory counters and loan records.
// Both mutations take a pre-redeemed user id, never a raw token: token
// handling is AuthService's concern.
type LoanService struct {
	Store store.Store
}

// Borrow lends one copy of isbn to userID. The loan row insert and the
// counter decrement happen in one transaction, and the decrement itself is
// guarded, so two concurrent borrows of the last copy resolve to exactly one
// success and one ErrNoStock.
func (s *LoanService) Borrow(ctx context.Context, userID, isbn string) (domain.BookStock, error) {
	log := slogx.FromContext(ctx)

	var book domain.BookStock
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		if _, err := tx.Books().GetBookStock(ctx, isbn); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrBookNotFound
			}
			return err
		}

		ok, err := tx.Books().DecrementAvailable(ctx, isbn)
		if err != nil {
			return err
		}
		if !ok {
			return ErrNoStock
		}

		loan := domain.Loan{
			ID:         idx.New().String(),
			ISBN:       isbn,
			UserID:     userID,
			BorrowedAt: time.Now().UTC(),
		}
		if err := tx.Loans().CreateLoan(ctx, loan); err != nil {
			return fmt.Errorf("create loan: %w", err)
		}

		book, err = tx.Books().GetBookStock(ctx, isbn)
		return err
	})
	if err != nil {
		if errors.Is(err, ErrBookNotFound) || errors.Is(err, ErrNoStock) {
			return domain.BookStock{}, err
		}
		log.Error("borrow failed",
			slog.String("user_id", userID),
			slog.String("isbn", isbn),
			slog.Any("error", err),
		)
		return domain.BookStock{}, err
	}

	log.Info("book borrowed",
		slog.String("user_id", userID),
		slog.String("isbn", isbn),
		slog.Int("available_count", book.AvailableCount),
	)
	return book, nil
}

// Return closes one open loan by userID on isbn and releases the copy. When
// the user somehow holds several open loans on the same title, the earliest
// borrowed one is closed first. A user who never borrowed the title, or
// already returned it, gets ErrNotBorrowed and the inventory is untouched.
func (s *LoanService) Return(ctx context.Context, userID, isbn string) (domain.BookStock, error) {
	log := slogx.FromContext(ctx)

	var book domain.BookStock
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		if _, err := tx.Books().GetBookStock(ctx, isbn); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrBookNotFound
			}
			return err
		}

		err := tx.Loans().CloseOldestOpenLoan(ctx, isbn, userID, time.Now().UTC())
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrNotBorrowed
			}
			return err
		}

		ok, err := tx.Books().IncrementAvailable(ctx, isbn)
		if err != nil {
			return err
		}
		if !ok {
			// The counters say every copy is already shelved while an open
			// loan just got closed. Roll the whole thing back rather than
			// break the stock invariant.
			return fmt.Errorf("inventory counters out of sync for isbn %s", isbn)
		}

		book, err = tx.Books().GetBookStock(ctx, isbn)
		return err
	})
	if err != nil {
		if errors.Is(err, ErrBookNotFound) || errors.Is(err, ErrNotBorrowed) {
			return domain.BookStock{}, err
		}
		log.Error("return failed",
			slog.String("user_id", userID),
			slog.String("isbn", isbn),
			slog.Any("error", err),
		)
		return domain.BookStock{}, err
	}

	log.Info("book returned",
		slog.String("user_id", userID),
		slog.String("isbn", isbn),
		slog.Int("available_count", book.AvailableCount),
	)
	return book, nil
}

// UserLoans returns the full loan history for a user, newest first.
func (s *LoanService) UserLoans(ctx context.Context, userID string) ([]domain.Loan, error) {
	return s.Store.Loans().ListLoansByUser(ctx, userID)
}
