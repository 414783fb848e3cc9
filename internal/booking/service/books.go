package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/khlug/booking/internal/booking/domain"
	"github.com/khlug/booking/internal/booking/store"
	"github.com/khlug/booking/pkg/slogx"
)

var (
	ErrDuplicateBook     = errors.New("book already registered")
	ErrBookOnLoan        = errors.New("book has open loans")
	ErrTotalBelowOpen    = errors.New("total count below open loan count")
	ErrInvalidTotalCount = errors.New("total count must not be negative")
)

// BookService manages the catalogue and its inventory counters.
type BookService struct {
	Store store.Store
}

// Register adds a new title with totalCount copies, all of them available.
func (s *BookService) Register(ctx context.Context, book domain.Book, totalCount int) (domain.BookStock, error) {
	log := slogx.FromContext(ctx)

	if totalCount < 0 {
		return domain.BookStock{}, ErrInvalidTotalCount
	}

	if err := s.Store.Books().CreateBook(ctx, book, totalCount); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.BookStock{}, ErrDuplicateBook
		}
		return domain.BookStock{}, err
	}

	log.Info("book registered",
		slog.String("isbn", book.ISBN),
		slog.Int("total_count", totalCount),
	)
	return s.Store.Books().GetBookStock(ctx, book.ISBN)
}

// Get returns one title with its counters and current borrowers.
func (s *BookService) Get(ctx context.Context, isbn string) (domain.BookStock, []domain.Borrower, error) {
	book, err := s.Store.Books().GetBookStock(ctx, isbn)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.BookStock{}, nil, ErrBookNotFound
		}
		return domain.BookStock{}, nil, err
	}

	borrowers, err := s.Store.Loans().ListBorrowersByISBN(ctx, isbn)
	if err != nil {
		return domain.BookStock{}, nil, err
	}
	return book, borrowers, nil
}

// List returns the whole catalogue with counters.
func (s *BookService) List(ctx context.Context) ([]domain.BookStock, error) {
	return s.Store.Books().ListBookStock(ctx)
}

// Update rewrites a title's metadata and, when newTotal is non-nil, resizes
// its inventory. Resizing never strands a loan: newTotal must cover every
// copy currently out, and the available count is recomputed as
// newTotal minus open loans.
func (s *BookService) Update(ctx context.Context, book domain.Book, newTotal *int) (domain.BookStock, error) {
	log := slogx.FromContext(ctx)

	var updated domain.BookStock
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		if _, err := tx.Books().GetBookStock(ctx, book.ISBN); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrBookNotFound
			}
			return err
		}

		if err := tx.Books().UpdateBookInfo(ctx, book); err != nil {
			return err
		}

		if newTotal != nil {
			if *newTotal < 0 {
				return ErrInvalidTotalCount
			}
			open, err := tx.Loans().CountOpenLoansByISBN(ctx, book.ISBN)
			if err != nil {
				return err
			}
			if *newTotal < open {
				return ErrTotalBelowOpen
			}
			if err := tx.Books().SetCounts(ctx, book.ISBN, *newTotal, *newTotal-open); err != nil {
				return err
			}
		}

		var err error
		updated, err = tx.Books().GetBookStock(ctx, book.ISBN)
		return err
	})
	if err != nil {
		return domain.BookStock{}, err
	}

	log.Info("book updated", slog.String("isbn", book.ISBN))
	return updated, nil
}

// Delete removes a title outright. Titles with copies still out stay put:
// deleting them would orphan the open loans.
func (s *BookService) Delete(ctx context.Context, isbn string) error {
	log := slogx.FromContext(ctx)

	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		if _, err := tx.Books().GetBookStock(ctx, isbn); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrBookNotFound
			}
			return err
		}

		open, err := tx.Loans().CountOpenLoansByISBN(ctx, isbn)
		if err != nil {
			return err
		}
		if open > 0 {
			return ErrBookOnLoan
		}
		return tx.Books().DeleteBook(ctx, isbn)
	})
	if err != nil {
		return err
	}

	log.Info("book deleted", slog.String("isbn", isbn))
	return nil
}
