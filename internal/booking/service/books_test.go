package service

import (
	"context"
	"testing"

	"github.com/khlug/booking/internal/booking/domain"
	"github.com/stretchr/testify/require"
)

func TestRegisterBook(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := &BookService{Store: st}

	book := domain.Book{ISBN: "9780000000001", Title: "Clean Shelves", Author: "A. Librarian"}

	stock, err := svc.Register(ctx, book, 3)
	require.NoError(t, err)
	require.Equal(t, 3, stock.TotalCount)
	require.Equal(t, 3, stock.AvailableCount)

	_, err = svc.Register(ctx, book, 1)
	require.ErrorIs(t, err, ErrDuplicateBook)

	_, err = svc.Register(ctx, domain.Book{ISBN: "9780000000002", Title: "X"}, -1)
	require.ErrorIs(t, err, ErrInvalidTotalCount)
}

func TestGetBookWithBorrowers(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := &BookService{Store: st}
	loans := &LoanService{Store: st}

	_, _, err := svc.Get(ctx, "9780000000404")
	require.ErrorIs(t, err, ErrBookNotFound)

	seedUser(t, st, "alice", domain.RoleMember)
	seedBook(t, st, "9780000000001", 2)

	_, err = loans.Borrow(ctx, "alice", "9780000000001")
	require.NoError(t, err)

	book, borrowers, err := svc.Get(ctx, "9780000000001")
	require.NoError(t, err)
	require.Equal(t, 1, book.AvailableCount)
	require.Len(t, borrowers, 1)
	require.Equal(t, "alice", borrowers[0].UserID)
	require.Equal(t, "Test alice", borrowers[0].UserName)
}

func TestUpdateBookResizesInventory(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := &BookService{Store: st}
	loans := &LoanService{Store: st}

	seedUser(t, st, "alice", domain.RoleMember)
	seedUser(t, st, "bob", domain.RoleMember)
	book := seedBook(t, st, "9780000000001", 3)

	_, err := loans.Borrow(ctx, "alice", "9780000000001")
	require.NoError(t, err)
	_, err = loans.Borrow(ctx, "bob", "9780000000001")
	require.NoError(t, err)

	t.Run("cannot shrink below open loans", func(t *testing.T) {
		one := 1
		_, err := svc.Update(ctx, book, &one)
		require.ErrorIs(t, err, ErrTotalBelowOpen)

		// The metadata write inside the failed resize must have rolled
		// back along with it.
		stock, _, err := svc.Get(ctx, "9780000000001")
		require.NoError(t, err)
		require.Equal(t, 3, stock.TotalCount)
		require.Equal(t, 1, stock.AvailableCount)
	})

	t.Run("resize recomputes available from open loans", func(t *testing.T) {
		book.Title = "Second Edition"
		five := 5
		stock, err := svc.Update(ctx, book, &five)
		require.NoError(t, err)
		require.Equal(t, "Second Edition", stock.Title)
		require.Equal(t, 5, stock.TotalCount)
		require.Equal(t, 3, stock.AvailableCount)
	})

	t.Run("metadata-only update keeps counters", func(t *testing.T) {
		book.Title = "Third Edition"
		stock, err := svc.Update(ctx, book, nil)
		require.NoError(t, err)
		require.Equal(t, "Third Edition", stock.Title)
		require.Equal(t, 5, stock.TotalCount)
		require.Equal(t, 3, stock.AvailableCount)
	})

	t.Run("unknown isbn", func(t *testing.T) {
		_, err := svc.Update(ctx, domain.Book{ISBN: "9780000000404"}, nil)
		require.ErrorIs(t, err, ErrBookNotFound)
	})
}

func TestDeleteBook(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := &BookService{Store: st}
	loans := &LoanService{Store: st}

	seedUser(t, st, "alice", domain.RoleMember)
	seedBook(t, st, "9780000000001", 1)

	_, err := loans.Borrow(ctx, "alice", "9780000000001")
	require.NoError(t, err)

	err = svc.Delete(ctx, "9780000000001")
	require.ErrorIs(t, err, ErrBookOnLoan)

	_, err = loans.Return(ctx, "alice", "9780000000001")
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, "9780000000001"))

	_, _, err = svc.Get(ctx, "9780000000001")
	require.ErrorIs(t, err, ErrBookNotFound)

	err = svc.Delete(ctx, "9780000000001")
	require.ErrorIs(t, err, ErrBookNotFound)
}

func TestListBooks(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := &BookService{Store: st}

	books, err := svc.List(ctx)
	require.NoError(t, err)
	require.Empty(t, books)

	seedBook(t, st, "9780000000001", 1)
	seedBook(t, st, "9780000000002", 2)

	books, err = svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, books, 2)
}
