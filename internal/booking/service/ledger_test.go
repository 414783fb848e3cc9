package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/khlug/booking/internal/booking/domain"
	"github.com/khlug/booking/internal/booking/store"
	"github.com/khlug/booking/internal/booking/store/drivers/sqlite"
	"github.com/khlug/booking/pkg/idx"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) store.Store {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	require.NoError(t, st.ApplyMigrations())
	return st
}

func seedUser(t *testing.T, st store.Store, id string, role domain.Role) domain.User {
	t.Helper()

	now := time.Now().UTC()
	user := domain.User{
		ID:        id,
		Name:      "Test " + id,
		Role:      role,
		CreatedAt: now,
		UpdatedAt: now,
	}
	require.NoError(t, st.Users().CreateUser(context.Background(), user))
	return user
}

func seedBook(t *testing.T, st store.Store, isbn string, total int) domain.Book {
	t.Helper()

	now := time.Now().UTC()
	book := domain.Book{
		ISBN:      isbn,
		Title:     "Title " + isbn,
		Author:    "Author",
		CreatedAt: now,
		UpdatedAt: now,
	}
	require.NoError(t, st.Books().CreateBook(context.Background(), book, total))
	return book
}

func TestBorrowAndReturnRoundTrip(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := &LoanService{Store: st}

	seedUser(t, st, "alice", domain.RoleMember)
	seedBook(t, st, "9780000000001", 2)

	stock, err := svc.Borrow(ctx, "alice", "9780000000001")
	require.NoError(t, err)
	require.Equal(t, 2, stock.TotalCount)
	require.Equal(t, 1, stock.AvailableCount)

	loans, err := svc.UserLoans(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, loans, 1)
	require.True(t, loans[0].Open())

	stock, err = svc.Return(ctx, "alice", "9780000000001")
	require.NoError(t, err)
	require.Equal(t, 2, stock.AvailableCount)

	loans, err = svc.UserLoans(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, loans, 1)
	require.False(t, loans[0].Open())
}

func TestBorrowUnknownBook(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := &LoanService{Store: st}

	seedUser(t, st, "alice", domain.RoleMember)

	_, err := svc.Borrow(ctx, "alice", "9780000000404")
	require.ErrorIs(t, err, ErrBookNotFound)
}

func TestBorrowExhaustedStock(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := &LoanService{Store: st}

	seedUser(t, st, "alice", domain.RoleMember)
	seedUser(t, st, "bob", domain.RoleMember)
	seedBook(t, st, "9780000000001", 1)

	_, err := svc.Borrow(ctx, "alice", "9780000000001")
	require.NoError(t, err)

	_, err = svc.Borrow(ctx, "bob", "9780000000001")
	require.ErrorIs(t, err, ErrNoStock)

	// A return frees the copy again.
	_, err = svc.Return(ctx, "alice", "9780000000001")
	require.NoError(t, err)

	stock, err := svc.Borrow(ctx, "bob", "9780000000001")
	require.NoError(t, err)
	require.Equal(t, 0, stock.AvailableCount)
}

func TestReturnWithoutOpenLoan(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := &LoanService{Store: st}

	seedUser(t, st, "alice", domain.RoleMember)
	seedUser(t, st, "bob", domain.RoleMember)
	seedBook(t, st, "9780000000001", 1)

	// Never borrowed.
	_, err := svc.Return(ctx, "alice", "9780000000001")
	require.ErrorIs(t, err, ErrNotBorrowed)

	// Someone else holds the copy; alice still cannot return it.
	_, err = svc.Borrow(ctx, "bob", "9780000000001")
	require.NoError(t, err)
	_, err = svc.Return(ctx, "alice", "9780000000001")
	require.ErrorIs(t, err, ErrNotBorrowed)

	// Double return.
	_, err = svc.Return(ctx, "bob", "9780000000001")
	require.NoError(t, err)
	_, err = svc.Return(ctx, "bob", "9780000000001")
	require.ErrorIs(t, err, ErrNotBorrowed)

	stock, err := st.Books().GetBookStock(ctx, "9780000000001")
	require.NoError(t, err)
	require.Equal(t, 1, stock.AvailableCount)
}

func TestReturnUnknownBook(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := &LoanService{Store: st}

	seedUser(t, st, "alice", domain.RoleMember)

	_, err := svc.Return(ctx, "alice", "9780000000404")
	require.ErrorIs(t, err, ErrBookNotFound)
}

func TestReturnClosesOldestLoanFirst(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := &LoanService{Store: st}

	seedUser(t, st, "alice", domain.RoleMember)
	seedBook(t, st, "9780000000001", 2)

	// Seed two open loans with known timestamps so the close order is
	// deterministic to assert on.
	older := domain.Loan{
		ID:         idx.New().String(),
		ISBN:       "9780000000001",
		UserID:     "alice",
		BorrowedAt: time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC),
	}
	newer := domain.Loan{
		ID:         idx.New().String(),
		ISBN:       "9780000000001",
		UserID:     "alice",
		BorrowedAt: time.Date(2026, 8, 2, 10, 0, 0, 0, time.UTC),
	}
	require.NoError(t, st.Loans().CreateLoan(ctx, older))
	require.NoError(t, st.Loans().CreateLoan(ctx, newer))
	require.NoError(t, st.Books().SetCounts(ctx, "9780000000001", 2, 0))

	_, err := svc.Return(ctx, "alice", "9780000000001")
	require.NoError(t, err)

	loans, err := svc.UserLoans(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, loans, 2)

	for _, l := range loans {
		switch l.ID {
		case older.ID:
			require.False(t, l.Open(), "oldest loan should have been closed")
		case newer.ID:
			require.True(t, l.Open(), "newer loan should still be open")
		default:
			t.Fatalf("unexpected loan id %s", l.ID)
		}
	}
}

func TestConcurrentBorrowOfLastCopy(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := &LoanService{Store: st}

	seedBook(t, st, "9780000000001", 1)

	const borrowers = 16
	for i := 0; i < borrowers; i++ {
		seedUser(t, st, string(rune('a'+i))+"-user", domain.RoleMember)
	}

	var wg sync.WaitGroup
	errs := make([]error, borrowers)
	for i := 0; i < borrowers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = svc.Borrow(ctx, string(rune('a'+i))+"-user", "9780000000001")
		}(i)
	}
	wg.Wait()

	var won, lost int
	for _, err := range errs {
		switch {
		case err == nil:
			won++
		default:
			require.ErrorIs(t, err, ErrNoStock)
			lost++
		}
	}
	require.Equal(t, 1, won, "exactly one borrower should get the last copy")
	require.Equal(t, borrowers-1, lost)

	stock, err := st.Books().GetBookStock(ctx, "9780000000001")
	require.NoError(t, err)
	require.Equal(t, 0, stock.AvailableCount)
}
