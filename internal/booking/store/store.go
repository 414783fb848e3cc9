package store

import (
	"context"
	"errors"
	"time"

	"github.com/khlug/booking/internal/booking/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite for now)
// implement this. It exposes sub-repositories to keep concerns tidy and
// testable.
type Store interface {
	Users() Users
	Books() Books
	Loans() Loans

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes fn within a transaction. If fn returns an error the
	// transaction is rolled back, otherwise it is committed. This is the
	// recommended way to run the borrow/return mutation pairs, which must
	// be atomic.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Users interface {
	// GetUserByID returns a user by its external id.
	GetUserByID(ctx context.Context, id string) (domain.User, error)

	// CreateUser inserts a new user. Returns ErrAlreadyExists on a
	// duplicate id.
	CreateUser(ctx context.Context, u domain.User) error

	// DeleteUser removes a user. Open-loan guards live in the service
	// layer, not here.
	DeleteUser(ctx context.Context, id string) error

	// ListUsers returns all users, newest first.
	ListUsers(ctx context.Context) ([]domain.User, error)
}

type Books interface {
	// GetBookStock returns the catalog entry joined with its inventory
	// counters.
	GetBookStock(ctx context.Context, isbn string) (domain.BookStock, error)

	// ListBookStock returns every catalog entry with counters, ordered by
	// title.
	ListBookStock(ctx context.Context) ([]domain.BookStock, error)

	// CreateBook inserts the catalog entry and its collection row with
	// available_count = total_count. Returns ErrAlreadyExists when the
	// ISBN is already registered.
	CreateBook(ctx context.Context, b domain.Book, totalCount int) error

	// UpdateBookInfo rewrites the descriptive metadata for an ISBN.
	UpdateBookInfo(ctx context.Context, b domain.Book) error

	// SetCounts overwrites both inventory counters for an ISBN. The
	// open-loan arithmetic is the service's job; this is a plain write.
	SetCounts(ctx context.Context, isbn string, total, available int) error

	// DecrementAvailable atomically decrements available_count if it is
	// positive. Returns false when no copy was available.
	DecrementAvailable(ctx context.Context, isbn string) (bool, error)

	// IncrementAvailable atomically increments available_count if it is
	// below total_count. Returns false when the counters were already at
	// the ceiling, which would indicate a double return.
	IncrementAvailable(ctx context.Context, isbn string) (bool, error)

	// DeleteBook removes the catalog entry, its collection row and its
	// loan history.
	DeleteBook(ctx context.Context, isbn string) error
}

type Loans interface {
	// CreateLoan inserts a new open loan row.
	CreateLoan(ctx context.Context, l domain.Loan) error

	// CloseOldestOpenLoan sets returned_at on the open loan with the
	// earliest borrowed_at for the (isbn, user) pair, tie-broken by loan
	// id. Returns ErrNotFound when the user holds no open loan for the
	// ISBN.
	CloseOldestOpenLoan(ctx context.Context, isbn, userID string, returnedAt time.Time) error

	// CountOpenLoansByISBN returns the number of copies of an ISBN
	// currently out.
	CountOpenLoansByISBN(ctx context.Context, isbn string) (int, error)

	// CountOpenLoansByUser returns the number of copies a user currently
	// holds across all titles.
	CountOpenLoansByUser(ctx context.Context, userID string) (int, error)

	// ListBorrowersByISBN returns the open loans on an ISBN joined with
	// the borrower's name.
	ListBorrowersByISBN(ctx context.Context, isbn string) ([]domain.Borrower, error)

	// ListLoansByUser returns a user's full loan history, newest first.
	ListLoansByUser(ctx context.Context, userID string) ([]domain.Loan, error)
}
