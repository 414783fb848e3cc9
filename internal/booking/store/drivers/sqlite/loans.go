package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/khlug/booking/internal/booking/domain"
)

type loansRepo struct {
	q queryer
}

func (r *loansRepo) CreateLoan(ctx context.Context, l domain.Loan) error {
	_, err := r.q.ExecContext(ctx,
		`INSERT INTO loans (id, isbn, user_id, borrowed_at, returned_at)
		 VALUES (?, ?, ?, ?, NULL)`,
		l.ID, l.ISBN, l.UserID, formatTime(l.BorrowedAt))
	if err != nil {
		return mapConstraint(err)
	}
	return nil
}

// CloseOldestOpenLoan closes exactly one open loan for the (isbn, user)
// pair: the one with the earliest borrowed_at, tie-broken by id. Loan ids
// are ULIDs, so the id order follows creation order.
func (r *loansRepo) CloseOldestOpenLoan(ctx context.Context, isbn, userID string, returnedAt time.Time) error {
	res, err := r.q.ExecContext(ctx,
		`UPDATE loans SET returned_at = ?
		 WHERE id = (
		     SELECT id FROM loans
		     WHERE isbn = ? AND user_id = ? AND returned_at IS NULL
		     ORDER BY borrowed_at, id
		     LIMIT 1
		 )`,
		formatTime(returnedAt), isbn, userID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return mapNotFound(sql.ErrNoRows)
	}
	return nil
}

func (r *loansRepo) CountOpenLoansByISBN(ctx context.Context, isbn string) (int, error) {
	var n int
	err := r.q.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM loans WHERE isbn = ? AND returned_at IS NULL`, isbn).Scan(&n)
	return n, err
}

func (r *loansRepo) CountOpenLoansByUser(ctx context.Context, userID string) (int, error) {
	var n int
	err := r.q.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM loans WHERE user_id = ? AND returned_at IS NULL`, userID).Scan(&n)
	return n, err
}

func (r *loansRepo) ListBorrowersByISBN(ctx context.Context, isbn string) ([]domain.Borrower, error) {
	rows, err := r.q.QueryContext(ctx,
		`SELECT l.user_id, u.name, l.borrowed_at
		 FROM loans l
		 JOIN users u ON l.user_id = u.id
		 WHERE l.isbn = ? AND l.returned_at IS NULL
		 ORDER BY l.borrowed_at, l.id`, isbn)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var borrowers []domain.Borrower
	for rows.Next() {
		var (
			b          domain.Borrower
			borrowedAt string
		)
		if err := rows.Scan(&b.UserID, &b.UserName, &borrowedAt); err != nil {
			return nil, err
		}
		if b.BorrowedAt, err = parseTime(borrowedAt); err != nil {
			return nil, err
		}
		borrowers = append(borrowers, b)
	}
	return borrowers, rows.Err()
}

func (r *loansRepo) ListLoansByUser(ctx context.Context, userID string) ([]domain.Loan, error) {
	rows, err := r.q.QueryContext(ctx,
		`SELECT id, isbn, user_id, borrowed_at, returned_at
		 FROM loans
		 WHERE user_id = ?
		 ORDER BY borrowed_at DESC, id DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var loans []domain.Loan
	for rows.Next() {
		var (
			l          domain.Loan
			borrowedAt string
			returnedAt sql.NullString
		)
		if err := rows.Scan(&l.ID, &l.ISBN, &l.UserID, &borrowedAt, &returnedAt); err != nil {
			return nil, err
		}
		if l.BorrowedAt, err = parseTime(borrowedAt); err != nil {
			return nil, err
		}
		if l.ReturnedAt, err = parseNullTime(returnedAt); err != nil {
			return nil, err
		}
		loans = append(loans, l)
	}
	return loans, rows.Err()
}
