package domain

import "time"

// Loan records one borrow event. ReturnedAt is nil while the copy is still
// out; a loan with ReturnedAt set is closed and only kept as history.
type Loan struct {
	ID         string // ULID
	ISBN       string
	UserID     string
	BorrowedAt time.Time
	ReturnedAt *time.Time
}

// Open reports whether the loan has not been returned yet.
func (l Loan) Open() bool { return l.ReturnedAt == nil }

// Borrower is the public view of an open loan on a title.
type Borrower struct {
	UserID     string
	UserName   string
	BorrowedAt time.Time
}
