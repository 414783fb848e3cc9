package http

import (
	"github.com/khlug/booking/internal/booking/domain"
	"github.com/khlug/booking/pkg/bookingsdk"
)

func toSDKBook(b domain.BookStock) bookingsdk.Book {
	return bookingsdk.Book{
		ISBN:           b.ISBN,
		Title:          b.Title,
		Author:         b.Author,
		Publisher:      b.Publisher,
		PublishedYear:  b.PublishedYear,
		Language:       b.Language,
		Pages:          b.Pages,
		CoverURL:       b.CoverURL,
		TotalCount:     b.TotalCount,
		AvailableCount: b.AvailableCount,
	}
}

func toSDKUser(u domain.User) bookingsdk.User {
	return bookingsdk.User{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      string(u.Role),
		CreatedAt: u.CreatedAt,
	}
}

func toSDKBorrowers(bs []domain.Borrower) []bookingsdk.Borrower {
	out := make([]bookingsdk.Borrower, 0, len(bs))
	for _, b := range bs {
		out = append(out, bookingsdk.Borrower{
			UserID:     b.UserID,
			UserName:   b.UserName,
			BorrowedAt: b.BorrowedAt,
		})
	}
	return out
}
