package http

import (
	"errors"
	"net/http"

	"github.com/khlug/booking/internal/booking/service"
	"github.com/khlug/booking/pkg/bookingsdk"
	"github.com/khlug/booking/pkg/httpx"
)

type UserBorrowsHandler struct {
	LoanService *service.LoanService
	BookService *service.BookService
	UserService *service.UserService
}

// ServeHTTP godoc
//
//	@Summary		User Loan History Endpoint
//	@Description	List a user's loans, newest first, open and closed alike.
//	@Tags			Lending
//	@Produce		json
//	@Param			user_id	path		string					true	"User id"
//	@Success		200		{array}		bookingsdk.LoanRecord	"isbn, title, borrowed_at, returned_at"
//	@Failure		404		{object}	bookingsdk.APIError		"error, message"
//	@Router			/v1/users/{user_id}/borrows [get].
func (h *UserBorrowsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := r.PathValue("user_id")

	if _, err := h.UserService.Get(ctx, userID); err != nil {
		writeServiceError(w, r, err)
		return
	}

	loans, err := h.LoanService.UserLoans(ctx, userID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	// Resolve titles once per distinct ISBN. Loans cascade away with their
	// book, so a miss here only happens in a race with a delete.
	titles := make(map[string]string)
	records := make([]bookingsdk.LoanRecord, 0, len(loans))
	for _, l := range loans {
		title, ok := titles[l.ISBN]
		if !ok {
			book, _, err := h.BookService.Get(ctx, l.ISBN)
			if err != nil && !errors.Is(err, service.ErrBookNotFound) {
				writeServiceError(w, r, err)
				return
			}
			title = book.Title
			titles[l.ISBN] = title
		}
		records = append(records, bookingsdk.LoanRecord{
			ISBN:       l.ISBN,
			Title:      title,
			BorrowedAt: l.BorrowedAt,
			ReturnedAt: l.ReturnedAt,
		})
	}

	httpx.WriteJSON(w, http.StatusOK, records)
}
