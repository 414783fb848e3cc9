package http

import (
	"net/http"

	"github.com/khlug/booking/internal/booking/domain"
	"github.com/khlug/booking/internal/booking/service"
	"github.com/khlug/booking/internal/booking/validation"
	"github.com/khlug/booking/pkg/bookingsdk"
	"github.com/khlug/booking/pkg/httpx"
)

type BooksHandler struct {
	BookService *service.BookService
	Validator   *validation.Validator
}

// HandleList godoc
//
//	@Summary		List Books Endpoint
//	@Description	List the whole catalogue with total and available copy counts.
//	@Tags			Books
//	@Produce		json
//	@Success		200	{array}	bookingsdk.Book	"isbn, title, counters"
//	@Router			/v1/books [get].
func (h *BooksHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	books, err := h.BookService.List(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	out := make([]bookingsdk.Book, 0, len(books))
	for _, b := range books {
		out = append(out, toSDKBook(b))
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

// HandleGet godoc
//
//	@Summary		Get Book Endpoint
//	@Description	Fetch one title with its counters and the members currently holding copies.
//	@Tags			Books
//	@Produce		json
//	@Param			isbn	path		string							true	"Book ISBN"
//	@Success		200		{object}	bookingsdk.BookDetailResponse	"book, borrowers"
//	@Failure		404		{object}	bookingsdk.APIError				"error, message"
//	@Router			/v1/books/{isbn} [get].
func (h *BooksHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	book, borrowers, err := h.BookService.Get(r.Context(), r.PathValue("isbn"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, bookingsdk.BookDetailResponse{
		Book:      toSDKBook(book),
		Borrowers: toSDKBorrowers(borrowers),
	})
}

// HandleAdd godoc
//
//	@Summary		Add Book Endpoint
//	@Description	Register a new title under the given ISBN with total_count copies (default 1), all available.
//	@Tags			Books
//	@Accept			json
//	@Produce		json
//	@Param			isbn	path		string						true	"Book ISBN"
//	@Param			request	body		bookingsdk.AddBookRequest	true	"title and optional metadata"
//	@Success		201		{object}	bookingsdk.Book				"registered book with counters"
//	@Failure		400		{object}	bookingsdk.APIError			"error, message"
//	@Failure		409		{object}	bookingsdk.APIError			"error, message"
//	@Router			/v1/books/{isbn} [put].
func (h *BooksHandler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	isbn := r.PathValue("isbn")

	var req bookingsdk.AddBookRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeBadRequest(w, "Invalid JSON body")
		return
	}
	if err := h.Validator.Validate(req); err != nil {
		writeBadRequest(w, err.Error())
		return
	}

	total := 1
	if req.TotalCount != nil {
		total = *req.TotalCount
	}

	book := domain.Book{
		ISBN:          isbn,
		Title:         req.Title,
		Author:        req.Author,
		Publisher:     req.Publisher,
		PublishedYear: req.PublishedYear,
		Language:      req.Language,
		Pages:         req.Pages,
		CoverURL:      req.CoverURL,
	}
	stock, err := h.BookService.Register(ctx, book, total)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, toSDKBook(stock))
}
