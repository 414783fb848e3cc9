package http

import (
	"net/http"

	"github.com/khlug/booking/internal/booking/service"
	"github.com/khlug/booking/internal/booking/validation"
	"github.com/khlug/booking/pkg/bookingsdk"
	"github.com/khlug/booking/pkg/httpx"
)

type ManageBooksHandler struct {
	AuthService *service.AuthService
	BookService *service.BookService
	Validator   *validation.Validator
}

// HandleUpdate godoc
//
//	@Summary		Edit Book Endpoint
//	@Description	Manager-gated edit of a title. Only fields present in the body are applied.
//	@Description	A total_count change is refused when it would fall below the number of copies currently out; otherwise available_count is recomputed as total_count minus open loans.
//	@Tags			Management
//	@Accept			json
//	@Produce		json
//	@Param			isbn	path		string							true	"Book ISBN"
//	@Param			request	body		bookingsdk.UpdateBookRequest	true	"qr_token plus fields to change"
//	@Success		200		{object}	bookingsdk.Book					"updated book with counters"
//	@Failure		400		{object}	bookingsdk.APIError				"error, message"
//	@Failure		401		{object}	bookingsdk.APIError				"error, message"
//	@Failure		403		{object}	bookingsdk.APIError				"error, message"
//	@Failure		404		{object}	bookingsdk.APIError				"error, message"
//	@Router			/v1/manage/books/{isbn} [patch].
func (h *ManageBooksHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	isbn := r.PathValue("isbn")

	var req bookingsdk.UpdateBookRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeBadRequest(w, "Invalid JSON body")
		return
	}
	if err := h.Validator.Validate(req); err != nil {
		writeBadRequest(w, err.Error())
		return
	}

	if _, err := h.AuthService.RedeemManager(ctx, req.QRToken); err != nil {
		writeServiceError(w, r, err)
		return
	}

	current, _, err := h.BookService.Get(ctx, isbn)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	// Overlay the fields the manager actually sent.
	book := current.Book
	if req.Title != nil {
		book.Title = *req.Title
	}
	if req.Author != nil {
		book.Author = *req.Author
	}
	if req.Publisher != nil {
		book.Publisher = *req.Publisher
	}
	if req.PublishedYear != nil {
		book.PublishedYear = *req.PublishedYear
	}
	if req.Language != nil {
		book.Language = *req.Language
	}
	if req.Pages != nil {
		book.Pages = *req.Pages
	}
	if req.CoverURL != nil {
		book.CoverURL = *req.CoverURL
	}
	if book.Title == "" {
		writeBadRequest(w, "title must not be empty")
		return
	}

	stock, err := h.BookService.Update(ctx, book, req.TotalCount)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toSDKBook(stock))
}

// HandleDelete godoc
//
//	@Summary		Delete Book Endpoint
//	@Description	Manager-gated removal of a title, its counters and its loan history.
//	@Description	Refused while any copy is still out.
//	@Tags			Management
//	@Accept			json
//	@Produce		json
//	@Param			isbn	path		string					true	"Book ISBN"
//	@Param			request	body		bookingsdk.TokenRequest	true	"qr_token"
//	@Success		200		{object}	map[string]bool			"success"
//	@Failure		401		{object}	bookingsdk.APIError		"error, message"
//	@Failure		403		{object}	bookingsdk.APIError		"error, message"
//	@Failure		404		{object}	bookingsdk.APIError		"error, message"
//	@Failure		409		{object}	bookingsdk.APIError		"error, message"
//	@Router			/v1/manage/books/{isbn} [delete].
func (h *ManageBooksHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	isbn := r.PathValue("isbn")

	var req bookingsdk.TokenRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeBadRequest(w, "Invalid JSON body")
		return
	}
	if err := h.Validator.Validate(req); err != nil {
		writeBadRequest(w, err.Error())
		return
	}

	if _, err := h.AuthService.RedeemManager(ctx, req.QRToken); err != nil {
		writeServiceError(w, r, err)
		return
	}

	if err := h.BookService.Delete(ctx, isbn); err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, map[string]bool{"success": true})
}
