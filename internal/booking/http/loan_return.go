package http

import (
	"net/http"

	"github.com/khlug/booking/internal/booking/service"
	"github.com/khlug/booking/internal/booking/validation"
	"github.com/khlug/booking/pkg/bookingsdk"
	"github.com/khlug/booking/pkg/httpx"
)

type ReturnHandler struct {
	AuthService *service.AuthService
	LoanService *service.LoanService
	Validator   *validation.Validator
}

// ServeHTTP godoc
//
//	@Summary		Return Book Endpoint
//	@Description	Redeem a QR token and close the holder's oldest open loan on the book, releasing the copy.
//	@Tags			Lending
//	@Accept			json
//	@Produce		json
//	@Param			isbn	path		string						true	"Book ISBN"
//	@Param			request	body		bookingsdk.TokenRequest		true	"qr_token"
//	@Success		200		{object}	bookingsdk.LoanResponse		"success, book"
//	@Failure		400		{object}	bookingsdk.APIError			"error, message (bad_request or not_borrowed)"
//	@Failure		401		{object}	bookingsdk.APIError			"error, message"
//	@Failure		404		{object}	bookingsdk.APIError			"error, message"
//	@Router			/v1/return/{isbn} [post].
func (h *ReturnHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
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

	userID, err := h.AuthService.Redeem(ctx, req.QRToken)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	book, err := h.LoanService.Return(ctx, userID, isbn)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, bookingsdk.LoanResponse{
		Success: true,
		Book:    toSDKBook(book),
	})
}
