package http

import (
	"net/http"

	"github.com/khlug/booking/internal/booking/service"
	"github.com/khlug/booking/internal/booking/validation"
	"github.com/khlug/booking/pkg/bookingsdk"
	"github.com/khlug/booking/pkg/httpx"
)

type TokenMintHandler struct {
	AuthService *service.AuthService
	Validator   *validation.Validator
}

// ServeHTTP godoc
//
//	@Summary		Mint QR Token Endpoint
//	@Description	Mint a short-lived single-use token for a library member.
//	@Description	The kiosk renders the returned token as a QR code; it expires after expires_in seconds and can be redeemed at most once.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		bookingsdk.MintTokenRequest	true	"user_id"
//	@Success		200		{object}	bookingsdk.TokenResponse	"token, expires_in"
//	@Failure		400		{object}	bookingsdk.APIError			"error, message"
//	@Failure		404		{object}	bookingsdk.APIError			"error, message"
//	@Router			/v1/auth/token [post].
func (h *TokenMintHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req bookingsdk.MintTokenRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeBadRequest(w, "Invalid JSON body")
		return
	}
	if err := h.Validator.Validate(req); err != nil {
		writeBadRequest(w, err.Error())
		return
	}

	token, ttl, err := h.AuthService.Mint(ctx, req.UserID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, bookingsdk.TokenResponse{
		Token:     token,
		ExpiresIn: int(ttl.Seconds()),
	})
}
