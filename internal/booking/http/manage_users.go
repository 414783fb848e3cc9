package http

import (
	"net/http"

	"github.com/khlug/booking/internal/booking/domain"
	"github.com/khlug/booking/internal/booking/service"
	"github.com/khlug/booking/internal/booking/validation"
	"github.com/khlug/booking/pkg/bookingsdk"
	"github.com/khlug/booking/pkg/httpx"
)

type ManageUsersHandler struct {
	AuthService *service.AuthService
	UserService *service.UserService
	Validator   *validation.Validator
}

// HandleCreate godoc
//
//	@Summary		Create User Endpoint
//	@Description	Manager-gated registration of a new member or manager account.
//	@Tags			Management
//	@Accept			json
//	@Produce		json
//	@Param			request	body		bookingsdk.CreateUserRequest	true	"qr_token, id, name, email, role"
//	@Success		201		{object}	bookingsdk.User					"created account"
//	@Failure		400		{object}	bookingsdk.APIError				"error, message"
//	@Failure		401		{object}	bookingsdk.APIError				"error, message"
//	@Failure		403		{object}	bookingsdk.APIError				"error, message"
//	@Failure		409		{object}	bookingsdk.APIError				"error, message"
//	@Router			/v1/manage/users [post].
func (h *ManageUsersHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req bookingsdk.CreateUserRequest
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

	user, err := h.UserService.Create(ctx, req.ID, req.Name, req.Email, domain.Role(req.Role))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, toSDKUser(user))
}

// HandleDelete godoc
//
//	@Summary		Delete User Endpoint
//	@Description	Manager-gated removal of an account. Refused for the acting manager's own account and for users with copies still out.
//	@Tags			Management
//	@Accept			json
//	@Produce		json
//	@Param			user_id	path		string					true	"User id"
//	@Param			request	body		bookingsdk.TokenRequest	true	"qr_token"
//	@Success		200		{object}	map[string]bool			"success"
//	@Failure		401		{object}	bookingsdk.APIError		"error, message"
//	@Failure		403		{object}	bookingsdk.APIError		"error, message"
//	@Failure		404		{object}	bookingsdk.APIError		"error, message"
//	@Failure		409		{object}	bookingsdk.APIError		"error, message"
//	@Router			/v1/manage/users/{user_id} [delete].
func (h *ManageUsersHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := r.PathValue("user_id")

	var req bookingsdk.TokenRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeBadRequest(w, "Invalid JSON body")
		return
	}
	if err := h.Validator.Validate(req); err != nil {
		writeBadRequest(w, err.Error())
		return
	}

	manager, err := h.AuthService.RedeemManager(ctx, req.QRToken)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	if err := h.UserService.Delete(ctx, manager.ID, userID); err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, map[string]bool{"success": true})
}
