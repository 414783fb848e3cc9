package http

import (
	"errors"
	"net/http"

	"github.com/khlug/booking/internal/booking/service"
	"github.com/khlug/booking/pkg/bookingsdk"
	"github.com/khlug/booking/pkg/httpx"
	"github.com/khlug/booking/pkg/slogx"
)

func writeError(w http.ResponseWriter, status int, kind, message string) {
	httpx.WriteJSON(w, status, bookingsdk.APIError{Kind: kind, Message: message})
}

func writeBadRequest(w http.ResponseWriter, message string) {
	writeError(w, http.StatusBadRequest, bookingsdk.ErrorKindBadRequest, message)
}

// writeServiceError maps the service sentinel errors onto the wire error
// kinds. Anything unmapped is a 500 and gets logged; the mapped failures
// are ordinary client outcomes and stay quiet.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidToken):
		writeError(w, http.StatusUnauthorized, bookingsdk.ErrorKindUnauthorized,
			"Token is invalid or expired")
	case errors.Is(err, service.ErrNotManager):
		writeError(w, http.StatusForbidden, bookingsdk.ErrorKindForbidden,
			"Manager role required")
	case errors.Is(err, service.ErrUserNotFound):
		writeError(w, http.StatusNotFound, bookingsdk.ErrorKindNotFound,
			"User not found")
	case errors.Is(err, service.ErrBookNotFound):
		writeError(w, http.StatusNotFound, bookingsdk.ErrorKindNotFound,
			"Book not found")
	case errors.Is(err, service.ErrNoStock):
		writeError(w, http.StatusBadRequest, bookingsdk.ErrorKindNoStock,
			"No copies available")
	case errors.Is(err, service.ErrNotBorrowed):
		writeError(w, http.StatusBadRequest, bookingsdk.ErrorKindNotBorrowed,
			"No open loan for this user and book")
	case errors.Is(err, service.ErrDuplicateBook):
		writeError(w, http.StatusConflict, bookingsdk.ErrorKindConflict,
			"Book already registered")
	case errors.Is(err, service.ErrDuplicateUser):
		writeError(w, http.StatusConflict, bookingsdk.ErrorKindConflict,
			"User already exists")
	case errors.Is(err, service.ErrBookOnLoan):
		writeError(w, http.StatusConflict, bookingsdk.ErrorKindConflict,
			"Book has copies on loan")
	case errors.Is(err, service.ErrUserHasLoans):
		writeError(w, http.StatusConflict, bookingsdk.ErrorKindConflict,
			"User has open loans")
	case errors.Is(err, service.ErrSelfDelete):
		writeError(w, http.StatusConflict, bookingsdk.ErrorKindConflict,
			"Managers cannot delete their own account")
	case errors.Is(err, service.ErrTotalBelowOpen):
		writeError(w, http.StatusBadRequest, bookingsdk.ErrorKindBadRequest,
			"total_count cannot be below the number of open loans")
	case errors.Is(err, service.ErrInvalidTotalCount):
		writeError(w, http.StatusBadRequest, bookingsdk.ErrorKindBadRequest,
			"total_count must not be negative")
	case errors.Is(err, service.ErrInvalidRole):
		writeError(w, http.StatusBadRequest, bookingsdk.ErrorKindBadRequest,
			"role must be MEMBER or MANAGER")
	default:
		slogx.FromContext(r.Context()).Error("request failed", "err", err)
		writeError(w, http.StatusInternalServerError, bookingsdk.ErrorKindServerError,
			"Internal server error")
	}
}
