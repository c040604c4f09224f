package http

import (
	"errors"
	"net/http"

	"farmpower-chat/internal/chat"
	pkgErrors "farmpower-chat/pkg/errors"
)

var (
	errEmptyBody        = errors.New("request body is required")
	errInvalidJSON      = errors.New("request body must be valid JSON")
	errMissingMessageID = errors.New("messageId is required")
	errFeedbackTooLong  = errors.New("feedback must be at most 2000 characters")
)

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
// Unknown errors become 500.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, chat.ErrEmptyQuery),
		errors.Is(err, chat.ErrMissingSessionID),
		errors.Is(err, chat.ErrInvalidRating),
		errors.Is(err, errEmptyBody),
		errors.Is(err, errInvalidJSON),
		errors.Is(err, errMissingMessageID),
		errors.Is(err, errFeedbackTooLong):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, chat.ErrQueryTooLong):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "query exceeds the maximum allowed length")
	case errors.Is(err, chat.ErrSessionNotFound),
		errors.Is(err, chat.ErrTurnNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, chat.ErrProviderFailed):
		return pkgErrors.NewHTTPError(http.StatusInternalServerError, err.Error())
	default:
		return pkgErrors.ErrInternalServerError
	}
}
