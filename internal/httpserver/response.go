package httpserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"vertexit-site/internal/domain"
	"vertexit-site/internal/identity"
)

type errorBody struct {
	Error errorDetail `json:"error"`
}

type errorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// writeError maps the error taxonomy onto HTTP statuses with a stable
// JSON envelope. Unknown errors never leak their text to the client.
func writeError(c *gin.Context, err error) {
	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		fail(c, http.StatusBadRequest, "validation_failed", verr.Error())
	case errors.Is(err, domain.ErrNotFound):
		fail(c, http.StatusNotFound, "not_found", "resource not found")
	case errors.Is(err, identity.ErrInvalidCredentials):
		fail(c, http.StatusUnauthorized, "invalid_credentials", identity.ErrInvalidCredentials.Error())
	case errors.Is(err, identity.ErrAccountDisabled):
		fail(c, http.StatusForbidden, "account_disabled", identity.ErrAccountDisabled.Error())
	case errors.Is(err, identity.ErrTooManyAttempts):
		fail(c, http.StatusTooManyRequests, "too_many_attempts", identity.ErrTooManyAttempts.Error())
	case errors.Is(err, domain.ErrUnavailable):
		fail(c, http.StatusServiceUnavailable, "unavailable", "content store unavailable")
	default:
		fail(c, http.StatusInternalServerError, "internal", "internal error")
	}
}

func fail(c *gin.Context, status int, code, message string) {
	c.AbortWithStatusJSON(status, errorBody{Error: errorDetail{Code: code, Message: message}})
}
