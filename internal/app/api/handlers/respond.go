package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/kassem10h/Gym-Poject/pkg/apperr"
	"github.com/kassem10h/Gym-Poject/pkg/response"
)

// writeErr maps a service error onto the HTTP status and envelope code.
// Details from the application error (when present) ride along as data.
func writeErr(c *gin.Context, err error) {
	appErr := apperr.As(err)

	var code response.APIResponseCode
	switch appErr.Kind {
	case apperr.KindValidation:
		code = response.APIResponseCodeBadRequest
	case apperr.KindUnauthorized:
		code = response.APIResponseCodeUnauthorized
	case apperr.KindPayment:
		code = response.APIResponseCodePaymentRequired
	case apperr.KindForbidden:
		code = response.APIResponseCodeForbidden
	case apperr.KindNotFound:
		code = response.APIResponseCodeNotFound
	case apperr.KindConflict:
		code = response.APIResponseCodeConflict
	default:
		code = response.APIResponseCodeError
	}

	msg := appErr.Message
	if appErr.Kind == apperr.KindInternal {
		// Do not leak wrapped internals to clients.
		msg = "unexpected error"
	}
	c.JSON(appErr.HTTPStatus(), response.ErrorMsg[any](code, msg, appErr.Details))
}
