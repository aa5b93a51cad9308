package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tastetrack/ordering/models"
	"github.com/tastetrack/ordering/utils"
)

// respondServiceError converts the error taxonomy into one user-facing
// message. Validation problems are the caller's to fix; transport and
// malformed-response failures surface as a gateway error, with the two kept
// apart in the logs for diagnostics.
func respondServiceError(c *gin.Context, err error) {
	var validationErr *models.ValidationError
	if errors.As(err, &validationErr) {
		utils.RespondError(c, http.StatusBadRequest, validationErr)
		return
	}

	var malformedErr *models.MalformedResponseError
	if errors.As(err, &malformedErr) {
		utils.ErrorLogger.Printf("Malformed order service response: %v", malformedErr.Err)
		utils.RespondError(c, http.StatusBadGateway, errors.New("order service returned an unreadable response"))
		return
	}

	var transportErr *models.TransportError
	if errors.As(err, &transportErr) {
		utils.ErrorLogger.Printf("Order service failure: %v", transportErr)
		code := http.StatusBadGateway
		if transportErr.StatusCode >= 400 && transportErr.StatusCode < 500 {
			code = transportErr.StatusCode
		}
		utils.RespondError(c, code, errors.New(transportErr.Message))
		return
	}

	utils.RespondError(c, http.StatusInternalServerError, err)
}
