package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/Guyuepp/fritter/domain"
	"github.com/Guyuepp/fritter/internal/rest/middleware"
)

// ResponseError represent the response error struct
type ResponseError struct {
	Message string `json:"message"`
}

func abortWithError(c *gin.Context, err error) {
	c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
}

// getStatusCode maps domain error kinds to HTTP status codes
func getStatusCode(err error) int {
	if err == nil {
		return http.StatusOK
	}

	switch {
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrConflict), errors.Is(err, domain.ErrStaleWrite):
		return http.StatusConflict
	case errors.Is(err, domain.ErrTooManyEdits):
		return http.StatusRequestEntityTooLarge
	case errors.Is(err, domain.ErrBadParamInput):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden
	default:
		logrus.Error(err)
		return http.StatusInternalServerError
	}
}

// callerID returns the id set by middleware.Identity
func callerID(c *gin.Context) string {
	return c.GetString(middleware.ContextUserID)
}
