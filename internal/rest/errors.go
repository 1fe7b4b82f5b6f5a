package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/Guyuepp/Go-Clean-Architecture-Forum/domain"
	"github.com/Guyuepp/Go-Clean-Architecture-Forum/internal/rest/middleware"
	"github.com/Guyuepp/Go-Clean-Architecture-Forum/internal/rest/request"
	"github.com/Guyuepp/Go-Clean-Architecture-Forum/internal/rest/response"
)

// getStatusCode will get the code of a translated domain error
func getStatusCode(err error) int {
	if err == nil {
		return http.StatusOK
	}

	switch {
	case errors.Is(err, domain.ErrBadParamInput):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, domain.ErrConflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// renderError translates err and writes the matching envelope. Anything that
// is not a client error is logged and hidden behind a generic message.
func renderError(c *gin.Context, err error) {
	err = domain.Translate(err)

	code := getStatusCode(err)
	var clientErr *domain.ClientError
	if code < http.StatusInternalServerError && errors.As(err, &clientErr) {
		c.JSON(code, response.Fail(clientErr.Message))
		return
	}

	logrus.Errorf("%s %s: %v", c.Request.Method, c.FullPath(), err)
	c.JSON(http.StatusInternalServerError, response.ServerError())
}

// callerID returns the authenticated user id set by the auth middleware.
func callerID(c *gin.Context) (string, bool) {
	id := c.GetString(middleware.UserIDKey)
	if id == "" {
		c.JSON(http.StatusUnauthorized, response.Fail(middleware.MissingAuthMessage))
		return "", false
	}
	return id, true
}

// bindPayload responds itself when the body is not a JSON object.
func bindPayload(c *gin.Context) (domain.Payload, bool) {
	p, err := request.BindPayload(c)
	if err != nil {
		renderError(c, err)
		return nil, false
	}
	return p, true
}
