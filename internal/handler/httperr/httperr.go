package httperr

import (
	"errors"
	"net/http"

	"cleanspace/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		err = errors.New(msg)
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

// StatusOf maps an error kind to its HTTP status. Unmarked errors are server faults.
func StatusOf(err error) int {
	switch errs.Kind(err) {
	case errs.ErrInvalidArgument, errs.ErrInvalidOpeningHours:
		return http.StatusBadRequest
	case errs.ErrAuthenticationFailed:
		return http.StatusUnauthorized
	case errs.ErrWorkspaceNotFound:
		return http.StatusNotFound
	case errs.ErrDuplicateWorkspace, errs.ErrDuplicateReservation, errs.ErrWorkspaceFull:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// AbortWithUseCaseError responds with the status of err's kind. Client errors carry
// the error message; server faults are reported generically.
func AbortWithUseCaseError(c *gin.Context, err error) {
	status := StatusOf(err)
	msg := "Internal server error"
	if status < http.StatusInternalServerError {
		msg = err.Error()
	}
	AbortWithError(c, status, err, msg, nil)
}
