package api

import (
	"errors"
	"net/http"

	"github.com/HuyTapCode05/quanlythuchi/internal/auth"
	"github.com/HuyTapCode05/quanlythuchi/internal/models"
	"github.com/gin-gonic/gin"
)

type httpError struct {
	Error string `json:"error" example:"missing required fields: id, amount"`
}

// status returns the appropriate status for an error
func status(err error) int {
	switch {
	case errors.Is(err, models.ErrGeneral), errors.Is(err, models.ErrNoRowsWritten):
		return http.StatusInternalServerError
	case errors.Is(err, models.ErrResourceNotFound):
		return http.StatusNotFound
	case errors.Is(err, auth.ErrInvalidCredentials), errors.Is(err, auth.ErrInvalidToken):
		return http.StatusUnauthorized
	case errors.Is(err, errForbidden):
		return http.StatusForbidden
	}

	return http.StatusBadRequest
}

// abort responds with the status for the error and its message.
func abort(c *gin.Context, err error) {
	c.AbortWithStatusJSON(status(err), httpError{
		Error: err.Error(),
	})
}

var (
	errForbidden     = errors.New("you are not allowed to access data of this user")
	errNothingToSave = errors.New("the request does not contain any field that can be updated")
)

// Cleanup errors
var (
	errCleanupConfirmation = errors.New("the confirmation for the cleanup API call was incorrect")
)

// Import errors
var (
	errNoFilePost      = errors.New("you must send a file to this endpoint")
	errWrongFileSuffix = errors.New("this endpoint only supports files of the following types")
)
