package api

import (
	"net/http"

	"github.com/HuyTapCode05/quanlythuchi/internal/auth"
	"github.com/gin-gonic/gin"
)

// SuccessResponse is returned by updates and deletes.
type SuccessResponse struct {
	Success bool `json:"success" example:"true"`
}

func success(c *gin.Context) {
	c.JSON(http.StatusOK, SuccessResponse{Success: true})
}

// URIID is the ID in the path. Depending on the endpoint, it is the ID of
// the resource or of the user owning the resources.
type URIID struct {
	ID string `uri:"id" binding:"required"`
}

// userID reads the user ID from the path and verifies that the request
// may access the user's data. It responds with an error if not.
func userID(c *gin.Context) (string, bool) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		abort(c, err)
		return "", false
	}

	return authorized(c, uri.ID)
}

// authorized verifies that the request may access the user's data.
func authorized(c *gin.Context, id string) (string, bool) {
	if !auth.Authorize(c, id) {
		abort(c, errForbidden)
		return "", false
	}

	return id, true
}

// resourceID reads the resource ID from the path.
func resourceID(c *gin.Context) (string, bool) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		abort(c, err)
		return "", false
	}

	return uri.ID, true
}

// presentFields returns the model fields whose JSON keys are set in the
// raw body. Keys map to the model field they update.
func presentFields(raw map[string]any, keys map[string]string) []string {
	seen := make(map[string]bool)
	fields := make([]string, 0, len(keys))

	for key, field := range keys {
		if _, ok := raw[key]; ok && !seen[field] {
			seen[field] = true
			fields = append(fields, field)
		}
	}

	return fields
}
