package api

import (
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"github.com/HuyTapCode05/quanlythuchi/internal/exchange"
	"github.com/HuyTapCode05/quanlythuchi/internal/httputil"
	"github.com/gin-gonic/gin"
)

type OFXImportResponse struct {
	Parsed  int   `json:"parsed" example:"42"`  // Transactions in the statement
	Created int64 `json:"created" example:"40"` // Transactions that did not exist yet
}

// RegisterImportRoutes registers the routes for imports with
// the RouterGroup that is passed.
func RegisterImportRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/:id", OptionsImport)
	r.POST("/:id", ImportDocument)
	r.OPTIONS("/:id/ofx", OptionsImport)
	r.POST("/:id/ofx", ImportOFX)
}

// getUploadedFile returns the form file and handles potential errors.
func getUploadedFile(c *gin.Context, suffixes ...string) (multipart.File, error) {
	formFile, err := c.FormFile("file")
	if formFile == nil {
		return nil, errNoFilePost
	}

	if err != nil {
		return nil, err
	}

	name := strings.ToLower(formFile.Filename)
	supported := false
	for _, suffix := range suffixes {
		supported = supported || strings.HasSuffix(name, suffix)
	}
	if !supported {
		return nil, fmt.Errorf("%w: %s", errWrongFileSuffix, strings.Join(suffixes, ", "))
	}

	return formFile.Open()
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Import
// @Success		204
// @Param			id	path	string	true	"ID of the user"
// @Router			/api/import/{id} [options]
// @Router			/api/import/{id}/ofx [options]
func OptionsImport(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Import document
// @Description	Imports a document created by the export endpoint. Entries with existing IDs are overwritten, entries that cannot be parsed are skipped.
// @Tags			Import
// @Accept			json
// @Produce		json
// @Success		200			{object}	exchange.Summary
// @Failure		400			{object}	httpError
// @Failure		403			{object}	httpError
// @Failure		500			{object}	httpError
// @Param			id			path		string				true	"ID of the user"
// @Param			document	body		exchange.Document	true	"Export document"
// @Router			/api/import/{id} [post]
func ImportDocument(c *gin.Context) {
	id, ok := userID(c)
	if !ok {
		return
	}

	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		abort(c, httputil.ErrInvalidBody)
		return
	}

	if len(strings.TrimSpace(string(body))) == 0 {
		abort(c, httputil.ErrRequestBodyEmpty)
		return
	}

	summary, err := exchange.ImportJSON(id, body, time.Now())
	if err != nil {
		abort(c, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}

// @Summary		Import OFX statement
// @Description	Imports the bank and credit card transactions of an OFX or QFX statement. Transactions imported before are skipped.
// @Tags			Import
// @Accept			multipart/form-data
// @Produce		json
// @Success		200		{object}	OFXImportResponse
// @Failure		400		{object}	httpError
// @Failure		403		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			id		path		string	true	"ID of the user"
// @Param			file	formData	file	true	"File to import"
// @Router			/api/import/{id}/ofx [post]
func ImportOFX(c *gin.Context) {
	id, ok := userID(c)
	if !ok {
		return
	}

	f, err := getUploadedFile(c, ".ofx", ".qfx")
	if err != nil {
		abort(c, err)
		return
	}
	defer f.Close()

	parsed, created, err := exchange.ImportOFX(f, id)
	if err != nil {
		abort(c, err)
		return
	}

	c.JSON(http.StatusOK, OFXImportResponse{
		Parsed:  parsed,
		Created: created,
	})
}
