package api

import (
	"encoding/json"
	"net/http"
	"reflect"
	"time"

	"github.com/HuyTapCode05/quanlythuchi/internal/auth"
	"github.com/HuyTapCode05/quanlythuchi/internal/exchange"
	"github.com/HuyTapCode05/quanlythuchi/internal/httputil"
	"github.com/HuyTapCode05/quanlythuchi/internal/models"
	"github.com/gin-gonic/gin"
)

var backendVersion string

type BackupResponse struct {
	Version      string                     `json:"version"`      // The version of the backend the backup was made with
	Data         map[string]json.RawMessage `json:"data"`         // All resources, keyed by model name
	CreationTime time.Time                  `json:"creationTime"` // Time the backup was created
}

func RegisterExportRoutes(r *gin.RouterGroup, version string) {
	backendVersion = version

	{
		r.OPTIONS("", OptionsExport)
		r.GET("", GetBackup)
	}

	{
		r.OPTIONS("/:id", OptionsExport)
		r.GET("/:id", GetExport)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Export
// @Success		204
// @Router			/api/export [options]
// @Router			/api/export/{id} [options]
func OptionsExport(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Backup
// @Description	Exports all resources of the instance. Not available with a user token.
// @Tags			Export
// @Produce		json
// @Success		200	{object}	BackupResponse
// @Failure		403	{object}	httpError
// @Failure		500	{object}	httpError
// @Router			/api/export [get]
func GetBackup(c *gin.Context) {
	if _, authenticated := auth.UserID(c); authenticated {
		abort(c, errForbidden)
		return
	}

	resources := make(map[string]json.RawMessage)

	for _, model := range models.Registry {
		b, err := model.Export()
		if err != nil {
			abort(c, err)
			return
		}

		resources[reflect.TypeOf(model).Name()] = b
	}

	c.JSON(http.StatusOK, BackupResponse{
		Version:      backendVersion,
		Data:         resources,
		CreationTime: time.Now(),
	})
}

// @Summary		Export
// @Description	Exports the categories and transactions of the user as a document that can be imported again
// @Tags			Export
// @Produce		json
// @Success		200	{object}	exchange.Document
// @Failure		403	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		string	true	"ID of the user"
// @Router			/api/export/{id} [get]
func GetExport(c *gin.Context) {
	id, ok := userID(c)
	if !ok {
		return
	}

	doc, err := exchange.Export(id, time.Now())
	if err != nil {
		abort(c, err)
		return
	}

	c.JSON(http.StatusOK, doc)
}
