package api

import (
	"net/http"

	"github.com/HuyTapCode05/quanlythuchi/internal/auth"
	"github.com/HuyTapCode05/quanlythuchi/internal/httputil"
	"github.com/HuyTapCode05/quanlythuchi/internal/models"
	"github.com/gin-gonic/gin"
)

type Response struct {
	Links Links `json:"links"` // Links for the API
}

type Links struct {
	Users        string `json:"users" example:"https://example.com/api/users"`               // URL of the user endpoints
	Categories   string `json:"categories" example:"https://example.com/api/categories"`     // URL of category endpoints
	Transactions string `json:"transactions" example:"https://example.com/api/transactions"` // URL of transaction endpoints
	Budgets      string `json:"budgets" example:"https://example.com/api/budgets"`           // URL of budget endpoints
	Recurring    string `json:"recurring" example:"https://example.com/api/recurring"`       // URL of recurring rule endpoints
	Savings      string `json:"savings" example:"https://example.com/api/savings"`           // URL of savings goal endpoints
	Stats        string `json:"stats" example:"https://example.com/api/stats"`               // URL of the statistics endpoint
	Export       string `json:"export" example:"https://example.com/api/export"`             // URL of the export endpoints
	Import       string `json:"import" example:"https://example.com/api/import"`             // URL of the import endpoints
}

// @Summary		API
// @Description	Returns general information about the API
// @Tags			General
// @Success		200	{object}	Response
// @Router			/api [get]
func Get(c *gin.Context) {
	url := c.GetString(string(models.DBContextURL)) + "/api"

	c.JSON(http.StatusOK, Response{
		Links: Links{
			Users:        url + "/users",
			Categories:   url + "/categories",
			Transactions: url + "/transactions",
			Budgets:      url + "/budgets",
			Recurring:    url + "/recurring",
			Savings:      url + "/savings",
			Stats:        url + "/stats",
			Export:       url + "/export",
			Import:       url + "/import",
		},
	})
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			General
// @Success		204
// @Router			/api [options]
func Options(c *gin.Context) {
	httputil.OptionsGetDelete(c)
}

// @Summary		Delete everything
// @Description	Permanently deletes all resources and restores the default categories. Not available with a user token.
// @Tags			General
// @Success		204
// @Failure		400		{object}	httpError
// @Failure		403		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			confirm	query		string	false	"Confirmation to delete all resources. Must have the value 'yes-please-delete-everything'"
// @Router			/api [delete]
func Cleanup(c *gin.Context) {
	if _, authenticated := auth.UserID(c); authenticated {
		abort(c, errForbidden)
		return
	}

	var params struct {
		Confirm string `form:"confirm"`
	}

	err := c.ShouldBindQuery(&params)
	if err != nil || params.Confirm != "yes-please-delete-everything" {
		abort(c, errCleanupConfirmation)
		return
	}

	err = models.DeleteAll()
	if err != nil {
		abort(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
