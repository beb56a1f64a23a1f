package api

import (
	"net/http"
	"time"

	"github.com/HuyTapCode05/quanlythuchi/internal/aggregate"
	"github.com/HuyTapCode05/quanlythuchi/internal/httputil"
	"github.com/HuyTapCode05/quanlythuchi/internal/models"
	"github.com/gin-gonic/gin"
)

// RegisterStatsRoutes registers the routes for statistics with
// the RouterGroup that is passed.
func RegisterStatsRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/:id", OptionsStats)
	r.GET("/:id", GetStats)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Statistics
// @Success		204
// @Param			id	path	string	true	"ID of the user"
// @Router			/api/stats/{id} [options]
func OptionsStats(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Statistics
// @Description	Returns the totals, monthly and weekly buckets and the category breakdown of the user's transactions
// @Tags			Statistics
// @Produce		json
// @Success		200		{object}	aggregate.Stats
// @Failure		403		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			id		path		string	true	"ID of the user"
// @Param			months	query		int		false	"Number of monthly buckets. Defaults to 6."
// @Param			weeks	query		int		false	"Number of weekly buckets. Defaults to 8."
// @Router			/api/stats/{id} [get]
func GetStats(c *gin.Context) {
	id, ok := userID(c)
	if !ok {
		return
	}

	found, err := models.List[models.Transaction](id)
	if err != nil {
		abort(c, err)
		return
	}

	months := httputil.QueryInt(c.Request.URL, "months", aggregate.DefaultMonths)
	weeks := httputil.QueryInt(c.Request.URL, "weeks", aggregate.DefaultWeeks)

	c.JSON(http.StatusOK, aggregate.Compute(found, time.Now(), months, weeks))
}
