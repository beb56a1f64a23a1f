package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/HuyTapCode05/quanlythuchi/internal/httputil"
	"github.com/HuyTapCode05/quanlythuchi/internal/models"
	"github.com/HuyTapCode05/quanlythuchi/internal/normalize"
	"github.com/HuyTapCode05/quanlythuchi/internal/recurring"
	"github.com/gin-gonic/gin"
)

var recurringRules = resource[models.RecurringRule]{
	parse: normalize.RecurringRule,
	owner: func(r models.RecurringRule) string {
		return r.UserID
	},
	setOwner: func(r *models.RecurringRule, id string) {
		r.UserID = id
	},
	updatable: map[string]string{
		"type":        "Type",
		"amount":      "Amount",
		"categoryId":  "CategoryID",
		"category_id": "CategoryID",
		"category":    "CategoryID",
		"note":        "Note",
		"frequency":   "Frequency",
		"startDate":   "StartDate",
		"start_date":  "StartDate",
		"endDate":     "EndDate",
		"end_date":    "EndDate",
		"nextDate":    "NextDate",
		"next_date":   "NextDate",
		"isActive":    "IsActive",
		"is_active":   "IsActive",
	},
}

type RecurringRuleCreate struct {
	ID        json.RawMessage `json:"id" binding:"given" swaggertype:"string" example:"lq2v8x1k4f9ab"`
	Type      json.RawMessage `json:"type" binding:"given" swaggertype:"string" example:"expense"`
	Amount    json.RawMessage `json:"amount" binding:"given" swaggertype:"number" example:"250000"`
	Frequency json.RawMessage `json:"frequency" binding:"given" swaggertype:"string" example:"monthly"`
	StartDate json.RawMessage `json:"startDate" binding:"given" swaggertype:"string" example:"2024-01-05"`
	NextDate  json.RawMessage `json:"nextDate" binding:"given" swaggertype:"string" example:"2024-02-05"`
	UserID    json.RawMessage `json:"userId" binding:"given" swaggertype:"string" example:"0b5f4c1e-6d43-4b52-9f1e-0b7d6a3c8e21"`
}

// RegisterRecurringRoutes registers the routes for recurring rules with
// the RouterGroup that is passed.
func RegisterRecurringRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", OptionsRecurringList)
		r.POST("", CreateRecurringRule)
	}

	{
		r.OPTIONS("/:id", OptionsRecurringDetail)
		r.GET("/:id", GetRecurringRules)
		r.PUT("/:id", UpdateRecurringRule)
		r.DELETE("/:id", DeleteRecurringRule)
		r.OPTIONS("/:id/materialize", OptionsMaterialize)
		r.POST("/:id/materialize", Materialize)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Recurring
// @Success		204
// @Router			/api/recurring [options]
func OptionsRecurringList(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Recurring
// @Success		204
// @Param			id	path	string	true	"ID of the user for GET, ID of the rule otherwise"
// @Router			/api/recurring/{id} [options]
func OptionsRecurringDetail(c *gin.Context) {
	httputil.OptionsGetPutDelete(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Recurring
// @Success		204
// @Param			id	path	string	true	"ID of the user"
// @Router			/api/recurring/{id}/materialize [options]
func OptionsMaterialize(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		List recurring rules
// @Description	Returns the recurring rules of the user, newest first
// @Tags			Recurring
// @Produce		json
// @Success		200	{array}		models.RecurringRule
// @Failure		403	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		string	true	"ID of the user"
// @Router			/api/recurring/{id} [get]
func GetRecurringRules(c *gin.Context) {
	list[models.RecurringRule](c)
}

// @Summary		Create recurring rule
// @Description	Creates a recurring rule. id, type, amount, frequency, startDate, nextDate and userId must be set.
// @Tags			Recurring
// @Produce		json
// @Success		200		{object}	models.RecurringRule
// @Failure		400		{object}	httpError
// @Failure		403		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			rule	body		RecurringRuleCreate	true	"Recurring rule"
// @Router			/api/recurring [post]
func CreateRecurringRule(c *gin.Context) {
	rule, ok := recurringRules.create(c, &RecurringRuleCreate{})
	if !ok {
		return
	}

	c.JSON(http.StatusOK, rule)
}

// @Summary		Update recurring rule
// @Description	Updates the fields of the recurring rule that are set in the body. Setting isActive toggles the rule.
// @Tags			Recurring
// @Produce		json
// @Success		200		{object}	SuccessResponse
// @Failure		400		{object}	httpError
// @Failure		403		{object}	httpError
// @Failure		404		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			id		path		string					true	"ID of the rule"
// @Param			rule	body		models.RecurringRule	true	"Recurring rule"
// @Router			/api/recurring/{id} [put]
func UpdateRecurringRule(c *gin.Context) {
	if _, ok := recurringRules.update(c); !ok {
		return
	}

	success(c)
}

// @Summary		Delete recurring rule
// @Description	Deletes a recurring rule. Transactions it created are kept.
// @Tags			Recurring
// @Produce		json
// @Success		200	{object}	SuccessResponse
// @Failure		403	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		string	true	"ID of the rule"
// @Router			/api/recurring/{id} [delete]
func DeleteRecurringRule(c *gin.Context) {
	if _, ok := recurringRules.delete(c); !ok {
		return
	}

	success(c)
}

// @Summary		Materialize recurring rules
// @Description	Creates the transactions of all due occurrences of the active rules of the user
// @Tags			Recurring
// @Produce		json
// @Success		200	{object}	recurring.Result
// @Failure		403	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		string	true	"ID of the user"
// @Router			/api/recurring/{id}/materialize [post]
func Materialize(c *gin.Context) {
	id, ok := userID(c)
	if !ok {
		return
	}

	result, err := recurring.MaterializeUser(c.Request.Context(), id, time.Now())
	if err != nil {
		abort(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
