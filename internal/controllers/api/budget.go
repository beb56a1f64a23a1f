package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/HuyTapCode05/quanlythuchi/internal/aggregate"
	"github.com/HuyTapCode05/quanlythuchi/internal/httputil"
	"github.com/HuyTapCode05/quanlythuchi/internal/models"
	"github.com/HuyTapCode05/quanlythuchi/internal/normalize"
	"github.com/gin-gonic/gin"
)

var budgets = resource[models.Budget]{
	parse: func(raw map[string]any, _ time.Time) normalize.Result[models.Budget] {
		return normalize.Budget(raw)
	},
	owner: func(b models.Budget) string {
		return b.UserID
	},
	setOwner: func(b *models.Budget, id string) {
		b.UserID = id
	},
	updatable: map[string]string{
		"categoryId":  "CategoryID",
		"category_id": "CategoryID",
		"category":    "CategoryID",
		"amount":      "Amount",
		"period":      "Period",
	},
}

type BudgetCreate struct {
	ID         json.RawMessage `json:"id" binding:"given" swaggertype:"string" example:"lq2v8x1k4f9ab"`
	CategoryID json.RawMessage `json:"categoryId" binding:"given" swaggertype:"string" example:"1"`
	Amount     json.RawMessage `json:"amount" binding:"given" swaggertype:"number" example:"1000000"`
	Period     json.RawMessage `json:"period" binding:"given" swaggertype:"string" example:"month"`
	UserID     json.RawMessage `json:"userId" binding:"given" swaggertype:"string" example:"0b5f4c1e-6d43-4b52-9f1e-0b7d6a3c8e21"`
}

type BudgetStatusQuery struct {
	Period models.Period `form:"period" binding:"omitempty,oneof=week month year"`
}

// RegisterBudgetRoutes registers the routes for budgets with
// the RouterGroup that is passed.
func RegisterBudgetRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", OptionsBudgetList)
		r.POST("", CreateBudget)
	}

	{
		r.OPTIONS("/:id", OptionsBudgetDetail)
		r.GET("/:id", GetBudgets)
		r.PUT("/:id", UpdateBudget)
		r.DELETE("/:id", DeleteBudget)
		r.OPTIONS("/:id/status", OptionsBudgetStatus)
		r.GET("/:id/status", GetBudgetStatus)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Budgets
// @Success		204
// @Router			/api/budgets [options]
func OptionsBudgetList(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Budgets
// @Success		204
// @Param			id	path	string	true	"ID of the user for GET, ID of the budget otherwise"
// @Router			/api/budgets/{id} [options]
func OptionsBudgetDetail(c *gin.Context) {
	httputil.OptionsGetPutDelete(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Budgets
// @Success		204
// @Param			id	path	string	true	"ID of the user"
// @Router			/api/budgets/{id}/status [options]
func OptionsBudgetStatus(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		List budgets
// @Description	Returns the budgets of the user, newest first
// @Tags			Budgets
// @Produce		json
// @Success		200	{array}		models.Budget
// @Failure		403	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		string	true	"ID of the user"
// @Router			/api/budgets/{id} [get]
func GetBudgets(c *gin.Context) {
	list[models.Budget](c)
}

// @Summary		Budget status
// @Description	Returns the spending against every budget of the user in the current period
// @Tags			Budgets
// @Produce		json
// @Success		200		{array}		aggregate.BudgetState
// @Failure		400		{object}	httpError
// @Failure		403		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			id		path		string	true	"ID of the user"
// @Param			period	query		string	false	"Only budgets for this period"	Enums(week, month, year)
// @Router			/api/budgets/{id}/status [get]
func GetBudgetStatus(c *gin.Context) {
	id, ok := userID(c)
	if !ok {
		return
	}

	var query BudgetStatusQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		abort(c, err)
		return
	}

	all, err := models.List[models.Budget](id)
	if err != nil {
		abort(c, err)
		return
	}

	if query.Period != "" {
		all = aggregate.BudgetsByPeriod(all, query.Period)
	}

	spent, err := models.List[models.Transaction](id)
	if err != nil {
		abort(c, err)
		return
	}

	now := time.Now()
	states := make([]aggregate.BudgetState, 0, len(all))
	for _, b := range all {
		states = append(states, aggregate.BudgetStatus(b, spent, now))
	}

	c.JSON(http.StatusOK, states)
}

// @Summary		Create budget
// @Description	Creates a budget. id, categoryId, amount, period and userId must be set.
// @Tags			Budgets
// @Produce		json
// @Success		200		{object}	models.Budget
// @Failure		400		{object}	httpError
// @Failure		403		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			budget	body		BudgetCreate	true	"Budget"
// @Router			/api/budgets [post]
func CreateBudget(c *gin.Context) {
	budget, ok := budgets.create(c, &BudgetCreate{})
	if !ok {
		return
	}

	c.JSON(http.StatusOK, budget)
}

// @Summary		Update budget
// @Description	Updates the fields of the budget that are set in the body
// @Tags			Budgets
// @Produce		json
// @Success		200		{object}	SuccessResponse
// @Failure		400		{object}	httpError
// @Failure		403		{object}	httpError
// @Failure		404		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			id		path		string			true	"ID of the budget"
// @Param			budget	body		models.Budget	true	"Budget"
// @Router			/api/budgets/{id} [put]
func UpdateBudget(c *gin.Context) {
	if _, ok := budgets.update(c); !ok {
		return
	}

	success(c)
}

// @Summary		Delete budget
// @Description	Deletes a budget
// @Tags			Budgets
// @Produce		json
// @Success		200	{object}	SuccessResponse
// @Failure		403	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		string	true	"ID of the budget"
// @Router			/api/budgets/{id} [delete]
func DeleteBudget(c *gin.Context) {
	if _, ok := budgets.delete(c); !ok {
		return
	}

	success(c)
}
