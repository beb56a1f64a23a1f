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

var savingsGoals = resource[models.SavingsGoal]{
	parse: func(raw map[string]any, _ time.Time) normalize.Result[models.SavingsGoal] {
		return normalize.SavingsGoal(raw)
	},
	owner: func(g models.SavingsGoal) string {
		return g.UserID
	},
	setOwner: func(g *models.SavingsGoal, id string) {
		g.UserID = id
	},
	updatable: map[string]string{
		"name":           "Name",
		"targetAmount":   "TargetAmount",
		"target_amount":  "TargetAmount",
		"currentAmount":  "CurrentAmount",
		"current_amount": "CurrentAmount",
		"targetDate":     "TargetDate",
		"target_date":    "TargetDate",
		"isCompleted":    "IsCompleted",
		"is_completed":   "IsCompleted",
	},
}

type SavingsGoalCreate struct {
	ID           json.RawMessage `json:"id" binding:"given" swaggertype:"string" example:"lq2v8x1k4f9ab"`
	Name         json.RawMessage `json:"name" binding:"given" swaggertype:"string" example:"Laptop"`
	TargetAmount json.RawMessage `json:"targetAmount" binding:"given" swaggertype:"number" example:"5000000"`
	UserID       json.RawMessage `json:"userId" binding:"given" swaggertype:"string" example:"0b5f4c1e-6d43-4b52-9f1e-0b7d6a3c8e21"`
}

// RegisterSavingsRoutes registers the routes for savings goals with
// the RouterGroup that is passed.
func RegisterSavingsRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", OptionsSavingsList)
		r.POST("", CreateSavingsGoal)
	}

	{
		r.OPTIONS("/:id", OptionsSavingsDetail)
		r.GET("/:id", GetSavingsGoals)
		r.PUT("/:id", UpdateSavingsGoal)
		r.DELETE("/:id", DeleteSavingsGoal)
		r.OPTIONS("/:id/progress", OptionsSavingsProgress)
		r.GET("/:id/progress", GetSavingsProgress)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Savings
// @Success		204
// @Router			/api/savings [options]
func OptionsSavingsList(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Savings
// @Success		204
// @Param			id	path	string	true	"ID of the user for GET, ID of the goal otherwise"
// @Router			/api/savings/{id} [options]
func OptionsSavingsDetail(c *gin.Context) {
	httputil.OptionsGetPutDelete(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Savings
// @Success		204
// @Param			id	path	string	true	"ID of the user"
// @Router			/api/savings/{id}/progress [options]
func OptionsSavingsProgress(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		List savings goals
// @Description	Returns the savings goals of the user, newest first
// @Tags			Savings
// @Produce		json
// @Success		200	{array}		models.SavingsGoal
// @Failure		403	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		string	true	"ID of the user"
// @Router			/api/savings/{id} [get]
func GetSavingsGoals(c *gin.Context) {
	list[models.SavingsGoal](c)
}

// @Summary		Savings progress
// @Description	Returns the progress of every savings goal of the user
// @Tags			Savings
// @Produce		json
// @Success		200	{array}		aggregate.Progress
// @Failure		403	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		string	true	"ID of the user"
// @Router			/api/savings/{id}/progress [get]
func GetSavingsProgress(c *gin.Context) {
	id, ok := userID(c)
	if !ok {
		return
	}

	goals, err := models.List[models.SavingsGoal](id)
	if err != nil {
		abort(c, err)
		return
	}

	today := time.Now()
	progress := make([]aggregate.Progress, 0, len(goals))
	for _, g := range goals {
		progress = append(progress, aggregate.SavingsProgress(g, today))
	}

	c.JSON(http.StatusOK, progress)
}

// @Summary		Create savings goal
// @Description	Creates a savings goal. id, name, targetAmount and userId must be set.
// @Tags			Savings
// @Produce		json
// @Success		200		{object}	models.SavingsGoal
// @Failure		400		{object}	httpError
// @Failure		403		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			goal	body		SavingsGoalCreate	true	"Savings goal"
// @Router			/api/savings [post]
func CreateSavingsGoal(c *gin.Context) {
	goal, ok := savingsGoals.create(c, &SavingsGoalCreate{})
	if !ok {
		return
	}

	c.JSON(http.StatusOK, goal)
}

// @Summary		Update savings goal
// @Description	Updates the fields of the savings goal that are set in the body
// @Tags			Savings
// @Produce		json
// @Success		200		{object}	SuccessResponse
// @Failure		400		{object}	httpError
// @Failure		403		{object}	httpError
// @Failure		404		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			id		path		string				true	"ID of the goal"
// @Param			goal	body		models.SavingsGoal	true	"Savings goal"
// @Router			/api/savings/{id} [put]
func UpdateSavingsGoal(c *gin.Context) {
	if _, ok := savingsGoals.update(c); !ok {
		return
	}

	success(c)
}

// @Summary		Delete savings goal
// @Description	Deletes a savings goal
// @Tags			Savings
// @Produce		json
// @Success		200	{object}	SuccessResponse
// @Failure		403	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		string	true	"ID of the goal"
// @Router			/api/savings/{id} [delete]
func DeleteSavingsGoal(c *gin.Context) {
	if _, ok := savingsGoals.delete(c); !ok {
		return
	}

	success(c)
}
