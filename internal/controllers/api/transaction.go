package api

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/HuyTapCode05/quanlythuchi/internal/events"
	"github.com/HuyTapCode05/quanlythuchi/internal/httputil"
	"github.com/HuyTapCode05/quanlythuchi/internal/models"
	"github.com/HuyTapCode05/quanlythuchi/internal/normalize"
	"github.com/gin-gonic/gin"
	"github.com/ryanuber/go-glob"
	"golang.org/x/exp/slices"
)

var transactions = resource[models.Transaction]{
	parse: normalize.Transaction,
	owner: func(t models.Transaction) string {
		return t.UserID
	},
	setOwner: func(t *models.Transaction, id string) {
		t.UserID = id
	},
	updatable: map[string]string{
		"type":        "Type",
		"amount":      "Amount",
		"category":    "Category",
		"categoryId":  "Category",
		"category_id": "Category",
		"note":        "Note",
		"createdAt":   "CreatedAt",
		"created_at":  "CreatedAt",
		"date":        "CreatedAt",
	},
}

// TransactionCreate lists the fields that must be present to create a
// transaction. All other fields are parsed leniently.
type TransactionCreate struct {
	ID        json.RawMessage `json:"id" binding:"given" swaggertype:"string" example:"lq2v8x1k4f9ab"`
	Type      json.RawMessage `json:"type" binding:"given" swaggertype:"string" example:"expense"`
	Amount    json.RawMessage `json:"amount" binding:"given" swaggertype:"number" example:"50000"`
	Category  json.RawMessage `json:"category" swaggertype:"string" example:"1"`
	Note      json.RawMessage `json:"note" swaggertype:"string" example:"Phở bò"`
	UserID    json.RawMessage `json:"userId" binding:"given" swaggertype:"string" example:"0b5f4c1e-6d43-4b52-9f1e-0b7d6a3c8e21"`
	CreatedAt json.RawMessage `json:"createdAt" binding:"given" swaggertype:"string" example:"2024-03-15"`
}

type TransactionQueryFilter struct {
	Type     models.EntryType `form:"type"`                                               // Only income or expense
	Category string           `form:"category"`                                           // ID of the category
	Note     string           `form:"note" filterField:"false"`                           // Glob pattern the note must match
	From     time.Time        `form:"from" time_format:"2006-01-02" filterField:"false"`  // First day, inclusive
	Until    time.Time        `form:"until" time_format:"2006-01-02" filterField:"false"` // Last day, inclusive
}

// RegisterTransactionRoutes registers the routes for transactions with
// the RouterGroup that is passed.
func RegisterTransactionRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", OptionsTransactionList)
		r.POST("", CreateTransaction)
	}

	{
		r.OPTIONS("/:id", OptionsTransactionDetail)
		r.GET("/:id", GetTransactions)
		r.PUT("/:id", UpdateTransaction)
		r.DELETE("/:id", DeleteTransaction)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Transactions
// @Success		204
// @Router			/api/transactions [options]
func OptionsTransactionList(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Transactions
// @Success		204
// @Param			id	path	string	true	"ID of the user for GET, ID of the transaction otherwise"
// @Router			/api/transactions/{id} [options]
func OptionsTransactionDetail(c *gin.Context) {
	httputil.OptionsGetPutDelete(c)
}

// @Summary		List transactions
// @Description	Returns the transactions of the user, newest first
// @Tags			Transactions
// @Produce		json
// @Success		200			{array}		models.Transaction
// @Failure		400			{object}	httpError
// @Failure		403			{object}	httpError
// @Failure		500			{object}	httpError
// @Param			id			path		string	true	"ID of the user"
// @Param			type		query		string	false	"Filter by type"
// @Param			category	query		string	false	"Filter by category ID"
// @Param			note		query		string	false	"Filter by note, * matches any text"
// @Param			from		query		string	false	"Only transactions on or after this date (YYYY-MM-DD)"
// @Param			until		query		string	false	"Only transactions on or before this date (YYYY-MM-DD)"
// @Router			/api/transactions/{id} [get]
func GetTransactions(c *gin.Context) {
	id, ok := userID(c)
	if !ok {
		return
	}

	var filter TransactionQueryFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		abort(c, err)
		return
	}

	// Get the set parameters in the query string
	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)

	q := models.DB.
		Where("user_id = ?", id).
		Order("created_at DESC, id ASC")

	if len(queryFields) > 0 {
		q = q.Where(&models.Transaction{
			Type:     filter.Type,
			Category: filter.Category,
		}, queryFields...)
	}

	if slices.Contains(setFields, "From") {
		q = q.Where("created_at >= ?", filter.From)
	}

	if slices.Contains(setFields, "Until") {
		q = q.Where("created_at < ?", filter.Until.AddDate(0, 0, 1))
	}

	found := make([]models.Transaction, 0)
	err := q.Find(&found).Error
	if err != nil {
		abort(c, err)
		return
	}

	if slices.Contains(setFields, "Note") {
		pattern := strings.ToLower(filter.Note)
		found = slices.DeleteFunc(found, func(t models.Transaction) bool {
			return !glob.Glob(pattern, strings.ToLower(t.Note))
		})
	}

	c.JSON(http.StatusOK, found)
}

// @Summary		Create transaction
// @Description	Creates a transaction. id, type, amount, userId and createdAt must be set.
// @Tags			Transactions
// @Produce		json
// @Success		200			{object}	models.Transaction
// @Failure		400			{object}	httpError
// @Failure		403			{object}	httpError
// @Failure		500			{object}	httpError
// @Param			transaction	body		TransactionCreate	true	"Transaction"
// @Router			/api/transactions [post]
func CreateTransaction(c *gin.Context) {
	transaction, ok := transactions.create(c, &TransactionCreate{})
	if !ok {
		return
	}

	events.Publish(c.Request.Context(), events.ForTransaction(events.TransactionCreated, transaction))
	c.JSON(http.StatusOK, transaction)
}

// @Summary		Update transaction
// @Description	Updates the fields of the transaction that are set in the body
// @Tags			Transactions
// @Produce		json
// @Success		200			{object}	SuccessResponse
// @Failure		400			{object}	httpError
// @Failure		403			{object}	httpError
// @Failure		404			{object}	httpError
// @Failure		500			{object}	httpError
// @Param			id			path		string				true	"ID of the transaction"
// @Param			transaction	body		models.Transaction	true	"Transaction"
// @Router			/api/transactions/{id} [put]
func UpdateTransaction(c *gin.Context) {
	transaction, ok := transactions.update(c)
	if !ok {
		return
	}

	events.Publish(c.Request.Context(), events.ForTransaction(events.TransactionUpdated, transaction))
	success(c)
}

// @Summary		Delete transaction
// @Description	Deletes a transaction
// @Tags			Transactions
// @Produce		json
// @Success		200	{object}	SuccessResponse
// @Failure		403	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		string	true	"ID of the transaction"
// @Router			/api/transactions/{id} [delete]
func DeleteTransaction(c *gin.Context) {
	id, ok := transactions.delete(c)
	if !ok {
		return
	}

	events.Publish(c.Request.Context(), events.Event{
		Kind:          events.TransactionDeleted,
		TransactionID: id,
		Time:          time.Now(),
	})
	success(c)
}
