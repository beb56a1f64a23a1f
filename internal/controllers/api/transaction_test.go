package api_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/HuyTapCode05/quanlythuchi/internal/models"
	"github.com/HuyTapCode05/quanlythuchi/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestCreateTransactionMissingFields() {
	tests := []struct {
		name    string
		body    map[string]any
		message string
	}{
		{"Only type and user", map[string]any{"type": "expense", "userId": "u1"}, "missing required fields: id, amount, createdAt"},
		{"Empty strings", map[string]any{"id": "", "type": "", "amount": 0, "userId": "u1", "createdAt": "2024-03-15"}, "missing required fields: id, type"},
		{"Null amount", map[string]any{"id": "t1", "type": "income", "amount": nil, "userId": "u1", "createdAt": "2024-03-15"}, "missing required fields: amount"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			recorder := test.Request(t, http.MethodPost, "http://example.com/api/transactions", tt.body)
			test.AssertHTTPStatus(t, &recorder, http.StatusBadRequest)
			assert.Equal(t, tt.message, decodeError(t, &recorder))
		})
	}
}

func (suite *TestSuiteStandard) TestCreateTransactionNormalizes() {
	created := createTestTransaction(suite.T(), "u1", map[string]any{
		"id":     "t1",
		"type":   "refund",
		"amount": "-500",
		"note":   "  trả lại  ",
	})

	suite.Assert().Equal(models.Expense, created.Type)
	suite.Assert().True(decimal.NewFromInt(500).Equal(created.Amount), "amount is %s", created.Amount)
	suite.Assert().Equal("trả lại", created.Note)

	local := created.CreatedAt.In(time.Local)
	suite.Assert().Equal(12, local.Hour(), "date-only input must be noon local time")
	suite.Assert().Equal(15, local.Day())
}

func (suite *TestSuiteStandard) TestCreateTransactionLooseFields() {
	tests := []struct {
		name     string
		body     map[string]any
		category string
		note     string
	}{
		{"Numeric category", map[string]any{"id": "t1", "category": 1}, "1", ""},
		{"Category ID alias", map[string]any{"id": "t2", "categoryId": "9"}, "9", ""},
		{"Numeric note", map[string]any{"id": "t3", "note": 42}, "", "42"},
		{"Null fields", map[string]any{"id": "t4", "category": nil, "note": nil}, "", ""},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			created := createTestTransaction(suite.T(), "u1", tt.body)
			suite.Assert().Equal(tt.category, created.Category)
			suite.Assert().Equal(tt.note, created.Note)
		})
	}
}

func (suite *TestSuiteStandard) TestCreateTransactionInvalidDate() {
	recorder := test.Request(suite.T(), http.MethodPost, "http://example.com/api/transactions", map[string]any{
		"id":        "t1",
		"type":      "expense",
		"amount":    1000,
		"userId":    "u1",
		"createdAt": "sometime last week",
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
	suite.Assert().Contains(decodeError(suite.T(), &recorder), "createdAt")
}

func (suite *TestSuiteStandard) TestCreateTransactionDuplicateID() {
	_ = createTestTransaction(suite.T(), "u1", map[string]any{"id": "t1"})

	recorder := test.Request(suite.T(), http.MethodPost, "http://example.com/api/transactions", map[string]any{
		"id":        "t1",
		"type":      "expense",
		"amount":    1000,
		"userId":    "u1",
		"createdAt": "2024-03-15",
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
	suite.Assert().Contains(decodeError(suite.T(), &recorder), models.ErrIDInUse.Error())
}

func (suite *TestSuiteStandard) TestUpdateTransaction() {
	_ = createTestTransaction(suite.T(), "u1", map[string]any{"id": "t1", "note": "Cơm trưa", "category": "1"})

	recorder := test.Request(suite.T(), http.MethodPut, "http://example.com/api/transactions/t1", map[string]any{
		"amount": -75000,
		"type":   "income",
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)
	suite.Assert().JSONEq(`{"success": true}`, recorder.Body.String())

	transactions := listTransactions(suite.T(), "u1", "")
	suite.Require().Len(transactions, 1)
	suite.Assert().True(decimal.NewFromInt(75000).Equal(transactions[0].Amount))
	suite.Assert().Equal(models.Income, transactions[0].Type)
	suite.Assert().Equal("Cơm trưa", transactions[0].Note, "fields absent from the update must be kept")
	suite.Assert().Equal("1", transactions[0].Category)
}

func (suite *TestSuiteStandard) TestUpdateTransactionFails() {
	_ = createTestTransaction(suite.T(), "u1", map[string]any{"id": "t1"})

	tests := []struct {
		name   string
		id     string
		body   any
		status int
	}{
		{"Not found", "missing", map[string]any{"note": "x"}, http.StatusNotFound},
		{"Nothing to update", "t1", map[string]any{"unknown": "x"}, http.StatusBadRequest},
		{"Broken JSON", "t1", `{"note": `, http.StatusBadRequest},
		{"Invalid date", "t1", map[string]any{"createdAt": "yesterday-ish"}, http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			recorder := test.Request(t, http.MethodPut, "http://example.com/api/transactions/"+tt.id, tt.body)
			test.AssertHTTPStatus(t, &recorder, tt.status)
		})
	}
}

func (suite *TestSuiteStandard) TestDeleteTransaction() {
	_ = createTestTransaction(suite.T(), "u1", map[string]any{"id": "t1"})

	recorder := test.Request(suite.T(), http.MethodDelete, "http://example.com/api/transactions/t1", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)
	suite.Assert().JSONEq(`{"success": true}`, recorder.Body.String())
	suite.Assert().Len(listTransactions(suite.T(), "u1", ""), 0)

	recorder = test.Request(suite.T(), http.MethodDelete, "http://example.com/api/transactions/t1", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestListTransactionsIsScopedAndOrdered() {
	_ = createTestTransaction(suite.T(), "u1", map[string]any{"id": "old", "createdAt": "2024-01-02"})
	_ = createTestTransaction(suite.T(), "u1", map[string]any{"id": "new", "createdAt": "2024-03-02"})
	_ = createTestTransaction(suite.T(), "u2", map[string]any{"id": "other"})

	first := listTransactions(suite.T(), "u1", "")
	suite.Require().Len(first, 2)
	suite.Assert().Equal("new", first[0].ID)
	suite.Assert().Equal("old", first[1].ID)

	suite.Assert().Equal(first, listTransactions(suite.T(), "u1", ""), "listing must not change anything")
}

func (suite *TestSuiteStandard) TestListTransactionsFilter() {
	_ = createTestTransaction(suite.T(), "u1", map[string]any{"id": "pho", "note": "Phở bò", "category": "1", "createdAt": "2024-03-01"})
	_ = createTestTransaction(suite.T(), "u1", map[string]any{"id": "grab", "note": "Grab về nhà", "category": "2", "createdAt": "2024-03-10"})
	_ = createTestTransaction(suite.T(), "u1", map[string]any{"id": "salary", "type": "income", "note": "Lương", "category": "9", "createdAt": "2024-03-05"})

	tests := []struct {
		query string
		ids   []string
	}{
		{"?type=income", []string{"salary"}},
		{"?type=expense&category=2", []string{"grab"}},
		{"?note=*BÒ", []string{"pho"}},
		{"?from=2024-03-05", []string{"grab", "salary"}},
		{"?until=2024-03-05", []string{"salary", "pho"}},
		{"?from=2024-03-02&until=2024-03-09", []string{"salary"}},
		{"?category=", []string{}},
	}

	for _, tt := range tests {
		suite.T().Run(tt.query, func(t *testing.T) {
			ids := []string{}
			for _, transaction := range listTransactions(t, "u1", tt.query) {
				ids = append(ids, transaction.ID)
			}
			assert.Equal(t, tt.ids, ids)
		})
	}
}

func (suite *TestSuiteStandard) TestListTransactionsDatabaseError() {
	suite.CloseDB()

	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/api/transactions/u1", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusInternalServerError)
	suite.Assert().Equal(models.ErrGeneral.Error(), decodeError(suite.T(), &recorder))
}
