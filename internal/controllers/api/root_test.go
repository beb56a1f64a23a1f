package api_test

import (
	"net/http"
	"testing"

	"github.com/HuyTapCode05/quanlythuchi/internal/controllers/api"
	"github.com/HuyTapCode05/quanlythuchi/internal/models"
	"github.com/HuyTapCode05/quanlythuchi/test"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestGetRoot() {
	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/api", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response api.Response
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().Equal(api.Response{
		Links: api.Links{
			Users:        "http://example.com/api/users",
			Categories:   "http://example.com/api/categories",
			Transactions: "http://example.com/api/transactions",
			Budgets:      "http://example.com/api/budgets",
			Recurring:    "http://example.com/api/recurring",
			Savings:      "http://example.com/api/savings",
			Stats:        "http://example.com/api/stats",
			Export:       "http://example.com/api/export",
			Import:       "http://example.com/api/import",
		},
	}, response)
}

func (suite *TestSuiteStandard) TestOptions() {
	tests := []struct {
		path  string
		allow string
	}{
		{"/api", "OPTIONS, GET, DELETE"},
		{"/api/users/register", "OPTIONS, POST"},
		{"/api/users/login", "OPTIONS, POST"},
		{"/api/categories", "OPTIONS, POST"},
		{"/api/categories/u1", "OPTIONS, GET, PUT, DELETE"},
		{"/api/transactions", "OPTIONS, POST"},
		{"/api/transactions/u1", "OPTIONS, GET, PUT, DELETE"},
		{"/api/budgets/u1/status", "OPTIONS, GET"},
		{"/api/recurring/u1/materialize", "OPTIONS, POST"},
		{"/api/savings/u1/progress", "OPTIONS, GET"},
		{"/api/stats/u1", "OPTIONS, GET"},
		{"/api/export", "OPTIONS, GET"},
		{"/api/export/u1", "OPTIONS, GET"},
		{"/api/import/u1", "OPTIONS, POST"},
		{"/api/import/u1/ofx", "OPTIONS, POST"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.path, func(t *testing.T) {
			recorder := test.Request(t, http.MethodOptions, "http://example.com"+tt.path, "")
			test.AssertHTTPStatus(t, &recorder, http.StatusNoContent)
			assert.Equal(t, tt.allow, recorder.Header().Get("allow"))
		})
	}
}

func (suite *TestSuiteStandard) TestCleanup() {
	_ = createTestTransaction(suite.T(), "u1", map[string]any{"id": "t1"})
	_ = suite.createTestBudget(map[string]any{"id": "b1", "categoryId": "1", "amount": 1000000, "period": "month", "userId": "u1"})
	_ = registerTestUser(suite.T(), "cleanup@example.com")

	recorder := test.Request(suite.T(), http.MethodDelete, "http://example.com/api/categories/1", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	recorder = test.Request(suite.T(), http.MethodDelete, "http://example.com/api?confirm=yes-please-delete-everything", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)

	suite.Assert().Len(listTransactions(suite.T(), "u1", ""), 0)
	suite.Assert().Len(suite.budgetStatus("u1", ""), 0)
	suite.Assert().Len(suite.listCategories("u1"), len(models.DefaultCategories), "default categories must be restored")

	// The email address can be used again
	_ = registerTestUser(suite.T(), "cleanup@example.com")
}

func (suite *TestSuiteStandard) TestCleanupFails() {
	recorder := test.Request(suite.T(), http.MethodDelete, "http://example.com/api?confirm=yes-i-am-sure", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)

	user := registerTestUser(suite.T(), "nope@example.com")
	recorder = test.Request(suite.T(), http.MethodDelete, "http://example.com/api?confirm=yes-please-delete-everything", "", bearer(user.Token))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusForbidden)
}
