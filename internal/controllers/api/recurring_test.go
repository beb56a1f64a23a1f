package api_test

import (
	"net/http"
	"time"

	"github.com/HuyTapCode05/quanlythuchi/internal/models"
	"github.com/HuyTapCode05/quanlythuchi/internal/recurring"
	"github.com/HuyTapCode05/quanlythuchi/test"
)

func (suite *TestSuiteStandard) materialize(userID string) recurring.Result {
	recorder := test.Request(suite.T(), http.MethodPost, "http://example.com/api/recurring/"+userID+"/materialize", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var result recurring.Result
	test.DecodeResponse(suite.T(), &recorder, &result)
	return result
}

func (suite *TestSuiteStandard) TestMaterializeRecurringRule() {
	start := time.Now().AddDate(0, -3, 0).Format(time.DateOnly)

	recorder := test.Request(suite.T(), http.MethodPost, "http://example.com/api/recurring", map[string]any{
		"id":         "internet",
		"type":       "expense",
		"amount":     250000,
		"categoryId": "5",
		"note":       "Internet",
		"frequency":  "monthly",
		"startDate":  start,
		"nextDate":   start,
		"userId":     "u1",
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	result := suite.materialize("u1")
	suite.Assert().Equal(1, result.Rules)
	suite.Assert().GreaterOrEqual(result.Created, 3)

	transactions := listTransactions(suite.T(), "u1", "")
	suite.Assert().Len(transactions, result.Created)
	for _, tx := range transactions {
		suite.Assert().Equal("Internet", tx.Note)
		suite.Assert().Equal("5", tx.Category)
	}

	again := suite.materialize("u1")
	suite.Assert().Equal(0, again.Created, "materializing twice must not duplicate transactions")
}

func (suite *TestSuiteStandard) TestPausedRuleIsSkipped() {
	start := time.Now().AddDate(0, 0, -14).Format(time.DateOnly)

	recorder := test.Request(suite.T(), http.MethodPost, "http://example.com/api/recurring", map[string]any{
		"id":        "gym",
		"type":      "expense",
		"amount":    100000,
		"frequency": "weekly",
		"startDate": start,
		"nextDate":  start,
		"userId":    "u1",
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	recorder = test.Request(suite.T(), http.MethodPut, "http://example.com/api/recurring/gym", map[string]any{"isActive": false})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	result := suite.materialize("u1")
	suite.Assert().Equal(0, result.Created)

	recorder = test.Request(suite.T(), http.MethodGet, "http://example.com/api/recurring/u1", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var rules []models.RecurringRule
	test.DecodeResponse(suite.T(), &recorder, &rules)
	suite.Require().Len(rules, 1)
	suite.Assert().False(rules[0].IsActive)
}

func (suite *TestSuiteStandard) TestRecurringRuleMissingFields() {
	recorder := test.Request(suite.T(), http.MethodPost, "http://example.com/api/recurring", map[string]any{"id": "r1", "type": "expense", "amount": 1, "userId": "u1"})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
	suite.Assert().Equal("missing required fields: frequency, startDate, nextDate", decodeError(suite.T(), &recorder))
}
