package api_test

import (
	"net/http"

	"github.com/HuyTapCode05/quanlythuchi/internal/aggregate"
	"github.com/HuyTapCode05/quanlythuchi/test"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) savingsProgress(userID string) []aggregate.Progress {
	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/api/savings/"+userID+"/progress", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var progress []aggregate.Progress
	test.DecodeResponse(suite.T(), &recorder, &progress)
	return progress
}

func (suite *TestSuiteStandard) TestSavingsProgress() {
	recorder := test.Request(suite.T(), http.MethodPost, "http://example.com/api/savings", map[string]any{
		"id":            "g1",
		"name":          "Laptop",
		"targetAmount":  5000000,
		"currentAmount": 2000000,
		"userId":        "u1",
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	progress := suite.savingsProgress("u1")
	suite.Require().Len(progress, 1)
	suite.Assert().True(decimal.NewFromInt(40).Equal(progress[0].Percentage), "percentage is %s", progress[0].Percentage)
	suite.Assert().True(decimal.NewFromInt(3000000).Equal(progress[0].RemainingAmount))
	suite.Assert().Nil(progress[0].DaysRemaining)
}

func (suite *TestSuiteStandard) TestSavingsDeposit() {
	recorder := test.Request(suite.T(), http.MethodPost, "http://example.com/api/savings", map[string]any{
		"id":           "g1",
		"name":         "Du lịch",
		"targetAmount": 1000000,
		"userId":       "u1",
		"targetDate":   "2099-01-01",
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	recorder = test.Request(suite.T(), http.MethodPut, "http://example.com/api/savings/g1", map[string]any{"currentAmount": 1200000, "isCompleted": true})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	progress := suite.savingsProgress("u1")
	suite.Require().Len(progress, 1)
	suite.Assert().True(decimal.NewFromInt(100).Equal(progress[0].Percentage))
	suite.Assert().True(progress[0].RemainingAmount.IsZero())
	suite.Assert().True(progress[0].Goal.IsCompleted)
	suite.Require().NotNil(progress[0].DaysRemaining)
	suite.Assert().Positive(*progress[0].DaysRemaining)
}

func (suite *TestSuiteStandard) TestSavingsMissingFields() {
	recorder := test.Request(suite.T(), http.MethodPost, "http://example.com/api/savings", map[string]any{"id": "g1", "userId": "u1"})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
	suite.Assert().Equal("missing required fields: name, targetAmount", decodeError(suite.T(), &recorder))
}
