package api_test

import (
	"net/http"
	"time"

	"github.com/HuyTapCode05/quanlythuchi/internal/aggregate"
	"github.com/HuyTapCode05/quanlythuchi/internal/models"
	"github.com/HuyTapCode05/quanlythuchi/test"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) createTestBudget(body map[string]any) models.Budget {
	recorder := test.Request(suite.T(), http.MethodPost, "http://example.com/api/budgets", body)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var budget models.Budget
	test.DecodeResponse(suite.T(), &recorder, &budget)
	return budget
}

func (suite *TestSuiteStandard) budgetStatus(userID, query string) []aggregate.BudgetState {
	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/api/budgets/"+userID+"/status"+query, "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var states []aggregate.BudgetState
	test.DecodeResponse(suite.T(), &recorder, &states)
	return states
}

func (suite *TestSuiteStandard) TestCreateBudgetMissingFields() {
	recorder := test.Request(suite.T(), http.MethodPost, "http://example.com/api/budgets", map[string]any{"id": "b1", "amount": 1000000, "userId": "u1"})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
	suite.Assert().Equal("missing required fields: categoryId, period", decodeError(suite.T(), &recorder))
}

func (suite *TestSuiteStandard) TestBudgetStatusOverBudget() {
	today := time.Now().Format(time.DateOnly)

	_ = suite.createTestBudget(map[string]any{"id": "b1", "categoryId": "1", "amount": 1000000, "period": "month", "userId": "u1"})
	_ = createTestTransaction(suite.T(), "u1", map[string]any{"id": "t1", "amount": 700000, "category": "1", "createdAt": today})
	_ = createTestTransaction(suite.T(), "u1", map[string]any{"id": "t2", "amount": 500000, "category": "1", "createdAt": today})
	_ = createTestTransaction(suite.T(), "u1", map[string]any{"id": "t3", "amount": 900000, "category": "2", "createdAt": today})
	_ = createTestTransaction(suite.T(), "u1", map[string]any{"id": "t4", "type": "income", "amount": 900000, "category": "1", "createdAt": today})

	states := suite.budgetStatus("u1", "")
	suite.Require().Len(states, 1)

	s := states[0]
	suite.Assert().Equal("b1", s.Budget.ID)
	suite.Assert().True(decimal.NewFromInt(1200000).Equal(s.Spending), "spending is %s", s.Spending)
	suite.Assert().True(decimal.NewFromInt(100).Equal(s.Percentage), "percentage is %s", s.Percentage)
	suite.Assert().True(decimal.NewFromInt(-200000).Equal(s.Remaining), "remaining is %s", s.Remaining)
	suite.Assert().True(s.IsOverBudget)
}

func (suite *TestSuiteStandard) TestBudgetStatusPeriodFilter() {
	_ = suite.createTestBudget(map[string]any{"id": "b1", "categoryId": "1", "amount": 1000000, "period": "month", "userId": "u1"})
	_ = suite.createTestBudget(map[string]any{"id": "b2", "categoryId": "2", "amount": 200000, "period": "week", "userId": "u1"})

	suite.Assert().Len(suite.budgetStatus("u1", ""), 2)

	states := suite.budgetStatus("u1", "?period=week")
	suite.Require().Len(states, 1)
	suite.Assert().Equal("b2", states[0].Budget.ID)
	suite.Assert().True(states[0].Spending.IsZero())
	suite.Assert().False(states[0].IsOverBudget)

	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/api/budgets/u1/status?period=decade", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestUpdateBudget() {
	_ = suite.createTestBudget(map[string]any{"id": "b1", "categoryId": "1", "amount": 1000000, "period": "month", "userId": "u1"})

	recorder := test.Request(suite.T(), http.MethodPut, "http://example.com/api/budgets/b1", map[string]any{"amount": "1500000", "period": "YEAR"})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	recorder = test.Request(suite.T(), http.MethodGet, "http://example.com/api/budgets/u1", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var budgets []models.Budget
	test.DecodeResponse(suite.T(), &recorder, &budgets)
	suite.Require().Len(budgets, 1)
	suite.Assert().True(decimal.NewFromInt(1500000).Equal(budgets[0].Amount))
	suite.Assert().Equal(models.PeriodYear, budgets[0].Period)
	suite.Assert().Equal("1", budgets[0].CategoryID)
}

func (suite *TestSuiteStandard) TestDeleteBudget() {
	_ = suite.createTestBudget(map[string]any{"id": "b1", "categoryId": "1", "amount": 1000000, "period": "month", "userId": "u1"})

	recorder := test.Request(suite.T(), http.MethodDelete, "http://example.com/api/budgets/b1", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)
	suite.Assert().Len(suite.budgetStatus("u1", ""), 0)
}
