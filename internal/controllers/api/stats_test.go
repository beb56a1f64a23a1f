package api_test

import (
	"net/http"
	"time"

	"github.com/HuyTapCode05/quanlythuchi/internal/aggregate"
	"github.com/HuyTapCode05/quanlythuchi/test"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestGetStats() {
	today := time.Now().Format(time.DateOnly)
	_ = createTestTransaction(suite.T(), "u1", map[string]any{"id": "salary", "type": "income", "amount": 15000000, "category": "9", "createdAt": today})
	_ = createTestTransaction(suite.T(), "u1", map[string]any{"id": "pho", "amount": 50000, "category": "1", "createdAt": today})
	_ = createTestTransaction(suite.T(), "u1", map[string]any{"id": "grab", "amount": 120000, "category": "2", "createdAt": today})

	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/api/stats/u1?months=3&weeks=2", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var stats aggregate.Stats
	test.DecodeResponse(suite.T(), &recorder, &stats)

	suite.Assert().True(decimal.NewFromInt(15000000).Equal(stats.TotalIncome))
	suite.Assert().True(decimal.NewFromInt(170000).Equal(stats.TotalExpense))
	suite.Assert().True(decimal.NewFromInt(14830000).Equal(stats.Balance))

	suite.Require().Len(stats.Monthly, 3)
	suite.Assert().True(decimal.NewFromInt(170000).Equal(stats.Monthly[2].Expense), "the current month is last")
	suite.Assert().Len(stats.Weekly, 2)

	suite.Require().Len(stats.Expenses, 2)
	suite.Assert().Equal("2", stats.Expenses[0].CategoryID)
	suite.Require().Len(stats.Incomes, 1)
	suite.Assert().Equal("9", stats.Incomes[0].CategoryID)
}

func (suite *TestSuiteStandard) TestGetStatsEmpty() {
	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/api/stats/nobody", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var stats aggregate.Stats
	test.DecodeResponse(suite.T(), &recorder, &stats)
	suite.Assert().True(stats.Balance.IsZero())
	suite.Assert().Empty(stats.Expenses)
}
