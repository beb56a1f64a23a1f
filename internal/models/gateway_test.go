package models_test

import (
	"testing"
	"time"

	"github.com/HuyTapCode05/quanlythuchi/internal/models"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestDuplicateEmail() {
	suite.createTestUser(models.User{Name: "A", Email: "a@example.com", Password: "x"})

	duplicate := models.User{DefaultModel: models.DefaultModel{ID: "other"}, Name: "B", Email: "a@example.com", Password: "y"}
	err := models.Create(&duplicate)
	suite.Assert().ErrorIs(err, models.ErrEmailInUse)
	suite.Assert().NotErrorIs(err, models.ErrGeneral)
}

func (suite *TestSuiteStandard) TestDuplicateID() {
	tx := models.Transaction{DefaultModel: models.DefaultModel{ID: "t1"}, Type: models.Expense, Amount: decimal.NewFromInt(1), UserID: "u"}
	suite.Require().Nil(models.Create(&tx))

	again := models.Transaction{DefaultModel: models.DefaultModel{ID: "t1"}, Type: models.Income, Amount: decimal.NewFromInt(2), UserID: "u"}
	suite.Assert().ErrorIs(models.Create(&again), models.ErrIDInUse)
}

func (suite *TestSuiteStandard) TestListScopesAndOrder() {
	now := time.Now().UTC()
	for i, tx := range []models.Transaction{
		{DefaultModel: models.DefaultModel{ID: "old", CreatedAt: now.AddDate(0, 0, -2)}, UserID: "u"},
		{DefaultModel: models.DefaultModel{ID: "new", CreatedAt: now}, UserID: "u"},
		{DefaultModel: models.DefaultModel{ID: "other", CreatedAt: now}, UserID: "someone-else"},
	} {
		tx.Type = models.Expense
		tx.Amount = decimal.NewFromInt(int64(i + 1))
		suite.Require().Nil(models.Create(&tx))
	}

	first, err := models.List[models.Transaction]("u")
	suite.Require().Nil(err)
	suite.Require().Len(first, 2)
	suite.Assert().Equal("new", first[0].ID)
	suite.Assert().Equal("old", first[1].ID)

	// Listing twice without writes gives the same result
	second, err := models.List[models.Transaction]("u")
	suite.Require().Nil(err)
	suite.Assert().Equal(first, second)
}

func (suite *TestSuiteStandard) TestListCategoriesIncludesGlobal() {
	owner := "u"
	other := "v"
	suite.Require().Nil(models.Create(&models.Category{DefaultModel: models.DefaultModel{ID: "mine"}, Name: "Mine", Type: models.Expense, UserID: &owner}))
	suite.Require().Nil(models.Create(&models.Category{DefaultModel: models.DefaultModel{ID: "theirs"}, Name: "Theirs", Type: models.Expense, UserID: &other}))

	categories, err := models.ListCategories(owner)
	suite.Require().Nil(err)
	suite.Assert().Len(categories, len(models.DefaultCategories)+1)

	ids := make([]string, 0, len(categories))
	for _, c := range categories {
		ids = append(ids, c.ID)
	}
	suite.Assert().Contains(ids, "mine")
	suite.Assert().Contains(ids, "1")
	suite.Assert().NotContains(ids, "theirs")
}

func (suite *TestSuiteStandard) TestUpdateAndDelete() {
	b := models.Budget{DefaultModel: models.DefaultModel{ID: "b1"}, CategoryID: "1", Amount: decimal.NewFromInt(100), Period: models.PeriodMonth, UserID: "u"}
	suite.Require().Nil(models.Create(&b))

	err := models.Update("b1", models.Budget{CategoryID: "2", Amount: decimal.NewFromInt(200), Period: models.PeriodWeek}, "CategoryID", "Amount", "Period")
	suite.Require().Nil(err)

	var stored models.Budget
	suite.Require().Nil(models.DB.First(&stored, "id = ?", "b1").Error)
	suite.Assert().Equal("2", stored.CategoryID)
	suite.Assert().True(decimal.NewFromInt(200).Equal(stored.Amount))
	suite.Assert().Equal(models.PeriodWeek, stored.Period)

	suite.Require().Nil(models.Delete[models.Budget]("b1"))
	suite.Assert().ErrorIs(models.Delete[models.Budget]("b1"), models.ErrResourceNotFound)
}

func (suite *TestSuiteStandard) TestNotFound() {
	tests := []struct {
		name string
		fn   func() error
	}{
		{"Update transaction", func() error {
			return models.Update("missing", models.Transaction{Note: "x"}, "Note")
		}},
		{"Delete savings goal", func() error { return models.Delete[models.SavingsGoal]("missing") }},
		{"First recurring rule", func() error { return models.DB.First(&models.RecurringRule{}, "id = ?", "missing").Error }},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			suite.Assert().ErrorIs(tt.fn(), models.ErrResourceNotFound)
		})
	}
}

func (suite *TestSuiteStandard) TestAmountsStoredNonNegative() {
	tx := models.Transaction{DefaultModel: models.DefaultModel{ID: "neg"}, Type: models.Expense, Amount: decimal.NewFromInt(-500), UserID: "u"}
	suite.Require().Nil(models.Create(&tx))

	var stored models.Transaction
	suite.Require().Nil(models.DB.First(&stored, "id = ?", "neg").Error)
	suite.Assert().True(decimal.NewFromInt(500).Equal(stored.Amount))
}

func (suite *TestSuiteStandard) TestUpsertAndCreateMissing() {
	goals := []models.SavingsGoal{
		{DefaultModel: models.DefaultModel{ID: "g1"}, Name: "One", TargetAmount: decimal.NewFromInt(10), UserID: "u"},
	}
	suite.Require().Nil(models.Upsert(goals))

	goals[0].Name = "Renamed"
	suite.Require().Nil(models.Upsert(goals))

	var stored models.SavingsGoal
	suite.Require().Nil(models.DB.First(&stored, "id = ?", "g1").Error)
	suite.Assert().Equal("Renamed", stored.Name)

	created, err := models.CreateMissing([]models.SavingsGoal{
		{DefaultModel: models.DefaultModel{ID: "g1"}, Name: "Ignored", UserID: "u"},
		{DefaultModel: models.DefaultModel{ID: "g2"}, Name: "Two", UserID: "u"},
	})
	suite.Require().Nil(err)
	suite.Assert().Equal(int64(1), created)
}

func (suite *TestSuiteStandard) TestUpsertOwned() {
	suite.Require().Nil(models.Create(&models.Transaction{DefaultModel: models.DefaultModel{ID: "theirs"}, Type: models.Expense, Amount: decimal.NewFromInt(1), UserID: "v"}))
	suite.Require().Nil(models.Create(&models.Transaction{DefaultModel: models.DefaultModel{ID: "mine"}, Type: models.Expense, Amount: decimal.NewFromInt(1), UserID: "u"}))

	id := func(t models.Transaction) string { return t.ID }
	written, taken, err := models.UpsertOwned("u", []models.Transaction{
		{DefaultModel: models.DefaultModel{ID: "theirs"}, Type: models.Income, Amount: decimal.NewFromInt(9), UserID: "u"},
		{DefaultModel: models.DefaultModel{ID: "mine"}, Type: models.Income, Amount: decimal.NewFromInt(9), UserID: "u"},
		{DefaultModel: models.DefaultModel{ID: "new"}, Type: models.Income, Amount: decimal.NewFromInt(9), UserID: "u"},
	}, id)
	suite.Require().Nil(err)
	suite.Assert().Equal(2, written)
	suite.Assert().Equal([]string{"theirs"}, taken)

	var stored models.Transaction
	suite.Require().Nil(models.DB.First(&stored, "id = ?", "theirs").Error)
	suite.Assert().Equal("v", stored.UserID)
	suite.Assert().Equal(models.Expense, stored.Type)

	suite.Require().Nil(models.DB.First(&stored, "id = ?", "mine").Error)
	suite.Assert().Equal(models.Income, stored.Type)

	// Global categories are never overwritten
	owner := "u"
	written, taken, err = models.UpsertOwned("u", []models.Category{
		{DefaultModel: models.DefaultModel{ID: "1"}, Name: "Mine now", Type: models.Expense, UserID: &owner},
	}, func(c models.Category) string { return c.ID })
	suite.Require().Nil(err)
	suite.Assert().Equal(0, written)
	suite.Assert().Equal([]string{"1"}, taken)
}

func (suite *TestSuiteStandard) TestExportRegistry() {
	for _, model := range models.Registry {
		raw, err := model.Export()
		suite.Require().Nil(err)
		suite.Assert().NotEmpty(raw)
	}
}
