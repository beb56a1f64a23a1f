package api_test

import (
	"net/http"

	"github.com/HuyTapCode05/quanlythuchi/internal/models"
	"github.com/HuyTapCode05/quanlythuchi/internal/normalize"
	"github.com/HuyTapCode05/quanlythuchi/test"
)

func (suite *TestSuiteStandard) listCategories(userID string, headers ...map[string]string) []models.Category {
	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/api/categories/"+userID, "", headers...)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var categories []models.Category
	test.DecodeResponse(suite.T(), &recorder, &categories)
	return categories
}

func (suite *TestSuiteStandard) TestGetCategoriesDefaults() {
	categories := suite.listCategories("u1")
	suite.Require().Len(categories, len(models.DefaultCategories))

	for _, c := range categories {
		suite.Assert().Nil(c.UserID, "category %s must be global", c.ID)
	}
}

func (suite *TestSuiteStandard) TestCreateCategoryDefaults() {
	recorder := test.Request(suite.T(), http.MethodPost, "http://example.com/api/categories", map[string]any{
		"name":   "  Cà phê ",
		"type":   "INCOME",
		"userId": "u1",
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var category models.Category
	test.DecodeResponse(suite.T(), &recorder, &category)
	suite.Assert().Equal("Cà phê", category.Name)
	suite.Assert().Equal(models.Income, category.Type)
	suite.Assert().Equal(normalize.DefaultCategoryColor, category.Color)
	suite.Assert().Equal(normalize.DefaultCategoryIcon, category.Icon)
	suite.Assert().NotEmpty(category.ID)
	suite.Require().NotNil(category.UserID)
	suite.Assert().Equal("u1", *category.UserID)

	suite.Assert().Len(suite.listCategories("u1"), len(models.DefaultCategories)+1)
	suite.Assert().Len(suite.listCategories("u2"), len(models.DefaultCategories), "categories of other users must not be visible")
}

func (suite *TestSuiteStandard) TestCreateCategoryOwnedByTokenUser() {
	user := registerTestUser(suite.T(), "an@example.com")

	recorder := test.Request(suite.T(), http.MethodPost, "http://example.com/api/categories", map[string]any{"name": "Thú cưng"}, bearer(user.Token))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var category models.Category
	test.DecodeResponse(suite.T(), &recorder, &category)
	suite.Require().NotNil(category.UserID)
	suite.Assert().Equal(user.ID, *category.UserID)
	suite.Assert().Equal(models.Expense, category.Type)
}

func (suite *TestSuiteStandard) TestUpdateCategory() {
	recorder := test.Request(suite.T(), http.MethodPut, "http://example.com/api/categories/1", map[string]any{"name": "Ăn sáng", "color": "#000000"})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	for _, c := range suite.listCategories("u1") {
		if c.ID != "1" {
			continue
		}
		suite.Assert().Equal("Ăn sáng", c.Name)
		suite.Assert().Equal("#000000", c.Color)
		suite.Assert().Equal("🍔", c.Icon)
		suite.Assert().Nil(c.UserID)
	}
}

func (suite *TestSuiteStandard) TestUpdateCategoryOfOtherUser() {
	owner := registerTestUser(suite.T(), "owner@example.com")
	other := registerTestUser(suite.T(), "other@example.com")

	recorder := test.Request(suite.T(), http.MethodPost, "http://example.com/api/categories", map[string]any{"id": "pets", "name": "Thú cưng"}, bearer(owner.Token))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	recorder = test.Request(suite.T(), http.MethodPut, "http://example.com/api/categories/pets", map[string]any{"name": "Mèo"}, bearer(other.Token))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusForbidden)

	recorder = test.Request(suite.T(), http.MethodDelete, "http://example.com/api/categories/pets", "", bearer(other.Token))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusForbidden)

	recorder = test.Request(suite.T(), http.MethodDelete, "http://example.com/api/categories/pets", "", bearer(owner.Token))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)
}

func (suite *TestSuiteStandard) TestDeleteCategory() {
	recorder := test.Request(suite.T(), http.MethodDelete, "http://example.com/api/categories/8", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)
	suite.Assert().Len(suite.listCategories("u1"), len(models.DefaultCategories)-1)

	recorder = test.Request(suite.T(), http.MethodDelete, "http://example.com/api/categories/8", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
}
