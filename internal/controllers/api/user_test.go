package api_test

import (
	"net/http"
	"strings"
	"testing"

	"github.com/HuyTapCode05/quanlythuchi/internal/auth"
	"github.com/HuyTapCode05/quanlythuchi/internal/controllers/api"
	"github.com/HuyTapCode05/quanlythuchi/internal/models"
	"github.com/HuyTapCode05/quanlythuchi/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

// TestRegisterLoginAddExpense walks through the first steps of a new user.
func (suite *TestSuiteStandard) TestRegisterLoginAddExpense() {
	recorder := test.Request(suite.T(), http.MethodPost, "http://example.com/api/users/register", map[string]any{
		"name":     "Trần Thị B",
		"email":    "b@example.com",
		"password": "bí mật",
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var registered api.User
	test.DecodeResponse(suite.T(), &recorder, &registered)
	suite.Assert().NotEmpty(registered.ID)
	suite.Assert().Equal("Trần Thị B", registered.Name)
	suite.Assert().Equal("b@example.com", registered.Email)
	suite.Assert().Empty(registered.Token)
	suite.Assert().NotContains(recorder.Body.String(), "password")

	recorder = test.Request(suite.T(), http.MethodPost, "http://example.com/api/users/login", map[string]any{
		"email":    "b@example.com",
		"password": "bí mật",
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var user api.User
	test.DecodeResponse(suite.T(), &recorder, &user)
	suite.Require().Equal(registered.ID, user.ID)
	suite.Require().NotEmpty(user.Token)

	created := createTestTransaction(suite.T(), user.ID, map[string]any{
		"id":       "lq2v8x1k4f9ab",
		"amount":   50000,
		"category": "1",
		"note":     "Phở bò",
	}, bearer(user.Token))
	suite.Assert().Equal(models.Expense, created.Type)

	transactions := listTransactions(suite.T(), user.ID, "", bearer(user.Token))
	suite.Require().Len(transactions, 1)
	suite.Assert().Equal("lq2v8x1k4f9ab", transactions[0].ID)
	suite.Assert().True(decimal.NewFromInt(50000).Equal(transactions[0].Amount))
	suite.Assert().Equal("1", transactions[0].Category)
	suite.Assert().Equal(user.ID, transactions[0].UserID)
}

func (suite *TestSuiteStandard) TestRegisterDuplicateEmail() {
	_ = registerTestUser(suite.T(), "a@example.com")

	recorder := test.Request(suite.T(), http.MethodPost, "http://example.com/api/users/register", map[string]any{
		"name":     "Someone else",
		"email":    "a@example.com",
		"password": "other",
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
	suite.Assert().Equal(models.ErrEmailInUse.Error(), decodeError(suite.T(), &recorder))
}

func (suite *TestSuiteStandard) TestRegisterPasswordTooLong() {
	recorder := test.Request(suite.T(), http.MethodPost, "http://example.com/api/users/register", map[string]any{
		"name":     "Nguyễn Văn A",
		"email":    "long@example.com",
		"password": strings.Repeat("mật", 20),
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
	suite.Assert().Equal(auth.ErrPasswordTooLong.Error(), decodeError(suite.T(), &recorder))
}

func (suite *TestSuiteStandard) TestRegisterMissingFields() {
	recorder := test.Request(suite.T(), http.MethodPost, "http://example.com/api/users/register", map[string]any{
		"name":  "Nguyễn Văn A",
		"email": "  ",
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
	suite.Assert().Equal("missing required fields: email, password", decodeError(suite.T(), &recorder))
}

func (suite *TestSuiteStandard) TestRegisterDatabaseError() {
	suite.CloseDB()

	recorder := test.Request(suite.T(), http.MethodPost, "http://example.com/api/users/register", map[string]any{
		"name":     "Nguyễn Văn A",
		"email":    "a@example.com",
		"password": "secret",
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusInternalServerError)
}

func (suite *TestSuiteStandard) TestLoginFails() {
	_ = registerTestUser(suite.T(), "a@example.com")

	tests := []struct {
		name     string
		email    string
		password string
	}{
		{"Wrong password", "a@example.com", "wrong"},
		{"Unknown email", "nobody@example.com", "mật khẩu"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			recorder := test.Request(t, http.MethodPost, "http://example.com/api/users/login", map[string]any{
				"email":    tt.email,
				"password": tt.password,
			})
			test.AssertHTTPStatus(t, &recorder, http.StatusUnauthorized)
			assert.Equal(t, "invalid email or password", decodeError(t, &recorder))
		})
	}
}

func (suite *TestSuiteStandard) TestLoginEmptyBody() {
	recorder := test.Request(suite.T(), http.MethodPost, "http://example.com/api/users/login", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestTokenScopesUser() {
	a := registerTestUser(suite.T(), "a@example.com")
	b := registerTestUser(suite.T(), "b@example.com")

	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/api/transactions/"+b.ID, "", bearer(a.Token))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusForbidden)

	recorder = test.Request(suite.T(), http.MethodPost, "http://example.com/api/transactions", map[string]any{
		"id":        "foreign",
		"type":      "expense",
		"amount":    1,
		"userId":    b.ID,
		"createdAt": "2024-03-15",
	}, bearer(a.Token))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusForbidden)

	created := createTestTransaction(suite.T(), b.ID, map[string]any{"id": "mine"}, bearer(b.Token))
	recorder = test.Request(suite.T(), http.MethodDelete, "http://example.com/api/transactions/"+created.ID, "", bearer(a.Token))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusForbidden)
}
