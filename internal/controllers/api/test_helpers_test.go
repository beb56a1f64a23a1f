package api_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/HuyTapCode05/quanlythuchi/internal/controllers/api"
	"github.com/HuyTapCode05/quanlythuchi/internal/models"
	"github.com/HuyTapCode05/quanlythuchi/test"
)

type errorResponse struct {
	Error string `json:"error"`
}

func decodeError(t *testing.T, recorder *httptest.ResponseRecorder) string {
	var e errorResponse
	test.DecodeResponse(t, recorder, &e)
	return e.Error
}

// bearer returns the header map for the token.
func bearer(token string) map[string]string {
	return map[string]string{"Authorization": "Bearer " + token}
}

// registerTestUser registers a user and logs them in.
func registerTestUser(t *testing.T, email string) api.User {
	recorder := test.Request(t, http.MethodPost, "http://example.com/api/users/register", map[string]any{
		"name":     "Nguyễn Văn A",
		"email":    email,
		"password": "mật khẩu",
	})
	test.AssertHTTPStatus(t, &recorder, http.StatusOK)

	recorder = test.Request(t, http.MethodPost, "http://example.com/api/users/login", map[string]any{
		"email":    email,
		"password": "mật khẩu",
	})
	test.AssertHTTPStatus(t, &recorder, http.StatusOK)

	var user api.User
	test.DecodeResponse(t, &recorder, &user)
	return user
}

// createTestTransaction creates a transaction, filling the required
// fields that are not set.
func createTestTransaction(t *testing.T, userID string, body map[string]any, headers ...map[string]string) models.Transaction {
	defaults := map[string]any{
		"type":      "expense",
		"amount":    10000,
		"userId":    userID,
		"createdAt": "2024-03-15",
	}
	for k, v := range defaults {
		if _, ok := body[k]; !ok {
			body[k] = v
		}
	}
	if _, ok := body["id"]; !ok {
		body["id"] = fmt.Sprintf("tx-%d", len(listTransactions(t, userID, "", headers...)))
	}

	recorder := test.Request(t, http.MethodPost, "http://example.com/api/transactions", body, headers...)
	test.AssertHTTPStatus(t, &recorder, http.StatusOK)

	var transaction models.Transaction
	test.DecodeResponse(t, &recorder, &transaction)
	return transaction
}

func listTransactions(t *testing.T, userID, query string, headers ...map[string]string) []models.Transaction {
	recorder := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/api/transactions/%s%s", userID, query), "", headers...)
	test.AssertHTTPStatus(t, &recorder, http.StatusOK)

	var transactions []models.Transaction
	test.DecodeResponse(t, &recorder, &transactions)
	return transactions
}
