package api_test

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path"

	"github.com/HuyTapCode05/quanlythuchi/internal/controllers/api"
	"github.com/HuyTapCode05/quanlythuchi/internal/exchange"
	"github.com/HuyTapCode05/quanlythuchi/internal/models"
	"github.com/HuyTapCode05/quanlythuchi/test"
)

func (suite *TestSuiteStandard) loadTestFile(filePath string) (*bytes.Buffer, map[string]string) {
	body := new(bytes.Buffer)
	mw := multipart.NewWriter(body)

	file, err := os.Open(path.Join("../../../testdata", filePath))
	if err != nil {
		suite.Assert().Fail(err.Error())
	}
	defer file.Close()

	w, err := mw.CreateFormFile("file", filePath)
	if err != nil {
		suite.Assert().Fail(err.Error())
	}

	if _, err := io.Copy(w, file); err != nil {
		suite.Assert().Fail(err.Error())
	}

	mw.Close()

	return body, map[string]string{"Content-Type": mw.FormDataContentType()}
}

func (suite *TestSuiteStandard) TestExportImport() {
	_ = createTestTransaction(suite.T(), "a", map[string]any{"id": "t1", "note": "Phở", "category": "1"})
	_ = createTestTransaction(suite.T(), "a", map[string]any{"id": "t2", "type": "income", "amount": 15000000, "category": "9"})

	recorder := test.Request(suite.T(), http.MethodPost, "http://example.com/api/categories", map[string]any{"id": "pets", "name": "Thú cưng", "userId": "a"})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	recorder = test.Request(suite.T(), http.MethodGet, "http://example.com/api/export/a", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var document exchange.Document
	test.DecodeResponse(suite.T(), &recorder, &document)
	suite.Assert().Equal(exchange.Version, document.Version)
	suite.Assert().Len(document.Transactions, 2)
	suite.Assert().Len(document.Categories, len(models.DefaultCategories)+1)

	recorder = test.Request(suite.T(), http.MethodDelete, "http://example.com/api?confirm=yes-please-delete-everything", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)

	recorder = test.Request(suite.T(), http.MethodPost, "http://example.com/api/import/b", document)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var summary exchange.Summary
	test.DecodeResponse(suite.T(), &recorder, &summary)
	suite.Assert().Equal(2, summary.Transactions)
	suite.Assert().Equal(1, summary.Categories)
	suite.Assert().Empty(summary.Skipped)

	imported := listTransactions(suite.T(), "b", "")
	suite.Require().Len(imported, 2)
	for _, tx := range imported {
		suite.Assert().Equal("b", tx.UserID)
	}
	suite.Assert().Len(suite.listCategories("b"), len(models.DefaultCategories)+1)
}

func (suite *TestSuiteStandard) TestImportKeepsEntriesOfOtherUsers() {
	alice := registerTestUser(suite.T(), "alice@example.com")
	bob := registerTestUser(suite.T(), "bob@example.com")

	_ = createTestTransaction(suite.T(), alice.ID, map[string]any{"id": "t1", "note": "Phở"}, bearer(alice.Token))

	document := map[string]any{
		"version":      1,
		"categories":   []map[string]any{{"id": "1", "name": "Đổi tên", "type": "expense"}},
		"transactions": []map[string]any{{"id": "t1", "type": "expense", "amount": 1, "createdAt": "2024-03-15"}},
	}
	recorder := test.Request(suite.T(), http.MethodPost, "http://example.com/api/import/"+bob.ID, document, bearer(bob.Token))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var summary exchange.Summary
	test.DecodeResponse(suite.T(), &recorder, &summary)
	suite.Assert().Equal(0, summary.Categories)
	suite.Assert().Equal(0, summary.Transactions)
	suite.Assert().Equal([]string{"t1"}, summary.Conflicts)

	transactions := listTransactions(suite.T(), alice.ID, "", bearer(alice.Token))
	suite.Require().Len(transactions, 1)
	suite.Assert().Equal("Phở", transactions[0].Note)
	suite.Assert().Empty(listTransactions(suite.T(), bob.ID, "", bearer(bob.Token)))

	for _, c := range suite.listCategories(alice.ID) {
		if c.ID == "1" {
			suite.Assert().Equal(models.DefaultCategories[0].Name, c.Name)
		}
	}
}

func (suite *TestSuiteStandard) TestImportDocumentFails() {
	tests := []struct {
		name string
		body string
	}{
		{"Empty", ""},
		{"Broken", `{"transactions": [`},
		{"Future version", `{"version": 99}`},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			recorder := test.Request(suite.T(), http.MethodPost, "http://example.com/api/import/u1", tt.body)
			test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
		})
	}
}

func (suite *TestSuiteStandard) TestImportOFX() {
	body, headers := suite.loadTestFile("statement.ofx")
	recorder := test.Request(suite.T(), http.MethodPost, "http://example.com/api/import/u1/ofx", body, headers)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response api.OFXImportResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().Equal(2, response.Parsed)
	suite.Assert().Equal(int64(2), response.Created)
	suite.Assert().Len(listTransactions(suite.T(), "u1", ""), 2)

	body, headers = suite.loadTestFile("statement.ofx")
	recorder = test.Request(suite.T(), http.MethodPost, "http://example.com/api/import/u1/ofx", body, headers)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().Equal(int64(0), response.Created, "importing the same statement twice must not duplicate transactions")
}

func (suite *TestSuiteStandard) TestImportOFXFails() {
	recorder := test.Request(suite.T(), http.MethodPost, "http://example.com/api/import/u1/ofx", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
	suite.Assert().Equal("you must send a file to this endpoint", decodeError(suite.T(), &recorder))

	body := new(bytes.Buffer)
	mw := multipart.NewWriter(body)
	w, _ := mw.CreateFormFile("file", "statement.csv")
	_, _ = w.Write([]byte("date,amount\n"))
	mw.Close()

	recorder = test.Request(suite.T(), http.MethodPost, "http://example.com/api/import/u1/ofx", body, map[string]string{"Content-Type": mw.FormDataContentType()})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
	suite.Assert().Contains(decodeError(suite.T(), &recorder), ".ofx, .qfx")
}

func (suite *TestSuiteStandard) TestBackup() {
	_ = createTestTransaction(suite.T(), "u1", map[string]any{"id": "t1"})

	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/api/export", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var backup api.BackupResponse
	test.DecodeResponse(suite.T(), &recorder, &backup)
	for _, name := range []string{"Category", "Transaction", "Budget", "RecurringRule", "SavingsGoal"} {
		suite.Assert().Contains(backup.Data, name)
	}

	var transactions []models.Transaction
	suite.Require().Nil(json.Unmarshal(backup.Data["Transaction"], &transactions))
	suite.Assert().Len(transactions, 1)
}

func (suite *TestSuiteStandard) TestBackupForbiddenWithToken() {
	user := registerTestUser(suite.T(), "backup@example.com")

	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/api/export", "", bearer(user.Token))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusForbidden)
}
