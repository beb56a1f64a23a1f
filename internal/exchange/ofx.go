package exchange

import (
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/HuyTapCode05/quanlythuchi/internal/models"
	"github.com/aclindsa/ofxgo"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// Categories assigned to transactions from bank statements.
const (
	OFXExpenseCategory = "8"  // Khác
	OFXIncomeCategory  = "13" // Thu nhập khác
)

var (
	severity    = regexp.MustCompile(`(?i)<SEVERITY>(Info|Warn|Error)</SEVERITY>`)
	unclosedTag = regexp.MustCompile(`(?m)^(\s*<[A-Z][A-Z0-9._]*[A-Z0-9])$`)
)

// preprocessOFX fixes formatting issues that banks commonly produce.
func preprocessOFX(content string) string {
	content = strings.TrimLeft(content, " \t\r\n")
	content = severity.ReplaceAllStringFunc(content, strings.ToUpper)
	return unclosedTag.ReplaceAllString(content, "$1>")
}

// ParseOFX reads the transactions of all bank and credit card statements
// in an OFX or QFX file.
//
// Debits become expenses and credits income. IDs are derived from the
// bank's transaction ID, so importing the same statement twice does not
// duplicate transactions.
func ParseOFX(r io.Reader, userID string) ([]models.Transaction, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read OFX file: %w", err)
	}

	resp, err := ofxgo.ParseResponse(strings.NewReader(preprocessOFX(string(content))))
	if err != nil {
		return nil, fmt.Errorf("failed to parse OFX file: %w", err)
	}

	transactions := make([]models.Transaction, 0)

	for _, msg := range resp.Bank {
		if stmt, ok := msg.(*ofxgo.StatementResponse); ok && stmt.BankTranList != nil {
			for _, t := range stmt.BankTranList.Transactions {
				transactions = append(transactions, convert(t, string(stmt.BankAcctFrom.AcctID), userID))
			}
		}
	}

	for _, msg := range resp.CreditCard {
		if stmt, ok := msg.(*ofxgo.CCStatementResponse); ok && stmt.BankTranList != nil {
			for _, t := range stmt.BankTranList.Transactions {
				transactions = append(transactions, convert(t, string(stmt.CCAcctFrom.AcctID), userID))
			}
		}
	}

	log.Debug().Int("transactions", len(transactions)).Int("bank", len(resp.Bank)).Int("creditCard", len(resp.CreditCard)).Msg("parsed OFX file")
	return transactions, nil
}

func convert(t ofxgo.Transaction, account, userID string) models.Transaction {
	amount, _ := t.TrnAmt.Float64()

	tx := models.Transaction{
		DefaultModel: models.DefaultModel{
			ID:        fmt.Sprintf("ofx-%s-%s", account, t.FiTID),
			CreatedAt: t.DtPosted.Time,
		},
		Type:     models.Expense,
		Amount:   decimal.NewFromFloat(amount).Abs(),
		Category: OFXExpenseCategory,
		Note:     description(t),
		UserID:   userID,
	}

	if amount > 0 {
		tx.Type = models.Income
		tx.Category = OFXIncomeCategory
	}

	return tx
}

// description prefers the payee over the name and the name over the memo.
func description(t ofxgo.Transaction) string {
	if t.Payee != nil && t.Payee.Name != "" {
		return strings.TrimSpace(string(t.Payee.Name))
	}

	if name := strings.TrimSpace(string(t.Name)); name != "" {
		return name
	}

	return strings.TrimSpace(string(t.Memo))
}

// ImportOFX parses a statement and creates the transactions that do not
// exist yet. It returns the parsed and the created count.
func ImportOFX(r io.Reader, userID string) (int, int64, error) {
	transactions, err := ParseOFX(r, userID)
	if err != nil {
		return 0, 0, err
	}

	created, err := models.CreateMissing(transactions)
	return len(transactions), created, err
}
