package source

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"regexp"
	"strings"
	"time"

	"github.com/hollisb/penny/internal/model"

	"github.com/aclindsa/ofxgo"
)

// OFXAdapter parses OFX/QFX statement downloads. A single file can
// hold several statements; each becomes its own Statement with bank
// accounts registered as debit and card accounts as credit. OFX
// amounts are already signed, with outflows negative.
type OFXAdapter struct {
	institution string
}

// NewOFXAdapter creates an adapter for the given institution.
func NewOFXAdapter(institution string) *OFXAdapter {
	return &OFXAdapter{institution: institution}
}

var (
	severityRe = regexp.MustCompile(`(?i)<SEVERITY>(Info|Warn|Error)</SEVERITY>`)
	openTagRe  = regexp.MustCompile(`(?m)^(\s*<[A-Z][A-Z0-9._]*[A-Z0-9])$`)
)

// preprocess fixes formatting quirks banks ship in SGML-style OFX:
// leading blank lines, mixed-case SEVERITY values, and opening tags
// missing their closing bracket.
func preprocess(content string) string {
	content = strings.TrimLeft(content, " \t\r\n")
	content = severityRe.ReplaceAllStringFunc(content, strings.ToUpper)
	content = openTagRe.ReplaceAllString(content, "$1>")
	return content
}

// Parse reads an OFX/QFX file and emits one statement per account in it.
func (a *OFXAdapter) Parse(_ context.Context, r io.Reader) ([]Statement, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read OFX file: %w", err)
	}

	resp, err := ofxgo.ParseResponse(strings.NewReader(preprocess(string(content))))
	if err != nil {
		return nil, fmt.Errorf("failed to parse OFX file: %w", err)
	}

	var statements []Statement

	for _, msg := range resp.Bank {
		stmt, ok := msg.(*ofxgo.StatementResponse)
		if !ok || stmt.BankTranList == nil {
			continue
		}
		accountID := string(stmt.BankAcctFrom.AcctID)
		statements = append(statements, Statement{
			Account: model.Account{
				ID:          accountID,
				Institution: a.institution,
				Name:        accountID,
				Type:        model.AccountTypeDebit,
			},
			Rows: a.convertRows(stmt.BankTranList.Transactions, accountID, stmt.CurDef.String()),
		})
	}

	for _, msg := range resp.CreditCard {
		stmt, ok := msg.(*ofxgo.CCStatementResponse)
		if !ok || stmt.BankTranList == nil {
			continue
		}
		accountID := string(stmt.CCAcctFrom.AcctID)
		statements = append(statements, Statement{
			Account: model.Account{
				ID:          accountID,
				Institution: a.institution,
				Name:        accountID,
				Type:        model.AccountTypeCredit,
			},
			Rows: a.convertRows(stmt.BankTranList.Transactions, accountID, stmt.CurDef.String()),
		})
	}

	if len(statements) == 0 {
		return nil, fmt.Errorf("OFX file contains no statements")
	}

	slog.Info("parsed OFX file", "statements", len(statements))
	return statements, nil
}

func (a *OFXAdapter) convertRows(trns []ofxgo.Transaction, accountID, currency string) []model.Row {
	rows := make([]model.Row, 0, len(trns))
	for _, trn := range trns {
		posted := trn.DtPosted.Time
		date := time.Date(posted.Year(), posted.Month(), posted.Day(), 0, 0, 0, 0, time.UTC)

		desc := string(trn.Name)
		if desc == "" && trn.Payee != nil {
			desc = string(trn.Payee.Name)
		}
		if trn.Memo != "" {
			desc = strings.TrimSpace(desc + " " + string(trn.Memo))
		}

		postedDate := date
		rows = append(rows, model.Row{
			TxnDate:     date,
			PostedDate:  &postedDate,
			Amount:      trn.TrnAmt.FloatString(2),
			Currency:    currency,
			Description: desc,
			AccountID:   accountID,
		})
	}
	return rows
}
