package source

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/hollisb/penny/internal/model"

	"github.com/shopspring/decimal"
)

// CardAdapter parses credit card exports with columns: Transaction
// Date, Posted Date, Card No., Description, Category, Debit, Credit.
// Charges land in the Debit column and payments/refunds in Credit, so
// the signed amount is credit minus debit: expenses come out negative.
type CardAdapter struct {
	institution string
	cardName    string
}

// NewCardAdapter creates an adapter for one card. The card name is the
// account display name; exports carry only the card number.
func NewCardAdapter(institution, cardName string) *CardAdapter {
	return &CardAdapter{institution: institution, cardName: cardName}
}

// Parse reads the export and emits a single credit-account statement.
func (a *CardAdapter) Parse(_ context.Context, r io.Reader) ([]Statement, error) {
	header, records, err := readDelimited(r)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("card export has no data rows")
	}

	for _, col := range []string{"Transaction Date", "Posted Date", "Card No.", "Description", "Debit", "Credit"} {
		if _, ok := header[col]; !ok {
			return nil, fmt.Errorf("card export missing column %q", col)
		}
	}

	accountID := strings.TrimSpace(records[0][header["Card No."]])
	account := model.Account{
		ID:          accountID,
		Institution: a.institution,
		Name:        a.cardName,
		Type:        model.AccountTypeCredit,
	}

	rows := make([]model.Row, 0, len(records))
	for i, record := range records {
		txnDate, dateErr := parseDate(strings.TrimSpace(record[header["Transaction Date"]]))
		if dateErr != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, dateErr)
		}

		row := model.Row{
			TxnDate:     txnDate,
			Amount:      signedAmount(record[header["Credit"]], record[header["Debit"]]),
			Description: strings.TrimSpace(record[header["Description"]]),
			AccountID:   accountID,
		}
		// Posted date is best effort: an unparseable cell means absent.
		if p, pErr := parseDate(strings.TrimSpace(record[header["Posted Date"]])); pErr == nil {
			row.PostedDate = &p
		}
		rows = append(rows, row)
	}

	return []Statement{{Account: account, Rows: rows}}, nil
}

// signedAmount computes credit minus debit exactly. Empty or
// unparseable cells count as zero, matching how these exports leave
// the unused column blank.
func signedAmount(creditCell, debitCell string) string {
	credit := parseCell(creditCell)
	debit := parseCell(debitCell)
	return credit.Sub(debit).String()
}

func parseCell(cell string) decimal.Decimal {
	d, err := decimal.NewFromString(strings.TrimSpace(cell))
	if err != nil {
		return decimal.Zero
	}
	return d
}
