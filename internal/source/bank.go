package source

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/hollisb/penny/internal/model"
)

// BankActivityAdapter parses checking/savings activity exports with
// columns like: Date, ABA Num, Currency, Account Num, Account Name,
// Description, BAI Code, Amount, Serial Num, Ref Num. Files may be
// comma or tab delimited; the delimiter is sniffed from the header.
// One account per file: the account comes from the first data row.
type BankActivityAdapter struct {
	institution string
}

// NewBankActivityAdapter creates an adapter for the given institution.
func NewBankActivityAdapter(institution string) *BankActivityAdapter {
	return &BankActivityAdapter{institution: institution}
}

// Parse reads the export and emits a single debit-account statement.
// Posted date mirrors the transaction date; these exports only carry
// one date column.
func (a *BankActivityAdapter) Parse(_ context.Context, r io.Reader) ([]Statement, error) {
	header, records, err := readDelimited(r)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("bank activity export has no data rows")
	}

	for _, col := range []string{"Date", "Account Num", "Account Name", "Description", "Amount"} {
		if _, ok := header[col]; !ok {
			return nil, fmt.Errorf("bank activity export missing column %q", col)
		}
	}

	first := records[0]
	accountID := strings.TrimSpace(first[header["Account Num"]])
	accountName := strings.TrimSpace(first[header["Account Name"]])

	account := model.Account{
		ID:          accountID,
		Institution: a.institution,
		Name:        accountName,
		Type:        model.AccountTypeDebit,
	}

	rows := make([]model.Row, 0, len(records))
	for i, record := range records {
		txnDate, dateErr := parseDate(strings.TrimSpace(record[header["Date"]]))
		if dateErr != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, dateErr)
		}

		currency := ""
		if idx, ok := header["Currency"]; ok {
			currency = strings.TrimSpace(record[idx])
		}

		posted := txnDate
		rows = append(rows, model.Row{
			TxnDate:     txnDate,
			PostedDate:  &posted,
			Amount:      strings.TrimSpace(record[header["Amount"]]),
			Currency:    currency,
			Description: strings.TrimSpace(record[header["Description"]]),
			AccountID:   accountID,
		})
	}

	return []Statement{{Account: account, Rows: rows}}, nil
}

// readDelimited reads a comma- or tab-delimited export into a header
// index and data records. Header names are trimmed; ragged rows are
// tolerated and validated per column lookup.
func readDelimited(r io.Reader) (map[string]int, [][]string, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read export: %w", err)
	}

	text := string(content)
	firstLine, _, _ := strings.Cut(text, "\n")

	reader := csv.NewReader(strings.NewReader(text))
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1
	if strings.Contains(firstLine, "\t") {
		reader.Comma = '\t'
	}

	all, err := reader.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to parse export: %w", err)
	}
	if len(all) == 0 {
		return nil, nil, fmt.Errorf("export is empty")
	}

	header := make(map[string]int, len(all[0]))
	for i, name := range all[0] {
		header[strings.TrimSpace(name)] = i
	}

	var records [][]string
	for i, record := range all[1:] {
		if len(record) < len(all[0]) {
			slog.Warn("skipping short row", "row", i+2, "fields", len(record))
			continue
		}
		records = append(records, record)
	}

	return header, records, nil
}
