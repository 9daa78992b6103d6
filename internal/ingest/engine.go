// Package ingest implements the normalization and deduplication
// pipeline that turns adapter rows into ledger transactions.
package ingest

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/hollisb/penny/internal/model"
	"github.com/hollisb/penny/internal/normalize"
	"github.com/hollisb/penny/internal/service"

	"github.com/google/uuid"
)

// DefaultCurrency is the home currency assumed when a source omits one.
const DefaultCurrency = "USD"

// Engine orchestrates one ingestion run: register the account, then
// normalize, fingerprint, and insert each row exactly once.
type Engine struct {
	store    service.Store
	cleaner  *normalize.Cleaner
	currency string
}

// New creates an ingestion engine. A nil cleaner selects the default
// noise list; an empty currency selects DefaultCurrency.
func New(store service.Store, cleaner *normalize.Cleaner, currency string) *Engine {
	if cleaner == nil {
		cleaner = normalize.NewCleaner(nil)
	}
	if currency == "" {
		currency = DefaultCurrency
	}
	return &Engine{
		store:    store,
		cleaner:  cleaner,
		currency: currency,
	}
}

// Run ingests a batch of rows for one account inside a single database
// transaction: every accepted insert becomes visible together on
// commit, and a fatal error rolls the whole batch back. Rows whose
// fingerprint already exists are counted as skips and never abort the
// run; any other failure does, immediately, with the partial summary
// discarded. There is no per-row recovery for a bad amount.
func (e *Engine) Run(ctx context.Context, account model.Account, rows []model.Row) (model.RunSummary, error) {
	var summary model.RunSummary

	tx, err := e.store.BeginTx(ctx)
	if err != nil {
		return model.RunSummary{}, err
	}
	// Rollback is a no-op after a successful commit.
	defer func() { _ = tx.Rollback() }()

	// The account row must exist before any transaction references it.
	if err := tx.UpsertAccount(ctx, account); err != nil {
		return model.RunSummary{}, fmt.Errorf("failed to register account %s: %w", account.ID, err)
	}

	for i, row := range rows {
		txn, buildErr := e.buildTransaction(row)
		if buildErr != nil {
			return model.RunSummary{}, fmt.Errorf("row %d: %w", i+1, buildErr)
		}

		status, insertErr := tx.InsertTransaction(ctx, *txn)
		if insertErr != nil {
			return model.RunSummary{}, fmt.Errorf("row %d: %w", i+1, insertErr)
		}

		switch status {
		case service.StatusInserted:
			summary.Inserted++
		case service.StatusDuplicate:
			summary.Skipped++
			slog.Debug("skipped duplicate transaction",
				"txn_date", txn.TxnDate.Format(model.DateFormat),
				"amount_cents", txn.AmountCents,
				"account_id", txn.AccountID)
		}
	}

	if err := tx.Commit(); err != nil {
		return model.RunSummary{}, fmt.Errorf("failed to commit ingestion run: %w", err)
	}

	slog.Info("ingestion run complete",
		"account_id", account.ID,
		"inserted", summary.Inserted,
		"skipped", summary.Skipped)

	return summary, nil
}

// buildTransaction normalizes one row into an insertable transaction.
func (e *Engine) buildTransaction(row model.Row) (*model.Transaction, error) {
	amountCents, err := normalize.ToCents(row.Amount)
	if err != nil {
		return nil, err
	}

	descClean := e.cleaner.Clean(row.Description)
	txnDate := row.TxnDate.Format(model.DateFormat)

	currency := row.Currency
	if currency == "" {
		currency = e.currency
	}

	return &model.Transaction{
		ID:               uuid.NewString(),
		TxnDate:          row.TxnDate,
		PostedDate:       row.PostedDate,
		AmountCents:      amountCents,
		Currency:         currency,
		DescriptionRaw:   row.Description,
		DescriptionClean: descClean,
		AccountID:        row.AccountID,
		DedupeHash:       normalize.Fingerprint(txnDate, amountCents, descClean, row.AccountID),
	}, nil
}
