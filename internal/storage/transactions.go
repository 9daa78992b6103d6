package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/hollisb/penny/internal/common"
	"github.com/hollisb/penny/internal/model"
	"github.com/hollisb/penny/internal/service"
)

const insertTransactionQuery = `
	INSERT INTO transactions(
		id, txn_date, posted_date, amount_cents, currency,
		description_raw, description_clean,
		account_id, category_id, dedupe_hash
	)
	VALUES(?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

// InsertTransaction attempts an atomic, uniqueness-checked insert.
// A dedupe hash collision reports StatusDuplicate and leaves the
// existing row untouched; all other constraint failures are errors.
func (s *SQLiteStorage) InsertTransaction(ctx context.Context, txn model.Transaction) (service.InsertStatus, error) {
	if err := validateContext(ctx); err != nil {
		return 0, err
	}
	return insertTransaction(ctx, s.db, txn)
}

// InsertTransaction runs the insert inside the transaction.
func (t *sqliteTx) InsertTransaction(ctx context.Context, txn model.Transaction) (service.InsertStatus, error) {
	if err := validateContext(ctx); err != nil {
		return 0, err
	}
	return insertTransaction(ctx, t.tx, txn)
}

func insertTransaction(ctx context.Context, q dbtx, txn model.Transaction) (service.InsertStatus, error) {
	if err := validateTransaction(&txn); err != nil {
		return 0, err
	}

	var postedDate any
	if txn.PostedDate != nil {
		postedDate = txn.PostedDate.Format(model.DateFormat)
	}
	var categoryID any
	if txn.CategoryID != nil {
		categoryID = *txn.CategoryID
	}

	_, err := q.ExecContext(ctx, insertTransactionQuery,
		txn.ID,
		txn.TxnDate.Format(model.DateFormat),
		postedDate,
		txn.AmountCents,
		txn.Currency,
		txn.DescriptionRaw,
		txn.DescriptionClean,
		txn.AccountID,
		categoryID,
		txn.DedupeHash,
	)
	if err != nil {
		classified := classifyConstraintErr(err)
		if errors.Is(classified, common.ErrDuplicateTransaction) {
			return service.StatusDuplicate, nil
		}
		return 0, fmt.Errorf("failed to insert transaction %s: %w", txn.ID, classified)
	}

	return service.StatusInserted, nil
}

// GetTransactionByFingerprint returns the transaction carrying the
// given dedupe hash, if any.
func (s *SQLiteStorage) GetTransactionByFingerprint(ctx context.Context, hash string) (*model.Transaction, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(hash, "hash"); err != nil {
		return nil, err
	}

	query := `
		SELECT id, txn_date, posted_date, amount_cents, currency,
		       description_raw, description_clean,
		       account_id, category_id, dedupe_hash, created_at
		FROM transactions
		WHERE dedupe_hash = ?`

	row := s.db.QueryRowContext(ctx, query, hash)
	txn, err := scanTransaction(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: transaction with fingerprint %s", common.ErrNotFound, hash)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query transaction: %w", err)
	}
	return txn, nil
}

// TransactionCount returns the number of transactions in the ledger.
func (s *SQLiteStorage) TransactionCount(ctx context.Context) (int, error) {
	if err := validateContext(ctx); err != nil {
		return 0, err
	}

	var count int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM transactions`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count transactions: %w", err)
	}
	return count, nil
}

func scanTransaction(row *sql.Row) (*model.Transaction, error) {
	var txn model.Transaction
	var txnDate, createdAt string
	var postedDate sql.NullString
	var categoryID sql.NullInt64

	err := row.Scan(
		&txn.ID, &txnDate, &postedDate, &txn.AmountCents, &txn.Currency,
		&txn.DescriptionRaw, &txn.DescriptionClean,
		&txn.AccountID, &categoryID, &txn.DedupeHash, &createdAt,
	)
	if err != nil {
		return nil, err
	}

	txn.TxnDate, err = time.Parse(model.DateFormat, txnDate)
	if err != nil {
		return nil, fmt.Errorf("failed to parse txn_date %q: %w", txnDate, err)
	}
	if postedDate.Valid {
		parsed, parseErr := time.Parse(model.DateFormat, postedDate.String)
		if parseErr != nil {
			return nil, fmt.Errorf("failed to parse posted_date %q: %w", postedDate.String, parseErr)
		}
		txn.PostedDate = &parsed
	}
	if categoryID.Valid {
		txn.CategoryID = &categoryID.Int64
	}
	// created_at is written by SQLite as "2006-01-02 15:04:05".
	txn.CreatedAt, err = time.Parse("2006-01-02 15:04:05", createdAt)
	if err != nil {
		return nil, fmt.Errorf("failed to parse created_at %q: %w", createdAt, err)
	}

	return &txn, nil
}
