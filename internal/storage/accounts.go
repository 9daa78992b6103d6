package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/hollisb/penny/internal/common"
	"github.com/hollisb/penny/internal/model"
)

const upsertAccountQuery = `
	INSERT INTO accounts(account_id, institution, name, type)
	VALUES(?, ?, ?, ?)
	ON CONFLICT(account_id) DO UPDATE SET
	  institution = excluded.institution,
	  name = excluded.name,
	  type = excluded.type`

// UpsertAccount inserts the account or overwrites every non-key field
// of an existing row. Registering the same identifier repeatedly is
// the normal case: last write wins.
func (s *SQLiteStorage) UpsertAccount(ctx context.Context, account model.Account) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	return upsertAccount(ctx, s.db, account)
}

// UpsertAccount runs the upsert inside the transaction.
func (t *sqliteTx) UpsertAccount(ctx context.Context, account model.Account) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	return upsertAccount(ctx, t.tx, account)
}

func upsertAccount(ctx context.Context, q dbtx, account model.Account) error {
	if err := validateAccount(account); err != nil {
		return err
	}

	_, err := q.ExecContext(ctx, upsertAccountQuery,
		account.ID, account.Institution, account.Name, string(account.Type))
	if err != nil {
		return fmt.Errorf("failed to upsert account %s: %w", account.ID, classifyConstraintErr(err))
	}

	slog.Debug("upserted account", "account_id", account.ID, "institution", account.Institution)
	return nil
}

// GetAccount returns the account with the given identifier.
func (s *SQLiteStorage) GetAccount(ctx context.Context, accountID string) (*model.Account, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(accountID, "accountID"); err != nil {
		return nil, err
	}

	query := `
		SELECT account_id, institution, name, type
		FROM accounts
		WHERE account_id = ?`

	var account model.Account
	var accountType string
	err := s.db.QueryRowContext(ctx, query, accountID).Scan(
		&account.ID, &account.Institution, &account.Name, &accountType)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: account %s", common.ErrNotFound, accountID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query account: %w", err)
	}

	account.Type = model.AccountType(accountType)
	return &account, nil
}

// ListAccounts returns all registered accounts ordered by identifier.
func (s *SQLiteStorage) ListAccounts(ctx context.Context) ([]model.Account, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	query := `
		SELECT account_id, institution, name, type
		FROM accounts
		ORDER BY account_id`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query accounts: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var accounts []model.Account
	for rows.Next() {
		var account model.Account
		var accountType string
		if err := rows.Scan(&account.ID, &account.Institution, &account.Name, &accountType); err != nil {
			return nil, fmt.Errorf("failed to scan account: %w", err)
		}
		account.Type = model.AccountType(accountType)
		accounts = append(accounts, account)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating accounts: %w", err)
	}

	return accounts, nil
}
