package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/hollisb/penny/internal/common"
	"github.com/hollisb/penny/internal/model"
)

// Validation errors.
var (
	ErrNilContext         = errors.New("context cannot be nil")
	ErrEmptyString        = errors.New("string parameter cannot be empty")
	ErrInvalidAccount     = errors.New("invalid account")
	ErrInvalidTransaction = errors.New("invalid transaction")
)

// validateContext ensures the context is not nil.
func validateContext(ctx context.Context) error {
	if ctx == nil {
		return ErrNilContext
	}
	return nil
}

// validateString ensures a string parameter is not empty.
func validateString(s string, paramName string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("%w: %s", ErrEmptyString, paramName)
	}
	return nil
}

// validateAccount validates an account before it reaches the store.
// A bad type is caught here so the caller fails fast instead of
// waiting for the CHECK constraint; both paths report the same kind.
func validateAccount(account model.Account) error {
	if account.ID == "" {
		return fmt.Errorf("%w: missing account ID", ErrInvalidAccount)
	}
	if err := account.Type.Validate(); err != nil {
		return fmt.Errorf("%w: %q", common.ErrInvalidAccountType, account.Type)
	}
	return nil
}

// validateTransaction validates a transaction before insert. The raw
// description may legitimately be empty; the identity fields may not.
func validateTransaction(txn *model.Transaction) error {
	if txn == nil {
		return fmt.Errorf("%w: nil transaction", ErrInvalidTransaction)
	}
	if txn.ID == "" {
		return fmt.Errorf("%w: missing ID", ErrInvalidTransaction)
	}
	if txn.TxnDate.IsZero() {
		return fmt.Errorf("%w: missing transaction date", ErrInvalidTransaction)
	}
	if txn.AccountID == "" {
		return fmt.Errorf("%w: missing account ID", ErrInvalidTransaction)
	}
	if txn.DedupeHash == "" {
		return fmt.Errorf("%w: missing dedupe hash", ErrInvalidTransaction)
	}
	return nil
}
