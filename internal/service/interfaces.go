// Package service defines the interfaces for all application services.
package service

import (
	"context"

	"github.com/hollisb/penny/internal/model"
)

// InsertStatus is the outcome of a single transaction insert attempt.
// Duplicate detection is expected control flow, not an error, so it is
// reported as a status rather than forcing callers to sniff error types.
type InsertStatus int

const (
	// StatusInserted means a new row was written.
	StatusInserted InsertStatus = iota
	// StatusDuplicate means the dedupe hash already existed and the
	// row was left untouched.
	StatusDuplicate
)

// Store defines the contract for the persistence layer.
type Store interface {
	LedgerWriter

	// Read operations backing the CLI.
	GetAccount(ctx context.Context, accountID string) (*model.Account, error)
	ListAccounts(ctx context.Context) ([]model.Account, error)
	GetTransactionByFingerprint(ctx context.Context, hash string) (*model.Transaction, error)
	TransactionCount(ctx context.Context) (int, error)
	ListCategories(ctx context.Context) ([]model.Category, error)
	CreateCategory(ctx context.Context, name string, parentID *int64) (*model.Category, error)

	// Database management.
	Migrate(ctx context.Context) error
	SchemaVersion(ctx context.Context) (int, error)
	BeginTx(ctx context.Context) (Tx, error)
	Close() error
}

// LedgerWriter holds the write operations the ingestion engine needs.
type LedgerWriter interface {
	UpsertAccount(ctx context.Context, account model.Account) error
	InsertTransaction(ctx context.Context, txn model.Transaction) (InsertStatus, error)
}

// Tx is a database transaction scoped over the write operations. All
// inserts of one ingestion run share a Tx so the batch becomes visible
// as a single durable unit.
type Tx interface {
	LedgerWriter
	Commit() error
	Rollback() error
}
