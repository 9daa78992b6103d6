// Package model defines the core domain types shared across the application.
package model

import "fmt"

// AccountType enumerates the kinds of accounts the ledger tracks.
type AccountType string

// Valid account types. The store enforces the same set with a CHECK constraint.
const (
	AccountTypeDebit  AccountType = "debit"
	AccountTypeCredit AccountType = "credit"
)

// Validate returns an error if the type is outside the enumerated set.
func (t AccountType) Validate() error {
	switch t {
	case AccountTypeDebit, AccountTypeCredit:
		return nil
	default:
		return fmt.Errorf("invalid account type: %q", string(t))
	}
}

// Account represents a bank or card account that transactions belong to.
// Accounts are upserted on every sighting; the last import wins per field.
type Account struct {
	ID          string
	Institution string
	Name        string
	Type        AccountType
}
