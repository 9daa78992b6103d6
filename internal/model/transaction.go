package model

import "time"

// DateFormat is the ISO calendar-date layout used everywhere a date is
// persisted or hashed. Transactions carry no time component.
const DateFormat = "2006-01-02"

// Transaction is a normalized ledger entry. Immutable once inserted:
// re-importing the same economic event is rejected by the unique
// dedupe hash, never overwritten.
type Transaction struct {
	ID               string
	TxnDate          time.Time
	PostedDate       *time.Time
	AmountCents      int64 // signed; negative = outflow
	Currency         string
	DescriptionRaw   string
	DescriptionClean string
	AccountID        string
	CategoryID       *int64 // always nil at ingestion time
	DedupeHash       string
	CreatedAt        time.Time
}

// Row is the intermediate shape every source adapter emits. The amount
// stays textual until the money normalizer converts it, so no float64
// ever sits between a statement file and the store.
type Row struct {
	TxnDate     time.Time
	PostedDate  *time.Time
	Amount      string
	Currency    string
	Description string
	AccountID   string
}

// RunSummary reports the outcome of one ingestion run.
type RunSummary struct {
	Inserted int
	Skipped  int
}

// Total returns the number of rows processed.
func (s RunSummary) Total() int {
	return s.Inserted + s.Skipped
}
