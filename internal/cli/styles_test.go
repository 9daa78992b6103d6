package cli

import (
	"testing"

	"github.com/hollisb/penny/internal/model"

	"github.com/stretchr/testify/assert"
)

func TestFormatHelpers(t *testing.T) {
	assert.Contains(t, FormatSuccess("imported"), SuccessIcon+" imported")
	assert.Contains(t, FormatError("database locked"), ErrorIcon+" database locked")
	assert.Contains(t, FormatWarning("no files match *.qfx"), "no files match *.qfx")
	assert.Contains(t, FormatTitle("Accounts"), CoinIcon+" Accounts")
}

func TestRenderRunSummary(t *testing.T) {
	out := RenderRunSummary("checking.tsv (4412)", model.RunSummary{Inserted: 2, Skipped: 1})
	assert.Contains(t, out, "checking.tsv (4412)")
	assert.Contains(t, out, "inserted: 2")
	assert.Contains(t, out, "skipped (duplicates): 1")
}

func TestRenderAccountsTable(t *testing.T) {
	assert.Contains(t, RenderAccountsTable(nil), "no accounts registered")

	out := RenderAccountsTable([]model.Account{
		{ID: "4412", Institution: "Santander", Name: "Checking", Type: model.AccountTypeDebit},
	})
	assert.Contains(t, out, "4412")
	assert.Contains(t, out, "Santander")
	assert.Contains(t, out, "debit")
}
