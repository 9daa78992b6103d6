package main

import (
	"testing"
	"time"

	"github.com/hollisb/penny/internal/common"
	"github.com/hollisb/penny/internal/model"
	"github.com/hollisb/penny/internal/source"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAdapterRequiresInstitution(t *testing.T) {
	_, err := newAdapter("bank", "", "")
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrMissingConfig)

	var userErr *common.UserError
	require.ErrorAs(t, err, &userErr)
	assert.Equal(t, "missing --institution", userErr.UserMessage)
}

func TestNewAdapterUnknownFormat(t *testing.T) {
	_, err := newAdapter("quicken", "Chase", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown source format")
}

func TestParseTypeOverride(t *testing.T) {
	accountType, err := parseTypeOverride("")
	require.NoError(t, err)
	assert.Equal(t, model.AccountType(""), accountType)

	accountType, err = parseTypeOverride("credit")
	require.NoError(t, err)
	assert.Equal(t, model.AccountTypeCredit, accountType)

	_, err = parseTypeOverride("savings")
	require.Error(t, err)
	var userErr *common.UserError
	assert.ErrorAs(t, err, &userErr)
}

func TestApplyOverrides(t *testing.T) {
	date := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	stmt := source.Statement{
		Account: model.Account{ID: "4412", Type: model.AccountTypeDebit},
		Rows: []model.Row{
			{TxnDate: date, Amount: "-5.25", AccountID: "4412"},
			{TxnDate: date, Amount: "-9.99", AccountID: "4412"},
		},
	}

	applyOverrides(&stmt, "joint-checking", model.AccountTypeCredit)

	assert.Equal(t, "joint-checking", stmt.Account.ID)
	assert.Equal(t, model.AccountTypeCredit, stmt.Account.Type)
	for _, row := range stmt.Rows {
		assert.Equal(t, "joint-checking", row.AccountID)
	}
}

func TestApplyOverridesEmptyFlagsAreNoOps(t *testing.T) {
	stmt := source.Statement{
		Account: model.Account{ID: "4412", Type: model.AccountTypeDebit},
		Rows:    []model.Row{{AccountID: "4412"}},
	}

	applyOverrides(&stmt, "", "")

	assert.Equal(t, "4412", stmt.Account.ID)
	assert.Equal(t, model.AccountTypeDebit, stmt.Account.Type)
	assert.Equal(t, "4412", stmt.Rows[0].AccountID)
}
