package source

import (
	"context"
	"strings"
	"testing"

	"github.com/hollisb/penny/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const cardCSV = `Transaction Date,Posted Date,Card No.,Description,Category,Debit,Credit
2024-02-01,2024-02-03,9876,STARBUCKS #4512 SEATTLE WA,Dining,5.25,
2024-02-05,2024-02-06,9876,AMZN Mktp US*1A2B3C,Shopping,42.10,
2024-02-10,,9876,PAYMENT RECEIVED - THANK YOU,,,250.00
`

func TestCardAdapterParse(t *testing.T) {
	adapter := NewCardAdapter("Capital One", "Chase Visa")

	statements, err := adapter.Parse(context.Background(), strings.NewReader(cardCSV))
	require.NoError(t, err)
	require.Len(t, statements, 1)

	stmt := statements[0]
	assert.Equal(t, model.Account{
		ID:          "9876",
		Institution: "Capital One",
		Name:        "Chase Visa",
		Type:        model.AccountTypeCredit,
	}, stmt.Account)

	require.Len(t, stmt.Rows, 3)

	// Charges come out negative (credit minus debit).
	charge := stmt.Rows[0]
	assert.Equal(t, "-5.25", charge.Amount)
	assert.Equal(t, "2024-02-01", charge.TxnDate.Format(model.DateFormat))
	require.NotNil(t, charge.PostedDate)
	assert.Equal(t, "2024-02-03", charge.PostedDate.Format(model.DateFormat))
	assert.Equal(t, "STARBUCKS #4512 SEATTLE WA", charge.Description)

	// Payments and refunds come out positive.
	payment := stmt.Rows[2]
	assert.Equal(t, "250", payment.Amount)
	assert.Nil(t, payment.PostedDate, "blank posted date means absent")
}

func TestCardAdapterMissingColumn(t *testing.T) {
	adapter := NewCardAdapter("Capital One", "Chase Visa")

	_, err := adapter.Parse(context.Background(), strings.NewReader("Transaction Date,Description\n2024-02-01,coffee\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing column")
}

func TestSignedAmount(t *testing.T) {
	tests := []struct {
		name   string
		credit string
		debit  string
		want   string
	}{
		{name: "charge", credit: "", debit: "5.25", want: "-5.25"},
		{name: "payment", credit: "250.00", debit: "", want: "250"},
		{name: "both cells blank", credit: "", debit: "", want: "0"},
		{name: "garbage counts as zero", credit: "n/a", debit: "12.00", want: "-12"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, signedAmount(tt.credit, tt.debit))
		})
	}
}
