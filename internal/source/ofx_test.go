package source

import (
	"context"
	"strings"
	"testing"

	"github.com/hollisb/penny/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testOFX = `OFXHEADER:100
DATA:OFXSGML
VERSION:102
SECURITY:NONE
ENCODING:USASCII
CHARSET:1252
COMPRESSION:NONE
OLDFILEUID:NONE
NEWFILEUID:NONE

<OFX>
<SIGNONMSGSRSV1>
<SONRS>
<STATUS>
<CODE>0
<SEVERITY>INFO
</STATUS>
<DTSERVER>20240315120000[0:GMT]
<LANGUAGE>ENG
</SONRS>
</SIGNONMSGSRSV1>
<BANKMSGSRSV1>
<STMTTRNRS>
<TRNUID>1
<STATUS>
<CODE>0
<SEVERITY>INFO
</STATUS>
<STMTRS>
<CURDEF>USD
<BANKACCTFROM>
<BANKID>123456789
<ACCTID>1234567890
<ACCTTYPE>CHECKING
</BANKACCTFROM>
<BANKTRANLIST>
<DTSTART>20240101120000[0:GMT]
<DTEND>20240131120000[0:GMT]
<STMTTRN>
<TRNTYPE>DEBIT
<DTPOSTED>20240115120000[0:GMT]
<TRNAMT>-25.50
<FITID>JAN01
<NAME>STARBUCKS
</STMTTRN>
<STMTTRN>
<TRNTYPE>CREDIT
<DTPOSTED>20240120120000[0:GMT]
<TRNAMT>1500.00
<FITID>JAN02
<NAME>PAYROLL ACME
</STMTTRN>
</BANKTRANLIST>
<LEDGERBAL>
<BALAMT>1000.00
<DTASOF>20240131120000[0:GMT]
</LEDGERBAL>
</STMTRS>
</STMTTRNRS>
</BANKMSGSRSV1>
</OFX>`

func TestOFXAdapterParse(t *testing.T) {
	adapter := NewOFXAdapter("Chase")

	statements, err := adapter.Parse(context.Background(), strings.NewReader(testOFX))
	require.NoError(t, err)
	require.Len(t, statements, 1)

	stmt := statements[0]
	assert.Equal(t, "1234567890", stmt.Account.ID)
	assert.Equal(t, "Chase", stmt.Account.Institution)
	assert.Equal(t, model.AccountTypeDebit, stmt.Account.Type)

	require.Len(t, stmt.Rows, 2)

	debit := stmt.Rows[0]
	assert.Equal(t, "2024-01-15", debit.TxnDate.Format(model.DateFormat))
	assert.Equal(t, "-25.50", debit.Amount)
	assert.Equal(t, "USD", debit.Currency)
	assert.Equal(t, "STARBUCKS", debit.Description)
	assert.Equal(t, "1234567890", debit.AccountID)

	credit := stmt.Rows[1]
	assert.Equal(t, "1500.00", credit.Amount)
	assert.Equal(t, "PAYROLL ACME", credit.Description)
}

func TestOFXAdapterRejectsGarbage(t *testing.T) {
	adapter := NewOFXAdapter("Chase")

	_, err := adapter.Parse(context.Background(), strings.NewReader("not an ofx file"))
	require.Error(t, err)
}

func TestPreprocess(t *testing.T) {
	// Mixed-case severity values and leading blank lines both appear
	// in real bank downloads.
	in := "\n\n  OFXHEADER:100\n<SEVERITY>Info</SEVERITY>\n"
	out := preprocess(in)
	assert.True(t, strings.HasPrefix(out, "OFXHEADER"))
	assert.Contains(t, out, "<SEVERITY>INFO</SEVERITY>")
}
