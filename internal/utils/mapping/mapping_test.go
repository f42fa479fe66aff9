package mapping

import (
	"database/sql"
	"testing"

	"github.com/SscSPs/sacco_ledger/internal/core/domain"
	"github.com/SscSPs/sacco_ledger/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNullStringHelpers(t *testing.T) {
	assert.False(t, ToNullString(nil).Valid)

	empty := ""
	assert.False(t, ToNullString(&empty).Valid, "blank optional values are stored as NULL")

	id := "parent-1"
	ns := ToNullString(&id)
	assert.True(t, ns.Valid)
	assert.Equal(t, "parent-1", ns.String)

	assert.Nil(t, FromNullString(sql.NullString{}))
	got := FromNullString(sql.NullString{String: "m-1", Valid: true})
	require.NotNil(t, got)
	assert.Equal(t, "m-1", *got)
}

func TestToDomainJournalEntryLine_MemberAnnotation(t *testing.T) {
	m := models.JournalEntryLine{
		LineID:       "l-1",
		LineNumber:   2,
		AccountCode:  "2210",
		AccountName:  "Member Savings",
		MemberID:     sql.NullString{String: "member-7", Valid: true},
		CreditAmount: decimal.RequireFromString("500.00"),
		DebitAmount:  decimal.Zero,
	}
	d := ToDomainJournalEntryLine(m)
	assert.Equal(t, 2, d.LineNumber)
	assert.Equal(t, "2210", d.AccountCode)
	require.NotNil(t, d.MemberID)
	assert.Equal(t, "member-7", *d.MemberID)
	assert.True(t, d.CreditAmount.Equal(decimal.NewFromInt(500)))
}

func TestToModelAccount_SystemFlag(t *testing.T) {
	acc := domain.Account{AccountID: "a", Code: "1120", AccountType: domain.Asset, IsSystemAccount: true, IsActive: true}
	m := ToModelAccount(acc)
	assert.True(t, m.IsSystemAccount)
	assert.False(t, m.ParentAccountID.Valid)
	assert.Equal(t, acc, ToDomainAccount(m))
}
