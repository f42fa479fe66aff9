package accounting

import (
	"testing"

	"github.com/SscSPs/sacco_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalBalance(t *testing.T) {
	d := decimal.RequireFromString("150.00")
	c := decimal.RequireFromString("50.00")

	tests := []struct {
		accountType domain.AccountType
		want        string
	}{
		{domain.Asset, "100"},
		{domain.Expense, "100"},
		{domain.Liability, "-100"},
		{domain.Equity, "-100"},
		{domain.Income, "-100"},
	}
	for _, tt := range tests {
		t.Run(string(tt.accountType), func(t *testing.T) {
			got, err := NormalBalance(tt.accountType, d, c)
			require.NoError(t, err)
			assert.True(t, got.Equal(decimal.RequireFromString(tt.want)), "got %s", got)
		})
	}

	_, err := NormalBalance("BOGUS", d, c)
	assert.Error(t, err)
}

func TestSumDraftLines(t *testing.T) {
	lines := []domain.LineDraft{
		{DebitAmount: decimal.RequireFromString("0.10"), CreditAmount: decimal.Zero},
		{DebitAmount: decimal.RequireFromString("0.20"), CreditAmount: decimal.Zero},
		{DebitAmount: decimal.Zero, CreditAmount: decimal.RequireFromString("0.30")},
	}
	debits, credits := SumDraftLines(lines)
	assert.True(t, debits.Equal(credits), "exact decimal sums must match: %s vs %s", debits, credits)
}

func TestIsOneSided(t *testing.T) {
	one := decimal.NewFromInt(1)
	assert.True(t, IsOneSided(one, decimal.Zero))
	assert.True(t, IsOneSided(decimal.Zero, one))
	assert.False(t, IsOneSided(one, one))
	assert.False(t, IsOneSided(decimal.Zero, decimal.Zero))
	assert.False(t, IsOneSided(one.Neg(), decimal.Zero))
	assert.False(t, IsOneSided(one, one.Neg()))
}

func TestFitsScale(t *testing.T) {
	assert.True(t, FitsScale(decimal.RequireFromString("10.25"), 2))
	assert.True(t, FitsScale(decimal.RequireFromString("10"), 2))
	assert.False(t, FitsScale(decimal.RequireFromString("10.255"), 2))
}
