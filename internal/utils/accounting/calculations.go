package accounting

import (
	"fmt"

	"github.com/SscSPs/sacco_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// NormalBalance returns the signed balance of an account given its debit and credit totals.
// This is used in both services and repositories to ensure consistent accounting logic.
func NormalBalance(accountType domain.AccountType, debit, credit decimal.Decimal) (decimal.Decimal, error) {
	// DEBIT-normal: ASSET/EXPENSE -> debit - credit
	// CREDIT-normal: LIABILITY/EQUITY/INCOME -> credit - debit
	switch accountType {
	case domain.Asset, domain.Expense:
		return debit.Sub(credit), nil
	case domain.Liability, domain.Equity, domain.Income:
		return credit.Sub(debit), nil
	default:
		return decimal.Zero, fmt.Errorf("unknown account type '%s'", accountType)
	}
}

// SumDraftLines returns the exact debit and credit totals of a draft.
func SumDraftLines(lines []domain.LineDraft) (debits, credits decimal.Decimal) {
	debits, credits = decimal.Zero, decimal.Zero
	for _, l := range lines {
		debits = debits.Add(l.DebitAmount)
		credits = credits.Add(l.CreditAmount)
	}
	return debits, credits
}

// IsOneSided reports whether exactly one of debit and credit is strictly positive
// and the other is zero. Negative values on either side fail.
func IsOneSided(debit, credit decimal.Decimal) bool {
	if debit.IsNegative() || credit.IsNegative() {
		return false
	}
	return debit.IsPositive() != credit.IsPositive()
}

// FitsScale reports whether amount carries no more than scale fraction digits.
func FitsScale(amount decimal.Decimal, scale int32) bool {
	return amount.Equal(amount.Truncate(scale))
}
