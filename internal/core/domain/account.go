package domain

// AccountType defines the fundamental accounting type of an account.
type AccountType string

const (
	Asset     AccountType = "ASSET"
	Liability AccountType = "LIABILITY"
	Equity    AccountType = "EQUITY"
	Income    AccountType = "INCOME"
	Expense   AccountType = "EXPENSE"
)

// Valid reports whether t is one of the five chart-of-accounts types.
func (t AccountType) Valid() bool {
	switch t {
	case Asset, Liability, Equity, Income, Expense:
		return true
	}
	return false
}

// Account represents a node in the chart of accounts.
// Code is the human-facing join key used when posting and never changes after creation.
type Account struct {
	AccountID       string      `json:"accountID"`       // Primary Key (UUID)
	Code            string      `json:"code"`            // Unique, immutable
	Name            string      `json:"name"`            // User-defined name
	Description     string      `json:"description"`     // Nullable user description
	AccountType     AccountType `json:"accountType"`     // ASSET, LIABILITY, etc.
	ParentAccountID *string     `json:"parentAccountID"` // Nullable FK -> accounts.account_id (Self-referencing)
	IsActive        bool        `json:"isActive"`
	IsSystemAccount bool        `json:"isSystemAccount"` // Seeded accounts; can never be deactivated
	AuditFields
}
