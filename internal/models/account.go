package models

import "database/sql"

// AccountType defines the fundamental accounting type of an account.
type AccountType string

// Account is the row shape of the accounts table.
type Account struct {
	AccountID       string         `db:"account_id"`
	Code            string         `db:"code"`
	Name            string         `db:"name"`
	Description     string         `db:"description"`
	AccountType     AccountType    `db:"account_type"`
	ParentAccountID sql.NullString `db:"parent_account_id"` // Nullable
	IsActive        bool           `db:"is_active"`
	IsSystemAccount bool           `db:"is_system_account"`
	AuditFields
}
