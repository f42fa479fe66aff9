package models

import (
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
)

// JournalEntryStatus indicates the state of a journal entry.
type JournalEntryStatus string

// JournalEntry is the row shape of the journal_entries table.
type JournalEntry struct {
	JournalEntryID  string             `db:"journal_entry_id"`
	TransactionDate time.Time          `db:"transaction_date"`
	ReferenceNumber string             `db:"reference_number"`
	Description     string             `db:"description"`
	Status          JournalEntryStatus `db:"status"`
	AuditFields
}

// JournalEntryLine is the row shape of the journal_entry_lines table, joined with
// the account code and name it posts to.
type JournalEntryLine struct {
	LineID         string          `db:"line_id"`
	JournalEntryID string          `db:"journal_entry_id"`
	LineNumber     int             `db:"line_number"`
	AccountID      string          `db:"account_id"`
	AccountCode    string          `db:"account_code"`
	AccountName    string          `db:"account_name"`
	MemberID       sql.NullString  `db:"member_id"`
	DebitAmount    decimal.Decimal `db:"debit_amount"`
	CreditAmount   decimal.Decimal `db:"credit_amount"`
	Description    string          `db:"description"`
	CreatedAt      time.Time       `db:"created_at"`
}
