package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// JournalEntryStatus indicates the state of a journal entry.
type JournalEntryStatus string

const (
	Draft    JournalEntryStatus = "DRAFT"
	Posted   JournalEntryStatus = "POSTED"
	Reversed JournalEntryStatus = "REVERSED" // Declared for reporting; no code path produces it yet
)

// Valid reports whether s is a known status.
func (s JournalEntryStatus) Valid() bool {
	switch s {
	case Draft, Posted, Reversed:
		return true
	}
	return false
}

// AmountScale is the number of fraction digits carried by every monetary amount.
const AmountScale = 2

// Widths of the stored journal columns, in characters.
const (
	MaxReferenceLength   = 50
	MaxDescriptionLength = 255
	MaxMemberIDLength    = 36
)

// LineDraft is one proposed debit or credit leg of a journal entry.
type LineDraft struct {
	AccountCode  string
	MemberID     *string
	DebitAmount  decimal.Decimal
	CreditAmount decimal.Decimal
	Description  string
}

// JournalEntryDraft is the input to the posting engine.
type JournalEntryDraft struct {
	TransactionDate time.Time
	ReferenceNumber string
	Description     string
	Lines           []LineDraft
}

// JournalEntry is a committed, balanced financial event. Once posted it is never
// modified; corrections are made with a new entry.
type JournalEntry struct {
	JournalEntryID  string             `json:"journalEntryID"`
	TransactionDate time.Time          `json:"transactionDate"`
	ReferenceNumber string             `json:"referenceNumber"`
	Description     string             `json:"description"`
	Status          JournalEntryStatus `json:"status"`
	Lines           []JournalEntryLine `json:"lines"`
	AuditFields
}

// JournalEntryLine is a single leg owned by a JournalEntry.
type JournalEntryLine struct {
	LineID         string          `json:"lineID"`
	JournalEntryID string          `json:"journalEntryID"`
	LineNumber     int             `json:"lineNumber"` // 1-based position in the submitted draft
	AccountID      string          `json:"accountID"`
	AccountCode    string          `json:"accountCode"`
	AccountName    string          `json:"accountName"`
	MemberID       *string         `json:"memberID"`
	DebitAmount    decimal.Decimal `json:"debitAmount"`
	CreditAmount   decimal.Decimal `json:"creditAmount"`
	Description    string          `json:"description"`
	CreatedAt      time.Time       `json:"createdAt"`
}

// TotalDebits sums the debit side of all lines.
func (e JournalEntry) TotalDebits() decimal.Decimal {
	total := decimal.Zero
	for _, l := range e.Lines {
		total = total.Add(l.DebitAmount)
	}
	return total
}

// TotalCredits sums the credit side of all lines.
func (e JournalEntry) TotalCredits() decimal.Decimal {
	total := decimal.Zero
	for _, l := range e.Lines {
		total = total.Add(l.CreditAmount)
	}
	return total
}
