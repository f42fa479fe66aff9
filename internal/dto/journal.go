package dto

import (
	"time"

	"github.com/SscSPs/sacco_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// DateLayout is the wire format of transaction dates.
const DateLayout = "2006-01-02"

// JournalLineRequest is one debit or credit leg in a posting request.
type JournalLineRequest struct {
	AccountCode  string          `json:"accountCode" binding:"required,accountcode"`
	MemberID     *string         `json:"memberID" binding:"omitempty,max=36"`
	DebitAmount  decimal.Decimal `json:"debitAmount"`
	CreditAmount decimal.Decimal `json:"creditAmount"`
	Description  string          `json:"description" binding:"max=255"`
}

// PostJournalEntryRequest defines the data needed to post a manual journal entry.
// Line count and balancing are checked by the posting engine, not by binding.
type PostJournalEntryRequest struct {
	TransactionDate string               `json:"transactionDate" binding:"required,datetime=2006-01-02"`
	ReferenceNumber string               `json:"referenceNumber" binding:"required,max=50"`
	Description     string               `json:"description" binding:"required,max=255"`
	Lines           []JournalLineRequest `json:"lines" binding:"dive"`
}

// ToDraft converts the request into the posting engine's input.
func (r PostJournalEntryRequest) ToDraft() (domain.JournalEntryDraft, error) {
	date, err := time.Parse(DateLayout, r.TransactionDate)
	if err != nil {
		return domain.JournalEntryDraft{}, err
	}
	lines := make([]domain.LineDraft, len(r.Lines))
	for i, l := range r.Lines {
		lines[i] = domain.LineDraft{
			AccountCode:  l.AccountCode,
			MemberID:     l.MemberID,
			DebitAmount:  l.DebitAmount,
			CreditAmount: l.CreditAmount,
			Description:  l.Description,
		}
	}
	return domain.JournalEntryDraft{
		TransactionDate: date,
		ReferenceNumber: r.ReferenceNumber,
		Description:     r.Description,
		Lines:           lines,
	}, nil
}

// JournalLineResponse defines the data returned for a journal entry line.
type JournalLineResponse struct {
	LineNumber   int             `json:"lineNumber"`
	AccountCode  string          `json:"accountCode"`
	AccountName  string          `json:"accountName"`
	MemberID     *string         `json:"memberID,omitempty"`
	DebitAmount  decimal.Decimal `json:"debitAmount"`
	CreditAmount decimal.Decimal `json:"creditAmount"`
	Description  string          `json:"description"`
}

// JournalEntryResponse defines the data returned for a journal entry.
type JournalEntryResponse struct {
	JournalEntryID  string                `json:"journalEntryID"`
	TransactionDate string                `json:"transactionDate"`
	ReferenceNumber string                `json:"referenceNumber"`
	Description     string                `json:"description"`
	Status          string                `json:"status"`
	TotalDebits     decimal.Decimal       `json:"totalDebits"`
	TotalCredits    decimal.Decimal       `json:"totalCredits"`
	Lines           []JournalLineResponse `json:"lines"`
	CreatedAt       time.Time             `json:"createdAt"`
	CreatedBy       string                `json:"createdBy"`
}

// ListJournalEntriesParams selects entries either by status or by an inclusive date range.
type ListJournalEntriesParams struct {
	Status string `form:"status" binding:"omitempty,oneof=DRAFT POSTED REVERSED"`
	From   string `form:"from" binding:"omitempty,datetime=2006-01-02"`
	To     string `form:"to" binding:"omitempty,datetime=2006-01-02"`
}

// ListJournalEntriesResponse wraps the list of entries.
type ListJournalEntriesResponse struct {
	Entries []JournalEntryResponse `json:"entries"`
}

// LedgerLineResponse is one line of an account or member statement.
type LedgerLineResponse struct {
	ReferenceNumber string `json:"referenceNumber"`
	TransactionDate string `json:"transactionDate"`
	JournalLineResponse
}

// ToJournalEntryResponse converts a domain.JournalEntry to JournalEntryResponse DTO.
func ToJournalEntryResponse(e *domain.JournalEntry) JournalEntryResponse {
	lines := make([]JournalLineResponse, len(e.Lines))
	for i := range e.Lines {
		lines[i] = toJournalLineResponse(&e.Lines[i])
	}
	return JournalEntryResponse{
		JournalEntryID:  e.JournalEntryID,
		TransactionDate: e.TransactionDate.Format(DateLayout),
		ReferenceNumber: e.ReferenceNumber,
		Description:     e.Description,
		Status:          string(e.Status),
		TotalDebits:     e.TotalDebits(),
		TotalCredits:    e.TotalCredits(),
		Lines:           lines,
		CreatedAt:       e.CreatedAt,
		CreatedBy:       e.CreatedBy,
	}
}

// ToListJournalEntriesResponse converts a slice of entries.
func ToListJournalEntriesResponse(entries []domain.JournalEntry) ListJournalEntriesResponse {
	res := make([]JournalEntryResponse, len(entries))
	for i := range entries {
		res[i] = ToJournalEntryResponse(&entries[i])
	}
	return ListJournalEntriesResponse{Entries: res}
}

// ToLedgerLineResponses converts statement lines.
func ToLedgerLineResponses(lines []domain.LedgerLine) []LedgerLineResponse {
	res := make([]LedgerLineResponse, len(lines))
	for i := range lines {
		res[i] = LedgerLineResponse{
			ReferenceNumber:     lines[i].ReferenceNumber,
			TransactionDate:     lines[i].TransactionDate.Format(DateLayout),
			JournalLineResponse: toJournalLineResponse(&lines[i].JournalEntryLine),
		}
	}
	return res
}

func toJournalLineResponse(l *domain.JournalEntryLine) JournalLineResponse {
	return JournalLineResponse{
		LineNumber:   l.LineNumber,
		AccountCode:  l.AccountCode,
		AccountName:  l.AccountName,
		MemberID:     l.MemberID,
		DebitAmount:  l.DebitAmount,
		CreditAmount: l.CreditAmount,
		Description:  l.Description,
	}
}
