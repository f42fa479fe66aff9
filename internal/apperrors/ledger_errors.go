package apperrors

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// LedgerErrorKind classifies a ledger validation failure.
type LedgerErrorKind string

const (
	KindDuplicateReference        LedgerErrorKind = "DUPLICATE_REFERENCE"
	KindInsufficientLines         LedgerErrorKind = "INSUFFICIENT_LINES"
	KindInvalidLineAmounts        LedgerErrorKind = "INVALID_LINE_AMOUNTS"
	KindTrialBalanceMismatch      LedgerErrorKind = "TRIAL_BALANCE_MISMATCH"
	KindAccountNotFound           LedgerErrorKind = "ACCOUNT_NOT_FOUND"
	KindInactiveAccountViolation  LedgerErrorKind = "INACTIVE_ACCOUNT"
	KindProtectedAccountViolation LedgerErrorKind = "PROTECTED_ACCOUNT"
	KindDuplicateCode             LedgerErrorKind = "DUPLICATE_CODE"
	KindParentNotFound            LedgerErrorKind = "PARENT_NOT_FOUND"
	KindNotFound                  LedgerErrorKind = "NOT_FOUND"
)

// Sentinels for errors.Is checks. Details on these values are always empty;
// matching is done on Kind only.
var (
	ErrDuplicateReference        = &LedgerError{Kind: KindDuplicateReference}
	ErrInsufficientLines         = &LedgerError{Kind: KindInsufficientLines}
	ErrInvalidLineAmounts        = &LedgerError{Kind: KindInvalidLineAmounts}
	ErrTrialBalanceMismatch      = &LedgerError{Kind: KindTrialBalanceMismatch}
	ErrAccountNotFound           = &LedgerError{Kind: KindAccountNotFound}
	ErrInactiveAccountViolation  = &LedgerError{Kind: KindInactiveAccountViolation}
	ErrProtectedAccountViolation = &LedgerError{Kind: KindProtectedAccountViolation}
	ErrDuplicateCode             = &LedgerError{Kind: KindDuplicateCode}
	ErrParentNotFound            = &LedgerError{Kind: KindParentNotFound}
	ErrEntityNotFound            = &LedgerError{Kind: KindNotFound}
)

// LedgerError carries the structured detail a caller needs to build a message.
// Only the fields relevant to Kind are populated.
type LedgerError struct {
	Kind         LedgerErrorKind
	Reference    string
	AccountCode  string
	EntityID     string
	LineIndex    int
	TotalDebits  decimal.Decimal
	TotalCredits decimal.Decimal
}

func (e *LedgerError) Error() string {
	switch e.Kind {
	case KindDuplicateReference:
		return fmt.Sprintf("journal entry with reference %q already exists", e.Reference)
	case KindInsufficientLines:
		return "journal entry must have at least two lines"
	case KindInvalidLineAmounts:
		return fmt.Sprintf("line %d must carry a positive amount on exactly one side", e.LineIndex)
	case KindTrialBalanceMismatch:
		return fmt.Sprintf("trial balance mismatch: total debits %s != total credits %s",
			e.TotalDebits.StringFixed(2), e.TotalCredits.StringFixed(2))
	case KindAccountNotFound:
		return fmt.Sprintf("account %q not found", e.AccountCode)
	case KindInactiveAccountViolation:
		return fmt.Sprintf("cannot post to inactive account %q", e.AccountCode)
	case KindProtectedAccountViolation:
		return fmt.Sprintf("cannot deactivate system account %q", e.AccountCode)
	case KindDuplicateCode:
		return fmt.Sprintf("account code %q already exists", e.AccountCode)
	case KindParentNotFound:
		return fmt.Sprintf("parent account %q does not exist", e.EntityID)
	case KindNotFound:
		return fmt.Sprintf("%q not found", e.EntityID)
	}
	return string(e.Kind)
}

// Is matches any LedgerError of the same kind.
func (e *LedgerError) Is(target error) bool {
	t, ok := target.(*LedgerError)
	return ok && t.Kind == e.Kind
}

// Unwrap maps the kind onto the generic error classes used by the HTTP layer.
func (e *LedgerError) Unwrap() error {
	switch e.Kind {
	case KindDuplicateReference, KindDuplicateCode:
		return ErrDuplicate
	case KindAccountNotFound, KindNotFound:
		return ErrNotFound
	case KindProtectedAccountViolation:
		return ErrConflict
	}
	return ErrValidation
}

// IsLedgerValidation reports whether err is a ledger rule violation rather than
// an infrastructure failure.
func IsLedgerValidation(err error) bool {
	var le *LedgerError
	return errors.As(err, &le)
}

func NewDuplicateReference(reference string) error {
	return &LedgerError{Kind: KindDuplicateReference, Reference: reference}
}

func NewInsufficientLines(reference string) error {
	return &LedgerError{Kind: KindInsufficientLines, Reference: reference}
}

func NewInvalidLineAmounts(reference string, lineIndex int, accountCode string) error {
	return &LedgerError{Kind: KindInvalidLineAmounts, Reference: reference, LineIndex: lineIndex, AccountCode: accountCode}
}

func NewTrialBalanceMismatch(reference string, debits, credits decimal.Decimal) error {
	return &LedgerError{Kind: KindTrialBalanceMismatch, Reference: reference, TotalDebits: debits, TotalCredits: credits}
}

func NewAccountNotFound(accountCode string) error {
	return &LedgerError{Kind: KindAccountNotFound, AccountCode: accountCode}
}

func NewInactiveAccountViolation(reference, accountCode string) error {
	return &LedgerError{Kind: KindInactiveAccountViolation, Reference: reference, AccountCode: accountCode}
}

func NewProtectedAccountViolation(accountCode string) error {
	return &LedgerError{Kind: KindProtectedAccountViolation, AccountCode: accountCode}
}

func NewDuplicateCode(accountCode string) error {
	return &LedgerError{Kind: KindDuplicateCode, AccountCode: accountCode}
}

func NewParentNotFound(parentID string) error {
	return &LedgerError{Kind: KindParentNotFound, EntityID: parentID}
}

func NewNotFound(id string) error {
	return &LedgerError{Kind: KindNotFound, EntityID: id}
}
