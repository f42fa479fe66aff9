package domain

// MemberStatus tracks where a member is in onboarding.
type MemberStatus string

const (
	MemberPendingPayment MemberStatus = "PENDING_PAYMENT"
	MemberActive         MemberStatus = "ACTIVE"
	MemberSuspended      MemberStatus = "SUSPENDED"
)

// Member is the slice of the member directory the ledger needs: identity for
// line annotation and status for activation on registration payment.
type Member struct {
	MemberID     string       `json:"memberID"`
	MemberNumber string       `json:"memberNumber"`
	FirstName    string       `json:"firstName"`
	LastName     string       `json:"lastName"`
	Status       MemberStatus `json:"status"`
	AuditFields
}
