package models

// Member is the row shape of the members table.
type Member struct {
	MemberID     string `db:"member_id"`
	MemberNumber string `db:"member_number"`
	FirstName    string `db:"first_name"`
	LastName     string `db:"last_name"`
	Status       string `db:"status"`
	AuditFields
}
