package constants

// Account types on people.account_type
const (
	AccountTypeResident = "resident"
	AccountTypeHOAAdmin = "hoa_admin"
)

// Account statuses on people.account_status
const (
	AccountStatusPending  = "pending"
	AccountStatusActive   = "active"
	AccountStatusInactive = "inactive"
)

// Verification methods on people.verification_method
const (
	VerificationEmailSignup = "email_signup"
	VerificationMigration   = "migration"
)

// Review statuses observed on responses.review_status. The set is open —
// the workflow accepts any string and these are only the values the
// dashboard renders specially.
const (
	ReviewStatusReviewed = "reviewed"
	ReviewStatusFlagged  = "flagged"
)
