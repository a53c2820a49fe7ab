package domain

// Schedule is one user's entry for one date. ID, Date and User are fixed at
// creation; only the check-in fields may change afterwards. Several entries
// may share the same user and date.
type Schedule struct {
	ID          int64
	Date        string
	User        string
	CheckInTime *string
	Exercised   bool
	Reflection  *string
}
