package models

// UserKind discriminates the closed set of user variants.
type UserKind string

const (
	UserBuyer UserKind = "buyer"
	UserStaff UserKind = "staff"
)

// User lives for the whole process; there is no user deletion. Name
// uniqueness is not enforced here — callers that need it must check before
// creating.
type User struct {
	Kind     UserKind
	Name     string
	Password string
	LoggedIn bool
}
