package model

// UnknownUserName is the sentinel used when no logged-in user record exists.
const UnknownUserName = "Unknown User"

// User represents the authenticated user on whose behalf operations run.
// It is threaded explicitly into every operation that needs it instead of
// being looked up from ambient storage.
type User struct {
	ID    string
	Name  string
	Email string
	Role  string
}

// UnknownUser returns the sentinel user used when no record is stored.
func UnknownUser() User {
	return User{Name: UnknownUserName}
}
