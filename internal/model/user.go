package model

// User is a read-only snapshot of the server-owned account, fetched
// through the current session.
type User struct {
	ID       int64
	Name     string
	Email    string
	Verified bool
}
