package models

// Session is what the client keeps about the logged-in user.
type Session struct {
	Token string
	User  User
}
