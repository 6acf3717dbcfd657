package domain

import "strings"

// Session carries the authenticated identity for one request. It replaces the
// ambient token/role globals of the old front end: created at login, rebuilt by
// middleware from the bearer token on each call, gone after logout.
type Session struct {
	Token    string `json:"token"`
	UserID   string `json:"userId"`
	Role     string `json:"role"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

func (s Session) Authenticated() bool {
	return strings.TrimSpace(s.Token) != ""
}

func (s Session) IsAdmin() bool {
	return strings.EqualFold(strings.TrimSpace(s.Role), "ADMIN")
}
