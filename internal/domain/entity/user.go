// Package entity contains the core business objects of the project.
package entity

// User is the single session-scoped identity currently considered logged
// in. There is no account database behind it: login and signup both
// fabricate a User from the submitted form and persist it as the active
// session record. At most one User is active at a time.
type User struct {
	ID       string `json:"id"`       // Generated at login/signup time.
	Name     string `json:"name"`     // Display name; defaults to "User" when the login form omits it.
	Phone    string `json:"phone"`    // 10-digit Indian mobile number, first digit 6-9.
	Location string `json:"location"` // Home area label within the delivery district.
}
