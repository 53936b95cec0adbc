package domain

import "time"

type User struct {
	ID           string
	Email        string
	Name         string // may be empty
	PasswordHash string
	PhoneNumber  string // may be empty
	Role         Role
	CalendarID   string // doctors only, may be empty
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// DisplayName is the name, or the email when no name was given.
func (u User) DisplayName() string {
	if u.Name != "" {
		return u.Name
	}
	return u.Email
}

// Identity is the verified caller of a request. Role comes from the token,
// the rest from the user row the token subject resolves to.
type Identity struct {
	UserID string
	Email  string
	Name   string
	Role   Role
}
