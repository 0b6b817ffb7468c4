// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"
)

// User is an account that can log in and author quotes.
type User struct {
	ID            int64     // Database-assigned identifier, carried in tokens as the userId claim.
	Username      string    // Unique login name, stored trimmed.
	DisplayedName string    // Name shown next to the user's quotes.
	PasswordHash  string    // Self-describing argon2id string. Never the raw password.
	CreatedAt     time.Time // Timestamp of when this account was created.
	UpdatedAt     time.Time // Timestamp of the last modification to this account.
}

// UserInfo is the public projection of a User embedded in quote listings.
type UserInfo struct {
	ID            int64
	Username      string
	DisplayedName string
}

// Info returns the public projection of the user.
func (u *User) Info() *UserInfo {
	if u == nil {
		return nil
	}

	return &UserInfo{
		ID:            u.ID,
		Username:      u.Username,
		DisplayedName: u.DisplayedName,
	}
}
