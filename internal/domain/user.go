package domain

import "time"

// User represents a registered shopper. PasswordHash never leaves the
// service layer; handlers only ever see sanitized copies.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"password_hash"`
	Name         string    `json:"name"`
	CreatedAt    time.Time `json:"created_at"`
}
