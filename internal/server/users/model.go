package users

import "time"

// User is a registered account. PasswordHash is never serialized: API
// responses carry id and email only.
type User struct {
	ID           int64     `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"-"`
}
