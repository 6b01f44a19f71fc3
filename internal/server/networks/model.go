package networks

import "time"

// Network is a stored Wi-Fi secret. Password holds ciphertext at rest.
type Network struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"userId"`
	Title     string    `json:"title"`
	Network   string    `json:"network"`
	Password  string    `json:"password"`
	CreatedAt time.Time `json:"-"`
}

// CreateParams is the validated request body for network creation.
type CreateParams struct {
	Title    string `json:"title"`
	Network  string `json:"network"`
	Password string `json:"password"`
}
