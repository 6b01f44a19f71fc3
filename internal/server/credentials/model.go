package credentials

import "time"

// Credential is a stored website/service secret. Password holds ciphertext
// at rest; the service decrypts it on reads. JSON field names follow the
// public API contract.
type Credential struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"userId"`
	Title     string    `json:"title"`
	URL       string    `json:"url"`
	Username  string    `json:"username"`
	Password  string    `json:"password"`
	CreatedAt time.Time `json:"-"`
}

// CreateParams is the validated request body for credential creation.
// Password arrives in plaintext and is encrypted before it touches storage.
type CreateParams struct {
	Title    string `json:"title"`
	URL      string `json:"url"`
	Username string `json:"username"`
	Password string `json:"password"`
}
