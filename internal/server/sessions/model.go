package sessions

import "time"

// Session ties an issued token to a user. One user may hold any number of
// concurrent sessions. A session has no expiry of its own; the token carries
// a signature-level expiry.
type Session struct {
	ID        int64
	Token     string
	UserID    int64
	CreatedAt time.Time
}
