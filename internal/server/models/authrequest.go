package models

import "time"

// AuthRequest is a pending login: the email the code was sent to, the code
// itself and the session that activation will promote. It is keyed by the
// session id and used once.
type AuthRequest struct {
	Session   Session
	Email     string
	Code      string
	CreatedAt time.Time
}

// Expired reports whether the request is older than ttl at now.
// A zero ttl never expires.
func (r *AuthRequest) Expired(now time.Time, ttl time.Duration) bool {
	if ttl <= 0 {
		return false
	}
	return now.After(r.CreatedAt.Add(ttl))
}
