// Package models defines the server-side records: login requests,
// sessions, accounts and the opaque containers they own.
package models

import (
	"maps"
	"time"
)

// Session metadata keys recorded at login start.
const (
	MetadataUserAgent = "user_agent"
	MetadataPeer      = "peer"
)

// Session is a caller's login. It is pending (Active == false) while its
// AuthRequest waits for the code and becomes active on activation.
type Session struct {
	ID        string            `json:"id"`
	Email     string            `json:"email"`
	Active    bool              `json:"active"`
	CreatedAt time.Time         `json:"created"`
	Metadata  map[string]string `json:"metadata,omitempty"`
}

// Clone returns a deep copy of s.
func (s Session) Clone() Session {
	s.Metadata = maps.Clone(s.Metadata)
	return s
}
