package models

import (
	"slices"
	"time"
)

// Account is the durable identity keyed by email. Sessions holds only
// activated sessions, in activation order.
type Account struct {
	Email     string    `json:"email"`
	Sessions  []Session `json:"sessions"`
	MainStore string    `json:"mainStore,omitempty"`
	CreatedAt time.Time `json:"created"`
	UpdatedAt time.Time `json:"updated"`
}

// NewAccount returns an account with no sessions and no main store.
func NewAccount(email string, now time.Time) *Account {
	return &Account{
		Email:     email,
		Sessions:  []Session{},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// AddSession appends s to the session collection.
func (a *Account) AddSession(s Session) {
	a.Sessions = append(a.Sessions, s)
}

// FindSession returns the session with the given id.
func (a *Account) FindSession(id string) (Session, bool) {
	i := slices.IndexFunc(a.Sessions, func(s Session) bool { return s.ID == id })
	if i < 0 {
		return Session{}, false
	}
	return a.Sessions[i], true
}

// RemoveSession drops every session with the given id and reports whether
// anything was removed.
func (a *Account) RemoveSession(id string) bool {
	n := len(a.Sessions)
	a.Sessions = slices.DeleteFunc(a.Sessions, func(s Session) bool { return s.ID == id })
	return len(a.Sessions) != n
}

// Clone returns a deep copy of a.
func (a *Account) Clone() *Account {
	c := *a
	c.Sessions = make([]Session, len(a.Sessions))
	for i, s := range a.Sessions {
		c.Sessions[i] = s.Clone()
	}
	return &c
}
