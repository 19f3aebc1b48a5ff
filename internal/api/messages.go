// Package api defines the VaultKeeper gRPC service: its messages, the
// service descriptor shared by server and client and the JSON wire codec.
package api

import (
	"encoding/json"
	"time"
)

type Session struct {
	ID       string            `json:"id"`
	Email    string            `json:"email"`
	Active   bool              `json:"active"`
	Created  time.Time         `json:"created"`
	Metadata map[string]string `json:"metadata,omitempty"`
}

type Account struct {
	Email     string    `json:"email"`
	Sessions  []Session `json:"sessions"`
	MainStore string    `json:"mainStore,omitempty"`
}

type StartSessionRequest struct {
	Email string `json:"email"`
}

type SessionResponse struct {
	Session Session `json:"session"`
}

type ActivateSessionRequest struct {
	ID   string `json:"id"`
	Code string `json:"code"`
}

type ActivateSessionResponse struct {
	Session Session `json:"session"`
	Token   string  `json:"token"`
}

type RevokeSessionRequest struct {
	ID string `json:"id"`
}

type AccountResponse struct {
	Account Account `json:"account"`
}

// GetStoreRequest addresses a store by id; "" and "main" mean the
// account's main store.
type GetStoreRequest struct {
	ID string `json:"id,omitempty"`
}

type PutStoreRequest struct {
	ID    string          `json:"id,omitempty"`
	Store json.RawMessage `json:"store"`
}

type StoreResponse struct {
	Store json.RawMessage `json:"store"`
}

type PingResponse struct {
	Status string `json:"status"`
}
