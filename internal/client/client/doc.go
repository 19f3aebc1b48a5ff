// Package client is the Go client of the VaultKeeper gRPC service. It
// attaches the session token to authenticated calls and turns gRPC
// statuses back into *common.Error values.
package client
