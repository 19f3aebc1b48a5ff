// Package cli is the VaultKeeper command-line client.
//
// A command given on the command line runs once; without one the CLI starts
// an interactive loop. Login is passwordless: the server mails a code to the
// given address and the CLI redeems it for a session token, which is kept in
// the configured token file so later runs stay signed in.
//
// Commands:
//
//	login [email]      sign in with a mailed code
//	account            show the account and its sessions
//	show [id]          print a store, the main store by default
//	put [id] <file>    upload a JSON store
//	revoke <session>   revoke one of the account's sessions
//	logout             revoke this session and forget it
//	ping               check the server
package cli
