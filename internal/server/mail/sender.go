// Package mail delivers login codes to users.
package mail

import "context"

// Sender sends a plain-text message to one recipient.
type Sender interface {
	Send(ctx context.Context, to, subject, body string) error
}
