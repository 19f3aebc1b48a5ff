package models

import "time"

// Container is an encrypted record the server stores without looking
// inside. Payload is the serialized remainder of the container besides its
// id and kind; Owner is the email of the account that wrote it.
type Container struct {
	ID        string
	Kind      string
	Owner     string
	Payload   []byte
	UpdatedAt time.Time
}
