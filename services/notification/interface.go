package notification

import (
	"context"
)

// Message is one outbound HTML email.
type Message struct {
	From    string
	To      string
	Subject string
	HTML    string
}

// Sender hands a message to a mail transport.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}
