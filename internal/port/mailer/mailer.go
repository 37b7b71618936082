// Package mailer defines the mail delivery port (interface).
package mailer

import "context"

// Message is the payload delivered through a Mailer.
type Message struct {
	From    string
	To      string
	Subject string
	HTML    string
}

// Mailer is the port interface for delivering a rendered email.
type Mailer interface {
	// Send performs exactly one delivery attempt for the message.
	// There is no retry; the caller decides what a failure means.
	Send(ctx context.Context, msg Message) error
}
