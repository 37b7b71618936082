// Package eventbus defines the event publishing port (interface) and the
// event payload schemas.
package eventbus

import "context"

// Publisher is the port interface for announcing a completed email send.
type Publisher interface {
	// Publish delivers one event to the given subject.
	Publish(ctx context.Context, subject string, data []byte) error
}
