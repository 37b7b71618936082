// Package nats implements the event bus port over a core NATS connection.
package nats

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/nats-io/nats.go"

	"github.com/knapscen/notifymail/internal/domain"
	"github.com/knapscen/notifymail/internal/port/eventbus"
)

// Config holds the connection parameters for the message bus.
type Config struct {
	URL            string
	User           string // empty means no authentication
	Password       string
	ConnectTimeout time.Duration
	PublishTimeout time.Duration
}

// Bus implements eventbus.Publisher. Each Publish opens one connection,
// sends the event, flushes and closes; the connection never outlives the
// call, including on error paths.
type Bus struct {
	cfg Config
}

// New creates a Bus. No connection is made until Publish.
func New(cfg Config) *Bus {
	return &Bus{cfg: cfg}
}

// Publish delivers one schema-validated event to the given subject.
func (b *Bus) Publish(ctx context.Context, subject string, data []byte) error {
	if err := eventbus.Validate(data); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrPublish, err)
	}

	opts := []nats.Option{
		nats.Name("notifymail"),
		nats.NoReconnect(),
	}
	if b.cfg.ConnectTimeout > 0 {
		opts = append(opts, nats.Timeout(b.cfg.ConnectTimeout))
	}
	if b.cfg.User != "" {
		opts = append(opts, nats.UserInfo(b.cfg.User, b.cfg.Password))
	}

	nc, err := nats.Connect(b.cfg.URL, opts...)
	if err != nil {
		return fmt.Errorf("%w: connect %s: %v", domain.ErrPublish, b.cfg.URL, err)
	}
	defer nc.Close()

	if err := nc.Publish(subject, data); err != nil {
		return fmt.Errorf("%w: publish %s: %v", domain.ErrPublish, subject, err)
	}

	if b.cfg.PublishTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, b.cfg.PublishTimeout)
		defer cancel()
	}
	if err := nc.FlushWithContext(ctx); err != nil {
		return fmt.Errorf("%w: flush %s: %v", domain.ErrPublish, subject, err)
	}

	slog.Debug("event published", "subject", subject, "bytes", len(data))
	return nil
}
