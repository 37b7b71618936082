// Package smtp implements the mailer port over one SMTP session per send.
package smtp

import (
	"context"
	"fmt"
	"time"

	"github.com/wneessen/go-mail"

	"github.com/knapscen/notifymail/internal/domain"
	"github.com/knapscen/notifymail/internal/port/mailer"
)

// Config holds the connection parameters for SMTP delivery.
type Config struct {
	Host      string
	Port      int
	User      string // empty means no authentication
	Password  string
	TLSPolicy string // "mandatory", "opportunistic" or "none"
	Timeout   time.Duration
}

// Sender delivers rendered emails via SMTP. Each Send performs exactly one
// session: connect, optionally authenticate, send, close. The connection
// never outlives the call.
type Sender struct {
	cfg Config
}

// New creates an SMTP sender. No connection is made until Send.
func New(cfg Config) *Sender {
	return &Sender{cfg: cfg}
}

// Send implements mailer.Mailer.
func (s *Sender) Send(ctx context.Context, msg mailer.Message) error {
	if s.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.cfg.Timeout)
		defer cancel()
	}

	m := mail.NewMsg()
	if err := m.From(msg.From); err != nil {
		return fmt.Errorf("%w: invalid from address: %v", domain.ErrSMTP, err)
	}
	if err := m.To(msg.To); err != nil {
		return fmt.Errorf("%w: invalid to address: %v", domain.ErrSMTP, err)
	}
	m.Subject(msg.Subject)
	m.SetBodyString(mail.TypeTextHTML, msg.HTML)

	opts := []mail.Option{
		mail.WithPort(s.cfg.Port),
		mail.WithTLSPolicy(tlsPolicy(s.cfg.TLSPolicy)),
	}
	if s.cfg.User != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(s.cfg.User),
			mail.WithPassword(s.cfg.Password),
		)
	}

	c, err := mail.NewClient(s.cfg.Host, opts...)
	if err != nil {
		return fmt.Errorf("%w: client init: %v", domain.ErrSMTP, err)
	}

	if err := c.DialAndSendWithContext(ctx, m); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrSMTP, err)
	}
	return nil
}

// tlsPolicy maps the configured policy name onto go-mail's TLS modes.
// Unknown values fall back to opportunistic, which downgrades to plaintext
// when the server offers no STARTTLS (as SMTP capture tools do).
func tlsPolicy(name string) mail.TLSPolicy {
	switch name {
	case "mandatory":
		return mail.TLSMandatory
	case "none":
		return mail.NoTLS
	default:
		return mail.TLSOpportunistic
	}
}
