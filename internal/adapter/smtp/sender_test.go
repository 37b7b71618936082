package smtp

import (
	"context"
	"errors"
	"net"
	"os"
	"strconv"
	"testing"
	"time"

	"github.com/wneessen/go-mail"

	"github.com/knapscen/notifymail/internal/domain"
	"github.com/knapscen/notifymail/internal/port/mailer"
)

func TestSendInvalidFromAddress(t *testing.T) {
	s := New(Config{Host: "localhost", Port: 1025})

	err := s.Send(context.Background(), mailer.Message{
		From:    "not-an-address",
		To:      "alice@x.com",
		Subject: "hi",
		HTML:    "<p>hi</p>",
	})
	if !errors.Is(err, domain.ErrSMTP) {
		t.Fatalf("expected smtp error, got %v", err)
	}
}

func TestSendInvalidToAddress(t *testing.T) {
	s := New(Config{Host: "localhost", Port: 1025})

	err := s.Send(context.Background(), mailer.Message{
		From:    "mailer@knapscen.com",
		To:      "broken",
		Subject: "hi",
		HTML:    "<p>hi</p>",
	})
	if !errors.Is(err, domain.ErrSMTP) {
		t.Fatalf("expected smtp error, got %v", err)
	}
}

func TestSendConnectionRefused(t *testing.T) {
	// Port 1 is reserved; nothing listens there.
	s := New(Config{Host: "127.0.0.1", Port: 1, Timeout: 2 * time.Second})

	err := s.Send(context.Background(), mailer.Message{
		From:    "mailer@knapscen.com",
		To:      "alice@x.com",
		Subject: "hi",
		HTML:    "<p>hi</p>",
	})
	if !errors.Is(err, domain.ErrSMTP) {
		t.Fatalf("expected smtp error, got %v", err)
	}
}

func TestTLSPolicyMapping(t *testing.T) {
	tests := []struct {
		input string
		want  mail.TLSPolicy
	}{
		{"mandatory", mail.TLSMandatory},
		{"opportunistic", mail.TLSOpportunistic},
		{"none", mail.NoTLS},
		{"", mail.TLSOpportunistic},
		{"bogus", mail.TLSOpportunistic},
	}
	for _, tt := range tests {
		if got := tlsPolicy(tt.input); got != tt.want {
			t.Errorf("tlsPolicy(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

// TestSendIntegration delivers a message to a capture server such as
// MailHog. It is skipped unless SMTP_TEST_ADDR (host:port) is set.
func TestSendIntegration(t *testing.T) {
	addr := os.Getenv("SMTP_TEST_ADDR")
	if addr == "" {
		t.Skip("requires SMTP_TEST_ADDR")
	}
	host, portStr, err := net.SplitHostPort(addr)
	if err != nil {
		t.Fatalf("bad SMTP_TEST_ADDR: %v", err)
	}
	port, err := strconv.Atoi(portStr)
	if err != nil {
		t.Fatalf("bad SMTP_TEST_ADDR port: %v", err)
	}

	s := New(Config{Host: host, Port: port, TLSPolicy: "none", Timeout: 5 * time.Second})
	err = s.Send(context.Background(), mailer.Message{
		From:    "mailer@knapscen.com",
		To:      "alice@x.com",
		Subject: "integration test",
		HTML:    "<p>integration</p>",
	})
	if err != nil {
		t.Fatalf("Send: %v", err)
	}
}
