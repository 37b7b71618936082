// Package service contains the application pipeline.
package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/knapscen/notifymail/internal/domain"
	"github.com/knapscen/notifymail/internal/domain/notification"
	"github.com/knapscen/notifymail/internal/port/eventbus"
	"github.com/knapscen/notifymail/internal/port/mailer"
	"github.com/knapscen/notifymail/internal/render"
)

// NotificationService runs the render, send, publish pipeline for one
// invocation. The publish step runs only after a confirmed send.
type NotificationService struct {
	renderer *render.Renderer
	mailer   mailer.Mailer
	bus      eventbus.Publisher
	from     string
	subject  string

	now   func() time.Time
	newID func() string
}

// NewNotificationService creates the pipeline service. from is the SMTP
// sender address; subject is the bus subject completion events go to.
func NewNotificationService(r *render.Renderer, m mailer.Mailer, bus eventbus.Publisher, from, subject string) *NotificationService {
	return &NotificationService{
		renderer: r,
		mailer:   m,
		bus:      bus,
		from:     from,
		subject:  subject,
		now:      time.Now,
		newID:    uuid.NewString,
	}
}

// Process renders the selected template, delivers the email and announces
// the completed send on the bus. Any failure aborts the remaining steps,
// except a publish failure, which is reported after the email has already
// gone out.
func (s *NotificationService) Process(ctx context.Context, n notification.Context) error {
	rendered, err := s.renderer.Render(n)
	if err != nil {
		return err
	}

	msg := mailer.Message{
		From:    s.from,
		To:      rendered.To,
		Subject: rendered.Subject,
		HTML:    rendered.HTML,
	}
	if err := s.mailer.Send(ctx, msg); err != nil {
		return err
	}
	slog.Info("email sent", "template", string(n.Kind), "to", rendered.To)

	payload, err := json.Marshal(s.buildEvent(n))
	if err != nil {
		return fmt.Errorf("%w: encode event: %v", domain.ErrPublish, err)
	}

	if err := s.bus.Publish(ctx, s.subject, payload); err != nil {
		// Partial success: the email is already delivered and must not be
		// re-sent; only the completion event is lost.
		slog.Warn("email delivered but event publish failed", "subject", s.subject, "error", err)
		return err
	}
	slog.Info("event published", "subject", s.subject, "event", eventName(n.Kind))

	return nil
}

// buildEvent assembles the completion event payload for the notification.
func (s *NotificationService) buildEvent(n notification.Context) any {
	switch n.Kind {
	case notification.KindMarketing:
		return eventbus.MarketingNotifiedPayload{
			Event:              eventbus.EventMarketingNotified,
			EventID:            s.newID(),
			CompanyName:        n.Marketing.CompanyName,
			MarketingTeamEmail: n.Marketing.MarketingTeamEmail,
			Users:              n.Marketing.Users,
			SentAt:             s.now().UTC(),
		}
	default:
		return eventbus.WelcomeEmailSentPayload{
			Event:       eventbus.EventWelcomeEmailSent,
			EventID:     s.newID(),
			UserName:    n.Welcome.UserName,
			UserEmail:   n.Welcome.UserEmail,
			CompanyName: n.Welcome.CompanyName,
			UserRole:    n.Welcome.UserRole,
			SentAt:      s.now().UTC(),
		}
	}
}

func eventName(kind notification.TemplateKind) string {
	if kind == notification.KindMarketing {
		return eventbus.EventMarketingNotified
	}
	return eventbus.EventWelcomeEmailSent
}
