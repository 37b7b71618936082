package eventbus

import (
	"time"

	"github.com/knapscen/notifymail/internal/domain/notification"
)

// Event name constants carried in the "event" field of published payloads.
const (
	EventWelcomeEmailSent  = "welcome-email-sent"
	EventMarketingNotified = "marketing-notified"
)

// WelcomeEmailSentPayload is the schema for welcome-email-sent events.
type WelcomeEmailSentPayload struct {
	Event       string    `json:"event"`
	EventID     string    `json:"event_id"`
	UserName    string    `json:"user_name"`
	UserEmail   string    `json:"user_email"`
	CompanyName string    `json:"company_name"`
	UserRole    string    `json:"user_role"`
	SentAt      time.Time `json:"sent_at"`
}

// MarketingNotifiedPayload is the schema for marketing-notified events.
type MarketingNotifiedPayload struct {
	Event              string                    `json:"event"`
	EventID            string                    `json:"event_id"`
	CompanyName        string                    `json:"company_name"`
	MarketingTeamEmail string                    `json:"marketing_team_email"`
	Users              []notification.UserRecord `json:"users"`
	SentAt             time.Time                 `json:"sent_at"`
}
