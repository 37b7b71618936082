// Package notification defines the template kinds and the context payloads
// carried through one invocation.
package notification

import (
	"fmt"

	"github.com/knapscen/notifymail/internal/domain"
)

// TemplateKind selects one of the two supported email templates.
type TemplateKind string

const (
	KindWelcome   TemplateKind = "welcome"
	KindMarketing TemplateKind = "marketing"
)

// ParseTemplateKind converts an EMAIL_TEMPLATE value into a TemplateKind.
func ParseTemplateKind(s string) (TemplateKind, error) {
	switch TemplateKind(s) {
	case KindWelcome:
		return KindWelcome, nil
	case KindMarketing:
		return KindMarketing, nil
	default:
		return "", fmt.Errorf("%w: %q", domain.ErrUnknownTemplate, s)
	}
}

// UserRecord is one entry of the marketing user list (USERS_JSON).
type UserRecord struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// WelcomeContext holds the fields of the welcome template.
type WelcomeContext struct {
	UserName    string
	UserEmail   string
	CompanyName string
	UserRole    string
}

// MarketingContext holds the fields of the marketing template.
type MarketingContext struct {
	CompanyName        string
	MarketingTeamEmail string
	Users              []UserRecord
}

// Context is the tagged variant bound to a template for one render.
// Exactly one of Welcome or Marketing is non-nil, matching Kind.
// It is built once per invocation and never mutated afterwards.
type Context struct {
	Kind      TemplateKind
	Welcome   *WelcomeContext
	Marketing *MarketingContext
}

// RenderedEmail is the product of one render: recipient, subject line and
// the HTML body. Created by the renderer, consumed once by the dispatcher.
type RenderedEmail struct {
	To      string
	Subject string
	HTML    string
}
