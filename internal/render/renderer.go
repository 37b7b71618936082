// Package render turns a notification context into a ready-to-send email.
package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"

	"github.com/Masterminds/sprig/v3"

	"github.com/knapscen/notifymail/internal/domain"
	"github.com/knapscen/notifymail/internal/domain/notification"
)

//go:embed templates/*.html
var templateFS embed.FS

const (
	welcomeFile   = "welcome_email.html"
	marketingFile = "marketing_notification.html"

	welcomeSubject   = "Welcome to Knapscen!"
	marketingSubject = "New Company Onboarded - Marketing Notification"
)

// Renderer renders the two built-in HTML templates. Rendering is a pure
// function of template and context: identical input yields byte-identical
// output.
type Renderer struct {
	tmpl *template.Template
}

// New parses the embedded templates with the sprig function map.
func New() (*Renderer, error) {
	tmpl, err := template.New("notifymail").Funcs(sprig.HtmlFuncMap()).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("%w: parse embedded templates: %v", domain.ErrTemplate, err)
	}
	return &Renderer{tmpl: tmpl}, nil
}

// Render produces the recipient, subject line and HTML body for n.
func (r *Renderer) Render(n notification.Context) (notification.RenderedEmail, error) {
	switch n.Kind {
	case notification.KindWelcome:
		if n.Welcome == nil {
			return notification.RenderedEmail{}, fmt.Errorf("%w: welcome context is empty", domain.ErrTemplate)
		}
		html, err := r.execute(welcomeFile, n.Welcome)
		if err != nil {
			return notification.RenderedEmail{}, err
		}
		return notification.RenderedEmail{
			To:      n.Welcome.UserEmail,
			Subject: welcomeSubject,
			HTML:    html,
		}, nil

	case notification.KindMarketing:
		if n.Marketing == nil {
			return notification.RenderedEmail{}, fmt.Errorf("%w: marketing context is empty", domain.ErrTemplate)
		}
		html, err := r.execute(marketingFile, n.Marketing)
		if err != nil {
			return notification.RenderedEmail{}, err
		}
		return notification.RenderedEmail{
			To:      n.Marketing.MarketingTeamEmail,
			Subject: marketingSubject,
			HTML:    html,
		}, nil

	default:
		return notification.RenderedEmail{}, fmt.Errorf("%w: %q", domain.ErrUnknownTemplate, n.Kind)
	}
}

func (r *Renderer) execute(name string, data any) (string, error) {
	var buf bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("%w: render %s: %v", domain.ErrTemplate, name, err)
	}
	return buf.String(), nil
}
