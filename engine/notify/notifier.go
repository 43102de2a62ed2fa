package notify

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/conmail/conmail/pkg/config"
	"github.com/conmail/conmail/pkg/tplengine"
)

// Email is a fully rendered notification, ready to hand to a delivery
// mechanism. Rendering is all-or-nothing: an Email either has every field
// populated or was never produced.
type Email struct {
	ID      string
	Ident   string
	Subject string
	Body    string
	From    string
	To      []string
}

// Notifier renders notification emails for the MIVS judging workflow. The
// template set and filter functions are loaded once at construction and are
// read-only afterward, so concurrent renders over independent contexts are
// safe.
type Notifier struct {
	engine   *tplengine.Engine
	registry *Registry
	cfg      *config.Config
}

// New builds a notifier: filter set bound to the event timezone, embedded
// template family parsed, default categories registered. Any template or
// registration problem fails construction rather than the first render.
func New(cfg *config.Config) (*Notifier, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}
	engine := tplengine.NewEngine(tplengine.Filters(cfg.Location()))
	for name, body := range builtinTemplates() {
		if err := engine.AddTemplate(name, body); err != nil {
			return nil, fmt.Errorf("failed to load template %q: %w", name, err)
		}
	}
	registry, err := DefaultRegistry()
	if err != nil {
		return nil, err
	}
	return &Notifier{engine: engine, registry: registry, cfg: cfg}, nil
}

// Categories returns the registered email categories in registration order.
func (n *Notifier) Categories() []Category {
	return n.registry.List()
}

// Render produces the email for a category and judge. The context is
// validated against the category's requirements before the template executes,
// and no partial output is ever returned.
func (n *Notifier) Render(ident string, judge Judge) (*Email, error) {
	cat, ok := n.registry.Get(ident)
	if !ok {
		return nil, fmt.Errorf("category %q: %w", ident, tplengine.ErrTemplateNotFound)
	}

	rctx := &Context{Judge: judge, Config: n.cfg}
	if err := rctx.Validate(cat.Requires...); err != nil {
		return nil, fmt.Errorf("category %q: %w", ident, err)
	}

	body, err := n.engine.Render(cat.Template, rctx.templateContext())
	if err != nil {
		return nil, fmt.Errorf("category %q: %w", ident, err)
	}

	sender := cat.Sender
	if sender == "" {
		sender = n.cfg.MIVSEmail
	}

	return &Email{
		ID:      uuid.NewString(),
		Ident:   cat.Ident,
		Subject: FormatSubject(cat.Subject, n.cfg),
		Body:    body,
		From:    sender,
		To:      []string{judge.Attendee.Email},
	}, nil
}
