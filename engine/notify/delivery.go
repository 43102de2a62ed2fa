package notify

import (
	"context"
	"strings"

	"github.com/conmail/conmail/pkg/config"
	"github.com/conmail/conmail/pkg/logger"
)

// Delivery is the seam to whatever actually sends mail. Transport lives
// outside this component; the only shipped implementation logs.
type Delivery interface {
	Send(ctx context.Context, email *Email) error
}

// LogDelivery writes the email to the structured log instead of sending it.
type LogDelivery struct{}

func (LogDelivery) Send(ctx context.Context, email *Email) error {
	logger.FromContext(ctx).Info("email rendered",
		"id", email.ID,
		"ident", email.Ident,
		"subject", email.Subject,
		"from", email.From,
		"to", strings.Join(email.To, ","),
		"bytes", len(email.Body),
	)
	return nil
}

// IsDevEmail reports whether an address may receive mail on a dev box:
// mailinator addresses and the configured developer list.
func IsDevEmail(cfg *config.Config, email string) bool {
	if strings.HasSuffix(strings.ToLower(email), "mailinator.com") {
		return true
	}
	for _, dev := range cfg.DeveloperEmails {
		if strings.EqualFold(dev, email) {
			return true
		}
	}
	return false
}

// FilterRecipients applies the dev-box recipient policy to a copy of the
// list. Outside a dev box the list passes through unchanged.
func FilterRecipients(cfg *config.Config, to []string) []string {
	if !cfg.DevBox {
		return append([]string(nil), to...)
	}
	filtered := make([]string, 0, len(to))
	for _, addr := range to {
		if IsDevEmail(cfg, addr) {
			filtered = append(filtered, addr)
		}
	}
	return filtered
}

// Dispatch applies the sending policy and hands the email to the delivery
// mechanism. With sending turned off, or with every recipient filtered out on
// a dev box, the email is logged and dropped, matching the host application's
// behavior.
func (n *Notifier) Dispatch(ctx context.Context, d Delivery, email *Email) error {
	log := logger.FromContext(ctx)

	to := FilterRecipients(n.cfg, email.To)
	if len(to) == 0 {
		log.Info("no deliverable recipients on dev box, dropping email",
			"ident", email.Ident, "to", strings.Join(email.To, ","))
		return nil
	}

	if !n.cfg.SendEmails {
		log.Error("email sending turned off, so unable to send",
			"ident", email.Ident, "subject", email.Subject)
		return nil
	}

	out := *email
	out.To = to
	return d.Send(ctx, &out)
}
