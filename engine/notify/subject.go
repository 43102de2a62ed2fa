package notify

import (
	"strings"

	"github.com/conmail/conmail/pkg/config"
)

// FormatSubject substitutes the {EVENT_NAME} and {EVENT_DATE} placeholders a
// category subject may carry. Subjects use this flat substitution rather than
// the template engine so a subject can never reference judge data.
func FormatSubject(subject string, cfg *config.Config) string {
	r := strings.NewReplacer(
		"{EVENT_NAME}", cfg.EventName,
		"{EVENT_DATE}", cfg.EventDate(),
	)
	// Collapse doubled spaces left by an empty {EVENT_DATE}.
	return strings.Join(strings.Fields(r.Replace(subject)), " ")
}
