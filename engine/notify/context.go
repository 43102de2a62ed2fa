package notify

import (
	"fmt"

	"github.com/conmail/conmail/pkg/config"
	"github.com/conmail/conmail/pkg/tplengine"
)

// Attendee is the identity slice of a registration record that notification
// templates reference.
type Attendee struct {
	FirstName string `yaml:"first_name"`
	LastName  string `yaml:"last_name"`
	Email     string `yaml:"email"`
}

// FullName joins the attendee's name parts for display.
func (a Attendee) FullName() string {
	if a.LastName == "" {
		return a.FirstName
	}
	return a.FirstName + " " + a.LastName
}

// Judge is a showcase judge; templates reach the person through the attendee
// record, mirroring how the host application models judges.
type Judge struct {
	Attendee Attendee `yaml:"attendee"`
}

// Context carries everything a notification render may reference: the judge
// being notified and the event configuration. It is assembled per
// notification event and discarded after rendering; building it never mutates
// the configuration.
type Context struct {
	Judge  Judge
	Config *config.Config
}

// Validate checks the names every template in the family references, plus the
// extra paths a category declares, before any template executes. A hole in
// the context surfaces with a stable path instead of a template execution
// trace.
func (c *Context) Validate(requires ...string) error {
	if c.Config == nil {
		return fmt.Errorf("%w: c", tplengine.ErrMissingContextValue)
	}
	if c.Judge.Attendee.FirstName == "" {
		return fmt.Errorf("%w: judge.attendee.first_name", tplengine.ErrMissingContextValue)
	}
	if c.Judge.Attendee.Email == "" {
		return fmt.Errorf("%w: judge.attendee.email", tplengine.ErrMissingContextValue)
	}
	for _, path := range requires {
		ok := true
		switch path {
		case "c.MIVS_JUDGING_DEADLINE":
			ok = !c.Config.MIVSJudgingDeadline.IsZero()
		case "c.SOFT_MIVS_JUDGING_DEADLINE":
			ok = !c.Config.SoftMIVSJudgingDeadline.IsZero()
		case "c.EPOCH":
			ok = !c.Config.Epoch.IsZero()
		}
		if !ok {
			return fmt.Errorf("%w: %s", tplengine.ErrMissingContextValue, path)
		}
	}
	return nil
}

// templateContext flattens the typed context into the names the templates
// see. Config values keep the upper-case names the host application exposes
// them under so the template text stays portable between implementations.
func (c *Context) templateContext() map[string]any {
	cfg := c.Config
	return map[string]any{
		"judge": map[string]any{
			"attendee": map[string]any{
				"first_name": c.Judge.Attendee.FirstName,
				"last_name":  c.Judge.Attendee.LastName,
				"full_name":  c.Judge.Attendee.FullName(),
				"email":      c.Judge.Attendee.Email,
			},
		},
		"c": map[string]any{
			"EVENT_NAME":                 cfg.EventName,
			"URL_BASE":                   cfg.URLBase,
			"EPOCH":                      cfg.Epoch,
			"MIVS_JUDGING_DEADLINE":      cfg.MIVSJudgingDeadline,
			"SOFT_MIVS_JUDGING_DEADLINE": cfg.SoftMIVSJudgingDeadline,
			"MIVS_EMAIL":                 cfg.MIVSEmail,
			"MIVS_EMAIL_SIGNATURE":       cfg.MIVSEmailSignature,
		},
	}
}
