package config

import (
	"time"
)

// Config carries the event-level values the notification templates and the
// sending policy reference. It is loaded once at startup and passed into
// rendering explicitly; nothing reads it through ambient globals.
type Config struct {
	// EventName appears in subject lines via the {EVENT_NAME} placeholder.
	EventName string `koanf:"event_name" validate:"required"`

	// EventTimezone is an IANA zone name; all deadline display happens in it.
	EventTimezone string `koanf:"event_timezone" validate:"required"`

	// Epoch is the moment the event starts, used for the {EVENT_DATE} subject
	// placeholder.
	Epoch time.Time `koanf:"epoch"`

	// URLBase is the public root of the registration site, without a trailing
	// slash.
	URLBase string `koanf:"url_base" validate:"required"`

	// MIVSJudgingDeadline is the hard cutoff for judging. Zero means not yet
	// scheduled; templates that reference it refuse to render.
	MIVSJudgingDeadline time.Time `koanf:"mivs_judging_deadline"`

	// SoftMIVSJudgingDeadline is the earlier date judges are asked to hit.
	SoftMIVSJudgingDeadline time.Time `koanf:"soft_mivs_judging_deadline"`

	// MIVSEmail is the showcase contact address, possibly in
	// "Display Name <addr>" form.
	MIVSEmail string `koanf:"mivs_email" validate:"required"`

	// MIVSEmailSignature closes every MIVS email body.
	MIVSEmailSignature string `koanf:"mivs_email_signature" validate:"required"`

	// RegEmail is the fallback sender for categories without their own.
	RegEmail string `koanf:"reg_email"`

	// SendEmails gates handing rendered emails to a delivery mechanism.
	SendEmails bool `koanf:"send_emails"`

	// DevBox restricts recipients to development addresses when set.
	DevBox bool `koanf:"dev_box"`

	// DeveloperEmails lists addresses that still receive mail on a dev box.
	DeveloperEmails []string `koanf:"developer_emails"`

	loc *time.Location
}

// Default returns the built-in configuration. Environment variables override
// these values.
func Default() *Config {
	return &Config{
		EventName:          "MAGWest",
		EventTimezone:      "America/New_York",
		URLBase:            "http://localhost:8282/uber",
		MIVSEmail:          "MIVS <mivs@example.org>",
		MIVSEmailSignature: "The MIVS Team",
		SendEmails:         false,
		DevBox:             true,
	}
}

// Location returns the resolved event timezone. The loader caches the
// resolution; configs built by hand fall back to resolving EventTimezone on
// each call, then to UTC.
func (c *Config) Location() *time.Location {
	if c.loc != nil {
		return c.loc
	}
	if c.EventTimezone != "" {
		if loc, err := time.LoadLocation(c.EventTimezone); err == nil {
			return loc
		}
	}
	return time.UTC
}

// EventDate renders the epoch the way subject lines expect, e.g. "(Jan 2026)".
// Returns the empty string when no epoch is configured.
func (c *Config) EventDate() string {
	if c.Epoch.IsZero() {
		return ""
	}
	return c.Epoch.In(c.Location()).Format("(Jan 2006)")
}
