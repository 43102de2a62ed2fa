package tplengine

import (
	"net/mail"
	"strings"
	"text/template"
	"time"
)

// Filters returns the display filters the notification templates use, bound
// to the event timezone. The returned map is merged into the engine's filter
// set at construction, so filter lookup is resolved at template-load time.
func Filters(loc *time.Location) template.FuncMap {
	if loc == nil {
		loc = time.UTC
	}
	return template.FuncMap{
		"datetime_local": func(t time.Time) string {
			return DatetimeLocal(t, loc)
		},
		"hour_day_format": func(t time.Time) string {
			return HourDayFormat(t, loc)
		},
		"email_only": EmailOnly,
		"comma_and":  CommaAnd,
	}
}

// DatetimeLocal formats a timestamp for display in the event timezone, e.g.
// "11:59pm EST on Sunday, Nov 2".
func DatetimeLocal(t time.Time, loc *time.Location) string {
	t = t.In(loc)
	return t.Format("3:04") + strings.ToLower(t.Format("PM")) + t.Format(" MST on Monday, Jan 2")
}

// HourDayFormat formats a timestamp as a short hour-and-weekday label in the
// event timezone, e.g. "3pm Sun".
func HourDayFormat(t time.Time, loc *time.Location) string {
	t = t.In(loc)
	return t.Format("3") + strings.ToLower(t.Format("PM")) + t.Format(" Mon")
}

// EmailOnly reduces an address to its plain form: "Name <a@b.c>" becomes
// "a@b.c" and a bare address passes through unchanged.
func EmailOnly(s string) string {
	addr, err := mail.ParseAddress(strings.TrimSpace(s))
	if err != nil {
		return strings.TrimSpace(s)
	}
	return addr.Address
}

// CommaAnd joins a list for prose: "a", "a and b", "a, b, and c".
func CommaAnd(xs []string) string {
	switch len(xs) {
	case 0:
		return ""
	case 1:
		return xs[0]
	case 2:
		return xs[0] + " and " + xs[1]
	}
	joined := make([]string, len(xs))
	copy(joined, xs)
	joined[len(joined)-1] = "and " + joined[len(joined)-1]
	return strings.Join(joined, ", ")
}
