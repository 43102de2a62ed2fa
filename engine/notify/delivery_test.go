package notify

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conmail/conmail/pkg/logger"
)

func quietCtx() context.Context {
	return logger.ContextWithLogger(context.Background(), logger.NewLogger(logger.TestConfig()))
}

type captureDelivery struct {
	sent []*Email
}

func (d *captureDelivery) Send(_ context.Context, email *Email) error {
	d.sent = append(d.sent, email)
	return nil
}

func TestIsDevEmail(t *testing.T) {
	cfg := testConfig()
	cfg.DeveloperEmails = []string{"dev@example.org"}

	tests := []struct {
		name  string
		email string
		want  bool
	}{
		{"mailinator address", "judge@mailinator.com", true},
		{"mailinator mixed case", "judge@Mailinator.COM", true},
		{"developer list", "dev@example.org", true},
		{"developer list case-insensitive", "DEV@example.org", true},
		{"regular address", "judge@example.org", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsDevEmail(cfg, tt.email))
		})
	}
}

func TestFilterRecipients(t *testing.T) {
	t.Run("Should pass recipients through outside a dev box", func(t *testing.T) {
		cfg := testConfig()
		cfg.DevBox = false
		in := []string{"judge@example.org"}

		got := FilterRecipients(cfg, in)

		assert.Equal(t, in, got)
	})

	t.Run("Should return a copy, not the input slice", func(t *testing.T) {
		cfg := testConfig()
		cfg.DevBox = false
		in := []string{"judge@example.org"}

		got := FilterRecipients(cfg, in)
		got[0] = "changed"

		assert.Equal(t, "judge@example.org", in[0])
	})

	t.Run("Should keep only dev addresses on a dev box", func(t *testing.T) {
		cfg := testConfig()
		cfg.DevBox = true
		cfg.DeveloperEmails = []string{"dev@example.org"}

		got := FilterRecipients(cfg, []string{
			"judge@example.org",
			"judge@mailinator.com",
			"dev@example.org",
		})

		assert.Equal(t, []string{"judge@mailinator.com", "dev@example.org"}, got)
	})
}

func TestNotifier_Dispatch(t *testing.T) {
	t.Run("Should hand off when sending is enabled", func(t *testing.T) {
		cfg := testConfig()
		cfg.DevBox = false
		cfg.SendEmails = true
		n, err := New(cfg)
		require.NoError(t, err)
		email, err := n.Render("mivs_judging_begun", testJudge())
		require.NoError(t, err)
		d := &captureDelivery{}

		require.NoError(t, n.Dispatch(quietCtx(), d, email))

		require.Len(t, d.sent, 1)
		assert.Equal(t, email.Body, d.sent[0].Body)
		assert.Equal(t, email.To, d.sent[0].To)
	})

	t.Run("Should drop the email when sending is turned off", func(t *testing.T) {
		cfg := testConfig()
		cfg.DevBox = false
		cfg.SendEmails = false
		n, err := New(cfg)
		require.NoError(t, err)
		email, err := n.Render("mivs_judging_begun", testJudge())
		require.NoError(t, err)
		d := &captureDelivery{}

		require.NoError(t, n.Dispatch(quietCtx(), d, email))

		assert.Empty(t, d.sent)
	})

	t.Run("Should drop the email when dev-box filtering leaves no recipients", func(t *testing.T) {
		cfg := testConfig()
		cfg.DevBox = true
		cfg.SendEmails = true
		n, err := New(cfg)
		require.NoError(t, err)
		judge := testJudge()
		judge.Attendee.Email = "judge@example.org"
		email, err := n.Render("mivs_judging_begun", judge)
		require.NoError(t, err)
		d := &captureDelivery{}

		require.NoError(t, n.Dispatch(quietCtx(), d, email))

		assert.Empty(t, d.sent)
	})

	t.Run("Should keep mailinator recipients on a dev box", func(t *testing.T) {
		cfg := testConfig()
		cfg.DevBox = true
		cfg.SendEmails = true
		n, err := New(cfg)
		require.NoError(t, err)
		email, err := n.Render("mivs_judging_begun", testJudge())
		require.NoError(t, err)
		d := &captureDelivery{}

		require.NoError(t, n.Dispatch(quietCtx(), d, email))

		require.Len(t, d.sent, 1)
		assert.Equal(t, []string{"alex@mailinator.com"}, d.sent[0].To)
	})

	t.Run("Should not mutate the rendered email", func(t *testing.T) {
		cfg := testConfig()
		cfg.DevBox = true
		cfg.SendEmails = true
		cfg.DeveloperEmails = nil
		n, err := New(cfg)
		require.NoError(t, err)
		email, err := n.Render("mivs_judging_begun", testJudge())
		require.NoError(t, err)

		require.NoError(t, n.Dispatch(quietCtx(), LogDelivery{}, email))

		assert.Equal(t, []string{"alex@mailinator.com"}, email.To)
	})
}

func TestLogDelivery(t *testing.T) {
	t.Run("Should accept an email without error", func(t *testing.T) {
		err := LogDelivery{}.Send(quietCtx(), &Email{
			ID:      "x",
			Ident:   "mivs_judging_begun",
			Subject: "s",
			Body:    "b",
			From:    "f@example.org",
			To:      []string{"t@example.org"},
		})
		assert.NoError(t, err)
	})
}
