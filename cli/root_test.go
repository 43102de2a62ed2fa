package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	root := RootCmd()
	root.SetOut(&buf)
	root.SetErr(&buf)
	root.SetArgs(append([]string{"--log-level", "disabled"}, args...))
	err := root.Execute()
	return buf.String(), err
}

func setJudgingEnv(t *testing.T) {
	t.Helper()
	t.Setenv("CONMAIL_EVENT_NAME", "ExampleCon")
	t.Setenv("CONMAIL_EVENT_TIMEZONE", "UTC")
	t.Setenv("CONMAIL_URL_BASE", "https://example.org")
	t.Setenv("CONMAIL_MIVS_EMAIL", "mivs@example.org")
	t.Setenv("CONMAIL_MIVS_EMAIL_SIGNATURE", "The MIVS Team")
	t.Setenv("CONMAIL_MIVS_JUDGING_DEADLINE", "2026-01-10")
	t.Setenv("CONMAIL_SOFT_MIVS_JUDGING_DEADLINE", "2026-01-03")
}

func TestListCmd(t *testing.T) {
	t.Run("Should list the MIVS categories", func(t *testing.T) {
		out, err := execute(t, "list")

		require.NoError(t, err)
		assert.Contains(t, out, "mivs_judge_welcome")
		assert.Contains(t, out, "mivs_judging_begun")
		assert.Contains(t, out, "mivs_judging_reminder")
		assert.Contains(t, out, "mivs_judging_complete")
	})
}

func TestRenderCmd(t *testing.T) {
	t.Run("Should render the judging begun email for the sample judge", func(t *testing.T) {
		setJudgingEnv(t)

		out, err := execute(t, "render", "mivs_judging_begun")

		require.NoError(t, err)
		assert.Contains(t, out, "Subject: ExampleCon MIVS Judging Has Begun!")
		assert.Contains(t, out, "Ahoy Alex,")
		assert.Contains(t, out, "https://example.org/mivs_judging")
	})

	t.Run("Should take the judge from a context file", func(t *testing.T) {
		setJudgingEnv(t)
		path := filepath.Join(t.TempDir(), "judge.yaml")
		content := "judge:\n  attendee:\n    first_name: Robin\n    email: robin@mailinator.com\n"
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

		out, err := execute(t, "render", "mivs_judging_begun", "--context", path)

		require.NoError(t, err)
		assert.Contains(t, out, "Ahoy Robin,")
		assert.Contains(t, out, "To: robin@mailinator.com")
	})

	t.Run("Should fail for an unknown ident", func(t *testing.T) {
		setJudgingEnv(t)

		_, err := execute(t, "render", "mivs_no_such_email")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "template not found")
	})

	t.Run("Should fail when a required deadline is not configured", func(t *testing.T) {
		setJudgingEnv(t)
		t.Setenv("CONMAIL_MIVS_JUDGING_DEADLINE", "")

		_, err := execute(t, "render", "mivs_judging_begun")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "MIVS_JUDGING_DEADLINE")
	})
}

func TestConfigCmd(t *testing.T) {
	t.Run("Should print the resolved configuration", func(t *testing.T) {
		setJudgingEnv(t)

		out, err := execute(t, "config")

		require.NoError(t, err)
		assert.Contains(t, out, "event_name: ExampleCon")
		assert.Contains(t, out, "url_base: https://example.org")
		assert.Contains(t, out, "mivs_judging_deadline:")
	})
}

func TestRootCmd_EnvFile(t *testing.T) {
	t.Run("Should fail for a missing explicit env file", func(t *testing.T) {
		_, err := execute(t, "list", "--env-file", "/nonexistent/.env")

		require.Error(t, err)
	})

	t.Run("Should load environment from the given file", func(t *testing.T) {
		// godotenv never overrides variables that are already set, so probe
		// with one setJudgingEnv leaves alone.
		setJudgingEnv(t)
		path := filepath.Join(t.TempDir(), ".env")
		require.NoError(t, os.WriteFile(path, []byte("CONMAIL_SEND_EMAILS=true\n"), 0o600))
		t.Cleanup(func() { os.Unsetenv("CONMAIL_SEND_EMAILS") })

		out, err := execute(t, "config", "--env-file", path)

		require.NoError(t, err)
		assert.Contains(t, out, "send_emails: true")
	})
}
