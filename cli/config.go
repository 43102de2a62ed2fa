package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/conmail/conmail/pkg/config"
)

// configView is the YAML shape `conmail config` prints. Deadlines render as
// empty strings when unset rather than the zero time.
type configView struct {
	EventName               string   `yaml:"event_name"`
	EventTimezone           string   `yaml:"event_timezone"`
	Epoch                   string   `yaml:"epoch"`
	URLBase                 string   `yaml:"url_base"`
	MIVSJudgingDeadline     string   `yaml:"mivs_judging_deadline"`
	SoftMIVSJudgingDeadline string   `yaml:"soft_mivs_judging_deadline"`
	MIVSEmail               string   `yaml:"mivs_email"`
	MIVSEmailSignature      string   `yaml:"mivs_email_signature"`
	RegEmail                string   `yaml:"reg_email"`
	SendEmails              bool     `yaml:"send_emails"`
	DevBox                  bool     `yaml:"dev_box"`
	DeveloperEmails         []string `yaml:"developer_emails"`
}

// ConfigCmd prints the resolved configuration, useful to verify which values
// the environment actually supplied.
func ConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the resolved event configuration",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.NewLoader().Load()
			if err != nil {
				return err
			}

			view := configView{
				EventName:               cfg.EventName,
				EventTimezone:           cfg.EventTimezone,
				Epoch:                   formatTime(cfg.Epoch, cfg.Location()),
				URLBase:                 cfg.URLBase,
				MIVSJudgingDeadline:     formatTime(cfg.MIVSJudgingDeadline, cfg.Location()),
				SoftMIVSJudgingDeadline: formatTime(cfg.SoftMIVSJudgingDeadline, cfg.Location()),
				MIVSEmail:               cfg.MIVSEmail,
				MIVSEmailSignature:      cfg.MIVSEmailSignature,
				RegEmail:                cfg.RegEmail,
				SendEmails:              cfg.SendEmails,
				DevBox:                  cfg.DevBox,
				DeveloperEmails:         cfg.DeveloperEmails,
			}

			out, err := yaml.Marshal(view)
			if err != nil {
				return fmt.Errorf("failed to marshal configuration: %w", err)
			}
			fmt.Fprint(cmd.OutOrStdout(), string(out))
			return nil
		},
	}
}

func formatTime(t time.Time, loc *time.Location) string {
	if t.IsZero() {
		return ""
	}
	return t.In(loc).Format(time.RFC3339)
}
