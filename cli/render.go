package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/conmail/conmail/engine/notify"
	"github.com/conmail/conmail/pkg/config"
	"github.com/conmail/conmail/pkg/logger"
)

// contextFile is the shape of the YAML file the --context flag accepts.
type contextFile struct {
	Judge notify.Judge `yaml:"judge"`
}

// RenderCmd previews one email category to stdout.
func RenderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render <ident>",
		Short: "Render an email category to stdout",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.NewLoader().Load()
			if err != nil {
				return err
			}

			judge, err := judgeFromFlags(cmd)
			if err != nil {
				return err
			}

			notifier, err := notify.New(cfg)
			if err != nil {
				return err
			}

			email, err := notifier.Render(args[0], judge)
			if err != nil {
				return err
			}

			if deliver, _ := cmd.Flags().GetBool("deliver"); deliver {
				ctx := logger.ContextWithLogger(cmd.Context(), logger.GetDefault())
				if err := notifier.Dispatch(ctx, notify.LogDelivery{}, email); err != nil {
					return err
				}
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Subject: %s\n", email.Subject)
			fmt.Fprintf(out, "From: %s\n", email.From)
			fmt.Fprintf(out, "To: %s\n\n", strings.Join(email.To, ", "))
			fmt.Fprint(out, email.Body)
			return nil
		},
	}

	cmd.Flags().String("context", "", "YAML file supplying the judge record")
	cmd.Flags().Bool("deliver", false, "also run the email through the logging delivery")

	return cmd
}

// judgeFromFlags builds the judge record for the preview: a sample judge by
// default, the --context file when given.
func judgeFromFlags(cmd *cobra.Command) (notify.Judge, error) {
	path, err := cmd.Flags().GetString("context")
	if err != nil {
		return notify.Judge{}, fmt.Errorf("failed to get context flag: %w", err)
	}
	if path == "" {
		return sampleJudge(), nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return notify.Judge{}, fmt.Errorf("failed to read context file: %w", err)
	}
	var file contextFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return notify.Judge{}, fmt.Errorf("failed to parse context file %q: %w", path, err)
	}
	return file.Judge, nil
}

func sampleJudge() notify.Judge {
	return notify.Judge{Attendee: notify.Attendee{
		FirstName: "Alex",
		LastName:  "Example",
		Email:     "judge@mailinator.com",
	}}
}
