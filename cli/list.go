package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/conmail/conmail/engine/notify"
)

// ListCmd prints the registered email categories.
func ListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List registered email categories",
		RunE: func(cmd *cobra.Command, _ []string) error {
			registry, err := notify.DefaultRegistry()
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "IDENT\tTEMPLATE\tSUBJECT")
			for _, cat := range registry.List() {
				fmt.Fprintf(w, "%s\t%s\t%s\n", cat.Ident, cat.Template, cat.Subject)
			}
			return w.Flush()
		},
	}
}
