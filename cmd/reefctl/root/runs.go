// cmd/reefctl/root/runs.go
package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func newRunsCmd(opts *options) *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "runs",
		Short: "List recent runs, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			c, cleanup, err := openContext(ctx, opts)
			if err != nil {
				return err
			}
			defer cleanup()

			runs, err := c.Runs.Recent(ctx, limit)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(runs) == 0 {
				fmt.Fprintln(out, Muted.Render("no runs yet"))
				return nil
			}
			fmt.Fprintln(out, H2.Render("Recent runs"))
			for _, r := range runs {
				fmt.Fprintln(out, formatRun(r))
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", 10, "how many runs to show")
	return cmd
}
