// cmd/reefctl/root/pollution.go
package root

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newPollutionCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pollution [level]",
		Short: "Show the reef pollution, or set it to a level in [0, 100]",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			c, cleanup, err := openContext(ctx, opts)
			if err != nil {
				return err
			}
			defer cleanup()

			if len(args) == 1 {
				level, err := strconv.ParseFloat(args[0], 64)
				if err != nil {
					return fmt.Errorf("pollution level %q: %w", args[0], err)
				}
				c.Pollution.Set(level)
				if err := c.Save(ctx); err != nil {
					return err
				}
			}
			fmt.Fprintln(cmd.OutOrStdout(), LabelValue("Pollution", pollutionText(c.Pollution.Level(), c.Pollution.IsPolluted())))
			return nil
		},
	}
	return cmd
}
