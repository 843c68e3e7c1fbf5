// cmd/reefctl/root/profile.go
package root

import (
	"context"
	"errors"
	"fmt"

	"go-reef-survivors/internal/meta"

	"github.com/spf13/cobra"
)

func newProfileCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Show or reset the saved profile",
	}
	cmd.AddCommand(newProfileShowCmd(opts), newProfileResetCmd(opts))
	return cmd
}

func newProfileShowCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print currency, upgrade levels and pollution",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			c, cleanup, err := openContext(ctx, opts)
			if err != nil {
				return err
			}
			defer cleanup()

			p := c.Profile()
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, H2.Render("Profile"))
			fmt.Fprintln(out, LabelValue("Pearls", Gold.Render(fmt.Sprint(p.Currency))))
			for _, cat := range meta.Categories() {
				fmt.Fprintf(out, "- %-9s %d/%d %s\n", cat, p.Upgrades[cat], meta.MaxLevel,
					Muted.Render(fmt.Sprintf("(+%g)", meta.GetUpgradeBonus(cat, p.Upgrades[cat]))))
			}
			fmt.Fprintln(out, LabelValue("Pollution", pollutionText(p.Pollution, c.Pollution.IsPolluted())))
			return nil
		},
	}
}

func newProfileResetCmd(opts *options) *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Erase currency, upgrades and pollution progress",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				return errors.New("refusing to reset without --yes")
			}
			ctx := context.Background()
			c, cleanup, err := openContext(ctx, opts)
			if err != nil {
				return err
			}
			defer cleanup()

			if err := c.ResetProgress(ctx); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), Good.Render("profile reset"))
			return nil
		},
	}
	cmd.Flags().BoolVar(&yes, "yes", false, "confirm the reset")
	return cmd
}

func pollutionText(level float64, polluted bool) string {
	s := fmt.Sprintf("%.1f%%", level)
	if polluted {
		return Bad.Render(s + " polluted")
	}
	return Good.Render(s + " clean")
}
