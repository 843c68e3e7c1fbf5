// cmd/reefctl/root/shop.go
package root

import (
	"context"
	"fmt"

	"go-reef-survivors/internal/meta"

	"github.com/spf13/cobra"
)

func newShopCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "shop",
		Short: "List and buy permanent upgrades",
	}
	cmd.AddCommand(newShopListCmd(opts), newShopBuyCmd(opts))
	return cmd
}

func newShopListCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Show every upgrade with its level and next price",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			c, cleanup, err := openContext(ctx, opts)
			if err != nil {
				return err
			}
			defer cleanup()

			out := cmd.OutOrStdout()
			balance := c.Wallet.Balance()
			fmt.Fprintln(out, H2.Render("Upgrades"), Muted.Render(fmt.Sprintf("(%d pearls)", balance)))
			for _, o := range c.Offers() {
				price := Muted.Render("maxed")
				if !o.Maxed {
					price = fmt.Sprintf("%d", o.Cost)
					if o.Cost > balance {
						price = Bad.Render(price)
					} else {
						price = Good.Render(price)
					}
				}
				fmt.Fprintf(out, "- %-9s lvl %d/%d  next: %s\n", o.Category, o.Level, meta.MaxLevel, price)
			}
			return nil
		},
	}
}

func newShopBuyCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "buy <category>",
		Short: "Buy one level of an upgrade (strength, recovery, speed, magnet, health)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := meta.ParseCategory(args[0])
			if err != nil {
				return err
			}
			ctx := context.Background()
			c, cleanup, err := openContext(ctx, opts)
			if err != nil {
				return err
			}
			defer cleanup()

			if err := c.BuyUpgrade(ctx, cat); err != nil {
				return fmt.Errorf("buy %s: %w", cat, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s is now level %d (%d pearls left)\n",
				Good.Render("bought"), cat, c.Ledger.Points(cat), c.Wallet.Balance())
			return nil
		},
	}
}
