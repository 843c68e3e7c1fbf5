// cmd/reefctl/root/sim.go
package root

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"go-reef-survivors/internal/app"
	"go-reef-survivors/internal/storage"

	"github.com/spf13/cobra"
)

func newSimCmd(opts *options) *cobra.Command {
	var (
		sim    app.SimOptions
		dryRun bool
	)
	cmd := &cobra.Command{
		Use:   "sim",
		Short: "Play a headless run with a circling player",
		Long: "sim plays a run without a window: the player circles, drafts take the first available card\n" +
			"and statues are used as soon as the player reaches them. The result is saved like a real run\n" +
			"unless --dry-run is given.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			c, cleanup, err := openContext(ctx, opts)
			if err != nil {
				return err
			}
			defer cleanup()

			target := c
			if dryRun {
				target = app.NewMemoryContext(c.Library, c.Rng.Seed(), c.Log)
				c.Profile().Apply(target.Ledger, target.Wallet, target.Pollution)
			}

			start := time.Now()
			res, g, err := app.Simulate(ctx, target, sim)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			verdict := Bad.Render("defeated")
			if res.Survived {
				verdict = Good.Render("survived")
			}
			fmt.Fprintln(out, H2.Render("Run"), verdict, Muted.Render("("+res.Reason+")"))
			fmt.Fprintln(out, LabelValue("Time", formatDuration(res.TimeSurvived)))
			fmt.Fprintln(out, LabelValue("Kills", res.Kills))
			fmt.Fprintln(out, LabelValue("Level", g.PlayerSystem.Progression().Level))
			fmt.Fprintln(out, LabelValue("Pearls", Gold.Render(fmt.Sprintf("+%d", g.PlayerSystem.RunGold()))))
			fmt.Fprintln(out, LabelValue("Pollution", pollutionText(target.Pollution.Level(), target.Pollution.IsPolluted())))
			fmt.Fprintln(out, Muted.Render(fmt.Sprintf("simulated in %s, seed %d", time.Since(start).Round(time.Millisecond), target.Rng.Seed())))
			return nil
		},
	}
	cmd.Flags().StringVar(&sim.Character, "character", "", "character id (default diver)")
	cmd.Flags().Float64Var(&sim.Duration, "duration", 0, "seconds of game time to simulate (default full session)")
	cmd.Flags().Float64Var(&sim.Step, "step", 0, "simulation step in seconds (default fixed tick)")
	cmd.Flags().Float64Var(&sim.Orbit, "orbit", 0, "player turn rate, rad/s")
	cmd.Flags().Int64Var(&opts.seed, "seed", 0, "random seed (default $REEF_SEED)")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "simulate on a copy of the profile and save nothing")
	return cmd
}

func formatDuration(seconds float64) string {
	return time.Duration(seconds * float64(time.Second)).Round(time.Second).String()
}

func formatRun(r storage.RunRecord) string {
	verdict := Bad.Render("lost")
	if r.Survived {
		verdict = Good.Render("won ")
	}
	return fmt.Sprintf("%s %s %-8s lvl %-2d kills %-4d %s pearls +%d  %s",
		r.FinishedAt.Local().Format("2006-01-02 15:04"), verdict, r.Character, r.Level, r.Kills,
		formatDuration(r.TimeSurvived), r.GoldEarned, Muted.Render(r.ID[:min(8, len(r.ID))]))
}
