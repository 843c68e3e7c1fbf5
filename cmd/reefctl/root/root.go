// cmd/reefctl/root/root.go
package root

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const Version = "0.1.0"

// options — флаги верхнего уровня, перекрывают окружение.
type options struct {
	dbPath   string
	content  string
	logLevel string
	seed     int64
}

// NewRootCmd собирает дерево команд. Каждый вызов — независимое дерево.
func NewRootCmd() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:           "reefctl",
		Short:         "Reef Survivors profile, shop and headless runs",
		Long:          "reefctl inspects and edits the saved profile, buys upgrades and runs headless simulations.",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.SetVersionTemplate("{{.Name}} v{{.Version}}\n")
	cmd.PersistentFlags().StringVar(&opts.dbPath, "db", "", "profile database (default $REEF_DB_PATH)")
	cmd.PersistentFlags().StringVar(&opts.content, "content", "", "content pack, .json or .yaml (default $REEF_CONTENT)")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "log level (default $REEF_LOG_LEVEL)")

	cmd.AddCommand(
		newProfileCmd(opts),
		newShopCmd(opts),
		newSimCmd(opts),
		newRunsCmd(opts),
		newPollutionCmd(opts),
	)
	return cmd
}

func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, Bad.Render("error: "+err.Error()))
		os.Exit(1)
	}
}
