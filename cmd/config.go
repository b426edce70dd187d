package cmd

import (
	"fmt"
	"os"

	"github.com/brogergvhs/chanedit/internal/config"

	"github.com/spf13/cobra"
	"go.uber.org/multierr"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the resolved connection settings and where each one came from",
	Long: `Show the settings chanedit would use, merged from defaults, the active
profile, the environment (including .env) and flags. Each value is followed
by the layer it came from. Subcommands manage the profiles.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, used, err := loadConfig()
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Profile:\n  %s\n", used)
		if _, err := os.Stat(config.EnvFile); err == nil {
			fmt.Fprintf(out, "Environment file:\n  %s\n", config.EnvFile)
		}
		fmt.Fprintln(out)
		cfg.Fprint(out)

		filter, err := selectedFilter(cfg, false)
		if err == nil {
			fmt.Fprintf(out, "\nChannel types without flags: %s\n", filter)
		}

		if verr := multierr.Append(cfg.Validate(), err); verr != nil {
			fmt.Fprintln(out, "\nNot ready to connect:")
			for _, p := range multierr.Errors(verr) {
				fmt.Fprintf(out, "  - %v\n", p)
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
}
