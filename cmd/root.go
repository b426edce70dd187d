package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/brogergvhs/chanedit/internal/channels"
	"github.com/brogergvhs/chanedit/internal/util"

	"github.com/spf13/cobra"
)

var (
	flagIgnoreConfig bool
	flagDebug        bool

	// connection
	flagToken   string
	flagGuildID string
	flagTimeout time.Duration

	// runtime
	flagEditor  string
	flagWorkers int
	flagYes     bool

	// channel types
	flagAll   bool
	flagKinds = map[channels.Kind]*bool{}
)

var rootCmd = &cobra.Command{
	Use:   "chanedit",
	Short: "Rename Discord channels in bulk with your $EDITOR",
	Long: `Rename the channels of a Discord server in bulk.

Without a subcommand the selected channels open in your editor as
"<id><TAB><name>" lines. Edit the names, save and quit, review the
changes and confirm. Use export and apply to script the same flow, e.g.

  chanedit export --text | sed 's/_/-/g' | chanedit apply --text`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runEdit,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.BoolVar(&flagDebug, "debug", false, "enable debug logging")
	pf.BoolVar(&flagIgnoreConfig, "ignore-config", false, "ignore config profiles and use only environment and CLI flags")

	pf.StringVarP(&flagToken, "token", "t", "", "bot token (default $DISCORD_TOKEN)")
	pf.StringVarP(&flagGuildID, "guild-id", "g", "", "guild (server) id (default $GUILD_ID)")
	pf.DurationVar(&flagTimeout, "timeout", 0, "timeout of a single Discord API request (default 30s)")
	pf.StringVar(&flagEditor, "editor", "", "editor command (default $VISUAL, $EDITOR, vi)")
	pf.IntVar(&flagWorkers, "workers", 0, "parallel rename requests (default 4)")

	for _, k := range channels.Kinds {
		v := new(bool)
		flagKinds[k] = v
		pf.BoolVar(v, k.String(), false, fmt.Sprintf("include %s channels", k))
	}
	pf.BoolVar(&flagAll, "all", false, "include channels of every type")

	rootCmd.Flags().BoolVarP(&flagYes, "yes", "y", false, "apply without asking for confirmation")
}

func runEdit(cmd *cobra.Command, _ []string) error {
	ctx, stop := util.NotifyInterrupt(cmd.Context(), os.Stderr)
	defer stop()

	sess, done, err := newSession(false)
	if err != nil {
		return err
	}
	defer done()

	sess.AutoConfirm = flagYes
	return sess.Edit(ctx)
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
