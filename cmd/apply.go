package cmd

import (
	"os"

	"github.com/brogergvhs/chanedit/internal/util"

	"github.com/spf13/cobra"
)

var flagInput string

func init() {
	applyCmd := &cobra.Command{
		Use:   "apply",
		Short: "Rename channels from a file or stdin. Covers every channel type unless type flags are given",
		Long: `Read "<id><TAB><name>" lines and rename every listed channel whose name
differs from its current one. Channels that are not listed stay untouched.
Unknown or repeated ids, and lines without a tab, abort before any rename.`,
		Args: cobra.NoArgs,
		RunE: runApply,
	}

	applyCmd.Flags().StringVarP(&flagInput, "input", "i", "", "file to read (default stdin)")
	applyCmd.Flags().BoolVarP(&flagYes, "yes", "y", false, "apply without asking for confirmation")

	rootCmd.AddCommand(applyCmd)
}

func runApply(cmd *cobra.Command, _ []string) error {
	ctx, stop := util.NotifyInterrupt(cmd.Context(), os.Stderr)
	defer stop()

	text, err := util.ReadInput(flagInput, os.Stdin)
	if err != nil {
		return err
	}

	sess, done, err := newSession(true)
	if err != nil {
		return err
	}
	defer done()

	sess.AutoConfirm = flagYes
	return sess.Apply(ctx, text)
}
