package cmd

import (
	"io"
	"os"

	"github.com/brogergvhs/chanedit/internal/buffer"
	"github.com/brogergvhs/chanedit/internal/util"

	"github.com/spf13/cobra"
)

var (
	flagOutput   string
	flagAnnotate bool
)

func init() {
	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "Write channel names to a file or stdout. Covers every channel type unless type flags are given",
		Args:  cobra.NoArgs,
		RunE:  runExport,
	}

	exportCmd.Flags().StringVarP(&flagOutput, "output", "o", "", "file to write (default stdout)")
	exportCmd.Flags().BoolVar(&flagAnnotate, "annotate", false, "add a header and the type and category of each channel as comments")

	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, _ []string) error {
	ctx, stop := util.NotifyInterrupt(cmd.Context(), os.Stderr)
	defer stop()

	sess, done, err := newSession(true)
	if err != nil {
		return err
	}
	defer done()

	return util.WriteOutput(flagOutput, os.Stdout, func(w io.Writer) error {
		return sess.Export(ctx, w, buffer.Options{Annotate: flagAnnotate})
	})
}
