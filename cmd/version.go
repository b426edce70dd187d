package cmd

import (
	"fmt"
	"runtime"
	"runtime/debug"

	"github.com/spf13/cobra"
)

// Version is set at build time with -ldflags "-X .../cmd.Version=...".
var Version = "dev"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show the chanedit version and the Discord library it was built with",
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, "chanedit version:", Version)

		info, ok := debug.ReadBuildInfo()
		if !ok {
			return
		}
		for _, s := range info.Settings {
			if s.Key == "vcs.revision" {
				fmt.Fprintln(out, "commit:", s.Value)
			}
		}
		for _, dep := range info.Deps {
			if dep.Path == "github.com/bwmarrin/discordgo" {
				fmt.Fprintln(out, "discordgo:", dep.Version)
			}
		}
		fmt.Fprintln(out, "go:", runtime.Version())
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
