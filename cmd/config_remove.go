package cmd

import (
	"fmt"

	"github.com/brogergvhs/chanedit/internal/config"
	"github.com/brogergvhs/chanedit/internal/ui"

	"github.com/spf13/cobra"
)

var forceRemove bool

var configRemoveCmd = &cobra.Command{
	Use:   "remove <label>",
	Short: "Remove a config profile",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		label := args[0]

		active, _ := config.CurrentLabel()

		if label == active && !forceRemove {
			confirmer := ui.NewPromptConfirmer()
			defer confirmer.Close()

			ok, err := confirmer.Confirm(fmt.Sprintf("Config %q is currently active. Remove it anyway", label))
			if err != nil {
				return err
			}
			if !ok {
				fmt.Println("Aborted.")
				return nil
			}
		}

		if err := config.RemoveConfig(label, true); err != nil {
			return err
		}

		fmt.Printf("Removed configuration %q\n", label)
		return nil
	},
}

func init() {
	configRemoveCmd.Flags().BoolVarP(&forceRemove, "force", "f", false, "remove the active profile without asking")
	configCmd.AddCommand(configRemoveCmd)
}
