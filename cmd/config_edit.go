package cmd

import (
	"fmt"

	"github.com/brogergvhs/chanedit/internal/config"
	"github.com/brogergvhs/chanedit/internal/editor"

	"github.com/spf13/cobra"
)

var configEditCmd = &cobra.Command{
	Use:   "edit [label]",
	Short: "Open the active or the given config profile in your editor",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var label string

		if len(args) == 0 {
			var err error
			label, err = config.CurrentLabel()
			if err != nil {
				return fmt.Errorf("failed to get current config label: %w (run `chanedit config init`)", err)
			}
		} else {
			label = args[0]
		}

		path, err := config.ConfigPathByLabel(label)
		if err != nil {
			return fmt.Errorf("failed to get config path: %w", err)
		}

		command := flagEditor
		if cfg, _, err := loadConfig(); err == nil {
			command = cfg.Editor
		}

		if err := editor.New(command).EditFile(path); err != nil {
			return err
		}

		if _, _, err := loadConfig(); err != nil {
			return fmt.Errorf("config saved but no longer loads: %w", err)
		}

		return nil
	},
}

func init() {
	configCmd.AddCommand(configEditCmd)
}
