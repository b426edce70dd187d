package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/brogergvhs/chanedit/internal/config"
	"github.com/brogergvhs/chanedit/internal/ui"

	"github.com/spf13/cobra"
)

var configInitCmd = &cobra.Command{
	Use:   "init [label]",
	Short: "Create a config profile (Default unless a label is given) and make it active",
	Long: `Create a profile holding the connection settings. Values passed with
--token, --guild-id, --editor and --workers are stored in it.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		label := config.DefaultLabel
		if len(args) == 1 {
			label = strings.TrimSpace(args[0])
		}

		path, err := config.ConfigPathByLabel(label)
		if err != nil {
			return err
		}

		if _, err := os.Stat(path); err == nil {
			fmt.Println("Configuration already exists at:")
			fmt.Println("  ", path)
			fmt.Println("Use `chanedit config edit` to change it.")
			return nil
		}

		def := config.DefaultConfig()
		def.Token = flagToken
		def.GuildID = flagGuildID
		def.Editor = flagEditor
		if flagWorkers > 0 {
			def.Workers = flagWorkers
		}
		if flagTimeout > 0 {
			def.Timeout = flagTimeout.String()
		}

		fmt.Println("Configuration file will be saved at:")
		fmt.Println("  ", path)
		fmt.Println()
		def.Print()
		fmt.Println()

		confirmer := ui.NewPromptConfirmer()
		defer confirmer.Close()

		ok, err := confirmer.Confirm(fmt.Sprintf("Create config %q", label))
		if err != nil {
			return err
		}
		if !ok {
			fmt.Println("Aborted.")
			return nil
		}

		if _, err := config.CreateConfig(label, def); err != nil && !errors.Is(err, os.ErrExist) {
			return fmt.Errorf("failed to write config file: %w", err)
		}

		if err := config.SwitchConfig(label); err != nil {
			return fmt.Errorf("failed to set active config: %w", err)
		}

		fmt.Println("Config created at:", path)
		fmt.Printf("This config is now active (label: %s).\n", label)

		return nil
	},
}

func init() {
	configCmd.AddCommand(configInitCmd)
}
