package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-rockfall/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default configuration",
	Long: `Print the built-in game configuration as YAML.

Save it to ~/.rockfall/configs/rockfall.yaml or ./configs/rockfall.yaml to
customize the game, or pass any file with --config.

Examples:
  rockfall config > ~/.rockfall/configs/rockfall.yaml`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := fmt.Fprint(cmd.OutOrStdout(), string(config.DefaultYAML()))
		return err
	},
}
