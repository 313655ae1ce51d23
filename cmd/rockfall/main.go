// rockfall is a terminal game: dodge the rocks falling from the top of the
// screen for as long as you can.
//
// Usage:
//
//	rockfall                 - Play a game
//	rockfall config          - Print the default configuration
//
// Global flags:
//
//	--seed <value>    - Set RNG seed for reproducible rock placement
//	--config <path>   - Load game settings from a YAML file
//	--backend <name>  - Terminal driver: tea (default) or tcell
//	--sound           - Play a crash tone on collision
//	--log <path>      - Log file (default: ~/.rockfall/rockfall.log)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagSeed    int64
	flagConfig  string
	flagBackend string
	flagSound   bool
	flagLogPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "rockfall",
	Short: "Rockfall - dodge the falling rocks",
	Long: `Rockfall drops rocks from the top of your terminal. Slide left and
right to avoid them; every frame you survive scores a point.

Controls:
  Left/H/A     - Move left
  Right/L/D    - Move right
  Q/Esc        - Quit
  Ctrl+C       - Abort immediately

Examples:
  rockfall
  rockfall --seed 42
  rockfall --backend tcell --sound
  rockfall --config ./my-rockfall.yaml`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runPlay,
}

func init() {
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagBackend, "backend", backendTea, "Terminal driver: tea or tcell")
	rootCmd.PersistentFlags().BoolVar(&flagSound, "sound", false, "Play a crash tone on collision")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "~/.rockfall/rockfall.log", "Path to log file")

	rootCmd.AddCommand(configCmd)
}
