// snake is a Snake game for the terminal.
//
// Usage:
//
//	snake                    - Play a game
//	snake backends           - List available terminal backends
//
// Flags:
//
//	--backend <name>    - Terminal backend (default: from config, else tcell)
//	--config <path>     - Config file (default: ~/.snake/config.yaml)
//	--seed <value>      - Set RNG seed for reproducible barriers and food
//	--log-file <path>   - Write logs to a file (default: no logging)
//	--log-level <level> - Log level: debug, info, warn, error (default: info)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	flagBackend  string
	flagConfig   string
	flagSeed     int64
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Snake - eat the food, avoid the walls",
	Long: `Snake is a classic terminal game. Steer the snake with the arrow keys,
WASD or hjkl, eat food to grow and avoid the walls, the barriers and
your own tail. Press q or Esc to quit.

Examples:
  snake
  snake --seed 42
  snake --backend ansi --log-file snake.log --log-level debug
  snake backends`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runPlay,
}

func init() {
	rootCmd.Flags().StringVar(&flagBackend, "backend", "", "Terminal backend (see 'snake backends')")
	rootCmd.Flags().StringVar(&flagConfig, "config", "", "Path to config file")
	rootCmd.Flags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.Flags().StringVar(&flagLogLevel, "log-level", "info", "Log level (debug, info, warn, error)")

	rootCmd.AddCommand(backendsCmd)
}
