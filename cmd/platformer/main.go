// platformer is a side-scrolling platformer played in the terminal.
//
// Usage:
//
//	platformer list               - List available levels
//	platformer play [level]       - Play from a level (default: the first)
//	platformer menu               - Pick levels interactively
//	platformer scores [level]     - Show final scores, or the best runs of a level
//	platformer serve              - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--db <path>           - Set database path (default: ~/.platformer/scores.db)
//	--config <path>       - Custom config YAML
//	--difficulty <name>   - Difficulty preset: easy, normal, hard
//	--levels <dir>        - Directory of extra level files
//	--log-file <path>     - Write debug logs to a file
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-platformer/internal/games/platformer"
)

var (
	// Global flags
	flagFPS        int
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLevels     string
	flagLogFile    string

	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "platformer",
	})
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "platformer",
	Short: "Platformer - a side-scroller in your terminal",
	Long: `Platformer is a terminal side-scroller: run, jump, stomp enemies,
break bricks and collect power-ups across a set of levels.

Available commands:
  list     - Show all available levels
  play     - Play starting from a level
  menu     - Interactive level picker
  scores   - View high scores and best runs
  serve    - Start SSH server for remote play

Examples:
  platformer list
  platformer play
  platformer play 1-2 --difficulty hard
  platformer menu --levels ./levels
  platformer serve --ssh :2222
  platformer scores 1-1`,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.platformer/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().StringVar(&flagLevels, "levels", "", "Directory of extra level files (YAML)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write debug logs to this file")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}

// setup applies the global flags to the game package and the logger.
func setup(_ *cobra.Command, _ []string) error {
	if flagFPS <= 0 {
		return fmt.Errorf("--fps must be positive, got %d", flagFPS)
	}

	platformer.SetConfigPath(flagConfig)
	platformer.SetDifficultyPreset(flagDifficulty)
	platformer.SetLevelsDir(flagLevels)

	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("cannot open log file: %w", err)
		}
		logger.SetOutput(f)
		logger.SetLevel(log.DebugLevel)
		platformer.SetLogger(logger)
	}
	return nil
}
