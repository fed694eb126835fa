package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-platformer/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play [level]",
	Short: "Play the game",
	Long: `Start a run from the given level, or from the first level.

Controls:
  Left/Right, A/D  - Walk
  S/X (hold)       - Run, shoot fireballs with fire power
  Space/Up/W       - Jump (hold for higher jumps)
  P/Esc            - Pause
  R                - Restart (after game over)
  B                - Quit to shell (paused or game over)
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - More lives, slower enemies, longer immunity
  normal - Config values as-is
  hard   - One life, faster enemies, shorter immunity

Examples:
  platformer play
  platformer play 1-2
  platformer play --difficulty hard
  platformer play --config ./my-platformer.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, args []string) {
	descs, err := loadLevels()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	levelID := ""
	if len(args) == 1 {
		levelID = args[0]
		found := false
		for _, d := range descs {
			if d.ID == levelID {
				found = true
				break
			}
		}
		if !found {
			fmt.Fprintf(os.Stderr, "Error: unknown level %q\n", levelID)
			fmt.Fprintln(os.Stderr, "Run 'platformer list' to see available levels.")
			os.Exit(1)
		}
	}

	store := openStore()
	game, err := gameFactory(store)(levelID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	hold := holdMs()
	quietForTerminal(logger, flagLogFile)
	_, runErr := tui.Run(game, store, runtimeConfig(), hold)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
