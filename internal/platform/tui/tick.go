// Package tui runs the platformer in a terminal with Bubble Tea: the game
// loop, held-key input, the level menu, the scoreboard and the SSH server.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// defaultTickRate is used when a config leaves the rate unset.
const defaultTickRate = 60

// TickMsg asks the model to advance the simulation one frame.
type TickMsg time.Time

func tickRate(rate int) int {
	if rate <= 0 {
		return defaultTickRate
	}
	return rate
}

// tickCmd schedules the next frame.
func tickCmd(rate int) tea.Cmd {
	return tea.Tick(time.Second/time.Duration(tickRate(rate)), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// frameClock converts a frame count to the millisecond clock the held keys
// run on. It advances with frames, not wall time, so a slow terminal never
// drops a held key early.
func frameClock(frames int64, rate int) int64 {
	return frames * 1000 / int64(tickRate(rate))
}
