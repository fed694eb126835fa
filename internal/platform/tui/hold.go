package tui

import "github.com/vovakirdan/tui-platformer/internal/core"

// HeldKeys turns key presses into a held-key snapshot. Terminals report
// presses and auto-repeats but never releases, so an action counts as held
// until holdMs passes without another press.
type HeldKeys struct {
	holdMs int64
	last   map[core.Action]int64
}

// NewHeldKeys creates an empty tracker.
func NewHeldKeys(holdMs int64) *HeldKeys {
	return &HeldKeys{holdMs: holdMs, last: make(map[core.Action]int64)}
}

// Holdable reports whether the action is a movement key tracked as held.
// Everything else is delivered once.
func Holdable(a core.Action) bool {
	switch a {
	case core.ActionLeft, core.ActionRight, core.ActionJump, core.ActionRun:
		return true
	}
	return false
}

// Press records a press or repeat at now. Left and right release each other.
func (h *HeldKeys) Press(a core.Action, now int64) {
	switch a {
	case core.ActionLeft:
		delete(h.last, core.ActionRight)
	case core.ActionRight:
		delete(h.last, core.ActionLeft)
	}
	h.last[a] = now
}

// Frame returns the actions held at now and forgets expired ones.
func (h *HeldKeys) Frame(now int64) core.InputFrame {
	frame := core.NewInputFrame()
	for a, t := range h.last {
		if now-t >= h.holdMs {
			delete(h.last, a)
			continue
		}
		frame.Set(a)
	}
	return frame
}

// Clear releases everything.
func (h *HeldKeys) Clear() {
	clear(h.last)
}
