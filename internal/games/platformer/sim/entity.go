// Package sim is the platformer simulation core: entity state machines,
// groups with deferred membership changes, and the per-tick collision and
// interaction resolver. It is deterministic given the same inputs and clock.
package sim

import (
	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer/levels"
)

// Keys is the held-key snapshot for one tick.
type Keys struct {
	Left  bool
	Right bool
	Run   bool // run, and shoot with fire power
	Jump  bool
}

// KeysFrom maps held platform actions to simulation keys.
func KeysFrom(in core.InputFrame) Keys {
	return Keys{
		Left:  in.Has(core.ActionLeft),
		Right: in.Has(core.ActionRight),
		Run:   in.Has(core.ActionRun),
		Jump:  in.Has(core.ActionJump),
	}
}

// Info is the record carried across levels.
type Info struct {
	Lives int
	Score int
	Coins int
}

// Outcome reports whether the level is over and where to go next.
type Outcome struct {
	Finished bool
	Next     Next
}

// body is the geometry and physics state shared by every entity.
type body struct {
	Rect   core.RectF
	VX, VY float64

	group   GroupKind
	pending bool // a group change is queued for the next flush
}

func (b *body) base() *body { return b }

// Bounds returns the entity rectangle in world pixels.
func (b *body) Bounds() core.RectF { return b.Rect }

// Group returns the group the entity currently belongs to.
func (b *body) Group() GroupKind { return b.group }

// Entity is implemented by every group member. The set of implementations
// is closed: *Terrain, *Checkpoint, *Brick, *Box, *Debris, *Enemy,
// *Powerup and *Coin.
type Entity interface {
	Bounds() core.RectF
	Group() GroupKind

	base() *body
	update(l *Level)
	draw() DrawItem
}

// Terrain is a static solid rectangle.
type Terrain struct {
	body
	Kind levels.TerrainKind
}

func (t *Terrain) update(*Level) {}

func (t *Terrain) draw() DrawItem {
	kind := ItemGround
	switch t.Kind {
	case levels.TerrainPipe:
		kind = ItemPipe
	case levels.TerrainStep:
		kind = ItemStep
	}
	return DrawItem{Kind: kind, Rect: t.Rect}
}

// Checkpoint is an invisible trigger consumed on first contact.
type Checkpoint struct {
	body
	Type       int
	EnemyGroup string
}

func (c *Checkpoint) update(*Level) {}

func (c *Checkpoint) draw() DrawItem {
	return DrawItem{Kind: ItemCheckpoint, Rect: c.Rect, Frame: c.Type}
}
