package sim

import (
	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer/levels"
)

// Box rest animation frame durations in milliseconds.
var boxRestFrameMs = [4]int64{400, 100, 100, 50}

// debrisVelocities are the fixed (vx, vy) pairs of a smashed brick.
var debrisVelocities = [4][2]float64{{-2, -10}, {2, -10}, {-2, -5}, {2, -5}}

// Brick is a breakable brick. Its anchor never changes.
type Brick struct {
	body
	State    BlockState
	Type     int
	Reusable bool
	Dark     bool
	Frame    int

	anchor float64
	cfg    config.BlockConfig
	world  config.WorldConfig
}

// NewBrick creates a resting brick at (x, y).
func NewBrick(cfg config.PlatformerConfig, d levels.Brick) *Brick {
	b := &Brick{
		State:    BlockRest,
		Type:     d.Type,
		Reusable: d.Reusable,
		Dark:     d.Dark,
		anchor:   d.Y,
		cfg:      cfg.Blocks,
		world:    cfg.World,
	}
	b.Rect = core.NewRectF(d.X, d.Y, cfg.Blocks.Size, cfg.Blocks.Size)
	return b
}

// Anchor returns the rest position of the top edge.
func (b *Brick) Anchor() float64 { return b.anchor }

// GoBumped starts the bump animation. Only a resting brick can be bumped.
func (b *Brick) GoBumped() bool {
	if b.State != BlockRest {
		return false
	}
	b.VY = b.cfg.BumpVelocity
	b.State = BlockBumped
	return true
}

func (b *Brick) update(l *Level) {
	switch b.State {
	case BlockBumped:
		b.Rect.Y += b.VY
		b.VY += b.world.Gravity
		if b.Rect.Y <= b.anchor+b.cfg.BrickThreshold {
			return
		}
		b.Rect.Y = b.anchor
		b.VY = 0
		switch {
		case b.Type == levels.BlockEmpty && b.Reusable:
			b.State = BlockRest
		case b.Type == levels.BlockEmpty:
			b.State = BlockOpen
		case b.Type == levels.BlockCoin:
			l.popCoin(b.Rect)
			b.State = BlockOpen
		default:
			l.popPowerup(b.Rect)
			b.State = BlockOpen
		}
	case BlockOpen:
		b.Frame = 1
	}
}

// Smash removes the brick and throws four debris into the dying group.
func (b *Brick) Smash(l *Level) {
	l.kill(b)
	for _, v := range debrisVelocities {
		l.spawn(newDebris(l.cfg, b.Rect.X, b.Rect.Y, v[0], v[1]), GroupDying)
	}
}

func (b *Brick) draw() DrawItem {
	return DrawItem{Kind: ItemBrick, Rect: b.Rect, State: b.State.String(), Frame: b.Frame, Dark: b.Dark}
}

// Box is a question box.
type Box struct {
	body
	State BlockState
	Type  int
	Frame int

	anchor    float64
	restTimer Timer
	cfg       config.BlockConfig
	world     config.WorldConfig
}

// NewBox creates a resting box at (x, y).
func NewBox(cfg config.PlatformerConfig, d levels.Box) *Box {
	b := &Box{
		State:  BlockRest,
		Type:   d.Type,
		anchor: d.Y,
		cfg:    cfg.Blocks,
		world:  cfg.World,
	}
	b.Rect = core.NewRectF(d.X, d.Y, cfg.Blocks.Size, cfg.Blocks.Size)
	return b
}

// Anchor returns the rest position of the top edge.
func (b *Box) Anchor() float64 { return b.anchor }

// GoBumped starts the bump animation. Only a resting box can be bumped.
func (b *Box) GoBumped() bool {
	if b.State != BlockRest {
		return false
	}
	b.VY = b.cfg.BumpVelocity
	b.State = BlockBumped
	return true
}

func (b *Box) update(l *Level) {
	switch b.State {
	case BlockRest:
		if !b.restTimer.ArmIfUnset(l.now) && b.restTimer.Elapsed(l.now) > boxRestFrameMs[b.Frame] {
			b.Frame = (b.Frame + 1) % len(boxRestFrameMs)
			b.restTimer.Start(l.now)
		}
	case BlockBumped:
		b.Rect.Y += b.VY
		b.VY += b.world.Gravity
		b.Frame = 3
		if b.Rect.Y <= b.anchor+b.cfg.BoxThreshold {
			return
		}
		b.Rect.Y = b.anchor
		b.VY = 0
		b.State = BlockOpen
		switch {
		case b.Type == levels.BlockEmpty:
		case b.Type == levels.BlockCoin:
			l.popCoin(b.Rect)
		default:
			l.popPowerup(b.Rect)
		}
	case BlockOpen:
		b.Frame = 3
	}
}

func (b *Box) draw() DrawItem {
	return DrawItem{Kind: ItemBox, Rect: b.Rect, State: b.State.String(), Frame: b.Frame}
}

// Debris is a fragment of a smashed brick.
type Debris struct {
	body
	gravity float64
	bottom  float64
}

func newDebris(cfg config.PlatformerConfig, x, y, vx, vy float64) *Debris {
	d := &Debris{gravity: cfg.World.Gravity, bottom: cfg.World.ScreenH}
	d.Rect = core.NewRectF(x, y, cfg.Blocks.DebrisSize, cfg.Blocks.DebrisSize)
	d.VX, d.VY = vx, vy
	return d
}

func (d *Debris) update(l *Level) {
	d.Rect.X += d.VX
	d.Rect.Y += d.VY
	d.VY += d.gravity
	if d.Rect.Y > d.bottom {
		l.kill(d)
	}
}

func (d *Debris) draw() DrawItem {
	return DrawItem{Kind: ItemDebris, Rect: d.Rect}
}
