package sim

import (
	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
)

// Coin pops out of a struck block, rises and falls back, then disappears.
type Coin struct {
	body
	Frame int

	floor   float64 // spawn line the coin falls back to
	gravity float64
	timer   Timer
	frameMs int64
}

func newCoin(cfg config.PlatformerConfig, block core.RectF) *Coin {
	c := &Coin{
		floor:   block.Y,
		gravity: cfg.World.Gravity,
		frameMs: cfg.Coin.FrameMs,
	}
	c.Rect = core.NewRectF(0, 0, cfg.Coin.Size.W, cfg.Coin.Size.H)
	c.Rect.SetCenterX(block.CenterX())
	c.Rect.SetBottom(block.Y)
	c.VY = cfg.Coin.PopVelocity
	return c
}

func (c *Coin) update(l *Level) {
	c.Rect.Y += c.VY
	c.VY += c.gravity
	if !c.timer.ArmIfUnset(l.now) && c.timer.Elapsed(l.now) > c.frameMs {
		c.Frame = (c.Frame + 1) % 4
		c.timer.Start(l.now)
	}
	if c.VY > 0 && c.Rect.Bottom() >= c.floor {
		l.kill(c)
	}
}

func (c *Coin) draw() DrawItem {
	return DrawItem{Kind: ItemCoin, Rect: c.Rect, Frame: c.Frame}
}
