package sim

import (
	"math"

	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
)

// Frame ranges of the fireball sprite.
const (
	fireballFlyFrames = 4
	fireballBoomFirst = 4
	fireballBoomLast  = 6
	flowerFrames      = 4
)

// Powerup is a mushroom, a fire flower or a player fireball.
type Powerup struct {
	body
	Kind  PowerupKind
	State PowerupState
	Right bool
	Frame int

	anchor float64 // grow ends once the bottom clears this line
	timer  Timer
	cfg    config.PowerupConfig
	world  config.WorldConfig
}

// NewItem creates a collectible power-up that grows out of a block centered
// at (cx, cy).
func NewItem(cfg config.PlatformerConfig, kind PowerupKind, cx, cy float64) *Powerup {
	size := cfg.Powerup.Size
	p := &Powerup{
		Kind:   kind,
		State:  PowerupGrow,
		Right:  true,
		anchor: cy - size/2,
		cfg:    cfg.Powerup,
		world:  cfg.World,
	}
	p.Rect = core.NewRectF(0, 0, size, size)
	p.Rect.SetCenterX(cx)
	p.Rect.SetCenterY(cy)
	p.VY = -cfg.Powerup.GrowSpeed
	if kind == Mushroom {
		p.VX = cfg.Powerup.MushroomSpeed
	}
	return p
}

func newFireball(cfg config.PlatformerConfig, cx, cy float64, right bool) *Powerup {
	size := cfg.Powerup.FireballSize
	p := &Powerup{
		Kind:  Fireball,
		State: PowerupFly,
		Right: right,
		cfg:   cfg.Powerup,
		world: cfg.World,
	}
	p.Rect = core.NewRectF(0, 0, size, size)
	p.Rect.SetCenterX(cx)
	p.Rect.SetCenterY(cy)
	p.VX = cfg.Powerup.FireballSpeed
	if !right {
		p.VX = -p.VX
	}
	p.VY = cfg.Powerup.FireballInitialVY
	return p
}

func (p *Powerup) update(l *Level) {
	switch p.Kind {
	case Mushroom:
		p.updateMushroom(l)
	case Fireflower:
		p.updateFlower(l)
	case Fireball:
		p.updateFireball(l)
	}
}

// grow rises until the bottom clears the anchor and reports completion.
func (p *Powerup) grow() bool {
	p.Rect.Y += p.VY
	return p.Rect.Bottom() < p.anchor
}

func (p *Powerup) updateMushroom(l *Level) {
	switch p.State {
	case PowerupGrow:
		if p.grow() {
			p.State = PowerupWalk
			p.VY = 0
		}
		return
	case PowerupFall:
		p.VY = math.Min(p.VY+p.cfg.Gravity, p.cfg.MaxFallSpeed)
	}

	p.Rect.X += p.VX
	if t := l.collide(p.Rect, GroupTerrain); t != nil {
		tr := t.Bounds()
		if p.Rect.X < tr.X {
			p.Rect.SetRight(tr.X)
			p.Right = false
		} else {
			p.Rect.X = tr.Right()
			p.Right = true
		}
		p.VX = math.Abs(p.VX)
		if !p.Right {
			p.VX = -p.VX
		}
	}

	p.Rect.Y += p.VY
	if s := l.collide(p.Rect, GroupTerrain, GroupBoxes, GroupBricks); s != nil {
		sr := s.Bounds()
		if p.Rect.Y < sr.Y {
			p.Rect.SetBottom(sr.Y)
			p.VY = 0
			p.State = PowerupWalk
		}
	}
	if p.State == PowerupWalk && !l.supported(p.Rect) {
		p.State = PowerupFall
	}

	if p.Rect.X < 0 || p.Rect.Y > p.world.ScreenH {
		l.kill(p)
	}
}

func (p *Powerup) updateFlower(l *Level) {
	if p.State == PowerupGrow && p.grow() {
		p.State = PowerupRest
		p.VY = 0
	}
	if !p.timer.ArmIfUnset(l.now) && p.timer.Elapsed(l.now) > p.cfg.FlowerFrameMs {
		p.Frame = (p.Frame + 1) % flowerFrames
		p.timer.Start(l.now)
	}
}

func (p *Powerup) updateFireball(l *Level) {
	if p.State == PowerupBoom {
		if !p.timer.Reached(l.now, p.cfg.BoomFrameMs) {
			return
		}
		if p.Frame < fireballBoomLast {
			p.Frame++
			p.timer.Start(l.now)
			return
		}
		l.kill(p)
		return
	}

	p.VY += p.cfg.Gravity
	if !p.timer.ArmIfUnset(l.now) && p.timer.Elapsed(l.now) > p.cfg.FireballFrameMs {
		p.Frame = (p.Frame + 1) % fireballFlyFrames
		p.timer.Start(l.now)
	}

	p.Rect.X += p.VX
	if l.collide(p.Rect, GroupTerrain) != nil {
		p.boom(l.now)
		return
	}
	if o := l.collide(p.Rect, GroupEnemies, GroupShells); o != nil {
		victim := o.(*Enemy)
		dir := 1
		if !p.Right {
			dir = -1
		}
		victim.GoDie(CauseBumped, dir, l.now)
		l.move(victim, GroupDying)
		l.award(l.cfg.Scoring.FireballKill)
		p.boom(l.now)
		return
	}

	p.Rect.Y += p.VY
	if s := l.collide(p.Rect, GroupTerrain, GroupBoxes, GroupBricks); s != nil {
		sr := s.Bounds()
		if p.Rect.Y < sr.Y {
			p.Rect.SetBottom(sr.Y)
			p.VY = p.cfg.FireballBounce
		}
	}

	if p.Rect.X < 0 || p.Rect.Y > p.world.ScreenH {
		l.kill(p)
	}
}

// boom stops the fireball and starts the explosion frames.
func (p *Powerup) boom(now int64) {
	p.State = PowerupBoom
	p.Frame = fireballBoomFirst
	p.VX, p.VY = 0, 0
	p.timer.Start(now)
}

func (p *Powerup) draw() DrawItem {
	kind := ItemMushroom
	switch p.Kind {
	case Fireflower:
		kind = ItemFireflower
	case Fireball:
		kind = ItemFireball
	}
	return DrawItem{Kind: kind, Rect: p.Rect, State: p.State.String(), Frame: p.Frame, Right: p.Right}
}
