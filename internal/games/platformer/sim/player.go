package sim

import (
	"math"

	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
)

// Shape is the hitbox and sprite set the player currently shows. It differs
// from Power only while a size transition plays.
type Shape uint8

const (
	ShapeSmall Shape = iota
	ShapeMid
	ShapeBig
	ShapeFire
)

func (s Shape) String() string {
	switch s {
	case ShapeSmall:
		return "small"
	case ShapeMid:
		return "mid"
	case ShapeBig:
		return "big"
	default:
		return "fire"
	}
}

// Size transitions play each shape once, holding it for one transition frame.
var transitionShapes = map[PlayerState][]Shape{
	PlayerSmall2Big: {ShapeMid, ShapeSmall, ShapeMid, ShapeSmall, ShapeMid, ShapeBig, ShapeSmall, ShapeMid, ShapeBig, ShapeSmall, ShapeBig},
	PlayerBig2Small: {ShapeBig, ShapeMid, ShapeSmall, ShapeMid, ShapeSmall, ShapeMid, ShapeSmall, ShapeMid, ShapeSmall, ShapeMid, ShapeSmall},
	PlayerBig2Fire:  {ShapeFire, ShapeBig, ShapeFire, ShapeBig, ShapeFire, ShapeBig, ShapeFire, ShapeBig, ShapeFire, ShapeBig, ShapeFire},
}

// Player is the controlled character.
type Player struct {
	body
	State     PlayerState
	Power     Power
	Shape     Shape
	FaceRight bool
	Dead      bool
	Frame     int

	canJump  bool
	canShoot bool
	maxVX    float64
	accel    float64

	walkTimer       Timer
	transitionTimer Timer
	transitionStep  int
	deathTimer      Timer
	immuneTimer     Timer
	fireballTimer   Timer

	cfg   config.PlayerConfig
	world config.WorldConfig
}

// NewPlayer creates a small player standing with its bottom-left corner at
// (x, bottom).
func NewPlayer(cfg config.PlatformerConfig, x, bottom float64) *Player {
	p := &Player{
		State:     PlayerStand,
		Power:     PowerSmall,
		Shape:     ShapeSmall,
		FaceRight: true,
		canJump:   true,
		canShoot:  true,
		maxVX:     cfg.Player.MaxWalkSpeed,
		accel:     cfg.Player.WalkAccel,
		cfg:       cfg.Player,
		world:     cfg.World,
	}
	size := cfg.Player.SmallSize
	p.Rect = core.NewRectF(x, bottom-size.H, size.W, size.H)
	return p
}

// Frozen reports whether a size transition is playing. While frozen the
// level skips movement, collisions and every other group.
func (p *Player) Frozen() bool {
	return p.State.Transitioning()
}

// Immune reports whether damage is currently suppressed.
func (p *Player) Immune(now int64) bool {
	return p.immuneTimer.Armed() && p.immuneTimer.Elapsed(now) < p.cfg.HurtImmuneMs
}

// Blank reports whether the flicker shows the empty frame this tick.
func (p *Player) Blank(now int64) bool {
	if !p.Immune(now) || p.cfg.FlickerMs <= 0 {
		return false
	}
	return p.immuneTimer.Elapsed(now)%p.cfg.FlickerMs < p.cfg.FlickerMs/2
}

func (p *Player) update(l *Level) {
	keys, now := l.keys, l.now
	if !keys.Jump {
		p.canJump = true
	}
	if !keys.Run {
		p.canShoot = true
	}

	switch p.State {
	case PlayerStand:
		p.stand(keys, l)
	case PlayerWalk:
		p.walk(keys, l)
	case PlayerJump:
		p.jump(keys, l)
	case PlayerFall:
		p.fall(keys, l)
	case PlayerDie:
		p.die()
	case PlayerSmall2Big, PlayerBig2Small, PlayerBig2Fire:
		p.transition(now)
	}

	if p.immuneTimer.Reached(now, p.cfg.HurtImmuneMs) {
		p.immuneTimer.Clear()
	}
}

func (p *Player) stand(keys Keys, l *Level) {
	p.Frame = 0
	p.VX, p.VY = 0, 0
	switch {
	case keys.Right:
		p.FaceRight = true
		p.State = PlayerWalk
		p.walk(keys, l)
	case keys.Left:
		p.FaceRight = false
		p.State = PlayerWalk
		p.walk(keys, l)
	case keys.Jump && p.canJump:
		p.startJump()
	case keys.Run:
		p.shoot(l)
	}
}

func (p *Player) walk(keys Keys, l *Level) {
	if keys.Run {
		p.maxVX = p.cfg.MaxRunSpeed
		p.accel = p.cfg.RunAccel
		p.shoot(l)
	} else {
		p.maxVX = p.cfg.MaxWalkSpeed
		p.accel = p.cfg.WalkAccel
	}

	if keys.Jump && p.canJump {
		p.startJump()
	}

	if !p.walkTimer.ArmIfUnset(l.now) && float64(p.walkTimer.Elapsed(l.now)) > p.walkFrameMs() {
		if p.Frame < 3 {
			p.Frame++
		} else {
			p.Frame = 1
		}
		p.walkTimer.Start(l.now)
	}

	switch {
	case keys.Right:
		p.FaceRight = true
		if p.VX < 0 {
			p.Frame = 5
			p.accel = p.cfg.TurnAccel
		}
		p.VX = math.Min(p.VX+p.accel, p.maxVX)
	case keys.Left:
		p.FaceRight = false
		if p.VX > 0 {
			p.Frame = 5
			p.accel = p.cfg.TurnAccel
		}
		p.VX = math.Max(p.VX-p.accel, -p.maxVX)
	case p.FaceRight:
		p.VX -= p.accel
		if p.VX < 0 {
			p.VX = 0
			p.settle()
		}
	default:
		p.VX += p.accel
		if p.VX > 0 {
			p.VX = 0
			p.settle()
		}
	}
}

// settle stops a walk that has run out of speed. A jump started this tick wins.
func (p *Player) settle() {
	if p.State == PlayerWalk {
		p.State = PlayerStand
	}
}

// walkFrameMs shortens the walk cycle as speed grows.
func (p *Player) walkFrameMs() float64 {
	return 80 - 60*math.Abs(p.VX)/p.cfg.MaxRunSpeed
}

func (p *Player) startJump() {
	p.State = PlayerJump
	p.VY = p.cfg.JumpVelocity
	p.canJump = false
}

func (p *Player) jump(keys Keys, l *Level) {
	p.Frame = 4
	p.VY += p.world.AntiGravity
	p.canJump = false
	if p.VY >= 0 || !keys.Jump {
		p.State = PlayerFall
	}
	p.airControl(keys, l)
}

func (p *Player) fall(keys Keys, l *Level) {
	p.VY = math.Min(p.VY+p.world.Gravity, p.cfg.MaxYVelocity)
	p.airControl(keys, l)
}

func (p *Player) airControl(keys Keys, l *Level) {
	switch {
	case keys.Right:
		p.VX = math.Min(p.VX+p.accel, p.maxVX)
	case keys.Left:
		p.VX = math.Max(p.VX-p.accel, -p.maxVX)
	}
	if keys.Run {
		p.shoot(l)
	}
}

func (p *Player) die() {
	p.Rect.Y += p.VY
	p.VY += p.world.AntiGravity
}

// GoDie starts the death bounce. It is final for the level.
func (p *Player) GoDie(now int64) {
	if p.Dead {
		return
	}
	p.Dead = true
	p.State = PlayerDie
	p.VX = 0
	p.VY = p.cfg.JumpVelocity
	p.Frame = 6
	p.deathTimer.Start(now)
}

// Hurt applies one hit: big and fire players shrink and become immune,
// small players die. Hits while immune or mid-transition are ignored.
func (p *Player) Hurt(now int64) {
	if p.Dead || p.Frozen() || p.Immune(now) {
		return
	}
	if p.Power == PowerSmall {
		p.GoDie(now)
		return
	}
	p.immuneTimer.Start(now)
	p.startTransition(PlayerBig2Small, now)
}

// Collect applies a collected power-up.
func (p *Player) Collect(kind PowerupKind, now int64) {
	switch {
	case p.Power == PowerSmall && (kind == Mushroom || kind == Fireflower):
		p.startTransition(PlayerSmall2Big, now)
	case p.Power == PowerBig && kind == Fireflower:
		p.startTransition(PlayerBig2Fire, now)
	}
}

func (p *Player) startTransition(s PlayerState, now int64) {
	p.State = s
	p.VY = 0
	p.transitionStep = 0
	p.transitionTimer.Start(now)
}

func (p *Player) transition(now int64) {
	if !p.transitionTimer.Reached(now, p.cfg.TransitionFrameMs) {
		return
	}
	p.transitionTimer.Start(now)

	seq := transitionShapes[p.State]
	p.setShape(seq[p.transitionStep])
	p.transitionStep++
	if p.transitionStep < len(seq) {
		return
	}

	switch p.State {
	case PlayerSmall2Big:
		p.Power = PowerBig
	case PlayerBig2Small:
		p.Power = PowerSmall
	case PlayerBig2Fire:
		p.Power = PowerFire
	}
	p.State = PlayerWalk
	p.transitionTimer.Clear()
	p.transitionStep = 0
}

// setShape swaps the hitbox, keeping the bottom edge and horizontal center.
func (p *Player) setShape(s Shape) {
	size := p.cfg.BigSize
	switch s {
	case ShapeSmall:
		size = p.cfg.SmallSize
	case ShapeMid:
		size = p.cfg.MidSize
	}
	bottom, cx := p.Rect.Bottom(), p.Rect.CenterX()
	p.Rect.W, p.Rect.H = size.W, size.H
	p.Rect.SetBottom(bottom)
	p.Rect.SetCenterX(cx)
	p.Shape = s
}

// shoot spawns a fireball if the player has fire power and the cooldown
// has passed. One fireball per run-key press.
func (p *Player) shoot(l *Level) {
	if p.Power != PowerFire || !p.canShoot {
		return
	}
	if p.fireballTimer.Armed() && p.fireballTimer.Elapsed(l.now) <= p.cfg.FireballCooldownMs {
		return
	}
	p.Frame = 6
	l.spawn(newFireball(l.cfg, p.Rect.CenterX(), p.Rect.CenterY(), p.FaceRight), GroupPowerups)
	p.canShoot = false
	p.fireballTimer.Start(l.now)
}

func (p *Player) draw(now int64) DrawItem {
	return DrawItem{
		Kind:   ItemPlayer,
		Rect:   p.Rect,
		State:  p.State.String(),
		Frame:  p.Frame,
		Right:  p.FaceRight,
		Shape:  p.Shape,
		Hidden: p.Blank(now),
	}
}
