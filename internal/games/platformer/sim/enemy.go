package sim

import (
	"math"

	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
)

// Enemy is a ground walker (Goomba) or a shelled walker (Koopa).
type Enemy struct {
	body
	Kind  EnemyKind
	State EnemyState
	Right bool // heading
	Dark  bool
	Frame int

	gravity    float64
	frameTimer Timer
	deathTimer Timer
	shellTimer Timer

	cfg   config.EnemyConfig
	world config.WorldConfig
}

// NewEnemy creates a walking enemy whose bottom-left corner is at (x, bottom).
func NewEnemy(cfg config.PlatformerConfig, kind EnemyKind, x, bottom float64, right, dark bool) *Enemy {
	size := cfg.Enemy.GoombaSize
	if kind == Koopa {
		size = cfg.Enemy.KoopaSize
	}
	e := &Enemy{
		Kind:    kind,
		State:   EnemyWalk,
		Right:   right,
		Dark:    dark,
		gravity: cfg.World.Gravity,
		cfg:     cfg.Enemy,
		world:   cfg.World,
	}
	e.Rect = core.NewRectF(x, bottom-size.H, size.W, size.H)
	e.VX = e.heading() * cfg.Enemy.Speed
	return e
}

func (e *Enemy) heading() float64 {
	if e.Right {
		return 1
	}
	return -1
}

func (e *Enemy) update(l *Level) {
	switch e.State {
	case EnemyWalk:
		e.animate(l.now)
	case EnemyFall:
		e.VY = math.Min(e.VY+e.gravity, e.cfg.MaxFallSpeed)
	case EnemyDie:
		e.die(l)
		return
	case EnemyTrampled:
		if e.trampled(l) {
			return
		}
		e.airborne(l)
	case EnemySlide:
		e.airborne(l)
	}
	e.move(l)
}

func (e *Enemy) animate(now int64) {
	if e.frameTimer.ArmIfUnset(now) {
		return
	}
	if e.frameTimer.Elapsed(now) > e.cfg.WalkFrameMs {
		e.Frame = (e.Frame + 1) % 2
		e.frameTimer.Start(now)
	}
}

// airborne applies gravity to shells that keep their state while unsupported.
func (e *Enemy) airborne(l *Level) {
	if !l.supported(e.Rect) {
		e.VY = math.Min(e.VY+e.gravity, e.cfg.MaxFallSpeed)
	}
}

// trampled handles a flattened walker or an idle shell. It reports whether
// the enemy left the level or its state this tick.
func (e *Enemy) trampled(l *Level) bool {
	e.VX = 0
	e.Frame = 2
	if e.Kind == Goomba {
		if e.deathTimer.Reached(l.now, e.cfg.TrampleDelayMs) {
			l.kill(e)
			return true
		}
		return false
	}
	if e.shellTimer.Reached(l.now, e.cfg.ShellDelayMs) {
		e.State = EnemyWalk
		e.Frame = 0
		e.Right = !e.Right
		e.VX = e.heading() * e.cfg.Speed
		e.shellTimer.Clear()
		l.move(e, GroupEnemies)
		return true
	}
	return false
}

func (e *Enemy) die(l *Level) {
	e.Rect.X += e.VX
	e.Rect.Y += e.VY
	e.VY += e.gravity
	if e.Rect.Y > e.world.ScreenH {
		l.kill(e)
	}
}

func (e *Enemy) move(l *Level) {
	e.Rect.X += e.VX
	e.collideX(l)
	e.Rect.Y += e.VY
	e.collideY(l)
	if e.Rect.Y > e.world.ScreenH {
		l.kill(e)
	}
}

func (e *Enemy) collideX(l *Level) {
	if t := l.collide(e.Rect, GroupTerrain); t != nil {
		tr := t.Bounds()
		if e.Rect.X < tr.X {
			e.Rect.SetRight(tr.X)
			e.Right = false
		} else {
			e.Rect.X = tr.Right()
			e.Right = true
		}
		e.VX = e.heading() * math.Abs(e.VX)
	}

	if e.State != EnemySlide {
		return
	}
	if o := l.collide(e.Rect, GroupEnemies); o != nil {
		victim := o.(*Enemy)
		victim.GoDie(CauseSlided, int(e.heading()), l.now)
		l.move(victim, GroupDying)
		l.award(l.cfg.Scoring.ShellKill)
	}
}

func (e *Enemy) collideY(l *Level) {
	if s := l.collide(e.Rect, GroupTerrain, GroupBoxes, GroupBricks); s != nil {
		sr := s.Bounds()
		if e.Rect.Y < sr.Y {
			e.Rect.SetBottom(sr.Y)
			e.VY = 0
			if e.State == EnemyFall {
				e.State = EnemyWalk
			}
		}
	}
	if e.State == EnemyWalk && !l.supported(e.Rect) {
		e.State = EnemyFall
	}
}

// GoDie defeats the enemy. Bumped and slided enemies arc away in direction
// dir (-1 or 1) and leave through the world bottom; trampled walkers flatten
// and trampled shells go idle.
func (e *Enemy) GoDie(cause DeathCause, dir int, now int64) {
	switch cause {
	case CauseBumped, CauseSlided:
		e.State = EnemyDie
		e.VX = e.cfg.Speed * float64(dir)
		e.VY = e.cfg.DieVelocity
		e.gravity = e.cfg.DieGravity
		e.Frame = 2
	case CauseTrampled:
		e.State = EnemyTrampled
		e.VX = 0
		e.Frame = 2
		if e.Kind == Koopa {
			e.shellTimer.Start(now)
		} else {
			e.deathTimer.Start(now)
		}
	}
}

// Kick sends an idle shell sliding away from the kicker.
func (e *Enemy) Kick(towardRight bool) {
	e.State = EnemySlide
	e.shellTimer.Clear()
	e.Right = towardRight
	e.VX = e.heading() * e.cfg.ShellSpeed
	e.Rect.X += e.heading() * e.cfg.ShellKickShift
}

func (e *Enemy) draw() DrawItem {
	kind := ItemGoomba
	if e.Kind == Koopa {
		kind = ItemKoopa
	}
	return DrawItem{
		Kind:  kind,
		Rect:  e.Rect,
		State: e.State.String(),
		Frame: e.Frame,
		Right: e.Right,
		Dark:  e.Dark,
	}
}
