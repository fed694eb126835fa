package sim

import (
	"math"

	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer/levels"
)

// groupOrder is the order in which groups advance after the player.
// Later groups observe the positions earlier groups reached this tick.
var groupOrder = [...]GroupKind{
	GroupBricks,
	GroupBoxes,
	GroupEnemies,
	GroupDying,
	GroupShells,
	GroupCoins,
	GroupPowerups,
}

// Level owns every entity of one level and resolves their interactions.
type Level struct {
	cfg  config.PlatformerConfig
	id   string
	name string
	bg   string
	info *Info

	player  *Player
	groups  [groupKinds]*Group
	dormant map[string][]*Enemy
	intents []intent

	keys Keys
	now  int64

	startX, endX float64
	camera       core.RectF

	finished bool
	next     Next
}

// Start builds a level from its description. info is shared with the
// caller and is updated in place by scoring and death.
func Start(desc levels.Description, cfg config.PlatformerConfig, info *Info) *Level {
	l := &Level{
		cfg:     cfg,
		id:      desc.ID,
		name:    desc.Name,
		bg:      desc.Background,
		info:    info,
		dormant: make(map[string][]*Enemy),
	}
	for k := range l.groups {
		kind := GroupKind(k)
		if kind != GroupNone && kind != GroupDormant {
			l.groups[k] = newGroup(kind)
		}
	}
	Populate(l, &desc)
	return l
}

// ID returns the level id.
func (l *Level) ID() string { return l.id }

// Name returns the display name.
func (l *Level) Name() string { return l.name }

// Player returns the player.
func (l *Level) Player() *Player { return l.player }

// Info returns the shared info record.
func (l *Level) Info() *Info { return l.info }

// Camera returns the visible window in world pixels.
func (l *Level) Camera() core.RectF { return l.camera }

// Now returns the clock value of the last update.
func (l *Level) Now() int64 { return l.now }

// Outcome reports whether the level is over and what follows.
func (l *Level) Outcome() Outcome {
	return Outcome{Finished: l.finished, Next: l.next}
}

// Update advances the level by one tick. now is the level clock in ms and
// must not decrease between calls.
func (l *Level) Update(keys Keys, now int64) {
	if l.finished {
		return
	}
	l.keys, l.now = keys, now

	p := l.player
	p.update(l)

	switch {
	case p.Dead:
		if p.deathTimer.Reached(now, l.cfg.World.DeathDelayMs) {
			l.finishDeath()
		}
	case p.Frozen():
	default:
		l.updatePlayerPosition()
		l.checkCheckpoints()
		l.checkFallDeath()
		l.updateCamera()
		l.Flush()
		for _, kind := range groupOrder {
			l.updateGroup(kind)
		}
	}
}

func (l *Level) finishDeath() {
	l.finished = true
	l.info.Lives--
	if l.info.Lives <= 0 {
		l.next = NextGameOver
	} else {
		l.next = NextLoadScreen
	}
}

func (l *Level) award(points int) {
	l.info.Score += points
}

func (l *Level) updatePlayerPosition() {
	p := l.player
	p.Rect.X += p.VX
	if p.Rect.X < l.startX {
		p.Rect.X = l.startX
	} else if p.Rect.Right() > l.endX {
		p.Rect.SetRight(l.endX)
	}
	l.checkX()

	if !p.Dead {
		p.Rect.Y += p.VY
		l.checkY()
	}
}

func (l *Level) checkX() {
	p := l.player
	if s := l.collide(p.Rect, GroupTerrain, GroupBricks, GroupBoxes); s != nil {
		sr := s.Bounds()
		if p.Rect.X < sr.X {
			p.Rect.SetRight(sr.X)
		} else {
			p.Rect.X = sr.Right()
		}
		p.VX = 0
	}

	if o := l.collideWhere(p.Rect, collectible, GroupPowerups); o != nil {
		l.collect(o.(*Powerup))
	}

	if p.Immune(l.now) {
		return
	}
	if l.collide(p.Rect, GroupEnemies) != nil {
		p.Hurt(l.now)
		return
	}
	if o := l.collide(p.Rect, GroupShells); o != nil {
		shell := o.(*Enemy)
		if shell.State == EnemySlide {
			p.GoDie(l.now)
		} else {
			shell.Kick(p.Rect.X < shell.Rect.X)
		}
	}
}

// collectible skips the player's own fireballs, which share the power-up group.
func collectible(e Entity) bool {
	return e.(*Powerup).Kind != Fireball
}

func (l *Level) collect(item *Powerup) {
	l.kill(item)
	l.award(l.cfg.Scoring.Powerup)
	l.player.Collect(item.Kind, l.now)
}

func (l *Level) checkY() {
	p := l.player
	ground := l.collide(p.Rect, GroupTerrain)
	brick := l.collide(p.Rect, GroupBricks)
	box := l.collide(p.Rect, GroupBoxes)
	enemy := l.collide(p.Rect, GroupEnemies)

	if brick != nil && box != nil {
		toBrick := math.Abs(p.Rect.CenterX() - brick.Bounds().CenterX())
		toBox := math.Abs(p.Rect.CenterX() - box.Bounds().CenterX())
		if toBrick > toBox {
			brick = nil
		} else {
			box = nil
		}
	}

	switch {
	case ground != nil:
		l.adjustY(ground)
	case brick != nil:
		l.adjustY(brick)
	case box != nil:
		l.adjustY(box)
	case enemy != nil && !p.Immune(l.now):
		l.stomp(enemy.(*Enemy))
	}

	l.checkWillFall()
}

// stomp resolves a vertical hit on a walking enemy. Rising into it bumps it
// away; landing on it tramples it and bounces the player.
func (l *Level) stomp(e *Enemy) {
	p := l.player
	dir := 1
	if !p.FaceRight {
		dir = -1
	}

	if p.VY < 0 {
		e.GoDie(CauseBumped, dir, l.now)
		l.move(e, GroupDying)
		l.award(l.cfg.Scoring.BumpKill)
		return
	}

	e.GoDie(CauseTrampled, dir, l.now)
	if e.Kind == Koopa {
		l.move(e, GroupShells)
	} else {
		l.move(e, GroupDying)
	}
	l.award(l.cfg.Scoring.Stomp)
	p.State = PlayerJump
	p.Rect.SetBottom(e.Rect.Y)
	p.VY = p.cfg.JumpVelocity * p.cfg.StompBounce
}

// adjustY resolves a vertical hit on a solid: landing on top or bumping it
// from below.
func (l *Level) adjustY(s Entity) {
	p := l.player
	sr := s.Bounds()
	if p.Rect.Bottom() < sr.Bottom() {
		p.VY = 0
		p.Rect.SetBottom(sr.Y)
		p.State = PlayerWalk
		return
	}

	p.VY = p.cfg.HeadBumpVelocity
	p.Rect.Y = sr.Bottom()
	p.State = PlayerFall

	l.bumpEnemyOn(sr)

	switch b := s.(type) {
	case *Box:
		b.GoBumped()
	case *Brick:
		if p.Power != PowerSmall && b.Type == levels.BlockEmpty && b.State == BlockRest {
			b.Smash(l)
			l.award(l.cfg.Scoring.BrickSmash)
		} else {
			b.GoBumped()
		}
	}
}

// bumpEnemyOn knocks off an enemy standing on a struck block.
func (l *Level) bumpEnemyOn(block core.RectF) {
	o := l.collide(block.Offset(0, -1), GroupEnemies)
	if o == nil {
		return
	}
	e := o.(*Enemy)
	dir := 1
	if block.CenterX() > e.Rect.CenterX() {
		dir = -1
	}
	e.GoDie(CauseBumped, dir, l.now)
	l.move(e, GroupDying)
	l.award(l.cfg.Scoring.BumpKill)
}

func (l *Level) checkWillFall() {
	p := l.player
	if l.supported(p.Rect) {
		return
	}
	if p.State != PlayerJump && !p.Frozen() && !p.Dead {
		p.State = PlayerFall
	}
}

func (l *Level) checkCheckpoints() {
	o := l.collide(l.player.Rect, GroupCheckpoints)
	if o == nil {
		return
	}
	cp := o.(*Checkpoint)
	switch cp.Type {
	case levels.CheckpointEnemyGroup:
		l.activate(cp.EnemyGroup)
	case levels.CheckpointGoal:
		l.finished = true
		l.next = NextLevelClear
	}
	l.kill(cp)
}

// activate moves a dormant enemy group into play.
func (l *Level) activate(id string) {
	for _, e := range l.dormant[id] {
		l.move(e, GroupEnemies)
	}
	delete(l.dormant, id)
}

func (l *Level) checkFallDeath() {
	if l.player.Rect.Y > l.cfg.World.ScreenH {
		l.player.GoDie(l.now)
	}
}

// updateCamera scrolls right once the player passes the first third of the
// window. The camera never moves left and the left scroll bound follows it.
func (l *Level) updateCamera() {
	p := l.player
	third := l.camera.X + l.camera.W/3
	if p.VX > 0 && p.Rect.CenterX() > third && l.camera.Right() < l.endX {
		l.camera.X = math.Min(l.camera.X+p.VX, l.endX-l.camera.W)
		l.startX = l.camera.X
	}
}

// popCoin spawns a coin above a block and credits it.
func (l *Level) popCoin(block core.RectF) {
	l.spawn(newCoin(l.cfg, block), GroupCoins)
	l.info.Coins++
	l.award(l.cfg.Scoring.Coin)
}

// popPowerup spawns the power-up a block yields for the current player.
func (l *Level) popPowerup(block core.RectF) {
	kind := Fireflower
	if l.player.Power == PowerSmall {
		kind = Mushroom
	}
	l.spawn(NewItem(l.cfg, kind, block.CenterX(), block.CenterY()), GroupPowerups)
}
