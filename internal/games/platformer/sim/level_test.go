package sim

import (
	"math"
	"testing"

	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer/levels"
)

const tickMs = 10

// flatLevel is a long strip of ground with the player standing at x=110.
func flatLevel(mods ...func(*levels.Description)) levels.Description {
	d := levels.Description{
		ID:         "test",
		Name:       "Test",
		Background: "level_1",
		Maps:       []levels.MapBounds{{StartX: 0, EndX: 3000, PlayerX: 110, PlayerY: 538}},
		Terrain: []levels.Terrain{
			{Kind: levels.TerrainGround, Rect: levels.Rect{X: 0, Y: 538, Width: 3000, Height: 62}},
		},
	}
	for _, m := range mods {
		m(&d)
	}
	return d
}

func startLevel(d levels.Description) *Level {
	return Start(d, config.DefaultPlatformerConfig(), &Info{Lives: 3})
}

// tick advances the level by one tickMs step.
func tick(l *Level, keys Keys) {
	l.Update(keys, l.Now()+tickMs)
}

func makeBig(p *Player) {
	p.Power = PowerBig
	p.setShape(ShapeBig)
}

func TestStartPopulates(t *testing.T) {
	d := flatLevel(func(d *levels.Description) {
		d.Bricks = []levels.Brick{{X: 200, Y: 378, Reusable: true}}
		d.Boxes = []levels.Box{{X: 240, Y: 378, Type: levels.BlockCoin}}
		d.EnemyGroups = []levels.EnemyGroup{
			{ID: "a", Spawns: []levels.EnemySpawn{{Type: levels.EnemyKoopa, X: 600, Y: 538}}},
		}
		d.Checkpoints = []levels.Checkpoint{
			{Rect: levels.Rect{X: 300, Width: 10, Height: 600}, EnemyGroupID: "a"},
		}
	})
	l := startLevel(d)

	tests := []struct {
		kind     GroupKind
		expected int
	}{
		{GroupTerrain, 1},
		{GroupBricks, 1},
		{GroupBoxes, 1},
		{GroupEnemies, 0},
		{GroupCheckpoints, 1},
		{GroupPowerups, 0},
	}
	for _, tt := range tests {
		if got := l.Group(tt.kind).Len(); got != tt.expected {
			t.Errorf("%s Len() = %d, expected %d", tt.kind, got, tt.expected)
		}
	}

	p := l.Player()
	if p.Rect.X != 110 || p.Rect.Bottom() != 538 {
		t.Errorf("player at (%v, %v), expected (110, 538)", p.Rect.X, p.Rect.Bottom())
	}
	if p.State != PlayerStand || p.Power != PowerSmall {
		t.Errorf("player = %s/%s, expected stand/small", p.State, p.Power)
	}
	if l.Camera().X != 0 || l.Camera().W != 800 {
		t.Errorf("camera = %+v, expected x=0 w=800", l.Camera())
	}
}

func TestWalkRamp(t *testing.T) {
	cfg := config.DefaultPlatformerConfig()
	cfg.Player.WalkAccel = 0.2
	cfg.Player.MaxWalkSpeed = 2
	d := flatLevel(func(d *levels.Description) { d.Maps[0].PlayerX = 100 })
	l := Start(d, cfg, &Info{Lives: 3})

	const eps = 1e-9
	prev, sum := 0.0, 0.0
	for i := 0; i < 10; i++ {
		tick(l, Keys{Right: true})
		p := l.Player()
		if p.VX < prev {
			t.Errorf("tick %d: VX = %v decreased from %v", i, p.VX, prev)
		}
		if p.VX > 2+eps {
			t.Errorf("tick %d: VX = %v exceeds max 2", i, p.VX)
		}
		sum += p.VX
		if math.Abs(p.Rect.X-(100+sum)) > eps {
			t.Errorf("tick %d: X = %v, expected %v", i, p.Rect.X, 100+sum)
		}
		prev = p.VX
	}

	p := l.Player()
	if math.Abs(p.VX-2) > eps {
		t.Errorf("final VX = %v, expected 2", p.VX)
	}
	if math.Abs(p.Rect.X-111) > eps {
		t.Errorf("final X = %v, expected 111", p.Rect.X)
	}
	if p.State != PlayerWalk {
		t.Errorf("State = %s, expected walk", p.State)
	}
}

func TestBoxPowerup(t *testing.T) {
	tests := []struct {
		name     string
		big      bool
		expected PowerupKind
	}{
		{"small player gets mushroom", false, Mushroom},
		{"big player gets fireflower", true, Fireflower},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := startLevel(flatLevel(func(d *levels.Description) {
				d.Boxes = []levels.Box{{X: 400, Y: 338, Type: levels.BlockPowerup}}
			}))
			if tt.big {
				makeBig(l.Player())
			}
			box := l.Group(GroupBoxes).Items()[0].(*Box)

			if !box.GoBumped() {
				t.Fatal("GoBumped on resting box should succeed")
			}
			if box.GoBumped() {
				t.Error("GoBumped on bumped box should fail")
			}
			if box.VY >= 0 {
				t.Errorf("VY = %v, expected upward impulse", box.VY)
			}

			for i := 0; i < 100 && box.State == BlockBumped; i++ {
				tick(l, Keys{})
				if box.State == BlockRest {
					t.Fatal("bumped box returned to rest")
				}
			}

			if box.State != BlockOpen {
				t.Fatalf("State = %s, expected open", box.State)
			}
			if box.Rect.Y != box.Anchor() {
				t.Errorf("Y = %v, expected anchor %v", box.Rect.Y, box.Anchor())
			}

			items := l.Group(GroupPowerups).Items()
			if len(items) != 1 {
				t.Fatalf("powerups = %d, expected 1", len(items))
			}
			item := items[0].(*Powerup)
			if item.Kind != tt.expected {
				t.Errorf("Kind = %s, expected %s", item.Kind, tt.expected)
			}
			if item.State != PowerupGrow {
				t.Errorf("State = %s, expected grow", item.State)
			}
			if item.Rect.CenterX() != box.Rect.CenterX() {
				t.Errorf("CenterX = %v, expected %v", item.Rect.CenterX(), box.Rect.CenterX())
			}
			// One grow step has already run in the spawning tick.
			if item.Rect.CenterY() != box.Rect.CenterY()-1 {
				t.Errorf("CenterY = %v, expected %v", item.Rect.CenterY(), box.Rect.CenterY()-1)
			}
		})
	}
}

func TestBoxItemSettles(t *testing.T) {
	tests := []struct {
		name     string
		big      bool
		expected PowerupState
	}{
		{"mushroom walks off onto the ground", false, PowerupWalk},
		{"flower rests on the box", true, PowerupRest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := startLevel(flatLevel(func(d *levels.Description) {
				d.Boxes = []levels.Box{{X: 400, Y: 338, Type: levels.BlockPowerup}}
			}))
			if tt.big {
				makeBig(l.Player())
			}
			box := l.Group(GroupBoxes).Items()[0].(*Box)
			box.GoBumped()

			var item *Powerup
			for i := 0; i < 400; i++ {
				tick(l, Keys{})
				if items := l.Group(GroupPowerups).Items(); item == nil && len(items) == 1 {
					item = items[0].(*Powerup)
				}
				if item != nil && item.State == tt.expected && (tt.big || item.Rect.Bottom() == 538) {
					break
				}
			}

			if item == nil {
				t.Fatal("box spawned no power-up")
			}
			if item.State != tt.expected {
				t.Fatalf("State = %s, expected %s", item.State, tt.expected)
			}
			if !tt.big && item.Rect.Bottom() != 538 {
				t.Errorf("Bottom = %v, expected 538", item.Rect.Bottom())
			}
			if tt.big {
				if item.Rect.Bottom() >= box.Rect.Y {
					t.Errorf("Bottom = %v, expected above the box top %v", item.Rect.Bottom(), box.Rect.Y)
				}
				rest := item.Rect
				for i := 0; i < 50; i++ {
					tick(l, Keys{})
				}
				if item.Rect != rest {
					t.Errorf("resting flower moved to %+v", item.Rect)
				}
			}
		})
	}
}

func TestCollectSkipsFireball(t *testing.T) {
	l := startLevel(flatLevel())
	p := l.Player()
	fb := newFireball(l.cfg, p.Rect.CenterX(), p.Rect.CenterY(), true)
	mushroom := NewItem(l.cfg, Mushroom, p.Rect.CenterX(), p.Rect.CenterY())
	mushroom.State = PowerupWalk
	l.place(fb, GroupPowerups)
	l.place(mushroom, GroupPowerups)

	tick(l, Keys{})

	if mushroom.Group() != GroupNone {
		t.Errorf("mushroom group = %s, expected collected", mushroom.Group())
	}
	if p.State != PlayerSmall2Big {
		t.Errorf("player State = %s, expected small2big", p.State)
	}
	if l.Info().Score != l.cfg.Scoring.Powerup {
		t.Errorf("Score = %d, expected %d", l.Info().Score, l.cfg.Scoring.Powerup)
	}
	if fb.Group() != GroupPowerups {
		t.Errorf("fireball group = %s, expected it to stay in flight", fb.Group())
	}
}

func TestBoxCoin(t *testing.T) {
	l := startLevel(flatLevel(func(d *levels.Description) {
		d.Boxes = []levels.Box{{X: 400, Y: 338, Type: levels.BlockCoin}}
	}))
	box := l.Group(GroupBoxes).Items()[0].(*Box)
	box.GoBumped()

	for i := 0; i < 100 && box.State == BlockBumped; i++ {
		tick(l, Keys{})
	}

	if l.Group(GroupCoins).Len() != 1 {
		t.Fatalf("coins = %d, expected 1", l.Group(GroupCoins).Len())
	}
	if l.Info().Coins != 1 {
		t.Errorf("Info.Coins = %d, expected 1", l.Info().Coins)
	}
	if l.Info().Score != 200 {
		t.Errorf("Info.Score = %d, expected 200", l.Info().Score)
	}
	if l.Group(GroupPowerups).Len() != 0 {
		t.Errorf("powerups = %d, expected 0", l.Group(GroupPowerups).Len())
	}

	for i := 0; i < 100 && l.Group(GroupCoins).Len() > 0; i++ {
		tick(l, Keys{})
	}
	if l.Group(GroupCoins).Len() != 0 {
		t.Error("coin should remove itself after falling back")
	}
}

func TestBrickSmash(t *testing.T) {
	l := startLevel(flatLevel(func(d *levels.Description) {
		d.Maps[0].PlayerX = 100
		d.Bricks = []levels.Brick{{X: 95, Y: 400, Type: levels.BlockEmpty}}
	}))
	makeBig(l.Player())
	brick := l.Group(GroupBricks).Items()[0].(*Brick)

	tick(l, Keys{Jump: true})
	if l.Group(GroupBricks).Len() != 1 {
		t.Fatal("brick smashed before contact")
	}
	tick(l, Keys{Jump: true})

	if l.Group(GroupBricks).Len() != 0 {
		t.Errorf("bricks = %d, expected 0", l.Group(GroupBricks).Len())
	}
	if brick.Group() != GroupNone {
		t.Errorf("brick group = %s, expected none", brick.Group())
	}
	if l.Info().Score != 50 {
		t.Errorf("Score = %d, expected 50", l.Info().Score)
	}

	debris := l.Group(GroupDying).Items()
	if len(debris) != 4 {
		t.Fatalf("debris = %d, expected 4", len(debris))
	}
	gravity := config.DefaultPlatformerConfig().World.Gravity
	for i, e := range debris {
		d := e.(*Debris)
		v := debrisVelocities[i]
		if d.VX != v[0] {
			t.Errorf("debris %d VX = %v, expected %v", i, d.VX, v[0])
		}
		// One update has run since the smash.
		if d.VY != v[1]+gravity {
			t.Errorf("debris %d VY = %v, expected %v", i, d.VY, v[1]+gravity)
		}
	}

	p := l.Player()
	if p.State != PlayerFall {
		t.Errorf("player State = %s, expected fall", p.State)
	}

	for i := 0; i < 200 && l.Group(GroupDying).Len() > 0; i++ {
		tick(l, Keys{})
	}
	if l.Group(GroupDying).Len() != 0 {
		t.Error("debris should remove itself below the world")
	}
}

func TestSmallPlayerBumpsBrick(t *testing.T) {
	l := startLevel(flatLevel(func(d *levels.Description) {
		d.Maps[0].PlayerX = 100
		d.Bricks = []levels.Brick{{X: 95, Y: 400, Type: levels.BlockEmpty, Reusable: true}}
	}))
	brick := l.Group(GroupBricks).Items()[0].(*Brick)

	for i := 0; i < 30 && brick.State == BlockRest; i++ {
		tick(l, Keys{Jump: true})
	}

	if brick.State != BlockBumped {
		t.Fatalf("State = %s, expected bumped", brick.State)
	}
	if brick.Group() != GroupBricks {
		t.Errorf("brick group = %s, expected bricks", brick.Group())
	}
	if l.Group(GroupDying).Len() != 0 {
		t.Errorf("dying = %d, expected 0", l.Group(GroupDying).Len())
	}

	for i := 0; i < 100 && brick.State == BlockBumped; i++ {
		tick(l, Keys{})
	}
	if brick.State != BlockRest {
		t.Errorf("reusable brick State = %s, expected rest", brick.State)
	}
	if brick.Rect.Y != brick.Anchor() {
		t.Errorf("Y = %v, expected anchor %v", brick.Rect.Y, brick.Anchor())
	}
}

func TestBrickAnchorRoundTrip(t *testing.T) {
	tests := []struct {
		name     string
		brick    levels.Brick
		expected BlockState
	}{
		{"reusable empty", levels.Brick{X: 400, Y: 300, Reusable: true}, BlockRest},
		{"single use empty", levels.Brick{X: 400, Y: 300}, BlockOpen},
		{"coin", levels.Brick{X: 400, Y: 300, Type: levels.BlockCoin}, BlockOpen},
		{"powerup", levels.Brick{X: 400, Y: 300, Type: levels.BlockPowerup}, BlockOpen},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := startLevel(flatLevel(func(d *levels.Description) {
				d.Bricks = []levels.Brick{tt.brick}
			}))
			b := l.Group(GroupBricks).Items()[0].(*Brick)
			b.GoBumped()

			for i := 0; i < 100 && b.State == BlockBumped; i++ {
				tick(l, Keys{})
			}
			if b.State != tt.expected {
				t.Errorf("State = %s, expected %s", b.State, tt.expected)
			}
			if b.Rect.Y != b.Anchor() || b.Anchor() != tt.brick.Y {
				t.Errorf("Y = %v anchor = %v, expected %v", b.Rect.Y, b.Anchor(), tt.brick.Y)
			}
		})
	}
}

func TestFireballBoom(t *testing.T) {
	l := startLevel(flatLevel(func(d *levels.Description) {
		d.Terrain = append(d.Terrain, levels.Terrain{
			Kind: levels.TerrainPipe,
			Rect: levels.Rect{X: 260, Y: 300, Width: 80, Height: 238},
		})
	}))
	fb := newFireball(l.cfg, 200, 450, true)
	l.spawn(fb, GroupPowerups)
	l.Flush()

	for i := 0; i < 50 && fb.State == PowerupFly; i++ {
		tick(l, Keys{})
	}
	if fb.State != PowerupBoom {
		t.Fatalf("State = %s, expected boom", fb.State)
	}
	if fb.Frame != 4 {
		t.Errorf("Frame = %d, expected 4", fb.Frame)
	}

	boomAt := l.Now()
	rect := fb.Rect
	lastFrame := fb.Frame
	for i := 0; i < 100 && fb.Group() == GroupPowerups; i++ {
		tick(l, Keys{})
		if fb.Rect != rect {
			t.Fatalf("fireball moved during boom: %+v, expected %+v", fb.Rect, rect)
		}
		if fb.Frame < lastFrame || fb.Frame > 6 {
			t.Fatalf("Frame = %d after %d", fb.Frame, lastFrame)
		}
		lastFrame = fb.Frame
	}

	if fb.Group() != GroupNone {
		t.Fatal("fireball should remove itself after the last boom frame")
	}
	if lastFrame != 6 {
		t.Errorf("last Frame = %d, expected 6", lastFrame)
	}
	if got := l.Now() - boomAt; got != 150 {
		t.Errorf("boom lasted %d ms, expected 150", got)
	}
}

func TestFireballBounces(t *testing.T) {
	l := startLevel(flatLevel())
	fb := newFireball(l.cfg, 600, 450, true)
	l.spawn(fb, GroupPowerups)
	l.Flush()

	bounces := 0
	for i := 0; i < 60; i++ {
		tick(l, Keys{})
		if fb.State != PowerupFly || fb.Group() != GroupPowerups {
			t.Fatalf("tick %d: fireball = %s/%s, expected it flying", i, fb.Group(), fb.State)
		}
		if fb.Rect.Bottom() > 538 {
			t.Fatalf("tick %d: Bottom = %v, sank into the ground", i, fb.Rect.Bottom())
		}
		if fb.VY == l.cfg.Powerup.FireballBounce {
			bounces++
		}
	}
	if bounces < 2 {
		t.Errorf("bounces = %d, expected at least 2", bounces)
	}
}

func TestFireballKillsEnemy(t *testing.T) {
	l := startLevel(flatLevel())
	goomba := NewEnemy(l.cfg, Goomba, 250, 538, false, false)
	l.place(goomba, GroupEnemies)
	fb := newFireball(l.cfg, 200, 480, true)
	l.spawn(fb, GroupPowerups)
	l.Flush()

	for i := 0; i < 20 && goomba.Group() == GroupEnemies; i++ {
		tick(l, Keys{})
	}

	if goomba.Group() != GroupDying {
		t.Fatalf("goomba group = %s, expected dying", goomba.Group())
	}
	if goomba.State != EnemyDie {
		t.Errorf("goomba State = %s, expected die", goomba.State)
	}
	if fb.State != PowerupBoom {
		t.Errorf("fireball State = %s, expected boom", fb.State)
	}
	if l.Info().Score != 200 {
		t.Errorf("Score = %d, expected 200", l.Info().Score)
	}
}

func TestStompGoomba(t *testing.T) {
	l := startLevel(flatLevel(func(d *levels.Description) {
		d.Maps[0].PlayerX = 100
		d.Maps[0].PlayerY = 300
	}))
	goomba := NewEnemy(l.cfg, Goomba, 100, 538, false, false)
	l.place(goomba, GroupEnemies)

	for i := 0; i < 60 && goomba.Group() == GroupEnemies; i++ {
		tick(l, Keys{})
	}

	if goomba.Group() != GroupDying {
		t.Fatalf("goomba group = %s, expected dying", goomba.Group())
	}
	if goomba.State != EnemyTrampled {
		t.Errorf("goomba State = %s, expected trampled", goomba.State)
	}
	p := l.Player()
	if p.Dead {
		t.Error("stomping player should survive")
	}
	if p.State != PlayerJump {
		t.Errorf("player State = %s, expected jump", p.State)
	}
	if p.VY != -8 {
		t.Errorf("player VY = %v, expected -8", p.VY)
	}
	if l.Info().Score != 100 {
		t.Errorf("Score = %d, expected 100", l.Info().Score)
	}
}

func TestEnemyKillsSmallPlayer(t *testing.T) {
	l := startLevel(flatLevel())
	l.place(NewEnemy(l.cfg, Goomba, 200, 538, false, false), GroupEnemies)

	p := l.Player()
	for i := 0; i < 100 && !p.Dead; i++ {
		tick(l, Keys{})
	}
	if !p.Dead || p.State != PlayerDie {
		t.Errorf("player Dead = %v State = %s, expected dead", p.Dead, p.State)
	}
}

func TestHurtImmunity(t *testing.T) {
	l := startLevel(flatLevel())
	p := l.Player()
	makeBig(p)
	p.Hurt(0)
	if p.State != PlayerBig2Small {
		t.Fatalf("State = %s, expected big2small", p.State)
	}

	for l.Now() < 1980 {
		tick(l, Keys{})
	}
	if p.Power != PowerSmall || p.Frozen() {
		t.Fatalf("Power = %s frozen = %v, expected small and settled", p.Power, p.Frozen())
	}

	// An enemy overlapping the player while immune does no damage.
	goomba := NewEnemy(l.cfg, Goomba, p.Rect.X+10, 538, false, false)
	l.place(goomba, GroupEnemies)
	tick(l, Keys{})
	if l.Now() != 1990 {
		t.Fatalf("Now = %d, expected 1990", l.Now())
	}
	if p.Dead {
		t.Fatal("player died inside the immune window")
	}
	if !p.Immune(1990) {
		t.Error("player should still be immune at 1990")
	}

	tick(l, Keys{})
	if p.Immune(2000) {
		t.Error("immunity should end at 2000")
	}
	if !p.Dead {
		t.Error("player should take damage once immunity ends")
	}
}

func TestCheckpoints(t *testing.T) {
	l := startLevel(flatLevel(func(d *levels.Description) {
		d.EnemyGroups = []levels.EnemyGroup{
			{ID: "a", Spawns: []levels.EnemySpawn{{Type: levels.EnemyGoomba, X: 1200, Y: 538}}},
		}
		d.Checkpoints = []levels.Checkpoint{
			{Rect: levels.Rect{X: 150, Width: 10, Height: 600}, EnemyGroupID: "a"},
			{Rect: levels.Rect{X: 400, Width: 10, Height: 600}, Type: levels.CheckpointGoal},
		}
	}))

	if l.Group(GroupEnemies).Len() != 0 {
		t.Fatalf("enemies = %d before checkpoint, expected 0", l.Group(GroupEnemies).Len())
	}

	for i := 0; i < 100 && l.Group(GroupEnemies).Len() == 0; i++ {
		tick(l, Keys{Right: true})
	}
	if l.Group(GroupEnemies).Len() != 1 {
		t.Fatalf("enemies = %d after checkpoint, expected 1", l.Group(GroupEnemies).Len())
	}
	if l.Group(GroupCheckpoints).Len() != 1 {
		t.Errorf("checkpoints = %d, expected 1 left", l.Group(GroupCheckpoints).Len())
	}

	for i := 0; i < 300 && !l.Outcome().Finished; i++ {
		tick(l, Keys{Right: true})
	}
	out := l.Outcome()
	if !out.Finished || out.Next != NextLevelClear {
		t.Errorf("Outcome = %+v, expected finished level_clear", out)
	}
	if l.Info().Lives != 3 {
		t.Errorf("Lives = %d, expected 3", l.Info().Lives)
	}
}

func TestDeathOutcome(t *testing.T) {
	tests := []struct {
		lives     int
		expected  Next
		remaining int
	}{
		{3, NextLoadScreen, 2},
		{1, NextGameOver, 0},
	}

	for _, tt := range tests {
		pit := flatLevel(func(d *levels.Description) { d.Terrain = nil })
		l := Start(pit, config.DefaultPlatformerConfig(), &Info{Lives: tt.lives})
		p := l.Player()

		for i := 0; i < 100 && !p.Dead; i++ {
			tick(l, Keys{})
		}
		if !p.Dead {
			t.Fatal("player should die falling into a pit")
		}
		diedAt := l.Now()

		for !l.Outcome().Finished && l.Now() < diedAt+5000 {
			if l.Now() > diedAt+3000 {
				t.Fatalf("level still running at %d", l.Now())
			}
			tick(l, Keys{})
		}

		if l.Now()-diedAt != 3000 {
			t.Errorf("finished %d ms after death, expected 3000", l.Now()-diedAt)
		}
		out := l.Outcome()
		if out.Next != tt.expected {
			t.Errorf("Next = %q, expected %q", out.Next, tt.expected)
		}
		if l.Info().Lives != tt.remaining {
			t.Errorf("Lives = %d, expected %d", l.Info().Lives, tt.remaining)
		}
	}
}

func TestCameraNeverMovesLeft(t *testing.T) {
	l := startLevel(flatLevel())
	prev := l.Camera().X
	for i := 0; i < 400; i++ {
		keys := Keys{Right: true, Run: true}
		if i > 300 {
			keys = Keys{Left: true}
		}
		tick(l, keys)
		cam := l.Camera()
		if cam.X < prev {
			t.Fatalf("tick %d: camera moved left from %v to %v", i, prev, cam.X)
		}
		if l.Player().Rect.X < cam.X {
			t.Fatalf("tick %d: player X %v behind camera %v", i, l.Player().Rect.X, cam.X)
		}
		if cam.Right() > 3000 {
			t.Fatalf("tick %d: camera right %v past level end", i, cam.Right())
		}
		prev = cam.X
	}
	if prev == 0 {
		t.Error("camera should have scrolled")
	}
}

func TestDrawList(t *testing.T) {
	l := startLevel(flatLevel(func(d *levels.Description) {
		d.Bricks = []levels.Brick{{X: 200, Y: 378}, {X: 2000, Y: 378}}
		d.Checkpoints = []levels.Checkpoint{{Rect: levels.Rect{X: 300, Width: 10, Height: 600}, Type: levels.CheckpointGoal}}
	}))
	items := l.DrawList()

	expected := []ItemKind{ItemBackground, ItemGround, ItemPlayer, ItemBrick}
	if len(items) != len(expected) {
		t.Fatalf("len(DrawList) = %d, expected %d", len(items), len(expected))
	}
	for i, kind := range expected {
		if items[i].Kind != kind {
			t.Errorf("items[%d] = %s, expected %s", i, items[i].Kind, kind)
		}
	}
	if items[0].State != "level_1" {
		t.Errorf("background = %q, expected level_1", items[0].State)
	}
	if items[0].Rect != core.NewRectF(0, 0, 800, 600) {
		t.Errorf("background rect = %+v", items[0].Rect)
	}
}

func TestStateValidity(t *testing.T) {
	descs, err := levels.Builtin()
	if err != nil {
		t.Fatalf("Builtin failed: %v", err)
	}

	for _, d := range descs {
		l := Start(d, config.DefaultPlatformerConfig(), &Info{Lives: 3})
		for i := 0; i < 3000 && !l.Outcome().Finished; i++ {
			tick(l, scriptedKeys(i))
			checkStates(t, l, i)
		}
	}
}

func checkStates(t *testing.T, l *Level, i int) {
	t.Helper()
	if !l.Player().State.Valid() {
		t.Fatalf("tick %d: invalid player state %d", i, l.Player().State)
	}
	if l.Pending() != 0 {
		t.Fatalf("tick %d: %d group changes left unflushed", i, l.Pending())
	}

	seen := make(map[Entity]GroupKind)
	for k := range groupKinds {
		g := l.Group(GroupKind(k))
		if g == nil {
			continue
		}
		for _, e := range g.Items() {
			if prev, ok := seen[e]; ok {
				t.Fatalf("tick %d: entity in %s and %s", i, prev, g.Kind())
			}
			seen[e] = g.Kind()
			if e.Group() != g.Kind() {
				t.Fatalf("tick %d: entity in %s reports %s", i, g.Kind(), e.Group())
			}

			valid := true
			switch v := e.(type) {
			case *Enemy:
				valid = v.State.ValidFor(v.Kind)
			case *Brick:
				valid = v.State.Valid()
			case *Box:
				valid = v.State.Valid()
			case *Powerup:
				valid = v.State.ValidFor(v.Kind)
			}
			if !valid {
				t.Fatalf("tick %d: invalid state in %s", i, g.Kind())
			}
		}
	}
}

// scriptedKeys runs right, hopping and running in bursts.
func scriptedKeys(i int) Keys {
	return Keys{
		Right: i%200 < 170,
		Left:  i%200 >= 185,
		Jump:  i%60 < 25,
		Run:   i%90 < 40,
	}
}

func TestDeterminism(t *testing.T) {
	descs, err := levels.Builtin()
	if err != nil {
		t.Fatalf("Builtin failed: %v", err)
	}
	d := descs[0]

	l1 := Start(d, config.DefaultPlatformerConfig(), &Info{Lives: 3})
	l2 := Start(d, config.DefaultPlatformerConfig(), &Info{Lives: 3})
	for i := 0; i < 1500; i++ {
		tick(l1, scriptedKeys(i))
		tick(l2, scriptedKeys(i))

		h1, err := l1.Hash()
		if err != nil {
			t.Fatalf("Hash failed: %v", err)
		}
		h2, _ := l2.Hash()
		if h1 != h2 {
			t.Fatalf("tick %d: hashes differ %x != %x", i, h1, h2)
		}
	}
}

func TestSnapshotEncoding(t *testing.T) {
	l := startLevel(flatLevel())
	for i := 0; i < 20; i++ {
		tick(l, Keys{Right: true})
	}

	snap := l.Snapshot()
	b, err := snap.Encode()
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	got, err := DecodeSnapshot(b)
	if err != nil {
		t.Fatalf("DecodeSnapshot failed: %v", err)
	}
	if got.Player != snap.Player {
		t.Errorf("Player = %+v, expected %+v", got.Player, snap.Player)
	}
	if got.Now != 200 {
		t.Errorf("Now = %d, expected 200", got.Now)
	}
}
