package sim

import (
	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer/levels"
)

// Populate builds every entity of a validated description into l: terrain,
// blocks, dormant enemy groups, checkpoints, the player and scroll bounds.
func Populate(l *Level, d *levels.Description) {
	cfg := l.cfg
	start := d.Start()
	l.startX, l.endX = start.StartX, start.EndX
	l.camera = core.NewRectF(start.StartX, 0, cfg.World.ScreenW, cfg.World.ScreenH)
	l.player = NewPlayer(cfg, start.PlayerX, start.PlayerY)

	for _, t := range d.Terrain {
		terrain := &Terrain{Kind: t.Kind}
		terrain.Rect = core.NewRectF(t.X, t.Y, t.Width, t.Height)
		l.place(terrain, GroupTerrain)
	}

	for _, b := range d.Bricks {
		l.place(NewBrick(cfg, b), GroupBricks)
	}
	for _, b := range d.Boxes {
		l.place(NewBox(cfg, b), GroupBoxes)
	}

	for _, g := range d.EnemyGroups {
		enemies := make([]*Enemy, 0, len(g.Spawns))
		for _, s := range g.Spawns {
			kind := Goomba
			if s.Type == levels.EnemyKoopa {
				kind = Koopa
			}
			e := NewEnemy(cfg, kind, s.X, s.Y, s.Direction == 1, s.Dark)
			e.group = GroupDormant
			enemies = append(enemies, e)
		}
		l.dormant[g.ID] = enemies
	}

	for _, c := range d.Checkpoints {
		cp := &Checkpoint{Type: c.Type, EnemyGroup: c.EnemyGroupID}
		cp.Rect = core.NewRectF(c.X, c.Y, c.Width, c.Height)
		l.place(cp, GroupCheckpoints)
	}
}
