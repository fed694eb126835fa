package sim

import "github.com/vovakirdan/tui-platformer/internal/core"

// ItemKind identifies what a draw item depicts.
type ItemKind uint8

const (
	ItemBackground ItemKind = iota
	ItemGround
	ItemPipe
	ItemStep
	ItemCheckpoint
	ItemPlayer
	ItemMushroom
	ItemFireflower
	ItemFireball
	ItemBrick
	ItemBox
	ItemGoomba
	ItemKoopa
	ItemDebris
	ItemCoin
)

var itemNames = [...]string{
	ItemBackground: "background",
	ItemGround:     "ground",
	ItemPipe:       "pipe",
	ItemStep:       "step",
	ItemCheckpoint: "checkpoint",
	ItemPlayer:     "player",
	ItemMushroom:   "mushroom",
	ItemFireflower: "fireflower",
	ItemFireball:   "fireball",
	ItemBrick:      "brick",
	ItemBox:        "box",
	ItemGoomba:     "goomba",
	ItemKoopa:      "koopa",
	ItemDebris:     "debris",
	ItemCoin:       "coin",
}

func (k ItemKind) String() string {
	if int(k) < len(itemNames) {
		return itemNames[k]
	}
	return "unknown"
}

// DrawItem is one entry of the draw list. Rect is relative to the camera.
type DrawItem struct {
	Kind   ItemKind
	Rect   core.RectF
	State  string
	Frame  int
	Right  bool
	Dark   bool
	Shape  Shape
	Hidden bool
}

// drawOrder lists the groups drawn after the player, back to front.
var drawOrder = [...]GroupKind{
	GroupPowerups,
	GroupBricks,
	GroupBoxes,
	GroupEnemies,
	GroupDying,
	GroupShells,
	GroupCoins,
}

// DrawList returns what the camera sees, back to front. The first item is
// always the background covering the whole viewport; terrain follows it.
func (l *Level) DrawList() []DrawItem {
	cam := l.camera
	items := make([]DrawItem, 0, 64)
	items = append(items, DrawItem{
		Kind:  ItemBackground,
		Rect:  core.NewRectF(0, 0, cam.W, cam.H),
		State: l.bg,
	})

	visible := func(e Entity) {
		r := e.Bounds()
		if !r.Intersects(cam) {
			return
		}
		it := e.draw()
		it.Rect = r.Offset(-cam.X, -cam.Y)
		items = append(items, it)
	}

	for _, e := range l.groups[GroupTerrain].items {
		visible(e)
	}

	p := l.player.draw(l.now)
	p.Rect = p.Rect.Offset(-cam.X, -cam.Y)
	items = append(items, p)

	for _, kind := range drawOrder {
		for _, e := range l.groups[kind].items {
			visible(e)
		}
	}
	return items
}
