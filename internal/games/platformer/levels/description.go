// Package levels provides the level description model, its YAML file format
// and a loader over embedded and on-disk level files.
// This package does not depend on the simulation; the simulation depends on it.
package levels

// TerrainKind tags a static terrain rectangle.
type TerrainKind string

const (
	TerrainGround TerrainKind = "ground"
	TerrainPipe   TerrainKind = "pipe"
	TerrainStep   TerrainKind = "step"
)

// Enemy spawn types.
const (
	EnemyGoomba = 0
	EnemyKoopa  = 1
)

// Checkpoint types.
const (
	CheckpointEnemyGroup = 0 // activates an enemy group once
	CheckpointGoal       = 1 // finishes the level
)

// Block payload types. Anything at or above BlockPowerup yields a power-up.
const (
	BlockEmpty   = 0
	BlockCoin    = 1
	BlockPowerup = 2
)

// Description is a fully parsed and validated level.
type Description struct {
	ID          string
	Name        string
	Background  string
	Maps        []MapBounds
	Terrain     []Terrain
	Bricks      []Brick
	Boxes       []Box
	EnemyGroups []EnemyGroup
	Checkpoints []Checkpoint
	FilePath    string
}

// MapBounds holds the horizontal scroll bounds and the player spawn point.
// PlayerY is the spawn baseline (bottom edge).
type MapBounds struct {
	StartX  float64
	EndX    float64
	PlayerX float64
	PlayerY float64
}

// Rect is a level-space rectangle.
type Rect struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// Terrain is a static, solid rectangle.
type Terrain struct {
	Kind TerrainKind
	Rect
}

// Brick describes a breakable brick. Reusable only matters for empty bricks.
type Brick struct {
	X        float64
	Y        float64
	Type     int
	Reusable bool
	Dark     bool
}

// Box describes a question box.
type Box struct {
	X    float64
	Y    float64
	Type int
}

// EnemyGroup is a named set of enemies activated together.
type EnemyGroup struct {
	ID     string
	Spawns []EnemySpawn
}

// EnemySpawn describes one enemy. Y is the baseline (bottom edge) and
// Direction is 0 for left, 1 for right.
type EnemySpawn struct {
	Type      int
	X         float64
	Y         float64
	Direction int
	Dark      bool
}

// Checkpoint is a trigger rectangle.
type Checkpoint struct {
	Rect
	Type         int
	EnemyGroupID string
}

// Start returns the first map section, which holds the spawn point.
func (d *Description) Start() MapBounds {
	return d.Maps[0]
}

// EnemyGroup returns the group with the given id.
func (d *Description) EnemyGroup(id string) (EnemyGroup, bool) {
	for _, g := range d.EnemyGroups {
		if g.ID == id {
			return g, true
		}
	}
	return EnemyGroup{}, false
}

// CountEnemies returns the number of enemy spawns across all groups.
func (d *Description) CountEnemies() int {
	n := 0
	for _, g := range d.EnemyGroups {
		n += len(g.Spawns)
	}
	return n
}
