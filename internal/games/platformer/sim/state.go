package sim

// GroupKind names the partition an entity currently belongs to.
type GroupKind uint8

const (
	GroupNone GroupKind = iota
	GroupTerrain
	GroupBricks
	GroupBoxes
	GroupEnemies
	GroupDying
	GroupShells
	GroupPowerups
	GroupCoins
	GroupCheckpoints
	GroupDormant // enemies waiting for their checkpoint

	groupKinds = int(GroupDormant) + 1
)

var groupNames = [...]string{
	GroupNone:        "none",
	GroupTerrain:     "terrain",
	GroupBricks:      "bricks",
	GroupBoxes:       "boxes",
	GroupEnemies:     "enemies",
	GroupDying:       "dying",
	GroupShells:      "shells",
	GroupPowerups:    "powerups",
	GroupCoins:       "coins",
	GroupCheckpoints: "checkpoints",
	GroupDormant:     "dormant",
}

func (k GroupKind) String() string {
	if int(k) < len(groupNames) {
		return groupNames[k]
	}
	return "unknown"
}

// PlayerState is the locomotion state of the player.
type PlayerState uint8

const (
	PlayerStand PlayerState = iota
	PlayerWalk
	PlayerJump
	PlayerFall
	PlayerDie
	PlayerSmall2Big
	PlayerBig2Small
	PlayerBig2Fire
)

var playerStateNames = [...]string{
	PlayerStand:     "stand",
	PlayerWalk:      "walk",
	PlayerJump:      "jump",
	PlayerFall:      "fall",
	PlayerDie:       "die",
	PlayerSmall2Big: "small2big",
	PlayerBig2Small: "big2small",
	PlayerBig2Fire:  "big2fire",
}

func (s PlayerState) String() string {
	if s.Valid() {
		return playerStateNames[s]
	}
	return "unknown"
}

// Valid reports whether s is one of the enumerated states.
func (s PlayerState) Valid() bool {
	return int(s) < len(playerStateNames)
}

// Transitioning reports whether s is a size-transition state.
func (s PlayerState) Transitioning() bool {
	return s == PlayerSmall2Big || s == PlayerBig2Small || s == PlayerBig2Fire
}

// Power is the size/power state of the player.
type Power uint8

const (
	PowerSmall Power = iota
	PowerBig
	PowerFire
)

func (p Power) String() string {
	switch p {
	case PowerSmall:
		return "small"
	case PowerBig:
		return "big"
	case PowerFire:
		return "fire"
	default:
		return "unknown"
	}
}

// EnemyKind selects the enemy variant.
type EnemyKind uint8

const (
	Goomba EnemyKind = iota // ground walker
	Koopa                   // shelled walker
)

func (k EnemyKind) String() string {
	if k == Koopa {
		return "koopa"
	}
	return "goomba"
}

// EnemyState is the state of an enemy.
type EnemyState uint8

const (
	EnemyWalk EnemyState = iota
	EnemyFall
	EnemyDie
	EnemyTrampled
	EnemySlide
)

var enemyStateNames = [...]string{
	EnemyWalk:     "walk",
	EnemyFall:     "fall",
	EnemyDie:      "die",
	EnemyTrampled: "trampled",
	EnemySlide:    "slide",
}

func (s EnemyState) String() string {
	if int(s) < len(enemyStateNames) {
		return enemyStateNames[s]
	}
	return "unknown"
}

// ValidFor reports whether s is legal for the given enemy kind.
// Only shelled walkers slide.
func (s EnemyState) ValidFor(k EnemyKind) bool {
	if s == EnemySlide {
		return k == Koopa
	}
	return int(s) < len(enemyStateNames)
}

// DeathCause tells an enemy how it was defeated.
type DeathCause uint8

const (
	CauseBumped DeathCause = iota
	CauseTrampled
	CauseSlided
)

func (c DeathCause) String() string {
	switch c {
	case CauseBumped:
		return "bumped"
	case CauseTrampled:
		return "trampled"
	case CauseSlided:
		return "slided"
	default:
		return "unknown"
	}
}

// BlockState is the state of a brick or box.
type BlockState uint8

const (
	BlockRest BlockState = iota
	BlockBumped
	BlockOpen
)

func (s BlockState) String() string {
	switch s {
	case BlockRest:
		return "rest"
	case BlockBumped:
		return "bumped"
	case BlockOpen:
		return "open"
	default:
		return "unknown"
	}
}

// Valid reports whether s is one of the enumerated states.
func (s BlockState) Valid() bool {
	return s <= BlockOpen
}

// PowerupKind selects the power-up variant.
type PowerupKind uint8

const (
	Mushroom PowerupKind = iota
	Fireflower
	Fireball
)

func (k PowerupKind) String() string {
	switch k {
	case Mushroom:
		return "mushroom"
	case Fireflower:
		return "fireflower"
	case Fireball:
		return "fireball"
	default:
		return "unknown"
	}
}

// PowerupState is the state of a power-up or projectile.
type PowerupState uint8

const (
	PowerupGrow PowerupState = iota
	PowerupWalk
	PowerupFall
	PowerupRest
	PowerupFly
	PowerupBoom
)

var powerupStateNames = [...]string{
	PowerupGrow: "grow",
	PowerupWalk: "walk",
	PowerupFall: "fall",
	PowerupRest: "rest",
	PowerupFly:  "fly",
	PowerupBoom: "boom",
}

func (s PowerupState) String() string {
	if int(s) < len(powerupStateNames) {
		return powerupStateNames[s]
	}
	return "unknown"
}

// ValidFor reports whether s is legal for the given power-up kind.
func (s PowerupState) ValidFor(k PowerupKind) bool {
	switch k {
	case Mushroom:
		return s == PowerupGrow || s == PowerupWalk || s == PowerupFall
	case Fireflower:
		return s == PowerupGrow || s == PowerupRest
	case Fireball:
		return s == PowerupFly || s == PowerupBoom
	default:
		return false
	}
}

// Next is the screen a finished level hands control to.
type Next string

const (
	NextNone       Next = ""
	NextGameOver   Next = "game_over"
	NextLoadScreen Next = "load_screen"
	NextLevelClear Next = "level_clear"
)
