// Package config provides YAML-based game configuration loading and
// difficulty presets for the platformer.
package config

// PlatformerConfig contains all tunables of the platformer simulation.
// Distances are world pixels, velocities are pixels per tick and durations
// are milliseconds.
type PlatformerConfig struct {
	World    WorldConfig    `yaml:"world"`
	Player   PlayerConfig   `yaml:"player"`
	Enemy    EnemyConfig    `yaml:"enemy"`
	Blocks   BlockConfig    `yaml:"blocks"`
	Powerup  PowerupConfig  `yaml:"powerup"`
	Coin     CoinConfig     `yaml:"coin"`
	Scoring  ScoringConfig  `yaml:"scoring"`
	Gameplay GameplayConfig `yaml:"gameplay"`
	Render   RenderConfig   `yaml:"render"`
}

// WorldConfig defines the viewport and the module-wide physics constants.
type WorldConfig struct {
	ScreenW      float64 `yaml:"screen_w"`
	ScreenH      float64 `yaml:"screen_h"`
	Gravity      float64 `yaml:"gravity"`
	AntiGravity  float64 `yaml:"anti_gravity"`
	DeathDelayMs int64   `yaml:"death_delay_ms"`
}

// Size is a width/height pair.
type Size struct {
	W float64 `yaml:"w"`
	H float64 `yaml:"h"`
}

// PlayerConfig defines locomotion and power-state parameters of the player.
type PlayerConfig struct {
	MaxWalkSpeed       float64 `yaml:"max_walk_speed"`
	MaxRunSpeed        float64 `yaml:"max_run_speed"`
	MaxYVelocity       float64 `yaml:"max_y_velocity"`
	JumpVelocity       float64 `yaml:"jump_velocity"`
	WalkAccel          float64 `yaml:"walk_accel"`
	RunAccel           float64 `yaml:"run_accel"`
	TurnAccel          float64 `yaml:"turn_accel"`
	StompBounce        float64 `yaml:"stomp_bounce"`
	HeadBumpVelocity   float64 `yaml:"head_bump_velocity"`
	SmallSize          Size    `yaml:"small_size"`
	MidSize            Size    `yaml:"mid_size"`
	BigSize            Size    `yaml:"big_size"`
	TransitionFrameMs  int64   `yaml:"transition_frame_ms"`
	HurtImmuneMs       int64   `yaml:"hurt_immune_ms"`
	FlickerMs          int64   `yaml:"flicker_ms"`
	FireballCooldownMs int64   `yaml:"fireball_cooldown_ms"`
}

// EnemyConfig defines enemy movement and defeat timings.
type EnemyConfig struct {
	Speed          float64 `yaml:"speed"`
	MaxFallSpeed   float64 `yaml:"max_fall_speed"`
	DieVelocity    float64 `yaml:"die_velocity"`
	DieGravity     float64 `yaml:"die_gravity"`
	TrampleDelayMs int64   `yaml:"trample_delay_ms"`
	ShellDelayMs   int64   `yaml:"shell_delay_ms"`
	ShellSpeed     float64 `yaml:"shell_speed"`
	ShellKickShift float64 `yaml:"shell_kick_shift"`
	WalkFrameMs    int64   `yaml:"walk_frame_ms"`
	GoombaSize     Size    `yaml:"goomba_size"`
	KoopaSize      Size    `yaml:"koopa_size"`
}

// BlockConfig defines brick/box bump physics and debris.
type BlockConfig struct {
	Size           float64 `yaml:"size"`
	BumpVelocity   float64 `yaml:"bump_velocity"`
	BoxThreshold   float64 `yaml:"box_threshold"`
	BrickThreshold float64 `yaml:"brick_threshold"`
	DebrisSize     float64 `yaml:"debris_size"`
}

// PowerupConfig defines power-up and fireball parameters.
type PowerupConfig struct {
	Size              float64 `yaml:"size"`
	GrowSpeed         float64 `yaml:"grow_speed"`
	MushroomSpeed     float64 `yaml:"mushroom_speed"`
	Gravity           float64 `yaml:"gravity"`
	MaxFallSpeed      float64 `yaml:"max_fall_speed"`
	FlowerFrameMs     int64   `yaml:"flower_frame_ms"`
	FireballSize      float64 `yaml:"fireball_size"`
	FireballSpeed     float64 `yaml:"fireball_speed"`
	FireballInitialVY float64 `yaml:"fireball_initial_vy"`
	FireballBounce    float64 `yaml:"fireball_bounce"`
	FireballFrameMs   int64   `yaml:"fireball_frame_ms"`
	BoomFrameMs       int64   `yaml:"boom_frame_ms"`
}

// CoinConfig defines the coin that pops out of a struck block.
type CoinConfig struct {
	Size        Size    `yaml:"size"`
	PopVelocity float64 `yaml:"pop_velocity"`
	FrameMs     int64   `yaml:"frame_ms"`
}

// ScoringConfig defines points awarded per event.
type ScoringConfig struct {
	Stomp        int `yaml:"stomp"`
	BumpKill     int `yaml:"bump_kill"`
	ShellKill    int `yaml:"shell_kill"`
	FireballKill int `yaml:"fireball_kill"`
	Coin         int `yaml:"coin"`
	Powerup      int `yaml:"powerup"`
	BrickSmash   int `yaml:"brick_smash"`
}

// GameplayConfig defines run-level rules.
type GameplayConfig struct {
	Lives int `yaml:"lives"`
}

// RenderConfig defines how world pixels map to terminal cells.
type RenderConfig struct {
	CellW     float64 `yaml:"cell_w"`
	CellH     float64 `yaml:"cell_h"`
	KeyHoldMs int64   `yaml:"key_hold_ms"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset converts a CLI string to a preset. Unknown values map to the
// empty preset, which leaves the loaded config untouched.
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return DifficultyPreset(s)
	default:
		return ""
	}
}
