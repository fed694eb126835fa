package config

import (
	_ "embed"
)

//go:embed defaults/platformer.yaml
var defaultPlatformerYAML []byte

// DefaultPlatformerConfig returns the hard-coded platformer configuration.
// It mirrors defaults/platformer.yaml and is the last fallback of the loader.
func DefaultPlatformerConfig() PlatformerConfig {
	return PlatformerConfig{
		World: WorldConfig{
			ScreenW:      800,
			ScreenH:      600,
			Gravity:      1.0,
			AntiGravity:  0.3,
			DeathDelayMs: 3000,
		},
		Player: PlayerConfig{
			MaxWalkSpeed:       6,
			MaxRunSpeed:        12,
			MaxYVelocity:       11,
			JumpVelocity:       -10,
			WalkAccel:          0.15,
			RunAccel:           0.3,
			TurnAccel:          0.35,
			StompBounce:        0.8,
			HeadBumpVelocity:   7,
			SmallSize:          Size{W: 30, H: 40},
			MidSize:            Size{W: 30, H: 60},
			BigSize:            Size{W: 30, H: 80},
			TransitionFrameMs:  65,
			HurtImmuneMs:       2000,
			FlickerMs:          100,
			FireballCooldownMs: 300,
		},
		Enemy: EnemyConfig{
			Speed:          1,
			MaxFallSpeed:   10,
			DieVelocity:    -8,
			DieGravity:     0.6,
			TrampleDelayMs: 500,
			ShellDelayMs:   5000,
			ShellSpeed:     10,
			ShellKickShift: 40,
			WalkFrameMs:    125,
			GoombaSize:     Size{W: 40, H: 40},
			KoopaSize:      Size{W: 40, H: 60},
		},
		Blocks: BlockConfig{
			Size:           40,
			BumpVelocity:   -7,
			BoxThreshold:   5,
			BrickThreshold: 10,
			DebrisSize:     20,
		},
		Powerup: PowerupConfig{
			Size:              40,
			GrowSpeed:         1,
			MushroomSpeed:     2,
			Gravity:           1,
			MaxFallSpeed:      8,
			FlowerFrameMs:     30,
			FireballSize:      20,
			FireballSpeed:     10,
			FireballInitialVY: 10,
			FireballBounce:    -10,
			FireballFrameMs:   200,
			BoomFrameMs:       50,
		},
		Coin: CoinConfig{
			Size:        Size{W: 20, H: 30},
			PopVelocity: -15,
			FrameMs:     60,
		},
		Scoring: ScoringConfig{
			Stomp:        100,
			BumpKill:     100,
			ShellKill:    200,
			FireballKill: 200,
			Coin:         200,
			Powerup:      1000,
			BrickSmash:   50,
		},
		Gameplay: GameplayConfig{
			Lives: 3,
		},
		Render: RenderConfig{
			CellW:     10,
			CellH:     20,
			KeyHoldMs: 200,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "platformer":
		return defaultPlatformerYAML
	default:
		return nil
	}
}
