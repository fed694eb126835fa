package levels

import (
	"fmt"
)

// Validation error codes.
const (
	CodeEmpty          = "EMPTY"
	CodeMissingField   = "MISSING_FIELD"
	CodeMissingID      = "MISSING_ID"
	CodeNoMaps         = "NO_MAPS"
	CodeBadBounds      = "BAD_BOUNDS"
	CodeBadRect        = "BAD_RECT"
	CodeBadBlockType   = "BAD_BLOCK_TYPE"
	CodeBadGroup       = "BAD_GROUP"
	CodeDuplicateGroup = "DUPLICATE_GROUP"
	CodeBadEnemyType   = "BAD_ENEMY_TYPE"
	CodeBadDirection   = "BAD_DIRECTION"
	CodeBadCheckpoint  = "BAD_CHECKPOINT"
	CodeUnknownGroup   = "UNKNOWN_GROUP"
)

// ValidationError contains details about validation failure.
type ValidationError struct {
	Code    string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func invalid(code, format string, args ...any) error {
	return ValidationError{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Validate checks a description for internal consistency.
// It returns the first problem found.
func Validate(d *Description) error {
	if d.ID == "" {
		return invalid(CodeMissingID, "level has no id")
	}
	if len(d.Maps) == 0 {
		return invalid(CodeNoMaps, "level %s has no maps section", d.ID)
	}
	for i, m := range d.Maps {
		if m.EndX <= m.StartX {
			return invalid(CodeBadBounds, "maps[%d]: end_x %.0f must exceed start_x %.0f", i, m.EndX, m.StartX)
		}
		if m.PlayerX < m.StartX || m.PlayerX >= m.EndX {
			return invalid(CodeBadBounds, "maps[%d]: player_x %.0f outside [%.0f, %.0f)", i, m.PlayerX, m.StartX, m.EndX)
		}
	}

	for i, t := range d.Terrain {
		if t.Width <= 0 || t.Height <= 0 {
			return invalid(CodeBadRect, "%s %d: size %.0fx%.0f must be positive", t.Kind, i, t.Width, t.Height)
		}
	}
	for i, b := range d.Bricks {
		if b.Type < 0 {
			return invalid(CodeBadBlockType, "brick %d: negative type %d", i, b.Type)
		}
	}
	for i, b := range d.Boxes {
		if b.Type < 0 {
			return invalid(CodeBadBlockType, "box %d: negative type %d", i, b.Type)
		}
	}

	groups := make(map[string]bool, len(d.EnemyGroups))
	for i, g := range d.EnemyGroups {
		if g.ID == "" {
			return invalid(CodeBadGroup, "enemy group %d has no id", i)
		}
		if groups[g.ID] {
			return invalid(CodeDuplicateGroup, "enemy group %q defined twice", g.ID)
		}
		groups[g.ID] = true
		for j, s := range g.Spawns {
			if s.Type != EnemyGoomba && s.Type != EnemyKoopa {
				return invalid(CodeBadEnemyType, "enemy group %q spawn %d: unknown type %d", g.ID, j, s.Type)
			}
			if s.Direction != 0 && s.Direction != 1 {
				return invalid(CodeBadDirection, "enemy group %q spawn %d: direction %d must be 0 or 1", g.ID, j, s.Direction)
			}
		}
	}

	for i, c := range d.Checkpoints {
		if c.Width <= 0 || c.Height <= 0 {
			return invalid(CodeBadRect, "checkpoint %d: size %.0fx%.0f must be positive", i, c.Width, c.Height)
		}
		switch c.Type {
		case CheckpointEnemyGroup:
			if !groups[c.EnemyGroupID] {
				return invalid(CodeUnknownGroup, "checkpoint %d: unknown enemy group %q", i, c.EnemyGroupID)
			}
		case CheckpointGoal:
		default:
			return invalid(CodeBadCheckpoint, "checkpoint %d: unknown type %d", i, c.Type)
		}
	}

	return nil
}
