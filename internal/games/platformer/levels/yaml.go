package levels

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// yamlLevel is the on-disk structure of a level file. Scalars that a level
// cannot do without are pointers so that a missing key is distinguishable
// from a zero value.
type yamlLevel struct {
	ID         string           `yaml:"id"`
	Name       string           `yaml:"name"`
	Background string           `yaml:"background"`
	Maps       []yamlMap        `yaml:"maps"`
	Ground     []yamlRect       `yaml:"ground"`
	Pipe       []yamlRect       `yaml:"pipe"`
	Step       []yamlRect       `yaml:"step"`
	Brick      []yamlBrick      `yaml:"brick"`
	Box        []yamlBox        `yaml:"box"`
	Enemy      []yamlEnemyGroup `yaml:"enemy"`
	Checkpoint []yamlCheckpoint `yaml:"checkpoint"`
}

type yamlMap struct {
	StartX  *float64 `yaml:"start_x"`
	EndX    *float64 `yaml:"end_x"`
	PlayerX *float64 `yaml:"player_x"`
	PlayerY *float64 `yaml:"player_y"`
}

type yamlRect struct {
	X      *float64 `yaml:"x"`
	Y      *float64 `yaml:"y"`
	Width  *float64 `yaml:"width"`
	Height *float64 `yaml:"height"`
}

type yamlBrick struct {
	X        *float64 `yaml:"x"`
	Y        *float64 `yaml:"y"`
	Type     *int     `yaml:"type"`
	Reusable *bool    `yaml:"reusable,omitempty"`
	Color    int      `yaml:"color,omitempty"`
}

type yamlBox struct {
	X    *float64 `yaml:"x"`
	Y    *float64 `yaml:"y"`
	Type *int     `yaml:"type"`
}

type yamlEnemyGroup struct {
	Group  string      `yaml:"group"`
	Spawns []yamlSpawn `yaml:"spawns"`
}

type yamlSpawn struct {
	Type      *int     `yaml:"type"`
	X         *float64 `yaml:"x"`
	Y         *float64 `yaml:"y"`
	Direction *int     `yaml:"direction"`
	Color     int      `yaml:"color,omitempty"`
}

type yamlCheckpoint struct {
	X            *float64 `yaml:"x"`
	Y            *float64 `yaml:"y"`
	Width        *float64 `yaml:"width"`
	Height       *float64 `yaml:"height"`
	Type         *int     `yaml:"type"`
	EnemyGroupID string   `yaml:"enemy_groupid,omitempty"`
}

// required collects the paths of missing required keys.
type required struct {
	missing []string
}

func (r *required) float(path string, v *float64) float64 {
	if v == nil {
		r.missing = append(r.missing, path)
		return 0
	}
	return *v
}

func (r *required) int(path string, v *int) int {
	if v == nil {
		r.missing = append(r.missing, path)
		return 0
	}
	return *v
}

func (r *required) rect(path string, y yamlRect) Rect {
	return Rect{
		X:      r.float(path+".x", y.X),
		Y:      r.float(path+".y", y.Y),
		Width:  r.float(path+".width", y.Width),
		Height: r.float(path+".height", y.Height),
	}
}

func (r *required) err() error {
	if len(r.missing) == 0 {
		return nil
	}
	return ValidationError{
		Code:    CodeMissingField,
		Message: "missing " + strings.Join(r.missing, ", "),
	}
}

// ParseYAML parses and validates a YAML level file. Unknown keys, missing
// required keys and inconsistent values all fail the parse.
func ParseYAML(data []byte) (Description, error) {
	var yl yamlLevel
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&yl); err != nil {
		if errors.Is(err, io.EOF) {
			return Description{}, ValidationError{Code: CodeEmpty, Message: "level file is empty"}
		}
		return Description{}, fmt.Errorf("yaml unmarshal: %w", err)
	}

	d, err := yl.description()
	if err != nil {
		return Description{}, err
	}
	if err := Validate(&d); err != nil {
		return Description{}, err
	}
	return d, nil
}

func (yl *yamlLevel) description() (Description, error) {
	var r required
	d := Description{
		ID:         yl.ID,
		Name:       yl.Name,
		Background: yl.Background,
	}

	for i, m := range yl.Maps {
		p := fmt.Sprintf("maps[%d]", i)
		d.Maps = append(d.Maps, MapBounds{
			StartX:  r.float(p+".start_x", m.StartX),
			EndX:    r.float(p+".end_x", m.EndX),
			PlayerX: r.float(p+".player_x", m.PlayerX),
			PlayerY: r.float(p+".player_y", m.PlayerY),
		})
	}

	terrain := []struct {
		kind  TerrainKind
		rects []yamlRect
	}{
		{TerrainGround, yl.Ground},
		{TerrainPipe, yl.Pipe},
		{TerrainStep, yl.Step},
	}
	for _, t := range terrain {
		for i, y := range t.rects {
			d.Terrain = append(d.Terrain, Terrain{
				Kind: t.kind,
				Rect: r.rect(fmt.Sprintf("%s[%d]", t.kind, i), y),
			})
		}
	}

	for i, b := range yl.Brick {
		p := fmt.Sprintf("brick[%d]", i)
		reusable := true
		if b.Reusable != nil {
			reusable = *b.Reusable
		}
		d.Bricks = append(d.Bricks, Brick{
			X:        r.float(p+".x", b.X),
			Y:        r.float(p+".y", b.Y),
			Type:     r.int(p+".type", b.Type),
			Reusable: reusable,
			Dark:     b.Color != 0,
		})
	}

	for i, b := range yl.Box {
		p := fmt.Sprintf("box[%d]", i)
		d.Boxes = append(d.Boxes, Box{
			X:    r.float(p+".x", b.X),
			Y:    r.float(p+".y", b.Y),
			Type: r.int(p+".type", b.Type),
		})
	}

	for i, g := range yl.Enemy {
		group := EnemyGroup{ID: g.Group}
		for j, s := range g.Spawns {
			p := fmt.Sprintf("enemy[%d].spawns[%d]", i, j)
			group.Spawns = append(group.Spawns, EnemySpawn{
				Type:      r.int(p+".type", s.Type),
				X:         r.float(p+".x", s.X),
				Y:         r.float(p+".y", s.Y),
				Direction: r.int(p+".direction", s.Direction),
				Dark:      s.Color != 0,
			})
		}
		d.EnemyGroups = append(d.EnemyGroups, group)
	}

	for i, c := range yl.Checkpoint {
		p := fmt.Sprintf("checkpoint[%d]", i)
		d.Checkpoints = append(d.Checkpoints, Checkpoint{
			Rect:         r.rect(p, yamlRect{X: c.X, Y: c.Y, Width: c.Width, Height: c.Height}),
			Type:         r.int(p+".type", c.Type),
			EnemyGroupID: c.EnemyGroupID,
		})
	}

	return d, r.err()
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".yaml", ".yml"}
}
