package levels

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"slices"
	"sort"
	"strings"
)

//go:embed builtin/*.yaml
var builtinFS embed.FS

// Loader handles loading levels from the embedded set and an optional
// directory. Directory levels replace built-in levels with the same ID.
type Loader struct {
	Root string
}

// NewLoader creates a new level loader. An empty root loads built-in levels only.
func NewLoader(root string) *Loader {
	return &Loader{Root: root}
}

// Builtin parses the levels compiled into the binary.
func Builtin() ([]Description, error) {
	entries, err := fs.ReadDir(builtinFS, "builtin")
	if err != nil {
		return nil, fmt.Errorf("levels: reading builtin: %w", err)
	}

	var levels []Description
	for _, e := range entries {
		if e.IsDir() || !isSupportedExtension(strings.ToLower(path.Ext(e.Name()))) {
			continue
		}
		name := path.Join("builtin", e.Name())
		data, err := builtinFS.ReadFile(name)
		if err != nil {
			return nil, fmt.Errorf("levels: reading %s: %w", name, err)
		}
		d, err := ParseYAML(data)
		if err != nil {
			return nil, fmt.Errorf("levels: parsing %s: %w", name, err)
		}
		d.FilePath = name
		levels = append(levels, d)
	}
	sortByID(levels)
	return levels, nil
}

// LoadAll loads built-in levels plus every level file under Root.
// Returns levels sorted by ID for deterministic ordering. Any malformed
// file fails the whole load.
func (l *Loader) LoadAll() ([]Description, error) {
	levels, err := Builtin()
	if err != nil {
		return nil, err
	}
	if l.Root == "" {
		return levels, nil
	}

	err = filepath.WalkDir(l.Root, func(p string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if !isSupportedExtension(strings.ToLower(filepath.Ext(p))) {
			return nil
		}

		level, err := l.LoadFile(p)
		if err != nil {
			return err
		}

		levels = slices.DeleteFunc(levels, func(o Description) bool { return o.ID == level.ID })
		levels = append(levels, level)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("levels: walking directory %s: %w", l.Root, err)
	}

	sortByID(levels)
	return levels, nil
}

// LoadFile loads a single level file.
func (l *Loader) LoadFile(p string) (Description, error) {
	data, err := os.ReadFile(p)
	if err != nil {
		return Description{}, fmt.Errorf("reading file %s: %w", p, err)
	}

	ext := strings.ToLower(filepath.Ext(p))
	if !isSupportedExtension(ext) {
		return Description{}, fmt.Errorf("unsupported extension: %s", ext)
	}

	d, err := ParseYAML(data)
	if err != nil {
		return Description{}, fmt.Errorf("parsing file %s: %w", p, err)
	}
	d.FilePath = p
	return d, nil
}

// LoadByID loads a specific level by ID.
func (l *Loader) LoadByID(id string) (Description, error) {
	levels, err := l.LoadAll()
	if err != nil {
		return Description{}, err
	}

	for _, lvl := range levels {
		if lvl.ID == id {
			return lvl, nil
		}
	}

	return Description{}, fmt.Errorf("level not found: %s", id)
}

// ListIDs returns all level IDs in sorted order.
func (l *Loader) ListIDs() ([]string, error) {
	levels, err := l.LoadAll()
	if err != nil {
		return nil, err
	}

	ids := make([]string, len(levels))
	for i, lvl := range levels {
		ids[i] = lvl.ID
	}
	return ids, nil
}

func sortByID(levels []Description) {
	sort.Slice(levels, func(i, j int) bool {
		return levels[i].ID < levels[j].ID
	})
}

// isSupportedExtension checks if extension is supported.
func isSupportedExtension(ext string) bool {
	return slices.Contains(FormatExtensions(), ext)
}
