package maze

import (
	_ "embed"
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"
)

//go:embed layouts/classic.yaml
var classicYAML []byte

// Spawn is a cell position where an agent starts the round.
type Spawn struct {
	Row int `yaml:"row"`
	Col int `yaml:"col"`
}

// Layout is the symbolic template a Grid is built from, plus spawn cells.
type Layout struct {
	Name     string           `yaml:"name"`
	Rows     []string         `yaml:"rows"`
	Player   Spawn            `yaml:"player"`
	Pursuers map[string]Spawn `yaml:"pursuers"`
}

// ParseLayout decodes a YAML layout.
// The rows themselves are validated by Build.
func ParseLayout(data []byte) (Layout, error) {
	var l Layout
	if err := yaml.Unmarshal(data, &l); err != nil {
		return Layout{}, fmt.Errorf("%w: yaml: %v", ErrInvalidLayout, err)
	}
	return l, nil
}

// Classic returns the board shipped with the game.
func Classic() Layout {
	l, err := ParseLayout(classicYAML)
	if err != nil {
		panic(fmt.Sprintf("maze: embedded classic layout: %v", err))
	}
	return l
}

// Build constructs the grid and verifies that every spawn sits on an open
// cell and that each name in required has a pursuer spawn.
func (l Layout) Build(cellW, cellH float64, required ...string) (*Grid, error) {
	g, err := New(l.Rows, cellW, cellH)
	if err != nil {
		return nil, err
	}

	if err := checkSpawn(g, "player", l.Player); err != nil {
		return nil, err
	}
	for _, name := range required {
		if _, ok := l.Pursuers[name]; !ok {
			return nil, fmt.Errorf("%w: no spawn for pursuer %q", ErrInvalidLayout, name)
		}
	}

	names := make([]string, 0, len(l.Pursuers))
	for name := range l.Pursuers {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if err := checkSpawn(g, name, l.Pursuers[name]); err != nil {
			return nil, err
		}
	}

	return g, nil
}

func checkSpawn(g *Grid, who string, s Spawn) error {
	if !g.InBounds(s.Row, s.Col) {
		return fmt.Errorf("%w: %s spawn (%d, %d) outside %dx%d", ErrInvalidLayout, who, s.Row, s.Col, g.height, g.width)
	}
	if g.IsWall(s.Row, s.Col) {
		return fmt.Errorf("%w: %s spawn (%d, %d) is a wall", ErrInvalidLayout, who, s.Row, s.Col)
	}
	return nil
}
