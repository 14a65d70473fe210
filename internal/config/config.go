// Package config provides YAML-based game configuration loading and
// difficulty management for the maze game.
package config

import "fmt"

// PacmanConfig contains all configuration for the maze game.
type PacmanConfig struct {
	Movement   PacmanMovement   `yaml:"movement"`
	Animation  PacmanAnimation  `yaml:"animation"`
	Audio      AudioConfig      `yaml:"audio"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// PacmanMovement defines sizes and speeds in world units.
// One maze cell is CellSize units wide and tall.
type PacmanMovement struct {
	CellSize     float64 `yaml:"cell_size"`
	AgentSize    float64 `yaml:"agent_size"`    // Side of every agent's bounding box
	PlayerSpeed  float64 `yaml:"player_speed"`  // Units per second
	PursuerSpeed float64 `yaml:"pursuer_speed"` // Units per second before difficulty scaling
	MaxFrameTime float64 `yaml:"max_frame_time"`
}

// PacmanAnimation defines cosmetic timings.
type PacmanAnimation struct {
	ChompPeriod float64 `yaml:"chomp_period"` // Seconds for one open/close of the mouth
}

// AudioConfig controls sound cues.
type AudioConfig struct {
	Enabled bool    `yaml:"enabled"`
	Volume  float64 `yaml:"volume"` // 0.0 = silent, 1.0 = full
}

// Validate reports the first setting the game cannot run with.
func (c PacmanConfig) Validate() error {
	m := c.Movement
	switch {
	case m.CellSize <= 0:
		return fmt.Errorf("config: cell_size must be positive, got %v", m.CellSize)
	case m.AgentSize <= 0 || m.AgentSize > m.CellSize:
		return fmt.Errorf("config: agent_size must be in (0, %v], got %v", m.CellSize, m.AgentSize)
	case m.PlayerSpeed < 0 || m.PursuerSpeed < 0:
		return fmt.Errorf("config: speeds must not be negative")
	case m.MaxFrameTime <= 0:
		return fmt.Errorf("config: max_frame_time must be positive, got %v", m.MaxFrameTime)
	case c.Difficulty.InitialLevel < 0 || c.Difficulty.InitialLevel > 1:
		return fmt.Errorf("config: difficulty initial_level must be in [0, 1], got %v", c.Difficulty.InitialLevel)
	case c.Audio.Volume < 0 || c.Audio.Volume > 1:
		return fmt.Errorf("config: audio volume must be in [0, 1], got %v", c.Audio.Volume)
	}

	// Collision is only checked at the end of a frame, so no agent may move
	// its own size in one frame or it could skip over a wall.
	if step := c.MaxStep(); step >= m.AgentSize {
		return fmt.Errorf("config: fastest agent moves %v per frame, must stay below agent_size %v", step, m.AgentSize)
	}
	return nil
}

// MaxStep returns the longest distance any agent can cover in one clamped
// frame, with pursuers at full difficulty scaling.
func (c PacmanConfig) MaxStep() float64 {
	m := c.Movement
	pursuer := max(m.PursuerSpeed, m.PursuerSpeed*(1+c.Difficulty.Scaling.SpeedMultiplier))
	return max(m.PlayerSpeed, pursuer) * m.MaxFrameTime
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases during a round.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "pickups", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Pickups/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Multiplier added to pursuer speed at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset maps a flag value to a preset. Unknown names are an error.
func ParsePreset(name string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(name); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", name)
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
