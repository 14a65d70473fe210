package config

import (
	_ "embed"
)

//go:embed defaults/pacman.yaml
var defaultPacmanYAML []byte

// DefaultPacmanConfig returns the default maze game configuration.
// It mirrors defaults/pacman.yaml.
func DefaultPacmanConfig() PacmanConfig {
	return PacmanConfig{
		Movement: PacmanMovement{
			CellSize:     16,
			AgentSize:    12,
			PlayerSpeed:  80, // 5 cells per second
			PursuerSpeed: 64, // 4 cells per second
			MaxFrameTime: 0.05,
		},
		Animation: PacmanAnimation{
			ChompPeriod: 0.25,
		},
		Audio: AudioConfig{
			Enabled: true,
			Volume:  0.5,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "pickups",
				MaxAt: 200,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 0.5,
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "pacman":
		return defaultPacmanYAML
	default:
		return nil
	}
}
