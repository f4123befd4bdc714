package config

import (
	_ "embed"
)

//go:embed defaults/boxfield.yaml
var defaultBoxfieldYAML []byte

// DefaultBoxfieldConfig returns the default boxfield configuration.
// Kept in sync with defaults/boxfield.yaml; used when even the embedded
// YAML cannot be parsed.
func DefaultBoxfieldConfig() BoxfieldConfig {
	return BoxfieldConfig{
		World: WorldConfig{
			Width:  60,
			Height: 20,
		},
		Player: PlayerConfig{
			StartX: 4,
			StartY: 4,
			Width:  4,
			Height: 2,
			Step:   2,
		},
		Obstacles: ObstacleConfig{
			Count:     8,
			MinWidth:  2,
			MaxWidth:  6,
			MinHeight: 1,
			MaxHeight: 3,
		},
		Colors: ColorConfig{
			Fill:     "bright-cyan",
			Stroke:   "blue",
			Obstacle: "gray",
			Border:   "white",
		},
	}
}
